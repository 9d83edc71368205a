package cli

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/jwt"
)

var (
	errTokenMissing = stderrors.New("a token is required: pass it as an argument or with --token")
	errTokenTwice   = stderrors.New("pass the token either as an argument or with --token, not both")
)

type jwtSignOptions struct {
	Subject  string
	Audience string
	Expiry   string
}

type jwtSignResponse struct {
	Token string `json:"token"`
}

type jwtVerifyResponse struct {
	Valid bool `json:"valid"`
}

func addJWTCommand(root *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issue and check HS256 JSON web tokens",
		Long: `Issue and check HS256 JSON web tokens signed with jwt.secret.

Set the secret with SIGIL_JWT_SECRET or in the config file. The built-in
default is a well-known example value and must not be used for real tokens.`,
	}
	addJWTSignCommand(cmd, a)
	addJWTVerifyCommand(cmd, a)
	root.AddCommand(cmd)
}

func addJWTSignCommand(parent *cobra.Command, a *app) {
	opts := &jwtSignOptions{}
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Issue a token",
		Long: `Issue a token with sub, aud, iat, exp and a random jti.

Examples:
  sigil jwt sign --sub acme --aud device1 --exp 14d
  sigil jwt sign --sub ci --exp 30m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJWTSign(cmd, a, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Subject, "sub", "", "subject claim")
	cmd.Flags().StringVar(&opts.Audience, "aud", "", "audience claim, default from config")
	cmd.Flags().StringVar(&opts.Expiry, "exp", "", `lifetime such as "15m", "1h" or "7d", default from config`)
	parent.AddCommand(cmd)
}

func addJWTVerifyCommand(parent *cobra.Command, a *app) {
	var token string
	cmd := &cobra.Command{
		Use:   "verify [token]",
		Short: "Check a token and print whether it is still valid",
		Long: `Check the token signature and print "true" while it is unexpired and
"false" once it has expired. A token with a bad signature is an error.

Examples:
  sigil jwt verify --token eyJhbGciOi...
  sigil jwt verify eyJhbGciOi...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if token != "" {
					return errors.NewExitCode2Error(errTokenTwice)
				}
				token = args[0]
			}
			if token == "" {
				return errors.NewExitCode2Error(errTokenMissing)
			}
			return runJWTVerify(cmd, a, token)
		},
	}
	cmd.Flags().StringVarP(&token, "token", "t", "", "token to verify")
	parent.AddCommand(cmd)
}

func jwtService(cmd *cobra.Command, a *app) *jwt.Service {
	if a.cfg.JWT.Secret == constants.DefaultJWTSecret {
		zerolog.Ctx(cmd.Context()).Warn().Msg("using the default jwt secret; set SIGIL_JWT_SECRET")
	}
	return jwt.NewService(a.cfg.JWT.Secret)
}

func runJWTSign(cmd *cobra.Command, a *app, opts *jwtSignOptions) error {
	claims := jwt.Claims{Subject: opts.Subject, Audience: opts.Audience}
	if claims.Audience == "" {
		claims.Audience = a.cfg.JWT.Audience
	}
	expiry := opts.Expiry
	if expiry == "" {
		expiry = a.cfg.JWT.Expiry
	}

	token, err := jwtService(cmd, a).Sign(cmd.Context(), claims, expiry)
	if err != nil {
		return err
	}

	if a.jsonOutput() {
		return a.output(cmd.OutOrStdout()).JSON(jwtSignResponse{Token: token})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

func runJWTVerify(cmd *cobra.Command, a *app, token string) error {
	valid, err := jwtService(cmd, a).Verify(cmd.Context(), token)
	if err != nil {
		return err
	}

	if a.jsonOutput() {
		return a.output(cmd.OutOrStdout()).JSON(jwtVerifyResponse{Valid: valid})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(valid))
	return err
}
