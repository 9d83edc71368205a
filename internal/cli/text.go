package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/input"
	"github.com/mrz1836/sigil/internal/keygen"
	"github.com/mrz1836/sigil/internal/keystore"
	"github.com/mrz1836/sigil/internal/signing"
	"github.com/mrz1836/sigil/internal/tui"
)

// textSignOptions holds the flags shared by text sign and text verify.
type textSignOptions struct {
	Input     string
	Key       string
	Format    crypto.Algorithm
	Signature string
}

// textGenerateOptions holds the flags for text generate.
type textGenerateOptions struct {
	OutputPath   string
	Format       crypto.Algorithm
	Force        bool
	PasswordKeys bool
}

// signResponse is the JSON shape of text sign.
type signResponse struct {
	Algorithm string `json:"algorithm"`
	Signature string `json:"signature"`
}

// verifyResponse is the JSON shape of text verify.
type verifyResponse struct {
	Algorithm string `json:"algorithm"`
	Valid     bool   `json:"valid"`
}

// generateResponse is the JSON shape of text generate.
type generateResponse struct {
	Algorithm string   `json:"algorithm"`
	Files     []string `json:"files"`
}

func addTextCommand(root *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign and verify input, generate signing keys",
		Long: `Sign and verify files or standard input with blake3 (keyed hash) or
ed25519 (public key signature), and generate the keys they use.

Use "-" as the input to read standard input.`,
	}

	addTextSignCommand(cmd, a)
	addTextVerifyCommand(cmd, a)
	addTextGenerateCommand(cmd, a)

	root.AddCommand(cmd)
}

func addTextSignCommand(parent *cobra.Command, a *app) {
	opts := &textSignOptions{}
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign input and print a base64url signature",
		Long: `Sign input and print the signature as URL-safe base64 without padding.

For blake3 the key is the shared 32-byte secret; for ed25519 it is the
private seed (ed25519.sk). Key files longer than 32 bytes are truncated.

Examples:
  sigil text sign -i message.txt -k blake3.txt
  cat message.txt | sigil text sign -k ed25519.sk --format ed25519`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextSign(cmd, a, opts)
		},
	}
	addInputKeyFlags(cmd, opts)
	parent.AddCommand(cmd)
}

func addTextVerifyCommand(parent *cobra.Command, a *app) {
	opts := &textSignOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a base64url signature and print true or false",
		Long: `Verify a signature produced by 'sigil text sign'. Prints "true" or "false".
A signature that does not match still exits 0; malformed signatures,
unreadable files and unknown formats do not.

For ed25519 the key is the public key (ed25519.pk).

Examples:
  sigil text verify -i message.txt -k blake3.txt -s <signature>
  cat message.txt | sigil text verify -k ed25519.pk --format ed25519 -s <signature>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextVerify(cmd, a, opts)
		},
	}
	addInputKeyFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.Signature, "sig", "s", "", "base64url signature to verify")
	_ = cmd.MarkFlagRequired("sig")
	parent.AddCommand(cmd)
}

func addInputKeyFlags(cmd *cobra.Command, opts *textSignOptions) {
	cmd.Flags().StringVarP(&opts.Input, "input", "i", constants.StdinDesignator, `input file ("-" for stdin)`)
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "key file")
	cmd.Flags().VarP(&opts.Format, "format", "f", "algorithm (blake3|ed25519), default from config")
	_ = cmd.MarkFlagRequired("key")
}

func addTextGenerateCommand(parent *cobra.Command, a *app) {
	opts := &textGenerateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a signing key into a directory",
		Long: `Generate key files into an existing directory.

  blake3   writes blake3.txt (shared secret)
  ed25519  writes ed25519.pk (public key) and ed25519.sk (private seed)

Files are created with mode 0600. Existing keys are only replaced after
confirmation, or with --force when not running in a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextGenerate(cmd, a, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.OutputPath, "output-path", "p", "", "directory for the key files, default from config")
	cmd.Flags().VarP(&opts.Format, "format", "f", "algorithm (blake3|ed25519), default from config")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite existing key files without asking")
	cmd.Flags().BoolVar(&opts.PasswordKeys, "password-keys", false, "derive blake3 keys from a printable password")
	parent.AddCommand(cmd)
}

// resolveAlgorithm returns the --format value or the configured default.
func resolveAlgorithm(a *app, flagValue crypto.Algorithm) (crypto.Algorithm, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return crypto.ParseAlgorithm(a.cfg.Text.Algorithm)
}

// checkFiles reports the first designator that does not exist.
func checkFiles(designators ...string) error {
	for _, d := range designators {
		if !input.Exists(d) {
			return fmt.Errorf("%w: %s", errors.ErrFileNotFound, d)
		}
	}
	return nil
}

func runTextSign(cmd *cobra.Command, a *app, opts *textSignOptions) error {
	ctx := cmd.Context()
	alg, err := resolveAlgorithm(a, opts.Format)
	if err != nil {
		return err
	}
	if err = checkFiles(opts.Input, opts.Key); err != nil {
		return err
	}

	sig, err := signing.NewEngine().Sign(ctx, opts.Input, opts.Key, alg)
	if err != nil {
		return err
	}

	if a.jsonOutput() {
		return a.output(cmd.OutOrStdout()).JSON(signResponse{Algorithm: alg.String(), Signature: sig})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), sig)
	return err
}

func runTextVerify(cmd *cobra.Command, a *app, opts *textSignOptions) error {
	ctx := cmd.Context()
	alg, err := resolveAlgorithm(a, opts.Format)
	if err != nil {
		return err
	}
	if _, err = signing.DecodeSignature(opts.Signature); err != nil {
		return err
	}
	if err = checkFiles(opts.Input, opts.Key); err != nil {
		return err
	}

	valid, err := signing.NewEngine().Verify(ctx, opts.Input, opts.Key, alg, opts.Signature)
	if err != nil {
		return err
	}

	if a.jsonOutput() {
		return a.output(cmd.OutOrStdout()).JSON(verifyResponse{Algorithm: alg.String(), Valid: valid})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(valid))
	return err
}

func runTextGenerate(cmd *cobra.Command, a *app, opts *textGenerateOptions) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	alg, err := resolveAlgorithm(a, opts.Format)
	if err != nil {
		return err
	}

	dir := opts.OutputPath
	if dir == "" {
		dir = a.cfg.Text.KeyDir
	}
	if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", errors.ErrNotDirectory, dir)
	}

	force := opts.Force
	if !force {
		existing, existErr := keystore.Existing(dir, alg)
		if existErr != nil {
			return existErr
		}
		if len(existing) > 0 {
			confirmed, confirmErr := confirmOverwrite(a, existing)
			if confirmErr != nil {
				return confirmErr
			}
			if !confirmed {
				return errors.ErrOperationCanceled
			}
			force = true
		}
	}

	engine := signing.NewEngine(signing.WithKeygenOptions(keygen.Options{
		PasswordDerived: opts.PasswordKeys || a.cfg.Text.PasswordKeys,
	}))
	artifacts, err := engine.Generate(ctx, alg)
	if err != nil {
		return err
	}

	paths, err := keystore.WriteArtifacts(ctx, dir, alg, artifacts, keystore.WriteOptions{
		Force:       force,
		LockTimeout: a.cfg.Text.LockTimeout,
	})
	if err != nil {
		return err
	}
	logger.Info().Str("algorithm", alg.String()).Str("dir", dir).Msg("keys generated")

	out := a.output(cmd.OutOrStdout())
	if a.jsonOutput() {
		return out.JSON(generateResponse{Algorithm: alg.String(), Files: paths})
	}
	out.Success(fmt.Sprintf("Generated %s key", cases.Title(language.English).String(alg.String())))
	for _, p := range paths {
		out.Field("file", p)
	}
	return nil
}

// confirmOverwrite asks before replacing existing key files. JSON output is
// treated as non-interactive.
func confirmOverwrite(a *app, existing []string) (bool, error) {
	if a.jsonOutput() {
		return false, fmt.Errorf("%w: %s exists", errors.ErrNonInteractiveMode, existing[0])
	}
	confirmed, err := tui.Confirm(
		"Overwrite existing keys?",
		fmt.Sprintf("%s already exists. Anything signed with the old key will no longer verify.", existing[0]),
	)
	if stderrors.Is(err, errors.ErrNonInteractiveMode) {
		return false, fmt.Errorf("%w: %s exists", errors.ErrNonInteractiveMode, existing[0])
	}
	return confirmed, err
}
