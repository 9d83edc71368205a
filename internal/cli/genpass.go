package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/genpass"
	"github.com/mrz1836/sigil/internal/tui"
)

// genpassOptions holds the flags for genpass. Flags left unset fall back to
// the genpass section of the configuration.
type genpassOptions struct {
	Length int
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool
}

type genpassResponse struct {
	Password string `json:"password"`
	Strength int    `json:"strength"`
}

func addGenPassCommand(root *cobra.Command, a *app) {
	opts := &genpassOptions{}
	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: `Generate a random password with at least one character from each enabled
class. Ambiguous characters (I, O, l, o) are never used.

The password is printed to stdout; its zxcvbn strength (0-4) goes to stderr.

Examples:
  sigil genpass
  sigil genpass --length 32 --symbol=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenPass(cmd, a, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.Length, "length", "l", 0, "password length, default from config")
	cmd.Flags().BoolVarP(&opts.Upper, "uppercase", "u", true, "include uppercase letters")
	cmd.Flags().BoolVarP(&opts.Lower, "lowercase", "w", true, "include lowercase letters")
	cmd.Flags().BoolVarP(&opts.Number, "number", "n", true, "include digits")
	cmd.Flags().BoolVarP(&opts.Symbol, "symbol", "s", true, "include symbols")
	root.AddCommand(cmd)
}

// genpassSettings merges explicitly set flags over the configured defaults.
func genpassSettings(cmd *cobra.Command, a *app, opts *genpassOptions) genpass.Options {
	cfg := a.cfg.GenPass
	pick := func(name string, flagValue, cfgValue bool) bool {
		if cmd.Flags().Changed(name) {
			return flagValue
		}
		return cfgValue
	}

	length := cfg.Length
	if cmd.Flags().Changed("length") {
		length = opts.Length
	}
	return genpass.Options{
		Length: length,
		Upper:  pick("uppercase", opts.Upper, cfg.Uppercase),
		Lower:  pick("lowercase", opts.Lower, cfg.Lowercase),
		Number: pick("number", opts.Number, cfg.Numbers),
		Symbol: pick("symbol", opts.Symbol, cfg.Symbols),
	}
}

func runGenPass(cmd *cobra.Command, a *app, opts *genpassOptions) error {
	password, err := genpass.Generate(genpassSettings(cmd, a, opts))
	if err != nil {
		return err
	}
	score := genpass.Strength(password)

	if a.jsonOutput() {
		return a.output(cmd.OutOrStdout()).JSON(genpassResponse{Password: password, Strength: score})
	}

	if _, err = fmt.Fprintln(cmd.OutOrStdout(), password); err != nil {
		return err
	}
	if !a.flags.Quiet {
		tui.CheckNoColor()
		label := strconv.Itoa(score) + "/4 " + strengthLabel(score)
		a.output(cmd.ErrOrStderr()).Field("strength", tui.StrengthStyle(score).Render(label))
	}
	return nil
}

func strengthLabel(score int) string {
	switch {
	case score >= 4:
		return "very strong"
	case score == 3:
		return "strong"
	case score == 2:
		return "fair"
	case score == 1:
		return "weak"
	default:
		return "very weak"
	}
}
