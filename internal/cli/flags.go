package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/tui"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution. A verification that ran and
	// found a mismatch still exits with ExitSuccess.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = tui.FormatText
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = tui.FormatJSON
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Output specifies the output format (text or json).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper so SIGIL_OUTPUT, SIGIL_VERBOSE
// and SIGIL_QUIET work as well.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command, flags *GlobalFlags) error {
	rootFlags := cmd.Root().PersistentFlags()
	for _, name := range []string{"output", "verbose", "quiet"} {
		if err := v.BindPFlag(name, rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	flags.Output = v.GetString("output")
	flags.Verbose = v.GetBool("verbose")
	flags.Quiet = v.GetBool("quiet")
	return nil
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// invalidInputErrors map to ExitInvalidInput.
//
//nolint:gochecknoglobals // fixed lookup list
var invalidInputErrors = []error{
	errors.ErrInvalidOutputFormat,
	errors.ErrUnknownAlgorithm,
	errors.ErrSignatureFormat,
	errors.ErrDecode,
	errors.ErrFileNotFound,
	errors.ErrNotDirectory,
	errors.ErrKeyExists,
	errors.ErrNonInteractiveMode,
	errors.ErrInvalidPasswordOptions,
	errors.ErrInvalidDuration,
}

// ExitCodeForError returns the exit code for err: 0 for nil, 2 for invalid
// input (bad flags, unknown algorithm, missing files, undecodable signatures)
// and 1 for everything else.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.IsExitCode2Error(err) {
		return ExitInvalidInput
	}
	for _, target := range invalidInputErrors {
		if stderrors.Is(err, target) {
			return ExitInvalidInput
		}
	}
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}
	return ExitError
}

// isInvalidInputError catches cobra's own flag and argument errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
		"accepts ",
	}
	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
