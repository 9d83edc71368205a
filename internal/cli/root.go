package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/sigil/internal/config"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/signal"
	"github.com/mrz1836/sigil/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // protects globalLogger
)

// GetLogger returns the logger set up by the root command. Before the root
// command's PersistentPreRunE runs it is a zero logger that discards output.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// app carries state shared by every subcommand once the root command has
// parsed flags and loaded configuration.
type app struct {
	flags *GlobalFlags
	cfg   *config.Config
}

// output returns the Output for the selected --output format.
func (a *app) output(w io.Writer) tui.Output {
	return tui.NewOutput(w, a.flags.Output)
}

func (a *app) jsonOutput() bool {
	return a.flags.Output == OutputJSON
}

// newRootCmd creates the root command for the sigil CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()
	a := &app{flags: flags, cfg: config.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "sigil",
		Short: "Sign and verify text, generate keys, passwords and tokens",
		Long: `sigil signs and verifies arbitrary input with a BLAKE3 keyed hash or Ed25519.

Input is a file path, or "-" for standard input. Signatures are URL-safe
base64 without padding.

Examples:
  sigil text generate --format ed25519 --output-path ./keys
  echo "hello" | sigil text sign --key ./keys/ed25519.sk --format ed25519
  sigil text verify -i msg.txt --key ./keys/ed25519.pk --format ed25519 --sig <signature>
  sigil genpass --length 24
  sigil jwt sign --sub acme --aud device1 --exp 14d`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd, flags); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger := InitLogger(flags.Verbose, flags.Quiet, cfg.Log)
			globalLoggerMu.Lock()
			globalLogger = logger
			globalLoggerMu.Unlock()

			cmd.SetContext(logger.WithContext(cmd.Context()))
			logger.Debug().Str("command", cmd.CommandPath()).Msg("starting")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	addTextCommand(cmd, a)
	addGenPassCommand(cmd, a)
	addJWTCommand(cmd, a)
	addConfigCommand(cmd, a)

	return cmd
}

func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
// Errors are reported on stderr before being returned for the exit code.
func Execute(ctx context.Context, info BuildInfo) error {
	h := signal.NewHandler(ctx)
	defer h.Stop()

	flags := &GlobalFlags{}
	//nolint:contextcheck // cobra passes the context through cmd.Context()
	cmd := newRootCmd(flags, info)
	err := cmd.ExecuteContext(h.Context())
	CloseLogFile()

	if err != nil {
		select {
		case <-h.Interrupted():
			err = fmt.Errorf("%w: %w", errors.ErrOperationCanceled, err)
		default:
		}
		reportError(cmd.ErrOrStderr(), flags.Output, err)
	}
	return err
}

// reportError prints err with the suggested action for its kind.
func reportError(w io.Writer, format string, err error) {
	if stderrors.Is(err, errors.ErrJSONErrorOutput) {
		return
	}
	_, action := errors.Actionable(err)
	tui.NewOutput(w, format).Error(tui.NewActionableError(err.Error(), action).WithCause(err))
}
