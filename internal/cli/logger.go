// Package cli provides the command-line interface for sigil.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/sigil/internal/config"
	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/logging"
)

// logFileWriter is kept for CloseLogFile.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // needed for cleanup

// zerologGlobalMu guards writes to the zerolog global logger.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // protects zerolog global

// InitLogger builds the CLI logger.
//
// Levels: verbose → debug, quiet → warn, default info. Console output is a
// ConsoleWriter on a TTY without NO_COLOR and JSON on stderr otherwise. Every
// entry is also written, redacted, to a rotating log file under the sigil home.
// A log file that cannot be opened is skipped silently.
func InitLogger(verbose, quiet bool, logCfg config.LogConfig) zerolog.Logger {
	CloseLogFile()
	writer := selectOutput()

	fileWriter, err := createLogFileWriter(logCfg)
	if err == nil {
		logFileWriter = fileWriter
		writer = zerolog.MultiLevelWriter(writer, fileWriter)
	}

	logger := buildLogger(writer, selectLevel(verbose, quiet))
	setGlobalLogger(logger)
	return logger
}

// InitLoggerWithWriter builds a logger that writes only to w, redacted.
// Used by tests.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	logger := buildLogger(logging.NewFilteringWriter(w), selectLevel(verbose, quiet))
	setGlobalLogger(logger)
	return logger
}

func buildLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).Hook(logging.NewSensitiveDataHook()).With().Timestamp().Logger()
}

func setGlobalLogger(l zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = l
}

// CloseLogFile closes the log file opened by InitLogger, if any.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

// filteringWriteCloser redacts on write and closes the underlying file.
type filteringWriteCloser struct {
	filter *logging.FilteringWriter
	closer io.Closer
}

func (fwc *filteringWriteCloser) Write(p []byte) (int, error) {
	return fwc.filter.Write(p)
}

func (fwc *filteringWriteCloser) Close() error {
	return fwc.closer.Close()
}

// createLogFileWriter opens the rotating log file, redacting everything written.
func createLogFileWriter(logCfg config.LogConfig) (io.WriteCloser, error) {
	logPath, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), constants.DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logCfg.MaxSizeMB,
		MaxBackups: logCfg.MaxBackups,
		MaxAge:     logCfg.MaxAgeDays,
		Compress:   logCfg.Compress,
	}
	return &filteringWriteCloser{
		filter: logging.NewFilteringWriter(lj),
		closer: lj,
	}, nil
}

// LogFilePath returns the path of the CLI log file.
func LogFilePath() (string, error) {
	dir, err := config.LogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.CLILogFileName), nil
}
