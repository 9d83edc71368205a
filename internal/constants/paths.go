package constants

// Directory names used by sigil for organizing data.
const (
	// SigilHome is the hidden directory name where sigil stores config and logs.
	// This directory is created in the user's home directory.
	SigilHome = ".sigil"

	// HomeEnvVar overrides the sigil home directory.
	HomeEnvVar = "SIGIL_HOME"

	// EnvPrefix is the prefix for environment variable overrides (SIGIL_TEXT_ALGORITHM, SIGIL_JWT_SECRET).
	EnvPrefix = "SIGIL"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.sigil/logs/sigil.log
	CLILogFileName = "sigil.log"
)

// Configuration file names.
const (
	// ConfigFileName is the name of both the global and the project config file.
	ConfigFileName = "config.yaml"
)

// Log rotation defaults.
const (
	// LogMaxSizeMB is the size in megabytes at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to keep rotated log files.
	LogMaxAgeDays = 28

	// LogCompress determines whether rotated files are gzip-compressed.
	LogCompress = true
)
