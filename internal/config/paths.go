package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// GlobalConfigDir returns the sigil home directory: $SIGIL_HOME when set,
// otherwise ~/.sigil.
func GlobalConfigDir() (string, error) {
	if dir := os.Getenv(constants.HomeEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.SigilHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns .sigil/config.yaml relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.SigilHome, constants.ConfigFileName)
}

// LogDir returns the directory holding rotated log files.
func LogDir() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir), nil
}
