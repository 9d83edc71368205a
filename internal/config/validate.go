package config

import (
	"strings"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/timeutil"
)

// Validate checks the configuration and returns the first problem found.
//
// Validation rules:
//   - text.algorithm must be blake3 or ed25519
//   - text.lock_timeout must be positive
//   - genpass.length must be within 4-255 and at least one class enabled
//   - jwt.secret must not be empty and jwt.expiry must parse
//   - log sizes must not be negative
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateTextConfig(&cfg.Text); err != nil {
		return err
	}
	if err := validateGenPassConfig(&cfg.GenPass); err != nil {
		return err
	}
	if err := validateJWTConfig(&cfg.JWT); err != nil {
		return err
	}
	return validateLogConfig(&cfg.Log)
}

func validateTextConfig(cfg *TextConfig) error {
	switch strings.ToLower(cfg.Algorithm) {
	case constants.AlgorithmBlake3, constants.AlgorithmEd25519:
	default:
		return errors.Wrapf(errors.ErrConfigInvalidText,
			"text.algorithm must be %s or %s, got %q",
			constants.AlgorithmBlake3, constants.AlgorithmEd25519, cfg.Algorithm)
	}
	if cfg.LockTimeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidText,
			"text.lock_timeout must be positive, got %s", cfg.LockTimeout)
	}
	return nil
}

func validateGenPassConfig(cfg *GenPassConfig) error {
	if cfg.Length < constants.MinPasswordLength || cfg.Length > constants.MaxPasswordLength {
		return errors.Wrapf(errors.ErrConfigInvalidGenPass,
			"genpass.length must be between %d and %d, got %d",
			constants.MinPasswordLength, constants.MaxPasswordLength, cfg.Length)
	}
	if !cfg.Uppercase && !cfg.Lowercase && !cfg.Numbers && !cfg.Symbols {
		return errors.Wrap(errors.ErrConfigInvalidGenPass,
			"genpass needs at least one of uppercase, lowercase, numbers, symbols")
	}
	return nil
}

func validateJWTConfig(cfg *JWTConfig) error {
	if cfg.Secret == "" {
		return errors.Wrap(errors.ErrConfigInvalidJWT, "jwt.secret must not be empty")
	}
	if _, err := timeutil.ParseDuration(cfg.Expiry); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalidJWT, "jwt.expiry: %v", err)
	}
	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg.MaxSizeMB < 0 || cfg.MaxBackups < 0 || cfg.MaxAgeDays < 0 {
		return errors.Wrap(errors.ErrConfigInvalidLog,
			"log.max_size_mb, log.max_backups and log.max_age_days cannot be negative")
	}
	return nil
}
