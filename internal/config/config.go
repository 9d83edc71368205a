// Package config provides layered configuration for sigil.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the command that reads them)
//  2. Environment variables (SIGIL_* prefix, e.g. SIGIL_JWT_SECRET)
//  3. Project config (.sigil/config.yaml)
//  4. Global config (~/.sigil/config.yaml, or $SIGIL_HOME/config.yaml)
//  5. Built-in defaults
//
// This package may import internal/constants, internal/errors and
// internal/timeutil, but MUST NOT import the signing packages.
package config

import "time"

// Config is the root configuration structure for sigil.
type Config struct {
	// Text holds settings for `sigil text sign|verify|generate`.
	Text TextConfig `yaml:"text" mapstructure:"text"`

	// GenPass holds the password generator defaults.
	GenPass GenPassConfig `yaml:"genpass" mapstructure:"genpass"`

	// JWT holds token signing settings.
	JWT JWTConfig `yaml:"jwt" mapstructure:"jwt"`

	// Log holds log file rotation settings.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// TextConfig contains settings for text signing and key generation.
type TextConfig struct {
	// Algorithm is used when --format is not given.
	// Default: "blake3"
	Algorithm string `yaml:"algorithm" mapstructure:"algorithm"`

	// KeyDir is where `text generate` writes keys when --output-path is not given.
	// Default: "." (current directory)
	KeyDir string `yaml:"key_dir" mapstructure:"key_dir"`

	// PasswordKeys derives blake3 keys from a printable 32-character password
	// instead of uniform random bytes.
	// Default: false
	PasswordKeys bool `yaml:"password_keys" mapstructure:"password_keys"`

	// LockTimeout bounds the wait for the key directory lock.
	// Default: 5s
	LockTimeout time.Duration `yaml:"lock_timeout" mapstructure:"lock_timeout"`
}

// GenPassConfig contains password generator defaults.
type GenPassConfig struct {
	// Length of generated passwords. Valid range: 4-255. Default: 16
	Length int `yaml:"length" mapstructure:"length"`

	Uppercase bool `yaml:"uppercase" mapstructure:"uppercase"`
	Lowercase bool `yaml:"lowercase" mapstructure:"lowercase"`
	Numbers   bool `yaml:"numbers" mapstructure:"numbers"`
	Symbols   bool `yaml:"symbols" mapstructure:"symbols"`
}

// JWTConfig contains token signing settings.
type JWTConfig struct {
	// Secret is the HS256 key. Prefer SIGIL_JWT_SECRET over writing it to a file.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// Expiry is the default token lifetime ("30s", "15m", "1h", "7d").
	// Default: "1h"
	Expiry string `yaml:"expiry" mapstructure:"expiry"`

	// Audience is the default aud claim. Empty omits the claim.
	Audience string `yaml:"audience" mapstructure:"audience"`
}

// LogConfig controls rotation of ~/.sigil/logs/sigil.log.
type LogConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}
