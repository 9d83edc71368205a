package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/sigil/internal/constants"
)

// DefaultConfig returns a Config populated with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			Algorithm:   constants.DefaultAlgorithm,
			KeyDir:      ".",
			LockTimeout: constants.KeyLockTimeout,
		},
		GenPass: GenPassConfig{
			Length:    constants.DefaultPasswordLength,
			Uppercase: true,
			Lowercase: true,
			Numbers:   true,
			Symbols:   true,
		},
		JWT: JWTConfig{
			// Matches the well-known example secret so tokens interoperate with
			// jwt.io out of the box. Override it for anything real.
			Secret: constants.DefaultJWTSecret,
			Expiry: constants.DefaultJWTExpiry,
		},
		Log: LogConfig{
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAgeDays: constants.LogMaxAgeDays,
			Compress:   constants.LogCompress,
		},
	}
}

// setDefaults registers every key with viper. Keys must match the mapstructure
// tags so SIGIL_* environment variables resolve.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("text.algorithm", d.Text.Algorithm)
	v.SetDefault("text.key_dir", d.Text.KeyDir)
	v.SetDefault("text.password_keys", d.Text.PasswordKeys)
	v.SetDefault("text.lock_timeout", d.Text.LockTimeout.String())

	v.SetDefault("genpass.length", d.GenPass.Length)
	v.SetDefault("genpass.uppercase", d.GenPass.Uppercase)
	v.SetDefault("genpass.lowercase", d.GenPass.Lowercase)
	v.SetDefault("genpass.numbers", d.GenPass.Numbers)
	v.SetDefault("genpass.symbols", d.GenPass.Symbols)

	v.SetDefault("jwt.secret", d.JWT.Secret)
	v.SetDefault("jwt.expiry", d.JWT.Expiry)
	v.SetDefault("jwt.audience", d.JWT.Audience)

	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
}
