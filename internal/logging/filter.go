// Package logging keeps key material, token secrets and issued tokens out of
// log output. It provides a zerolog hook and an io.Writer that redacts.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue replaces every sensitive match.
const RedactedValue = "[REDACTED]"

var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // compiled once
	// Compact JWS: three base64url segments, header starting with {"
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]*\.[a-zA-Z0-9_-]*`),

	// PEM private keys
	regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]*PRIVATE KEY-----`),

	// Assignments of secrets, passwords and seeds
	regexp.MustCompile(`(?i)(secret|password|passwd|seed|private[_-]?key)\s*[:=]\s*["']?[^\s"',}]{4,}["']?`),

	// Bearer tokens
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._-]{20,}`),
}

var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // matched case-insensitively
	"secret",
	"password",
	"passwd",
	"seed",
	"private_key",
	"privatekey",
	"key_material",
	"token",
	"authorization",
}

// SensitiveDataHook flags log events whose message contains sensitive data.
// zerolog cannot rewrite a message from a hook, so the writer does the redaction.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements zerolog.Hook.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value with [REDACTED].
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName reports whether a field name implies a secret value.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// SafeValue returns value redacted as needed for logging under fieldName.
//
//	log.Debug().Str("secret", logging.SafeValue("secret", cfg.JWT.Secret)).Msg("jwt configured")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter redacts sensitive data before passing bytes to w.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports len(p) on success even when the
// redacted output is shorter.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	if _, err := fw.w.Write([]byte(FilterSensitiveValue(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
