// Package errors provides centralized error handling for sigil.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// The signing engine reports every failure through one of the kinds below.
// A signature that fails to verify is NOT an error: Verify returns false with a
// nil error, so callers can tell "verification ran and failed" apart from
// "verification could not run".
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrUnknownAlgorithm indicates an algorithm tag that is neither blake3 nor ed25519.
	// It is a configuration error and is raised before any I/O happens.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrSignatureFormat indicates a signature buffer with the wrong shape for the
	// selected algorithm (e.g. an ed25519 signature shorter than 64 bytes).
	ErrSignatureFormat = errors.New("invalid signature format")

	// ErrIO indicates that an input source or key file could not be opened or read.
	ErrIO = errors.New("i/o failure")

	// ErrKeyFormat indicates key material shorter than the required 32 bytes,
	// or bytes that do not form a valid key for the algorithm.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrDecode indicates that signature text is not valid URL-safe base64.
	ErrDecode = errors.New("invalid signature encoding")

	// ErrEntropy indicates that the random source failed while generating keys.
	ErrEntropy = errors.New("entropy source failure")

	// ErrFileNotFound indicates that an input or key path does not exist.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrNotDirectory indicates that an output path is missing or not a directory.
	ErrNotDirectory = errors.New("path does not exist or is not a directory")

	// ErrKeyExists indicates that key generation would overwrite an existing key file.
	ErrKeyExists = errors.New("key file already exists")

	// ErrLocked indicates a key directory lock is held by another process.
	ErrLocked = errors.New("key directory is locked")

	// ErrInvalidPasswordOptions indicates password options that cannot produce a password.
	ErrInvalidPasswordOptions = errors.New("invalid password options")

	// ErrInvalidDuration indicates that an expiry duration format is invalid.
	ErrInvalidDuration = errors.New("invalid duration format")

	// ErrTokenInvalid indicates a JSON web token that failed parsing or signature checks.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidText indicates an invalid text signing configuration value.
	ErrConfigInvalidText = errors.New("invalid text configuration")

	// ErrConfigInvalidGenPass indicates an invalid password generator configuration value.
	ErrConfigInvalidGenPass = errors.New("invalid genpass configuration")

	// ErrConfigInvalidJWT indicates an invalid JWT configuration value.
	ErrConfigInvalidJWT = errors.New("invalid JWT configuration")

	// ErrConfigInvalidLog indicates an invalid log configuration value.
	ErrConfigInvalidLog = errors.New("invalid log configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// IsConfigurationError reports whether err is a configuration error: an unknown
// algorithm tag or a malformed signature shape. These are never retried.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownAlgorithm) || errors.Is(err, ErrSignatureFormat)
}

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
