package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal,
// and order matters: the first matching entry wins.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Signing engine
	// ===================
	{
		err: ErrUnknownAlgorithm,
		info: ErrorInfo{
			Message: "Unsupported signing algorithm.",
			Action:  "Use --format blake3 or --format ed25519.",
		},
	},
	{
		err: ErrSignatureFormat,
		info: ErrorInfo{
			Message: "The signature has the wrong length for this algorithm.",
			Action:  "Ed25519 signatures decode to 64 bytes, blake3 signatures to 32 bytes.",
		},
	},
	{
		err: ErrDecode,
		info: ErrorInfo{
			Message: "The signature is not valid URL-safe base64.",
			Action:  "Pass the signature exactly as printed by 'sigil text sign'.",
		},
	},
	{
		err: ErrKeyFormat,
		info: ErrorInfo{
			Message: "The key file does not contain a valid 32-byte key.",
			Action:  "Generate a new key with 'sigil text generate'.",
		},
	},
	{
		err: ErrFileNotFound,
		info: ErrorInfo{
			Message: "The file does not exist.",
			Action:  "Check the path, or use '-' to read from standard input.",
		},
	},
	{
		err: ErrIO,
		info: ErrorInfo{
			Message: "Could not read the input or key file.",
			Action:  "Check that the file exists and is readable.",
		},
	},
	{
		err: ErrEntropy,
		info: ErrorInfo{
			Message: "The system random source failed.",
			Action:  "",
		},
	},

	// ===================
	// Key storage
	// ===================
	{
		err: ErrNotDirectory,
		info: ErrorInfo{
			Message: "The output path is not an existing directory.",
			Action:  "Create the directory first or pass a different --output-dir.",
		},
	},
	{
		err: ErrKeyExists,
		info: ErrorInfo{
			Message: "A key file already exists in the output directory.",
			Action:  "Use --force to overwrite it, or choose another directory.",
		},
	},
	{
		err: ErrLocked,
		info: ErrorInfo{
			Message: "Another sigil process is writing keys to this directory.",
			Action:  "Wait for it to finish and try again.",
		},
	},

	// ===================
	// Passwords & tokens
	// ===================
	{
		err: ErrInvalidPasswordOptions,
		info: ErrorInfo{
			Message: "The password options cannot produce a password.",
			Action:  "Enable at least one character class and use a length of at least 4.",
		},
	},
	{
		err: ErrInvalidDuration,
		info: ErrorInfo{
			Message: "Invalid duration format.",
			Action:  "Use formats like '30s', '5m', '1h' or '7d'.",
		},
	},
	{
		err: ErrTokenInvalid,
		info: ErrorInfo{
			Message: "The token could not be verified.",
			Action:  "Check that the token was issued with the configured secret.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure config.yaml exists and is valid YAML.",
		},
	},
	{
		err: ErrConfigInvalidText,
		info: ErrorInfo{
			Message: "Invalid text configuration.",
			Action:  "Check the 'text' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidGenPass,
		info: ErrorInfo{
			Message: "Invalid password generator configuration.",
			Action:  "Check the 'genpass' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidJWT,
		info: ErrorInfo{
			Message: "Invalid JWT configuration.",
			Action:  "Check the 'jwt' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidLog,
		info: ErrorInfo{
			Message: "Invalid log configuration.",
			Action:  "Check the 'log' section in config.yaml for invalid values.",
		},
	},

	// ===================
	// User Interaction
	// ===================
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation was canceled.",
			Action:  "",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "This operation requires confirmation in non-interactive mode.",
			Action:  "Use --force flag to skip confirmation.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
