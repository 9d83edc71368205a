package tui

// ActionableError pairs a user-facing message with a next step.
//
//	err := tui.NewActionableError("key file does not exist", "Run: sigil text generate").
//	    WithContext("./blake3.txt")
//	output.Error(err)
//	// ✗ key file does not exist (./blake3.txt)
//	//   ▸ Try: Run: sigil text generate
type ActionableError struct {
	Message    string
	Suggestion string
	Context    string

	// Err is the underlying error, kept so errors.Is still matches sentinels.
	Err error
}

// NewActionableError creates an ActionableError.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{Message: msg, Suggestion: suggestion}
}

// Error returns the message, with context in parentheses when set.
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ActionableError) Unwrap() error {
	return e.Err
}

// WithContext sets Context and returns e.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}

// WithCause sets Err and returns e.
func (e *ActionableError) WithCause(err error) *ActionableError {
	e.Err = err
	return e
}
