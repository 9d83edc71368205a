package tui

import "io"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output writes user-facing messages in either styled text or JSON.
type Output interface {
	// Success reports a completed action.
	Success(msg string)
	// Error reports a failure, including any actionable suggestion.
	Error(err error)
	// Warning reports something the user should look at.
	Warning(msg string)
	// Info reports neutral progress.
	Info(msg string)
	// Field prints a labeled value such as a file path or a password score.
	Field(label, value string)
	// JSON writes v as JSON.
	JSON(v any) error
}

// NewOutput returns the Output for format. Anything but "json" is styled text.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
