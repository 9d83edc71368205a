package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// TTYOutput renders styled lines with lipgloss.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a TTYOutput. NO_COLOR is honored.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()
	return &TTYOutput{w: w, styles: NewOutputStyles()}
}

// Success prints a green ✓ line.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error prints a red ✗ line, followed by the suggestion of an ActionableError.
func (o *TTYOutput) Error(err error) {
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))

	var ae *ActionableError
	if errors.As(err, &ae) && ae.Suggestion != "" {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+ae.Suggestion))
	}
}

// Warning prints a yellow ⚠ line.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info prints a blue ℹ line.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render("ℹ "+msg))
}

// Field prints "label: value" with a bold label.
func (o *TTYOutput) Field(label, value string) {
	_, _ = fmt.Fprintf(o.w, "%s %s\n", o.styles.Label.Render(label+":"), value)
}

// JSON writes v as indented JSON.
func (o *TTYOutput) JSON(v any) error {
	encoder := json.NewEncoder(o.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

var _ Output = (*TTYOutput)(nil)
