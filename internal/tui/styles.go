// Package tui renders sigil's terminal output: styled text on a TTY, one JSON
// object per message otherwise, and an interactive confirmation prompt.
//
// Colors use lipgloss AdaptiveColor for light and dark terminals. Call
// CheckNoColor before rendering to honor NO_COLOR and TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // shared palette
var (
	// ColorPrimary marks informational text and focused prompts.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess marks a valid signature and written keys.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning marks weak passwords and overwrite prompts.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError marks failures and invalid signatures.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted marks secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// OutputStyles holds the styles used by TTYOutput.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
	Label   lipgloss.Style
}

// NewOutputStyles creates the default output styles.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle().Foreground(ColorPrimary),
		Dim:     lipgloss.NewStyle().Foreground(ColorMuted),
		Label:   lipgloss.NewStyle().Bold(true),
	}
}

// StrengthStyle picks a color for a zxcvbn score from 0 to 4.
func StrengthStyle(score int) lipgloss.Style {
	switch {
	case score >= 4:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case score >= 3:
		return lipgloss.NewStyle().Foreground(ColorPrimary)
	case score >= 2:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		return lipgloss.NewStyle().Foreground(ColorError)
	}
}

// CheckNoColor switches lipgloss to plain ASCII when colors are unwanted.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport reports false when NO_COLOR is present (any value) or TERM=dumb.
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
