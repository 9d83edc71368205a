package tui

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mrz1836/sigil/internal/errors"
)

// formRunner runs a huh form. Tests replace it to avoid a real terminal.
//
//nolint:gochecknoglobals // test injection point
var formRunner = func(f *huh.Form) error { return f.Run() }

// IsTerminal reports whether stdin is attached to a terminal.
//
//nolint:gochecknoglobals // test injection point
var IsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// SigilTheme is huh's base theme recolored with the sigil palette.
func SigilTheme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorWarning)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	return t
}

// Confirm asks a yes/no question. It fails with errors.ErrNonInteractiveMode
// when stdin is not a terminal and errors.ErrOperationCanceled when the user
// aborts the prompt.
func Confirm(title, description string) (bool, error) {
	if !IsTerminal() {
		return false, errors.ErrNonInteractiveMode
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes, overwrite").
				Negative("No, cancel").
				Value(&confirmed),
		),
	).WithTheme(SigilTheme())

	if err := formRunner(form); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return false, errors.ErrOperationCanceled
		}
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}
	return confirmed, nil
}
