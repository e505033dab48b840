package theme

import (
	"os"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

var colorEnabled = true

// SetColor turns styling on or off for Paint.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

// DetectColor enables styling only when f is a terminal and NO_COLOR is unset.
func DetectColor(f *os.File) {
	SetColor(IsTerminal(f) && os.Getenv("NO_COLOR") == "")
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Paint renders s with st, or returns s untouched when styling is off.
func Paint(st lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return st.Render(s)
}
