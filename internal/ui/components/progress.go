package components

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/abhisek/mathworlds/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Paint(theme.Body, p.Label) + "  "
	}

	labelWidth := 0
	if p.Label != "" {
		labelWidth = runewidth.StringWidth(p.Label) + 2
	}
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)

	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	empty := barWidth - filled

	result += theme.Paint(theme.ProgressFilled, strings.Repeat("█", filled))
	result += theme.Paint(theme.ProgressEmpty, strings.Repeat("░", empty))

	if p.ShowPercent {
		result += theme.Paint(theme.Hint, fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
