package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/mathworlds/internal/ui/theme"
)

// Cell is one table cell with an optional style.
type Cell struct {
	Text  string
	Style *lipgloss.Style
}

// Plain returns an unstyled cell.
func Plain(text string) Cell {
	return Cell{Text: text}
}

// Styled returns a cell rendered with st.
func Styled(text string, st lipgloss.Style) Cell {
	return Cell{Text: text, Style: &st}
}

// Table renders rows with columns padded to their widest cell. Widths are
// measured in terminal cells so emoji icons line up.
func Table(rows [][]Cell) string {
	var widths []int
	for _, row := range rows {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(c.Text))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, c := range row {
			text := c.Text
			if i < len(row)-1 {
				text = runewidth.FillRight(text, widths[i])
			}
			if c.Style != nil {
				text = theme.Paint(*c.Style, text)
			}
			b.WriteString(text)
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
