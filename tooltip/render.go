package tooltip

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer turns tooltip content into the string handed to the balloon.
type Renderer interface {
	Render(c Content) string
}

// TextRenderer draws the comparison for a terminal. Bars are scaled from
// Item.Width down to at most BarCells cells.
type TextRenderer struct {
	BarCells int
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func (r TextRenderer) Render(c Content) string {
	cells := r.BarCells
	if cells <= 0 {
		cells = 20
	}

	nameW := 0
	for _, it := range c.Items {
		nameW = max(nameW, lipgloss.Width(it.Name))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(c.DateRange))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(c.DiffDays))

	for _, it := range c.Items {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-*s ", nameW, it.Name))

		// negative values draw no bar
		n := min(max(int(math.Round(it.Width/barMaxWidth*float64(cells))), 0), cells)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render(strings.Repeat("█", n))
		b.WriteString(bar)
		b.WriteString(strings.Repeat(" ", cells-n+1))
		b.WriteString(FormatValue(it.Value))

		glyph, mag := Delta(it.Diff)
		switch glyph {
		case glyphUp:
			b.WriteString(" " + positiveStyle.Render(glyph+mag))
		case glyphDown:
			b.WriteString(" " + negativeStyle.Render(glyph+mag))
		}
	}
	return b.String()
}

// PlainText renders the content without styling, one tab-separated line per
// category, for the clipboard.
func PlainText(c Content) string {
	var b strings.Builder
	b.WriteString(c.DateRange + " " + c.DiffDays)
	for _, it := range c.Items {
		glyph, mag := Delta(it.Diff)
		b.WriteString("\n" + it.Name + "\t" + FormatValue(it.Value))
		if glyph != "" {
			b.WriteString("\t" + glyph + mag)
		}
	}
	return b.String()
}
