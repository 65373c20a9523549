package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/siftly-interval/config"
	"github.com/andareed/siftly-interval/highlight"
	"github.com/andareed/siftly-interval/tooltip"
)

const (
	coverZoneID = "interval-cover"
	axisWidth   = 8
	barGlyph    = "█"
)

// categoriesOf returns the distinct categories of rows in first-seen order.
func categoriesOf(rows []highlight.Row, dim string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		k := highlight.ComparableKey(r.Get(dim))
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// buildScreenModel maps the x dimension onto plot columns 0..plotW-1 and
// stacks categories in configured order, unknown ones last.
func buildScreenModel(rows []highlight.Row, chart config.Chart, plotW int) (highlight.ScreenModel, *highlight.OrdinalColors) {
	domain := chart.Categories
	if len(domain) == 0 {
		domain = categoriesOf(rows, chart.Category)
	} else {
		known := make(map[string]struct{}, len(domain))
		for _, c := range domain {
			known[c] = struct{}{}
		}
		for _, c := range categoriesOf(rows, chart.Category) {
			if _, ok := known[c]; !ok {
				domain = append(domain, c)
			}
		}
	}
	colors := highlight.NewOrdinalColors(chart.Category, domain, chart.Colors)

	sm := highlight.ScreenModel{
		X:       highlight.FitLinearScale(rows, chart.X, 0, float64(max(plotW-1, 0))),
		Y:       highlight.Dimension(chart.Y),
		Color:   colors,
		Order:   colors.Order,
		Stacker: highlight.NewCumulativeStacker(chart.X, chart.Y),
	}
	return sm, colors
}

// plotColumns buckets stacked rows by the plot column their x value maps to.
func plotColumns(rows []highlight.StackedRow, sm highlight.ScreenModel, plotW int) ([][]highlight.StackedRow, float64) {
	cols := make([][]highlight.StackedRow, plotW)
	top := 0.0
	xDim := sm.X.Dim()
	for _, sr := range rows {
		c := int(math.Round(sm.X.Value(sr.Row.Get(xDim))))
		if c < 0 || c >= plotW {
			continue
		}
		cols[c] = append(cols[c], sr)
		top = math.Max(top, sr.Y)
	}
	return cols, top
}

// bandColumns returns the inclusive column span of the highlight, if drawn.
func bandColumns(surface *highlight.MemorySurface) (from, to int, ok bool) {
	r, ok := surface.Rect(highlight.ClassCursor)
	if !ok || r.Width <= 0 {
		return 0, 0, false
	}
	return int(math.Round(r.X)), int(math.Round(r.X + r.Width)), true
}

type cellKey struct {
	color string
	band  bool
}

// renderPlot draws the stacked columns and the highlight band, top line first.
func renderPlot(rows []highlight.StackedRow, sm highlight.ScreenModel, surface *highlight.MemorySurface, plotW, plotH int) string {
	if _, ok := surface.Rect(highlight.ClassCover); !ok || plotW <= 0 {
		msg := wordwrap.String("No data to plot. Check the x, y and category names in the config.", max(plotW, 20))
		return emptyPlotStyle.Width(max(plotW, 20)).Height(plotH).Render(msg)
	}

	cols, top := plotColumns(rows, sm, plotW)
	if top <= 0 {
		top = 1
	}
	bandFrom, bandTo, hasBand := bandColumns(surface)
	catDim := sm.Color.Dim()

	styles := make(map[cellKey]lipgloss.Style)
	cell := func(color string, band bool) lipgloss.Style {
		k := cellKey{color, band}
		if st, ok := styles[k]; ok {
			return st
		}
		st := lipgloss.NewStyle()
		if color != "" {
			st = st.Foreground(lipgloss.Color(color))
		}
		if band {
			st = st.Background(lipgloss.Color(bandBGColor))
		}
		styles[k] = st
		return st
	}

	var b strings.Builder
	for line := 0; line < plotH; line++ {
		level := (float64(plotH-line) - 0.5) / float64(plotH) * top
		for c := 0; c < plotW; c++ {
			band := hasBand && c >= bandFrom && c <= bandTo
			glyph, color := " ", ""
			for _, sr := range cols[c] {
				if level >= sr.Y0 && level < sr.Y {
					glyph = barGlyph
					color = sm.Color.Color(highlight.ComparableKey(sr.Row.Get(catDim)))
				}
			}
			b.WriteString(cell(color, band).Render(glyph))
		}
		if line < plotH-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderYAxis labels the top of the stack scale and zero.
func renderYAxis(top float64, plotH int) string {
	lines := make([]string, plotH)
	for i := range lines {
		lines[i] = strings.Repeat(" ", axisWidth-1) + "┤"
	}
	lines[0] = fmt.Sprintf("%*s┤", axisWidth-1, tooltip.FormatValue(top))
	lines[plotH-1] = fmt.Sprintf("%*s┤", axisWidth-1, "0")
	return axisStyle.Render(strings.Join(lines, "\n"))
}

// renderXAxis draws the baseline and the first and last x values.
func renderXAxis(index []highlight.IndexEntry, plotW int) string {
	base := strings.Repeat(" ", axisWidth-1) + "└" + strings.Repeat("─", plotW)
	if len(index) == 0 {
		return axisStyle.Render(base)
	}
	left := formatX(index[0].Val)
	right := formatX(index[len(index)-1].Val)
	gap := plotW - lipgloss.Width(left) - lipgloss.Width(right)
	labels := strings.Repeat(" ", axisWidth) + left
	if gap > 0 {
		labels += strings.Repeat(" ", gap) + right
	}
	return axisStyle.Render(base + "\n" + labels)
}

// formatX renders an x value for axis labels and notices.
func formatX(v any) string {
	if t, ok := v.(time.Time); ok {
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("02 Jan 2006")
		}
		return t.Format("02 Jan 15:04")
	}
	if n, ok := highlight.Numeric(v); ok {
		return tooltip.FormatValue(n)
	}
	if v == nil {
		return "-"
	}
	return fmt.Sprint(v)
}

func formatRange(r highlight.Range) string {
	if r.IsZero() {
		return "-"
	}
	return formatX(r.Prev) + " → " + formatX(r.Next)
}

// chartView renders the axes around the plot and marks the plot as the cover zone.
func (m *model) chartView() string {
	sm := m.overlay.ScreenModel()
	rows := m.overlay.Rows()
	plot := renderPlot(rows, sm, m.surface, m.plotW, m.plotH)

	_, top := plotColumns(rows, sm, m.plotW)
	if top <= 0 {
		top = 1
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderYAxis(top, lipgloss.Height(plot)),
		m.zones.Mark(coverZoneID, plot),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.chartTitle()),
		body,
		renderXAxis(m.overlay.Index(), m.plotW),
		m.legendView(),
	)
}

func (m *model) chartTitle() string {
	return fmt.Sprintf("%s by %s, stacked by %s", m.cfg.Chart.Y, m.cfg.Chart.X, m.cfg.Chart.Category)
}

// legendView lists the categories in stacking order with their colors.
func (m *model) legendView() string {
	if m.colors == nil {
		return ""
	}
	var parts []string
	for _, cat := range m.colors.Domain() {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Color(cat))).Render(barGlyph)
		parts = append(parts, swatch+" "+cat)
	}
	return strings.Repeat(" ", axisWidth) + strings.Join(parts, "  ")
}
