package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

const footerRangeW = 30

type FooterState struct {
	Mode      Command
	ModeInput string

	FileName string

	RangeLabel string
	Frozen     bool

	Points int
	Rows   int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FrozenBG   lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FrozenBG:   lipgloss.Color("#6dc8ec"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

// RenderFooter draws the control bar (mode, input, highlight state, counts)
// above the status bar (notice, key legend). Both lines are exactly width cells.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.RangeLabel == "" {
		st.RangeLabel = "-"
	}
	if st.Legend == "" {
		st.Legend = "(? help · f freeze · y copy · x export)"
	}
	return controlBar(width, st, styles) + "\n" + statusBar(width, st, styles)
}

func controlBar(width int, st FooterState, styles FooterStyles) string {
	pillBG := styles.ModePillBG
	if st.Frozen {
		pillBG = styles.FrozenBG
	}
	pill := ansiBg(pillBG) + ansiFg(styles.ModePillFG) + " " + commandLabel(st.Mode) + " " +
		ansiBg(styles.BarBG) + ansiFg(styles.TextFG)

	state := fmt.Sprintf("[RANGE: %s] · [FROZEN: %v]", ansi.Truncate(st.RangeLabel, footerRangeW, "…"), st.Frozen)
	counts := fmt.Sprintf(" Points %d · Rows %d", max(st.Points, 0), max(st.Rows, 0))

	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	file := "▸ " + name
	if in := strings.TrimSpace(st.ModeInput); in != "" {
		file += " ▸ " + in
	}

	// the file column takes whatever the fixed parts leave
	fileW := width - ansi.StringWidth(pill) - ansi.StringWidth(state) - ansi.StringWidth(counts) - 2
	file = padRight(ansi.Truncate(file, max(fileW, 0), ""), fileW)

	line := pill + " " + applyFG(file, styles.FileNameFG, styles.TextFG) + " " +
		applyFG(state, styles.DimFG, styles.TextFG) + counts
	return applyBar(fitWidth(line, width), styles.BarBG, styles.TextFG)
}

func statusBar(width int, st FooterState, styles FooterStyles) string {
	legend := ansi.Truncate(st.Legend, width, "")
	msgW := width - ansi.StringWidth(legend)
	msg := padRight(ansi.Truncate(st.StatusMessage, msgW, ""), msgW)

	line := msg + applyFG(legend, styles.LegendFG, styles.StatusFG)
	return applyBar(line, styles.StatusBG, styles.StatusFG)
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	default:
		return "NORMAL"
	}
}

// fitWidth pads or cuts s, which may hold escape sequences, to w cells.
func fitWidth(s string, w int) string {
	if ansi.StringWidth(s) > w {
		return ansi.Truncate(s, w, "")
	}
	return padRight(s, w)
}

func padRight(s string, w int) string {
	if cur := ansi.StringWidth(s); cur < w {
		return s + strings.Repeat(" ", w-cur)
	}
	return s
}

func applyBar(s string, bg, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func applyFG(s string, fg, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string { return ansiColor(false, c) }
func ansiBg(c lipgloss.Color) string { return ansiColor(true, c) }

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return ""
	}
	return termenv.CSI + termenv.TrueColor.Color(s).Sequence(isBg) + "m"
}
