package main

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-interval/dialogs"
)

func (m *model) View() string {
	if !m.ready {
		return "Loading..."
	}

	body := m.chartView()
	if m.ui.mode == modeDialog && m.dialog != nil {
		body = dialogs.Center(m.dialog.View(), max(m.width-4, 0), max(m.height-footerHeight-2, 0))
	}
	frame := lipgloss.JoinVertical(lipgloss.Left,
		appstyle.Render(body),
		m.footerView(m.width),
	)
	// Scan strips the zone markers and records where the cover landed.
	frame = m.zones.Scan(frame)
	return m.balloon.overlay(frame, m.width, m.height)
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	footerMode := CmdNone
	modeInput := ""
	if m.ui.mode == modeCommand {
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
	}

	r, _ := m.overlay.ActiveRange()
	st := FooterState{
		Mode:          footerMode,
		ModeInput:     modeInput,
		FileName:      filepath.Base(m.inputPath),
		RangeLabel:    formatRange(r),
		Frozen:        m.overlay.Frozen(),
		Points:        len(m.overlay.Index()),
		Rows:          len(m.rows),
		StatusMessage: noticeText(m.ui.noticeMsg, m.ui.noticeType),
		Legend:        "(" + m.legend.ShortHelpView(Keys.ShortHelp()) + ")",
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}
