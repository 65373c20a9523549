package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-interval/config"
	"github.com/andareed/siftly-interval/dialogs"
	"github.com/andareed/siftly-interval/highlight"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func testRows() []highlight.Row {
	return []highlight.Row{
		{"date": day(1), "category": "ok", "value": 3.0},
		{"date": day(1), "category": "warn", "value": 1.0},
		{"date": day(2), "category": "ok", "value": 4.0},
		{"date": day(2), "category": "warn", "value": 2.0},
		{"date": day(3), "category": "ok", "value": 5.0},
	}
}

func newTestModel(t *testing.T, mutate func(*config.File)) *model {
	t.Helper()
	cfg := config.Default()
	cfg.Chart.BlurDelayMS = 1
	if mutate != nil {
		mutate(&cfg)
	}
	m := newModel(cfg, filepath.Join(t.TempDir(), "metrics.csv"), "", testRows())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fireDeferred runs the pending scheduler ticks and feeds their messages back.
func fireDeferred(t *testing.T, m *model) {
	t.Helper()
	cmd := m.sched.drain()
	require.NotNil(t, cmd)
	var msgs []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			msgs = append(msgs, c())
		}
	default:
		msgs = append(msgs, msg)
	}
	for _, msg := range msgs {
		_, ok := msg.(deferredMsg)
		require.True(t, ok, "unexpected %T", msg)
		m.Update(msg)
	}
}

func TestModel_RenderOnResize(t *testing.T) {
	m := newTestModel(t, nil)

	require.True(t, m.ready)
	require.Equal(t, 100-4-axisWidth, m.plotW)
	require.Equal(t, 12, m.plotH)
	require.Len(t, m.overlay.Index(), 3)

	cover, ok := m.surface.Rect(highlight.ClassCover)
	require.True(t, ok)
	require.Equal(t, float64(m.plotW), cover.Width)
}

func TestModel_StepRangeHighlightsInterval(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(runeKey("l"))
	r, ok := m.overlay.ActiveRange()
	require.True(t, ok)
	require.Equal(t, day(1), r.Prev)
	require.Equal(t, day(2), r.Next)

	m.Update(runeKey("l"))
	r, _ = m.overlay.ActiveRange()
	require.Equal(t, day(3), r.Next)

	// clamps at the last interval
	m.Update(runeKey("l"))
	r, _ = m.overlay.ActiveRange()
	require.Equal(t, day(2), r.Prev)

	from, to, ok := bandColumns(m.surface)
	require.True(t, ok)
	require.Less(t, from, to)
}

func TestModel_FocusShowsTooltip(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, ok := m.tip.Last()
	require.False(t, ok)
	require.Equal(t, "! Move to an interval first (h/l or mouse)", noticeText(m.ui.noticeMsg, m.ui.noticeType))

	m.Update(runeKey("l"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c, ok := m.tip.Last()
	require.True(t, ok)
	require.Equal(t, "01–02 Mar 2024", c.DateRange)
	require.True(t, m.balloon.visible)
	require.Contains(t, m.View(), "01–02 Mar 2024")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.balloon.visible)
}

func TestModel_LeaveBlursUnlessFrozen(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(runeKey("l"))
	m.ui.pointerInside = true
	m.handleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	require.False(t, m.ui.pointerInside)
	fireDeferred(t, m)
	require.Equal(t, highlight.StateIdle, m.overlay.State())

	m.Update(runeKey("l"))
	m.Update(runeKey("f"))
	require.True(t, m.overlay.Frozen())
	m.ui.pointerInside = true
	m.handleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	fireDeferred(t, m)
	require.Equal(t, highlight.StateActive, m.overlay.State())

	// unfreezing outside the chart releases the held blur
	m.toggleFreeze()
	require.False(t, m.overlay.Frozen())
	fireDeferred(t, m)
	require.Equal(t, highlight.StateIdle, m.overlay.State())
}

func TestModel_JumpCommand(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(runeKey(":"))
	require.Equal(t, modeCommand, m.ui.mode)
	for _, r := range "2024-03-02 12:00:00" {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(runeKey(string(r)))
	}
	require.Contains(t, m.activeCommandLine(), "date: 2024-03-02 12:00:00")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, modeView, m.ui.mode)
	r, ok := m.overlay.ActiveRange()
	require.True(t, ok)
	require.Equal(t, day(2), r.Prev)
	require.Equal(t, day(3), r.Next)
	c, ok := m.tip.Last()
	require.True(t, ok)
	require.Equal(t, "02–03 Mar 2024", c.DateRange)
}

func TestModel_JumpRejectsBadValue(t *testing.T) {
	m := newTestModel(t, nil)
	m.jumpTo("soon")
	require.Equal(t, "warn", m.ui.noticeType)
	require.Equal(t, highlight.StateIdle, m.overlay.State())
}

func TestModel_ReloadRerenders(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runeKey("l"))

	m.Update(reloadedMsg{rows: testRows()[:2]})
	require.Len(t, m.overlay.Index(), 1)
	require.Equal(t, highlight.StateIdle, m.overlay.State())
	require.Equal(t, "success", m.ui.noticeType)
}

func TestModel_ExportWritesComparison(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runeKey("l"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(runeKey("x"))
	require.Equal(t, modeDialog, m.ui.mode)

	path := filepath.Join(t.TempDir(), "out.csv")
	_, cmd := m.update(dialogs.ExportConfirmedMsg{Path: path})
	require.Equal(t, modeView, m.ui.mode)
	require.NotNil(t, cmd)
	m.Update(cmd())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "01–02 Mar 2024,ok,4,3,1\n")
}

func TestDefaultExportName(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runeKey("l"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c, _ := m.tip.Last()
	require.Equal(t, "interval-20240301-20240302.csv", defaultExportName(c))
}
