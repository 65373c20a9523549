package main

import (
	"fmt"
	"log"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-interval/highlight"
)

// pointerAt builds a pointer for plot column x. Page coordinates come from the
// cover zone so the tooltip lands next to the column.
func (m *model) pointerAt(x float64) highlight.Pointer {
	p := highlight.Pointer{X: x}
	if info := m.zones.Get(coverZoneID); info != nil && !info.IsZero() {
		p.PageX = float64(info.StartX) + x
		p.PageY = float64(info.StartY)
	}
	return p
}

// intervalSlots returns one pointer position per interval: the midpoint
// between consecutive entries, or the single entry when there is only one.
func intervalSlots(index []highlight.IndexEntry) []float64 {
	if len(index) == 1 {
		return []float64{index[0].Pos}
	}
	slots := make([]float64, 0, len(index)-1)
	for i := 1; i < len(index); i++ {
		slots = append(slots, (index[i-1].Pos+index[i].Pos)/2)
	}
	return slots
}

func nearestSlot(slots []float64, x float64) int {
	best := 0
	for i, s := range slots {
		if math.Abs(s-x) < math.Abs(slots[best]-x) {
			best = i
		}
	}
	return best
}

// stepRange moves the keyboard pointer one interval left (dir < 0) or right.
func (m *model) stepRange(dir int) {
	index := m.overlay.Index()
	if len(index) == 0 {
		return
	}
	slots := intervalSlots(index)

	next := 0
	switch {
	case m.ui.hasCursor:
		next = clamp(nearestSlot(slots, m.ui.cursorX)+dir, 0, len(slots)-1)
	case dir < 0:
		next = len(slots) - 1
	}
	m.moveCursor(slots[next])
}

func (m *model) moveCursor(x float64) {
	m.ui.cursorX = x
	m.ui.hasCursor = true
	m.overlay.PointerMove(m.pointerAt(x))
}

func (m *model) focusCursor() tea.Cmd {
	if !m.ui.hasCursor {
		return m.startNotice("Move to an interval first (h/l or mouse)", "warn", noticeDuration)
	}
	m.overlay.PointerClick(m.pointerAt(m.ui.cursorX))
	return nil
}

// jumpTo highlights and compares the interval containing the typed x value.
func (m *model) jumpTo(raw string) tea.Cmd {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	log.Printf("jumpTo %q", raw)
	if len(m.overlay.Index()) == 0 {
		return m.startNotice("No data to jump in", "warn", noticeDuration)
	}

	v := m.schema().ParseX(raw)
	if _, ok := highlight.Numeric(v); !ok {
		return m.startNotice(fmt.Sprintf("%q is not a valid %s value", raw, m.cfg.Chart.X), "warn", noticeDuration)
	}

	x := m.overlay.ScreenModel().X.Value(v)
	m.moveCursor(x)
	m.overlay.PointerClick(m.pointerAt(x))

	r, _ := m.overlay.ActiveRange()
	return m.startNotice("Jumped to "+formatRange(r), "info", noticeDuration)
}
