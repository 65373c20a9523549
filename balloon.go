package main

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-interval/tooltip"
)

// termBalloon is the tooltip panel drawn over the finished frame.
type termBalloon struct {
	content   string
	visible   bool
	destroyed bool
	x, y      int
}

func (b *termBalloon) Content(s string) tooltip.Balloon {
	b.content = s
	return b
}

func (b *termBalloon) Show(x, y float64) {
	if b.destroyed {
		return
	}
	b.x, b.y = int(x), int(y)
	b.visible = true
}

func (b *termBalloon) Hide() {
	b.visible = false
}

func (b *termBalloon) Destroy() {
	b.destroyed = true
	b.visible = false
	b.content = ""
}

// overlay splices the balloon into frame at its anchor, pulled back inside
// width x height when it would overflow.
func (b *termBalloon) overlay(frame string, width, height int) string {
	if !b.visible || b.content == "" {
		return frame
	}
	box := strings.Split(balloonStyle.Render(b.content), "\n")
	boxW := 0
	for _, l := range box {
		boxW = max(boxW, ansi.StringWidth(l))
	}

	lines := strings.Split(frame, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	x := clamp(b.x, 0, max(0, width-boxW))
	y := clamp(b.y, 0, max(0, len(lines)-len(box)))

	for i, l := range box {
		row := y + i
		if row >= len(lines) {
			break
		}
		lines[row] = splice(lines[row], x, l, boxW)
	}
	return strings.Join(lines, "\n")
}

// splice replaces the cells [x, x+w) of line with seg.
func splice(line string, x int, seg string, w int) string {
	left := ansi.Truncate(line, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	segW := ansi.StringWidth(seg)
	if segW < w {
		seg += strings.Repeat(" ", w-segW)
	}
	right := ansi.TruncateLeft(line, x+w, "")
	reset := termenv.CSI + termenv.ResetSeq + "m"
	return left + reset + seg + reset + right
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
