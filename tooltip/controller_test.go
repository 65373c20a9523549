package tooltip_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andareed/siftly-interval/highlight"
	"github.com/andareed/siftly-interval/tooltip"
)

type fakeBalloon struct {
	content   string
	visible   bool
	x, y      float64
	shows     int
	hides     int
	destroyed bool
}

func (b *fakeBalloon) Content(s string) tooltip.Balloon {
	b.content = s
	return b
}

func (b *fakeBalloon) Show(x, y float64) {
	b.visible = true
	b.x, b.y = x, y
	b.shows++
}

func (b *fakeBalloon) Hide() {
	b.visible = false
	b.hides++
}

func (b *fakeBalloon) Destroy() { b.destroyed = true }

type staticModel struct {
	sm highlight.ScreenModel
}

func (s staticModel) ScreenModel() highlight.ScreenModel { return s.sm }

type queueScheduler struct {
	pending []func()
}

func (q *queueScheduler) AfterFunc(_ time.Duration, fn func()) {
	q.pending = append(q.pending, fn)
}

func (q *queueScheduler) run() {
	p := q.pending
	q.pending = nil
	for _, fn := range p {
		fn()
	}
}

func colors() *highlight.OrdinalColors {
	return highlight.NewOrdinalColors("cat", []string{"p", "q", "r"}, []string{"#ff0000", "#00ff00", "#0000ff"})
}

func focus() highlight.FocusEvent {
	return highlight.FocusEvent{
		Prev:  highlight.Stack{Date: date(2024, 3, 1), Values: map[string]float64{"p": 3, "q": 7}},
		Data:  highlight.Stack{Date: date(2024, 3, 2), Values: map[string]float64{"p": 4, "q": 2}},
		Event: highlight.Pointer{X: 10, Y: 2, PageX: 30, PageY: 5},
	}
}

func TestBuildContent_ItemsReversedWithWidthsAndDiffs(t *testing.T) {
	e := focus()
	c := tooltip.BuildContent(e.Prev, e.Data, colors(), nil, nil)

	require.Equal(t, "01–02 Mar 2024", c.DateRange)
	require.Equal(t, "(1 day)", c.DiffDays)
	require.Len(t, c.Items, 3)

	require.Equal(t, "r", c.Items[0].Name)
	require.Equal(t, 0.0, c.Items[0].Value)
	require.Equal(t, 0.0, c.Items[0].Diff)
	require.Equal(t, 0.0, c.Items[0].Width)
	require.Equal(t, "#0000ff", c.Items[0].Color)

	require.Equal(t, "q", c.Items[1].Name)
	require.Equal(t, -5.0, c.Items[1].Diff)
	require.InDelta(t, 40.0, c.Items[1].Width, 1e-9)

	require.Equal(t, "p", c.Items[2].Name)
	require.Equal(t, 1.0, c.Items[2].Diff)
	require.InDelta(t, 80.0, c.Items[2].Width, 1e-9)
}

func TestBuildContent_AllZeroValuesHaveZeroWidth(t *testing.T) {
	prev := highlight.Stack{Date: date(2024, 3, 1), Values: map[string]float64{}}
	next := highlight.Stack{Date: date(2024, 3, 3), Values: map[string]float64{}}
	c := tooltip.BuildContent(prev, next, colors(), nil, nil)
	for _, it := range c.Items {
		require.Zero(t, it.Width)
	}
	require.Equal(t, "(2 days)", c.DiffDays)
}

func TestBuildContent_EmptyCategoryUsesNullAlias(t *testing.T) {
	cs := highlight.NewOrdinalColors("cat", []string{""}, []string{"#fff"})
	fi := tooltip.FormatInfo{"cat": tooltip.DefaultFieldFormat{Alias: "(none)"}}
	e := focus()
	c := tooltip.BuildContent(e.Prev, e.Data, cs, nil, fi)
	require.Equal(t, "(none)", c.Items[0].Name)
}

func TestController_FocusShowsNextToPointer(t *testing.T) {
	bus := highlight.NewEventBus()
	b := &fakeBalloon{}
	c := tooltip.New(b, tooltip.WithLogger(zap.NewNop()))
	c.Attach(bus, staticModel{sm: highlight.ScreenModel{Color: colors()}})

	bus.Fire(highlight.EventRangeFocus, focus())

	require.True(t, b.visible)
	require.Equal(t, 38.0, b.x)
	require.Equal(t, 13.0, b.y)
	require.Contains(t, b.content, "01–02 Mar 2024")
	require.Contains(t, b.content, "(1 day)")
	require.Contains(t, b.content, "▼5")
	require.Contains(t, b.content, "▲1")

	last, ok := c.Last()
	require.True(t, ok)
	require.Len(t, last.Items, 3)
}

func TestController_ChangedAndBlurHide(t *testing.T) {
	bus := highlight.NewEventBus()
	b := &fakeBalloon{}
	c := tooltip.New(b)
	c.Attach(bus, staticModel{sm: highlight.ScreenModel{Color: colors()}})

	bus.Fire(highlight.EventRangeFocus, focus())
	bus.Fire(highlight.EventRangeChanged, highlight.RangeEvent{})
	require.False(t, b.visible)

	bus.Fire(highlight.EventRangeFocus, focus())
	bus.Fire(highlight.EventRangeBlur, nil)
	require.False(t, b.visible)
	require.Equal(t, 2, b.hides)
}

func TestController_ActiveCancelsPendingHide(t *testing.T) {
	bus := highlight.NewEventBus()
	b := &fakeBalloon{}
	sched := &queueScheduler{}
	c := tooltip.New(b, tooltip.WithScheduler(sched))
	c.Attach(bus, staticModel{sm: highlight.ScreenModel{Color: colors()}})

	// nothing pending: must be a no-op
	bus.Fire(highlight.EventRangeActive, highlight.RangeEvent{})
	require.Zero(t, b.hides)

	bus.Fire(highlight.EventRangeFocus, focus())
	c.HideAfter(time.Second)
	bus.Fire(highlight.EventRangeActive, highlight.RangeEvent{})
	sched.run()
	require.True(t, b.visible)

	c.HideAfter(time.Second)
	sched.run()
	require.False(t, b.visible)
}

func TestController_RenderHidesAndCloseDestroys(t *testing.T) {
	b := &fakeBalloon{}
	c := tooltip.New(b)
	c.OnRender()
	require.Equal(t, 1, b.hides)
	c.Close()
	require.True(t, b.destroyed)
}

func TestPlainText(t *testing.T) {
	e := focus()
	c := tooltip.BuildContent(e.Prev, e.Data, colors(), nil, nil)
	lines := strings.Split(tooltip.PlainText(c), "\n")
	require.Equal(t, []string{
		"01–02 Mar 2024 (1 day)",
		"r\t0",
		"q\t2\t▼5",
		"p\t4\t▲1",
	}, lines)
}
