package tooltip

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/andareed/siftly-interval/highlight"
)

// anchorOffset is the distance between the pointer and the balloon corner.
const anchorOffset = 8

// Balloon is the floating panel the controller fills and positions.
type Balloon interface {
	Content(s string) Balloon
	Show(x, y float64)
	Hide()
	Destroy()
}

// ScreenModeler exposes the screen model of the visual the tooltip follows.
type ScreenModeler interface {
	ScreenModel() highlight.ScreenModel
}

type Option func(*Controller)

func WithRangeFormatter(f RangeFormatter) Option {
	return func(c *Controller) {
		if f != nil {
			c.formatRange = f
		}
	}
}

func WithRenderer(r Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

func WithFormatInfo(fi FormatInfo) Option {
	return func(c *Controller) { c.info = fi }
}

func WithScheduler(s highlight.Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller shows the interval comparison when a range is focused and hides
// it when the pointer moves to another interval or leaves the chart.
type Controller struct {
	balloon     Balloon
	formatRange RangeFormatter
	renderer    Renderer
	info        FormatInfo
	sched       highlight.Scheduler
	log         *zap.Logger

	mu      sync.Mutex
	source  ScreenModeler
	hideGen int
	hidePen bool
	last    Content
	hasLast bool
}

func New(b Balloon, opts ...Option) *Controller {
	c := &Controller{
		balloon:     b,
		formatRange: DefaultRangeFormatter,
		renderer:    TextRenderer{},
		sched:       highlight.TimerScheduler{},
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach subscribes the controller to an overlay's events.
func (c *Controller) Attach(bus highlight.Bus, source ScreenModeler) {
	c.mu.Lock()
	c.source = source
	c.mu.Unlock()

	bus.On(highlight.EventRangeChanged, func(any) { c.Hide() })
	bus.On(highlight.EventRangeBlur, func(any) { c.Hide() })
	bus.On(highlight.EventRangeFocus, func(p any) {
		e, ok := p.(highlight.FocusEvent)
		if !ok {
			c.log.Warn("range-focus with unexpected payload", zap.Any("payload", p))
			return
		}
		c.Show(e)
	})
	bus.On(highlight.EventRangeActive, func(any) { c.CancelHide() })
}

// Show renders the comparison for e and anchors the balloon next to the pointer.
func (c *Controller) Show(e highlight.FocusEvent) {
	c.mu.Lock()
	var colors highlight.CategoryScale
	if c.source != nil {
		colors = c.source.ScreenModel().Color
	}
	content := BuildContent(e.Prev, e.Data, colors, c.formatRange, c.info)
	c.last = content
	c.hasLast = true
	c.mu.Unlock()

	c.log.Debug("tooltip show",
		zap.String("range", content.DateRange),
		zap.Int("items", len(content.Items)))
	c.balloon.
		Content(c.renderer.Render(content)).
		Show(e.Event.PageX+anchorOffset, e.Event.PageY+anchorOffset)
}

func (c *Controller) Hide() {
	c.balloon.Hide()
}

// HideAfter hides the balloon after d unless CancelHide runs first.
func (c *Controller) HideAfter(d time.Duration) {
	c.mu.Lock()
	c.hideGen++
	gen := c.hideGen
	c.hidePen = true
	c.mu.Unlock()

	c.sched.AfterFunc(d, func() {
		c.mu.Lock()
		live := c.hidePen && c.hideGen == gen
		if live {
			c.hidePen = false
		}
		c.mu.Unlock()
		if live {
			c.Hide()
		}
	})
}

// CancelHide drops a pending HideAfter. It is a no-op when none is pending.
func (c *Controller) CancelHide() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hidePen = false
}

// OnRender hides the balloon when the host chart redraws.
func (c *Controller) OnRender() {
	c.Hide()
}

// Last returns the most recently shown content.
func (c *Controller) Last() (Content, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.hasLast
}

func (c *Controller) Close() {
	c.CancelHide()
	c.balloon.Destroy()
}
