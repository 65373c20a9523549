package highlight

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultBlurDelay is how long the overlay waits after the pointer leaves
// before checking the freeze flag and blurring.
const DefaultBlurDelay = 100 * time.Millisecond

// ScreenModel is what the host chart hands the overlay on every render.
type ScreenModel struct {
	X       Scale
	Y       Dimension
	Color   CategoryScale
	Group   func(Row) string
	Order   func(string) int
	Stacker Stacker
}

// Size is the pixel size of the plotting area the cover spans.
type Size struct {
	Width, Height float64
}

type State int

const (
	StateIdle State = iota
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

type Option func(*Overlay)

func WithScheduler(s Scheduler) Option {
	return func(o *Overlay) { o.sched = s }
}

func WithBlurDelay(d time.Duration) Option {
	return func(o *Overlay) { o.blurDelay = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Overlay) {
		if l != nil {
			o.log = l
		}
	}
}

// Overlay is the interactive cover over a chart's plotting area. It resolves
// pointer positions to intervals, owns the highlight rectangle and publishes
// the range-* events on its bus.
type Overlay struct {
	bus       Bus
	surface   Surface
	sched     Scheduler
	blurDelay time.Duration
	log       *zap.Logger

	mu     sync.Mutex
	sm     ScreenModel
	size   Size
	index  []IndexEntry
	rows   []StackedRow
	active Range
	hasAct bool
	freeze bool
}

func NewOverlay(bus Bus, surface Surface, opts ...Option) *Overlay {
	o := &Overlay{
		bus:       bus,
		surface:   surface,
		sched:     TimerScheduler{},
		blurDelay: DefaultBlurDelay,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	bus.On(EventRangeFreeze, func(payload any) {
		v, ok := payload.(bool)
		if !ok {
			o.log.Warn("range-freeze with non-bool payload", zap.Any("payload", payload))
			return
		}
		o.mu.Lock()
		o.freeze = v
		o.mu.Unlock()
		o.log.Debug("freeze set", zap.Bool("freeze", v))
	})
	bus.On(EventRangeBlur, func(any) {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.active = Range{}
		o.hasAct = false
		if len(o.index) > 0 {
			o.drawCursor(0, 0)
		}
	})
	return o
}

// Render rebuilds the index and the stacked rows for a new dataset and
// redraws the cover. The active range is dropped, the freeze flag is kept.
func (o *Overlay) Render(rows []Row, sm ScreenModel, size Size) {
	if sm.Group == nil {
		catDim := ""
		if sm.Color != nil {
			catDim = sm.Color.Dim()
		}
		sm.Group = func(r Row) string { return ComparableKey(r.Get(catDim)) }
	}
	if sm.Order == nil {
		sm.Order = func(string) int { return 0 }
	}

	stacked := GroupRows(rows, sm.Group, sm.Order, sm.Stacker)
	plain := make([]Row, len(stacked))
	for i, sr := range stacked {
		plain[i] = sr.Row
	}
	index := BuildIndex(plain, sm.X.Dim(), sm.X)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.sm = sm
	o.size = size
	o.rows = stacked
	o.index = index
	o.active = Range{}
	o.hasAct = false

	if len(index) == 0 {
		o.surface.Remove(ClassCursor)
		o.surface.Remove(ClassCover)
		o.log.Debug("render without data, cover removed")
		return
	}
	o.drawCursor(0, 0)
	o.surface.Upsert(ClassCover, Rect{Width: size.Width, Height: size.Height})
	o.log.Debug("rendered", zap.Int("rows", len(stacked)), zap.Int("index", len(index)))
}

// PointerMove resolves x to an interval. Re-entering the active interval
// only fires range-active; a new interval redraws the cursor and fires range-changed.
func (o *Overlay) PointerMove(p Pointer) {
	o.mu.Lock()
	if len(o.index) == 0 {
		o.mu.Unlock()
		o.log.Debug("pointer move ignored, no index")
		return
	}
	r := Locate(o.index, p.X)
	if o.hasAct && RangesEqual(o.active, r) {
		o.mu.Unlock()
		o.bus.Fire(EventRangeActive, RangeEvent{Data: r, Event: p})
		return
	}
	o.active = r
	o.hasAct = true
	prevX := o.sm.X.Value(r.Prev)
	nextX := o.sm.X.Value(r.Next)
	o.drawCursor(prevX, nextX-prevX)
	o.mu.Unlock()

	o.log.Debug("range changed", zap.Stringer("range", r))
	o.bus.Fire(EventRangeChanged, RangeEvent{Data: r, Event: p})
}

// PointerLeave schedules a blur check. The freeze flag is read when the
// check fires, so a freeze raised in between suppresses the blur.
func (o *Overlay) PointerLeave() {
	o.sched.AfterFunc(o.blurDelay, func() {
		o.mu.Lock()
		frozen := o.freeze
		o.mu.Unlock()
		if frozen {
			o.log.Debug("blur skipped, frozen")
			return
		}
		o.bus.Fire(EventRangeBlur, nil)
	})
}

// PointerClick resolves x to an interval and publishes the stacks at both ends.
func (o *Overlay) PointerClick(p Pointer) {
	o.mu.Lock()
	if len(o.index) == 0 {
		o.mu.Unlock()
		o.log.Debug("pointer click ignored, no index")
		return
	}
	r := Locate(o.index, p.X)
	xDim := o.sm.X.Dim()
	yDim := o.sm.Y.Dim()
	catDim := ""
	if o.sm.Color != nil {
		catDim = o.sm.Color.Dim()
	}
	next := BuildStack(o.rows, r.Next, xDim, yDim, catDim)
	prev := BuildStack(o.rows, r.Prev, xDim, yDim, catDim)
	o.mu.Unlock()

	o.log.Debug("range focus", zap.Stringer("range", r))
	o.bus.Fire(EventRangeFocus, FocusEvent{Data: next, Prev: prev, Event: p})
}

// Freeze publishes a range-freeze request on the overlay's bus.
func (o *Overlay) Freeze(v bool) {
	o.bus.Fire(EventRangeFreeze, v)
}

func (o *Overlay) ActiveRange() (Range, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active, o.hasAct
}

func (o *Overlay) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.hasAct {
		return StateActive
	}
	return StateIdle
}

func (o *Overlay) Frozen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.freeze
}

func (o *Overlay) Index() []IndexEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.index
}

func (o *Overlay) Rows() []StackedRow {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rows
}

// ScreenModel returns the model passed to the last Render.
func (o *Overlay) ScreenModel() ScreenModel {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sm
}

// drawCursor must be called with mu held.
func (o *Overlay) drawCursor(x, width float64) {
	o.surface.Upsert(ClassCursor, Rect{X: x, Width: width, Height: o.size.Height})
}
