package highlight

import "sync"

type EventName string

const (
	EventRangeChanged EventName = "range-changed"
	EventRangeActive  EventName = "range-active"
	EventRangeBlur    EventName = "range-blur"
	EventRangeFreeze  EventName = "range-freeze"
	EventRangeFocus   EventName = "range-focus"
)

// Pointer is a pointer position in surface coordinates (X, Y) and screen coordinates (PageX, PageY).
type Pointer struct {
	X, Y         float64
	PageX, PageY float64
}

// RangeEvent is the payload of range-changed and range-active.
type RangeEvent struct {
	Data  Range
	Event Pointer
}

// FocusEvent is the payload of range-focus: the clicked interval's end (Data) and start (Prev).
type FocusEvent struct {
	Data  Stack
	Prev  Stack
	Event Pointer
}

type Handler func(payload any)

// Bus is a named-event publish/subscribe channel scoped to one visual node.
type Bus interface {
	On(name EventName, h Handler)
	Fire(name EventName, payload any)
}

// EventBus is an in-process Bus. Handlers run synchronously in registration order.
type EventBus struct {
	mu       sync.Mutex
	handlers map[EventName][]Handler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventName][]Handler)}
}

func (b *EventBus) On(name EventName, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

func (b *EventBus) Fire(name EventName, payload any) {
	b.mu.Lock()
	hs := append([]Handler(nil), b.handlers[name]...)
	b.mu.Unlock()

	for _, h := range hs {
		h(payload)
	}
}
