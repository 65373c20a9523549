package highlight

import "sync"

const (
	ClassCursor = "interval-highlight__cursor"
	ClassCover  = "interval-highlight__cover-rect"
)

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Surface is the drawing collaborator. Upsert ensures exactly one rectangle of
// the given class exists with the given geometry; Remove deletes it.
type Surface interface {
	Upsert(class string, r Rect)
	Remove(class string)
}

// MemorySurface keeps rectangles in memory for a renderer to read back.
type MemorySurface struct {
	mu      sync.RWMutex
	rects   map[string]Rect
	updates int
}

func NewMemorySurface() *MemorySurface {
	return &MemorySurface{rects: make(map[string]Rect)}
}

func (s *MemorySurface) Upsert(class string, r Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rects[class] = r
	s.updates++
}

func (s *MemorySurface) Remove(class string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rects, class)
}

// Rect returns the rectangle drawn for class, if any.
func (s *MemorySurface) Rect(class string) (Rect, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rects[class]
	return r, ok
}

// Updates counts Upsert calls, including ones that left the geometry unchanged.
func (s *MemorySurface) Updates() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updates
}
