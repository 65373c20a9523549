package highlight

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyIndex is the contract violation raised by Locate on an empty index.
var ErrEmptyIndex = errors.New("highlight: locate on empty index")

// Range is the pair of adjacent x-values bracketing a pointer position.
type Range struct {
	Prev any
	Next any
}

// IsZero reports whether r is the empty range held before any interaction.
func (r Range) IsZero() bool {
	return r.Prev == nil && r.Next == nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", ComparableKey(r.Prev), ComparableKey(r.Next))
}

// Locate finds the first entry at or right of x (clamped to the last entry)
// and pairs it with its predecessor. x equal to an entry's Pos binds to that entry.
func Locate(index []IndexEntry, x float64) Range {
	if len(index) == 0 {
		panic(ErrEmptyIndex)
	}
	i := sort.Search(len(index), func(i int) bool { return index[i].Pos >= x })
	if i == len(index) {
		i = len(index) - 1
	}
	next := index[i]
	prev := index[max(next.Ind-1, 0)]
	return Range{Prev: prev.Val, Next: next.Val}
}

// RangesEqual compares two ranges element-wise as numbers, falling back to
// ComparableKey for values that are not numeric on both sides.
func RangesEqual(a, b Range) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return valuesEqual(a.Prev, b.Prev) && valuesEqual(a.Next, b.Next)
}

func valuesEqual(a, b any) bool {
	fa, okA := Numeric(a)
	fb, okB := Numeric(b)
	if okA && okB {
		return fa == fb
	}
	if okA != okB {
		return false
	}
	return ComparableKey(a) == ComparableKey(b)
}
