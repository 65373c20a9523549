package highlight

// Stack is the per-category snapshot at one x-value.
type Stack struct {
	Date   any
	Values map[string]float64
}

// Value returns the value recorded for category, or 0 when it has none.
func (s Stack) Value(category string) float64 {
	return s.Values[category]
}

// Has reports whether category was present at this x-value.
func (s Stack) Has(category string) bool {
	_, ok := s.Values[category]
	return ok
}

// BuildStack folds the rows whose xDim matches x into a category -> y mapping.
// A repeated category at the same x overwrites the earlier value.
func BuildStack(rows []StackedRow, x any, xDim, yDim, catDim string) Stack {
	want := ComparableKey(x)
	s := Stack{Date: x, Values: make(map[string]float64)}
	for _, sr := range rows {
		if ComparableKey(sr.Row.Get(xDim)) != want {
			continue
		}
		v, _ := Numeric(sr.Row.Get(yDim))
		s.Values[ComparableKey(sr.Row.Get(catDim))] = v
	}
	return s
}
