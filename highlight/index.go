package highlight

import "slices"

// IndexEntry is one distinct x-value with its rank and pixel position.
type IndexEntry struct {
	Ind int
	Val any
	Pos float64
}

// BuildIndex collects the distinct values of dim, sorts them ascending and
// annotates each with its rank and scale position.
func BuildIndex(rows []Row, dim string, scale Scale) []IndexEntry {
	seen := make(map[string]struct{}, len(rows))
	vals := make([]any, 0, len(rows))
	for _, r := range rows {
		v := r.Get(dim)
		k := ComparableKey(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		vals = append(vals, v)
	}

	slices.SortStableFunc(vals, CompareValues)

	index := make([]IndexEntry, len(vals))
	for i, v := range vals {
		index[i] = IndexEntry{Ind: i, Val: v, Pos: scale.Value(v)}
	}
	return index
}
