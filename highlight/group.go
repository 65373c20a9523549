package highlight

import "slices"

// StackedRow is a host row annotated with its stacking values.
type StackedRow struct {
	Row Row
	Y   float64
	Y0  float64
}

// Stacker computes the stacked top (y) and baseline (y0) of a row.
// Rows are presented in group order, so a stateful Stacker may accumulate.
type Stacker interface {
	Stack(row Row) (y, y0 float64)
}

// StackerFunc adapts a plain function to Stacker.
type StackerFunc func(row Row) (y, y0 float64)

func (f StackerFunc) Stack(row Row) (float64, float64) { return f(row) }

type resetter interface {
	Reset()
}

// GroupRows reassembles rows group by group, ordered by order(groupKey), and
// stacks each row. Row order inside a group is preserved; groups with equal
// order keep first-seen order.
func GroupRows(rows []Row, group func(Row) string, order func(string) int, st Stacker) []StackedRow {
	var keys []string
	groups := make(map[string][]Row)
	for _, r := range rows {
		k := group(r)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], r)
	}

	slices.SortStableFunc(keys, func(a, b string) int {
		return order(a) - order(b)
	})

	if rs, ok := st.(resetter); ok {
		rs.Reset()
	}

	out := make([]StackedRow, 0, len(rows))
	for _, k := range keys {
		for _, r := range groups[k] {
			sr := StackedRow{Row: r}
			if st != nil {
				sr.Y, sr.Y0 = st.Stack(r)
			}
			out = append(out, sr)
		}
	}
	return out
}

// CumulativeStacker stacks y values on top of each other per x-value in the
// order rows are presented.
type CumulativeStacker struct {
	xDim, yDim string
	totals     map[string]float64
}

func NewCumulativeStacker(xDim, yDim string) *CumulativeStacker {
	return &CumulativeStacker{xDim: xDim, yDim: yDim, totals: make(map[string]float64)}
}

func (c *CumulativeStacker) Reset() {
	c.totals = make(map[string]float64)
}

func (c *CumulativeStacker) Stack(row Row) (float64, float64) {
	k := ComparableKey(row.Get(c.xDim))
	v, _ := Numeric(row.Get(c.yDim))
	y0 := c.totals[k]
	y := y0 + v
	c.totals[k] = y
	return y, y0
}
