package highlight_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-interval/highlight"
)

func TestBuildIndex_DistinctSortedNumerically(t *testing.T) {
	rows := []highlight.Row{
		{"x": 10, "cat": "a"},
		{"x": 2, "cat": "a"},
		{"x": 10, "cat": "b"},
		{"x": 1, "cat": "b"},
		{"x": 2.0, "cat": "c"},
	}
	scale := highlight.NewLinearScale("x", 0, 10, 0, 100)

	idx := highlight.BuildIndex(rows, "x", scale)

	require.Len(t, idx, 3)
	require.Equal(t, []any{1, 2, 10}, []any{idx[0].Val, idx[1].Val, idx[2].Val})
	for i, e := range idx {
		require.Equal(t, i, e.Ind)
	}
	require.InDelta(t, 10.0, idx[0].Pos, 1e-9)
	require.InDelta(t, 20.0, idx[1].Pos, 1e-9)
	require.InDelta(t, 100.0, idx[2].Pos, 1e-9)
}

func TestBuildIndex_PositionsMonotonic(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var rows []highlight.Row
	for _, d := range []int{9, 0, 3, 3, 17, 4, 30, 1} {
		rows = append(rows, highlight.Row{"date": start.AddDate(0, 0, d)})
	}
	scale := highlight.FitLinearScale(rows, "date", 0, 79)

	idx := highlight.BuildIndex(rows, "date", scale)

	require.Len(t, idx, 7)
	for i := 1; i < len(idx); i++ {
		require.GreaterOrEqual(t, idx[i].Pos, idx[i-1].Pos)
		require.Equal(t, idx[i-1].Ind+1, idx[i].Ind)
	}
	require.Equal(t, start, idx[0].Val)
	require.InDelta(t, 79.0, idx[len(idx)-1].Pos, 1e-9)
}

func TestBuildIndex_NonNumericAfterNumeric(t *testing.T) {
	rows := []highlight.Row{{"x": "beta"}, {"x": "3"}, {"x": "alpha"}, {"x": 1}}
	idx := highlight.BuildIndex(rows, "x", highlight.NewLinearScale("x", 0, 3, 0, 3))

	vals := make([]any, len(idx))
	for i, e := range idx {
		vals[i] = e.Val
	}
	require.Equal(t, []any{1, "3", "alpha", "beta"}, vals)
}

func TestComparableKey(t *testing.T) {
	require.Equal(t, "1", highlight.ComparableKey(1))
	require.Equal(t, "1", highlight.ComparableKey(1.0))
	require.Equal(t, "1.5", highlight.ComparableKey(float32(1.5)))
	require.Equal(t, "", highlight.ComparableKey(nil))
	require.Equal(t, "2024-02-03T00:00:00Z",
		highlight.ComparableKey(time.Date(2024, 2, 3, 1, 0, 0, 0, time.FixedZone("CET", 3600))))
}

func TestCompareValues(t *testing.T) {
	require.Equal(t, -1, highlight.CompareValues(2, 10))
	require.Equal(t, 1, highlight.CompareValues("10", 2))
	require.Equal(t, 0, highlight.CompareValues(2, "2"))
	require.Equal(t, -1, highlight.CompareValues(99, "x"))
	require.Equal(t, 1, highlight.CompareValues("b", "a"))
}
