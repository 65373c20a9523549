package tooltip_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-interval/highlight"
	"github.com/andareed/siftly-interval/tooltip"
)

func TestTextRenderer_NegativeValueDrawsNoBar(t *testing.T) {
	prev := highlight.Stack{Date: date(2024, 3, 1), Values: map[string]float64{}}
	next := highlight.Stack{Date: date(2024, 3, 2), Values: map[string]float64{"p": 5, "q": -3}}
	c := tooltip.BuildContent(prev, next, colors(), nil, nil)
	require.InDelta(t, -48, c.Items[1].Width, 1e-9)

	var out string
	require.NotPanics(t, func() { out = tooltip.TextRenderer{BarCells: 10}.Render(c) })

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	require.NotContains(t, lines[2], "█")
	require.Contains(t, lines[2], "-3")
	require.Equal(t, 10, strings.Count(lines[3], "█"))
}
