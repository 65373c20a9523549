package tooltip

import (
	"slices"
	"time"

	"github.com/andareed/siftly-interval/highlight"
)

// barMaxWidth is the width of the bar drawn for the largest value.
const barMaxWidth = 80

// Item is one category row of the comparison.
type Item struct {
	Name  string
	Color string
	Value float64
	Diff  float64
	Width float64
}

// Content is everything the tooltip shows for one focused interval.
type Content struct {
	From, To  time.Time
	DateRange string
	DiffDays  string
	Items     []Item
}

// BuildContent compares the stacks at both ends of an interval, one item per
// category in reverse domain order.
func BuildContent(prev, next highlight.Stack, colors highlight.CategoryScale, formatRange RangeFormatter, info FormatInfo) Content {
	if formatRange == nil {
		formatRange = DefaultRangeFormatter
	}
	from, _ := AsTime(prev.Date)
	to, _ := AsTime(next.Date)

	var items []Item
	if colors != nil {
		ff := info.Lookup(colors.Dim())
		for _, cat := range colors.Domain() {
			curr := next.Value(cat)
			var raw any
			if cat != "" {
				raw = cat
			}
			items = append(items, Item{
				Name:  ff.Format(raw, ff.NullAlias()),
				Color: colors.Color(cat),
				Value: curr,
				Diff:  curr - prev.Value(cat),
			})
		}
	}
	slices.Reverse(items)

	if len(items) > 0 {
		top := items[0].Value
		for _, it := range items[1:] {
			top = max(top, it.Value)
		}
		for i := range items {
			if top > 0 {
				items[i].Width = barMaxWidth * items[i].Value / top
			}
		}
	}

	return Content{
		From:      from,
		To:        to,
		DateRange: formatRange(from, to),
		DiffDays:  DaysLabel(DayCount(from, to)),
		Items:     items,
	}
}
