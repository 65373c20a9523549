package tooltip

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-interval/highlight"
)

const (
	glyphUp   = "▲"
	glyphDown = "▼"
)

// RangeFormatter renders the header label for a date interval.
type RangeFormatter func(from, to time.Time) string

// DefaultRangeFormatter renders "02 Jan 2006–09 Feb 2006", dropping the start's
// month and year when they match the end's.
func DefaultRangeFormatter(from, to time.Time) string {
	d0, d1 := from.Format("02"), to.Format("02")
	m0, m1 := from.Format("Jan"), to.Format("Jan")
	y0, y1 := from.Format("2006"), to.Format("2006")

	var b strings.Builder
	b.WriteString(d0)
	if m0 != m1 {
		b.WriteString(" " + m0)
	}
	if y0 != y1 {
		b.WriteString(" " + y0)
	}
	b.WriteString("–")
	b.WriteString(d1 + " " + m1 + " " + y1)
	return b.String()
}

// DayCount is the whole number of days between from and to, rounded with
// halves going up (-1.5 days is -1).
func DayCount(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours()/24 + 0.5))
}

// DaysLabel renders "(N days)". Counts whose decimal form ends in 1 read as
// singular, so 1, 11 and 21 all get "day".
func DaysLabel(n int) string {
	s := strconv.Itoa(n)
	unit := "day"
	if s[len(s)-1] != '1' {
		unit += "s"
	}
	return "(" + s + " " + unit + ")"
}

// FormatValue rounds to two decimals and drops trailing zeros.
func FormatValue(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Delta returns the arrow glyph and magnitude for a change. Zero yields two empty strings.
func Delta(diff float64) (glyph, magnitude string) {
	switch {
	case diff > 0:
		return glyphUp, FormatValue(math.Abs(diff))
	case diff < 0:
		return glyphDown, FormatValue(math.Abs(diff))
	}
	return "", ""
}

// AsTime interprets an x-value as a point in time. Numbers are Unix milliseconds.
func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, true
			}
		}
	}
	if ms, ok := highlight.Numeric(v); ok {
		return time.UnixMilli(int64(ms)).UTC(), true
	}
	return time.Time{}, false
}

// FieldFormat formats raw values of one dimension for display.
type FieldFormat interface {
	Format(raw any, nullAlias string) string
	NullAlias() string
}

// FormatInfo maps dimension names to their formatter.
type FormatInfo map[string]FieldFormat

// Lookup returns the formatter for dim, falling back to DefaultFieldFormat.
func (fi FormatInfo) Lookup(dim string) FieldFormat {
	if f, ok := fi[dim]; ok && f != nil {
		return f
	}
	return DefaultFieldFormat{}
}

type DefaultFieldFormat struct {
	Alias string
}

func (f DefaultFieldFormat) NullAlias() string {
	if f.Alias == "" {
		return "No value"
	}
	return f.Alias
}

func (f DefaultFieldFormat) Format(raw any, nullAlias string) string {
	if raw == nil {
		return nullAlias
	}
	return highlight.ComparableKey(raw)
}
