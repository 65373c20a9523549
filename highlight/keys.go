package highlight

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is a single host record. Fields are read by dimension name and never mutated.
type Row map[string]any

// Get returns the raw value stored under dim, or nil.
func (r Row) Get(dim string) any {
	if r == nil {
		return nil
	}
	return r[dim]
}

// ComparableKey normalizes a value so that dates, numbers and strings coming
// from different sources can be de-duplicated and matched consistently.
func ComparableKey(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// Numeric coerces v to a number. Times become Unix milliseconds.
func Numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	case uint32:
		return float64(t), true
	case time.Time:
		if t.IsZero() {
			return 0, false
		}
		return float64(t.UnixMilli()), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// CompareValues orders x-values: numeric-coercible values first, by number,
// then everything else by ComparableKey.
func CompareValues(a, b any) int {
	fa, okA := Numeric(a)
	fb, okB := Numeric(b)
	switch {
	case okA && okB:
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(ComparableKey(a), ComparableKey(b))
}
