// Package source loads chart rows from CSV, JSON and SQLite files.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/andareed/siftly-interval/highlight"
)

var (
	ErrNoRows            = errors.New("source: no rows")
	ErrUnsupportedFormat = errors.New("source: unsupported file extension")
)

// logTimeLayout is the syslog-style stamp the host log exports carry.
const logTimeLayout = "Mon Jan 02 15:04:05 MST 2006"

// DefaultTimeLayouts are tried in order when a schema does not name its own.
var DefaultTimeLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
	logTimeLayout,
}

// Schema names the chart dimensions and how to type them.
type Schema struct {
	XDim        string
	YDim        string
	CategoryDim string
	TimeLayouts []string
}

// Load picks a loader from the file extension. query is only used for SQLite files.
func Load(ctx context.Context, path string, schema Schema, query string) ([]highlight.Row, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return LoadCSV(path, schema)
	case ".json":
		return LoadJSON(path, schema)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path, query, schema)
	default:
		return nil, fmt.Errorf("%w %q (want .csv, .json or .db)", ErrUnsupportedFormat, ext)
	}
}

// typeRow converts the x field to a time (when a layout matches) or a number,
// and the y field to a number. Everything else is left as loaded.
func (s Schema) typeRow(r highlight.Row) highlight.Row {
	if v, ok := r[s.XDim]; ok {
		r[s.XDim] = s.typeX(v)
	}
	if v, ok := r[s.YDim]; ok {
		if n, ok := highlight.Numeric(v); ok {
			r[s.YDim] = n
		}
	}
	return r
}

func (s Schema) typeX(v any) any {
	raw, ok := v.(string)
	if !ok {
		return v
	}
	if ts, ok := s.parseTime(raw); ok {
		return ts
	}
	if n, ok := highlight.Numeric(raw); ok {
		return n
	}
	return raw
}

func (s Schema) parseTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	layouts := s.TimeLayouts
	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
		if layout != logTimeLayout {
			continue
		}
		// host log stamps may end in ":<seq>" after the year
		if idx := strings.LastIndex(raw, ":"); idx != -1 {
			if ts, err := time.Parse(layout, strings.TrimSpace(raw[:idx])); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}

// ParseX types a raw x value the way loaded rows are typed.
func (s Schema) ParseX(raw string) any {
	return s.typeX(strings.TrimSpace(raw))
}
