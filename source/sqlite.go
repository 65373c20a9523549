package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/andareed/siftly-interval/highlight"
	"github.com/andareed/siftly-interval/logging"
)

// LoadSQLite runs query against the database at path and turns each result
// row into a chart row keyed by column name.
func LoadSQLite(ctx context.Context, path, query string, schema Schema) ([]highlight.Row, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("sqlite source %q needs a query", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sqlite db: %w", err)
	}
	defer rs.Close()

	cols, err := rs.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var rows []highlight.Row
	for rs.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(highlight.Row, len(cols))
		for i, name := range cols {
			v := vals[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[name] = v
		}
		rows = append(rows, schema.typeRow(row))
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sqlite %q: %w", path, ErrNoRows)
	}
	logging.Debugf("source: loaded %d rows from sqlite %s", len(rows), path)
	return rows, nil
}
