package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/andareed/siftly-interval/highlight"
	"github.com/andareed/siftly-interval/logging"
)

// Expand resolves a path that may be a glob such as "exports/**/*.csv".
// A plain path is returned as is, even when it does not exist yet.
func Expand(pattern string) ([]string, error) {
	pattern = strings.TrimSpace(pattern)
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}

	base, pat := doublestar.SplitPattern(filepath.ToSlash(pattern))
	ms, err := doublestar.Glob(os.DirFS(base), pat, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}
	if len(ms) == 0 {
		return nil, fmt.Errorf("glob %q: %w", pattern, ErrNoRows)
	}

	paths := make([]string, 0, len(ms))
	for _, m := range ms {
		paths = append(paths, filepath.Join(base, filepath.FromSlash(m)))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadPattern loads every file the pattern matches and concatenates the rows
// in path order.
func LoadPattern(ctx context.Context, pattern string, schema Schema, query string) ([]highlight.Row, error) {
	paths, err := Expand(pattern)
	if err != nil {
		return nil, err
	}
	var rows []highlight.Row
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := Load(ctx, p, schema, query)
		if err != nil {
			return nil, err
		}
		rows = append(rows, part...)
	}
	if len(paths) > 1 {
		logging.Debugf("source: %d rows from %d files matching %s", len(rows), len(paths), pattern)
	}
	return rows, nil
}
