package source

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/andareed/siftly-interval/highlight"
	"github.com/andareed/siftly-interval/logging"
)

// LoadCSV reads a CSV file whose first record is the header.
func LoadCSV(path string, schema Schema) ([]highlight.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV %q: %w", path, ErrNoRows)
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		header[i] = name
	}

	rows := make([]highlight.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(highlight.Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, schema.typeRow(row))
	}
	logging.Debugf("source: loaded %d rows from CSV %s", len(rows), path)
	return rows, nil
}

// LoadJSON reads a JSON array of objects.
func LoadJSON(path string, schema Schema) ([]highlight.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode json %q: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("JSON %q: %w", path, ErrNoRows)
	}

	rows := make([]highlight.Row, len(raw))
	for i, obj := range raw {
		rows[i] = schema.typeRow(highlight.Row(obj))
	}
	logging.Debugf("source: loaded %d rows from JSON %s", len(rows), path)
	return rows, nil
}
