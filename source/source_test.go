package source

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-interval/highlight"
	"github.com/andareed/siftly-interval/tooltip"
)

var testSchema = Schema{XDim: "date", YDim: "value", CategoryDim: "category"}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCSV_TypesDimensions(t *testing.T) {
	path := writeFile(t, "m.csv", "\ufeffdate,category,value,host\n"+
		"2024-03-01,ok,3,a\n"+
		"2024-03-02,warn,2.5,b\n")

	rows, err := LoadCSV(path, testSchema)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rows[0]["date"])
	require.Equal(t, 3.0, rows[0]["value"])
	require.Equal(t, "ok", rows[0]["category"])
	require.Equal(t, "a", rows[0]["host"])
	require.Equal(t, 2.5, rows[1]["value"])
}

func TestLoadCSV_HeaderOnly(t *testing.T) {
	path := writeFile(t, "empty.csv", "date,category,value\n")
	_, err := LoadCSV(path, testSchema)
	require.ErrorIs(t, err, ErrNoRows)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "m.json", `[
		{"date": "2024-03-01T10:00:00Z", "category": "ok", "value": 4},
		{"date": 17, "category": "warn", "value": "1.5"}
	]`)

	rows, err := LoadJSON(path, testSchema)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), rows[0]["date"])
	require.Equal(t, 17.0, rows[1]["date"])
	require.Equal(t, 1.5, rows[1]["value"])
}

func TestParseTime_HostLogStamp(t *testing.T) {
	ts, ok := testSchema.parseTime("Tue Mar 05 10:11:12 UTC 2024:42")
	require.True(t, ok)
	require.Equal(t, 2024, ts.Year())
	require.Equal(t, 12, ts.Second())

	ts, ok = testSchema.parseTime("Tue Mar 05 10:11:12 UTC 2024")
	require.True(t, ok)
	require.Equal(t, time.March, ts.Month())

	_, ok = testSchema.parseTime("not a time")
	require.False(t, ok)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE metrics (date TEXT, category TEXT, value REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO metrics VALUES ('2024-03-01', 'ok', 3), ('2024-03-02', 'ok', 5)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	rows, err := Load(context.Background(), path, testSchema, "SELECT date, category, value FROM metrics ORDER BY date")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), rows[1]["date"])
	require.Equal(t, 5.0, rows[1]["value"])

	_, err = LoadSQLite(context.Background(), path, " ", testSchema)
	require.Error(t, err)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load(context.Background(), "data.xlsx", testSchema, "")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteComparisonCSV(t *testing.T) {
	prev := highlight.Stack{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Values: map[string]float64{"ok": 3}}
	next := highlight.Stack{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Values: map[string]float64{"ok": 4.5}}
	colors := highlight.NewOrdinalColors("category", []string{"ok"}, []string{"#0f0"})
	c := tooltip.BuildContent(prev, next, colors, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonCSV(&buf, c))
	require.Equal(t,
		"range,category,value,previous,delta\n"+
			"01–02 Mar 2024,ok,4.5,3,1.5\n",
		buf.String())
}

func TestSchemaParseX(t *testing.T) {
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), testSchema.ParseX(" 2024-03-01 "))
	require.Equal(t, 12.5, testSchema.ParseX("12.5"))
	require.Equal(t, "later", testSchema.ParseX("later"))
}

func TestLoadPattern_MergesMatches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("date,category,value\n2024-03-01,ok,1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b", "c.csv"), []byte("date,category,value\n2024-03-02,ok,2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	rows, err := LoadPattern(context.Background(), filepath.Join(dir, "**", "*.csv"), testSchema, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 1.0, rows[0]["value"])
	require.Equal(t, 2.0, rows[1]["value"])
}

func TestExpand(t *testing.T) {
	paths, err := Expand("plain.csv")
	require.NoError(t, err)
	require.Equal(t, []string{"plain.csv"}, paths)

	_, err = Expand(filepath.Join(t.TempDir(), "*.csv"))
	require.ErrorIs(t, err, ErrNoRows)
}
