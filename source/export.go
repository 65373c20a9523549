package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/andareed/siftly-interval/tooltip"
)

// WriteComparisonCSV writes one line per category with the value at the end of
// the interval, the value at its start and the change between them.
func WriteComparisonCSV(w io.Writer, c tooltip.Content) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"range", "category", "value", "previous", "delta"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, it := range c.Items {
		rec := []string{
			c.DateRange,
			it.Name,
			tooltip.FormatValue(it.Value),
			tooltip.FormatValue(it.Value - it.Diff),
			tooltip.FormatValue(it.Diff),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", it.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
