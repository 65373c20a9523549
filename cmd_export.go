package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-interval/clipboard"
	"github.com/andareed/siftly-interval/dialogs"
	"github.com/andareed/siftly-interval/logging"
	"github.com/andareed/siftly-interval/source"
	"github.com/andareed/siftly-interval/tooltip"
)

func (m *model) copyComparison() tea.Cmd {
	c, ok := m.tip.Last()
	if !ok {
		return m.startNotice("Click an interval to compare it first", "warn", noticeDuration)
	}
	if err := clipboard.Copy(tooltip.PlainText(c)); err != nil {
		return m.startNotice(fmt.Sprintf("Copy failed: %v", err), "error", noticeDuration)
	}
	return m.startNotice("Comparison copied", "success", noticeDuration)
}

// defaultExportName names the export after the compared interval.
func defaultExportName(c tooltip.Content) string {
	if c.From.IsZero() || c.To.IsZero() {
		return "interval.csv"
	}
	return fmt.Sprintf("interval-%s-%s.csv", c.From.Format("20060102"), c.To.Format("20060102"))
}

func (m *model) openExportDialog() tea.Cmd {
	c, ok := m.tip.Last()
	if !ok {
		return m.startNotice("Click an interval to compare it first", "warn", noticeDuration)
	}
	d := dialogs.NewExportDialog(defaultExportName(c), filepath.Dir(m.inputPath), c.DateRange)
	m.openDialog(d)
	return d.Init()
}

// exportCmd writes the last comparison to path off the program loop.
func (m *model) exportCmd(path string) tea.Cmd {
	c, ok := m.tip.Last()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		if err := writeComparison(path, c); err != nil {
			logging.Errorf("export %s: %v", path, err)
			return dialogs.ExportErrorMsg{Err: err}
		}
		logging.Infof("exported comparison %q to %s", c.DateRange, path)
		return dialogs.ExportOKMsg{Path: path}
	}
}

func writeComparison(path string, c tooltip.Content) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := source.WriteComparisonCSV(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
