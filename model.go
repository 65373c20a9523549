package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/andareed/siftly-interval/config"
	"github.com/andareed/siftly-interval/dialogs"
	"github.com/andareed/siftly-interval/highlight"
	"github.com/andareed/siftly-interval/logging"
	"github.com/andareed/siftly-interval/source"
	"github.com/andareed/siftly-interval/tooltip"
)

// footerHeight is the two footer bars; chromeHeight adds the title, the
// x axis, its labels, the legend and appstyle's vertical margin.
const (
	footerHeight = 2
	chromeHeight = footerHeight + 4 + 2
)

type model struct {
	cfg       config.File
	inputPath string
	query     string
	rows      []highlight.Row

	bus     *highlight.EventBus
	surface *highlight.MemorySurface
	overlay *highlight.Overlay
	tip     *tooltip.Controller
	balloon *termBalloon
	sched   *teaScheduler
	zones   *zone.Manager
	colors  *highlight.OrdinalColors

	dialog dialogs.Dialog
	legend help.Model
	ui     uiState

	ready         bool
	width, height int
	plotW, plotH  int
}

// newModel wires the overlay and the tooltip to one bus. Every deferred
// callback runs through sched so the program loop stays single-threaded.
func newModel(cfg config.File, inputPath, query string, rows []highlight.Row) *model {
	sched := &teaScheduler{}
	bus := highlight.NewEventBus()
	surface := highlight.NewMemorySurface()
	balloon := &termBalloon{}
	lg := logging.L()

	overlay := highlight.NewOverlay(bus, surface,
		highlight.WithScheduler(sched),
		highlight.WithBlurDelay(cfg.Chart.BlurDelay()),
		highlight.WithLogger(lg.Named("overlay")),
	)
	tip := tooltip.New(balloon,
		tooltip.WithScheduler(sched),
		tooltip.WithRenderer(tooltip.TextRenderer{BarCells: cfg.Tooltip.BarCells}),
		tooltip.WithFormatInfo(tooltip.FormatInfo{
			cfg.Chart.Category: tooltip.DefaultFieldFormat{Alias: cfg.Tooltip.NullAlias},
		}),
		tooltip.WithLogger(lg.Named("tooltip")),
	)
	tip.Attach(bus, overlay)

	legend := help.New()
	legend.Styles = help.Styles{}
	legend.ShortSeparator = " · "

	return &model{
		cfg:       cfg,
		inputPath: inputPath,
		query:     query,
		rows:      rows,
		bus:       bus,
		surface:   surface,
		overlay:   overlay,
		tip:       tip,
		balloon:   balloon,
		sched:     sched,
		zones:     zone.New(),
		legend:    legend,
	}
}

func (m *model) schema() source.Schema {
	return source.Schema{
		XDim:        m.cfg.Chart.X,
		YDim:        m.cfg.Chart.Y,
		CategoryDim: m.cfg.Chart.Category,
		TimeLayouts: m.cfg.Chart.TimeLayouts,
	}
}

func (m *model) Init() tea.Cmd {
	log.Println("siftly-interval: Initialised")
	return nil
}

// render lays the chart out for the current window and hands the rows to
// the overlay. It runs on resize and on reload.
func (m *model) render() {
	m.plotW = max(m.width-2*2-axisWidth, 1)
	m.plotH = clamp(m.cfg.Chart.Height, 3, max(m.height-chromeHeight, 3))

	sm, colors := buildScreenModel(m.rows, m.cfg.Chart, m.plotW)
	m.colors = colors
	m.overlay.Render(m.rows, sm, highlight.Size{Width: float64(m.plotW), Height: float64(m.plotH)})
	m.tip.OnRender()
	m.ui.hasCursor = false

	logging.L().Debug("chart rendered",
		zap.Int("plot_w", m.plotW),
		zap.Int("plot_h", m.plotH),
		zap.Int("points", len(m.overlay.Index())))
}

type reloadedMsg struct {
	rows []highlight.Row
	err  error
}

func (m *model) reloadCmd() tea.Cmd {
	path, query, schema := m.inputPath, m.query, m.schema()
	return func() tea.Msg {
		rows, err := source.LoadPattern(context.Background(), path, schema, query)
		return reloadedMsg{rows: rows, err: err}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	mod, cmd := m.update(msg)
	return mod, tea.Batch(cmd, m.sched.drain())
}

func (m *model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.render()
		return m, nil

	case deferredMsg:
		msg.fn()
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			logging.Errorf("reload %s: %v", m.inputPath, msg.err)
			return m, m.startNotice(fmt.Sprintf("Reload failed: %v", msg.err), "error", noticeDuration)
		}
		m.rows = msg.rows
		m.render()
		return m, m.startNotice(fmt.Sprintf("Reloaded %d rows", len(msg.rows)), "success", noticeDuration)

	case dialogs.HelpClosedMsg, dialogs.ExportCanceledMsg:
		m.closeDialog()
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportCmd(msg.Path)

	case dialogs.ExportOKMsg:
		return m, m.startNotice("Exported to "+filepath.Base(msg.Path), "success", noticeDuration)

	case dialogs.ExportErrorMsg:
		return m, m.startNotice(fmt.Sprintf("Export failed: %v", msg.Err), "error", noticeDuration)

	case tea.MouseMsg:
		if m.ui.mode == modeView {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeDialog:
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	case modeCommand:
		return m.handleCommandKey(msg)
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && CommandFromPrefix(msg.Runes[0]) != CmdNone:
		m.startCommand(CommandFromPrefix(msg.Runes[0]))
		return m, nil
	case key.Matches(msg, Keys.Quit):
		m.tip.Close()
		return m, tea.Quit
	case key.Matches(msg, Keys.Freeze):
		return m, m.toggleFreeze()
	case key.Matches(msg, Keys.PrevRange):
		m.stepRange(-1)
	case key.Matches(msg, Keys.NextRange):
		m.stepRange(1)
	case key.Matches(msg, Keys.FocusRange):
		return m, m.focusCursor()
	case key.Matches(msg, Keys.CopyRange):
		return m, m.copyComparison()
	case key.Matches(msg, Keys.Export):
		return m, m.openExportDialog()
	case key.Matches(msg, Keys.Reload):
		return m, m.reloadCmd()
	case key.Matches(msg, Keys.OpenHelp):
		m.openDialog(dialogs.NewHelpDialog(Keys.Legend()))
	case key.Matches(msg, Keys.Dismiss):
		m.tip.Hide()
	}
	return m, nil
}

// handleMouse turns mouse events into overlay pointer calls. Leaving is
// detected on the first event outside the cover after one inside it.
func (m *model) handleMouse(msg tea.MouseMsg) {
	info := m.zones.Get(coverZoneID)
	if info == nil || !info.InBounds(msg) {
		if m.ui.pointerInside {
			m.ui.pointerInside = false
			m.overlay.PointerLeave()
		}
		return
	}

	m.ui.pointerInside = true
	x, y := info.Pos(msg)
	p := highlight.Pointer{
		X:     float64(x),
		Y:     float64(y),
		PageX: float64(msg.X),
		PageY: float64(msg.Y),
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.overlay.PointerClick(p)
	case msg.Action == tea.MouseActionMotion:
		m.ui.cursorX = p.X
		m.ui.hasCursor = true
		m.overlay.PointerMove(p)
	}
}

// toggleFreeze flips the freeze flag. Unfreezing with the pointer outside
// the chart schedules the blur that the freeze held back.
func (m *model) toggleFreeze() tea.Cmd {
	frozen := !m.overlay.Frozen()
	m.overlay.Freeze(frozen)
	if frozen {
		return m.startNotice("Highlight frozen", "info", noticeDuration)
	}
	if !m.ui.pointerInside && m.overlay.State() == highlight.StateActive {
		m.overlay.PointerLeave()
	}
	return m.startNotice("Highlight follows the pointer", "info", noticeDuration)
}

func (m *model) openDialog(d dialogs.Dialog) {
	m.dialog = d
	m.ui.mode = modeDialog
}

func (m *model) closeDialog() {
	if m.dialog != nil {
		m.dialog.Hide()
	}
	m.dialog = nil
	m.ui.mode = modeView
}
