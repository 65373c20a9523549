package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a modal box drawn over the chart. While one is visible it
// receives every key message and the chart does not.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
