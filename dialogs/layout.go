package dialogs

import "github.com/charmbracelet/lipgloss"

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(lipgloss.Color("236")).
	Padding(1, 2).
	Width(60)

// Center places a dialog in the middle of a width x height area.
func Center(s string, width, height int) string {
	box := lipgloss.NewStyle().Width(width).Height(height).Align(lipgloss.Center, lipgloss.Center)
	return box.Render(s)
}
