package main

import "github.com/charmbracelet/lipgloss"

const (
	axisFGColor   = "#8a8a8a"
	bandBGColor   = "#3a3a3a"
	titleFGColor  = "#e0e0e0"
	balloonBorder = "245"
	emptyFGColor  = "#a0a0a0"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleFGColor)).MarginLeft(axisWidth)
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(axisFGColor))

	emptyPlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(emptyFGColor)).
			Align(lipgloss.Center, lipgloss.Center)

	balloonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(balloonBorder)).
			Padding(0, 1)
)
