package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit       key.Binding
	Freeze     key.Binding
	PrevRange  key.Binding
	NextRange  key.Binding
	FocusRange key.Binding
	Jump       key.Binding
	CopyRange  key.Binding
	Export     key.Binding
	Reload     key.Binding
	OpenHelp   key.Binding
	Dismiss    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Freeze: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "freeze highlight"),
	),
	PrevRange: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous interval"),
	),
	NextRange: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next interval"),
	),
	FocusRange: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "compare interval"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to x value"),
	),
	CopyRange: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy comparison"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export comparison"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload data"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "hide tooltip"),
	),
}

// ShortHelp is the footer legend.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenHelp, k.Freeze, k.FocusRange, k.CopyRange, k.Export, k.Quit}
}

func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Legend()}
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.Freeze,
		k.PrevRange,
		k.NextRange,
		k.FocusRange,
		k.Jump,
		k.CopyRange,
		k.Export,
		k.Reload,
		k.Dismiss,
	}
}
