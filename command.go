package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Command int

const (
	CmdNone Command = iota
	CmdJump
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdJump
	default:
		return CmdNone
	}
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "[JUMP]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdJump:
		return m.cfg.Chart.X + ": "
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer.
func (m *model) activeCommandLine() string {
	return m.commandBadge(m.ui.command.cmd) + " " + m.commandPrompt(m.ui.command.cmd) + m.ui.command.buf
}

func (m *model) startCommand(cmd Command) {
	m.ui.mode = modeCommand
	m.ui.command = CommandInput{cmd: cmd}
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.tip.Close()
		return m, tea.Quit
	case tea.KeyEsc:
		m.ui.mode = modeView
		m.ui.command = CommandInput{}
		return m, nil
	case tea.KeyEnter:
		ci := m.ui.command
		m.ui.mode = modeView
		m.ui.command = CommandInput{}
		return m, m.runCommand(ci)
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	case tea.KeyRunes:
		m.ui.command.buf += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m *model) runCommand(ci CommandInput) tea.Cmd {
	switch ci.cmd {
	case CmdJump:
		return m.jumpTo(ci.buf)
	default:
		return nil
	}
}
