package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-interval/highlight"
)

var _ highlight.Scheduler = (*teaScheduler)(nil)

// deferredMsg carries a callback scheduled by the overlay or the tooltip back
// into the program loop, so it runs on the same goroutine as Update.
type deferredMsg struct{ fn func() }

// teaScheduler turns AfterFunc calls into tea.Tick commands. Update drains
// them after every message.
type teaScheduler struct {
	pending []tea.Cmd
}

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return deferredMsg{fn: fn}
	}))
}

func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
