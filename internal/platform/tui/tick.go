// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-cores/internal/phase"
	"github.com/vovakirdan/arcade-cores/internal/scheduler"
)

// TickMsg asks a session for one update. Token authorizes it; a stale
// token is dropped by the scheduler.
type TickMsg struct {
	Session string
	Token   scheduler.Token
}

// DeferredMsg fires a deferred phase transition once its delay elapsed.
type DeferredMsg struct {
	Session string
	ID      uint64
}

// tickCmd schedules the next tick after interval.
func tickCmd(interval time.Duration, sessionID string, tok scheduler.Token) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Session: sessionID, Token: tok}
	})
}

// deferCmd schedules the resolution of d.
func deferCmd(sessionID string, d phase.Deferred) tea.Cmd {
	return tea.Tick(d.Delay, func(time.Time) tea.Msg {
		return DeferredMsg{Session: sessionID, ID: d.ID}
	})
}
