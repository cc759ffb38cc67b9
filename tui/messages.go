// ABOUTME: Bubble Tea message types and commands used in the terminal playground message loop.
// ABOUTME: TickMsg drives the status bar clock and picks up catalog reloads.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent periodically to update timers and check for a reloaded catalog.
type TickMsg struct {
	Time time.Time
}

// TickCmd returns a command that sends a TickMsg after interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
