// ABOUTME: Implements a single-line status bar for the bottom of the terminal playground.
// ABOUTME: Displays the view ID, current heading, active tab, time since mount, and the last event outcome.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel displays view status in a single line.
type StatusBarModel struct {
	viewID    string
	heading   string
	tab       string
	message   string
	isError   bool
	startTime time.Time
	width     int
}

// NewStatusBarModel creates a new StatusBarModel for the given view.
func NewStatusBarModel(viewID string) StatusBarModel {
	return StatusBarModel{viewID: viewID}
}

// Start records the mount time.
func (m *StatusBarModel) Start() {
	m.startTime = time.Now()
}

// SetView updates the heading and tab shown for the current state.
func (m *StatusBarModel) SetView(heading, tab string) {
	m.heading = heading
	m.tab = tab
}

// SetMessage shows the outcome of the last event. Error messages are highlighted.
func (m *StatusBarModel) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// Elapsed returns the time since Start() was called, or zero if not started.
func (m StatusBarModel) Elapsed() time.Duration {
	if m.startTime.IsZero() {
		return 0
	}
	return time.Since(m.startTime)
}

// formatElapsed formats a duration as a human-readable string.
// Durations under a minute show as seconds (e.g. "12s").
// Durations of a minute or more show as minutes and seconds (e.g. "2m30s").
func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) - minutes*60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

// shortID trims a UUID to its first block for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	content := fmt.Sprintf("View: %s | %s | Tab: %s | Open: %s",
		shortID(m.viewID), m.heading, m.tab, formatElapsed(m.Elapsed()))
	if m.message != "" {
		msg := m.message
		if m.isError {
			msg = ErrorStyle.Render(msg)
		}
		content += " | " + msg
	}

	style := StatusBarStyle.Width(m.width)

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(content))
}
