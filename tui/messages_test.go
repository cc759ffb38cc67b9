// ABOUTME: Tests for the tick command that drives the terminal playground clock.
// ABOUTME: Verifies that the command produces a TickMsg carrying its fire time.
package tui

import (
	"testing"
	"time"
)

func TestTickCmd(t *testing.T) {
	cmd := TickCmd(time.Millisecond)
	if cmd == nil {
		t.Fatal("TickCmd returned nil")
	}
	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg, got %T", cmd())
	}
	if msg.Time.IsZero() {
		t.Error("TickMsg.Time should be set")
	}
}
