// ABOUTME: Tests for the controls panel: choice cycling, toggle flipping, text editing and the empty placeholder.
// ABOUTME: The panel only reports values; these tests never go through playground.State.
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/storybook-ui/playground"
)

func buttonControls() ControlsPanelModel {
	m := NewControlsPanelModel()
	m.SetPanel(playground.Controls(playground.ComponentButton), playground.DefaultKnobs())
	return m
}

func TestControlsPanelChoiceWraps(t *testing.T) {
	m := buttonControls()

	key, value, ok := m.Next(-1)
	if !ok || key != playground.KnobVariant || value != string(playground.VariantLink) {
		t.Errorf("Next(-1) = %s, %s, %v; want variant, link, true", key, value, ok)
	}
	key, value, ok = m.Next(1)
	if !ok || key != playground.KnobVariant || value != string(playground.VariantDestructive) {
		t.Errorf("Next(1) = %s, %s, %v; want variant, destructive, true", key, value, ok)
	}
}

func TestControlsPanelToggle(t *testing.T) {
	m := buttonControls()
	m.cursor = 3

	key, value, ok := m.Next(1)
	if !ok || key != playground.KnobDisabled || value != "true" {
		t.Errorf("Next = %s, %s, %v; want disabled, true, true", key, value, ok)
	}

	m.SetPanel(playground.Controls(playground.ComponentButton), playground.DefaultKnobs().With(playground.KnobDisabled, "true"))
	if _, value, _ := m.Next(-1); value != "false" {
		t.Errorf("toggle from true = %s, want false", value)
	}
}

func TestControlsPanelTextDoesNotStep(t *testing.T) {
	m := buttonControls()
	m.cursor = 2
	if _, _, ok := m.Next(1); ok {
		t.Error("text control should not step")
	}
}

func TestControlsPanelEditing(t *testing.T) {
	m := buttonControls()
	if m.StartEditing() {
		t.Fatal("StartEditing on a choice control should fail")
	}

	m.cursor = 2
	if !m.StartEditing() {
		t.Fatal("StartEditing on the text control should succeed")
	}
	if !m.Editing() {
		t.Fatal("expected editing")
	}
	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	if cmd == nil {
		t.Error("typing should return the input's cursor command")
	}

	key, value := m.Commit()
	if key != playground.KnobText || value != playground.DefaultText+"!" {
		t.Errorf("Commit = %s, %q; want text, %q", key, value, playground.DefaultText+"!")
	}
	if m.Editing() {
		t.Error("Commit should close the input")
	}
}

func TestControlsPanelUpdateIgnoredWhenNotEditing(t *testing.T) {
	m := buttonControls()
	m.cursor = 2
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.input.Value() != "" {
		t.Errorf("input = %q, want empty when not editing", m.input.Value())
	}
	if cmd != nil {
		t.Error("Update should return no command when not editing")
	}
}

func TestControlsPanelLongText(t *testing.T) {
	m := buttonControls()
	m.cursor = 2
	if !m.StartEditing() {
		t.Fatal("StartEditing on the text control should succeed")
	}
	long := strings.Repeat("a very long button label ", 8)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(long)})

	_, value := m.Commit()
	if want := playground.DefaultText + long; value != want {
		t.Errorf("Commit = %d chars, want %d", len(value), len(want))
	}
}

func TestControlsPanelCursorResetOnSmallerPanel(t *testing.T) {
	m := buttonControls()
	m.MoveDown()
	m.MoveDown()
	m.MoveDown()
	m.MoveDown()
	if m.cursor != 3 {
		t.Fatalf("cursor = %d, want 3", m.cursor)
	}

	m.SetPanel(playground.Controls(playground.ComponentForm), playground.DefaultKnobs())
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 for an empty panel", m.cursor)
	}
	if _, ok := m.Current(); ok {
		t.Error("empty panel should have no current control")
	}
}

func TestControlsPanelView(t *testing.T) {
	m := buttonControls()
	m.SetFocused(true)
	m.SetWidth(60)

	view := m.View()
	for _, want := range []string{"Controls", "Variant", "‹ Default ›", "Size", `"Button"`, "Disabled", "[ ]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m.SetPanel(playground.Controls(playground.ComponentForm), playground.DefaultKnobs())
	if !strings.Contains(m.View(), playground.NoControlsMessage) {
		t.Error("empty panel should show the no-controls message")
	}
}
