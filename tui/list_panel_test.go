// ABOUTME: Tests for the picker list panel: cursor bounds, selection tracking and rendering.
// ABOUTME: Verifies that SetItems keeps or moves the cursor depending on the caller's request.
package tui

import (
	"strings"
	"testing"
)

func pickerItems(selected int) []ListItem {
	items := []ListItem{
		{Name: "button", Label: "Button"},
		{Name: "card", Label: "Card"},
		{Name: "form", Label: "Form"},
	}
	if selected >= 0 {
		items[selected].Selected = true
	}
	return items
}

func TestListPanelCursorBounds(t *testing.T) {
	m := NewListPanelModel("Components")
	m.SetItems(pickerItems(0), true)

	m.MoveUp()
	if m.cursor != 0 {
		t.Errorf("cursor = %d after MoveUp at top, want 0", m.cursor)
	}
	m.MoveDown()
	m.MoveDown()
	m.MoveDown()
	if m.cursor != 2 {
		t.Errorf("cursor = %d after MoveDown past end, want 2", m.cursor)
	}
	it, ok := m.Current()
	if !ok || it.Name != "form" {
		t.Errorf("Current = %+v, %v; want form", it, ok)
	}
}

func TestListPanelSetItemsMovesToSelected(t *testing.T) {
	m := NewListPanelModel("Stories")
	m.SetItems(pickerItems(2), true)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want selected row 2", m.cursor)
	}

	m.MoveUp()
	m.SetItems(pickerItems(2), false)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 kept without moveToSelected", m.cursor)
	}
}

func TestListPanelSetItemsClampsCursor(t *testing.T) {
	m := NewListPanelModel("Stories")
	m.SetItems(pickerItems(-1), false)
	m.MoveDown()
	m.MoveDown()

	m.SetItems(pickerItems(-1)[:1], false)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after the list shrank", m.cursor)
	}
}

func TestListPanelEmpty(t *testing.T) {
	m := NewListPanelModel("Stories")
	if _, ok := m.Current(); ok {
		t.Error("Current on empty list should report false")
	}
	if !strings.Contains(m.View(), "(none)") {
		t.Error("empty list should render (none)")
	}
}

func TestListPanelView(t *testing.T) {
	m := NewListPanelModel("Components")
	m.SetItems(pickerItems(1), true)
	m.SetFocused(true)
	m.SetWidth(26)

	view := m.View()
	for _, want := range []string{"Components", "Button", "● Card", "> ", "Form"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
