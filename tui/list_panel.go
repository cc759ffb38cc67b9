// ABOUTME: Bubble Tea sub-model for a cursor-driven picker list, used for the component and story pickers.
// ABOUTME: The cursor is independent of the selection; Enter on the cursor row emits a selection event.
package tui

import "strings"

// ListItem is one row of a picker.
type ListItem struct {
	Name     string
	Label    string
	Selected bool
}

// ListPanelModel renders a titled list with a cursor.
type ListPanelModel struct {
	title   string
	items   []ListItem
	cursor  int
	focused bool
	width   int
}

// NewListPanelModel creates an empty picker with the given title.
func NewListPanelModel(title string) ListPanelModel {
	return ListPanelModel{title: title}
}

// SetItems replaces the rows. The cursor moves to the selected row when the
// previous cursor position is out of range or moveToSelected is set.
func (m *ListPanelModel) SetItems(items []ListItem, moveToSelected bool) {
	m.items = items
	if moveToSelected || m.cursor >= len(items) {
		m.cursor = 0
		for i, it := range items {
			if it.Selected {
				m.cursor = i
				break
			}
		}
	}
}

// MoveUp moves the cursor one row up, stopping at the first row.
func (m *ListPanelModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor one row down, stopping at the last row.
func (m *ListPanelModel) MoveDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// Current returns the row under the cursor.
func (m ListPanelModel) Current() (ListItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return ListItem{}, false
	}
	return m.items[m.cursor], true
}

// SetFocused marks the panel as receiving keys.
func (m *ListPanelModel) SetFocused(f bool) {
	m.focused = f
}

// SetWidth sets the rendering width.
func (m *ListPanelModel) SetWidth(w int) {
	m.width = w
}

// View renders the title and rows.
func (m ListPanelModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(MutedStyle.Render("  (none)"))
	}
	for i, it := range m.items {
		prefix := "  "
		if m.focused && i == m.cursor {
			prefix = CursorStyle.Render("> ")
		}
		label := it.Label
		if it.Selected {
			label = SelectedStyle.Render("● " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(prefix + label)
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}

	style := BorderStyle
	if m.focused {
		style = FocusedBorderStyle
	}
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String())
}
