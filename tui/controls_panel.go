// ABOUTME: Bubble Tea sub-model for the knob controls: choice rows cycle, toggles flip, text rows open an input.
// ABOUTME: The panel never changes state itself; it reports the value a control would emit and AppModel applies it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/storybook-ui/playground"
)

// ControlsPanelModel lists the controls of the current component.
type ControlsPanelModel struct {
	controls []playground.Control
	knobs    playground.Knobs
	empty    string
	cursor   int
	focused  bool
	editing  bool
	input    textinput.Model
	width    int
}

// NewControlsPanelModel creates an empty controls panel with its text input.
func NewControlsPanelModel() ControlsPanelModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0 // free-form text is unbounded

	return ControlsPanelModel{input: ti}
}

// SetPanel shows the controls of p with the values from k.
func (m *ControlsPanelModel) SetPanel(p playground.Panel, k playground.Knobs) {
	m.controls = p.Controls
	m.empty = p.Empty
	m.knobs = k
	if m.cursor >= len(m.controls) {
		m.cursor = 0
	}
}

// MoveUp moves the cursor one control up.
func (m *ControlsPanelModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor one control down.
func (m *ControlsPanelModel) MoveDown() {
	if m.cursor < len(m.controls)-1 {
		m.cursor++
	}
}

// Current returns the control under the cursor.
func (m ControlsPanelModel) Current() (playground.Control, bool) {
	if m.cursor < 0 || m.cursor >= len(m.controls) {
		return playground.Control{}, false
	}
	return m.controls[m.cursor], true
}

// Next returns the value the control under the cursor emits when stepped by
// delta: the neighbouring option of a choice (wrapping) or the flipped toggle.
// Text controls report false; they are edited with the input instead.
func (m ControlsPanelModel) Next(delta int) (playground.KnobKey, string, bool) {
	c, ok := m.Current()
	if !ok {
		return "", "", false
	}
	current := m.knobs.Value(c.Key)
	switch c.Type {
	case playground.ControlChoice:
		if len(c.Options) == 0 {
			return "", "", false
		}
		idx := 0
		for i, o := range c.Options {
			if o.Value == current {
				idx = i
			}
		}
		n := len(c.Options)
		idx = ((idx+delta)%n + n) % n
		return c.Key, c.Options[idx].Value, true
	case playground.ControlToggle:
		if current == "true" {
			return c.Key, "false", true
		}
		return c.Key, "true", true
	default:
		return "", "", false
	}
}

// StartEditing opens the text input on the current text control.
func (m *ControlsPanelModel) StartEditing() bool {
	c, ok := m.Current()
	if !ok || c.Type != playground.ControlText {
		return false
	}
	m.editing = true
	m.input.Placeholder = c.Placeholder
	m.input.SetValue(m.knobs.Value(c.Key))
	m.input.CursorEnd()
	m.input.Focus()
	return true
}

// Commit closes the input and returns the knob and the typed value.
func (m *ControlsPanelModel) Commit() (playground.KnobKey, string) {
	c, _ := m.Current()
	value := m.input.Value()
	m.Cancel()
	return c.Key, value
}

// Cancel closes the input without emitting a value.
func (m *ControlsPanelModel) Cancel() {
	m.editing = false
	m.input.Reset()
	m.input.Blur()
}

// Editing reports whether the text input is open.
func (m ControlsPanelModel) Editing() bool {
	return m.editing
}

// SetFocused marks the panel as receiving keys.
func (m *ControlsPanelModel) SetFocused(f bool) {
	m.focused = f
}

// SetWidth sets the rendering width.
func (m *ControlsPanelModel) SetWidth(w int) {
	m.width = w
}

// Update forwards messages to the text input while editing and returns the
// input's command, such as its cursor blink.
func (m ControlsPanelModel) Update(msg tea.Msg) (ControlsPanelModel, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders one row per control, or the empty placeholder.
func (m ControlsPanelModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Controls"))
	b.WriteString("\n")

	if len(m.controls) == 0 {
		b.WriteString(MutedStyle.Render(m.empty))
	}
	for i, c := range m.controls {
		prefix := "  "
		if m.focused && i == m.cursor {
			prefix = CursorStyle.Render("> ")
		}
		b.WriteString(prefix + LabelStyle.Render(c.Label) + m.valueView(i, c))
		if i < len(m.controls)-1 {
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

func (m ControlsPanelModel) valueView(i int, c playground.Control) string {
	value := m.knobs.Value(c.Key)
	switch c.Type {
	case playground.ControlChoice:
		label := value
		for _, o := range c.Options {
			if o.Value == value {
				label = o.Label
			}
		}
		return ValueStyle.Render(fmt.Sprintf("‹ %s ›", label))
	case playground.ControlToggle:
		if value == "true" {
			return SelectedStyle.Render("[x]")
		}
		return ValueStyle.Render("[ ]")
	default:
		if m.editing && i == m.cursor {
			return m.input.View()
		}
		if value == "" {
			return MutedStyle.Render(c.Placeholder)
		}
		return ValueStyle.Render(fmt.Sprintf("%q", value))
	}
}
