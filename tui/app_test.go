// ABOUTME: Tests for the top-level AppModel that drives the terminal playground.
// ABOUTME: Covers initialization, key routing into playground events, focus management, catalog reloads, and view rendering.
package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/storybook-ui/catalog"
	"github.com/2389-research/storybook-ui/playground"
)

// testAppModel creates an AppModel for a fresh view over the embedded catalog.
func testAppModel() AppModel {
	return NewAppModel(playground.New(nil), nil, nil)
}

// press sends one key to m and returns the updated model.
func press(m AppModel, key string) AppModel {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(AppModel)
}

func typeText(m AppModel, s string) AppModel {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(AppModel)
	}
	return m
}

func TestNewAppModel(t *testing.T) {
	m := testAppModel()

	if m.focus != FocusComponents {
		t.Errorf("initial focus = %d, want FocusComponents", m.focus)
	}
	s := m.State()
	if s.Component != playground.ComponentButton || s.Story != "primary" {
		t.Errorf("initial selection = %s/%s, want button/primary", s.Component, s.Story)
	}
	if len(m.components.items) != 3 {
		t.Errorf("components = %d, want 3", len(m.components.items))
	}
	if len(m.stories.items) != 3 {
		t.Errorf("stories = %d, want 3", len(m.stories.items))
	}
	if len(m.controls.controls) != 4 {
		t.Errorf("controls = %d, want 4", len(m.controls.controls))
	}
}

func TestAppModelInitReturnsTick(t *testing.T) {
	if cmd := testAppModel().Init(); cmd == nil {
		t.Fatal("Init should return a tick command")
	}
}

func TestAppModelQuit(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		m := testAppModel()
		var msg tea.KeyMsg
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key)
		}
	}
}

func TestAppModelSelectComponentResetsStoryKeepsKnobs(t *testing.T) {
	m := testAppModel()
	m = press(m, "tab") // stories
	m = press(m, "down")
	m = press(m, "enter") // secondary
	if m.State().Knobs.Variant != playground.VariantSecondary {
		t.Fatalf("variant = %s, want secondary", m.State().Knobs.Variant)
	}

	m = press(m, "shift+tab") // components
	m = press(m, "down")
	m = press(m, "enter") // card

	s := m.State()
	if s.Component != playground.ComponentCard {
		t.Fatalf("component = %s, want card", s.Component)
	}
	if s.Story != "primary" {
		t.Errorf("story = %s, want primary", s.Story)
	}
	if s.Knobs.Variant != playground.VariantSecondary {
		t.Errorf("knobs changed on component switch: %+v", s.Knobs)
	}
	if len(m.stories.items) != 2 {
		t.Errorf("card stories = %d, want 2", len(m.stories.items))
	}
	if m.stories.cursor != 0 {
		t.Errorf("story cursor = %d, want 0 after component change", m.stories.cursor)
	}
}

func TestAppModelSelectStoryAppliesPreset(t *testing.T) {
	m := testAppModel()
	m = press(m, "tab")
	m = press(m, "down")
	m = press(m, "down")
	m = press(m, "enter")

	s := m.State()
	if s.Story != "destructive" || s.Knobs.Variant != playground.VariantDestructive {
		t.Errorf("got %s with variant %s, want destructive/destructive", s.Story, s.Knobs.Variant)
	}
	if !strings.Contains(m.statusBar.heading, "Button / Destructive") {
		t.Errorf("status heading = %q", m.statusBar.heading)
	}
}

func TestAppModelChoiceControlCycles(t *testing.T) {
	m := testAppModel()
	m = press(m, "tab")
	m = press(m, "tab") // controls, cursor on variant

	m = press(m, "right")
	if got := m.State().Knobs.Variant; got != playground.VariantDestructive {
		t.Errorf("after right: variant = %s, want destructive", got)
	}
	m = press(m, "left")
	m = press(m, "left")
	if got := m.State().Knobs.Variant; got != playground.VariantLink {
		t.Errorf("after wrapping left: variant = %s, want link", got)
	}

	m = press(m, "down") // size
	m = press(m, "enter")
	if got := m.State().Knobs.Size; got != playground.SizeSmall {
		t.Errorf("size = %s, want sm", got)
	}
}

func TestAppModelToggleControl(t *testing.T) {
	m := testAppModel()
	m.setFocus(FocusControls)
	m.controls.cursor = 3 // disabled

	m = press(m, "enter")
	if !m.State().Knobs.Disabled {
		t.Fatal("expected disabled after toggle")
	}
	m = press(m, "right")
	if m.State().Knobs.Disabled {
		t.Error("expected enabled after second toggle")
	}
}

func TestAppModelTextControlEditing(t *testing.T) {
	m := testAppModel()
	m.setFocus(FocusControls)
	m.controls.cursor = 2 // text

	m = press(m, "enter")
	if !m.controls.Editing() {
		t.Fatal("expected text input to open")
	}
	for range len(playground.DefaultText) {
		m = press(m, "backspace")
	}
	m = typeText(m, "Save")
	// q is typed into the input rather than quitting while editing
	m = typeText(m, "q")
	m = press(m, "enter")

	if m.controls.Editing() {
		t.Error("expected input to close on enter")
	}
	if got := m.State().Knobs.Text; got != "Saveq" {
		t.Errorf("text = %q, want %q", got, "Saveq")
	}
}

func TestAppModelTextEditingReturnsInputCommand(t *testing.T) {
	m := testAppModel()
	m.setFocus(FocusControls)
	m.controls.cursor = 2 // text
	m = press(m, "enter")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil {
		t.Error("typing into the text input should return its cursor command")
	}
	m = updated.(AppModel)

	long := strings.Repeat("x", 100)
	m = typeText(m, long)
	m = press(m, "enter")
	if got := m.State().Knobs.Text; got != playground.DefaultText+"x"+long {
		t.Errorf("text has %d chars, want %d", len(got), len(playground.DefaultText)+1+len(long))
	}
}

func TestAppModelTextControlCancel(t *testing.T) {
	m := testAppModel()
	m.setFocus(FocusControls)
	m.controls.cursor = 2

	m = press(m, "enter")
	m = typeText(m, "zzz")
	m = press(m, "esc")

	if m.controls.Editing() {
		t.Error("expected input closed after esc")
	}
	if got := m.State().Knobs.Text; got != playground.DefaultText {
		t.Errorf("text = %q, want unchanged %q", got, playground.DefaultText)
	}
}

func TestAppModelFormHasNoControls(t *testing.T) {
	m := testAppModel()
	m = press(m, "down")
	m = press(m, "down")
	m = press(m, "enter") // form

	if m.State().Component != playground.ComponentForm {
		t.Fatalf("component = %s, want form", m.State().Component)
	}
	if len(m.controls.controls) != 0 {
		t.Errorf("form controls = %d, want 0", len(m.controls.controls))
	}
	if !strings.Contains(m.controls.View(), playground.NoControlsMessage) {
		t.Error("expected no-controls message")
	}

	before := m.State()
	m.setFocus(FocusControls)
	m = press(m, "right")
	if m.State() != before {
		t.Error("expected no change when stepping an empty controls panel")
	}
}

func TestAppModelSidebarToggleMovesFocus(t *testing.T) {
	m := testAppModel()
	m = press(m, "s")

	if m.State().SidebarOpen {
		t.Fatal("expected sidebar closed")
	}
	if m.focus != FocusControls {
		t.Errorf("focus = %d, want FocusControls while sidebar hidden", m.focus)
	}
	m = press(m, "tab")
	if m.focus != FocusControls {
		t.Errorf("tab should stay on controls while sidebar hidden, got %d", m.focus)
	}
}

func TestAppModelTabsAndCode(t *testing.T) {
	m := testAppModel()
	m = press(m, "2")
	if m.State().Tab != playground.TabDocs {
		t.Errorf("tab = %s, want docs", m.State().Tab)
	}
	m = press(m, "3")
	if m.State().Tab != playground.TabSettings {
		t.Errorf("tab = %s, want settings", m.State().Tab)
	}
	m = press(m, "1")
	m = press(m, "c")
	if !m.State().ShowCode {
		t.Error("expected code shown")
	}
}

func TestAppModelMountUnknownComponent(t *testing.T) {
	m := NewAppModel(playground.Mount(nil, "/navigation/primary"), nil, nil)
	m = press(m, "tab")
	m = press(m, "enter") // no stories to select

	if m.State().Component != "navigation" {
		t.Errorf("component = %s, want navigation", m.State().Component)
	}
	if m.statusBar.isError {
		t.Error("enter on an empty story list should not emit an event")
	}
}

func TestAppModelTickPicksUpCatalogReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := `components:
  - name: button
    label: Knopf
    stories:
      - name: primary
        label: Primary
        default: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	src := catalog.NewSource(catalog.Default(), catalog.EmbeddedOrigin)
	m := NewAppModel(playground.New(nil), src, nil)
	if err := src.Reload(path); err != nil {
		t.Fatalf("reload: %v", err)
	}

	updated, cmd := m.Update(TickMsg{Time: time.Now()})
	m = updated.(AppModel)
	if cmd == nil {
		t.Error("expected next tick to be scheduled")
	}
	if len(m.components.items) != 1 || m.components.items[0].Label != "Knopf" {
		t.Errorf("components not rebuilt from reloaded catalog: %+v", m.components.items)
	}
	if m.statusBar.message != "catalog reloaded" {
		t.Errorf("status message = %q", m.statusBar.message)
	}
}

func TestAppModelView(t *testing.T) {
	m := testAppModel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before size = %q", got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 5})
	if got := updated.View(); !strings.Contains(got, "Terminal too small") {
		t.Errorf("expected size guard, got %q", got)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := updated.View()
	for _, want := range []string{"Components", "Stories", "Button / Primary", "Controls", "Variant", "View:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAppModelViewTabs(t *testing.T) {
	m := testAppModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(AppModel)

	m = press(m, "c")
	if !strings.Contains(m.View(), "<Button>Button</Button>") {
		t.Error("expected snippet on canvas when code is shown")
	}

	m = press(m, "2")
	if m.docs == nil {
		t.Fatal("expected docs renderer after resize")
	}
	if !strings.Contains(m.View(), "Interactive button with multiple variants") {
		t.Error("expected rendered docs on docs tab")
	}

	m = press(m, "3")
	view := m.View()
	if !strings.Contains(view, m.State().ViewID) || !strings.Contains(view, catalog.EmbeddedOrigin) {
		t.Error("expected view id and catalog origin on settings tab")
	}
}
