// ABOUTME: Selection state machine for one playground view: component, story, knobs and view chrome.
// ABOUTME: Every transition is a pure method returning the next State; nothing is shared between views.
package playground

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/2389-research/storybook-ui/catalog"
)

// Tab is the active tab of the main area.
type Tab string

const (
	TabCanvas   Tab = "canvas"
	TabDocs     Tab = "docs"
	TabSettings Tab = "settings"
)

// Tabs lists the tab strip in display order.
var Tabs = []Tab{TabCanvas, TabDocs, TabSettings}

var defaultCatalog = sync.OnceValue(catalog.Default)

// State is the complete UI state of one playground view.
type State struct {
	ViewID      string    `json:"view_id"`
	Component   Component `json:"component"`
	Story       string    `json:"story"`
	Knobs       Knobs     `json:"knobs"`
	SidebarOpen bool      `json:"sidebar_open"`
	Tab         Tab       `json:"tab"`
	ShowCode    bool      `json:"show_code"`

	cat *catalog.Catalog
}

// New returns a view in its initial state: the button component, its
// primary story and default knobs. A nil catalog means the embedded one.
func New(cat *catalog.Catalog) State {
	return State{
		ViewID:      uuid.NewString(),
		Component:   ComponentButton,
		Story:       catalog.DefaultStory,
		Knobs:       DefaultKnobs(),
		SidebarOpen: true,
		Tab:         TabCanvas,
		cat:         cat,
	}
}

// Mount returns the initial state for a view opened with a path query value
// such as "/button/secondary". The value is split on "/" and its second and
// third segments, lower-cased, set the component and story directly. They
// are not checked against the catalog and story presets are not applied.
func Mount(cat *catalog.Catalog, path string) State {
	s := New(cat)
	if path == "" {
		return s
	}
	parts := strings.Split(path, "/")
	if len(parts) > 1 && parts[1] != "" {
		s.Component = Component(strings.ToLower(parts[1]))
	}
	if len(parts) > 2 && parts[2] != "" {
		s.Story = strings.ToLower(parts[2])
	}
	return s
}

// Catalog returns the catalog this view resolves stories against.
func (s State) Catalog() *catalog.Catalog {
	if s.cat == nil {
		return defaultCatalog()
	}
	return s.cat
}

// WithCatalog rebinds the view to another catalog without touching state.
func (s State) WithCatalog(cat *catalog.Catalog) State {
	s.cat = cat
	return s
}

// SelectComponent switches the previewed component and resets the story to
// that component's default. Knobs are left as they are.
func (s State) SelectComponent(c Component) State {
	s.Component = c
	s.Story = s.Catalog().DefaultStory(string(c))
	return s
}

// SelectStory selects a story of the current component and applies that
// story's knob presets. If the story is not in the component's domain the
// state is returned unchanged with ok false.
func (s State) SelectStory(story string) (next State, ok bool) {
	st, ok := s.Catalog().Story(string(s.Component), story)
	if !ok {
		return s, false
	}
	s.Story = st.Name
	for _, key := range KnobKeys {
		if v, ok := st.Presets[string(key)]; ok {
			s.Knobs = s.Knobs.With(key, v)
		}
	}
	return s, true
}

// SetKnob overwrites one knob. Component, story and other knobs are
// unchanged.
func (s State) SetKnob(key KnobKey, value string) State {
	s.Knobs = s.Knobs.With(key, value)
	return s
}

// ToggleSidebar flips sidebar visibility.
func (s State) ToggleSidebar() State {
	s.SidebarOpen = !s.SidebarOpen
	return s
}

// SelectTab switches the main area tab. Unknown tabs are ignored.
func (s State) SelectTab(t Tab) State {
	for _, known := range Tabs {
		if known == t {
			s.Tab = t
			return s
		}
	}
	return s
}

// ToggleCode flips the code snippet panel under the canvas.
func (s State) ToggleCode() State {
	s.ShowCode = !s.ShowCode
	return s
}

// Example renders the current component with the current knobs.
func (s State) Example() Example {
	return Render(s.Component, s.Knobs)
}

// Controls returns the controls panel for the current component.
func (s State) Controls() Panel {
	return Controls(s.Component)
}

// Stories returns the story domain of the current component.
func (s State) Stories() []catalog.Story {
	return s.Catalog().Stories(string(s.Component))
}

// Heading is the canvas header, e.g. "Button / Secondary".
func (s State) Heading() string {
	return capitalize(string(s.Component)) + " / " + capitalize(s.Story)
}

func capitalize(v string) string {
	if v == "" {
		return v
	}
	r, size := utf8.DecodeRuneInString(v)
	return string(unicode.ToUpper(r)) + v[size:]
}
