// ABOUTME: Named user interaction events and Apply, which dispatches one event to one transition.
// ABOUTME: Apply enforces what the widgets would enforce: story domains, exposed knobs, choice domains.
package playground

import (
	"errors"
	"fmt"
	"strings"
)

// EventType names a user interaction.
type EventType string

const (
	EventSelectComponent EventType = "select-component"
	EventSelectStory     EventType = "select-story"
	EventSetKnob         EventType = "set-knob"
	EventToggleSidebar   EventType = "toggle-sidebar"
	EventSelectTab       EventType = "select-tab"
	EventToggleCode      EventType = "toggle-code"
)

var (
	// ErrUnknownEvent is returned for event types Apply does not know.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrRejected is returned when no widget of the current view could have
	// emitted the event (a story outside the domain, a knob the component
	// does not expose, a value outside a choice).
	ErrRejected = errors.New("event rejected")
)

// Event is one user interaction. Key is used by set-knob only.
type Event struct {
	Type  EventType `json:"type"`
	Key   KnobKey   `json:"key,omitempty"`
	Value string    `json:"value,omitempty"`
}

// Apply runs the transition for e. On error the state is returned unchanged.
func (s State) Apply(e Event) (State, error) {
	switch e.Type {
	case EventSelectComponent:
		if e.Value == "" {
			return s, fmt.Errorf("%w: select-component needs a component", ErrRejected)
		}
		if _, ok := s.Catalog().Component(e.Value); !ok {
			return s, fmt.Errorf("%w: component %q is not in the catalog (have %s)",
				ErrRejected, e.Value, strings.Join(s.Catalog().Names(), ", "))
		}
		return s.SelectComponent(Component(e.Value)), nil

	case EventSelectStory:
		next, ok := s.SelectStory(e.Value)
		if !ok {
			return s, fmt.Errorf("%w: story %q is not a story of %q", ErrRejected, e.Value, s.Component)
		}
		return next, nil

	case EventSetKnob:
		if !isKnobKey(e.Key) {
			return s, fmt.Errorf("%w: knob %q", ErrRejected, e.Key)
		}
		ctl, ok := s.Controls().Control(e.Key)
		if !ok {
			return s, fmt.Errorf("%w: %q exposes no %s control", ErrRejected, s.Component, e.Key)
		}
		if !ctl.Accepts(e.Value) {
			return s, fmt.Errorf("%w: %q is not a valid %s", ErrRejected, e.Value, e.Key)
		}
		return s.SetKnob(e.Key, e.Value), nil

	case EventToggleSidebar:
		return s.ToggleSidebar(), nil

	case EventSelectTab:
		next := s.SelectTab(Tab(e.Value))
		if next.Tab != Tab(e.Value) {
			return s, fmt.Errorf("%w: tab %q", ErrRejected, e.Value)
		}
		return next, nil

	case EventToggleCode:
		return s.ToggleCode(), nil

	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
}
