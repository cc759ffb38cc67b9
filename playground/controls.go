// ABOUTME: Builds the knob controls panel for a component from the knobs its kind exposes.
// ABOUTME: Control.Accepts is the widget-side domain check applied before SetKnob.
package playground

import "slices"

// NoControlsMessage is shown when a component exposes no knobs.
const NoControlsMessage = "No controls available for this component"

// ControlType is the widget used to edit a knob.
type ControlType string

const (
	ControlChoice ControlType = "choice"
	ControlText   ControlType = "text"
	ControlToggle ControlType = "toggle"
)

// Option is one entry of a choice control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Control edits a single knob. Its change handler is SetKnob(Key, value).
type Control struct {
	Key         KnobKey     `json:"key"`
	Label       string      `json:"label"`
	Type        ControlType `json:"type"`
	Options     []Option    `json:"options,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
}

// Accepts reports whether the widget could emit value.
func (c Control) Accepts(value string) bool {
	switch c.Type {
	case ControlChoice:
		return slices.ContainsFunc(c.Options, func(o Option) bool { return o.Value == value })
	case ControlToggle:
		return value == "true" || value == "false"
	case ControlText:
		return true
	default:
		return false
	}
}

// Panel is the rendered controls panel. An empty panel shows Empty instead.
type Panel struct {
	Controls []Control `json:"controls"`
	Empty    string    `json:"empty,omitempty"`
}

// IsEmpty reports whether the panel shows the no-controls placeholder.
func (p Panel) IsEmpty() bool {
	return len(p.Controls) == 0
}

// Control finds the control editing key.
func (p Panel) Control(key KnobKey) (Control, bool) {
	for _, c := range p.Controls {
		if c.Key == key {
			return c, true
		}
	}
	return Control{}, false
}

var controlDefs = map[KnobKey]Control{
	KnobVariant: {
		Key:   KnobVariant,
		Label: "Variant",
		Type:  ControlChoice,
		Options: []Option{
			{Value: string(VariantDefault), Label: "Default"},
			{Value: string(VariantDestructive), Label: "Destructive"},
			{Value: string(VariantOutline), Label: "Outline"},
			{Value: string(VariantSecondary), Label: "Secondary"},
			{Value: string(VariantGhost), Label: "Ghost"},
			{Value: string(VariantLink), Label: "Link"},
		},
		Placeholder: "Select variant",
	},
	KnobSize: {
		Key:   KnobSize,
		Label: "Size",
		Type:  ControlChoice,
		Options: []Option{
			{Value: string(SizeDefault), Label: "Default"},
			{Value: string(SizeSmall), Label: "Small"},
			{Value: string(SizeLarge), Label: "Large"},
		},
		Placeholder: "Select size",
	},
	KnobText: {
		Key:         KnobText,
		Label:       "Text",
		Type:        ControlText,
		Placeholder: "Button text",
	},
	KnobDisabled: {
		Key:   KnobDisabled,
		Label: "Disabled",
		Type:  ControlToggle,
	},
}

// Controls returns the controls panel for a component. Components that
// expose no knobs, including unknown ones, get the placeholder panel.
func Controls(c Component) Panel {
	exposed := Exposes(c)
	if len(exposed) == 0 {
		return Panel{Empty: NoControlsMessage}
	}
	controls := make([]Control, 0, len(exposed))
	for _, key := range exposed {
		controls = append(controls, controlDefs[key])
	}
	return Panel{Controls: controls}
}
