// ABOUTME: Example is the tagged union of previewable instances produced by Render.
// ABOUTME: One concrete type per component kind plus a Placeholder for anything unknown.
package playground

// Component names an entry in the component picker.
type Component string

const (
	ComponentButton Component = "button"
	ComponentCard   Component = "card"
	ComponentForm   Component = "form"
)

// PlaceholderMessage is shown on the canvas when no known component is selected.
const PlaceholderMessage = "Select a component to preview"

// CardTitleFallback replaces an empty text knob as the card title.
const CardTitleFallback = "Card Title"

// Example is a displayable instance of a component. The set of
// implementations is closed: ButtonExample, CardExample, FormExample and
// Placeholder.
type Example interface {
	Kind() Component
	example()
}

// ButtonExample is a single button.
type ButtonExample struct {
	Variant  Variant `json:"variant"`
	Size     Size    `json:"size"`
	Disabled bool    `json:"disabled"`
	Label    string  `json:"label"`
}

// CardExample is a card whose footer holds an action button.
type CardExample struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Body        string        `json:"body"`
	Action      ButtonExample `json:"action"`
}

// FormField is one labelled input of a FormExample.
type FormField struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
}

// FormExample is a fixed form layout inside a card.
type FormExample struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Fields      []FormField   `json:"fields"`
	TermsLabel  string        `json:"terms_label"`
	Submit      ButtonExample `json:"submit"`
}

// Placeholder is rendered for components without a kind.
type Placeholder struct {
	Requested Component `json:"requested"`
	Message   string    `json:"message"`
}

func (ButtonExample) Kind() Component { return ComponentButton }
func (CardExample) Kind() Component   { return ComponentCard }
func (FormExample) Kind() Component   { return ComponentForm }
func (p Placeholder) Kind() Component { return p.Requested }

func (ButtonExample) example() {}
func (CardExample) example()   {}
func (FormExample) example()   {}
func (Placeholder) example()   {}

// Render builds the example for a component from the current knobs. It has
// no side effects and returns equal values for equal inputs.
func Render(c Component, k Knobs) Example {
	kd, ok := kinds[c]
	if !ok {
		return Placeholder{Requested: c, Message: PlaceholderMessage}
	}
	return kd.render(k.only(kd.consumes))
}

func actionButton(k Knobs, label string) ButtonExample {
	return ButtonExample{
		Variant:  k.Variant,
		Size:     k.Size,
		Disabled: k.Disabled,
		Label:    label,
	}
}

func renderButton(k Knobs) Example {
	return actionButton(k, k.Text)
}

func renderCard(k Knobs) Example {
	title := k.Text
	if title == "" {
		title = CardTitleFallback
	}
	return CardExample{
		Title:       title,
		Description: "Card Description",
		Body:        "Card content goes here. This is a simple card component example.",
		Action:      actionButton(k, "Action"),
	}
}

func renderForm(k Knobs) Example {
	return FormExample{
		Title:       "Form Example",
		Description: "A simple form component",
		Fields: []FormField{
			{ID: "name", Label: "Name", Type: "text", Placeholder: "Enter your name"},
			{ID: "email", Label: "Email", Type: "email", Placeholder: "Enter your email"},
		},
		TermsLabel: "Accept terms and conditions",
		Submit:     actionButton(k, "Submit"),
	}
}
