// ABOUTME: View models handed to the templates: the playground page, its event forms and the canvas example.
// ABOUTME: Every event form carries the encoded view state as hidden fields so the server stays stateless.
package web

import (
	"context"
	"html/template"
	"sort"
	"strconv"

	"github.com/2389-research/storybook-ui/catalog"
	"github.com/2389-research/storybook-ui/playground"
	"github.com/2389-research/storybook-ui/render"
)

// Field is one hidden form input.
type Field struct {
	Name  string
	Value string
}

// ExampleView flattens a playground.Example for templates, which cannot
// switch on dynamic types. Exactly one pointer is set.
type ExampleView struct {
	Kind        string
	Button      *playground.ButtonExample
	Card        *playground.CardExample
	Form        *playground.FormExample
	Placeholder *playground.Placeholder
}

// NewExampleView wraps ex for rendering.
func NewExampleView(ex playground.Example) ExampleView {
	v := ExampleView{Kind: string(ex.Kind())}
	switch e := ex.(type) {
	case playground.ButtonExample:
		v.Button = &e
	case playground.CardExample:
		v.Card = &e
	case playground.FormExample:
		v.Form = &e
	case playground.Placeholder:
		v.Kind = "placeholder"
		v.Placeholder = &e
	}
	return v
}

// SidebarItem is one entry of the component or story picker.
type SidebarItem struct {
	Name     string
	Label    string
	Icon     string
	Selected bool
}

// ControlView is a knob control with its current value. Toggle is the
// value a toggle control submits next.
type ControlView struct {
	playground.Control
	Value   string
	Checked bool
	Toggle  string
}

// TabView is one tab of the main area tab strip.
type TabView struct {
	Name   string
	Label  string
	Active bool
}

// PlaygroundView is everything playground.html needs for one request.
type PlaygroundView struct {
	State      playground.State
	Heading    string
	Fields     []Field
	Components []SidebarItem
	Stories    []SidebarItem
	Tabs       []TabView
	Example    ExampleView
	Controls   []ControlView
	NoControls string
	Docs       template.HTML
	Code       template.HTML
	Origin     string
}

// stateFields returns the hidden inputs that carry s through an event form,
// in a stable order.
func stateFields(s playground.State) []Field {
	values := playground.Encode(s)
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Value: values.Get(name)})
	}
	return fields
}

// newPlaygroundView assembles the page model. Docs and code are rendered
// only when their panel is visible.
func newPlaygroundView(ctx context.Context, s playground.State, src *catalog.Source, r *render.Renderer) (*PlaygroundView, error) {
	cat := s.Catalog()
	v := &PlaygroundView{
		State:   s,
		Heading: s.Heading(),
		Fields:  stateFields(s),
		Example: NewExampleView(s.Example()),
		Origin:  src.Origin(),
	}

	for _, c := range cat.Components {
		v.Components = append(v.Components, SidebarItem{
			Name:     c.Name,
			Label:    c.Label,
			Icon:     c.Icon,
			Selected: c.Name == string(s.Component),
		})
	}
	for _, st := range s.Stories() {
		v.Stories = append(v.Stories, SidebarItem{
			Name:     st.Name,
			Label:    st.Label,
			Selected: st.Name == s.Story,
		})
	}
	for _, t := range playground.Tabs {
		v.Tabs = append(v.Tabs, TabView{
			Name:   string(t),
			Label:  tabLabels[t],
			Active: t == s.Tab,
		})
	}

	panel := s.Controls()
	if panel.IsEmpty() {
		v.NoControls = panel.Empty
	}
	for _, c := range panel.Controls {
		value := s.Knobs.Value(c.Key)
		cv := ControlView{Control: c, Value: value}
		if c.Type == playground.ControlToggle {
			cv.Checked = value == "true"
			cv.Toggle = strconv.FormatBool(!cv.Checked)
		}
		v.Controls = append(v.Controls, cv)
	}

	if s.Tab == playground.TabDocs {
		docs := cat.Docs(string(s.Component))
		if docs == "" {
			docs = "No documentation for this component."
		}
		html, err := r.Markdown(ctx, docs)
		if err != nil {
			return nil, err
		}
		v.Docs = html
	}
	if s.ShowCode {
		html, err := r.Code(ctx, "jsx", playground.Snippet(s.Example()))
		if err != nil {
			return nil, err
		}
		v.Code = html
	}
	return v, nil
}

var tabLabels = map[playground.Tab]string{
	playground.TabCanvas:   "Canvas",
	playground.TabDocs:     "Docs",
	playground.TabSettings: "Settings",
}
