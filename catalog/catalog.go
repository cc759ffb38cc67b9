// ABOUTME: Catalog of previewable components, their stories, story knob presets and markdown docs.
// ABOUTME: Parsed from YAML (embedded default or an external file) and validated before use.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStory is the story selected whenever a component is selected and
// the catalog does not know the component.
const DefaultStory = "primary"

// ErrInvalid is returned (wrapped) when a catalog document fails validation.
var ErrInvalid = errors.New("invalid catalog")

//go:embed catalog.yaml
var defaultYAML []byte

// presetDomains maps each knob a story preset may override to the values
// it accepts. A nil domain means free-form text.
var presetDomains = map[string][]string{
	"variant":  {"default", "destructive", "outline", "secondary", "ghost", "link"},
	"size":     {"default", "sm", "lg"},
	"disabled": {"true", "false"},
	"text":     nil,
}

// Story is a named preset scenario for a component.
type Story struct {
	Name    string            `yaml:"name" json:"name"`
	Label   string            `yaml:"label" json:"label"`
	Default bool              `yaml:"default" json:"default,omitempty"`
	Presets map[string]string `yaml:"presets" json:"presets,omitempty"`
}

// Component is one entry of the component picker.
type Component struct {
	Name    string  `yaml:"name" json:"name"`
	Label   string  `yaml:"label" json:"label"`
	Icon    string  `yaml:"icon" json:"icon,omitempty"`
	Docs    string  `yaml:"docs" json:"-"`
	Stories []Story `yaml:"stories" json:"stories"`
}

// Catalog is an immutable, validated set of components. Use Default, Parse
// or Load to obtain one.
type Catalog struct {
	Components []Component `yaml:"components"`

	byName map[string]int
}

// Default returns the catalog embedded in the binary. It panics if the
// embedded document is invalid, which tests guard against.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Components) == 0 {
		return fmt.Errorf("%w: no components", ErrInvalid)
	}

	c.byName = make(map[string]int, len(c.Components))
	for i := range c.Components {
		comp := &c.Components[i]
		comp.Name = strings.ToLower(strings.TrimSpace(comp.Name))
		if comp.Name == "" {
			return fmt.Errorf("%w: component %d has no name", ErrInvalid, i)
		}
		if _, dup := c.byName[comp.Name]; dup {
			return fmt.Errorf("%w: duplicate component %q", ErrInvalid, comp.Name)
		}
		if comp.Label == "" {
			comp.Label = strings.ToUpper(comp.Name[:1]) + comp.Name[1:]
		}
		if len(comp.Stories) == 0 {
			return fmt.Errorf("%w: component %q has no stories", ErrInvalid, comp.Name)
		}

		seen := make(map[string]bool, len(comp.Stories))
		defaults := 0
		for j := range comp.Stories {
			st := &comp.Stories[j]
			st.Name = strings.ToLower(strings.TrimSpace(st.Name))
			if st.Name == "" {
				return fmt.Errorf("%w: component %q story %d has no name", ErrInvalid, comp.Name, j)
			}
			if seen[st.Name] {
				return fmt.Errorf("%w: component %q has duplicate story %q", ErrInvalid, comp.Name, st.Name)
			}
			seen[st.Name] = true
			if st.Default {
				defaults++
			}
			for key, value := range st.Presets {
				domain, ok := presetDomains[key]
				if !ok {
					return fmt.Errorf("%w: story %s/%s presets unknown knob %q", ErrInvalid, comp.Name, st.Name, key)
				}
				if domain != nil && !slices.Contains(domain, value) {
					return fmt.Errorf("%w: story %s/%s presets %s=%q, want one of %s",
						ErrInvalid, comp.Name, st.Name, key, value, strings.Join(domain, ", "))
				}
			}
		}
		if defaults != 1 {
			return fmt.Errorf("%w: component %q must have exactly one default story, has %d", ErrInvalid, comp.Name, defaults)
		}

		c.byName[comp.Name] = i
	}
	return nil
}

// Component looks up a component by name.
func (c *Catalog) Component(name string) (Component, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Component{}, false
	}
	return c.Components[i], true
}

// Names returns component names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Components))
	for i, comp := range c.Components {
		names[i] = comp.Name
	}
	return names
}

// Stories returns the story domain of a component. Unknown components have
// no stories.
func (c *Catalog) Stories(component string) []Story {
	comp, ok := c.Component(component)
	if !ok {
		return nil
	}
	return comp.Stories
}

// DefaultStory returns the story a component resets to when selected.
func (c *Catalog) DefaultStory(component string) string {
	for _, st := range c.Stories(component) {
		if st.Default {
			return st.Name
		}
	}
	return DefaultStory
}

// Story looks up a story within a component's domain.
func (c *Catalog) Story(component, story string) (Story, bool) {
	for _, st := range c.Stories(component) {
		if st.Name == story {
			return st, true
		}
	}
	return Story{}, false
}

// Docs returns the markdown documentation for a component.
func (c *Catalog) Docs(component string) string {
	comp, ok := c.Component(component)
	if !ok {
		return ""
	}
	return comp.Docs
}
