// ABOUTME: Encodes a playground State into URL query values and decodes it back.
// ABOUTME: The URL is the view context of the web playground; a request without state keys is a mount.
package playground

import (
	"net/url"
	"strconv"

	"github.com/2389-research/storybook-ui/catalog"
)

// Query keys carrying a view's state.
const (
	QueryPath      = "path"
	QueryView      = "view"
	QueryComponent = "component"
	QueryStory     = "story"
	QuerySidebar   = "sidebar"
	QueryTab       = "tab"
	QueryCode      = "code"
)

// Encode returns the query values describing s.
func Encode(s State) url.Values {
	v := url.Values{}
	v.Set(QueryView, s.ViewID)
	v.Set(QueryComponent, string(s.Component))
	v.Set(QueryStory, s.Story)
	for _, key := range KnobKeys {
		v.Set(string(key), s.Knobs.Value(key))
	}
	v.Set(QuerySidebar, strconv.FormatBool(s.SidebarOpen))
	v.Set(QueryTab, string(s.Tab))
	v.Set(QueryCode, strconv.FormatBool(s.ShowCode))
	return v
}

// Decode rebuilds a State from query values. It reports false when v holds
// no component, meaning the request mounts a new view. Missing keys keep
// their initial values; present keys are taken as-is.
func Decode(cat *catalog.Catalog, v url.Values) (State, bool) {
	if v.Get(QueryComponent) == "" {
		return State{}, false
	}

	s := New(cat)
	if id := v.Get(QueryView); id != "" {
		s.ViewID = id
	}
	s.Component = Component(v.Get(QueryComponent))
	if story := v.Get(QueryStory); story != "" {
		s.Story = story
	}
	for _, key := range KnobKeys {
		if _, ok := v[string(key)]; ok {
			s.Knobs = s.Knobs.With(key, v.Get(string(key)))
		}
	}
	if b, err := strconv.ParseBool(v.Get(QuerySidebar)); err == nil {
		s.SidebarOpen = b
	}
	s = s.SelectTab(Tab(v.Get(QueryTab)))
	if b, err := strconv.ParseBool(v.Get(QueryCode)); err == nil {
		s.ShowCode = b
	}
	return s, true
}

// URL returns base with s encoded as its query string.
func URL(base string, s State) string {
	return base + "?" + Encode(s).Encode()
}
