// ABOUTME: Tests for carrying a view's state in URL query values.
// ABOUTME: Covers mount detection, non-default state round trips and lenient decoding of missing keys.
package playground

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWithoutComponentIsMount(t *testing.T) {
	_, ok := Decode(nil, url.Values{})
	assert.False(t, ok)

	_, ok = Decode(nil, url.Values{"path": {"/button/secondary"}})
	assert.False(t, ok)
}

func TestEncodeDecodeNonDefaultState(t *testing.T) {
	s, _ := New(nil).SelectComponent(ComponentCard).SelectStory("with-form")
	s = s.SetKnob(KnobVariant, "ghost").
		SetKnob(KnobSize, "lg").
		SetKnob(KnobDisabled, "true").
		SetKnob(KnobText, "").
		ToggleSidebar().
		SelectTab(TabSettings).
		ToggleCode()

	got, ok := Decode(nil, Encode(s))
	require.True(t, ok)
	assert.Equal(t, s, got)
}

func TestDecodeMissingKeysKeepDefaults(t *testing.T) {
	s, ok := Decode(nil, url.Values{"component": {"form"}})
	require.True(t, ok)

	assert.Equal(t, ComponentForm, s.Component)
	assert.Equal(t, "primary", s.Story)
	assert.Equal(t, DefaultKnobs(), s.Knobs)
	assert.True(t, s.SidebarOpen)
	assert.Equal(t, TabCanvas, s.Tab)
	assert.NotEmpty(t, s.ViewID)
}

func TestDecodeIgnoresBadChrome(t *testing.T) {
	s, ok := Decode(nil, url.Values{
		"component": {"button"},
		"sidebar":   {"maybe"},
		"tab":       {"history"},
		"code":      {"?"},
	})
	require.True(t, ok)
	assert.True(t, s.SidebarOpen)
	assert.Equal(t, TabCanvas, s.Tab)
	assert.False(t, s.ShowCode)
}

func TestURL(t *testing.T) {
	s := New(nil)
	u, err := url.Parse(URL("/storybook", s))
	require.NoError(t, err)

	assert.Equal(t, "/storybook", u.Path)
	assert.Equal(t, "button", u.Query().Get("component"))
	assert.Equal(t, s.ViewID, u.Query().Get("view"))
	assert.Equal(t, "Button", u.Query().Get("text"))
}
