// ABOUTME: Tests for the example renderer and the knob subsets declared by each component kind.
// ABOUTME: Covers the card title fallback, the fixed form layout and the placeholder for unknown components.
package playground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderButton(t *testing.T) {
	k := Knobs{Variant: VariantGhost, Size: SizeLarge, Disabled: true, Text: "Go"}

	ex := Render(ComponentButton, k)

	assert.Equal(t, ButtonExample{Variant: VariantGhost, Size: SizeLarge, Disabled: true, Label: "Go"}, ex)
	assert.Equal(t, ComponentButton, ex.Kind())
}

func TestRenderCard(t *testing.T) {
	k := Knobs{Variant: VariantOutline, Size: SizeSmall, Text: "Pricing"}

	ex, ok := Render(ComponentCard, k).(CardExample)
	require.True(t, ok)

	assert.Equal(t, "Pricing", ex.Title)
	assert.Equal(t, "Card Description", ex.Description)
	assert.Equal(t, ButtonExample{Variant: VariantOutline, Size: SizeSmall, Label: "Action"}, ex.Action)
}

func TestRenderCardEmptyTitleFallback(t *testing.T) {
	s := New(nil).SelectComponent(ComponentCard).SetKnob(KnobText, "")

	ex, ok := s.Example().(CardExample)
	require.True(t, ok)
	assert.Equal(t, "Card Title", ex.Title)
}

func TestRenderFormIgnoresText(t *testing.T) {
	a := Render(ComponentForm, Knobs{Variant: VariantDestructive, Size: SizeLarge, Disabled: true, Text: "one"})
	b := Render(ComponentForm, Knobs{Variant: VariantDestructive, Size: SizeLarge, Disabled: true, Text: "two"})
	assert.Equal(t, a, b)

	form, ok := a.(FormExample)
	require.True(t, ok)
	assert.Equal(t, "Form Example", form.Title)
	require.Len(t, form.Fields, 2)
	assert.Equal(t, "name", form.Fields[0].ID)
	assert.Equal(t, "email", form.Fields[1].Type)
	assert.Equal(t, ButtonExample{Variant: VariantDestructive, Size: SizeLarge, Disabled: true, Label: "Submit"}, form.Submit)
}

func TestRenderUnknownIsPlaceholder(t *testing.T) {
	for _, c := range []Component{"", "navigation", "story", "BUTTON"} {
		ex := Render(c, DefaultKnobs())
		p, ok := ex.(Placeholder)
		require.True(t, ok, "component %q", c)
		assert.Equal(t, "Select a component to preview", p.Message)
		assert.Equal(t, c, p.Kind())
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	k := Knobs{Variant: VariantLink, Size: SizeSmall, Text: "x"}
	for _, c := range []Component{ComponentButton, ComponentCard, ComponentForm, "other"} {
		assert.Equal(t, Render(c, k), Render(c, k))
	}
}

func TestKindKnobSubsets(t *testing.T) {
	assert.Equal(t, KnobKeys, Exposes(ComponentButton))
	assert.Equal(t, KnobKeys, Exposes(ComponentCard))
	assert.Empty(t, Exposes(ComponentForm))
	assert.Empty(t, Exposes("navigation"))
	assert.ElementsMatch(t, []KnobKey{KnobVariant, KnobSize, KnobDisabled}, kinds[ComponentForm].consumes)
}

func TestRenderIgnoresKnobsTheKindDoesNotConsume(t *testing.T) {
	a := Knobs{Variant: VariantOutline, Size: SizeLarge, Disabled: true, Text: "first"}
	b := a
	b.Text = "second"
	assert.Equal(t, Render(ComponentForm, a), Render(ComponentForm, b))
	assert.NotEqual(t, Render(ComponentButton, a), Render(ComponentButton, b))
}

func TestKnobsValueAndWith(t *testing.T) {
	k := DefaultKnobs()
	for _, key := range KnobKeys {
		assert.Equal(t, k, k.With(key, k.Value(key)), "round trip %s", key)
	}

	assert.True(t, k.With(KnobDisabled, "true").Disabled)
	assert.False(t, k.With(KnobDisabled, "yes please").Disabled)
	assert.Equal(t, k, k.With("colour", "red"))
	assert.Empty(t, k.Value("colour"))
}
