// ABOUTME: Component kinds: for each known component, its renderer and its knob subsets.
// ABOUTME: consumes lists knobs the renderer reads, exposes lists knobs the controls panel offers.
package playground

type kind struct {
	consumes []KnobKey
	exposes  []KnobKey
	render   func(Knobs) Example
}

var kinds = map[Component]kind{
	ComponentButton: {
		consumes: []KnobKey{KnobVariant, KnobSize, KnobText, KnobDisabled},
		exposes:  []KnobKey{KnobVariant, KnobSize, KnobText, KnobDisabled},
		render:   renderButton,
	},
	ComponentCard: {
		consumes: []KnobKey{KnobVariant, KnobSize, KnobText, KnobDisabled},
		exposes:  []KnobKey{KnobVariant, KnobSize, KnobText, KnobDisabled},
		render:   renderCard,
	},
	// The submit button reads variant, size and disabled, but the form
	// exposes no controls.
	ComponentForm: {
		consumes: []KnobKey{KnobVariant, KnobSize, KnobDisabled},
		exposes:  nil,
		render:   renderForm,
	},
}

// Exposes returns the knobs a component's controls panel offers.
func Exposes(c Component) []KnobKey {
	return append([]KnobKey(nil), kinds[c].exposes...)
}

// only returns the default knobs overwritten with k's values for keys.
// Renderers see only what their kind consumes.
func (k Knobs) only(keys []KnobKey) Knobs {
	out := DefaultKnobs()
	for _, key := range keys {
		out = out.With(key, k.Value(key))
	}
	return out
}
