// ABOUTME: Knob keys, value domains and the Knobs set that parameterizes a rendered example.
// ABOUTME: Knobs are shared by all components; each component kind declares which ones it uses.
package playground

import "strconv"

// KnobKey names one user-adjustable parameter.
type KnobKey string

const (
	KnobVariant  KnobKey = "variant"
	KnobSize     KnobKey = "size"
	KnobDisabled KnobKey = "disabled"
	KnobText     KnobKey = "text"
)

// KnobKeys lists every knob in control panel order.
var KnobKeys = []KnobKey{KnobVariant, KnobSize, KnobText, KnobDisabled}

// Variant is the visual style of a button.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantSecondary   Variant = "secondary"
	VariantGhost       Variant = "ghost"
	VariantLink        Variant = "link"
)

// Variants lists the variant domain in picker order.
var Variants = []Variant{
	VariantDefault,
	VariantDestructive,
	VariantOutline,
	VariantSecondary,
	VariantGhost,
	VariantLink,
}

// Size is the density of a button.
type Size string

const (
	SizeDefault Size = "default"
	SizeSmall   Size = "sm"
	SizeLarge   Size = "lg"
)

// Sizes lists the size domain in picker order.
var Sizes = []Size{SizeDefault, SizeSmall, SizeLarge}

// DefaultText is the initial label of the text knob.
const DefaultText = "Button"

// Knobs is the full knob set of a playground view.
type Knobs struct {
	Variant  Variant `json:"variant"`
	Size     Size    `json:"size"`
	Disabled bool    `json:"disabled"`
	Text     string  `json:"text"`
}

// DefaultKnobs returns the knob values a view starts with.
func DefaultKnobs() Knobs {
	return Knobs{
		Variant:  VariantDefault,
		Size:     SizeDefault,
		Disabled: false,
		Text:     DefaultText,
	}
}

// Value returns the string form of a knob, as carried in URLs and forms.
func (k Knobs) Value(key KnobKey) string {
	switch key {
	case KnobVariant:
		return string(k.Variant)
	case KnobSize:
		return string(k.Size)
	case KnobDisabled:
		return strconv.FormatBool(k.Disabled)
	case KnobText:
		return k.Text
	default:
		return ""
	}
}

// With returns a copy of k with exactly one knob overwritten. No domain
// check is made; unknown keys leave k unchanged. A disabled value that is
// not a boolean reads as false.
func (k Knobs) With(key KnobKey, value string) Knobs {
	switch key {
	case KnobVariant:
		k.Variant = Variant(value)
	case KnobSize:
		k.Size = Size(value)
	case KnobDisabled:
		b, _ := strconv.ParseBool(value)
		k.Disabled = b
	case KnobText:
		k.Text = value
	}
	return k
}

func isKnobKey(key KnobKey) bool {
	for _, k := range KnobKeys {
		if k == key {
			return true
		}
	}
	return false
}
