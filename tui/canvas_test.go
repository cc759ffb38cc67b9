// ABOUTME: Tests for the terminal canvas rendering of each example kind.
// ABOUTME: Checks visible text only; colours depend on the terminal profile.
package tui

import (
	"strings"
	"testing"

	"github.com/2389-research/storybook-ui/playground"
)

func TestRenderExample(t *testing.T) {
	disabled := playground.DefaultKnobs().With(playground.KnobDisabled, "true")

	tests := []struct {
		name  string
		ex    playground.Example
		wants []string
	}{
		{"button", playground.Render(playground.ComponentButton, playground.DefaultKnobs()), []string{"Button"}},
		{"disabled button", playground.Render(playground.ComponentButton, disabled), []string{"Button (disabled)"}},
		{"card", playground.Render(playground.ComponentCard, playground.DefaultKnobs().With(playground.KnobText, "")), []string{playground.CardTitleFallback, "Card Description", "Action"}},
		{"form", playground.Render(playground.ComponentForm, playground.DefaultKnobs()), []string{"Form Example", "Name", "Enter your email", "Accept terms and conditions", "Submit"}},
		{"placeholder", playground.Render("navigation", playground.DefaultKnobs()), []string{playground.PlaceholderMessage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderExample(tt.ex)
			for _, want := range tt.wants {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestRenderExampleNil(t *testing.T) {
	if got := RenderExample(nil); got != "" {
		t.Errorf("RenderExample(nil) = %q, want empty", got)
	}
}
