// ABOUTME: Renders a playground.Example as terminal art with lipgloss: buttons, cards, forms and the placeholder.
// ABOUTME: Knob changes show up here the same way they change the HTML canvas.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/storybook-ui/playground"
)

// RenderExample draws ex for the canvas.
func RenderExample(ex playground.Example) string {
	switch e := ex.(type) {
	case playground.ButtonExample:
		return renderButton(e)
	case playground.CardExample:
		return renderCard(e)
	case playground.FormExample:
		return renderForm(e)
	case playground.Placeholder:
		return MutedStyle.Render(e.Message)
	default:
		return ""
	}
}

func renderButton(b playground.ButtonExample) string {
	style := StyleForVariant(b.Variant).Padding(0, PaddingForSize(b.Size))
	if b.Disabled {
		style = style.Faint(true)
	}
	label := b.Label
	if b.Disabled {
		label += " (disabled)"
	}
	return style.Render(label)
}

func renderCard(c playground.CardExample) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(c.Title),
		MutedStyle.Render(c.Description),
		"",
		c.Body,
		"",
		renderButton(c.Action),
	)
	return CardStyle.Render(body)
}

func renderForm(f playground.FormExample) string {
	rows := []string{
		TitleStyle.Render(f.Title),
		MutedStyle.Render(f.Description),
		"",
	}
	for _, field := range f.Fields {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			LabelStyle.Render(field.Label),
			InputStyle.Render(field.Placeholder),
		))
	}
	rows = append(rows, "[ ] "+f.TermsLabel, "", renderButton(f.Submit))
	return CardStyle.Render(strings.Join(rows, "\n"))
}
