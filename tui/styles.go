// ABOUTME: Defines lipgloss style constants for the terminal playground panels, list selection and canvas.
// ABOUTME: Provides StyleForVariant and PaddingForSize to map button knobs to their display styles.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/storybook-ui/playground"
)

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
	FocusedBorderStyle = BorderStyle.
				BorderForeground(lipgloss.Color("170"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Lists
	CursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// Tabs
	ActiveTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("252"))
	InactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// Label/value rows (controls, settings, form fields)
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Canvas
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Foreground(lipgloss.Color("241")).
			Width(24)
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("150")).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("238"))

	buttonBase = lipgloss.NewStyle().Bold(true)
)

// StyleForVariant returns the lipgloss style rendering a button of the given variant.
func StyleForVariant(v playground.Variant) lipgloss.Style {
	switch v {
	case playground.VariantDestructive:
		return buttonBase.Background(lipgloss.Color("160")).Foreground(lipgloss.Color("231"))
	case playground.VariantOutline:
		return buttonBase.Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("245"))
	case playground.VariantSecondary:
		return buttonBase.Background(lipgloss.Color("238")).Foreground(lipgloss.Color("252"))
	case playground.VariantGhost:
		return buttonBase.Foreground(lipgloss.Color("252"))
	case playground.VariantLink:
		return lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("75"))
	default:
		return buttonBase.Background(lipgloss.Color("252")).Foreground(lipgloss.Color("235"))
	}
}

// PaddingForSize returns the horizontal padding of a button of the given size.
func PaddingForSize(s playground.Size) int {
	switch s {
	case playground.SizeSmall:
		return 1
	case playground.SizeLarge:
		return 4
	default:
		return 2
	}
}
