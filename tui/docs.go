// ABOUTME: Renders catalog markdown docs for the Docs tab with glamour.
// ABOUTME: The renderer is rebuilt on resize so paragraphs wrap to the main area.
package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const minDocsWidth = 20

// newDocsRenderer returns a glamour renderer wrapping at width. Auto style
// falls back to plain ASCII when stdout is not a terminal.
func newDocsRenderer(width int) *glamour.TermRenderer {
	if width < minDocsWidth {
		width = minDocsWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}

// renderDocs renders md, returning it unchanged if r is nil or fails.
func renderDocs(r *glamour.TermRenderer, md string) string {
	if r == nil {
		return strings.TrimRight(md, "\n")
	}
	out, err := r.Render(md)
	if err != nil {
		return strings.TrimRight(md, "\n")
	}
	return strings.TrimRight(out, "\n")
}
