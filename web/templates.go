// ABOUTME: Embedded html/template pages: layout and partials are parsed once, then cloned for each page.
// ABOUTME: Pages render into a buffer so a template error can still become a 500 response.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"slices"

	"github.com/2389-research/storybook-ui/playground"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages are the templates that define a "content" block for the layout.
var pages = []string{"home.html", "playground.html"}

// PageData is the root value every page is executed with.
type PageData struct {
	Title      string
	SiteName   string
	Year       int
	Landing    *LandingView
	Playground *PlaygroundView
}

// TemplateEngine holds one ready template set per page.
type TemplateEngine struct {
	pages map[string]*template.Template
}

// NewTemplateEngine parses the embedded layout, partials and pages.
func NewTemplateEngine() (*TemplateEngine, error) {
	base, err := template.New("layout.html").Funcs(template.FuncMap{
		"example":     NewExampleView,
		"buttonClass": buttonClass,
	}).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	e := &TemplateEngine{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		e.pages[name] = t
	}
	return e, nil
}

// Render writes page name as an HTML response. Nothing is written when
// execution fails.
func (e *TemplateEngine) Render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := e.RenderTo(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// RenderTo executes page name inside the layout and writes it to w.
func (e *TemplateEngine) RenderTo(w io.Writer, name string, data any) error {
	t, ok := e.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// buttonClass maps a button's variant and size to stylesheet classes.
// Values outside the known domains get the default classes.
func buttonClass(b playground.ButtonExample) string {
	variant, size := playground.VariantDefault, playground.SizeDefault
	if slices.Contains(playground.Variants, b.Variant) {
		variant = b.Variant
	}
	if slices.Contains(playground.Sizes, b.Size) {
		size = b.Size
	}
	return "btn btn-" + string(variant) + " btn-size-" + string(size)
}
