// ABOUTME: Renders component docs (markdown) and code snippets to HTML with goldmark and chroma highlighting.
// ABOUTME: All output goes through a fragment Cache so repeated page views reuse the converted HTML.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// DefaultTTL is used when New is given a non-positive TTL.
const DefaultTTL = 10 * time.Minute

// Renderer converts markdown and code to HTML. Raw HTML inside markdown is
// not passed through, so catalog files cannot inject markup.
type Renderer struct {
	md    goldmark.Markdown
	cache *Cache
}

// New creates a Renderer whose results are cached for ttl.
func New(ttl time.Duration) *Renderer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
	r.cache = newCache(r.convert, ttl)
	return r
}

// Markdown renders a markdown document.
func (r *Renderer) Markdown(ctx context.Context, src string) (template.HTML, error) {
	return r.cache.get(ctx, FormatMarkdown, src)
}

// Code renders src as a highlighted code block in the given language.
func (r *Renderer) Code(ctx context.Context, lang, src string) (template.HTML, error) {
	return r.cache.get(ctx, FormatCode, fencedBlock(lang, src))
}

// Cache exposes the fragment cache for pruning, clearing and stats.
func (r *Renderer) Cache() *Cache {
	return r.cache
}

func (r *Renderer) convert(ctx context.Context, format Format, src string) (template.HTML, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering %s: %w", format, err)
	}
	return template.HTML(buf.String()), nil
}

// fencedBlock wraps src in a code fence longer than any backtick run inside it.
func fencedBlock(lang, src string) string {
	fence := "```"
	for strings.Contains(src, fence) {
		fence += "`"
	}
	return fence + lang + "\n" + strings.TrimRight(src, "\n") + "\n" + fence + "\n"
}
