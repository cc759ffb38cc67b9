// ABOUTME: Landing page content and handler: hero, feature blurb, component showcase and getting-started links.
// ABOUTME: The showcase tab is chosen with the showcase query parameter; code samples go through the renderer.
package web

import (
	"context"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/2389-research/storybook-ui/playground"
)

// Link is an anchor on the landing page. External links open in a new tab.
type Link struct {
	Label    string
	Href     string
	External bool
}

// NavItem is one link of the navigation showcase.
type NavItem struct {
	Label string
}

// Showcase is one tab of the "Component Library" section.
type Showcase struct {
	Name        string
	Label       string
	Title       string
	Description string
	Examples    []playground.Example
	Nav         []NavItem
	Code        string
	StoryLink   string
}

// ShowcaseTab is a Showcase prepared for one request.
type ShowcaseTab struct {
	Showcase
	Active bool
	HTML   template.HTML
}

// LandingView is the data behind home.html.
type LandingView struct {
	DocsLink       Link
	Showcases      []ShowcaseTab
	Active         *ShowcaseTab
	GettingStarted Link
	Development    []Link
	FooterLinks    []Link
}

// External documentation and repository links.
var (
	linkWebsite      = Link{Label: "Official Website", Href: "https://storybook.js.org", External: true}
	linkDocs         = Link{Label: "Documentation", Href: "https://storybook.js.org/docs", External: true}
	linkGitHub       = Link{Label: "GitHub", Href: "https://github.com/storybookjs/storybook", External: true}
	linkInstallGuide = Link{Label: "Installation Guide", Href: "https://storybook.js.org/docs/get-started/install", External: true}
	linkSetupGuide   = Link{Label: "Setup Guide", Href: "https://storybook.js.org/docs/react/get-started/install", External: true}
	linkCLIOptions   = Link{Label: "CLI Options", Href: "https://storybook.js.org/docs/react/api/cli-options", External: true}
)

// storyLink is the playground URL mounting component/story.
func storyLink(component, story string) string {
	return playgroundPath + "?" + playground.QueryPath + "=/" + component + "/" + story
}

func showcaseButtons() []playground.Example {
	var out []playground.Example
	labels := map[playground.Variant]string{
		playground.VariantDefault:     "Default Button",
		playground.VariantSecondary:   "Secondary",
		playground.VariantDestructive: "Destructive",
		playground.VariantOutline:     "Outline",
		playground.VariantGhost:       "Ghost",
		playground.VariantLink:        "Link",
	}
	for _, v := range playground.Variants {
		k := playground.DefaultKnobs()
		k.Variant = v
		k.Text = labels[v]
		out = append(out, playground.Render(playground.ComponentButton, k))
	}
	return out
}

func snippets(examples []playground.Example) string {
	parts := make([]string, 0, len(examples))
	for _, ex := range examples {
		parts = append(parts, playground.Snippet(ex))
	}
	return strings.Join(parts, "\n")
}

// showcases returns the component library tabs in display order.
func showcases() []Showcase {
	buttons := showcaseButtons()
	card := playground.Render(playground.ComponentCard, playground.DefaultKnobs().With(playground.KnobText, "Simple Card"))
	form := playground.Render(playground.ComponentForm, playground.DefaultKnobs())

	return []Showcase{
		{
			Name:        "buttons",
			Label:       "Buttons",
			Title:       "Button Component",
			Description: "Interactive button with multiple variants",
			Examples:    buttons,
			Code:        snippets(buttons),
			StoryLink:   storyLink("button", "primary"),
		},
		{
			Name:        "cards",
			Label:       "Cards",
			Title:       "Card Component",
			Description: "Versatile container for content",
			Examples:    []playground.Example{card},
			Code:        playground.Snippet(card),
			StoryLink:   storyLink("card", "primary"),
		},
		{
			Name:        "forms",
			Label:       "Forms",
			Title:       "Form Components",
			Description: "Input elements for user interaction",
			Examples:    []playground.Example{form},
			Code:        playground.Snippet(form),
			StoryLink:   storyLink("form", "primary"),
		},
		{
			Name:        "navigation",
			Label:       "Navigation",
			Title:       "Navigation Components",
			Description: "Elements for user navigation",
			Nav:         []NavItem{{Label: "Home"}, {Label: "Features"}, {Label: "Pricing"}, {Label: "About"}},
			Code: `<nav className="flex items-center space-x-4">
  <Link href="#">Home</Link>
  <Link href="#">Features</Link>
  <Link href="#">Pricing</Link>
  <Link href="#">About</Link>
</nav>`,
			StoryLink: storyLink("navigation", "primary"),
		},
	}
}

// newLandingView prepares the landing page with the named showcase tab
// active; unknown names fall back to the first tab.
func (s *Server) newLandingView(ctx context.Context, active string) (*LandingView, error) {
	v := &LandingView{
		DocsLink:       linkDocs,
		GettingStarted: linkInstallGuide,
		Development:    []Link{linkSetupGuide, linkCLIOptions},
		FooterLinks:    []Link{linkWebsite, linkDocs, linkGitHub},
	}

	all := showcases()
	idx := 0
	for i, sc := range all {
		if sc.Name == active {
			idx = i
		}
	}
	for i, sc := range all {
		v.Showcases = append(v.Showcases, ShowcaseTab{Showcase: sc, Active: i == idx})
	}

	tab := &v.Showcases[idx]
	html, err := s.renderer.Code(ctx, "jsx", tab.Code)
	if err != nil {
		return nil, err
	}
	tab.HTML = html
	v.Active = tab
	return v, nil
}

// handleHome renders the landing page.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	landing, err := s.newLandingView(r.Context(), r.URL.Query().Get("showcase"))
	if err != nil {
		s.logger.Error("building landing view", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.renderPage(w, r, "home.html", PageData{
		Title:   "Home",
		Landing: landing,
	})
}
