// ABOUTME: Handlers for the playground page, its event endpoint and the JSON preview API.
// ABOUTME: Each event request applies one transition and redirects to the URL of the resulting state.
package web

import (
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/2389-research/storybook-ui/playground"
)

// Form keys naming the event of a POST /storybook/events request. The rest
// of the form is the encoded view state.
const (
	formEvent = "event"
	formKey   = "key"
	formValue = "value"
)

const playgroundPath = "/storybook"

// viewState resolves the view a request belongs to: the encoded state when
// present, otherwise a freshly mounted view. The bool reports a mount.
func (s *Server) viewState(q url.Values) (playground.State, bool) {
	cat := s.catalog.Current()
	if st, ok := playground.Decode(cat, q); ok {
		return st, false
	}
	return playground.Mount(cat, q.Get(playground.QueryPath)), true
}

// handlePlayground renders the playground for the view in the query string.
func (s *Server) handlePlayground(w http.ResponseWriter, r *http.Request) {
	st, mounted := s.viewState(r.URL.Query())
	if mounted {
		s.logger.Debug("playground view mounted",
			zap.String("view", st.ViewID),
			zap.String("path", r.URL.Query().Get(playground.QueryPath)),
			zap.String("component", string(st.Component)),
			zap.String("story", st.Story),
		)
	}

	view, err := newPlaygroundView(r.Context(), st, s.catalog, s.renderer)
	if err != nil {
		s.logger.Error("building playground view", zap.String("view", st.ViewID), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.renderPage(w, r, "playground.html", PageData{
		Title:      st.Heading(),
		Playground: view,
	})
}

// handlePlaygroundEvent applies one event to the posted view state and
// redirects to the new state (POST/redirect/GET).
func (s *Server) handlePlaygroundEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	st, ok := playground.Decode(s.catalog.Current(), r.PostForm)
	if !ok {
		http.Error(w, "missing view state", http.StatusBadRequest)
		return
	}

	ev := playground.Event{
		Type:  playground.EventType(r.PostForm.Get(formEvent)),
		Key:   playground.KnobKey(r.PostForm.Get(formKey)),
		Value: r.PostForm.Get(formValue),
	}
	next, err := st.Apply(ev)
	if err != nil {
		s.logger.Info("playground event rejected",
			zap.String("view", st.ViewID),
			zap.String("event", string(ev.Type)),
			zap.Error(err),
		)
		switch {
		case errors.Is(err, playground.ErrUnknownEvent), errors.Is(err, playground.ErrRejected):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	s.logger.Debug("playground transition",
		zap.String("view", next.ViewID),
		zap.String("event", string(ev.Type)),
		zap.String("component", string(next.Component)),
		zap.String("story", next.Story),
	)
	http.Redirect(w, r, playground.URL(playgroundPath, next), http.StatusSeeOther)
}

// previewResponse is the JSON body of GET /api/playground.
type previewResponse struct {
	State    playground.State   `json:"state"`
	Heading  string             `json:"heading"`
	Kind     string             `json:"kind"`
	Example  playground.Example `json:"example"`
	Controls playground.Panel   `json:"controls"`
	Stories  []storySummary     `json:"stories"`
	Snippet  string             `json:"snippet"`
	URL      string             `json:"url"`
}

type storySummary struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// handlePlaygroundAPI returns the same view the playground page would
// render, as JSON.
func (s *Server) handlePlaygroundAPI(w http.ResponseWriter, r *http.Request) {
	st, _ := s.viewState(r.URL.Query())
	ex := st.Example()

	resp := previewResponse{
		State:    st,
		Heading:  st.Heading(),
		Kind:     NewExampleView(ex).Kind,
		Example:  ex,
		Controls: st.Controls(),
		Snippet:  playground.Snippet(ex),
		URL:      playground.URL(playgroundPath, st),
	}
	for _, story := range st.Stories() {
		resp.Stories = append(resp.Stories, storySummary{
			Name:     story.Name,
			Label:    story.Label,
			Selected: story.Name == st.Story,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
