// ABOUTME: Storybook UI HTTP server: landing page, playground, event endpoint and JSON preview API
// ABOUTME: behind a single chi router, with graceful shutdown driven by a context.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/2389-research/storybook-ui/catalog"
	"github.com/2389-research/storybook-ui/render"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:6006"

// Server is the Storybook UI HTTP server. It holds no per-view state: every
// playground view travels in its own URL.
type Server struct {
	cfg       ServerConfig
	templates *TemplateEngine
	router    chi.Router
	catalog   *catalog.Source
	renderer  *render.Renderer
	logger    *zap.Logger
}

// ServerConfig holds the configuration for the web server.
type ServerConfig struct {
	Addr              string        // listen address (default: "127.0.0.1:6006")
	SiteName          string        // brand shown in the header and footer
	AllowedOrigins    []string      // CORS origins for /api routes
	ReadHeaderTimeout time.Duration // default 10s
	ShutdownTimeout   time.Duration // default 10s

	Catalog  *catalog.Source  // nil means the embedded catalog
	Renderer *render.Renderer // nil means render.New(render.DefaultTTL)
	Logger   *zap.Logger      // nil means a no-op logger
}

// NewServer creates a Server with the given configuration, filling in
// defaults and parsing the embedded templates.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.SiteName == "" {
		cfg.SiteName = "Storybook UI"
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = 10 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.NewSource(catalog.Default(), catalog.EmbeddedOrigin)
	}
	if cfg.Renderer == nil {
		cfg.Renderer = render.New(render.DefaultTTL)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	tmpl, err := NewTemplateEngine()
	if err != nil {
		return nil, fmt.Errorf("initializing templates: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		templates: tmpl,
		catalog:   cfg.Catalog,
		renderer:  cfg.Renderer,
		logger:    cfg.Logger,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// ListenAndServe serves HTTP on the configured address until ctx is
// cancelled, then shuts down gracefully within ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("storybook server listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down storybook server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)

	r.Route("/storybook", func(r chi.Router) {
		r.Get("/", s.handlePlayground)
		r.Post("/events", s.handlePlaygroundEvent)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}))
		r.Get("/playground", s.handlePlaygroundAPI)
	})

	staticFS, err := fs.Sub(StaticFS, "static")
	if err != nil {
		s.logger.Warn("failed to create static sub-FS", zap.Error(err))
	} else {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	return r
}

// handleHealth returns a JSON health check response including where the
// current catalog came from.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"catalog": s.catalog.Origin(),
	})
}

// renderPage writes a layout-wrapped page, logging and answering 500 when
// the template fails.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data PageData) {
	data.SiteName = s.cfg.SiteName
	data.Year = time.Now().Year()
	if err := s.templates.Render(w, name, data); err != nil {
		s.logger.Error("rendering page",
			zap.String("template", name),
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
