// ABOUTME: Source holds the live catalog and swaps it atomically when the backing file changes.
// ABOUTME: Watcher debounces fsnotify events on the file's directory so editor rename-saves are also picked up.
package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// EmbeddedOrigin is the origin reported for the catalog compiled into the binary.
const EmbeddedOrigin = "embedded"

// Source is a concurrency-safe holder for the current catalog.
type Source struct {
	mu      sync.RWMutex
	current *Catalog
	origin  string
}

// NewSource returns a Source serving c. origin describes where c came from
// (EmbeddedOrigin or a file path) and is shown on the playground settings tab.
func NewSource(c *Catalog, origin string) *Source {
	return &Source{current: c, origin: origin}
}

// Current returns the catalog in effect.
func (s *Source) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Origin returns where the current catalog was loaded from.
func (s *Source) Origin() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.origin
}

// Reload parses path and swaps it in. The current catalog is kept when the
// file cannot be read or is invalid.
func (s *Source) Reload(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = c
	s.origin = path
	s.mu.Unlock()
	return nil
}

// Watcher reloads a Source whenever its catalog file is written.
type Watcher struct {
	source  *Source
	path    string
	logger  *zap.Logger
	watcher *fsnotify.Watcher

	// settle is how long the file must stay quiet before a reload. Editors
	// often save in several writes.
	settle   time.Duration
	pending  time.Time
	onReload func(*Catalog)

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

const (
	defaultSettle = 500 * time.Millisecond
	debounceTick  = 100 * time.Millisecond
)

// NewWatcher creates a Watcher for path. Call Start to begin watching.
func NewWatcher(source *Source, path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving catalog path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &Watcher{
		source:  source,
		path:    abs,
		logger:  logger,
		watcher: fw,
		settle:  defaultSettle,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// OnReload registers fn to run on the watcher goroutine after each
// successful reload. Register before Start.
func (w *Watcher) OnReload(fn func(*Catalog)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Start watches the catalog file's directory and returns immediately. The
// event loop ends when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	w.running = true
	go w.run(ctx)
	w.logger.Info("watching catalog", zap.String("path", w.path))
	return nil
}

// Stop ends the event loop, waits for it to exit and releases the watcher.
// Stop on a watcher that was never started only releases the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(debounceTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))
		case now := <-ticker.C:
			if !w.pending.IsZero() && now.Sub(w.pending) >= w.settle {
				w.pending = time.Time{}
				w.reload()
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	w.pending = time.Now()
}

func (w *Watcher) reload() {
	if err := w.source.Reload(w.path); err != nil {
		w.logger.Warn("catalog reload failed, keeping previous catalog",
			zap.String("path", w.path), zap.Error(err))
		return
	}
	w.logger.Info("catalog reloaded", zap.String("path", w.path))

	w.mu.Lock()
	fn := w.onReload
	w.mu.Unlock()
	if fn != nil {
		fn(w.source.Current())
	}
}
