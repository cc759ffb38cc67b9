// ABOUTME: Fragment cache for rendered HTML, keyed by output format and a sha256 digest of the source.
// ABOUTME: Fragments expire after a TTL; PruneEvery runs the expiry sweep for a long-lived server.
package render

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"html/template"
	"sync"
	"sync/atomic"
	"time"
)

// Format names the kind of source a fragment was rendered from.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatCode     Format = "code"
)

type convertFunc func(ctx context.Context, format Format, src string) (template.HTML, error)

type fragment struct {
	html    template.HTML
	expires time.Time
}

// Cache memoizes rendered fragments. Failed conversions are not stored.
type Cache struct {
	convert convertFunc
	ttl     time.Duration
	now     func() time.Time

	mu        sync.RWMutex
	fragments map[string]fragment

	hits   atomic.Uint64
	misses atomic.Uint64
}

func newCache(convert convertFunc, ttl time.Duration) *Cache {
	return &Cache{
		convert:   convert,
		ttl:       ttl,
		now:       time.Now,
		fragments: make(map[string]fragment),
	}
}

// get returns the fragment for src, converting and storing it on a miss.
func (c *Cache) get(ctx context.Context, format Format, src string) (template.HTML, error) {
	key := digest(format, src)

	c.mu.RLock()
	f, ok := c.fragments[key]
	c.mu.RUnlock()
	if ok && c.now().Before(f.expires) {
		c.hits.Add(1)
		return f.html, nil
	}

	c.misses.Add(1)
	html, err := c.convert(ctx, format, src)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.fragments[key] = fragment{html: html, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return html, nil
}

// Len returns the number of stored fragments, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fragments)
}

// Stats returns the hit and miss counts since the cache was created.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Prune drops expired fragments and returns how many were removed.
func (c *Cache) Prune() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, f := range c.fragments {
		if !now.Before(f.expires) {
			delete(c.fragments, key)
			removed++
		}
	}
	return removed
}

// Clear drops every fragment. serve calls it after each catalog reload.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.fragments)
}

// PruneEvery calls Prune every interval until ctx is done. onPrune, if
// non-nil, receives the count of each sweep that removed something.
func (c *Cache) PruneEvery(ctx context.Context, interval time.Duration, onPrune func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Prune(); n > 0 && onPrune != nil {
				onPrune(n)
			}
		}
	}
}

func digest(format Format, src string) string {
	sum := sha256.Sum256([]byte(src))
	return string(format) + ":" + hex.EncodeToString(sum[:])
}
