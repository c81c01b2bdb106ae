package migrate

import (
	"sync"

	"github.com/rs/zerolog"

	"struct-migrator/internal/defaults"
	"struct-migrator/internal/shape"
)

// Cache retains derived migrations per (source, target) shape pair. Each
// pair is derived at most once, including failed derivations. The lookup
// is frozen at construction when it is a *defaults.Registry.
type Cache struct {
	reg defaults.Lookup
	log zerolog.Logger

	mu      sync.Mutex
	entries map[cacheKey]*cacheEntry
}

type cacheKey struct {
	source, target string
}

type cacheEntry struct {
	once sync.Once
	m    *Migration
	err  error
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger derivations are reported to.
func WithLogger(l zerolog.Logger) CacheOption {
	return func(c *Cache) {
		c.log = l
	}
}

// NewCache returns an empty cache deriving with reg.
func NewCache(reg defaults.Lookup, opts ...CacheOption) *Cache {
	if s, ok := reg.(snapshotter); ok {
		reg = s.Snapshot()
	}

	c := &Cache{
		reg:     reg,
		log:     zerolog.Nop(),
		entries: make(map[cacheKey]*cacheEntry),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the migration from a to b, deriving it on first use.
func (c *Cache) Get(a, b shape.Shape) (*Migration, error) {
	key := cacheKey{source: a.String(), target: b.String()}

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.m, e.err = Derive(a, b, c.reg)

		ev := c.log.Debug()
		if e.err != nil {
			ev = c.log.Warn().Err(e.err)
		}

		ev.Str("source", a.Name()).
			Str("target", b.Name()).
			Msg("derived migration")
	})

	return e.m, e.err
}

// Len returns the number of cached pairs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
