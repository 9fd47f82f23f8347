package bluenoise

import (
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"dithermap/pkg/core"

	"golang.org/x/sync/singleflight"
)

// GenerateFunc builds a threshold map. Generate is the default.
type GenerateFunc func(size int, seed int64) (*core.RankGrid, error)

// Result is delivered by Cache.Async once generation finishes.
type Result struct {
	Size int
	Seed int64
	Grid *core.RankGrid
	Err  error
}

type cacheKey struct {
	size int
	seed int64
}

func (k cacheKey) String() string {
	return strconv.Itoa(k.size) + "/" + strconv.FormatInt(k.seed, 10)
}

// Cache keeps generated maps for the lifetime of a session. Each distinct
// (size, seed) pair is generated at most once, including when several
// goroutines ask for it at the same time. Failed generations are not cached.
//
// Returned grids are shared between callers and must not be modified.
type Cache struct {
	gen    GenerateFunc
	logger *slog.Logger

	mu    sync.RWMutex
	grids map[cacheKey]*core.RankGrid

	group       singleflight.Group
	generations atomic.Int64
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithGenerator replaces the generation function.
func WithGenerator(fn GenerateFunc) CacheOption {
	return func(c *Cache) {
		if fn != nil {
			c.gen = fn
		}
	}
}

// WithLogger sets the logger used for generation events. The package logger
// is used otherwise.
func WithLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCache returns an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{gen: Generate, grids: make(map[cacheKey]*core.RankGrid)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the map for (size, seed), generating it on first use.
func (c *Cache) Get(size int, seed int64) (*core.RankGrid, error) {
	key := cacheKey{size: size, seed: seed}
	if g, ok := c.lookup(key); ok {
		return g, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// A previous flight may have finished between lookup and Do.
		if g, ok := c.lookup(key); ok {
			return g, nil
		}
		start := time.Now()
		c.generations.Add(1)
		g, err := c.gen(size, seed)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.grids[key] = g
		c.mu.Unlock()
		c.log().Debug("generated threshold map",
			"size", size, "seed", seed, "elapsed", time.Since(start))
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*core.RankGrid), nil
}

// Async generates (or fetches) the map on a new goroutine and delivers exactly
// one Result on the returned channel.
func (c *Cache) Async(size int, seed int64) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		g, err := c.Get(size, seed)
		ch <- Result{Size: size, Seed: seed, Grid: g, Err: err}
	}()
	return ch
}

// Len reports the number of cached maps.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.grids)
}

// Generations reports how many times the generation function has run.
func (c *Cache) Generations() int64 {
	return c.generations.Load()
}

func (c *Cache) lookup(key cacheKey) (*core.RankGrid, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.grids[key]
	return g, ok
}

func (c *Cache) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}
