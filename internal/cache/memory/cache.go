// Package memory provides a process-local response cache. Expired entries
// are removed when they are looked up; nothing sweeps them in the background.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/observability"
)

var _ domain.ResponseCache = (*Cache)(nil)

type entry struct {
	result   domain.ChatResult
	storedAt time.Time
}

// Cache is a TTL map guarded by a mutex.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

// Option customizes a Cache.
type Option func(*Cache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty cache whose entries live for ttl.
func New(ttl time.Duration, opts ...Option) (*Cache, error) {
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be positive")
	}

	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get returns a copy of the entry stored under key. An entry whose age
// reached the TTL is deleted and reported as a miss.
func (c *Cache) Get(ctx context.Context, key string) (*domain.ChatResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	if age := c.now().Sub(e.storedAt); age >= c.ttl {
		delete(c.entries, key)
		observability.FromContext(ctx).Debug("evicted expired cache entry",
			observability.String("key", key),
			observability.Duration("age", age))
		return nil, domain.ErrCacheMiss
	}

	result := e.result
	return &result, nil
}

// Set stores result under key, replacing any previous entry and its
// timestamp.
func (c *Cache) Set(_ context.Context, key string, result *domain.ChatResult) error {
	if result == nil {
		return errors.New("result cannot be nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{result: *result, storedAt: c.now()}
	return nil
}

// Len reports stored entries, expired ones included until they are read.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
