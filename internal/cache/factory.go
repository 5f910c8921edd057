package cache

import (
	"context"
	"fmt"

	"github.com/davidbz/saucier/internal/cache/memory"
	"github.com/davidbz/saucier/internal/cache/redis"
	"github.com/davidbz/saucier/internal/domain"
)

// Result holds the configured cache and what must be released on shutdown.
// Cache is nil when caching is disabled.
type Result struct {
	Cache domain.ResponseCache
	close func() error
}

// Close releases the backend connection, if any. Safe to call on a
// disabled or memory cache.
func (r *Result) Close() error {
	if r == nil || r.close == nil {
		return nil
	}
	return r.close()
}

// New builds the response cache selected by cfg.
func New(ctx context.Context, cfg *Config) (*Result, error) {
	if !cfg.Enabled {
		return &Result{}, nil
	}

	switch cfg.Backend {
	case BackendMemory, "":
		c, err := memory.New(cfg.TTL)
		if err != nil {
			return nil, fmt.Errorf("failed to create memory cache: %w", err)
		}
		return &Result{Cache: c}, nil

	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("%s backend requires REDIS_URL", BackendRedis)
		}

		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}

		c, err := redis.NewResponseCache(client, cfg.KeyPrefix, cfg.TTL)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create redis cache: %w", err)
		}
		return &Result{Cache: c, close: client.Close}, nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
