// Package redis provides a response cache shared between processes.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/observability"
)

var _ domain.ResponseCache = (*ResponseCache)(nil)

// record is the stored form of a cached result.
type record struct {
	Result   domain.ChatResult `json:"result"`
	StoredAt time.Time         `json:"storedAt"`
}

// ResponseCache stores chat results as JSON strings with a Redis expiry.
type ResponseCache struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
	now       func() time.Time
}

// NewClient parses a redis:// URL and verifies the server answers.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", pingErr)
	}

	return client, nil
}

// NewResponseCache wraps client. Keys are namespaced with keyPrefix.
func NewResponseCache(client redis.UniversalClient, keyPrefix string, ttl time.Duration) (*ResponseCache, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if ttl <= 0 {
		return nil, errors.New("cache ttl must be positive")
	}

	return &ResponseCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

// Get returns domain.ErrCacheMiss for absent or expired keys. The stored
// timestamp is checked too so clock skew with Redis cannot extend the TTL.
func (c *ResponseCache) Get(ctx context.Context, key string) (*domain.ChatResult, error) {
	logger := observability.FromContext(ctx)

	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var rec record
	if unmarshalErr := json.Unmarshal(data, &rec); unmarshalErr != nil {
		logger.Warn("dropping unreadable cache entry",
			observability.String("key", key),
			observability.Error(unmarshalErr))
		_ = c.client.Del(ctx, c.keyPrefix+key).Err()
		return nil, domain.ErrCacheMiss
	}

	if c.now().Sub(rec.StoredAt) >= c.ttl {
		_ = c.client.Del(ctx, c.keyPrefix+key).Err()
		return nil, domain.ErrCacheMiss
	}

	return &rec.Result, nil
}

// Set writes result with the configured expiry.
func (c *ResponseCache) Set(ctx context.Context, key string, result *domain.ChatResult) error {
	if result == nil {
		return errors.New("result cannot be nil")
	}

	data, err := json.Marshal(record{Result: *result, StoredAt: c.now()})
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if setErr := c.client.Set(ctx, c.keyPrefix+key, data, c.ttl).Err(); setErr != nil {
		return fmt.Errorf("failed to write cache entry: %w", setErr)
	}

	return nil
}
