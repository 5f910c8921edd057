package domain

import (
	"errors"
	"fmt"
	"time"
)

// Provider failure taxonomy. Only ErrProviderThrottled is retried.
var (
	ErrProviderThrottled         = errors.New("provider throttled")
	ErrProviderResponseMalformed = errors.New("provider response malformed")
	ErrProviderUnreachable       = errors.New("provider unreachable")
	ErrProviderFailed            = errors.New("provider request failed")
	ErrRetriesExhausted          = errors.New("retries exhausted")
)

// ErrCacheMiss indicates no cached entry was found.
var ErrCacheMiss = errors.New("cache miss")

// Persistence errors.
var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrStoreNotConfigured = errors.New("recipe store not configured")
)

// ThrottledError is returned for HTTP 429 answers. RetryAfter is zero when
// the provider did not send a usable Retry-After header.
type ThrottledError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ThrottledError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %s): %v", ErrProviderThrottled, e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrProviderThrottled, e.Err)
}

// Is makes errors.Is(err, ErrProviderThrottled) match.
func (e *ThrottledError) Is(target error) bool {
	return target == ErrProviderThrottled
}

func (e *ThrottledError) Unwrap() error {
	return e.Err
}
