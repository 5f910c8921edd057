// Package cache holds settings shared by the response cache backends.
package cache

import "time"

// Backends accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config contains response cache settings.
//   - Enabled: turn memoization off without touching the rest of the flow
//   - Backend: "memory" (process-local) or "redis" (shared)
//   - TTL: how long an entry is served after it was stored
//   - PromptPrefix: runes of the conversation kept in readable form in keys
type Config struct {
	Enabled      bool          `env:"CACHE_ENABLED"       envDefault:"true"`
	Backend      string        `env:"CACHE_BACKEND"       envDefault:"memory"`
	TTL          time.Duration `env:"CACHE_TTL"           envDefault:"30m"`
	PromptPrefix int           `env:"CACHE_PROMPT_PREFIX" envDefault:"100"`
	RedisURL     string        `env:"REDIS_URL"`
	KeyPrefix    string        `env:"CACHE_KEY_PREFIX"    envDefault:"saucier:cache:"`
}
