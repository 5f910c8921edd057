package dispatch

import "time"

// Config contains dispatcher pacing and retry settings.
//   - RequestsPerMinute: keep it below the provider's hard cap
//   - Window: the period RequestsPerMinute applies to (a minute outside tests)
//   - MaxRetries: retries after the first attempt; a task makes at most
//     MaxRetries+1 calls
//   - BackoffBase: first backoff delay, doubled on every retry
//   - QueueSize: tasks that may wait before Enqueue blocks
type Config struct {
	RequestsPerMinute int           `env:"DISPATCHER_REQUESTS_PER_MINUTE" envDefault:"5"`
	Window            time.Duration `env:"DISPATCHER_WINDOW"              envDefault:"1m"`
	MaxRetries        int           `env:"DISPATCHER_MAX_RETRIES"         envDefault:"3"` // retries after the first attempt
	BackoffBase       time.Duration `env:"DISPATCHER_BACKOFF_BASE"        envDefault:"1s"`
	QueueSize         int           `env:"DISPATCHER_QUEUE_SIZE"          envDefault:"256"`
}

// MinInterval is the spacing enforced between two provider attempts.
func (c Config) MinInterval() time.Duration {
	window := c.Window
	if window <= 0 {
		window = time.Minute
	}
	return window / time.Duration(c.RequestsPerMinute)
}
