// Package dispatch gates every outbound provider call behind one FIFO queue.
// A single worker goroutine runs one task at a time, spaces attempts to stay
// under the provider's request-per-minute cap, and retries throttled attempts
// with exponential backoff (or the provider's Retry-After hint). Any other
// failure is returned to the caller immediately.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/observability"
)

const (
	defaultQueueSize   = 256
	defaultBackoffBase = time.Second
	maxBackoff         = 5 * time.Minute
	backoffMultiplier  = 2
)

// ErrClosed is returned for tasks submitted to, or still queued in, a closed
// dispatcher.
var ErrClosed = errors.New("dispatcher closed")

var _ domain.Dispatcher = (*Dispatcher)(nil)

type task struct {
	ctx      context.Context
	op       domain.Operation
	done     chan error
	enqueued time.Time
}

// Dispatcher implements domain.Dispatcher.
type Dispatcher struct {
	cfg      Config
	interval time.Duration
	queue    chan *task

	closeMu   sync.RWMutex
	closed    bool
	closing   chan struct{}
	stop      chan struct{}
	finished  chan struct{}
	closeOnce sync.Once

	mu          sync.Mutex
	lastRequest time.Time
}

// New creates a dispatcher and starts its worker.
func New(cfg Config) (*Dispatcher, error) {
	if cfg.RequestsPerMinute <= 0 {
		return nil, errors.New("requests per minute must be positive")
	}

	if cfg.MaxRetries < 0 {
		return nil, errors.New("max retries cannot be negative")
	}

	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaultBackoffBase
	}

	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}

	d := &Dispatcher{
		cfg:      cfg,
		interval: cfg.MinInterval(),
		queue:    make(chan *task, cfg.QueueSize),
		closing:  make(chan struct{}),
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}

	go d.run()

	return d, nil
}

// Schedule queues op and blocks until it has run. A caller whose context
// ends while waiting gets ctx.Err(); the task is skipped if it has not
// started yet and runs to completion otherwise.
func (d *Dispatcher) Schedule(ctx context.Context, op domain.Operation) error {
	done, err := d.Enqueue(ctx, op)
	if err != nil {
		return err
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Enqueue queues op and returns a channel that receives its result. Tasks
// are dispatched in the order Enqueue returned.
func (d *Dispatcher) Enqueue(ctx context.Context, op domain.Operation) (<-chan error, error) {
	if op == nil {
		return nil, errors.New("operation cannot be nil")
	}

	t := &task{
		ctx:      ctx,
		op:       op,
		done:     make(chan error, 1),
		enqueued: time.Now(),
	}

	d.closeMu.RLock()
	defer d.closeMu.RUnlock()

	if d.closed {
		return nil, ErrClosed
	}

	select {
	case d.queue <- t:
		observability.DispatcherQueueDepth.Inc()
		return t.done, nil
	case <-d.closing:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// QueueDepth returns the number of tasks waiting to run.
func (d *Dispatcher) QueueDepth() int {
	return len(d.queue)
}

// Close stops the worker after the in-flight task finishes. Queued tasks
// fail with ErrClosed.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.closing)

		d.closeMu.Lock()
		d.closed = true
		d.closeMu.Unlock()

		close(d.stop)
		<-d.finished
	})
}

func (d *Dispatcher) run() {
	defer close(d.finished)

	for {
		select {
		case <-d.stop:
			d.drain()
			return
		default:
		}

		select {
		case <-d.stop:
			d.drain()
			return
		case t := <-d.queue:
			observability.DispatcherQueueDepth.Dec()
			d.execute(t)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case t := <-d.queue:
			observability.DispatcherQueueDepth.Dec()
			t.done <- ErrClosed
		default:
			return
		}
	}
}

func (d *Dispatcher) execute(t *task) {
	if err := t.ctx.Err(); err != nil {
		t.done <- err
		return
	}

	observability.DispatcherWaitSeconds.Observe(time.Since(t.enqueued).Seconds())

	// Once started, a task is not cancelable.
	t.done <- d.invoke(context.WithoutCancel(t.ctx), t.op)
}

// invoke runs op, retrying throttled attempts only.
func (d *Dispatcher) invoke(ctx context.Context, op domain.Operation) error {
	logger := observability.FromContext(ctx)
	schedule := d.newBackOff()

	for attempt := 1; ; attempt++ {
		d.pace()

		err := op(ctx)
		if err == nil {
			observability.ProviderAttempts.WithLabelValues("success").Inc()
			return nil
		}

		if !errors.Is(err, domain.ErrProviderThrottled) {
			observability.ProviderAttempts.WithLabelValues("error").Inc()
			return err
		}

		observability.ProviderAttempts.WithLabelValues("throttled").Inc()

		wait := schedule.NextBackOff()
		if wait == backoff.Stop {
			logger.Warn("provider still throttled, giving up",
				observability.Int("attempts", attempt))
			return fmt.Errorf("%w after %d attempts: %w", domain.ErrRetriesExhausted, attempt, err)
		}

		var throttled *domain.ThrottledError
		if errors.As(err, &throttled) && throttled.RetryAfter > 0 {
			wait = throttled.RetryAfter
		}

		logger.Info("provider throttled, backing off",
			observability.Int("attempt", attempt),
			observability.Duration("wait", wait))

		time.Sleep(wait)
	}
}

// pace blocks until the minimum interval since the previous attempt has
// passed, then records the new attempt time.
func (d *Dispatcher) pace() {
	d.mu.Lock()
	last := d.lastRequest
	d.mu.Unlock()

	if !last.IsZero() {
		if wait := d.interval - time.Since(last); wait > 0 {
			time.Sleep(wait)
		}
	}

	d.mu.Lock()
	d.lastRequest = time.Now()
	d.mu.Unlock()
}

// newBackOff returns the retry delay schedule: base, 2*base, 4*base, ...
// then backoff.Stop once MaxRetries delays were handed out.
func (d *Dispatcher) newBackOff() backoff.BackOff {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = d.cfg.BackoffBase
	expo.Multiplier = backoffMultiplier
	expo.RandomizationFactor = 0
	expo.MaxInterval = maxBackoff
	expo.MaxElapsedTime = 0
	expo.Reset()

	//nolint:gosec // MaxRetries is validated non-negative in New
	return backoff.WithMaxRetries(expo, uint64(d.cfg.MaxRetries))
}
