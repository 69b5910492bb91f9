package activity

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Handler receives change records drained from the bus.
type Handler interface {
	Handle(ctx context.Context, rec Record) error
}

// Runner supervises worker goroutines. *pkgroutine.Manager satisfies it.
type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
	Runner      Runner
}

// LogConsumer drains the bus with a pool of workers and hands each record to
// the handler, deduping on record ID and retrying with exponential backoff.
type LogConsumer struct {
	bus         *Bus
	handler     Handler
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	runner      Runner
	seen        sync.Map
	wg          sync.WaitGroup
}

func NewLogConsumer(bus *Bus, handler Handler, cfg ConsumerConfig) *LogConsumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 2
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	return &LogConsumer{
		bus:         bus,
		handler:     handler,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
		runner:      cfg.Runner,
	}
}

// Start launches the worker pool. Workers run through the runner when one is
// configured so the application-level wait covers them; they exit when the
// bus is closed, not when ctx is canceled, so queued records still drain.
func (c *LogConsumer) Start(ctx context.Context) {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		if c.runner != nil {
			c.runner.Go(ctx, func(context.Context) error {
				c.worker()
				return nil
			})
			continue
		}
		go c.worker()
	}
}

// Stop closes the bus and waits for the workers to drain it, bounded by ctx.
func (c *LogConsumer) Stop(ctx context.Context) error {
	if c.bus != nil {
		c.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *LogConsumer) worker() {
	defer c.wg.Done()

	for rec := range c.bus.Subscribe() {
		c.processRecord(rec)
	}
}

func (c *LogConsumer) processRecord(rec Record) {
	if c.handler == nil {
		return
	}

	if rec.ID != "" {
		if _, loaded := c.seen.LoadOrStore(rec.ID, struct{}{}); loaded {
			slog.Info("skip duplicate activity record", "record_id", rec.ID, "kind", rec.Kind)
			return
		}
	}

	backoff := c.baseBackoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		err := c.handler.Handle(context.Background(), rec)
		if err == nil {
			return
		}

		if attempt == c.maxRetries {
			slog.Error("failed to record activity after retries", "record_id", rec.ID, "kind", rec.Kind, "error", err)
			return
		}

		if !sleepBackoff(backoff) {
			return
		}
		backoff *= 2
	}
}

func sleepBackoff(d time.Duration) bool {
	if d <= 0 {
		return false
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	<-timer.C
	return true
}
