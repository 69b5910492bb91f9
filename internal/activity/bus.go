package activity

import (
	"context"
	"errors"
	"sync"
)

var ErrBusClosed = errors.New("activity bus is closed")

// Bus is a buffered in-process channel of change records.
type Bus struct {
	mu     sync.RWMutex
	closed bool
	ch     chan Record
}

func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}

	return &Bus{
		ch: make(chan Record, buffer),
	}
}

func (b *Bus) Publish(ctx context.Context, rec Record) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}

	select {
	case b.ch <- rec:
		b.mu.RUnlock()
		return nil
	case <-ctx.Done():
		b.mu.RUnlock()
		return ctx.Err()
	}
}

func (b *Bus) Subscribe() <-chan Record {
	return b.ch
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.ch)
}
