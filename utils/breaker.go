package utils

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrBreakerOpen = errors.New("breaker is open")

// Breaker shields best-effort outbound calls (notification publishes) from a
// flapping backend: after enough consecutive failures the call is skipped
// outright until the cool-down elapses, then a single probe is let through.
type Breaker struct {
	name        string
	maxFailures int
	coolDown    time.Duration

	mu       sync.Mutex
	failures int
	openedAt time.Time
	probing  bool
}

func NewBreaker(name string) *Breaker {
	return &Breaker{
		name:        name,
		maxFailures: 5,
		coolDown:    30 * time.Second,
	}
}

// Execute runs fn unless the breaker is open. A success while probing closes
// the breaker again.
func (b *Breaker) Execute(ctx context.Context, fn func() error) error {
	if err := b.allow(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := fn()
	b.record(err == nil)
	return err
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failures < b.maxFailures {
		return nil
	}
	if time.Since(b.openedAt) < b.coolDown {
		return ErrBreakerOpen
	}
	if b.probing {
		return ErrBreakerOpen
	}
	b.probing = true
	return nil
}

func (b *Breaker) record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.probing = false
	if success {
		b.failures = 0
		return
	}

	b.failures++
	if b.failures >= b.maxFailures {
		b.openedAt = time.Now()
	}
}
