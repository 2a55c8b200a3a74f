package backoff

import (
	"context"
	"time"
)

// Backoff sleeps for a doubling duration on every Wait, capped at limit
type Backoff struct {
	next  time.Duration
	start time.Duration
	limit time.Duration
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.next = b.start
}

// Next is the duration of the upcoming Wait
func (b *Backoff) Next() time.Duration {
	return b.next
}

// Wait sleeps for Next() unless ctx is done first
func (b *Backoff) Wait(ctx context.Context) error {
	timer := time.NewTimer(b.next)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	b.next *= 2
	if b.limit > 0 && b.next > b.limit {
		b.next = b.limit
	}
	return nil
}
