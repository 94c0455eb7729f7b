package loop

import (
	"context"
	"time"
)

// Pacer blocks between ticks.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Ticker paces at a fixed interval. Missed ticks are dropped rather than
// queued, so a slow frame does not cause a burst of catch-up steps.
type Ticker struct {
	t *time.Ticker
}

func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{t: time.NewTicker(interval)}
}

func (p *Ticker) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.t.C:
		return nil
	}
}

func (p *Ticker) Stop() { p.t.Stop() }

// Immediate never waits. Headless runs and tests use it.
type Immediate struct{}

func (Immediate) Wait(ctx context.Context) error { return ctx.Err() }
