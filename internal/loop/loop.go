// Package loop drives a world at a fixed tick interval against a frontend.
package loop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/bouncebox/internal/world"
)

// Frontend is the presentation layer: it supplies input events and shows
// the world after every tick.
type Frontend interface {
	// Events returns all input received since the previous call without
	// blocking.
	Events() []world.Event
	Present(w *world.World) error
}

// Observer is notified after every physics step, before presentation.
type Observer interface {
	OnTick(w *world.World)
}

type ObserverFunc func(w *world.World)

func (f ObserverFunc) OnTick(w *world.World) { f(w) }

// StopReason tells why Run returned.
type StopReason int

const (
	StopExit StopReason = iota
	StopMaxTicks
	StopCanceled
	StopFailed
)

func (r StopReason) String() string {
	switch r {
	case StopExit:
		return "exit"
	case StopMaxTicks:
		return "max-ticks"
	case StopCanceled:
		return "canceled"
	default:
		return "failed"
	}
}

// Runner owns the world for the duration of Run.
type Runner struct {
	world     *world.World
	frontend  Frontend
	pacer     Pacer
	observers []Observer
	maxTicks  int
	logger    *slog.Logger
}

type Option func(*Runner)

// WithMaxTicks stops the loop after n ticks. Zero means unbounded.
func WithMaxTicks(n int) Option { return func(r *Runner) { r.maxTicks = n } }

func WithPacer(p Pacer) Option { return func(r *Runner) { r.pacer = p } }

func WithLogger(l *slog.Logger) Option { return func(r *Runner) { r.logger = l } }

func WithObserver(o Observer) Option {
	return func(r *Runner) { r.observers = append(r.observers, o) }
}

func New(w *world.World, fe Frontend, opts ...Option) *Runner {
	r := &Runner{
		world:    w,
		frontend: fe,
		pacer:    Immediate{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run ticks until the exit key is pressed, the tick limit is reached, the
// context is canceled or the frontend fails to present. The iteration in
// which exit is pressed still runs to completion.
func (r *Runner) Run(ctx context.Context) (StopReason, error) {
	r.logger.Info("loop started",
		"viewport", fmt.Sprintf("%dx%d", r.world.Viewport.Width, r.world.Viewport.Height),
		"max_ticks", r.maxTicks)

	ticks := 0
	for {
		if err := ctx.Err(); err != nil {
			return r.stop(StopCanceled, ticks, err)
		}

		quit := false
		for _, ev := range r.frontend.Events() {
			if world.Dispatch(r.world, ev) {
				quit = true
			}
			r.logger.Debug("event", "tick", ticks, "event", ev.String())
		}

		world.Advance(r.world)
		ticks++
		if c := r.world.Contacts; c.Horizontal() {
			r.logger.Debug("bounce",
				"frame", r.world.Tracker.Frames,
				"walls", c.String(),
				"freq", r.world.Tracker.Freq)
		}
		for _, o := range r.observers {
			o.OnTick(r.world)
		}

		if err := r.frontend.Present(r.world); err != nil {
			return r.stop(StopFailed, ticks, fmt.Errorf("present tick %d: %w", ticks, err))
		}

		if quit {
			return r.stop(StopExit, ticks, nil)
		}
		if r.maxTicks > 0 && ticks >= r.maxTicks {
			return r.stop(StopMaxTicks, ticks, nil)
		}

		if err := r.pacer.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return r.stop(StopCanceled, ticks, err)
			}
			return r.stop(StopFailed, ticks, err)
		}
	}
}

func (r *Runner) stop(reason StopReason, ticks int, err error) (StopReason, error) {
	if err != nil && reason != StopCanceled {
		r.logger.Error("loop stopped", "reason", reason.String(), "ticks", ticks, "err", err)
	} else {
		r.logger.Info("loop stopped", "reason", reason.String(), "ticks", ticks)
	}
	return reason, err
}

// DefaultInterval matches a roughly 60Hz display.
const DefaultInterval = time.Second / 60
