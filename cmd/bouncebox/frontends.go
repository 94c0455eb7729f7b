package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/san-kum/bouncebox/internal/audio"
	"github.com/san-kum/bouncebox/internal/config"
	"github.com/san-kum/bouncebox/internal/gui"
	"github.com/san-kum/bouncebox/internal/loop"
	"github.com/san-kum/bouncebox/internal/term"
	"github.com/san-kum/bouncebox/internal/viz"
	"github.com/san-kum/bouncebox/internal/world"
)

// startSound returns the click observer, or nil when sound is off or the
// device cannot be opened.
func startSound(cfg *config.Config) (*audio.Processor, func()) {
	if !cfg.Sound {
		return nil, func() {}
	}
	p := audio.NewProcessor()
	if err := p.Start(); err != nil {
		slog.Warn("sound disabled", "err", err)
		return nil, func() {}
	}
	return p, p.Stop
}

func runTUI(cfg *config.Config) error {
	w, err := cfg.NewWorld()
	if err != nil {
		return err
	}
	opts := viz.Options{Interval: cfg.TickInterval, Theme: cfg.Theme}
	snd, stop := startSound(cfg)
	defer stop()
	if snd != nil {
		opts.Observers = append(opts.Observers, snd)
	}
	return viz.Run(w, opts)
}

func runTerm(cfg *config.Config) error {
	scr, err := term.New()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer scr.Close()

	w, err := world.New(scr.Viewport())
	if err != nil {
		return fmt.Errorf("terminal too small: %w", err)
	}
	return runLoop(cfg, w, scr)
}

func runGUI(cfg *config.Config) error {
	w, err := cfg.NewWorld()
	if err != nil {
		return err
	}
	win, err := gui.Open(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, hud)
	if err != nil {
		return err
	}
	defer win.Close()
	return runLoop(cfg, w, win)
}

// runLoop drives an interactive frontend at the configured rate until exit
// or interrupt.
func runLoop(cfg *config.Config, w *world.World, fe loop.Frontend) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	pacer := loop.NewTicker(cfg.TickInterval)
	defer pacer.Stop()

	r := loop.New(w, fe, loop.WithPacer(pacer), loop.WithLogger(slog.Default()))
	snd, stop := startSound(cfg)
	defer stop()
	if snd != nil {
		r.AddObserver(snd)
	}

	_, err := r.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
