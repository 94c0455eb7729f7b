package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/bouncebox/internal/world"
)

type fakeFrontend struct {
	batches  map[int][]world.Event
	polls    int
	presents int
	failAt   int
	seen     []world.Vec2
}

func (f *fakeFrontend) Events() []world.Event {
	evs := f.batches[f.polls]
	f.polls++
	return evs
}

func (f *fakeFrontend) Present(w *world.World) error {
	f.presents++
	f.seen = append(f.seen, w.Box.Pos)
	if f.failAt > 0 && f.presents == f.failAt {
		return errors.New("surface lost")
	}
	return nil
}

func TestRunMaxTicks(t *testing.T) {
	w := world.Default()
	fe := &fakeFrontend{}
	reason, err := New(w, fe, WithMaxTicks(5)).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if reason != StopMaxTicks {
		t.Errorf("expected max-ticks, got %s", reason)
	}
	if w.Tracker.Frames != 5 {
		t.Errorf("expected 5 frames, got %d", w.Tracker.Frames)
	}
	if fe.presents != 5 {
		t.Errorf("expected 5 presents, got %d", fe.presents)
	}
}

func TestRunDrainsInputBeforePhysics(t *testing.T) {
	w := world.Default()
	fe := &fakeFrontend{batches: map[int][]world.Event{
		0: {world.Press(world.KeySpeedUp), world.Release(world.KeySpeedUp)},
	}}
	if _, err := New(w, fe, WithMaxTicks(1)).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// 20 + 32, 100 + 6
	if got := fe.seen[0]; got != (world.Vec2{X: 52, Y: 106}) {
		t.Errorf("unexpected first position %+v", got)
	}
}

func TestRunExitCompletesIteration(t *testing.T) {
	w := world.Default()
	fe := &fakeFrontend{batches: map[int][]world.Event{
		2: {world.Press(world.KeyExit)},
	}}
	reason, err := New(w, fe, WithMaxTicks(100)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if reason != StopExit {
		t.Errorf("expected exit, got %s", reason)
	}
	if w.Tracker.Frames != 3 || fe.presents != 3 {
		t.Errorf("expected 3 complete ticks, got frames=%d presents=%d", w.Tracker.Frames, fe.presents)
	}
}

func TestRunPresentError(t *testing.T) {
	fe := &fakeFrontend{failAt: 2}
	reason, err := New(world.Default(), fe).Run(context.Background())
	if reason != StopFailed {
		t.Errorf("expected failed, got %s", reason)
	}
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reason, err := New(world.Default(), &fakeFrontend{}).Run(ctx)
	if reason != StopCanceled {
		t.Errorf("expected canceled, got %s", reason)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunObservers(t *testing.T) {
	var frames []uint32
	obs := ObserverFunc(func(w *world.World) { frames = append(frames, w.Tracker.Frames) })
	if _, err := New(world.Default(), &fakeFrontend{}, WithMaxTicks(3), WithObserver(obs)).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 || frames[2] != 3 {
		t.Errorf("unexpected observed frames %v", frames)
	}
}

func TestTickerPacesAndCancels(t *testing.T) {
	p := NewTicker(5 * time.Millisecond)
	defer p.Stop()

	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if time.Since(start) < time.Millisecond {
		t.Error("ticker returned without waiting")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected canceled, got %v", err)
	}
}
