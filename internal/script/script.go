// Package script parses scripted input for headless runs.
//
// A script is a list of steps of the form "<tick>:<action>":
//
//	0:w            press speed-up before tick 0
//	12:s           press slow-down
//	40:release:w   release speed-up (no effect, recorded for completeness)
//	60:resize=300x150
//	90:esc         exit after tick 90 completes
package script

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/bouncebox/internal/world"
)

var ErrSyntax = errors.New("script: syntax error")

// Step is one scripted event scheduled before the given tick.
type Step struct {
	Tick  int
	Event world.Event
}

// Script replays scheduled events. It implements loop.Frontend with a
// Present that only counts ticks.
type Script struct {
	steps []Step
	next  int
	tick  int
}

func Parse(lines []string) (*Script, error) {
	steps := make([]Step, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		st, err := parseStep(line)
		if err != nil {
			return nil, fmt.Errorf("step %d %q: %w", i+1, line, err)
		}
		steps = append(steps, st)
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Tick < steps[j].Tick })
	return &Script{steps: steps}, nil
}

func parseStep(s string) (Step, error) {
	tickStr, action, ok := strings.Cut(s, ":")
	if !ok {
		return Step{}, fmt.Errorf("%w: missing ':'", ErrSyntax)
	}
	tick, err := strconv.Atoi(strings.TrimSpace(tickStr))
	if err != nil || tick < 0 {
		return Step{}, fmt.Errorf("%w: bad tick %q", ErrSyntax, tickStr)
	}
	ev, err := parseAction(strings.TrimSpace(action))
	if err != nil {
		return Step{}, err
	}
	return Step{Tick: tick, Event: ev}, nil
}

func parseAction(a string) (world.Event, error) {
	if dims, ok := strings.CutPrefix(a, "resize="); ok {
		ws, hs, ok := strings.Cut(dims, "x")
		if !ok {
			return world.Event{}, fmt.Errorf("%w: resize wants WxH", ErrSyntax)
		}
		w, err1 := strconv.Atoi(ws)
		h, err2 := strconv.Atoi(hs)
		if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
			return world.Event{}, fmt.Errorf("%w: bad size %q", ErrSyntax, dims)
		}
		return world.Resized(w, h), nil
	}
	if k, ok := strings.CutPrefix(a, "release:"); ok {
		key, err := parseKey(k)
		if err != nil {
			return world.Event{}, err
		}
		return world.Release(key), nil
	}
	key, err := parseKey(a)
	if err != nil {
		return world.Event{}, err
	}
	return world.Press(key), nil
}

func parseKey(k string) (world.Key, error) {
	switch strings.ToLower(k) {
	case "w":
		return world.KeySpeedUp, nil
	case "s":
		return world.KeySlowDown, nil
	case "esc", "escape":
		return world.KeyExit, nil
	}
	if r := []rune(k); len(r) == 1 {
		return world.KeyOther, nil
	}
	return world.KeyOther, fmt.Errorf("%w: unknown key %q", ErrSyntax, k)
}

func (s *Script) Steps() []Step { return s.steps }

// Events returns the steps scheduled at or before the current tick.
func (s *Script) Events() []world.Event {
	var evs []world.Event
	for s.next < len(s.steps) && s.steps[s.next].Tick <= s.tick {
		evs = append(evs, s.steps[s.next].Event)
		s.next++
	}
	return evs
}

func (s *Script) Present(*world.World) error {
	s.tick++
	return nil
}
