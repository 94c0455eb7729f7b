// Package term is a tcell frontend driven by loop.Runner. Each terminal
// cell covers CellWidth x CellHeight viewport pixels; the bottom row is a
// status line.
package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/bouncebox/internal/world"
)

const (
	CellWidth  = 5.0
	CellHeight = 10.0
)

type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	status tcell.Style
}

// New opens the terminal. Callers must Close it.
func New() (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithScreen(sc)
}

// NewWithScreen wraps an uninitialized screen.
func NewWithScreen(sc tcell.Screen) (*Screen, error) {
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	sc.HideCursor()
	s := &Screen{
		screen: sc,
		events: make(chan tcell.Event, 100),
		status: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
	go s.poll()
	return s, nil
}

func (s *Screen) poll() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.events <- ev
	}
}

func (s *Screen) Close() { s.screen.Fini() }

// Viewport is the pixel size of the drawable area.
func (s *Screen) Viewport() (width, height int) {
	return viewportFor(s.screen.Size())
}

func viewportFor(cols, rows int) (width, height int) {
	return int(float64(max(cols, 1)) * CellWidth), int(float64(max(rows-1, 1)) * CellHeight)
}

// Events drains pending terminal events without blocking.
func (s *Screen) Events() []world.Event {
	var out []world.Event
	for {
		select {
		case ev := <-s.events:
			if e, ok := translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func translate(ev tcell.Event) (world.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return world.Press(world.KeyExit), true
		case tcell.KeyRune:
			return world.Press(world.KeyForRune(ev.Rune())), true
		}
		return world.Press(world.KeyOther), true
	case *tcell.EventResize:
		return world.Resized(viewportFor(ev.Size())), true
	}
	return world.Event{}, false
}

func (s *Screen) Present(w *world.World) error {
	s.screen.Clear()
	cols, rows := s.screen.Size()

	if world.ShouldDraw(w) {
		r, g, b := w.Box.Color.Bytes()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		rect := world.DrawIntent(w).Rect
		bottom := rows - 2
		x0 := int(math.Floor(rect.MinX / CellWidth))
		x1 := int(math.Ceil(rect.MaxX/CellWidth)) - 1
		y0 := bottom - (int(math.Ceil(rect.MaxY/CellHeight)) - 1)
		y1 := bottom - int(math.Floor(rect.MinY/CellHeight))
		for y := max(y0, 0); y <= min(y1, bottom); y++ {
			for x := max(x0, 0); x <= min(x1, cols-1); x++ {
				s.screen.SetContent(x, y, '█', nil, style)
			}
		}
	}

	line := fmt.Sprintf(" tick %d  pos %.0f,%.0f  vel %.0f,%.0f  freq %.4f  %s  [w]faster [s]slower [esc]quit",
		w.Tracker.Frames, w.Box.Pos.X, w.Box.Pos.Y, w.Box.Vel.X, w.Box.Vel.Y, w.Tracker.Freq, w.Box.Color.Hex())
	if !world.ShouldDraw(w) {
		line = " (hidden)" + line
	}
	for i, r := range []rune(line) {
		if i >= cols {
			break
		}
		s.screen.SetContent(i, rows-1, r, nil, s.status)
	}

	s.screen.Show()
	return nil
}
