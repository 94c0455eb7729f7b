package world

import "fmt"

// Key is a frontend-independent key identity.
type Key int

const (
	KeyOther Key = iota
	KeySpeedUp
	KeySlowDown
	KeyExit
)

func (k Key) String() string {
	switch k {
	case KeySpeedUp:
		return "speed-up"
	case KeySlowDown:
		return "slow-down"
	case KeyExit:
		return "exit"
	default:
		return "other"
	}
}

// KeyForRune maps the classic bindings: w speeds up, s slows down.
func KeyForRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeySpeedUp
	case 's', 'S':
		return KeySlowDown
	default:
		return KeyOther
	}
}

// Velocity adjustment applied per speed-up or slow-down press.
var Boost = Vec2{X: 2, Y: 1}

type EventKind int

const (
	KeyPress EventKind = iota
	KeyRelease
	Resize
)

// Event is an input notification from a frontend. Key is set for KeyPress
// and KeyRelease, Width and Height for Resize.
type Event struct {
	Kind          EventKind
	Key           Key
	Width, Height int
}

func Press(k Key) Event   { return Event{Kind: KeyPress, Key: k} }
func Release(k Key) Event { return Event{Kind: KeyRelease, Key: k} }

func Resized(width, height int) Event {
	return Event{Kind: Resize, Width: width, Height: height}
}

func (e Event) String() string {
	switch e.Kind {
	case KeyPress:
		return "press(" + e.Key.String() + ")"
	case KeyRelease:
		return "release(" + e.Key.String() + ")"
	case Resize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	default:
		return "unknown"
	}
}

// Dispatch applies an event to the world and reports whether the exit key
// was pressed.
func Dispatch(w *World, ev Event) (quit bool) {
	switch ev.Kind {
	case KeyPress:
		return HandleKey(w, ev.Key)
	case Resize:
		w.Resize(ev.Width, ev.Height)
	}
	return false
}

// HandleKey applies a key press to the box velocity. Slowing down never
// reverses direction: each axis stops at zero.
func HandleKey(w *World, k Key) (quit bool) {
	v := &w.Box.Vel
	switch k {
	case KeySpeedUp:
		*v = v.Add(Boost)
	case KeySlowDown:
		*v = v.Sub(Boost)
		v.X = max(v.X, 0)
		v.Y = max(v.Y, 0)
	case KeyExit:
		return true
	}
	return false
}
