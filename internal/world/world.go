package world

import "fmt"

const (
	DefaultWidth      = 400
	DefaultHeight     = 200
	DefaultHalfExtent = 20.0
)

// InitialVelocity is the velocity the box starts with.
var InitialVelocity = Vec2{X: 30, Y: 5}

// World is the complete simulation state for one box in one viewport.
type World struct {
	Viewport Viewport
	Box      Box
	Tracker  BounceTracker

	// Contacts holds the walls hit during the most recent Advance.
	Contacts Contacts
}

// New creates a world for the given viewport with the box resting against
// the left wall, vertically centered, moving at InitialVelocity.
func New(width, height int) (*World, error) {
	vp := Viewport{Width: width, Height: height}
	if !vp.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	return newWorld(vp, DefaultHalfExtent)
}

// Default creates the 400x200 world.
func Default() *World {
	w, _ := New(DefaultWidth, DefaultHeight)
	return w
}

func newWorld(vp Viewport, halfExtent float64) (*World, error) {
	if halfExtent <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidExtent, halfExtent)
	}
	return &World{
		Viewport: vp,
		Box: Box{
			Pos:        Vec2{X: halfExtent, Y: float64(vp.Height) / 2},
			Vel:        InitialVelocity,
			HalfExtent: halfExtent,
			Color:      Magenta,
		},
	}, nil
}

// Reset puts the box and tracker back to their starting values while
// keeping the current viewport.
func (w *World) Reset() {
	fresh, _ := newWorld(w.Viewport, w.Box.HalfExtent)
	*w = *fresh
}

// Resize applies a new viewport size. Non-positive sizes are ignored so the
// viewport invariant holds.
func (w *World) Resize(width, height int) bool {
	vp := Viewport{Width: width, Height: height}
	if !vp.Valid() || vp == w.Viewport {
		return false
	}
	w.Viewport = vp
	return true
}
