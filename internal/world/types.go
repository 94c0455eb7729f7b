package world

import "fmt"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// RGB is a color with each channel in [0, 1].
type RGB struct {
	R, G, B float64
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// Bytes returns the color scaled to 0..255 per channel.
func (c RGB) Bytes() (r, g, b uint8) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

var (
	Magenta = RGB{1, 0, 1}
	Blue    = RGB{0, 0, 1}
	Red     = RGB{1, 0, 0}
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height int
}

func (v Viewport) Valid() bool { return v.Width > 0 && v.Height > 0 }

// Box is the square being simulated. Pos is its center.
type Box struct {
	Pos        Vec2
	Vel        Vec2
	HalfExtent float64
	Color      RGB
}

// Speed returns the larger of the two axis speeds.
func (b Box) Speed() float64 {
	return max(abs(b.Vel.X), abs(b.Vel.Y))
}

// BounceTracker estimates how often the box hits the left or right wall.
type BounceTracker struct {
	Frames          uint32
	LastBounceFrame uint32
	Freq            float64
}

// Contacts records which walls were hit during the last tick.
type Contacts uint8

const (
	ContactRight Contacts = 1 << iota
	ContactLeft
	ContactTop
	ContactBottom
)

func (c Contacts) Horizontal() bool { return c&(ContactLeft|ContactRight) != 0 }
func (c Contacts) Vertical() bool   { return c&(ContactTop|ContactBottom) != 0 }

func (c Contacts) String() string {
	if c == 0 {
		return "none"
	}
	s := ""
	for _, n := range []struct {
		bit  Contacts
		name string
	}{{ContactRight, "right"}, {ContactLeft, "left"}, {ContactTop, "top"}, {ContactBottom, "bottom"}} {
		if c&n.bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
