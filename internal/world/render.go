package world

// Rect is an axis-aligned rectangle in viewport pixels, bottom-left origin.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Intent is what a frontend should paint for the current tick.
type Intent struct {
	Rect   Rect
	Color  RGB
	Bounds Rect
}

// ShouldDraw reports whether the box fits horizontally in the viewport.
// Physics keeps running while the box is hidden.
func ShouldDraw(w *World) bool {
	return float64(w.Viewport.Width) >= 2*w.Box.HalfExtent
}

// DrawIntent describes the filled square for the current state.
func DrawIntent(w *World) Intent {
	b := w.Box
	return Intent{
		Rect: Rect{
			MinX: b.Pos.X - b.HalfExtent,
			MinY: b.Pos.Y - b.HalfExtent,
			MaxX: b.Pos.X + b.HalfExtent,
			MaxY: b.Pos.Y + b.HalfExtent,
		},
		Color:  b.Color,
		Bounds: Rect{MaxX: float64(w.Viewport.Width), MaxY: float64(w.Viewport.Height)},
	}
}
