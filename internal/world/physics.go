package world

const (
	// SaturationFreq is the bounce frequency at which the box turns fully red.
	SaturationFreq = 0.05
)

// Advance moves the simulation forward by one tick.
//
// Horizontal walls are checked right then left, vertical walls top then
// bottom. Only left/right contacts feed the bounce tracker.
func Advance(w *World) {
	b, vp, tr := &w.Box, w.Viewport, &w.Tracker

	tr.Frames++
	w.Contacts = 0

	b.Pos = b.Pos.Add(b.Vel)

	if right := float64(vp.Width) - b.HalfExtent; b.Pos.X >= right {
		b.Pos.X = right
		b.Vel.X = -b.Vel.X
		tr.bounce()
		w.Contacts |= ContactRight
	}
	if b.Pos.X <= b.HalfExtent {
		b.Pos.X = b.HalfExtent
		b.Vel.X = -b.Vel.X
		tr.bounce()
		w.Contacts |= ContactLeft
	}

	if top := float64(vp.Height) - b.HalfExtent; b.Pos.Y >= top {
		b.Pos.Y = top
		b.Vel.Y = -b.Vel.Y
		w.Contacts |= ContactTop
	}
	if b.Pos.Y <= b.HalfExtent {
		b.Pos.Y = b.HalfExtent
		b.Vel.Y = -b.Vel.Y
		w.Contacts |= ContactBottom
	}

	b.Color = ColorFor(tr.Freq)
}

// bounce records a left/right contact on the current frame.
func (t *BounceTracker) bounce() {
	if delta := t.Frames - t.LastBounceFrame; delta > 0 {
		t.Freq = 1 / float64(delta)
	}
	t.LastBounceFrame = t.Frames
}

// Heat maps a bounce frequency to [0, 1], saturating at SaturationFreq.
func Heat(freq float64) float64 {
	if freq <= 0 {
		return 0
	}
	return min(freq, SaturationFreq) / SaturationFreq
}

// ColorFor interpolates from blue (no bounces) to red (frequent bounces).
func ColorFor(freq float64) RGB {
	f := Heat(freq)
	return RGB{R: f, G: 0, B: 1 - f}
}
