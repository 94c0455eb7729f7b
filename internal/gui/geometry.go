package gui

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/bouncebox/internal/world"
)

var ErrNoDisplay = errors.New("gui: cannot open window (no display?)")

// screenRect converts a bottom-left-origin intent to raylib's top-left
// screen coordinates.
func screenRect(in world.Intent) (x, y, w, h int32) {
	r := in.Rect
	top := in.Bounds.MaxY - r.MaxY
	return int32(math.Round(r.MinX)), int32(math.Round(top)),
		int32(math.Round(r.Width())), int32(math.Round(r.Height()))
}

func hudLine(w *world.World) string {
	return fmt.Sprintf("vel %.0f,%.0f  freq %.4f  [W] faster  [S] slower  [Esc] quit",
		w.Box.Vel.X, w.Box.Vel.Y, w.Tracker.Freq)
}
