package gui

import (
	"strings"
	"testing"

	"github.com/san-kum/bouncebox/internal/world"
)

func TestScreenRectFlipsY(t *testing.T) {
	w := world.Default()
	world.Advance(w)

	x, y, width, height := screenRect(world.DrawIntent(w))
	// box spans y 85..125 with origin at the bottom of a 200 pixel window
	if x != 30 || y != 75 || width != 40 || height != 40 {
		t.Errorf("unexpected rect %d,%d %dx%d", x, y, width, height)
	}
}

func TestHUDLine(t *testing.T) {
	if got := hudLine(world.Default()); !strings.Contains(got, "vel 30,5") {
		t.Errorf("unexpected hud %q", got)
	}
}
