// Package gui is the desktop frontend: a resizable raylib window driven by
// loop.Runner.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bouncebox/internal/world"
)

var (
	ColBg   = rl.NewColor(77, 26, 26, 255) // 0.3, 0.1, 0.1
	ColText = rl.NewColor(200, 200, 200, 255)
)

// Window must be created, used and closed on the main goroutine.
type Window struct {
	hud bool
}

// Open creates the window. It returns an error instead of exiting when no
// display is available.
func Open(width, height int, title string, hud bool) (*Window, error) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, ErrNoDisplay
	}
	rl.SetExitKey(0)
	return &Window{hud: hud}, nil
}

func (w *Window) Close() { rl.CloseWindow() }

func keyFor(k int32) world.Key {
	switch k {
	case rl.KeyW:
		return world.KeySpeedUp
	case rl.KeyS:
		return world.KeySlowDown
	case rl.KeyEscape:
		return world.KeyExit
	}
	return world.KeyOther
}

var released = []int32{rl.KeyW, rl.KeyS, rl.KeyEscape}

// Events reports input gathered by the last frame's event poll.
func (w *Window) Events() []world.Event {
	var evs []world.Event
	if rl.IsWindowResized() {
		evs = append(evs, world.Resized(int(rl.GetScreenWidth()), int(rl.GetScreenHeight())))
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		evs = append(evs, world.Press(keyFor(k)))
	}
	for _, k := range released {
		if rl.IsKeyReleased(k) {
			evs = append(evs, world.Release(keyFor(k)))
		}
	}
	if rl.WindowShouldClose() {
		evs = append(evs, world.Press(world.KeyExit))
	}
	return evs
}

func (w *Window) Present(wd *world.World) error {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if world.ShouldDraw(wd) {
		x, y, width, height := screenRect(world.DrawIntent(wd))
		r, g, b := wd.Box.Color.Bytes()
		rl.DrawRectangle(x, y, width, height, rl.NewColor(r, g, b, 255))
	}
	if w.hud {
		rl.DrawText(hudLine(wd), 8, 8, 10, ColText)
	}

	rl.EndDrawing()
	return nil
}
