// Package world holds the state and rules of the bouncing box.
//
// A [World] owns three pieces of state:
//
//   - [Viewport]: the drawable area in pixels, bottom-left origin
//   - [Box]: position, velocity, half extent and color of the square
//   - [BounceTracker]: frame counter and left/right bounce frequency
//
// [Advance] performs one physics tick, [Dispatch] applies an input
// [Event], and [ShouldDraw] / [DrawIntent] describe what a frontend
// should paint.
//
// # Thread Safety
//
// A World is owned by a single tick loop and is NOT safe for concurrent use.
package world
