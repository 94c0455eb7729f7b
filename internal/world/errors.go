package world

import "errors"

var (
	// ErrInvalidViewport indicates a non-positive viewport dimension.
	ErrInvalidViewport = errors.New("world: viewport dimensions must be positive")

	// ErrInvalidExtent indicates a non-positive box half extent.
	ErrInvalidExtent = errors.New("world: box half extent must be positive")
)
