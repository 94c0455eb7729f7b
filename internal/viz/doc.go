// Package viz is the bubbletea frontend. It draws the box on a braille
// canvas, one dot per PixelsPerDot viewport pixels, and maps terminal
// resizes onto the world's viewport.
package viz
