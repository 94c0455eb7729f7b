// Package analysis extracts frequency content from recorded runs.
//
// The horizontal position of a box bouncing between two walls is a
// triangle wave. Its fundamental frequency is half the left/right bounce
// rate, which lets a recorded run be checked against the bounce tracker's
// own estimate.
package analysis
