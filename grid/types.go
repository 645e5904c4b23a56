// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/dla.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive grid side length.
	ErrInvalidSize = errors.New("grid: size must be positive")
	// ErrMalformedClusterFile indicates an unparsable header or coordinate line.
	ErrMalformedClusterFile = errors.New("grid: malformed cluster file")
)

// Point is an integer lattice coordinate (X, Y).
type Point struct {
	X, Y int
}

// neighborOffsets are the four axis-aligned unit offsets; only membership
// matters to callers, never the order.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a square occupancy lattice with a fixed seed center.
// cells[y][x] reports whether (x,y) belongs to the cluster.
// Occupancy is monotonic: Attach sets cells, nothing ever clears one.
// The center is fixed at construction and marked occupied immediately.
type Grid struct {
	size     int
	center   Point
	cells    [][]bool
	occupied int
}
