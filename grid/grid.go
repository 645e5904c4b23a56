package grid

// New constructs an all-unoccupied size×size Grid, fixes the seed center at
// (size/2, size/2) and marks it occupied. The seed is the first cluster
// cell, so a fresh grid always reports Occupied()==1.
// Returns ErrInvalidSize if size <= 0.
// Algorithmic complexity: O(size²) time and memory.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	cells := make([][]bool, size)
	for y := 0; y < size; y++ {
		cells[y] = make([]bool, size)
	}
	g := &Grid{
		size:   size,
		center: Point{X: size / 2, Y: size / 2},
		cells:  cells,
	}
	g.Attach(g.center.X, g.center.Y)

	return g, nil
}

// Size returns the grid side length.
// Complexity: O(1).
func (g *Grid) Size() int {
	return g.size
}

// Center returns the fixed seed coordinate.
// Complexity: O(1).
func (g *Grid) Center() Point {
	return g.center
}

// Occupied returns the total number of occupied cells.
// Complexity: O(1).
func (g *Grid) Occupied() int {
	return g.occupied
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// IsOccupied reports whether (x,y) belongs to the cluster.
// Any out-of-range coordinate answers false — outside the grid there is
// no cluster, and the query never panics.
// Complexity: O(1).
func (g *Grid) IsOccupied(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x]
}

// HasOccupiedNeighbor reports whether any of the four axis-aligned
// neighbors of (x,y) is occupied. Out-of-range neighbors count as
// unoccupied, so the query is safe on and beyond the grid border.
// Complexity: O(1).
func (g *Grid) HasOccupiedNeighbor(x, y int) bool {
	for _, d := range neighborOffsets {
		if g.IsOccupied(x+d[0], y+d[1]) {
			return true
		}
	}

	return false
}

// Attach marks (x,y) occupied. The caller guarantees the coordinate is
// in bounds and — except for the seed during New — currently unoccupied
// and adjacent to the cluster; the growth engine enforces that discipline.
// Attaching an already-occupied cell is a no-op.
// Complexity: O(1).
func (g *Grid) Attach(x, y int) {
	if g.cells[y][x] {
		return
	}
	g.cells[y][x] = true
	g.occupied++
}

// CountInBox returns the number of occupied cells whose offsets from c on
// both axes lie in the half-open range [-radius, radius). The asymmetric
// range keeps successive box counts strictly nested, so counts are
// non-decreasing in radius. Boxes may extend past the grid bounds:
// out-of-range reads simply contribute nothing.
// Complexity: O(radius²).
func (g *Grid) CountInBox(c Point, radius int) int {
	count := 0
	for y := c.Y - radius; y < c.Y+radius; y++ {
		for x := c.X - radius; x < c.X+radius; x++ {
			if g.IsOccupied(x, y) {
				count++
			}
		}
	}

	return count
}

// Cells returns the occupied coordinates in row-major order.
// The slice is a snapshot; mutating it does not affect the grid.
// Complexity: O(size²) time, O(occupied) memory.
func (g *Grid) Cells() []Point {
	pts := make([]Point, 0, g.occupied)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}

	return pts
}
