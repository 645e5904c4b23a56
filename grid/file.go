package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Cluster file format, one token group per line:
//
//	size x0 y0     ← header: explicit side length plus seed center
//	x y            ← one line per occupied cell, row-major on write
//	...
//
// A legacy header with only two tokens ("x0 y0") is also accepted; the
// side length is then inferred as 2·x0 × 2·y0, the scheme the format
// originally used before dimensions were made explicit.
// Blank lines are ignored on read; cell order is irrelevant on read.

// Write serializes g to w: the header line followed by every occupied
// cell's coordinates. The result round-trips through Read.
// Complexity: O(size²).
func Write(g *Grid, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", g.size, g.center.X, g.center.Y); err != nil {
		return err
	}
	for _, p := range g.Cells() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p.X, p.Y); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile serializes g to the file at path, creating or truncating it.
func WriteFile(g *Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(g, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Read parses a cluster file from r and rebuilds the Grid, including its
// seed center and every occupied cell.
// Returns ErrMalformedClusterFile (wrapped with line detail) for a missing
// or unparsable header, a non-positive inferred size, an out-of-bounds
// center or cell, or any coordinate line that is not two integers.
// Complexity: O(size² + lines).
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	// Header: "size x0 y0", or legacy "x0 y0" with inferred size.
	var size int
	var center Point
	header := false
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		nums, err := parseInts(fields)
		if err != nil {
			return nil, malformed(lineNo, sc.Text())
		}
		switch len(nums) {
		case 3:
			size, center = nums[0], Point{X: nums[1], Y: nums[2]}
		case 2:
			center = Point{X: nums[0], Y: nums[1]}
			size = 2 * center.X
			if 2*center.Y > size {
				size = 2 * center.Y
			}
		default:
			return nil, malformed(lineNo, sc.Text())
		}
		header = true
		break
	}
	if !header {
		return nil, fmt.Errorf("%w: missing header line", ErrMalformedClusterFile)
	}

	g, err := newAt(size, center)
	if err != nil {
		return nil, fmt.Errorf("%w: header line %d: %v", ErrMalformedClusterFile, lineNo, err)
	}

	// Body: one "x y" pair per occupied cell.
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		nums, err := parseInts(fields)
		if err != nil || len(nums) != 2 {
			return nil, malformed(lineNo, sc.Text())
		}
		if !g.InBounds(nums[0], nums[1]) {
			return nil, malformed(lineNo, sc.Text())
		}
		g.Attach(nums[0], nums[1])
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// ReadFile parses the cluster file at path via Read.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// newAt builds a grid with an explicit seed center, used when loading a
// persisted cluster whose center need not sit at size/2.
func newAt(size int, center Point) (*Grid, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	cells := make([][]bool, size)
	for y := 0; y < size; y++ {
		cells[y] = make([]bool, size)
	}
	g := &Grid{size: size, center: center, cells: cells}
	if !g.InBounds(center.X, center.Y) {
		return nil, fmt.Errorf("center (%d,%d) outside %d×%d grid", center.X, center.Y, size, size)
	}
	g.Attach(center.X, center.Y)

	return g, nil
}

// parseInts converts every field to an int, failing on the first bad token.
func parseInts(fields []string) ([]int, error) {
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}

	return nums, nil
}

// malformed wraps ErrMalformedClusterFile with the offending line.
func malformed(lineNo int, line string) error {
	return fmt.Errorf("%w: line %d: %q", ErrMalformedClusterFile, lineNo, strings.TrimSpace(line))
}
