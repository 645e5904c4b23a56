package walk

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/dla/grid"
)

// Walker produces unbiased lattice steps and launch points from an owned,
// seedable random source. A Walker is cheap; create one per goroutine.
type Walker struct {
	rng *rand.Rand
}

// New returns a Walker with a deterministic source.
// Seed policy follows rngFromSeed: seed==0 selects the fixed default seed,
// so a zero-value choice still reproduces.
//
// Complexity: O(1).
func New(seed int64) *Walker {
	return &Walker{rng: rngFromSeed(seed)}
}

// Derive creates an independent Walker stream from w and a stream id.
// w.rng is consumed once to decorrelate consecutive derivations, then
// mixed with the stream via deriveSeed. Call during setup (not in hot
// loops) to hand one Walker to each parallel growth worker.
//
// Complexity: O(1).
func (w *Walker) Derive(stream uint64) *Walker {
	// Int63 advances w's state; intentional, so reusing a stream id by
	// mistake still yields distinct children.
	return &Walker{rng: rand.New(rand.NewSource(deriveSeed(w.rng.Int63(), stream)))}
}

// Step takes one unit step from (x,y) and returns the new coordinates:
// one of (x±1,y), (x,y±1), each with probability exactly 1/4.
//
// Complexity: O(1).
func (w *Walker) Step(x, y int) (int, int) {
	switch w.rng.Intn(4) {
	case 0:
		return x + 1, y
	case 1:
		return x - 1, y
	case 2:
		return x, y + 1
	default:
		return x, y - 1
	}
}

// LaunchPoint returns a lattice point at (approximately) the given
// real-valued distance from c: a uniform angle in [0,2π) is sampled and
// the real coordinates are truncated toward zero on each axis — the cast
// semantics the distance/angle conversion has always used, not rounding.
//
// Complexity: O(1).
func (w *Walker) LaunchPoint(c grid.Point, distance float64) grid.Point {
	angle := w.rng.Float64() * 2 * math.Pi
	return grid.Point{
		X: int(float64(c.X) + distance*math.Cos(angle)),
		Y: int(float64(c.Y) + distance*math.Sin(angle)),
	}
}

// Distance returns the Euclidean distance between p and c, rounded up to
// the nearest integer. This ceiling is the unit for every cluster-radius
// comparison in the growth engine.
//
// Complexity: O(1).
func Distance(p, c grid.Point) int {
	return int(math.Ceil(math.Hypot(float64(p.X-c.X), float64(p.Y-c.Y))))
}
