package growth

import (
	"github.com/katalvlaran/dla/grid"
	"github.com/katalvlaran/dla/walk"
)

// Grow — sequential DLA growth engine.
//
// Description:
//
//	Starting from a single seed at the grid center, Grow releases
//	`particles` random walkers one at a time and sticks each to the
//	cluster where it first gains an occupied neighbor.
//
// Algorithm Outline:
//  1. Create a size×size grid; seed its center. rCluster = 1.
//  2. For each particle:
//     a. Launch at a uniform-angle point at distance rCluster from center.
//     b. Step once; let d = ceil Euclidean distance from center.
//     c. If the new cell is in bounds, unoccupied, and has an occupied
//     neighbor: attach it, rCluster = max(rCluster, d), next particle.
//     d. Else if d > rCluster + MaxWander: re-launch on the release
//     circle (wandered history discarded) and continue from (b).
//  3. Return the grid; the center rides along inside it.
//
// The in-bounds check in (c) is the attach discipline: a walker standing
// just outside the grid next to an occupied border cell keeps walking
// rather than writing out of range.
//
// Complexity:
//
//	Expected walk length per particle stays bounded because release
//	happens at the live cluster radius; worst case is capped by the
//	re-launch rule. Memory: O(size²) for the grid.
//
// Errors:
//   - ErrInvalidParticleCount — particles <= 0, before any work begins.
//   - grid.ErrInvalidSize     — size <= 0, surfaced from grid.New.
func Grow(size, particles int, opts Options) (*grid.Grid, error) {
	if particles <= 0 {
		return nil, ErrInvalidParticleCount
	}
	maxWander := opts.MaxWander
	if maxWander <= 0 {
		maxWander = DefaultMaxWander
	}

	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}
	w := walk.New(opts.Seed)

	rCluster := 1
	for i := 0; i < particles; i++ {
		rCluster = growOne(g, w, rCluster, maxWander)
	}

	return g, nil
}

// growOne walks a single particle from release to attachment and returns
// the (possibly grown, never shrunk) cluster radius.
func growOne(g *grid.Grid, w *walk.Walker, rCluster, maxWander int) int {
	c := g.Center()
	p := w.LaunchPoint(c, float64(rCluster))

	for {
		p.X, p.Y = w.Step(p.X, p.Y)
		d := walk.Distance(p, c)

		if g.InBounds(p.X, p.Y) && !g.IsOccupied(p.X, p.Y) && g.HasOccupiedNeighbor(p.X, p.Y) {
			g.Attach(p.X, p.Y)
			if d > rCluster {
				rCluster = d
			}
			return rCluster
		}

		if d > rCluster+maxWander {
			p = w.LaunchPoint(c, float64(rCluster))
		}
	}
}
