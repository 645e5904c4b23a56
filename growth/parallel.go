package growth

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/dla/grid"
	"github.com/katalvlaran/dla/walk"
)

// GrowParallel — concurrent DLA growth engine.
//
// Description:
//
//	Grows the same cluster shape family as Grow, but with `workers`
//	goroutines walking independent particles at once. Each worker owns a
//	Walker derived from the base seed (one decorrelated stream per
//	worker), so no RNG state is shared.
//
// Locking model:
//
//	A single sync.RWMutex guards the grid and the cluster radius. Walk
//	probes take the read lock; attachment takes the write lock and
//	re-verifies the cell under it, because a sibling may have occupied
//	the cell (or its neighborhood may have changed) since the probe.
//	If the re-check fails the walker simply keeps walking.
//
// Invariants match Grow: radius non-decreasing, exactly `particles`
// cells attached beyond the seed, every cell adjacent to the cluster at
// attach time. Interleaving differs run to run relative to Grow, so the
// resulting cluster is not byte-identical to the sequential engine's.
//
// Errors:
//   - ErrInvalidParticleCount — particles <= 0.
//   - ErrInvalidWorkerCount   — workers <= 0.
//   - grid.ErrInvalidSize     — size <= 0, surfaced from grid.New.
func GrowParallel(size, particles, workers int, opts Options) (*grid.Grid, error) {
	if particles <= 0 {
		return nil, ErrInvalidParticleCount
	}
	if workers <= 0 {
		return nil, ErrInvalidWorkerCount
	}
	maxWander := opts.MaxWander
	if maxWander <= 0 {
		maxWander = DefaultMaxWander
	}

	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}
	base := walk.New(opts.Seed)
	c := g.Center()

	var (
		mu        sync.RWMutex
		rCluster  = 1
		remaining = int64(particles)
		wg        sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		w := base.Derive(uint64(i))
		wg.Add(1)
		go func(w *walk.Walker) {
			defer wg.Done()
			for atomic.AddInt64(&remaining, -1) >= 0 {
				mu.RLock()
				r := rCluster
				mu.RUnlock()
				p := w.LaunchPoint(c, float64(r))

				for {
					p.X, p.Y = w.Step(p.X, p.Y)
					d := walk.Distance(p, c)

					mu.RLock()
					hit := g.InBounds(p.X, p.Y) && !g.IsOccupied(p.X, p.Y) && g.HasOccupiedNeighbor(p.X, p.Y)
					r = rCluster
					mu.RUnlock()

					if hit {
						mu.Lock()
						// Re-verify: a sibling may have raced us here.
						if !g.IsOccupied(p.X, p.Y) && g.HasOccupiedNeighbor(p.X, p.Y) {
							g.Attach(p.X, p.Y)
							if d > rCluster {
								rCluster = d
							}
							mu.Unlock()
							break
						}
						mu.Unlock()
						continue
					}

					if d > r+maxWander {
						p = w.LaunchPoint(c, float64(r))
					}
				}
			}
		}(w)
	}
	wg.Wait()

	return g, nil
}
