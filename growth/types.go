// Package growth defines options and sentinel errors
// for the growth subpackage of github.com/katalvlaran/dla.
package growth

import (
	"errors"
)

// Sentinel errors for growth operations.
var (
	// ErrInvalidParticleCount indicates a non-positive particle count.
	ErrInvalidParticleCount = errors.New("growth: particle count must be positive")
	// ErrInvalidWorkerCount indicates a non-positive worker count.
	ErrInvalidWorkerCount = errors.New("growth: worker count must be positive")
)

// DefaultMaxWander is the slack, beyond the current cluster radius, a
// walker may drift before it is re-launched on the release circle.
const DefaultMaxWander = 5

// Options configures a growth run.
//
// Fields:
//   - MaxWander — drift slack before a walker is re-launched. Values <= 0
//     select DefaultMaxWander. Larger values reduce sampling bias but let
//     walkers wander longer.
//   - Seed      — walker RNG seed; 0 selects the fixed default stream, so
//     two runs with identical arguments reproduce the same cluster.
//
// Example:
//
//	opts := growth.DefaultOptions()
//	opts.Seed = 42
//	g, err := growth.Grow(301, 1500, opts)
type Options struct {
	MaxWander int
	Seed      int64
}

// DefaultOptions returns the reference tuning: MaxWander=5, Seed=0.
func DefaultOptions() Options {
	return Options{
		MaxWander: DefaultMaxWander,
		Seed:      0,
	}
}
