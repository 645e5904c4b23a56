// Package growth grows a DLA cluster to a target particle count by
// repeatedly releasing random walkers near the cluster and attaching each
// one where it first touches.
//
// What:
//
//   - Grow runs the reference sequential engine: one walker at a time,
//     released at the current cluster radius, stepped until adjacent to
//     the cluster, then attached.
//   - A walker that drifts more than MaxWander beyond the cluster radius
//     is re-launched on the release circle; this bounds the cost of
//     walkers that wander off, at the price of a slight sampling bias.
//   - GrowParallel runs independent walkers on derived RNG streams with
//     a lock guarding attachment; same invariants, different interleaving.
//
// Why:
//
//   - Releasing at the live cluster radius (instead of a fixed far circle)
//     keeps the mean walk length bounded as the cluster grows.
//
// State machine per particle: Released → Walking → Attached. A re-launch
// stays in Walking and discards the wandered history.
//
// Invariants:
//
//   - the cluster radius is monotonically non-decreasing;
//   - every attached cell (except the seed) touches the cluster;
//   - Grow attaches exactly `particles` cells beyond the seed.
//
// Errors:
//
//   - ErrInvalidParticleCount: particles <= 0.
//   - ErrInvalidWorkerCount: workers <= 0 (GrowParallel only).
//   - grid.ErrInvalidSize: surfaced from grid.New before any work begins.
package growth
