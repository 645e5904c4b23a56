// Package fractal estimates the box-counting fractal dimension of a DLA
// cluster: it counts occupied cells in growing boxes around the seed and
// fits a line to the (ln R, ln N) series.
//
// What:
//
//   - Estimate sweeps box radii R = 1, 2, … and records one Sample per
//     radius until the count plateaus (N unchanged and above PlateauMin)
//     or the box covers the whole grid.
//   - Fit runs an ordinary least-squares fit of ln N against ln R over a
//     configurable contiguous window of the series; the slope is the
//     dimension estimate.
//
// Why:
//
//   - A DLA cluster's mass scales as N ∝ R^d with d ≈ 1.71 in 2D; the
//     log-log slope reads that exponent straight off the data.
//   - The tail of the series flattens once boxes swallow the whole
//     cluster, so the default window trims trailing points. Both trims
//     are tunables, not constants — the right window depends on the run.
//
// Numeric notes: ln is the natural log, radii are integers, counts are
// exact (no sampling). The fit itself is gonum's stat.LinearRegression.
//
// Errors:
//
//   - ErrInsufficientData: fewer than 2 points remain after trimming,
//     or the trimmed window is empty/inverted.
//   - ErrBadTrim: a negative trim value.
//   - ErrNilGrid: no grid to measure.
package fractal
