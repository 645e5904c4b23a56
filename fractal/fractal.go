package fractal

import (
	"math"

	"github.com/katalvlaran/dla/grid"
)

// Estimate — box-counting dimension of a cluster.
//
// Description:
//
//	Sweeps box radii R = 1, 2, … around the grid's seed center, counting
//	occupied cells N(R) in each half-open box, and fits a line to the
//	collected (ln R, ln N) points. The slope is the fractal dimension.
//
// Algorithm Outline:
//  1. R = 1. Compute N = g.CountInBox(center, R).
//  2. Stop when N equals the previous iteration's count AND N exceeds
//     PlateauMin — the box has swallowed the cluster and the plateau is
//     large enough to trust.
//  3. Also stop once R exceeds the grid side length: the box then covers
//     every cell and counts cannot change. Without this cap a cluster of
//     PlateauMin or fewer cells would sweep forever.
//  4. Otherwise append (ln R, ln N), R++, repeat from 1.
//  5. Fit the series over [TrimStart, len-TrimEnd) and return the slope,
//     intercept and the full series.
//
// Counts are exact and N ≥ 1 always (the box of radius 1 holds the seed),
// so the logarithms are finite.
//
// Errors:
//   - ErrNilGrid           — g is nil.
//   - ErrBadTrim           — negative TrimStart or TrimEnd.
//   - ErrInsufficientData  — fewer than 2 points survive the trims; the
//     collected series still rides along in the Result for diagnostics.
func Estimate(g *grid.Grid, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}

	c := g.Center()
	series := make([]Sample, 0, g.Size())
	prev := -1
	for r := 1; r <= g.Size(); r++ {
		n := g.CountInBox(c, r)
		if n == prev && n > opts.PlateauMin {
			break
		}
		series = append(series, Sample{
			LogR: math.Log(float64(r)),
			LogN: math.Log(float64(n)),
		})
		prev = n
	}

	slope, intercept, err := Fit(series, opts.TrimStart, opts.TrimEnd)
	if err != nil {
		return Result{Series: series}, err
	}

	return Result{Dimension: slope, Intercept: intercept, Series: series}, nil
}
