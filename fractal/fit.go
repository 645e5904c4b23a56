package fractal

import (
	"gonum.org/v1/gonum/stat"
)

// Fit performs an ordinary least-squares fit of LogN as an affine function
// of LogR (ln N = a·ln R + b) over the contiguous window
// series[trimStart : len(series)-trimEnd] and returns the slope a and
// intercept b.
//
// Trimming exists because the tail of a box-count series flattens once
// boxes exceed the cluster extent; the caller chooses how much to cut.
//
// Errors:
//   - ErrBadTrim          — trimStart or trimEnd is negative.
//   - ErrInsufficientData — the window is empty, inverted, or holds fewer
//     than 2 points (a line needs two).
//
// Complexity: O(n) over the window.
func Fit(series []Sample, trimStart, trimEnd int) (slope, intercept float64, err error) {
	if trimStart < 0 || trimEnd < 0 {
		return 0, 0, ErrBadTrim
	}
	lo, hi := trimStart, len(series)-trimEnd
	if hi-lo < 2 {
		return 0, 0, ErrInsufficientData
	}

	xs := make([]float64, 0, hi-lo)
	ys := make([]float64, 0, hi-lo)
	for _, s := range series[lo:hi] {
		xs = append(xs, s.LogR)
		ys = append(ys, s.LogN)
	}

	intercept, slope = stat.LinearRegression(xs, ys, nil, false)

	return slope, intercept, nil
}
