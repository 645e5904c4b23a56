// Package fractal defines options, result types, and sentinel errors
// for the fractal subpackage of github.com/katalvlaran/dla.
package fractal

import (
	"errors"
)

// Sentinel errors for fractal estimation.
var (
	// ErrInsufficientData indicates the trimmed series has fewer than 2 points.
	ErrInsufficientData = errors.New("fractal: too few points remain for a linear fit")
	// ErrBadTrim indicates a negative trim value.
	ErrBadTrim = errors.New("fractal: trim values must be non-negative")
	// ErrNilGrid indicates Estimate was handed no grid.
	ErrNilGrid = errors.New("fractal: grid must not be nil")
)

// Defaults for Options.
const (
	// DefaultTrimEnd drops this many trailing samples to exclude the
	// non-linear plateau from the fit. Tuned by inspection, not a law.
	DefaultTrimEnd = 5
	// DefaultPlateauMin is the smallest count a plateau must reach before
	// an unchanged N ends the box sweep.
	DefaultPlateauMin = 10
)

// Options configures the estimator.
//
// Fields:
//   - TrimStart  — samples dropped from the front of the series before fitting.
//   - TrimEnd    — samples dropped from the back (the flattening tail).
//   - PlateauMin — an unchanged box count only ends the sweep once it
//     exceeds this floor, so tiny clusters are not cut off at N=1.
//
// Example:
//
//	opts := fractal.DefaultOptions()
//	opts.TrimEnd = 8 // a long run with a wide plateau
//	res, err := fractal.Estimate(g, opts)
type Options struct {
	TrimStart  int
	TrimEnd    int
	PlateauMin int
}

// DefaultOptions returns the reference tuning:
// TrimStart=0, TrimEnd=5, PlateauMin=10.
func DefaultOptions() Options {
	return Options{
		TrimStart:  0,
		TrimEnd:    DefaultTrimEnd,
		PlateauMin: DefaultPlateauMin,
	}
}

// Sample is one point of the log-log series: LogN = ln N(R), LogR = ln R.
type Sample struct {
	LogR, LogN float64
}

// Result carries the dimension estimate and the full series that produced
// it, for diagnostics and plotting.
//
// Dimension is the fitted slope a and Intercept the offset b of
// ln N = a·ln R + b over the trimmed window.
type Result struct {
	Dimension float64
	Intercept float64
	Series    []Sample
}
