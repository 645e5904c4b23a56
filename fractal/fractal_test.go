package fractal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dla/fractal"
	"github.com/katalvlaran/dla/grid"
	"github.com/katalvlaran/dla/growth"
)

//----------------------------------------------------------------------------//
// Fit Tests
//----------------------------------------------------------------------------//

// TestFit_SyntheticLine feeds a dimension-1 line in log-log space and
// expects slope ≈ 1 with zero intercept.
func TestFit_SyntheticLine(t *testing.T) {
	series := []fractal.Sample{
		{LogR: math.Log(1), LogN: math.Log(1)},
		{LogR: math.Log(2), LogN: math.Log(2)},
		{LogR: math.Log(3), LogN: math.Log(3)},
	}

	slope, intercept, err := fractal.Fit(series, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, slope, 1e-12, "a straight ln N = ln R line has slope 1")
	assert.InDelta(t, 0.0, intercept, 1e-12)
}

// TestFit_Trimming verifies the window selection: trailing plateau points
// are dropped and the fit recovers the clean slope.
func TestFit_Trimming(t *testing.T) {
	// Exact slope-2 line, then a flat plateau the trim must cut away.
	series := make([]fractal.Sample, 0, 8)
	for r := 1; r <= 6; r++ {
		series = append(series, fractal.Sample{
			LogR: math.Log(float64(r)),
			LogN: 2 * math.Log(float64(r)),
		})
	}
	plateau := series[len(series)-1].LogN
	series = append(series,
		fractal.Sample{LogR: math.Log(7), LogN: plateau},
		fractal.Sample{LogR: math.Log(8), LogN: plateau},
	)

	slope, _, err := fractal.Fit(series, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, slope, 1e-12, "plateau excluded, slope is exact")

	slope, _, err = fractal.Fit(series, 0, 0)
	require.NoError(t, err)
	assert.Less(t, slope, 2.0, "plateau included, slope is dragged down")
}

// TestFit_Errors covers the degenerate windows.
func TestFit_Errors(t *testing.T) {
	two := []fractal.Sample{{LogR: 0, LogN: 0}, {LogR: 1, LogN: 1}}

	cases := []struct {
		name               string
		series             []fractal.Sample
		trimStart, trimEnd int
		err                error
	}{
		{"NegativeTrimStart", two, -1, 0, fractal.ErrBadTrim},
		{"NegativeTrimEnd", two, 0, -2, fractal.ErrBadTrim},
		{"Empty", nil, 0, 0, fractal.ErrInsufficientData},
		{"OnePoint", two[:1], 0, 0, fractal.ErrInsufficientData},
		{"WindowInverted", two, 3, 3, fractal.ErrInsufficientData},
		{"WindowEaten", two, 1, 1, fractal.ErrInsufficientData},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := fractal.Fit(tc.series, tc.trimStart, tc.trimEnd)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Estimate Tests
//----------------------------------------------------------------------------//

// TestEstimate_SolidSquare measures a fully occupied grid: mass scales as
// the area of the box, so the dimension must come out at exactly 2.
func TestEstimate_SolidSquare(t *testing.T) {
	g, err := grid.New(64)
	require.NoError(t, err)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			g.Attach(x, y)
		}
	}

	res, err := fractal.Estimate(g, fractal.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Dimension, 1e-9, "solid square is two-dimensional")
	assert.NotEmpty(t, res.Series)
}

// TestEstimate_SeedOnly verifies the single-point cluster terminates (the
// plateau never clears PlateauMin, so the sweep ends at full grid
// coverage) and then fails the fit with ErrInsufficientData.
func TestEstimate_SeedOnly(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	res, err := fractal.Estimate(g, fractal.DefaultOptions())
	assert.ErrorIs(t, err, fractal.ErrInsufficientData)
	assert.NotEmpty(t, res.Series, "the collected series still reports out for diagnostics")
	for _, s := range res.Series {
		assert.Equal(t, 0.0, s.LogN, "every box holds exactly the seed: ln 1 = 0")
	}
}

// TestEstimate_NilGrid guards the nil input path.
func TestEstimate_NilGrid(t *testing.T) {
	_, err := fractal.Estimate(nil, fractal.DefaultOptions())
	assert.ErrorIs(t, err, fractal.ErrNilGrid)
}

// TestEstimate_GrownCluster runs the full pipeline: a seeded DLA cluster
// must land in the plausible 2D-DLA dimension band.
func TestEstimate_GrownCluster(t *testing.T) {
	opts := growth.DefaultOptions()
	opts.Seed = 3

	g, err := growth.Grow(201, 400, opts)
	require.NoError(t, err)

	res, err := fractal.Estimate(g, fractal.DefaultOptions())
	require.NoError(t, err)
	assert.Greater(t, res.Dimension, 1.0, "a branching cluster is more than a line")
	assert.Less(t, res.Dimension, 2.2, "and far from filling the plane")
	assert.GreaterOrEqual(t, len(res.Series), 2)
}

// TestEstimate_SeriesMonotonicLogR verifies the series is ordered by
// radius, which the plotting collaborator relies on.
func TestEstimate_SeriesMonotonicLogR(t *testing.T) {
	opts := growth.DefaultOptions()
	opts.Seed = 3

	g, err := growth.Grow(101, 100, opts)
	require.NoError(t, err)

	res, err := fractal.Estimate(g, fractal.DefaultOptions())
	require.NoError(t, err)
	for i := 1; i < len(res.Series); i++ {
		assert.Greater(t, res.Series[i].LogR, res.Series[i-1].LogR)
		assert.GreaterOrEqual(t, res.Series[i].LogN, res.Series[i-1].LogN,
			"box counts never shrink, so neither do their logs")
	}
}
