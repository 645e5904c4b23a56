package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dla/fractal"
	"github.com/katalvlaran/dla/grid"
	"github.com/katalvlaran/dla/render"
)

//----------------------------------------------------------------------------//
// Cluster raster Tests
//----------------------------------------------------------------------------//

// TestClusterImage verifies pixel geometry: one pixel per cell, black at
// occupied cells, white elsewhere.
func TestClusterImage(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)
	g.Attach(0, 4)

	img := render.ClusterImage(g)
	assert.Equal(t, 5, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())

	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, black, img.RGBAAt(2, 2), "seed pixel")
	assert.Equal(t, black, img.RGBAAt(0, 4), "attached pixel")
	assert.Equal(t, white, img.RGBAAt(1, 1), "empty pixel")
}

// TestWriteClusterPNG verifies the stream decodes back as a PNG of the
// right size.
func TestWriteClusterPNG(t *testing.T) {
	g, err := grid.New(9)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteClusterPNG(g, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 9, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())
}

//----------------------------------------------------------------------------//
// Fractal chart Tests
//----------------------------------------------------------------------------//

// TestWriteFractalPNG renders a small synthetic result and checks the
// output is a decodable PNG.
func TestWriteFractalPNG(t *testing.T) {
	res := fractal.Result{
		Dimension: 1.7,
		Intercept: 0.4,
		Series: []fractal.Sample{
			{LogR: math.Log(1), LogN: math.Log(2)},
			{LogR: math.Log(2), LogN: math.Log(6)},
			{LogR: math.Log(3), LogN: math.Log(11)},
			{LogR: math.Log(4), LogN: math.Log(17)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render.WriteFractalPNG(res, &buf))

	_, err := png.Decode(&buf)
	assert.NoError(t, err, "chart output must be a valid PNG")
}

// TestWriteFractalPNG_EmptySeries rejects series too short to draw.
func TestWriteFractalPNG_EmptySeries(t *testing.T) {
	var buf bytes.Buffer

	err := render.WriteFractalPNG(fractal.Result{}, &buf)
	assert.ErrorIs(t, err, render.ErrEmptySeries)

	one := fractal.Result{Series: []fractal.Sample{{LogR: 0, LogN: 0}}}
	err = render.WriteFractalPNG(one, &buf)
	assert.ErrorIs(t, err, render.ErrEmptySeries)
}
