package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/dla/fractal"
)

// ErrEmptySeries indicates the fractal series is too short to chart.
var ErrEmptySeries = errors.New("render: fractal series needs at least 2 samples")

// WriteFractalPNG renders the log-log box-count series of res to w as a
// PNG chart: the measured (ln R, ln N) points in blue, the fitted line
// Dimension·ln R + Intercept in red.
func WriteFractalPNG(res fractal.Result, w io.Writer) error {
	if len(res.Series) < 2 {
		return ErrEmptySeries
	}

	xs := make([]float64, len(res.Series))
	ys := make([]float64, len(res.Series))
	fit := make([]float64, len(res.Series))
	for i, s := range res.Series {
		xs[i] = s.LogR
		ys[i] = s.LogN
		fit[i] = res.Dimension*s.LogR + res.Intercept
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("box counting: dimension %.3f", res.Dimension),
		XAxis: chart.XAxis{
			Name:  "ln R",
			Range: &chart.ContinuousRange{Min: floats.Min(xs), Max: floats.Max(xs)},
		},
		YAxis: chart.YAxis{
			Name: "ln N",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "measured",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2.0,
				},
			},
			chart.ContinuousSeries{
				Name:    "fit",
				XValues: xs,
				YValues: fit,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2.0,
				},
			},
		},
	}

	return graph.Render(chart.PNG, w)
}

// SaveFractalPNG writes the log-log chart to the file at path.
func SaveFractalPNG(res fractal.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteFractalPNG(res, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
