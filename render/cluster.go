package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/katalvlaran/dla/grid"
)

// ClusterImage renders g as a one-pixel-per-cell raster: white
// background, black occupied cells — the greyscale look of the classic
// DLA plots.
// Complexity: O(size²).
func ClusterImage(g *grid.Grid) *image.RGBA {
	size := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	for _, p := range g.Cells() {
		img.Set(p.X, p.Y, color.Black)
	}

	return img
}

// WriteClusterPNG encodes the occupancy raster of g to w as PNG.
func WriteClusterPNG(g *grid.Grid, w io.Writer) error {
	return png.Encode(w, ClusterImage(g))
}

// SaveClusterPNG writes the occupancy raster to the file at path.
func SaveClusterPNG(g *grid.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteClusterPNG(g, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
