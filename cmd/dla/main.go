// Command dla loads a saved cluster or grows a fresh one, estimates its
// box-counting fractal dimension, and writes the cluster file plus two
// PNGs (the occupancy raster and the log-log diagnostic chart).
//
// Usage:
//
//	dla <cluster-file>
//	dla <size> <particles>
//
// With two arguments, the first is tried as a cluster file; if that fails
// for any reason and both arguments parse as integers, a fresh simulation
// runs with them as grid size and particle count.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/dla/fractal"
	"github.com/katalvlaran/dla/grid"
	"github.com/katalvlaran/dla/growth"
	"github.com/katalvlaran/dla/render"
)

const (
	clusterFile = "cluster.txt"
	clusterPNG  = "cluster.png"
	fractalPNG  = "fractal.png"
)

var errUsage = errors.New("usage: dla <cluster-file> | dla <size> <particles>")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "dla:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	g, err := obtain(args)
	if err != nil {
		return err
	}
	fmt.Printf("cluster: %d cells on a %d×%d grid, center (%d,%d)\n",
		g.Occupied(), g.Size(), g.Size(), g.Center().X, g.Center().Y)

	res, err := fractal.Estimate(g, fractal.DefaultOptions())
	if err != nil {
		// A degenerate cluster still gets persisted and rendered below.
		fmt.Fprintln(os.Stderr, "dla: fractal estimate:", err)
	} else {
		fmt.Printf("estimated fractal dimension: %v\n", res.Dimension)
		if err = render.SaveFractalPNG(res, fractalPNG); err != nil {
			return err
		}
		fmt.Println("wrote", fractalPNG)
	}

	if err = grid.WriteFile(g, clusterFile); err != nil {
		return err
	}
	fmt.Println("wrote", clusterFile)

	if err = render.SaveClusterPNG(g, clusterPNG); err != nil {
		return err
	}
	fmt.Println("wrote", clusterPNG)

	return nil
}

// obtain resolves the argument policy: one arg means "load this file";
// two args mean "load, and on any load failure fall back to simulating
// with the args as size and particle count".
func obtain(args []string) (*grid.Grid, error) {
	switch len(args) {
	case 1:
		return grid.ReadFile(args[0])
	case 2:
		if g, err := grid.ReadFile(args[0]); err == nil {
			return g, nil
		}
		size, sizeErr := strconv.Atoi(args[0])
		particles, partErr := strconv.Atoi(args[1])
		if sizeErr != nil || partErr != nil {
			return nil, errUsage
		}
		opts := growth.DefaultOptions()
		opts.Seed = time.Now().UnixNano()
		return growth.Grow(size, particles, opts)
	default:
		return nil, errUsage
	}
}
