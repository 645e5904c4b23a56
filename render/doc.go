// Package render turns simulation results into images: the cluster as a
// black-on-white occupancy raster, and the fractal series as a log-log
// chart with the fitted line overlaid.
//
// What:
//
//   - ClusterImage / WriteClusterPNG / SaveClusterPNG — one pixel per
//     grid cell, black where occupied.
//   - WriteFractalPNG / SaveFractalPNG — go-chart plot of the
//     (ln R, ln N) samples plus the fitted a·ln R + b line.
//
// This package is purely presentational: it only reads the grid and the
// estimator's Result, never mutates either.
//
// Errors:
//
//   - ErrEmptySeries: a chart needs at least 2 samples to draw.
package render
