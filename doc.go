// Package dla grows diffusion-limited aggregation clusters on a square
// lattice and measures their fractal geometry — from single random walkers
// to box-counting dimension estimates.
//
// 🚀 What is dla?
//
//	A small, deterministic simulation library that brings together:
//		• Occupancy grid: bounds-safe adjacency & box queries over a 2D lattice
//		• Random walkers: seedable unit-step walkers with derived streams
//		• Growth engine: release → walk → stick, with drift re-launch control
//		• Fractal estimator: box counting + OLS fit over log-log data
//		• Collaborators: cluster file persistence, PNG & chart rendering, CLI
//
// ✨ Why choose dla?
//
//   - Reproducible – every random source is an explicit, seedable walker
//   - Bounds-safe – out-of-grid queries answer "empty", never panic
//   - Pure Go core – simulation packages carry no cgo and no hidden deps
//   - Measurable – the estimator returns the full log-log series, not just a slope
//
// Under the hood, everything is organized by topic:
//
//	grid/    — cluster occupancy grid, adjacency & box counting, file format
//	walk/    — unbiased lattice steps, launch points, integer distances
//	growth/  — sequential and parallel cluster growth engines
//	fractal/ — box-count series and least-squares dimension fit
//	render/  — occupancy raster (PNG) and log-log overlay chart
//	cmd/dla/ — load-or-simulate command line entry point
//
// Quick ASCII example:
//
//	    · · # · ·
//	    · # # · ·
//	    · · # # ·
//	    · · # · ·
//
//	a young cluster: walkers stuck where they first touched the seed's arms.
//
// Dive into the package docs for the growth algorithm, the plateau rule
// that ends box counting, and the tunables each stage exposes.
//
//	go get github.com/katalvlaran/dla
package dla
