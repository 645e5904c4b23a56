// Package grid holds the occupancy state of a DLA cluster on a square
// lattice and answers the adjacency and box-counting queries the growth
// engine and the fractal estimator need.
//
// What:
//
//   - Grid wraps a size×size boolean occupancy slab with its seed Center.
//   - IsOccupied / HasOccupiedNeighbor treat out-of-range coordinates as
//     empty — bounds errors cannot occur, only "not part of the cluster".
//   - Attach marks a cell occupied; occupancy is monotonic (no clearing).
//   - CountInBox counts occupied cells in a half-open box around a point.
//   - Read/Write (de)serialize the cluster in a plain text format.
//
// Why:
//
//   - DLA growth: walkers probe neighbors millions of times near the
//     cluster rim; queries must be branch-cheap and panic-free.
//   - Box counting: the estimator sweeps growing boxes past the grid
//     edge; out-of-range reads must simply contribute nothing.
//   - Persistence: long simulations are saved and re-analyzed later.
//
// Complexity:
//
//   - IsOccupied, HasOccupiedNeighbor, Attach: O(1).
//   - CountInBox: O(R²) for box radius R.
//   - Read, Write: O(W×H + cells).
//
// Errors:
//
//   - ErrInvalidSize: requested grid side length is not positive.
//   - ErrMalformedClusterFile: unparsable header or coordinate line.
package grid
