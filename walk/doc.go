// Package walk generates the randomness a DLA simulation consumes:
// unbiased unit lattice steps, launch points on a circle around the seed,
// and the integer distance metric every radius comparison uses.
//
// What:
//
//   - Walker owns its random source; New(seed) is the only way to get one.
//   - Step returns one of the four axis-aligned unit moves, each with
//     probability exactly 1/4.
//   - LaunchPoint samples a uniform angle and truncates (not rounds) the
//     real coordinates to the lattice.
//   - Distance is the ceiling of the Euclidean norm — the integer unit
//     used for every cluster-radius comparison.
//
// Why:
//
//   - Reproducibility: no ambient process-wide RNG state; equal seeds
//     give identical walks on every platform.
//   - Parallelism: Derive produces decorrelated child streams so
//     concurrent walkers stay independent.
//
// Errors: none — every operation is total.
package walk
