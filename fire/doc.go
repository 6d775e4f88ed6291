// Package fire advances the hazard on a ship by one discrete tick.
//
// A cell with K burning neighbors ignites with probability
//
//	pK = 1 − (1−q)^K,   K = 0..4
//
// where q is the ship's flammability. p0 is always 0, so only the fire
// frontier (open cells touching fire) is ever sampled.
//
// Ticks are synchronous: every draw of a tick sees the fire as it stood when
// the tick began, and the cells that ignite are applied together at the end.
// A cell that catches this tick never counts as a burning neighbor for
// another cell in the same tick.
//
// Determinism: frontier cells are sampled in row-major order with one
// rng.Float64() draw each, so a fixed seed reproduces the same spread.
//
// Errors:
//
//   - ErrBadFlammability: q outside [0,1].
//   - ErrNeighborCount: a probability lookup for K outside 0..4. This means a
//     neighbor counting bug and aborts the trial.
package fire
