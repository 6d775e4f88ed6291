// Package risk estimates, per cell, how likely the fire is to reach it
// within a short horizon.
//
// An Estimator runs Rollouts independent forward simulations from a
// snapshot of the ship. Each rollout clones the snapshot and applies Horizon
// fire ticks to its private copy. The estimate for a cell is the fraction of
// rollouts in which it caught fire at any point. Cells that were already
// burning in the snapshot, and cells that never caught, are absent from the
// Map; a missing entry reads as zero.
//
// Rollouts share nothing mutable and run on an errgroup bounded by Workers.
// Each rollout draws from its own stream derived from the caller's
// generator before any goroutine starts, so the Map depends only on the
// caller's seed and never on Workers or scheduling.
//
// Errors:
//
//   - ErrOptionViolation: a non-positive Rollouts or Workers, or a negative
//     Horizon.
//   - fire.ErrNeighborCount and fire.ErrBadFlammability propagate from the
//     spread model.
package risk
