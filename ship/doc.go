// Package ship owns the mutable world of a single trial: which cells are
// open, which are burning, where the agent stands and where the goal is.
//
// Every in-bounds cell is exactly one of blocked, open or burning. The open
// and burning sets are disjoint, and the agent and goal never stand on a
// blocked cell. The world changes in two ways only: Ignite moves a cell from
// open to burning, and MoveAgent steps the agent onto an adjacent open or
// burning cell (stepping into fire is allowed; it is how a trial is lost).
//
// A Ship is exclusively owned by whoever advances it. Risk rollouts and
// what-if searches work on Clone, never on the live world.
//
// Errors:
//
//   - ErrPlacement: fewer than three open cells to place agent, goal and fire.
//   - ErrBadFlammability: flammability outside [0,1].
//   - ErrInvalidMove: the move target is neither open nor burning.
//   - ErrBadLayout: a layout string cannot be parsed.
package ship
