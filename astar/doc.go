// Package astar finds shortest routes across a ship deck for the agent.
//
// One search core serves three policies:
//
//   - Plain: neighbors are the open cells. Burning cells are never entered.
//   - AvoidFire: as Plain, but an open cell touching fire is treated as
//     blocked for this query. No fallback happens here; callers retry with
//     Plain when it fails.
//   - RiskWeighted: as Plain, but a neighbor present in the supplied risk map
//     has risk×scale added to its frontier priority. Dangerous cells are
//     discouraged, never forbidden.
//
// The frontier is a binary heap keyed by g+h (+penalty), where g is the step
// count from start and h is the Manhattan distance to goal. Entries are
// pushed again when a shorter g is found and stale ones are skipped on pop
// (lazy decrease-key). Success is declared when goal is popped, not when it
// is first discovered. Equal priorities pop in insertion order.
//
// "No route" is a normal outcome: Search returns (nil, false). A route from
// a cell to itself is a one-cell path of distance 0.
//
// Complexity: O(N log N) time and O(N) memory on an N-cell deck for Plain
// and AvoidFire.
package astar
