// Package maze generates the deck layout of a ship: a random, fully
// connected region of open cells inside an N×N grid.
//
// Algorithm:
//
//  1. Open a uniformly random start cell.
//  2. Growth: while some blocked cell has exactly one open neighbor, open
//     one such candidate chosen uniformly at random. Requiring exactly one
//     open neighbor keeps the region corridor-like instead of blob-like.
//  3. Culling: collect the dead ends (open cells with exactly one open
//     neighbor) and, for a fraction of them chosen uniformly without
//     replacement, open one random in-bounds blocked neighbor. Culling is
//     best effort: a dead end with no blocked neighbor is skipped, never
//     retried.
//
// Every opened cell touches the open region at the moment it is opened, so
// the result is always a single connected component.
//
// Complexity: O(N²) time and memory; candidates are tracked incrementally.
//
// Errors:
//
//   - ErrBadSize: N ≤ 0.
//   - ErrOptionViolation: an Option was given an invalid value.
package maze
