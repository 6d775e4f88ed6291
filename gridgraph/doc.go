// Package gridgraph treats a square ship deck of cells as a graph, enabling
// coordinate arithmetic, component analysis and minimal-cost "island" repair.
//
// What:
//
//   - Coordinate is an immutable (Row, Col) value with Up/Down/Left/Right
//     accessors. Accessors never bounds-check; the consuming grid does.
//   - GridGraph wraps a rectangular passability mask (built from a cell set
//     or from a [][]int where values ≥ 1 are passable).
//   - Identifies connected components ("islands") under 4-connectivity.
//   - Computes unweighted BFS distances from a cell (a reference oracle for
//     heuristic searches).
//   - Computes minimal conversions (0-1 BFS) to connect two islands and
//     repairs a split region by joining every island to the largest one.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - Distances:           O(W×H), Memory: O(W×H).
//   - ExpandIsland:        O(W×H), Memory: O(W×H).
//   - Connect:             O(k×W×H) for k islands.
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//   - ErrNotPassable: a BFS source is not a passable cell.
package gridgraph
