package gridgraph

import (
	"github.com/zyedidia/generic/mapset"
)

// neighborOffsets lists 4-connectivity steps as (ΔRow, ΔCol) in
// Up, Right, Down, Left order.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// GridGraph is a rectangular passability mask. Passable cells are the
// vertices; orthogonal neighbors share a unit edge.
// Width and Height define dimensions; passable is stored row-major.
type GridGraph struct {
	Width, Height int
	passable      []bool
}

// FromSet builds a size×size GridGraph whose passable cells are exactly the
// members of cells. Returns ErrEmptyGrid if size ≤ 0 and ErrOutOfBounds if
// any member lies outside the grid.
// Complexity: O(size² + |cells|).
func FromSet(size int, cells mapset.Set[Coordinate]) (*GridGraph, error) {
	if size <= 0 {
		return nil, ErrEmptyGrid
	}
	gg := &GridGraph{Width: size, Height: size, passable: make([]bool, size*size)}
	var err error
	cells.Each(func(c Coordinate) {
		if err != nil {
			return
		}
		if !gg.InBounds(c) {
			err = ErrOutOfBounds
			return
		}
		gg.passable[gg.index(c)] = true
	})
	if err != nil {
		return nil, err
	}

	return gg, nil
}

// From2D builds a GridGraph from a non-empty rectangular 2D slice, treating
// values ≥ 1 as passable. The input is copied.
// Returns ErrEmptyGrid for no rows or columns, ErrNonRectangular for ragged rows.
func From2D(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	gg := &GridGraph{Width: w, Height: h, passable: make([]bool, w*h)}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			gg.passable[r*w+c] = values[r][c] >= 1
		}
	}

	return gg, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (gg *GridGraph) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// Passable reports whether c is in bounds and passable.
func (gg *GridGraph) Passable(c Coordinate) bool {
	return gg.InBounds(c) && gg.passable[gg.index(c)]
}

// index maps c to a row-major index: Row*Width + Col.
func (gg *GridGraph) index(c Coordinate) int {
	return c.Row*gg.Width + c.Col
}

// At converts a row-major index back to a Coordinate.
func (gg *GridGraph) At(idx int) Coordinate {
	return Coordinate{Row: idx / gg.Width, Col: idx % gg.Width}
}

// neighbors calls fn for every in-bounds orthogonal neighbor index of u.
func (gg *GridGraph) neighbors(u int, fn func(v int)) {
	uc := gg.At(u)
	for _, d := range neighborOffsets {
		vc := Coordinate{Row: uc.Row + d[0], Col: uc.Col + d[1]}
		if gg.InBounds(vc) {
			fn(gg.index(vc))
		}
	}
}
