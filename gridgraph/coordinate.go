package gridgraph

import (
	"fmt"
	"slices"
)

// Coordinate is a (Row, Col) cell address. Row grows downward, Col grows
// to the right. Values compare and hash by value, so a Coordinate can key
// maps and sets directly.
type Coordinate struct {
	Row int
	Col int
}

// Up returns the cell one row above c.
func (c Coordinate) Up() Coordinate { return Coordinate{Row: c.Row - 1, Col: c.Col} }

// Down returns the cell one row below c.
func (c Coordinate) Down() Coordinate { return Coordinate{Row: c.Row + 1, Col: c.Col} }

// Left returns the cell one column to the left of c.
func (c Coordinate) Left() Coordinate { return Coordinate{Row: c.Row, Col: c.Col - 1} }

// Right returns the cell one column to the right of c.
func (c Coordinate) Right() Coordinate { return Coordinate{Row: c.Row, Col: c.Col + 1} }

// Neighbors returns the four orthogonal neighbors in Up, Down, Left, Right
// order. Out-of-grid coordinates are included; callers filter them.
func (c Coordinate) Neighbors() [4]Coordinate {
	return [4]Coordinate{c.Up(), c.Down(), c.Left(), c.Right()}
}

// Manhattan returns |ΔRow| + |ΔCol| between c and o.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether o is one orthogonal step away from c.
func (c Coordinate) Adjacent(o Coordinate) bool {
	return c.Manhattan(o) == 1
}

// Compare orders coordinates row-major. It returns -1, 0 or +1.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.Row < o.Row:
		return -1
	case c.Row > o.Row:
		return 1
	case c.Col < o.Col:
		return -1
	case c.Col > o.Col:
		return 1
	}
	return 0
}

// Step returns the neighbor of c in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	switch d {
	case North:
		return c.Up()
	case South:
		return c.Down()
	case West:
		return c.Left()
	case East:
		return c.Right()
	}
	return c
}

// String renders c as "(row, col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Sort orders cells row-major in place. Set iteration order is random, so
// every randomized choice over a set goes through Sort first to keep seeded
// runs reproducible.
func Sort(cells []Coordinate) {
	slices.SortFunc(cells, Coordinate.Compare)
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	// North moves one row up.
	North Direction = iota
	// South moves one row down.
	South
	// West moves one column left.
	West
	// East moves one column right.
	East
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionTo returns the move that takes from to to. ok is false when the
// two cells are not orthogonally adjacent.
func DirectionTo(from, to Coordinate) (d Direction, ok bool) {
	switch to {
	case from.Up():
		return North, true
	case from.Down():
		return South, true
	case from.Left():
		return West, true
	case from.Right():
		return East, true
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
