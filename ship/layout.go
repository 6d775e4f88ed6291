package ship

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/shipfire/gridgraph"
)

// ErrBadLayout indicates a layout string that does not describe a valid deck.
var ErrBadLayout = errors.New("ship: malformed layout")

// Cell symbols used by String and accepted by Parse.
const (
	SymbolOpen    = 'O'
	SymbolBlocked = '▓'
	SymbolFire    = 'F'
	SymbolAgent   = 'B'
	SymbolGoal    = 'G'

	// The agent or goal standing on a burning cell.
	SymbolAgentBurning = 'b'
	SymbolGoalBurning  = 'g'
)

// Parse builds a Ship from a text layout, one row per line. Accepted cells:
// O or '.' open, ▓ or '#' blocked, F burning, B agent, G goal, and b or g
// for the agent or goal on a burning cell. Spaces and '|' are ignored, and
// lines made only of '_' or '¯' are skipped, so the output of String parses
// back. The deck must be square with exactly one agent and one goal.
func Parse(layout string, flammability float64) (*Ship, error) {
	if flammability < 0 || flammability > 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadFlammability, flammability)
	}

	var rows [][]rune
	for _, line := range strings.Split(layout, "\n") {
		row := []rune(strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '|' || r == '\r' {
				return -1
			}
			return r
		}, line))
		if len(row) == 0 || strings.Trim(string(row), "_¯") == "" {
			continue
		}
		rows = append(rows, row)
	}

	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadLayout)
	}
	s := &Ship{
		size:         size,
		open:         mapset.New[gridgraph.Coordinate](),
		fire:         mapset.New[gridgraph.Coordinate](),
		flammability: flammability,
	}
	agents, goals := 0, 0
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, r, len(row), size)
		}
		for col, sym := range row {
			c := gridgraph.Coordinate{Row: r, Col: col}
			switch sym {
			case SymbolOpen, '.':
				s.open.Put(c)
			case SymbolBlocked, '#':
			case SymbolFire:
				s.fire.Put(c)
			case SymbolAgent:
				s.open.Put(c)
				s.agent = c
				agents++
			case SymbolGoal:
				s.open.Put(c)
				s.goal = c
				goals++
			case SymbolAgentBurning:
				s.fire.Put(c)
				s.agent = c
				agents++
			case SymbolGoalBurning:
				s.fire.Put(c)
				s.goal = c
				goals++
			default:
				return nil, fmt.Errorf("%w: unknown symbol %q at %v", ErrBadLayout, sym, c)
			}
		}
	}
	if agents != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: want one agent and one goal, got %d and %d", ErrBadLayout, agents, goals)
	}
	return s, nil
}

// String renders the deck framed by a header and footer rule. The agent
// wins over the goal; either on a burning cell is drawn in lower case.
func (s *Ship) String() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(strings.Repeat("_ ", s.size))
	b.WriteByte('\n')
	for r := 0; r < s.size; r++ {
		b.WriteString("| ")
		for col := 0; col < s.size; col++ {
			b.WriteRune(s.symbol(gridgraph.Coordinate{Row: r, Col: col}))
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	b.WriteString("  ")
	b.WriteString(strings.Repeat("¯ ", s.size))
	return b.String()
}

func (s *Ship) symbol(c gridgraph.Coordinate) rune {
	switch {
	case c == s.agent && s.fire.Has(c):
		return SymbolAgentBurning
	case c == s.agent:
		return SymbolAgent
	case c == s.goal && s.fire.Has(c):
		return SymbolGoalBurning
	case c == s.goal:
		return SymbolGoal
	case s.fire.Has(c):
		return SymbolFire
	case s.open.Has(c):
		return SymbolOpen
	}
	return SymbolBlocked
}
