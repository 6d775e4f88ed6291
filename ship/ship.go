package ship

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/shipfire/gridgraph"
	"github.com/katalvlaran/shipfire/maze"
	"github.com/katalvlaran/shipfire/randsrc"
)

var (
	// ErrPlacement indicates the deck has too few open cells for agent, goal and ignition.
	ErrPlacement = errors.New("ship: need at least three open cells to place agent, goal and fire")

	// ErrBadFlammability indicates a flammability outside [0,1].
	ErrBadFlammability = errors.New("ship: flammability must be in [0,1]")

	// ErrInvalidMove indicates a move onto a cell that is neither open nor burning.
	ErrInvalidMove = errors.New("ship: move target is neither open nor burning")
)

// Ship is the live world of one trial.
type Ship struct {
	size         int
	open         mapset.Set[gridgraph.Coordinate]
	fire         mapset.Set[gridgraph.Coordinate]
	agent        gridgraph.Coordinate
	goal         gridgraph.Coordinate
	flammability float64
}

// New generates a size×size deck and places the agent, the goal and the
// first burning cell uniformly at random among open cells, pairwise distinct.
// maze options pass through to the layout generator.
func New(size int, flammability float64, rng *rand.Rand, opts ...maze.Option) (*Ship, error) {
	if flammability < 0 || flammability > 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadFlammability, flammability)
	}
	rng = randsrc.OrDefault(rng)
	open, err := maze.Generate(size, rng, opts...)
	if err != nil {
		return nil, err
	}
	s := &Ship{
		size:         size,
		open:         open,
		fire:         mapset.New[gridgraph.Coordinate](),
		flammability: flammability,
	}
	if err := s.place(rng); err != nil {
		return nil, err
	}
	return s, nil
}

// place draws goal, agent and ignition indices over the row-major list of
// open cells, redrawing on collision.
func (s *Ship) place(rng *rand.Rand) error {
	cells := s.OpenCells()
	n := len(cells)
	if n < 3 {
		return fmt.Errorf("%w: have %d", ErrPlacement, n)
	}
	goal := rng.Intn(n)
	agent := rng.Intn(n)
	for agent == goal {
		agent = rng.Intn(n)
	}
	ignition := rng.Intn(n)
	for ignition == goal || ignition == agent {
		ignition = rng.Intn(n)
	}
	s.goal = cells[goal]
	s.agent = cells[agent]
	s.Ignite(cells[ignition])
	return nil
}

// Size returns the side length of the deck.
func (s *Ship) Size() int { return s.size }

// Flammability returns q, the per-neighbor ignition probability.
func (s *Ship) Flammability() float64 { return s.flammability }

// Agent returns the agent's cell.
func (s *Ship) Agent() gridgraph.Coordinate { return s.agent }

// Goal returns the goal cell.
func (s *Ship) Goal() gridgraph.Coordinate { return s.goal }

// InBounds reports whether c lies on the deck.
func (s *Ship) InBounds(c gridgraph.Coordinate) bool {
	return c.Row >= 0 && c.Row < s.size && c.Col >= 0 && c.Col < s.size
}

// IsOpen reports whether c is passable and not burning.
func (s *Ship) IsOpen(c gridgraph.Coordinate) bool { return s.open.Has(c) }

// IsBurning reports whether c is on fire.
func (s *Ship) IsBurning(c gridgraph.Coordinate) bool { return s.fire.Has(c) }

// IsBlocked reports whether c is neither open nor burning. Off-deck cells
// count as blocked.
func (s *Ship) IsBlocked(c gridgraph.Coordinate) bool {
	return !s.open.Has(c) && !s.fire.Has(c)
}

// OpenCount returns the number of open cells.
func (s *Ship) OpenCount() int { return s.open.Size() }

// FireCount returns the number of burning cells.
func (s *Ship) FireCount() int { return s.fire.Size() }

// OpenCells returns the open cells in row-major order.
func (s *Ship) OpenCells() []gridgraph.Coordinate { return sortedCells(s.open) }

// FireCells returns the burning cells in row-major order.
func (s *Ship) FireCells() []gridgraph.Coordinate { return sortedCells(s.fire) }

// AtGoal reports whether the agent stands on the goal.
func (s *Ship) AtGoal() bool { return s.agent == s.goal }

// AgentBurning reports whether the agent's cell is on fire.
func (s *Ship) AgentBurning() bool { return s.fire.Has(s.agent) }

// GoalBurning reports whether the goal cell is on fire.
func (s *Ship) GoalBurning() bool { return s.fire.Has(s.goal) }

// OpenNeighbors returns the open neighbors of c in Up, Down, Left, Right order.
func (s *Ship) OpenNeighbors(c gridgraph.Coordinate) []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, 0, 4)
	for _, nb := range c.Neighbors() {
		if s.open.Has(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// BurningNeighbors counts the burning neighbors of c (0..4).
func (s *Ship) BurningNeighbors(c gridgraph.Coordinate) int {
	k := 0
	for _, nb := range c.Neighbors() {
		if s.fire.Has(nb) {
			k++
		}
	}
	return k
}

// FireFrontier returns the open cells with at least one burning neighbor,
// row-major. These are the only cells that can ignite on the next tick.
func (s *Ship) FireFrontier() []gridgraph.Coordinate {
	frontier := mapset.New[gridgraph.Coordinate]()
	s.fire.Each(func(c gridgraph.Coordinate) {
		for _, nb := range c.Neighbors() {
			if s.open.Has(nb) {
				frontier.Put(nb)
			}
		}
	})
	return sortedCells(frontier)
}

// Ignite moves c from the open set to the burning set. It reports whether
// the cell changed; igniting a blocked or already burning cell is a no-op.
func (s *Ship) Ignite(c gridgraph.Coordinate) bool {
	if !s.open.Has(c) {
		return false
	}
	s.open.Remove(c)
	s.fire.Put(c)
	return true
}

// MoveAgent steps the agent one cell in direction d. The target may be
// burning; a blocked or off-deck target returns ErrInvalidMove.
func (s *Ship) MoveAgent(d gridgraph.Direction) error {
	target := s.agent.Step(d)
	if s.IsBlocked(target) {
		return fmt.Errorf("%w: %s from %v to %v", ErrInvalidMove, d, s.agent, target)
	}
	s.agent = target
	return nil
}

// Clone returns an independent deep copy with identical sets and scalars.
func (s *Ship) Clone() *Ship {
	return &Ship{
		size:         s.size,
		open:         copySet(s.open),
		fire:         copySet(s.fire),
		agent:        s.agent,
		goal:         s.goal,
		flammability: s.flammability,
	}
}

// OpenGraph returns the open cells as a GridGraph, e.g. for BFS distances.
func (s *Ship) OpenGraph() (*gridgraph.GridGraph, error) {
	return gridgraph.FromSet(s.size, s.open)
}

// Repair joins every island of passable (open or burning) cells to the
// largest one by opening the fewest blocked cells, and returns the cells it
// opened. Generated decks are always connected; this is for hand-authored
// layouts.
func (s *Ship) Repair() ([]gridgraph.Coordinate, error) {
	passable := copySet(s.open)
	s.fire.Each(passable.Put)
	gg, err := gridgraph.FromSet(s.size, passable)
	if err != nil {
		return nil, err
	}
	opened, err := gg.Connect()
	for _, c := range opened {
		s.open.Put(c)
	}
	return opened, err
}

func copySet(src mapset.Set[gridgraph.Coordinate]) mapset.Set[gridgraph.Coordinate] {
	dst := mapset.New[gridgraph.Coordinate]()
	src.Each(dst.Put)
	return dst
}

func sortedCells(set mapset.Set[gridgraph.Coordinate]) []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, 0, set.Size())
	set.Each(func(c gridgraph.Coordinate) { out = append(out, c) })
	gridgraph.Sort(out)
	return out
}
