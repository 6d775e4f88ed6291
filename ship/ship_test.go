package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shipfire/gridgraph"
	"github.com/katalvlaran/shipfire/maze"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/ship"
)

func at(r, c int) gridgraph.Coordinate { return gridgraph.Coordinate{Row: r, Col: c} }

// requirePartition checks that every in-bounds cell is exactly one of
// blocked, open or burning, and that agent and goal stand on passable cells.
func requirePartition(t *testing.T, s *ship.Ship) {
	t.Helper()
	for r := 0; r < s.Size(); r++ {
		for c := 0; c < s.Size(); c++ {
			cell := at(r, c)
			states := 0
			for _, in := range []bool{s.IsOpen(cell), s.IsBurning(cell), s.IsBlocked(cell)} {
				if in {
					states++
				}
			}
			require.Equal(t, 1, states, "cell %v", cell)
		}
	}
	require.False(t, s.IsBlocked(s.Agent()))
	require.False(t, s.IsBlocked(s.Goal()))
}

// TestNew_Placement checks the initial world over many seeds: one burning
// cell, pairwise distinct placements and a clean partition.
func TestNew_Placement(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		s, err := ship.New(15, 0.5, randsrc.FromSeed(seed))
		require.NoError(t, err)

		require.Equal(t, 1, s.FireCount(), "seed=%d", seed)
		fire := s.FireCells()[0]
		require.NotEqual(t, s.Agent(), s.Goal())
		require.NotEqual(t, s.Agent(), fire)
		require.NotEqual(t, s.Goal(), fire)
		require.True(t, s.IsOpen(s.Agent()))
		require.True(t, s.IsOpen(s.Goal()))
		requirePartition(t, s)
	}
}

// TestNew_Deterministic: equal seeds give equal worlds.
func TestNew_Deterministic(t *testing.T) {
	a, err := ship.New(20, 0.3, randsrc.FromSeed(7))
	require.NoError(t, err)
	b, err := ship.New(20, 0.3, randsrc.FromSeed(7))
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())
}

// TestNew_Errors covers argument validation.
func TestNew_Errors(t *testing.T) {
	_, err := ship.New(10, -0.1, nil)
	require.ErrorIs(t, err, ship.ErrBadFlammability)

	_, err = ship.New(10, 1.1, nil)
	require.ErrorIs(t, err, ship.ErrBadFlammability)

	_, err = ship.New(0, 0.5, nil)
	require.ErrorIs(t, err, maze.ErrBadSize)

	// A 1×1 deck has a single open cell.
	_, err = ship.New(1, 0.5, nil)
	require.ErrorIs(t, err, ship.ErrPlacement)
}

// TestIgnite covers the open → burning transition and its no-op cases.
func TestIgnite(t *testing.T) {
	s, err := ship.Parse(`
		B O #
		O O O
		# O G`, 0.5)
	require.NoError(t, err)

	require.True(t, s.Ignite(at(1, 1)))
	require.True(t, s.IsBurning(at(1, 1)))
	require.False(t, s.IsOpen(at(1, 1)))

	require.False(t, s.Ignite(at(1, 1)), "already burning")
	require.False(t, s.Ignite(at(0, 2)), "blocked")
	require.False(t, s.Ignite(at(5, 5)), "off deck")
	require.Equal(t, 1, s.FireCount())
	requirePartition(t, s)
}

// TestMoveAgent allows open and burning targets and rejects the rest.
func TestMoveAgent(t *testing.T) {
	s, err := ship.Parse(`
		B F
		# G`, 0.5)
	require.NoError(t, err)

	require.ErrorIs(t, s.MoveAgent(gridgraph.South), ship.ErrInvalidMove)
	require.ErrorIs(t, s.MoveAgent(gridgraph.North), ship.ErrInvalidMove)
	require.ErrorIs(t, s.MoveAgent(gridgraph.West), ship.ErrInvalidMove)
	require.Equal(t, at(0, 0), s.Agent(), "failed moves leave the agent in place")

	require.NoError(t, s.MoveAgent(gridgraph.East))
	require.True(t, s.AgentBurning())

	require.NoError(t, s.MoveAgent(gridgraph.South))
	require.True(t, s.AtGoal())
}

// TestNeighbors checks the neighbor queries and the fire frontier.
func TestNeighbors(t *testing.T) {
	s, err := ship.Parse(`
		B O O
		O F #
		O F G`, 0.5)
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Coordinate{at(0, 0), at(0, 2)}, s.OpenNeighbors(at(0, 1)))
	assert.Equal(t, 1, s.BurningNeighbors(at(2, 0)))
	assert.Equal(t, 0, s.BurningNeighbors(at(0, 0)))
	assert.Equal(t, []gridgraph.Coordinate{at(0, 1), at(1, 0), at(2, 0), at(2, 2)}, s.FireFrontier())
}

// TestClone_Independent: mutating the clone leaves the original untouched.
func TestClone_Independent(t *testing.T) {
	s, err := ship.New(12, 0.5, randsrc.FromSeed(3))
	require.NoError(t, err)
	before := s.String()

	c := s.Clone()
	require.Equal(t, before, c.String())
	for _, cell := range c.OpenCells() {
		c.Ignite(cell)
	}
	require.Zero(t, c.OpenCount())
	require.Equal(t, before, s.String())
}

// TestParse_RoundTrip: String output parses back to the same deck.
func TestParse_RoundTrip(t *testing.T) {
	s, err := ship.New(10, 0.25, randsrc.FromSeed(11))
	require.NoError(t, err)

	back, err := ship.Parse(s.String(), s.Flammability())
	require.NoError(t, err)
	require.Equal(t, s.String(), back.String())
	require.Equal(t, s.Agent(), back.Agent())
	require.Equal(t, s.Goal(), back.Goal())
	require.Equal(t, s.FireCells(), back.FireCells())
}

// TestParse_RoundTripBurning: a burning agent or goal cell keeps its fire
// through String and Parse.
func TestParse_RoundTripBurning(t *testing.T) {
	s, err := ship.Parse(`
		B F G
		O # O
		O O O`, 0.5)
	require.NoError(t, err)
	require.True(t, s.Ignite(s.Agent()))
	require.True(t, s.Ignite(s.Goal()))
	require.Contains(t, s.String(), "| b F g |")

	back, err := ship.Parse(s.String(), s.Flammability())
	require.NoError(t, err)
	require.Equal(t, []gridgraph.Coordinate{at(0, 0), at(0, 1), at(0, 2)}, back.FireCells())
	require.Equal(t, s.Agent(), back.Agent())
	require.Equal(t, s.Goal(), back.Goal())
	require.True(t, back.AgentBurning())
	require.True(t, back.GoalBurning())
	require.Equal(t, s.String(), back.String())
	requirePartition(t, back)
}

// TestParse_Errors is table-driven over malformed layouts.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
	}{
		{"empty", "\n\n"},
		{"ragged", "B O\nO"},
		{"not square", "B O G"},
		{"no agent", "O O\nO G"},
		{"two goals", "B G\nO G"},
		{"burning and plain agent", "B b\nO G"},
		{"unknown symbol", "B X\nO G"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ship.Parse(tc.layout, 0.5)
			require.ErrorIs(t, err, ship.ErrBadLayout)
		})
	}

	_, err := ship.Parse("B O\nO G", 2)
	require.ErrorIs(t, err, ship.ErrBadFlammability)
}

// TestRepair joins a split hand-authored deck.
func TestRepair(t *testing.T) {
	s, err := ship.Parse(`
		B O # O
		O O # G
		# # # #
		# # # #`, 0.5)
	require.NoError(t, err)
	gg, err := s.OpenGraph()
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 2)

	opened, err := s.Repair()
	require.NoError(t, err)
	require.Len(t, opened, 1)
	gg, err = s.OpenGraph()
	require.NoError(t, err)
	require.True(t, gg.Connected())
	requirePartition(t, s)

	again, err := s.Repair()
	require.NoError(t, err)
	require.Empty(t, again)
}
