package sim_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shipfire/bot"
	"github.com/katalvlaran/shipfire/gridgraph"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/risk"
	"github.com/katalvlaran/shipfire/ship"
	"github.com/katalvlaran/shipfire/sim"
)

const openFive = `
	B O O O O
	O O O O O
	O O O O O
	O O O O O
	O O O O G`

func newPolicy(t *testing.T, kind bot.Kind) bot.Policy {
	t.Helper()
	est, err := risk.New(risk.WithRollouts(4), risk.WithHorizon(4))
	require.NoError(t, err)
	p, err := bot.New(kind, bot.WithEstimator(est), bot.WithRand(randsrc.FromSeed(1)))
	require.NoError(t, err)
	return p
}

func run(t *testing.T, layout string, q float64, kind bot.Kind) sim.Report {
	t.Helper()
	s, err := ship.Parse(layout, q)
	require.NoError(t, err)
	rep, err := sim.RunTrial(context.Background(), s, newPolicy(t, kind), randsrc.FromSeed(1))
	require.NoError(t, err)
	return rep
}

// TestRunTrial_OpenGridWins: with no fire spread bots A and B escape in
// exactly 8 moves on every repetition.
func TestRunTrial_OpenGridWins(t *testing.T) {
	for _, kind := range []bot.Kind{bot.CommitOnce, bot.Replan} {
		for i := 0; i < 10; i++ {
			rep := run(t, openFive, 0, kind)
			require.True(t, rep.Won(), "%s run %d", kind, i)
			require.Equal(t, 8, rep.Moves)
			require.Equal(t, 7, rep.Ticks)
			require.Equal(t, kind, rep.Kind)
			require.Zero(t, rep.FireCells)
			require.NotEqual(t, uuid.Nil, rep.ID)
		}
	}
}

// TestRunTrial_FullFlammabilityLosses: with q=1 and fire next to the start,
// bot A loses on the first tick or cannot move at all.
func TestRunTrial_FullFlammabilityLosses(t *testing.T) {
	cases := []struct {
		name    string
		layout  string
		outcome sim.Outcome
		moves   int
		ticks   int
	}{
		{"goal catches", "B F G\nO # O\nO O O", sim.Burned, 1, 1},
		{"agent walks into the wave", "B O G\n# F #\n# # #", sim.Burned, 1, 1},
		{"fire cuts the only corridor", "B F G\n# # #\n# # #", sim.NoPath, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep := run(t, tc.layout, 1, bot.CommitOnce)
			assert.Equal(t, tc.outcome, rep.Outcome)
			assert.Equal(t, tc.moves, rep.Moves)
			assert.Equal(t, tc.ticks, rep.Ticks)
			assert.False(t, rep.Won())
		})
	}
}

// TestRunTrial_AllBotsTerminate on generated worlds over a spread of q,
// keeping the partition invariant throughout.
func TestRunTrial_AllBotsTerminate(t *testing.T) {
	for _, kind := range bot.Kinds() {
		for seed := int64(1); seed <= 4; seed++ {
			for _, q := range []float64{0, 0.3, 1} {
				world, err := sim.NewWorld(12, q, randsrc.FromSeed(seed))
				require.NoError(t, err)
				p := newPolicy(t, kind)
				rep, err := sim.RunTrial(context.Background(), world, p, randsrc.FromSeed(seed))
				require.NoError(t, err)

				switch rep.Outcome {
				case sim.Win:
					require.True(t, world.AtGoal())
					require.Equal(t, bot.Done, p.State())
				case sim.Burned:
					require.True(t, world.AgentBurning() || world.GoalBurning())
				case sim.NoPath:
					require.Equal(t, bot.Failed, p.State())
				}
				require.Equal(t, world.FireCount(), rep.FireCells)
				for _, c := range world.FireCells() {
					require.False(t, world.IsOpen(c))
				}
			}
		}
	}
}

// TestRunTrial_ZeroFlammabilityAlwaysWins: without spread a connected deck
// is always escaped by every bot.
func TestRunTrial_ZeroFlammabilityAlwaysWins(t *testing.T) {
	for _, kind := range bot.Kinds() {
		for seed := int64(1); seed <= 5; seed++ {
			world, err := sim.NewWorld(15, 0, randsrc.FromSeed(seed))
			require.NoError(t, err)
			gg, err := world.OpenGraph()
			require.NoError(t, err)
			oracle, err := gg.Distances(world.Agent())
			require.NoError(t, err)
			want, reachable := oracle[world.Goal()]

			rep, err := sim.RunTrial(context.Background(), world, newPolicy(t, kind), randsrc.FromSeed(seed))
			require.NoError(t, err)
			if !reachable {
				// the ignition cell can cut a corridor
				require.Equal(t, sim.NoPath, rep.Outcome)
				continue
			}
			require.True(t, rep.Won(), "%s seed=%d", kind, seed)
			if kind == bot.CommitOnce || kind == bot.Replan {
				require.Equal(t, want, rep.Moves, "%s seed=%d", kind, seed)
			} else {
				// fire-aware routes may detour around the static fire
				require.GreaterOrEqual(t, rep.Moves, want)
			}
		}
	}
}

// TestRunTrial_Deterministic: equal seeds give equal reports apart from ID.
func TestRunTrial_Deterministic(t *testing.T) {
	trial := func() sim.Report {
		world, err := sim.NewWorld(20, 0.3, randsrc.FromSeed(77))
		require.NoError(t, err)
		rep, err := sim.RunTrial(context.Background(), world, newPolicy(t, bot.FireAware), randsrc.FromSeed(78))
		require.NoError(t, err)
		return rep
	}
	a, b := trial(), trial()
	require.NotEqual(t, a.ID, b.ID)
	a.ID, b.ID = uuid.Nil, uuid.Nil
	require.Equal(t, a, b)
}

// brokenPolicy plans a jump across the deck.
type brokenPolicy struct{}

func (brokenPolicy) Kind() bot.Kind   { return bot.Replan }
func (brokenPolicy) State() bot.State { return bot.Planned }
func (brokenPolicy) Step(_ context.Context, s *ship.Ship) (bool, error) {
	return false, bot.ErrInvalidPlan
}

// TestRunTrial_AbortsOnInvariantViolation returns the policy error.
func TestRunTrial_AbortsOnInvariantViolation(t *testing.T) {
	s, err := ship.Parse(openFive, 0.5)
	require.NoError(t, err)
	_, err = sim.RunTrial(context.Background(), s, brokenPolicy{}, nil)
	require.ErrorIs(t, err, bot.ErrInvalidPlan)
	require.Equal(t, gridgraph.Coordinate{}, s.Agent())
}

// TestRunTrial_Cancelled stops before the first step.
func TestRunTrial_Cancelled(t *testing.T) {
	s, err := ship.Parse(openFive, 0)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.RunTrial(ctx, s, newPolicy(t, bot.CommitOnce), nil)
	require.True(t, errors.Is(err, context.Canceled))
}

// TestRunTrial_Logging records moves and ticks at Debug and the outcome at Info.
func TestRunTrial_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := ship.Parse(openFive, 0)
	require.NoError(t, err)
	rep, err := sim.RunTrial(context.Background(), s, newPolicy(t, bot.Replan), nil, sim.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=move")
	assert.Contains(t, out, "msg=tick")
	assert.Contains(t, out, `msg="trial finished"`)
	assert.Contains(t, out, "outcome=win")
	assert.Contains(t, out, "trial="+rep.ID.String())
	assert.Contains(t, out, "bot=replan")
}
