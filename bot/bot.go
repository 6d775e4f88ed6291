package bot

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/shipfire/astar"
	"github.com/katalvlaran/shipfire/gridgraph"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/risk"
	"github.com/katalvlaran/shipfire/ship"
)

// New returns a fresh policy of the given kind.
func New(kind Kind, opts ...Option) (Policy, error) {
	o := Options{RiskScale: astar.DefaultRiskScale}
	for _, opt := range opts {
		opt(&o)
	}
	if o.RiskScale < 0 || math.IsNaN(o.RiskScale) {
		return nil, fmt.Errorf("%w (%g)", astar.ErrBadRiskScale, o.RiskScale)
	}

	switch kind {
	case CommitOnce:
		return &commitOnce{kind: kind}, nil
	case Replan:
		return &replanner{kind: kind, plan: planPlain}, nil
	case FireAware:
		return &replanner{kind: kind, plan: planFireAware}, nil
	case RiskAware:
		est := o.Estimator
		if est == nil {
			var err error
			if est, err = risk.New(); err != nil {
				return nil, err
			}
		}
		return &replanner{kind: kind, plan: planRiskAware(est, randsrc.OrDefault(o.Rand), o.RiskScale)}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// planFunc returns a route from the agent to the goal, or ok=false.
type planFunc func(ctx context.Context, s *ship.Ship) (res *astar.Result, ok bool, err error)

func planPlain(_ context.Context, s *ship.Ship) (*astar.Result, bool, error) {
	res, ok := astar.Search(s, s.Agent(), s.Goal())
	return res, ok, nil
}

func planFireAware(_ context.Context, s *ship.Ship) (*astar.Result, bool, error) {
	if res, ok := astar.Search(s, s.Agent(), s.Goal(), astar.WithPolicy(astar.AvoidFire)); ok {
		return res, true, nil
	}
	res, ok := astar.Search(s, s.Agent(), s.Goal())
	return res, ok, nil
}

func planRiskAware(est *risk.Estimator, rng *rand.Rand, scale float64) planFunc {
	return func(ctx context.Context, s *ship.Ship) (*astar.Result, bool, error) {
		m, err := est.Estimate(ctx, s.Clone(), rng)
		if err != nil {
			return nil, false, err
		}
		res, ok := astar.Search(s, s.Agent(), s.Goal(), astar.WithRiskPenalty(m, scale))
		return res, ok, nil
	}
}

// commitOnce plans at its first step and replays that route.
type commitOnce struct {
	kind  Kind
	state State
	route []gridgraph.Coordinate
	next  int // index into route of the next cell to enter
}

func (b *commitOnce) Kind() Kind   { return b.kind }
func (b *commitOnce) State() State { return b.state }

func (b *commitOnce) Step(_ context.Context, s *ship.Ship) (bool, error) {
	switch b.state {
	case Done, Failed:
		return false, nil
	case Unplanned:
		res, ok := astar.Search(s, s.Agent(), s.Goal())
		if !ok {
			b.state = Failed
			return false, nil
		}
		b.route, b.next, b.state = res.Path, 1, Planned
	}
	if b.next >= len(b.route) {
		b.state = Done
		return false, nil
	}
	if err := move(s, b.route[b.next]); err != nil {
		return false, err
	}
	b.next++
	if s.AtGoal() {
		b.state = Done
	}
	return true, nil
}

// replanner computes a fresh route every step and takes its first move.
type replanner struct {
	kind  Kind
	state State
	plan  planFunc
}

func (b *replanner) Kind() Kind   { return b.kind }
func (b *replanner) State() State { return b.state }

func (b *replanner) Step(ctx context.Context, s *ship.Ship) (bool, error) {
	if b.state == Done || b.state == Failed {
		return false, nil
	}
	res, ok, err := b.plan(ctx, s)
	if err != nil {
		return false, err
	}
	if !ok {
		b.state = Failed
		return false, nil
	}
	b.state = Planned
	next, ok := res.Next()
	if !ok {
		b.state = Done
		return false, nil
	}
	if err := move(s, next); err != nil {
		return false, err
	}
	if s.AtGoal() {
		b.state = Done
	}
	return true, nil
}

// move turns an adjacent cell into a directional move of the agent.
func move(s *ship.Ship, next gridgraph.Coordinate) error {
	d, ok := gridgraph.DirectionTo(s.Agent(), next)
	if !ok {
		return fmt.Errorf("%w: %v from %v", ErrInvalidPlan, next, s.Agent())
	}
	return s.MoveAgent(d)
}
