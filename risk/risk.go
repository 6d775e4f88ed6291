package risk

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shipfire/fire"
	"github.com/katalvlaran/shipfire/gridgraph"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/ship"
)

// Estimator produces risk Maps. It is immutable and safe for concurrent use.
type Estimator struct {
	opts Options
}

// New validates opts and returns an Estimator.
func New(opts ...Option) (*Estimator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Estimator{opts: o}, nil
}

// Options returns the effective settings.
func (e *Estimator) Options() Options { return e.opts }

// Estimate runs the rollouts against a private copy of snapshot and returns
// the per-cell ignition frequencies. snapshot is only read. rng is advanced
// once per rollout to seed its stream; a nil rng uses the default stream.
func (e *Estimator) Estimate(ctx context.Context, snapshot *ship.Ship, rng *rand.Rand) (Map, error) {
	model, err := fire.NewModel(snapshot.Flammability())
	if err != nil {
		return nil, err
	}
	base := snapshot.Clone()
	rng = randsrc.OrDefault(rng)

	n := e.opts.Rollouts
	streams := make([]*rand.Rand, n)
	for i := range streams {
		streams[i] = randsrc.Derive(rng, uint64(i))
	}

	ignited := make([][]gridgraph.Coordinate, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cells, err := rollout(base.Clone(), model, e.opts.Horizon, streams[i])
			ignited[i] = cells
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := make(map[gridgraph.Coordinate]int)
	for _, cells := range ignited {
		for _, c := range cells {
			counts[c]++
		}
	}
	out := make(Map, len(counts))
	for c, k := range counts {
		out[c] = float64(k) / float64(n)
	}
	return out, nil
}

// rollout burns world forward for horizon ticks and returns every cell that
// caught. A cell ignites at most once, so the result has no repeats.
func rollout(world *ship.Ship, model *fire.Model, horizon int, rng *rand.Rand) ([]gridgraph.Coordinate, error) {
	var out []gridgraph.Coordinate
	for tick := 0; tick < horizon; tick++ {
		caught, err := model.Tick(world, rng)
		if err != nil {
			return nil, err
		}
		if len(caught) == 0 && len(world.FireFrontier()) == 0 {
			break
		}
		out = append(out, caught...)
	}
	return out, nil
}
