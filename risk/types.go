package risk

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/shipfire/gridgraph"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("risk: invalid option supplied")

// Reference rollout settings.
const (
	DefaultRollouts = 20
	DefaultHorizon  = 20
)

// Map gives the estimated ignition probability of a cell within the horizon.
type Map map[gridgraph.Coordinate]float64

// At returns the estimate for c, zero when absent.
func (m Map) At(c gridgraph.Coordinate) float64 { return m[c] }

// Options configures an Estimator.
type Options struct {
	Rollouts int // S, independent simulations per estimate
	Horizon  int // H, fire ticks per rollout
	Workers  int // concurrent rollouts
	err      error
}

// Option configures New via functional arguments.
type Option func(*Options)

// DefaultOptions returns S=20, H=20 and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Rollouts: DefaultRollouts,
		Horizon:  DefaultHorizon,
		Workers:  runtime.NumCPU(),
	}
}

// WithRollouts sets S; n must be positive.
func WithRollouts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Rollouts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Rollouts = n
	}
}

// WithHorizon sets H; h must be non-negative. H=0 yields an empty Map.
func WithHorizon(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: Horizon must be non-negative (%d)", ErrOptionViolation, h)
			return
		}
		o.Horizon = h
	}
}

// WithWorkers bounds the number of concurrent rollouts.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
