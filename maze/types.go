package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shipfire/gridgraph"
)

var (
	// ErrBadSize is returned when the requested side length is not positive.
	ErrBadSize = errors.New("maze: size must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// DefaultCullFraction is the share of dead ends the generator tries to open up.
const DefaultCullFraction = 0.5

// Options configures maze generation.
type Options struct {
	// CullFraction in [0,1] is the share of dead ends selected for culling.
	CullFraction float64

	// OnCull is called once per selected dead end with the cell that was
	// opened next to it; ok is false when the dead end had no blocked
	// neighbor and was skipped.
	OnCull func(deadEnd, opened gridgraph.Coordinate, ok bool)

	err error
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with CullFraction=0.5 and a no-op OnCull.
func DefaultOptions() Options {
	return Options{
		CullFraction: DefaultCullFraction,
		OnCull:       func(_, _ gridgraph.Coordinate, _ bool) {},
	}
}

// WithCullFraction overrides the share of dead ends to cull.
// Values outside [0,1] surface as ErrOptionViolation from Generate.
func WithCullFraction(f float64) Option {
	return func(o *Options) {
		if f < 0 || f > 1 {
			o.err = fmt.Errorf("%w: CullFraction must be in [0,1] (%g)", ErrOptionViolation, f)
			return
		}
		o.CullFraction = f
	}
}

// WithOnCull registers a callback observing each culling decision.
func WithOnCull(fn func(deadEnd, opened gridgraph.Coordinate, ok bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCull = fn
		}
	}
}
