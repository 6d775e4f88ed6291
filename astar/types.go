package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/shipfire/gridgraph"
)

// ErrBadRiskScale is the panic message of WithRiskPenalty for a negative scale.
var ErrBadRiskScale = errors.New("astar: risk scale must be non-negative")

// Policy selects which open cells a search may enter and how they are scored.
type Policy int

const (
	// Plain searches over every open cell.
	Plain Policy = iota
	// AvoidFire skips open cells with at least one burning neighbor.
	AvoidFire
	// RiskWeighted adds a risk penalty to the priority of risky cells.
	RiskWeighted
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Plain:
		return "plain"
	case AvoidFire:
		return "avoid-fire"
	case RiskWeighted:
		return "risk-weighted"
	}
	return "unknown"
}

// DefaultRiskScale multiplies a cell's estimated ignition probability into
// its priority penalty.
const DefaultRiskScale = 10.0

// Options configures Search.
type Options struct {
	Policy    Policy
	Risk      map[gridgraph.Coordinate]float64 // only read under RiskWeighted
	RiskScale float64
	OnExpand  func(c gridgraph.Coordinate) // called once per non-stale pop
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns a Plain search with DefaultRiskScale.
func DefaultOptions() Options {
	return Options{Policy: Plain, RiskScale: DefaultRiskScale}
}

// WithPolicy selects the search policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithRiskPenalty switches to RiskWeighted using risk as the per-cell
// ignition estimate and scale as its multiplier. A nil map means no penalty.
// Panics if scale is negative or NaN.
func WithRiskPenalty(risk map[gridgraph.Coordinate]float64, scale float64) Option {
	if scale < 0 || math.IsNaN(scale) {
		panic(ErrBadRiskScale.Error())
	}
	return func(o *Options) {
		o.Policy = RiskWeighted
		o.Risk = risk
		o.RiskScale = scale
	}
}

// WithOnExpand registers a hook observing each expanded cell.
func WithOnExpand(fn func(c gridgraph.Coordinate)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// Result is a found route: the full path from start to goal inclusive and
// its step count. len(Path) == Distance+1.
type Result struct {
	Path     []gridgraph.Coordinate
	Distance int
}

// Len returns the number of cells on the path.
func (r *Result) Len() int { return len(r.Path) }

// Next returns the first cell after start. ok is false for a one-cell path.
func (r *Result) Next() (gridgraph.Coordinate, bool) {
	if len(r.Path) < 2 {
		return gridgraph.Coordinate{}, false
	}
	return r.Path[1], true
}
