package bot

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/shipfire/risk"
	"github.com/katalvlaran/shipfire/ship"
)

var (
	// ErrUnknownKind indicates a policy kind outside CommitOnce..RiskAware.
	ErrUnknownKind = errors.New("bot: unknown policy kind")

	// ErrInvalidPlan indicates a planned next cell that is not adjacent to the agent.
	ErrInvalidPlan = errors.New("bot: planned cell is not adjacent to the agent")
)

// Kind names a navigation policy. Values match the historical bot numbers.
type Kind int

const (
	CommitOnce Kind = iota + 1 // bot A
	Replan                     // bot B
	FireAware                  // bot C
	RiskAware                  // bot D
)

// Kinds lists every policy in bot order.
func Kinds() []Kind { return []Kind{CommitOnce, Replan, FireAware, RiskAware} }

// String returns the policy name.
func (k Kind) String() string {
	switch k {
	case CommitOnce:
		return "commit-once"
	case Replan:
		return "replan"
	case FireAware:
		return "fire-aware"
	case RiskAware:
		return "risk-aware"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Letter returns the bot letter A..D, or "?".
func (k Kind) Letter() string {
	if k < CommitOnce || k > RiskAware {
		return "?"
	}
	return string(rune('A' + int(k) - 1))
}

// ParseKind accepts a bot number (1-4), letter (a-d) or policy name.
func ParseKind(s string) (Kind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(v); err == nil {
		if k := Kind(n); k >= CommitOnce && k <= RiskAware {
			return k, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	for _, k := range Kinds() {
		if v == strings.ToLower(k.Letter()) || v == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// State is a policy's position in its plan lifecycle.
type State int

const (
	Unplanned State = iota
	Planned
	Done
	Failed
)

// String returns the state name.
func (st State) String() string {
	switch st {
	case Unplanned:
		return "unplanned"
	case Planned:
		return "planned"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

// Policy advances the agent on a live ship.
type Policy interface {
	// Step moves the agent at most one cell. It returns false when no route
	// to the goal exists or the policy is already Done or Failed.
	Step(ctx context.Context, s *ship.Ship) (bool, error)
	Kind() Kind
	State() State
}

// Options configures New.
type Options struct {
	Rand      *rand.Rand      // source for risk rollouts
	Estimator *risk.Estimator // used by RiskAware; defaults to risk.New()
	RiskScale float64         // RiskAware priority multiplier
}

// Option configures New via functional arguments.
type Option func(*Options)

// WithRand sets the random source handed to risk estimates.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithEstimator sets the risk estimator for RiskAware.
func WithEstimator(e *risk.Estimator) Option {
	return func(o *Options) { o.Estimator = e }
}

// WithRiskScale overrides the RiskAware penalty multiplier.
func WithRiskScale(scale float64) Option {
	return func(o *Options) { o.RiskScale = scale }
}
