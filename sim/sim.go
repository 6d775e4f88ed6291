package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/shipfire/bot"
	"github.com/katalvlaran/shipfire/fire"
	"github.com/katalvlaran/shipfire/maze"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/ship"
)

// Outcome is how a trial ended.
type Outcome int

const (
	// Win: the agent stepped onto the goal.
	Win Outcome = iota
	// Burned: fire reached the agent or the goal.
	Burned
	// NoPath: the policy found no route to the goal.
	NoPath
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Burned:
		return "burned"
	case NoPath:
		return "no-path"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Report summarizes one finished trial.
type Report struct {
	ID        uuid.UUID
	Kind      bot.Kind
	Outcome   Outcome
	Moves     int // agent moves made
	Ticks     int // fire ticks applied
	FireCells int // burning cells at the end
}

// Won reports whether the agent escaped.
func (r Report) Won() bool { return r.Outcome == Win }

// Options configures RunTrial.
type Options struct {
	Logger *slog.Logger
}

// Option configures RunTrial via functional arguments.
type Option func(*Options)

// WithLogger sets the trial logger. Moves and ticks log at Debug, the
// outcome at Info.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewWorld generates a size×size ship with flammability q and random
// agent, goal and ignition placement.
func NewWorld(size int, q float64, rng *rand.Rand, opts ...maze.Option) (*ship.Ship, error) {
	return ship.New(size, q, rng, opts...)
}

// RunTrial advances world under policy until the trial ends. rng drives the
// fire; a nil rng uses the default stream.
func RunTrial(ctx context.Context, world *ship.Ship, policy bot.Policy, rng *rand.Rand, opts ...Option) (Report, error) {
	o := Options{Logger: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	rep := Report{ID: uuid.New(), Kind: policy.Kind()}
	log := o.Logger.With("trial", rep.ID.String(), "bot", policy.Kind().String())

	model, err := fire.NewModel(world.Flammability())
	if err != nil {
		return rep, fmt.Errorf("sim: trial %s: %w", rep.ID, err)
	}
	rng = randsrc.OrDefault(rng)

	for {
		if err := ctx.Err(); err != nil {
			return rep, fmt.Errorf("sim: trial %s: %w", rep.ID, err)
		}
		moved, err := policy.Step(ctx, world)
		if err != nil {
			return rep, fmt.Errorf("sim: trial %s at move %d: %w", rep.ID, rep.Moves, err)
		}
		if moved {
			rep.Moves++
			log.Debug("move", "move", rep.Moves, "agent", world.Agent().String())
		}
		if world.AtGoal() {
			return finish(log, rep, world, Win), nil
		}
		if !moved {
			return finish(log, rep, world, NoPath), nil
		}

		caught, err := model.Tick(world, rng)
		if err != nil {
			return rep, fmt.Errorf("sim: trial %s at tick %d: %w", rep.ID, rep.Ticks, err)
		}
		rep.Ticks++
		log.Debug("tick", "tick", rep.Ticks, "caught", len(caught), "fire_cells", world.FireCount())
		if world.AgentBurning() || world.GoalBurning() {
			return finish(log, rep, world, Burned), nil
		}
	}
}

func finish(log *slog.Logger, rep Report, world *ship.Ship, out Outcome) Report {
	rep.Outcome = out
	rep.FireCells = world.FireCount()
	log.Info("trial finished",
		"outcome", out.String(),
		"moves", rep.Moves,
		"ticks", rep.Ticks,
		"fire_cells", rep.FireCells,
	)
	return rep
}
