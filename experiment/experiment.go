package experiment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/shipfire/bot"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/risk"
	"github.com/katalvlaran/shipfire/sim"
)

// ErrBadSettings indicates sweep settings that describe no valid experiment.
var ErrBadSettings = errors.New("experiment: invalid settings")

// qTolerance admits a final q that overshoots QEnd through float drift.
const qTolerance = 0.005

// Settings describes one sweep.
type Settings struct {
	Size     int
	Runs     int
	QStart   float64
	QStep    float64
	QEnd     float64
	Kinds    []bot.Kind
	Rollouts int // risk-aware rollouts per step
	Horizon  int // risk-aware ticks per rollout
	Workers  int // concurrent rollouts
	Seed     int64
}

// DefaultSettings mirrors the reference experiment: 50×50 decks, 200 runs,
// q from 0.1 to 1.0 in steps of 0.1, all four bots.
func DefaultSettings() Settings {
	def := risk.DefaultOptions()
	return Settings{
		Size:     50,
		Runs:     200,
		QStart:   0.1,
		QStep:    0.1,
		QEnd:     1.0,
		Kinds:    bot.Kinds(),
		Rollouts: def.Rollouts,
		Horizon:  def.Horizon,
		Workers:  def.Workers,
		Seed:     randsrc.DefaultSeed,
	}
}

// Validate reports the first problem with s.
func (s Settings) Validate() error {
	switch {
	case s.Size < 2:
		return fmt.Errorf("%w: size %d", ErrBadSettings, s.Size)
	case s.Runs <= 0:
		return fmt.Errorf("%w: runs %d", ErrBadSettings, s.Runs)
	case s.QStep <= 0:
		return fmt.Errorf("%w: q step %g", ErrBadSettings, s.QStep)
	case s.QStart < 0 || s.QEnd > 1 || s.QEnd < s.QStart:
		return fmt.Errorf("%w: q range [%g, %g]", ErrBadSettings, s.QStart, s.QEnd)
	case len(s.Kinds) == 0:
		return fmt.Errorf("%w: no bots", ErrBadSettings)
	}
	return nil
}

// Flammabilities lists the q values of the sweep. Values within rounding
// of QEnd are kept and clamped to 1.
func (s Settings) Flammabilities() []float64 {
	var out []float64
	for i := 0; ; i++ {
		q := s.QStart + float64(i)*s.QStep
		if q > s.QEnd+qTolerance {
			return out
		}
		q = math.Round(q*1e9) / 1e9
		out = append(out, math.Min(q, 1))
	}
}

// Point is the aggregate of Runs trials for one policy at one q.
type Point struct {
	Kind        bot.Kind
	Q           float64
	Runs        int
	Wins        int
	Burned      int
	NoPath      int
	WinRate     float64
	MeanMoves   float64
	StdDevMoves float64
	MedianMoves float64
}

// Options configures Sweep.
type Options struct {
	Logger  *slog.Logger
	OnPoint func(Point)
}

// Option configures Sweep via functional arguments.
type Option func(*Options)

// WithLogger sets the logger for per-point records. It is not passed to
// trials, which would flood it with moves.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPoint registers a callback invoked as each point completes.
func WithOnPoint(fn func(Point)) Option {
	return func(o *Options) { o.OnPoint = fn }
}

// Sweep runs the experiment described by s. It stops between trials when
// ctx is done and returns the points completed so far with ctx's error.
func Sweep(ctx context.Context, s Settings, opts ...Option) ([]Point, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	o := Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	est, err := risk.New(
		risk.WithRollouts(s.Rollouts),
		risk.WithHorizon(s.Horizon),
		risk.WithWorkers(s.Workers),
	)
	if err != nil {
		return nil, err
	}

	var points []Point
	for _, kind := range s.Kinds {
		for qi, q := range s.Flammabilities() {
			p, err := runPoint(ctx, s, est, kind, qi, q)
			if err != nil {
				return points, err
			}
			points = append(points, p)
			o.Logger.Info("sweep point",
				"bot", kind.String(),
				"q", q,
				"wins", p.Wins,
				"runs", p.Runs,
				"win_rate", p.WinRate,
				"mean_moves", p.MeanMoves,
			)
			if o.OnPoint != nil {
				o.OnPoint(p)
			}
		}
	}
	return points, nil
}

func runPoint(ctx context.Context, s Settings, est *risk.Estimator, kind bot.Kind, qi int, q float64) (Point, error) {
	p := Point{Kind: kind, Q: q, Runs: s.Runs}
	var moves stats.Float64Data
	for run := 0; run < s.Runs; run++ {
		if err := ctx.Err(); err != nil {
			return p, err
		}
		trial := uint64(qi*s.Runs + run)
		world, err := sim.NewWorld(s.Size, q, streamFor(s.Seed, 2*trial))
		if err != nil {
			return p, err
		}
		fireRNG := streamFor(s.Seed, 2*trial+1)
		policy, err := bot.New(kind, bot.WithEstimator(est), bot.WithRand(fireRNG))
		if err != nil {
			return p, err
		}
		rep, err := sim.RunTrial(ctx, world, policy, fireRNG)
		if err != nil {
			return p, err
		}
		switch rep.Outcome {
		case sim.Win:
			p.Wins++
			moves = append(moves, float64(rep.Moves))
		case sim.Burned:
			p.Burned++
		case sim.NoPath:
			p.NoPath++
		}
	}
	p.WinRate = float64(p.Wins) / float64(p.Runs)
	if len(moves) > 0 {
		p.MeanMoves, _ = stats.Mean(moves)
		p.StdDevMoves, _ = stats.StandardDeviation(moves)
		p.MedianMoves, _ = stats.Median(moves)
	}
	return p, nil
}

func streamFor(seed int64, stream uint64) *rand.Rand {
	return randsrc.FromSeed(randsrc.DeriveSeed(seed, stream))
}
