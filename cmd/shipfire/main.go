// Command shipfire runs fire-escape trials and flammability sweeps.
//
//	shipfire sweep  [-env file] [-size n] [-runs n] [-qstart q] [-qstep q] [-qend q] [-bots list] [-seed n]
//	shipfire trial  [-bot kind] [-size n] [-q q] [-seed n] [-layout file]
//	shipfire render [-size n] [-q q] [-seed n]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/shipfire/bot"
	"github.com/katalvlaran/shipfire/config"
	"github.com/katalvlaran/shipfire/experiment"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/risk"
	"github.com/katalvlaran/shipfire/ship"
	"github.com/katalvlaran/shipfire/sim"
)

var errUsage = errors.New("usage: shipfire <sweep|trial|render> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "sweep":
		return runSweep(ctx, args[1:], stdout, stderr)
	case "trial":
		return runTrial(ctx, args[1:], stdout, stderr)
	case "render":
		return runRender(args[1:], stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runSweep(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "env file with sweep settings")
	size := fs.Int("size", 0, "deck side length (overrides SHIP_SIZE)")
	runs := fs.Int("runs", 0, "trials per point (overrides RUNS)")
	qStart := fs.Float64("qstart", 0, "first flammability (overrides Q_START)")
	qStep := fs.Float64("qstep", 0, "flammability step (overrides Q_STEP)")
	qEnd := fs.Float64("qend", 0, "last flammability (overrides Q_END)")
	bots := fs.String("bots", "", "bots to run, e.g. 1,2,3,4 (overrides BOTS)")
	seed := fs.Int64("seed", 0, "base seed, 0 for time based (overrides SEED)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.ShipSize = *size
		case "runs":
			cfg.Runs = *runs
		case "qstart":
			cfg.QStart = *qStart
		case "qstep":
			cfg.QStep = *qStep
		case "qend":
			cfg.QEnd = *qEnd
		case "seed":
			cfg.Seed = *seed
		case "bots":
			cfg.Bots, flagErr = config.ParseBots(*bots)
		}
	})
	if flagErr != nil {
		return flagErr
	}

	settings := cfg.Settings()
	logger := newLogger(stderr, cfg.LogLevel)
	logger.Info("sweep starting",
		"size", settings.Size,
		"runs", settings.Runs,
		"points", len(settings.Flammabilities())*len(settings.Kinds),
		"seed", settings.Seed,
	)

	var current bot.Kind
	_, err = experiment.Sweep(ctx, settings,
		experiment.WithLogger(logger),
		experiment.WithOnPoint(func(p experiment.Point) {
			if p.Kind != current {
				current = p.Kind
				fmt.Fprintf(stdout, "Bot %s (%s) @ size %d\n", p.Kind.Letter(), p.Kind, settings.Size)
			}
			fmt.Fprintln(stdout, formatPoint(p))
		}),
	)
	return err
}

// formatPoint renders one sweep line.
func formatPoint(p experiment.Point) string {
	line := fmt.Sprintf("  q=%.2f  wins=%s/%s  rate=%s%%",
		p.Q,
		humanize.Comma(int64(p.Wins)),
		humanize.Comma(int64(p.Runs)),
		humanize.FtoaWithDigits(p.WinRate*100, 1),
	)
	if p.Wins > 0 {
		line += fmt.Sprintf("  moves mean=%s sd=%s median=%s",
			humanize.FtoaWithDigits(p.MeanMoves, 1),
			humanize.FtoaWithDigits(p.StdDevMoves, 1),
			humanize.FtoaWithDigits(p.MedianMoves, 1),
		)
	}
	return line
}

func runTrial(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("trial", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kindFlag := fs.String("bot", "1", "bot: 1-4, a-d or policy name")
	size := fs.Int("size", 20, "deck side length")
	q := fs.Float64("q", 0.3, "flammability")
	seed := fs.Int64("seed", randsrc.DefaultSeed, "seed for deck and fire")
	layout := fs.String("layout", "", "read the deck from a layout file instead of generating one")
	level := fs.String("log-level", "info", "debug shows every move and tick")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, err := bot.ParseKind(*kindFlag)
	if err != nil {
		return err
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*level)); err != nil {
		return err
	}

	rng := randsrc.FromSeed(*seed)
	world, err := loadWorld(*layout, *size, *q, rng)
	if err != nil {
		return err
	}
	est, err := risk.New()
	if err != nil {
		return err
	}
	policy, err := bot.New(kind, bot.WithEstimator(est), bot.WithRand(rng))
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, world)
	rep, err := sim.RunTrial(ctx, world, policy, rng, sim.WithLogger(newLogger(stderr, lvl)))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, world)
	fmt.Fprintf(stdout, "trial %s: bot %s %s after %d moves, %d ticks, %s cells burning\n",
		rep.ID, kind.Letter(), rep.Outcome, rep.Moves, rep.Ticks, humanize.Comma(int64(rep.FireCells)))
	return nil
}

// loadWorld parses and repairs a layout file, or generates a deck.
func loadWorld(path string, size int, q float64, rng *rand.Rand) (*ship.Ship, error) {
	if path == "" {
		return sim.NewWorld(size, q, rng)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	world, err := ship.Parse(string(raw), q)
	if err != nil {
		return nil, err
	}
	if _, err := world.Repair(); err != nil {
		return nil, err
	}
	return world, nil
}

func runRender(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	size := fs.Int("size", 15, "deck side length")
	q := fs.Float64("q", 0.5, "flammability")
	seed := fs.Int64("seed", randsrc.DefaultSeed, "seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	world, err := sim.NewWorld(*size, *q, randsrc.FromSeed(*seed))
	if err != nil {
		return err
	}
	gg, err := world.OpenGraph()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, world)
	fmt.Fprintf(stdout, "agent %v  goal %v  fire %v  open %d  islands %d\n",
		world.Agent(), world.Goal(), world.FireCells(), world.OpenCount(), len(gg.ConnectedComponents()))
	return nil
}
