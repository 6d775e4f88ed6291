// Package config loads sweep and logging settings from the environment,
// optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/shipfire/bot"
	"github.com/katalvlaran/shipfire/experiment"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	ShipSize int        // SHIP_SIZE, side length of generated decks
	Runs     int        // RUNS, trials per (bot, q) point
	QStart   float64    // Q_START
	QStep    float64    // Q_STEP
	QEnd     float64    // Q_END
	Rollouts int        // ROLLOUTS, risk rollouts per bot D step
	Horizon  int        // HORIZON, ticks per rollout
	Workers  int        // WORKERS, concurrent rollouts
	Seed     int64      // SEED, 0 picks a time-based seed
	Bots     []bot.Kind // BOTS, comma separated numbers, letters or names
	LogLevel slog.Level // LOG_LEVEL
}

// Load reads files into the environment (a missing file is fine, and
// variables already set win) and builds a Config from it. With no files
// it looks for ./.env.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading env file: %w", err)
	}

	var (
		c   Config
		err error
	)
	if c.ShipSize, err = intEnv("SHIP_SIZE", 50); err != nil {
		return Config{}, err
	}
	if c.Runs, err = intEnv("RUNS", 200); err != nil {
		return Config{}, err
	}
	if c.QStart, err = floatEnv("Q_START", 0.1); err != nil {
		return Config{}, err
	}
	if c.QStep, err = floatEnv("Q_STEP", 0.1); err != nil {
		return Config{}, err
	}
	if c.QEnd, err = floatEnv("Q_END", 1.0); err != nil {
		return Config{}, err
	}
	if c.Rollouts, err = intEnv("ROLLOUTS", 20); err != nil {
		return Config{}, err
	}
	if c.Horizon, err = intEnv("HORIZON", 20); err != nil {
		return Config{}, err
	}
	if c.Workers, err = intEnv("WORKERS", runtime.NumCPU()); err != nil {
		return Config{}, err
	}
	seed, err := intEnv("SEED", 0)
	if err != nil {
		return Config{}, err
	}
	c.Seed = int64(seed)
	if c.Bots, err = ParseBots(getEnvWithDefault("BOTS", "1,2,3,4")); err != nil {
		return Config{}, fmt.Errorf("%w: BOTS: %v", ErrInvalidValue, err)
	}
	if err := c.LogLevel.UnmarshalText([]byte(getEnvWithDefault("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidValue, err)
	}
	return c, nil
}

// Settings converts c into sweep settings, resolving Seed 0 to the clock.
func (c Config) Settings() experiment.Settings {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return experiment.Settings{
		Size:     c.ShipSize,
		Runs:     c.Runs,
		QStart:   c.QStart,
		QStep:    c.QStep,
		QEnd:     c.QEnd,
		Kinds:    c.Bots,
		Rollouts: c.Rollouts,
		Horizon:  c.Horizon,
		Workers:  c.Workers,
		Seed:     seed,
	}
}

// ParseBots splits a comma separated bot list.
func ParseBots(list string) ([]bot.Kind, error) {
	var kinds []bot.Kind
	for _, field := range strings.Split(list, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		k, err := bot.ParseKind(field)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: empty bot list", bot.ErrUnknownKind)
	}
	return kinds, nil
}

// getEnvWithDefault retrieves an environment variable or returns def if unset.
func getEnvWithDefault(key, def string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, raw)
	}
	return v, nil
}

func floatEnv(key string, def float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidValue, key, raw)
	}
	return v, nil
}
