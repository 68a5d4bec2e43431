// Package sim runs Fruit Dash headless: a greedy autopilot plays batches of
// runs through the real state machine at a fixed frame time, and the results
// are written as CSV and summarized for balance tuning.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-dash/internal/config"
	"github.com/vovakirdan/fruit-dash/internal/core"
	"github.com/vovakirdan/fruit-dash/internal/games/fruitdash"
)

// Options controls a batch of simulated runs.
type Options struct {
	Runs       int
	Seed       int64   // run i uses Seed+i
	DT         float64 // seconds per frame
	MaxSeconds float64 // a run still alive after this long is cancelled
	Logger     *log.Logger
}

// DefaultOptions returns 100 runs at 60 frames per second, two minutes each.
func DefaultOptions() Options {
	return Options{
		Runs:       100,
		Seed:       1,
		DT:         1.0 / 60,
		MaxSeconds: 120,
	}
}

// ErrOptions is wrapped by every invalid Options error.
var ErrOptions = errors.New("sim: invalid options")

func (o Options) validate() error {
	switch {
	case o.Runs <= 0:
		return fmt.Errorf("%w: runs must be positive, got %d", ErrOptions, o.Runs)
	case o.DT <= 0:
		return fmt.Errorf("%w: dt must be positive, got %g", ErrOptions, o.DT)
	case o.MaxSeconds <= 0:
		return fmt.Errorf("%w: max seconds must be positive, got %g", ErrOptions, o.MaxSeconds)
	}
	return nil
}

// Result is one simulated run.
type Result struct {
	Run      int     `csv:"run"`
	Seed     int64   `csv:"seed"`
	Mode     string  `csv:"mode"`
	Wrap     bool    `csv:"wrap"`
	Score    int     `csv:"score"`
	Cause    string  `csv:"cause"`
	Seconds  float64 `csv:"seconds"`
	Steps    int     `csv:"steps"`
	Fruits   int     `csv:"fruits"`
	Length   int     `csv:"length"`
	Turbos   int     `csv:"turbos"`
	PowerUps int     `csv:"powerups"`
	TimedOut bool    `csv:"timed_out"`
}

// Run plays opts.Runs runs with cfg and returns one Result per run. It stops
// early with ctx's error when ctx is cancelled between runs.
func Run(ctx context.Context, cfg config.Config, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]Result, 0, opts.Runs)
	for i := 0; i < opts.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		seed := opts.Seed + int64(i)
		r, err := runOne(cfg, seed, opts)
		if err != nil {
			return results, fmt.Errorf("sim: run %d: %w", i+1, err)
		}
		r.Run = i + 1
		logger.Debug("run finished", "run", r.Run, "score", r.Score, "cause", r.Cause, "seconds", r.Seconds)
		results = append(results, r)
	}
	return results, nil
}

func runOne(cfg config.Config, seed int64, opts Options) (Result, error) {
	m, err := fruitdash.NewMachine(cfg, rand.New(rand.NewSource(seed)), fruitdash.WithLogger(opts.Logger))
	if err != nil {
		return Result{}, err
	}

	// Leave the menu and wait out the countdown.
	f := m.Advance(0, core.FrameOf(core.ActionConfirm))
	for f.Snapshot.Phase == fruitdash.PhaseCountdown {
		f = m.Advance(opts.DT, core.NewInputFrame())
	}

	var running float64
	timedOut := false
	for f.Ended == nil {
		in := core.NewInputFrame()
		if running >= opts.MaxSeconds {
			in.Set(core.ActionCancel)
			timedOut = true
		} else {
			in.Set(actionFor(Steer(f.Snapshot)))
		}
		f = m.Advance(opts.DT, in)
		running += opts.DT
	}

	rep := f.Ended
	if rep.Err != nil && !errors.Is(rep.Err, fruitdash.ErrGridFull) {
		return Result{}, rep.Err
	}
	return Result{
		Seed:     seed,
		Mode:     rep.Mode.String(),
		Wrap:     rep.Wrap,
		Score:    rep.Score,
		Cause:    rep.Cause.String(),
		Seconds:  rep.Seconds,
		Steps:    rep.Steps,
		Fruits:   rep.Fruits,
		Length:   rep.Length,
		Turbos:   rep.Turbos,
		PowerUps: rep.PowerUps,
		TimedOut: timedOut,
	}, nil
}
