// Package survey runs many random soups to completion and summarises how long
// they take to settle into a detected cycle.
package survey

import (
	"fmt"
	"runtime"
	"slices"

	"gol-halt/pkg/sims/life"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Options describes a survey. Each run i uses seed BaseSeed+i.
type Options struct {
	Config         life.Config
	Runs           int
	BaseSeed       int64
	MaxGenerations int
	Workers        int
}

// Outcome is the result of one soup.
type Outcome struct {
	Seed        int64
	Generations int
	Halted      bool
	Population  int
}

// Stats summarises halt generations across the runs that halted.
type Stats struct {
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// Report collects every outcome ordered by seed.
type Report struct {
	Outcomes []Outcome
	Halted   int
	Capped   int
	Stats    Stats
}

// Run executes the survey. Every board is owned by a single goroutine, so
// the report does not depend on the worker count.
func Run(opts Options) (Report, error) {
	if opts.Runs <= 0 {
		return Report{}, fmt.Errorf("survey: runs must be positive, got %d", opts.Runs)
	}
	if opts.MaxGenerations <= 0 {
		return Report{}, fmt.Errorf("survey: max generations must be positive, got %d", opts.MaxGenerations)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cfg := opts.Config
	cfg.Pattern = life.PatternRandom
	cfg.Points = ""

	outcomes := make([]Outcome, opts.Runs)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range opts.Runs {
		eg.Go(func() error {
			out, err := runOne(cfg, opts.BaseSeed+int64(i), opts.MaxGenerations)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	return summarise(outcomes), nil
}

func runOne(cfg life.Config, seed int64, maxGen int) (Outcome, error) {
	cfg.Seed = seed
	sim, err := life.New(cfg)
	if err != nil {
		return Outcome{}, fmt.Errorf("survey: seed %d: %w", seed, err)
	}
	for !sim.Halted() && sim.Generation() < maxGen {
		sim.Step()
	}
	return Outcome{
		Seed:        seed,
		Generations: sim.Generation(),
		Halted:      sim.Halted(),
		Population:  sim.Population(),
	}, nil
}

func summarise(outcomes []Outcome) Report {
	r := Report{Outcomes: outcomes}
	var gens []float64
	for _, o := range outcomes {
		if !o.Halted {
			r.Capped++
			continue
		}
		r.Halted++
		gens = append(gens, float64(o.Generations))
	}
	if len(gens) == 0 {
		return r
	}
	slices.Sort(gens)
	r.Stats = Stats{
		Mean:   stat.Mean(gens, nil),
		Median: stat.Quantile(0.5, stat.Empirical, gens, nil),
		Min:    floats.Min(gens),
		Max:    floats.Max(gens),
	}
	if len(gens) > 1 {
		r.Stats.StdDev = stat.StdDev(gens, nil)
	}
	return r
}
