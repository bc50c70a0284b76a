package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"gol-halt/internal/survey"
	"gol-halt/pkg/sims/life"
)

func main() {
	cfg := life.DefaultConfig()
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid interior width")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid interior height")
	flag.IntVar(&cfg.History, "history", cfg.History, "cycle lookback window in generations")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "initial live-cell probability")
	runs := flag.Int("runs", 200, "number of random soups")
	seed := flag.Int64("seed", 1, "seed of the first soup; run i uses seed+i")
	maxGen := flag.Int("max", 5000, "generation cap per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel soups")
	verbose := flag.Bool("v", false, "print every soup")
	flag.Parse()

	report, err := survey.Run(survey.Options{
		Config:         cfg,
		Runs:           *runs,
		BaseSeed:       *seed,
		MaxGenerations: *maxGen,
		Workers:        *workers,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *verbose {
		for _, o := range report.Outcomes {
			state := "halted"
			if !o.Halted {
				state = "capped"
			}
			fmt.Printf("seed %d: %s at generation %d, population %d\n", o.Seed, state, o.Generations, o.Population)
		}
		fmt.Println()
	}

	fmt.Printf("%dx%d, history %d, density %.2f: %d soups, %d halted, %d hit the %d-generation cap\n",
		cfg.Width, cfg.Height, cfg.History, cfg.Density, *runs, report.Halted, report.Capped, *maxGen)
	if report.Halted > 0 {
		s := report.Stats
		fmt.Printf("halt generation: mean %.1f, stddev %.1f, median %.0f, min %.0f, max %.0f\n",
			s.Mean, s.StdDev, s.Median, s.Min, s.Max)
	}
}
