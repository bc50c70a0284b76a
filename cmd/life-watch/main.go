package main

import (
	"flag"
	"log"

	"gol-halt/internal/core"
	"gol-halt/internal/watch"
	"gol-halt/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	name := flag.String("sim", "life", "simulation to run")
	tps := flag.Int("tps", 10, "generations per second")
	var overrides core.Overrides
	flag.Var(&overrides, "set", "configuration override in key=value form (repeatable)")
	flag.Parse()

	cfg := overrides.Map()
	sim, err := core.New(*name, cfg)
	if err != nil {
		log.Fatalf("creating %s: %v", *name, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	err = watch.Run(screen, sim, watch.Options{TPS: *tps, Seed: life.FromMap(cfg).Seed})
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
