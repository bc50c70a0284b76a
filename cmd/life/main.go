package main

import (
	"flag"
	"log"
	"os"

	"gol-halt/internal/console"
	"gol-halt/internal/core"
	_ "gol-halt/pkg/sims/life"
)

type historyProvider interface {
	HistoryCapacity() int
}

func main() {
	name := flag.String("sim", "life", "simulation to run")
	tps := flag.Int("tps", 0, "generations per second (0 runs unthrottled)")
	maxGen := flag.Int("max", 0, "stop after this many generations even without a repeat (0 = no limit)")
	var overrides core.Overrides
	flag.Var(&overrides, "set", "configuration override in key=value form, e.g. w=40 pattern=random (repeatable)")
	flag.Parse()

	sim, err := core.New(*name, overrides.Map())
	if err != nil {
		log.Fatalf("creating %s: %v", *name, err)
	}

	res, err := console.Run(sim, os.Stdout, console.Options{
		MaxGenerations: *maxGen,
		Pacer:          core.NewFixedStep(*tps),
	})
	if err != nil {
		log.Fatalf("writing board: %v", err)
	}
	if !res.Halted {
		if hp, ok := sim.(historyProvider); ok {
			log.Printf("stopped after %d generations without a repeat in the last %d", res.Generations, hp.HistoryCapacity())
		} else {
			log.Printf("stopped after %d generations without a repeat", res.Generations)
		}
	}
}
