// Package console prints a simulation to a text stream one generation at a
// time until it halts.
package console

import (
	"bufio"
	"io"
	"strings"

	"gol-halt/internal/core"
)

// Separator is written after every rendered generation.
var Separator = strings.Repeat("=", 38)

// Options tunes a Run.
type Options struct {
	// MaxGenerations stops the run after that many generations even if the
	// board has not halted. Zero means no limit.
	MaxGenerations int
	// Pacer throttles generations; nil runs unthrottled.
	Pacer *core.FixedStep
}

// Result summarises a finished Run.
type Result struct {
	Generations int
	Halted      bool
}

// Run writes the current state of sim, then steps and writes it until it
// halts or the generation cap is reached.
func Run(sim core.Sim, w io.Writer, opts Options) (Result, error) {
	bw := bufio.NewWriter(w)
	if err := writeFrame(bw, sim); err != nil {
		return Result{}, err
	}
	for !sim.Halted() {
		if opts.MaxGenerations > 0 && sim.Generation() >= opts.MaxGenerations {
			break
		}
		opts.Pacer.Wait()
		sim.Step()
		if err := writeFrame(bw, sim); err != nil {
			return Result{Generations: sim.Generation()}, err
		}
	}
	return Result{Generations: sim.Generation(), Halted: sim.Halted()}, nil
}

func writeFrame(bw *bufio.Writer, sim core.Sim) error {
	for row := range sim.Rows() {
		bw.WriteString(row)
		bw.WriteByte('\n')
	}
	bw.WriteString(Separator)
	bw.WriteByte('\n')
	return bw.Flush()
}
