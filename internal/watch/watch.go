// Package watch redraws a simulation in place on a terminal screen.
package watch

import (
	"fmt"
	"time"

	"gol-halt/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Options tunes a viewer session.
type Options struct {
	TPS  int
	Seed int64
}

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	frameStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Draw paints the rendered rows of sim followed by a status line. Live cells
// are coloured from the simulation's cell buffer; rows carry a bracket and a
// border column before the first interior cell.
func Draw(screen tcell.Screen, sim core.Sim, status string) {
	screen.Clear()
	size := sim.Size()
	cells := sim.Cells()
	y := 0
	for row := range sim.Rows() {
		x := 0
		for _, r := range row {
			style := frameStyle
			cx, cy := x-2, y-1
			if cx >= 0 && cy >= 0 && cx < size.W && cy < size.H && cells[cy*size.W+cx] != 0 {
				style = liveStyle
			}
			screen.SetContent(x, y, r, nil, style)
			x++
		}
		y++
	}
	for x, r := range []rune(status) {
		screen.SetContent(x, y, r, nil, statusStyle)
	}
	screen.Show()
}

// Status describes the run state shown under the grid.
func Status(sim core.Sim, paused bool) string {
	state := "running"
	switch {
	case sim.Halted():
		state = "halted"
	case paused:
		state = "paused"
	}
	return fmt.Sprintf("%s gen %d %s  [space] pause [n] step [r] reset [q] quit", sim.Name(), sim.Generation(), state)
}

// Run steps sim at opts.TPS and redraws it after every change until the user
// quits. Stepping stops once the simulation halts.
func Run(screen tcell.Screen, sim core.Sim, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = 10
	}
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(opts.TPS))
	defer ticker.Stop()

	paused := false
	Draw(screen, sim, Status(sim, paused))
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil
				}
				switch ev.Rune() {
				case ' ':
					paused = !paused
				case 'n':
					if !sim.Halted() {
						sim.Step()
					}
				case 'r':
					if err := sim.Reset(opts.Seed); err != nil {
						return err
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if paused || sim.Halted() {
				continue
			}
			sim.Step()
		}
		Draw(screen, sim, Status(sim, paused))
	}
}
