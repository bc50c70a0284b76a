package life

import (
	"iter"

	"gol-halt/internal/core"
)

// Life runs a Board from a Config and exposes it as a core.Sim.
type Life struct {
	cfg     Config
	board   *Board
	display *core.ByteGrid
}

// New builds a board from cfg and seeds it with cfg.Seed.
func New(cfg Config) (*Life, error) {
	board, err := NewBoard(cfg.Width, cfg.Height, cfg.History)
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, board: board, display: core.NewByteGrid(cfg.Width, cfg.Height)}
	if err := l.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the interior dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.board.Width(), H: l.board.Height()} }

// HistoryCapacity returns how many past generations are checked for repeats.
func (l *Life) HistoryCapacity() int { return l.board.HistoryCapacity() }

// Reset clears the board and history and reseeds it. seed only affects the
// random pattern.
func (l *Life) Reset(seed int64) error {
	l.board.Reset()
	pts, err := l.seedPoints(seed)
	if err != nil {
		return err
	}
	return l.board.Seed(pts)
}

func (l *Life) seedPoints(seed int64) ([]core.Point, error) {
	if l.cfg.Points != "" {
		return ParsePoints(l.cfg.Points)
	}
	return PatternPoints(l.cfg.Pattern, l.Size(), seed, l.cfg.Density)
}

// Step advances the board by one generation.
func (l *Life) Step() { l.board.AdvanceGeneration() }

// Cells returns the interior as a 0/1 buffer in row-major order.
func (l *Life) Cells() []uint8 {
	for y := 0; y < l.board.Height(); y++ {
		for x := 0; x < l.board.Width(); x++ {
			var v uint8
			if l.board.Alive(x, y) {
				v = 1
			}
			l.display.Set(x, y, v)
		}
	}
	return l.display.Cells()
}

// Population counts live cells.
func (l *Life) Population() int { return l.board.Population() }

// Halted reports whether the board reached a remembered state.
func (l *Life) Halted() bool { return l.board.Halted() }

// Generation returns the number of generations run.
func (l *Life) Generation() int { return l.board.Generation() }

// Rows yields the rendered grid.
func (l *Life) Rows() iter.Seq[string] { return l.board.Rows() }

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
