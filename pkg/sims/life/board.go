package life

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"gol-halt/internal/core"
	"gol-halt/pkg/ring"
)

var (
	// ErrInvalidSize reports non-positive grid dimensions.
	ErrInvalidSize = errors.New("life: grid dimensions must be positive")
	// ErrOutOfBounds reports a seed point outside the interior.
	ErrOutOfBounds = errors.New("life: point outside grid interior")
)

// Glyphs used by Rows.
const (
	LiveGlyph = '*'
	DeadGlyph = ' '
)

// Board is a bounded Life grid surrounded by a ring of permanently dead
// cells, with a bounded history of fingerprints for cycle detection.
//
// The fingerprint of each state is recorded just before the state is
// replaced, so after a generation the history holds every earlier state in
// the lookback window. The board halts when the state it just reached is one
// of them. Cycles longer than the history capacity are never detected.
type Board struct {
	w, h    int
	stride  int
	cells   []Cell
	history *ring.Ring[Fingerprint]

	current Fingerprint
	gen     int
	halted  bool
}

// NewBoard allocates an all-dead w*h board remembering up to historyCapacity
// past fingerprints.
func NewBoard(w, h, historyCapacity int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	history, err := ring.New[Fingerprint](historyCapacity, 0)
	if err != nil {
		return nil, fmt.Errorf("life: history: %w", err)
	}
	b := &Board{
		w:       w,
		h:       h,
		stride:  w + 2,
		cells:   make([]Cell, (w+2)*(h+2)),
		history: history,
	}
	b.current = b.hash()
	return b, nil
}

// Width returns the interior width.
func (b *Board) Width() int { return b.w }

// Height returns the interior height.
func (b *Board) Height() int { return b.h }

// Generation returns the number of generations advanced since the last reset.
func (b *Board) Generation() int { return b.gen }

// HistoryCapacity returns the lookback window in generations.
func (b *Board) HistoryCapacity() int { return b.history.Cap() }

func (b *Board) at(x, y int) *Cell { return &b.cells[y*b.stride+x] }

// Alive reports whether the interior cell at 0-based (x, y) is live.
func (b *Board) Alive(x, y int) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	return b.at(x+1, y+1).alive
}

// Population counts live interior cells.
func (b *Board) Population() int {
	n := 0
	for y := 1; y <= b.h; y++ {
		for x := 1; x <= b.w; x++ {
			if b.at(x, y).alive {
				n++
			}
		}
	}
	return n
}

// Seed marks the given 0-based interior points live. Either every point is
// applied or, if any lies outside the interior, none is.
func (b *Board) Seed(points []core.Point) error {
	for _, p := range points {
		if p.X < 0 || p.Y < 0 || p.X >= b.w || p.Y >= b.h {
			return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, p.X, p.Y, b.w, b.h)
		}
	}
	for _, p := range points {
		b.at(p.X+1, p.Y+1).SetAlive(true)
	}
	b.current = b.hash()
	b.halted = b.history.Contains(b.current)
	return nil
}

// Reset kills every cell and forgets the history.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
	b.history.Reset()
	b.gen = 0
	b.halted = false
	b.current = b.hash()
}

// AdvanceGeneration computes the next state in place. It does nothing once
// the board has halted.
func (b *Board) AdvanceGeneration() {
	if b.halted {
		return
	}
	b.touchPhase()
	b.CommitAndRecord()
}

// touchPhase lets every live interior cell touch its 3x3 neighbourhood, then
// withdraws the touch on itself. Liveness is not written here, so every read
// sees the previous generation.
func (b *Board) touchPhase() {
	for y := 1; y <= b.h; y++ {
		for x := 1; x <= b.w; x++ {
			if !b.at(x, y).alive {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				row := (y + dy) * b.stride
				b.cells[row+x-1].Touch()
				b.cells[row+x].Touch()
				b.cells[row+x+1].Touch()
			}
			b.at(x, y).Untouch()
		}
	}
}

// CommitAndRecord records the fingerprint of the current state, applies the
// accumulated touches to every cell and checks the resulting state against
// the history.
func (b *Board) CommitAndRecord() {
	b.history.Enqueue(b.current)
	b.commitPhase()
	b.gen++
	b.current = b.hash()
	b.halted = b.history.Contains(b.current)
}

func (b *Board) commitPhase() {
	for y := 1; y <= b.h; y++ {
		row := b.cells[y*b.stride : (y+1)*b.stride]
		for x := 1; x <= b.w; x++ {
			row[x].Commit()
		}
		// Edge cells touch the border; those counts are never read.
		row[0].touches = 0
		row[b.w+1].touches = 0
	}
	top := b.cells[:b.stride]
	bottom := b.cells[(b.h+1)*b.stride:]
	for x := range top {
		top[x].touches = 0
		bottom[x].touches = 0
	}
}

func (b *Board) hash() Fingerprint { return Hash(b.cells, b.w, b.h) }

// Fingerprint returns the digest of the current interior state.
func (b *Board) Fingerprint() Fingerprint { return b.current }

// IsRepeat reports whether the current state's fingerprint is in the history.
func (b *Board) IsRepeat() bool { return b.history.Contains(b.hash()) }

// Halted reports whether the board has returned to a remembered state.
func (b *Board) Halted() bool { return b.halted }

// Rows yields the full bordered grid, one bracketed line per grid row.
func (b *Board) Rows() iter.Seq[string] {
	return func(yield func(string) bool) {
		var sb strings.Builder
		for y := 0; y < b.h+2; y++ {
			sb.Reset()
			sb.WriteByte('[')
			for _, c := range b.cells[y*b.stride : (y+1)*b.stride] {
				if c.alive {
					sb.WriteByte(LiveGlyph)
				} else {
					sb.WriteByte(DeadGlyph)
				}
			}
			sb.WriteByte(']')
			if !yield(sb.String()) {
				return
			}
		}
	}
}
