package life

// Cell is one grid square: its liveness plus the number of live cells that
// touched it during the current generation.
type Cell struct {
	alive   bool
	touches uint8
}

// Touch records one live neighbour.
func (c *Cell) Touch() { c.touches++ }

// Untouch cancels a live cell's touch on itself. It panics on underflow,
// which means the touch phase visited a cell it had not touched.
func (c *Cell) Untouch() {
	if c.touches == 0 {
		panic("life: untouch on a cell with no touches")
	}
	c.touches--
}

// Commit applies the Life rule to the accumulated touches: three makes the
// cell live, two keeps its state, anything else kills it. Touches reset.
func (c *Cell) Commit() {
	switch c.touches {
	case 3:
		c.alive = true
	case 2:
	default:
		c.alive = false
	}
	c.touches = 0
}

// Alive reports whether the cell is live.
func (c Cell) Alive() bool { return c.alive }

// Touches returns the pending touch count.
func (c Cell) Touches() int { return int(c.touches) }

// SetAlive overrides the cell's state; used for seeding.
func (c *Cell) SetAlive(alive bool) { c.alive = alive }
