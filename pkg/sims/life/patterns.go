package life

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gol-halt/internal/core"
	prng "gol-halt/pkg/core"
)

// Built-in pattern names.
const (
	PatternGliderPair = "glider-pair"
	PatternBlock      = "block"
	PatternBlinker    = "blinker"
	PatternGlider     = "glider"
	PatternRandom     = "random"
)

// ErrUnknownPattern reports a pattern name with no definition.
var ErrUnknownPattern = errors.New("life: unknown pattern")

type pattern struct {
	drawing string
	// centred patterns are offset from (w/2, h/2), others from (0, 0).
	centred bool
}

var patterns = map[string]pattern{
	PatternGliderPair: {centred: true, drawing: `
.O....O.
OO....OO
.O....O.`},
	PatternBlock: {centred: true, drawing: `
OO
OO`},
	PatternBlinker: {centred: true, drawing: `
OOO`},
	PatternGlider: {drawing: `
.O.
..O
OOO`},
}

// PatternNames lists the built-in patterns, including random.
func PatternNames() []string {
	names := []string{PatternRandom}
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternPoints resolves a named pattern to interior coordinates for a grid
// of the given size. The random pattern fills each cell with probability
// density using seed.
func PatternPoints(name string, size core.Size, seed int64, density float64) ([]core.Point, error) {
	if name == PatternRandom {
		return randomPoints(size, seed, density), nil
	}
	p, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownPattern, name, strings.Join(PatternNames(), ", "))
	}
	var ox, oy int
	if p.centred {
		ox, oy = size.W/2, size.H/2
	}
	pts := ParsePlaintext(p.drawing)
	for i := range pts {
		pts[i].X += ox
		pts[i].Y += oy
	}
	return pts, nil
}

func randomPoints(size core.Size, seed int64, density float64) []core.Point {
	rng := prng.NewRNG(seed)
	var pts []core.Point
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if rng.Chance(density) {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// ParsePlaintext reads a drawing where 'O', '*' or '█' mark live cells.
// Blank lines before the first row and lines starting with '!' are skipped.
func ParsePlaintext(pic string) []core.Point {
	var pts []core.Point
	y := 0
	started := false
	for _, line := range strings.Split(pic, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "!") || (!started && strings.TrimSpace(line) == "") {
			continue
		}
		started = true
		x := 0
		for _, ch := range line {
			if ch == 'O' || ch == '*' || ch == '█' {
				pts = append(pts, core.Point{X: x, Y: y})
			}
			x++
		}
		y++
	}
	return pts
}

// ParsePoints reads "x,y" pairs separated by spaces or semicolons.
func ParsePoints(s string) ([]core.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ';' || r == '\t' })
	pts := make([]core.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("life: point %q is not x,y", f)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("life: point %q: %w", f, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("life: point %q: %w", f, err)
		}
		pts = append(pts, core.Point{X: x, Y: y})
	}
	return pts, nil
}
