package life

import (
	"errors"
	"slices"
	"testing"

	"gol-halt/internal/core"
)

func TestParsePlaintext(t *testing.T) {
	pts := ParsePlaintext("\n!comment\n.O\n*.\n.█\n")
	expected := []core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}}
	if !slices.Equal(pts, expected) {
		t.Fatalf("points=%v, expected %v", pts, expected)
	}
}

func TestParsePoints(t *testing.T) {
	pts, err := ParsePoints("1,2 3,4;5,6")
	if err != nil {
		t.Fatal(err)
	}
	expected := []core.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	if !slices.Equal(pts, expected) {
		t.Fatalf("points=%v, expected %v", pts, expected)
	}

	for _, bad := range []string{"1", "a,2", "1,b"} {
		if _, err := ParsePoints(bad); err == nil {
			t.Fatalf("ParsePoints(%q) must fail", bad)
		}
	}
}

func TestPatternPoints(t *testing.T) {
	size := core.Size{W: 10, H: 10}
	block, err := PatternPoints(PatternBlock, size, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	expected := []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}}
	if !slices.Equal(block, expected) {
		t.Fatalf("block=%v, expected %v", block, expected)
	}

	glider, err := PatternPoints(PatternGlider, size, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(glider) != 5 || glider[0] != (core.Point{X: 1, Y: 0}) {
		t.Fatalf("glider=%v", glider)
	}

	if _, err := PatternPoints("nope", size, 0, 0); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err=%v, expected ErrUnknownPattern", err)
	}
}

func TestRandomPatternDensity(t *testing.T) {
	size := core.Size{W: 40, H: 40}
	empty, err := PatternPoints(PatternRandom, size, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("density 0 produced %d points", len(empty))
	}
	full, err := PatternPoints(PatternRandom, size, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(full) != size.W*size.H {
		t.Fatalf("density 1 produced %d points, expected %d", len(full), size.W*size.H)
	}
	a, _ := PatternPoints(PatternRandom, size, 9, 0.5)
	b, _ := PatternPoints(PatternRandom, size, 9, 0.5)
	if !slices.Equal(a, b) {
		t.Fatal("random pattern must be deterministic per seed")
	}
}

func TestPatternNames(t *testing.T) {
	names := PatternNames()
	for _, want := range []string{PatternBlinker, PatternBlock, PatternGlider, PatternGliderPair, PatternRandom} {
		if !slices.Contains(names, want) {
			t.Fatalf("PatternNames()=%v missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("PatternNames()=%v not sorted", names)
	}
}
