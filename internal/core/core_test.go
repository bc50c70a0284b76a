package core

import (
	"iter"
	"slices"
	"testing"
	"time"
)

type stubSim struct{ steps int }

func (s *stubSim) Name() string           { return "stub" }
func (s *stubSim) Size() Size             { return Size{W: 1, H: 1} }
func (s *stubSim) Step()                  { s.steps++ }
func (s *stubSim) Cells() []uint8         { return []uint8{0} }
func (s *stubSim) Halted() bool           { return false }
func (s *stubSim) Generation() int        { return s.steps }
func (s *stubSim) Rows() iter.Seq[string] { return func(func(string) bool) {} }

func (s *stubSim) Reset(int64) error {
	s.steps = 0
	return nil
}

func TestRegistry(t *testing.T) {
	Register("stub-test", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-test", nil)

	if !slices.Contains(Names(), "stub-test") {
		t.Fatalf("Names()=%v, expected stub-test", Names())
	}
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty names must not register")
	}
	if _, ok := Sims()["nil-test"]; ok {
		t.Fatal("nil factories must not register")
	}

	sim, err := New("stub-test", nil)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Name() != "stub" {
		t.Fatalf("New returned %q", sim.Name())
	}
	if _, err := New("missing", nil); err == nil {
		t.Fatal("unknown sims must return an error")
	}
}

func TestByteGridSet(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 1)
	if g.Cells()[g.Index(2, 1)] != 1 {
		t.Fatal("Set/Index disagree")
	}
	g.Clear()
	if slices.Contains(g.Cells(), 1) {
		t.Fatal("Clear must zero the grid")
	}
}

func TestFixedStepNilNeverWaits(t *testing.T) {
	if NewFixedStep(0) != nil {
		t.Fatal("non-positive tps must disable pacing")
	}
	var fs *FixedStep
	if !fs.ShouldStep() {
		t.Fatal("nil FixedStep must always step")
	}
	fs.Wait()
}

func TestFixedStepFirstTickImmediate(t *testing.T) {
	fs := NewFixedStep(1000)
	start := time.Now()
	fs.Wait()
	fs.Wait()
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("two ticks at 1000 TPS took %v", elapsed)
	}
}

func TestOverrides(t *testing.T) {
	var o Overrides
	for _, kv := range []string{"w=40", "pattern=random", "w=50", "points=1,2 3,4"} {
		if err := o.Set(kv); err != nil {
			t.Fatal(err)
		}
	}
	if err := o.Set("nokey"); err == nil {
		t.Fatal("values without = must be rejected")
	}
	m := o.Map()
	if m["w"] != "50" || m["pattern"] != "random" || m["points"] != "1,2 3,4" {
		t.Fatalf("Map()=%v", m)
	}
	if len(o) != 4 || o.String() != "w=40,pattern=random,w=50,points=1,2 3,4" {
		t.Fatalf("String()=%q", o.String())
	}
}
