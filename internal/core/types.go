package core

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a 0-based interior coordinate.
type Point struct {
	X int
	Y int
}

// Sim defines the contract a driver needs to run a halting automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step()
	Cells() []uint8
	Halted() bool
	Generation() int
	Rows() iter.Seq[string]
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New looks up name in the registry and builds it from cfg.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", name, Names())
	}
	return f(cfg)
}

// Overrides collects repeatable key=value flags into a Factory config map.
type Overrides []string

func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set appends one key=value pair.
func (o *Overrides) Set(value string) error {
	if _, _, ok := strings.Cut(value, "="); !ok {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the overrides keyed by name; later values win.
func (o Overrides) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, kv := range o {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}
