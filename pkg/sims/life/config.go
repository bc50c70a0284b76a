package life

import "strconv"

// Config controls the board dimensions, lookback window and seed pattern.
type Config struct {
	Width   int
	Height  int
	History int

	// Pattern names a built-in pattern; see PatternNames. Points, when
	// set, takes precedence and lists explicit "x,y" coordinates.
	Pattern string
	Points  string

	// Seed and Density drive the random pattern.
	Seed    int64
	Density float64
}

// DefaultConfig returns the standard configuration: a 25x25 board with 100
// generations of lookback seeded with the glider pair.
func DefaultConfig() Config {
	return Config{
		Width:   25,
		Height:  25,
		History: 100,
		Pattern: PatternGliderPair,
		Seed:    42,
		Density: 0.3,
	}
}

// FromMap populates a Config from a string map. Values that fail to parse or
// are out of range keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.History = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["points"]; ok {
		c.Points = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
