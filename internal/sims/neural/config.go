package neural

import (
	"strconv"

	"simple-nca/pkg/nca"
)

// Config controls the neural automaton world.
type Config struct {
	// Width is the engine's first axis and Height its second; pixel (x, y)
	// shows cell (x, y).
	Width  int
	Height int

	Seed    int64
	Workers int

	Profile nca.Profile

	Low  nca.Color
	High nca.Color
}

// DefaultConfig returns the standard configuration: a 1080x600 worm field
// drawn from black to green.
func DefaultConfig() Config {
	return Config{
		Width:   1080,
		Height:  600,
		Seed:    42,
		Profile: nca.Worm,
		Low:     nca.Color{},
		High:    nca.Color{G: 0xff},
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["profile"]; ok {
		c.Profile = nca.LookupProfile(v)
	}
	if v, ok := cfg["low"]; ok {
		if parsed, err := nca.ParseColor(v); err == nil {
			c.Low = parsed
		}
	}
	if v, ok := cfg["high"]; ok {
		if parsed, err := nca.ParseColor(v); err == nil {
			c.High = parsed
		}
	}
	return c
}
