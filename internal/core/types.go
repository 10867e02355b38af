package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation field in pixels.
type Size struct {
	W int
	H int
}

// Sim defines the contract the host loop drives: advance one tick, then pull
// a color for every pixel.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	ColorAt(x, y int) color.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name. Registering an
// existing name replaces it.
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

// SimNames lists registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
