package neural

import (
	"image/color"

	"simple-nca/internal/core"
	"simple-nca/pkg/nca"
)

// World adapts an nca.Engine to the core.Sim contract.
type World struct {
	cfg    Config
	seed   int64
	engine *nca.Engine
}

// NewWithConfig builds a world from cfg.
func NewWithConfig(cfg Config) *World {
	engine := nca.NewWithConfig(nca.Config{
		Rows:    cfg.Width,
		Cols:    cfg.Height,
		Seed:    cfg.Seed,
		Workers: cfg.Workers,
	})
	engine.ConfigureProfile(cfg.Profile)
	engine.SetBoundaryColors(cfg.Low, cfg.High)
	return &World{cfg: cfg, seed: cfg.Seed, engine: engine}
}

// Name returns the profile name.
func (w *World) Name() string { return w.cfg.Profile.Name }

// Size returns the field dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: w.engine.Rows(), H: w.engine.Cols()}
}

// Reset refills the field. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	w.engine.Reset(seed)
}

// Step advances the field one generation.
func (w *World) Step() { w.engine.Step() }

// ColorAt returns the display color of cell (x, y).
func (w *World) ColorAt(x, y int) color.RGBA {
	return w.engine.ColorAt(x, y).RGBA()
}

// Engine exposes the underlying engine.
func (w *World) Engine() *nca.Engine { return w.engine }

// Seed returns the seed of the last reset.
func (w *World) Seed() int64 { return w.seed }

// Profile reports the active pairing, including any live kernel edits.
func (w *World) Profile() nca.Profile {
	return nca.Profile{
		Name:       w.cfg.Profile.Name,
		Kernel:     w.engine.Kernel(),
		Activation: w.engine.Activation(),
	}
}

// RegisterProfile makes p available in the sim registry under its name.
func RegisterProfile(p nca.Profile) {
	core.Register(p.Name, func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Profile = p
		return NewWithConfig(c)
	})
}

func init() {
	for _, p := range nca.Profiles() {
		RegisterProfile(p)
	}
}
