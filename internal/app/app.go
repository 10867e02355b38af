//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"simple-nca/internal/core"
	"simple-nca/internal/render"
	"simple-nca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in screen pixels.
const HUDWidth = 220

// Game adapts a core simulation to the ebiten.Game interface. The painter is
// only refreshed every few ticks, so Draw keeps showing the last presented
// frame in between.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	gate    *core.PresentGate

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for sim. presentEvery sets how many ticks pass
// between presented frames.
func New(sim core.Sim, scale int, seed int64, presentEvery int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, HUDWidth),
		gate:    core.NewPresentGate(presentEvery),
		scale:   scale,
		seed:    seed,
	}
	g.painter.Refresh(sim)
	return g
}

// Reset reseeds the simulation and presents the new field immediately.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.gate.Reset()
	g.painter.Refresh(g.sim)
	slog.Info("field reset", "sim", g.sim.Name(), "seed", seed)
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update(g.fieldWidth())

	if !g.paused || g.tickOnce {
		g.sim.Step()
		// Single steps are always presented.
		if g.gate.Tick() || g.tickOnce {
			g.painter.Refresh(g.sim)
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the last presented frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.hud.Draw(screen, g.fieldWidth(), g.scale)
}

// Layout returns the logical screen size: the scaled field plus the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fieldWidth() + g.hud.Width(), g.sim.Size().H * g.scale
}

func (g *Game) fieldWidth() int {
	return g.sim.Size().W * g.scale
}
