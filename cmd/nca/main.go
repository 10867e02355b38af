//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"simple-nca/internal/app"
	"simple-nca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	session, err := cfg.Session(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Prompt {
		session.Profile = app.PromptProfile(os.Stdin, os.Stdout, core.SimNames())
	}

	sim, err := app.OpenSim(session)
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("starting", "sim", sim.Name(), "size", sim.Size(), "seed", session.World.Seed)

	game := app.New(sim, session.Display.Scale, session.World.Seed, session.Display.PresentEvery)

	ebiten.SetWindowTitle("Neural Cellular Automata — " + sim.Name())
	ebiten.SetTPS(session.Display.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
