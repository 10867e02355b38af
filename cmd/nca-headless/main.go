// Command nca-headless runs a neural automaton without a window, logging
// field statistics and optionally writing telemetry CSV and a final frame.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"simple-nca/internal/app"
	"simple-nca/internal/core"
	"simple-nca/internal/render"
	"simple-nca/internal/telemetry"
	"simple-nca/pkg/nca"
)

type engineSim interface {
	core.Sim
	Engine() *nca.Engine
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 600, "ticks to simulate")
	every := flag.Int("every", 60, "ticks between telemetry samples")
	outputDir := flag.String("output-dir", "", "directory for telemetry.csv and frame.png (empty = log only)")
	frame := flag.Bool("png", true, "write the final field as frame.png (needs -output-dir)")
	pace := flag.Bool("pace", false, "run at the configured TPS instead of flat out")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(cfg, *steps, *every, *outputDir, *frame, *pace, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, steps, every int, outputDir string, frame, pace bool, logger *slog.Logger) error {
	session, err := cfg.Session(flag.CommandLine)
	if err != nil {
		return err
	}
	sim, err := app.OpenSim(session)
	if err != nil {
		return err
	}
	world, ok := sim.(engineSim)
	if !ok {
		return fmt.Errorf("sim %q does not expose an engine", sim.Name())
	}

	rec, err := telemetry.CreateRecorder(outputDir, every, logger)
	if err != nil {
		return err
	}
	defer rec.Close()

	logger.Info("starting",
		"sim", sim.Name(),
		"width", session.World.Width,
		"height", session.World.Height,
		"seed", session.World.Seed,
		"steps", steps,
	)

	var clock *core.FixedStep
	if pace {
		clock = core.NewFixedStep(session.Display.TPS)
	}
	start := time.Now()
	for i := 0; i < steps; i++ {
		if clock != nil {
			clock.Wait()
		}
		t0 := time.Now()
		world.Step()
		if _, err := rec.Observe(world.Engine(), time.Since(t0)); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	logger.Info("finished",
		"generation", world.Engine().Generation(),
		"samples", rec.Samples(),
		"elapsed", elapsed.Round(time.Millisecond).String(),
		"tps", float64(steps)/elapsed.Seconds(),
	)

	if frame && outputDir != "" {
		path := filepath.Join(outputDir, "frame.png")
		if err := writePNG(path, world); err != nil {
			return err
		}
		logger.Info("frame written", "path", path)
	}
	return rec.Close()
}

func writePNG(path string, src render.ColorSource) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating frame: %w", err)
	}
	if err := png.Encode(f, render.Frame(src)); err != nil {
		f.Close()
		return fmt.Errorf("encoding frame: %w", err)
	}
	return f.Close()
}
