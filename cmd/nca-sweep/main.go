// Command nca-sweep scales a profile's center and side weights over a grid of
// factors, runs every variant headless and ranks them by how much structure
// and motion their final field shows. The best grid point can then be
// refined with Nelder-Mead and saved as a session file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"simple-nca/internal/config"
	"simple-nca/internal/telemetry"
	"simple-nca/pkg/nca"
)

type variant struct {
	center float32
	side   float32
}

func (v variant) String() string {
	return fmt.Sprintf("center×%.2f side×%.2f", v.center, v.side)
}

type result struct {
	CenterScale float32 `csv:"center_scale"`
	SideScale   float32 `csv:"side_scale"`
	Mean        float64 `csv:"mean"`
	StdDev      float64 `csv:"std_dev"`
	Active      float64 `csv:"active_fraction"`
	Delta       float64 `csv:"mean_abs_delta"`
	Score       float64 `csv:"score"`
}

func main() {
	profile := flag.String("profile", "worm", "profile to vary")
	size := flag.Int("size", 96, "field edge length in cells")
	steps := flag.Int("steps", 200, "ticks to simulate per variant")
	seed := flag.Int64("seed", 1337, "seed shared by every variant")
	workers := flag.Int("workers", runtime.NumCPU(), "variants evaluated in parallel")
	csvPath := flag.String("csv", "", "write every result to this CSV file")
	refineEvals := flag.Int("refine-evals", 0, "Nelder-Mead evaluations after the grid (0 = skip)")
	outConfig := flag.String("out-config", "", "save the best variant as a session YAML file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	base, ok := nca.FindProfile(*profile)
	if !ok {
		logger.Error("unknown profile", "profile", *profile)
		os.Exit(2)
	}
	factors := []float32{0.8, 0.9, 1.0, 1.1, 1.2}
	var variants []variant
	for _, c := range factors {
		for _, s := range factors {
			variants = append(variants, variant{center: c, side: s})
		}
	}
	logger.Info("sweeping", "profile", base.Name, "variants", len(variants), "workers", *workers, "steps", *steps)

	jobs := make(chan variant)
	results := make(chan result)
	var wg sync.WaitGroup
	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range jobs {
				results <- evaluate(base, v, *size, *steps, *seed)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for _, v := range variants {
			jobs <- v
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Score > all[j].Score })

	fmt.Printf("\nTop 5 of %d variants (elapsed %s):\n", len(all), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		r := all[i]
		fmt.Printf("%2d) score=%.4f std=%.4f delta=%.4f active=%.3f %s\n",
			i+1, r.Score, r.StdDev, r.Delta, r.Active, variant{r.CenterScale, r.SideScale})
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, all); err != nil {
			logger.Error("writing results", "error", err)
			os.Exit(1)
		}
	}
	if len(all) == 0 {
		return
	}

	best := all[0]
	if *refineEvals > 0 {
		best = refine(base, variant{best.CenterScale, best.SideScale}, *size, *steps, *seed, *refineEvals, logger)
		fmt.Printf("\nRefined: score=%.4f std=%.4f delta=%.4f %s\n",
			best.Score, best.StdDev, best.Delta, variant{best.CenterScale, best.SideScale})
	}
	if *outConfig != "" {
		tuned := tunedProfile(base, variant{best.CenterScale, best.SideScale})
		if err := saveSession(*outConfig, tuned); err != nil {
			logger.Error("writing config", "error", err)
			os.Exit(1)
		}
		logger.Info("config written", "path", *outConfig, "profile", tuned.Name)
	}
}

// Scale factors explored by refine are kept inside this range.
const (
	minScale = 0.25
	maxScale = 2.0
)

// refine searches around start for a higher score. The search minimizes the
// negated score; the best variant seen at any evaluation is returned.
func refine(base nca.Profile, start variant, size, steps int, seed int64, evals int, logger *slog.Logger) result {
	best := evaluate(base, start, size, steps, seed)
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			v := variant{center: clampScale(x[0]), side: clampScale(x[1])}
			r := evaluate(base, v, size, steps, seed)
			if r.Score > best.Score {
				best = r
			}
			return -r.Score
		},
	}
	settings := &optimize.Settings{FuncEvaluations: evals}
	x0 := []float64{float64(start.center), float64(start.side)}
	if _, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{}); err != nil {
		logger.Warn("refinement ended early", "error", err)
	}
	return best
}

func clampScale(x float64) float32 {
	return float32(min(max(x, minScale), maxScale))
}

// tunedProfile applies v to base under a new name.
func tunedProfile(base nca.Profile, v variant) nca.Profile {
	return nca.Profile{
		Name:       base.Name + "-tuned",
		Kernel:     scaleKernel(base.Kernel, v),
		Activation: base.Activation,
	}
}

// saveSession writes the default session with p added and selected.
func saveSession(path string, p nca.Profile) error {
	cfg := config.Default()
	w := p.Kernel.Weights()
	cfg.Profile = p.Name
	cfg.Profiles = []config.ProfileConfig{{
		Name:       p.Name,
		Kernel:     w[:],
		Activation: p.Activation.Name(),
	}}
	return cfg.WriteYAML(path)
}

// scaleKernel multiplies the center weight by v.center and the four
// edge-adjacent weights by v.side.
func scaleKernel(k nca.Kernel, v variant) nca.Kernel {
	k = k.With(1, 1, k.At(1, 1)*v.center)
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}} {
		k = k.With(rc[0], rc[1], k.At(rc[0], rc[1])*v.side)
	}
	return k
}

// evaluate runs one variant and scores its final field. Fields that die out
// or freeze score near zero.
func evaluate(base nca.Profile, v variant, size, steps int, seed int64) result {
	e := nca.NewWithConfig(nca.Config{Rows: size, Cols: size, Seed: seed, Workers: 1})
	e.Configure(scaleKernel(base.Kernel, v), base.Activation)

	var prev []float64
	var raw []float32
	for i := 0; i < steps; i++ {
		if i == steps-1 {
			raw = e.Snapshot(raw)
			prev = telemetry.Widen(prev, raw)
		}
		e.Step()
	}
	raw = e.Snapshot(raw)
	stats := telemetry.Compute(e.Generation(), telemetry.Widen(nil, raw), prev, 0)
	return result{
		CenterScale: v.center,
		SideScale:   v.side,
		Mean:        stats.Mean,
		StdDev:      stats.StdDev,
		Active:      stats.Active,
		Delta:       stats.Delta,
		Score:       stats.StdDev + stats.Delta,
	}
}

func writeCSV(path string, rows []result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
