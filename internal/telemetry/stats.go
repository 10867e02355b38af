package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ActiveThreshold is the value above which a cell counts as lit.
const ActiveThreshold = 0.5

// Stats summarizes the field after one tick.
type Stats struct {
	Tick     uint64        `csv:"tick"`
	Mean     float64       `csv:"mean"`
	StdDev   float64       `csv:"std_dev"`
	Min      float64       `csv:"min"`
	Max      float64       `csv:"max"`
	Active   float64       `csv:"active_fraction"`
	Delta    float64       `csv:"mean_abs_delta"`
	StepTime time.Duration `csv:"-"`
	StepMS   float64       `csv:"step_ms"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("tick", s.Tick),
		slog.Float64("mean", s.Mean),
		slog.Float64("std_dev", s.StdDev),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
		slog.Float64("active", s.Active),
		slog.Float64("delta", s.Delta),
		slog.Duration("step", s.StepTime.Round(time.Microsecond)),
	)
}

// Compute summarizes values. prev, when the same length as values, is the
// field from the previous sample and feeds the mean absolute change.
func Compute(tick uint64, values, prev []float64, stepTime time.Duration) Stats {
	s := Stats{
		Tick:     tick,
		StepTime: stepTime,
		StepMS:   float64(stepTime) / float64(time.Millisecond),
	}
	if len(values) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)

	active := 0
	for _, v := range values {
		if v > ActiveThreshold {
			active++
		}
	}
	s.Active = float64(active) / float64(len(values))

	if len(prev) == len(values) {
		s.Delta = floats.Distance(values, prev, 1) / float64(len(values))
	}
	return s
}

// Widen converts a float32 field into dst, reusing its storage.
func Widen(dst []float64, src []float32) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}
