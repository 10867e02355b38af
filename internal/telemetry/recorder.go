package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

// Field is the read-only view of an engine the recorder samples.
type Field interface {
	Generation() uint64
	Snapshot(dst []float32) []float32
}

// Recorder samples a field every Every ticks, logs the summary and appends it
// to a CSV stream.
type Recorder struct {
	every  int
	out    io.Writer
	closer io.Closer
	logger *slog.Logger

	headerWritten bool
	raw           []float32
	cur, prev     []float64
	last          Stats
	samples       int
}

// NewRecorder builds a recorder writing CSV rows to out. out may be nil to
// only log. every < 1 samples each tick.
func NewRecorder(out io.Writer, every int, logger *slog.Logger) *Recorder {
	if every < 1 {
		every = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{every: every, out: out, logger: logger}
}

// CreateRecorder opens dir/telemetry.csv for writing. An empty dir disables
// the CSV output.
func CreateRecorder(dir string, every int, logger *slog.Logger) (*Recorder, error) {
	if dir == "" {
		return NewRecorder(nil, every, logger), nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	r := NewRecorder(f, every, logger)
	r.closer = f
	return r, nil
}

// Observe records the field after a step that took stepTime. It returns true
// when a sample was taken.
func (r *Recorder) Observe(f Field, stepTime time.Duration) (bool, error) {
	tick := f.Generation()
	if tick%uint64(r.every) != 0 {
		return false, nil
	}
	r.raw = f.Snapshot(r.raw)
	r.cur = Widen(r.cur, r.raw)
	stats := Compute(tick, r.cur, r.prev, stepTime)
	r.cur, r.prev = r.prev, r.cur
	r.last = stats
	r.samples++

	r.logger.Info("field sample", "stats", stats)
	if err := r.write(stats); err != nil {
		return true, err
	}
	return true, nil
}

func (r *Recorder) write(stats Stats) error {
	if r.out == nil {
		return nil
	}
	records := []Stats{stats}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Last returns the most recent sample.
func (r *Recorder) Last() Stats { return r.last }

// Samples counts samples taken.
func (r *Recorder) Samples() int { return r.samples }

// Close closes the CSV file opened by CreateRecorder. Further calls are
// no-ops.
func (r *Recorder) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer, r.out = nil, nil
	return c.Close()
}
