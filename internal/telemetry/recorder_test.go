package telemetry

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeField struct {
	gen    uint64
	values []float32
}

func (f *fakeField) Generation() uint64 { return f.gen }

func (f *fakeField) Snapshot(dst []float32) []float32 {
	return append(dst[:0], f.values...)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecorderWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf, 2, quietLogger())
	field := &fakeField{values: []float32{0, 1}}

	for gen := uint64(1); gen <= 4; gen++ {
		field.gen = gen
		sampled, err := rec.Observe(field, time.Millisecond)
		if err != nil {
			t.Fatal(err)
		}
		if want := gen%2 == 0; sampled != want {
			t.Fatalf("gen %d sampled = %v, want %v", gen, sampled, want)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "tick,mean,std_dev") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "4,0.5,") {
		t.Fatalf("last row = %q", lines[2])
	}
	if rec.Samples() != 2 || rec.Last().Tick != 4 {
		t.Fatalf("samples = %d, last tick = %d", rec.Samples(), rec.Last().Tick)
	}
}

func TestRecorderTracksDelta(t *testing.T) {
	rec := NewRecorder(nil, 1, quietLogger())
	field := &fakeField{gen: 1, values: []float32{0, 0}}
	if _, err := rec.Observe(field, 0); err != nil {
		t.Fatal(err)
	}
	field.gen = 2
	field.values = []float32{1, 0}
	if _, err := rec.Observe(field, 0); err != nil {
		t.Fatal(err)
	}
	if got := rec.Last().Delta; got != 0.5 {
		t.Fatalf("delta = %v, want 0.5", got)
	}
}

func TestCreateRecorderFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	rec, err := CreateRecorder(dir, 1, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	field := &fakeField{gen: 1, values: []float32{0.5}}
	if _, err := rec.Observe(field, 0); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "active_fraction") {
		t.Fatalf("csv missing header: %s", data)
	}
}

func TestCreateRecorderDisabled(t *testing.T) {
	rec, err := CreateRecorder("", 1, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rec.Observe(&fakeField{gen: 1, values: []float32{1}}, 0); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
}
