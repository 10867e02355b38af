package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestCompute(t *testing.T) {
	values := []float64{0, 0.25, 0.75, 1}
	prev := []float64{0, 0.5, 0.75, 0}
	s := Compute(7, values, prev, 3*time.Millisecond)

	if s.Tick != 7 {
		t.Fatalf("tick = %d", s.Tick)
	}
	if math.Abs(s.Mean-0.5) > 1e-12 {
		t.Errorf("mean = %v, want 0.5", s.Mean)
	}
	// Sample standard deviation of {0, .25, .75, 1}.
	if want := math.Sqrt(0.625 / 3); math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("std dev = %v, want %v", s.StdDev, want)
	}
	if s.Min != 0 || s.Max != 1 {
		t.Errorf("min/max = %v/%v", s.Min, s.Max)
	}
	if s.Active != 0.5 {
		t.Errorf("active = %v, want 0.5", s.Active)
	}
	if math.Abs(s.Delta-1.25/4) > 1e-12 {
		t.Errorf("delta = %v, want %v", s.Delta, 1.25/4)
	}
	if s.StepMS != 3 {
		t.Errorf("step ms = %v", s.StepMS)
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(1, nil, nil, 0)
	if s.Mean != 0 || s.Max != 0 || s.Active != 0 {
		t.Fatalf("empty field should summarize to zeros, got %+v", s)
	}
}

func TestComputeIgnoresMismatchedPrev(t *testing.T) {
	s := Compute(1, []float64{1, 1}, []float64{0}, 0)
	if s.Delta != 0 {
		t.Fatalf("delta = %v, want 0", s.Delta)
	}
}
