package core

import (
	"testing"
	"time"
)

func TestPresentGate(t *testing.T) {
	tests := []struct {
		every int
		want  []bool
	}{
		{0, []bool{true, true, true}},
		{1, []bool{true, true, true}},
		{2, []bool{false, true, false, true}},
		{3, []bool{false, false, true, false, false, true}},
	}
	for _, tt := range tests {
		gate := NewPresentGate(tt.every)
		for i, want := range tt.want {
			if got := gate.Tick(); got != want {
				t.Fatalf("every=%d tick %d: got %v, want %v", tt.every, i, got, want)
			}
		}
	}
}

func TestPresentGateReset(t *testing.T) {
	gate := NewPresentGate(2)
	gate.Tick()
	gate.Reset()
	if gate.Tick() {
		t.Fatal("first tick after Reset should not present")
	}
	if !gate.Tick() {
		t.Fatal("second tick after Reset should present")
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should step")
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}
}
