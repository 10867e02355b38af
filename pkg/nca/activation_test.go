package nca

import (
	"math"
	"testing"
)

func TestActivationClosedForms(t *testing.T) {
	tests := []struct {
		act  Activation
		x    float64
		want float64
	}{
		{Identity, -0.3, -0.3},
		{Sine, 1.1, math.Sin(1.1)},
		{Square, -0.7, 0.49},
		{Absolute, -0.7, 0.7},
		{ScaledAbsolute, -0.5, 0.6},
		{Tanh, 0.8, math.Tanh(0.8)},
		{InverseGaussian, 1, 0.5},
		{InverseGaussian, 0, 0},
		{SpecialGaussian, 1, 1 - 1/1.89},
		{WormGaussian, 1, 1 - math.Pow(2, -0.6)},
		{CellGaussian, -1, 1 - 1/1.9},
		{CellGaussian, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.act.Name(), func(t *testing.T) {
			got := tt.act.Activate(float32(tt.x))
			if math.Abs(float64(got)-tt.want) > 1e-6 {
				t.Fatalf("%s(%v) = %v, want %v", tt.act.Name(), tt.x, got, tt.want)
			}
		})
	}
}

func TestZeroActivationIsIdentity(t *testing.T) {
	var a Activation
	for _, x := range []float32{-2, 0, 0.25, 7} {
		if got := a.Activate(x); got != x {
			t.Fatalf("Activate(%v) = %v", x, got)
		}
	}
	if a.Name() != "identity" {
		t.Fatalf("Name = %q", a.Name())
	}
	if got := NewActivation("custom", nil).Activate(3); got != 3 {
		t.Fatalf("nil function should pass values through, got %v", got)
	}
}

func TestActivationByName(t *testing.T) {
	for _, name := range []string{"special-gaussian", "Special Gaussian", "SPECIAL_GAUSSIAN"} {
		a, ok := ActivationByName(name)
		if !ok || a.Name() != "special-gaussian" {
			t.Fatalf("ActivationByName(%q) = %q, %v", name, a.Name(), ok)
		}
	}
	if _, ok := ActivationByName("relu"); ok {
		t.Fatal("unknown activation should not resolve")
	}
	if len(Activations()) != 10 {
		t.Fatalf("catalogue has %d entries, want 10", len(Activations()))
	}
}
