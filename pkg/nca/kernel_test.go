package nca

import "testing"

func TestKernelAtOutOfRange(t *testing.T) {
	k := NewKernel(1, 2, 3, 4, 5, 6, 7, 8, 9)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {3, 1}, {1, 3}, {9, 9}} {
		if got := k.At(idx[0], idx[1]); got != 0 {
			t.Fatalf("At(%d,%d) = %v, want 0", idx[0], idx[1], got)
		}
	}
	if got := k.At(2, 0); got != 7 {
		t.Fatalf("At(2,0) = %v, want 7", got)
	}
	if got := k.At(1, 1); got != 5 {
		t.Fatalf("At(1,1) = %v, want 5", got)
	}
}

func TestSymmetricConstructors(t *testing.T) {
	tests := []struct {
		name string
		k    Kernel
		want [9]float32
	}{
		{"vertical", VerticalKernel(1, 2, 3, 4, 5, 6), [9]float32{1, 2, 1, 3, 4, 3, 5, 6, 5}},
		{"horizontal", HorizontalKernel(1, 2, 3, 4, 5, 6), [9]float32{1, 2, 3, 4, 5, 6, 1, 2, 3}},
		{"quad", QuadKernel(1, 2, 3, 4), [9]float32{1, 2, 1, 3, 4, 3, 1, 2, 1}},
		{"full", FullKernel(1, 2, 3), [9]float32{1, 2, 1, 2, 3, 2, 1, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.Weights(); got != tt.want {
				t.Fatalf("weights = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKernelWithCopies(t *testing.T) {
	base := FullKernel(1, 2, 3)
	edited := base.With(0, 0, 9)
	if base.At(0, 0) != 1 {
		t.Fatal("With mutated the receiver")
	}
	if edited.At(0, 0) != 9 {
		t.Fatalf("edited weight = %v, want 9", edited.At(0, 0))
	}
	if base.With(3, 0, 9) != base {
		t.Fatal("out-of-range With should return the kernel unchanged")
	}
}

func TestKernelSum(t *testing.T) {
	if got := FullKernel(1, 2, 3).Sum(); got != 15 {
		t.Fatalf("Sum = %v, want 15", got)
	}
	if got := (Kernel{}).Sum(); got != 0 {
		t.Fatalf("zero kernel Sum = %v", got)
	}
}
