package core

import (
	"image/color"
	"slices"
	"testing"
)

type stubSim struct{ name string }

func (s stubSim) Name() string                { return s.name }
func (s stubSim) Size() Size                  { return Size{W: 1, H: 1} }
func (s stubSim) Reset(int64)                 {}
func (s stubSim) Step()                       {}
func (s stubSim) ColorAt(int, int) color.RGBA { return color.RGBA{} }

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("empty registrations should be ignored")
	}
}

func TestSimNamesSorted(t *testing.T) {
	Register("zz-test", func(map[string]string) Sim { return stubSim{"zz-test"} })
	Register("aa-test", func(map[string]string) Sim { return stubSim{"aa-test"} })
	names := SimNames()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "aa-test") || !slices.Contains(names, "zz-test") {
		t.Fatalf("missing registered names: %v", names)
	}
	if got := Sims()["aa-test"](nil).Name(); got != "aa-test" {
		t.Fatalf("factory built %q", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}
