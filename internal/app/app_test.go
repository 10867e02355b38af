package app

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"simple-nca/pkg/nca"
)

func TestPromptProfile(t *testing.T) {
	var out bytes.Buffer
	got := PromptProfile(strings.NewReader("  Slime-Mold \nignored\n"), &out, []string{"worm", "slime-mold"})
	if got != "Slime-Mold" {
		t.Fatalf("answer = %q", got)
	}
	if !strings.Contains(out.String(), "worm, slime-mold") {
		t.Fatalf("prompt = %q", out.String())
	}
	if got := PromptProfile(strings.NewReader(""), &out, nil); got != "" {
		t.Fatalf("EOF answer = %q, want empty", got)
	}
}

func TestResolveProfile(t *testing.T) {
	customs := []nca.Profile{{Name: "ripple"}}
	tests := []struct {
		in, want string
	}{
		{"RIPPLE", "ripple"},
		{"stars", "stars"},
		{"Slime Mold", "slime-mold"},
		{"", "worm"},
		{"unknown", "worm"},
	}
	for _, tt := range tests {
		if got := ResolveProfile(tt.in, customs); got != tt.want {
			t.Errorf("ResolveProfile(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSessionAppliesExplicitFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "32", "-profile", "waves", "-high", "#ff0000"}); err != nil {
		t.Fatal(err)
	}
	s, err := cfg.Session(fs)
	if err != nil {
		t.Fatal(err)
	}
	if s.World.Width != 32 || s.World.Height != 600 {
		t.Fatalf("world = %+v", s.World)
	}
	if s.Profile != "waves" || s.Display.High != "#ff0000" || s.Display.Low != "#000000" {
		t.Fatalf("session = %+v", s)
	}
}

func TestSessionRejectsBadFlag(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-low", "blue"}); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Session(fs); err == nil {
		t.Fatal("expected invalid color to fail")
	}
}

func TestOpenSim(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "10", "-h", "8", "-profile", "MITOSIS"}); err != nil {
		t.Fatal(err)
	}
	s, err := cfg.Session(fs)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := OpenSim(s)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Name() != "mitosis" {
		t.Fatalf("sim = %q", sim.Name())
	}
	if size := sim.Size(); size.W != 10 || size.H != 8 {
		t.Fatalf("size = %+v", size)
	}
	sim.Step()
	if c := sim.ColorAt(9, 7); c.A != 255 || c.R != 0 || c.B != 0 {
		t.Fatalf("color %v outside the black-green ramp", c)
	}
}
