// Package config loads session settings and custom profiles from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"simple-nca/pkg/nca"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the settings for one simulation session.
type Config struct {
	World    WorldConfig     `yaml:"world"`
	Display  DisplayConfig   `yaml:"display"`
	Profile  string          `yaml:"profile"`
	Profiles []ProfileConfig `yaml:"profiles"`
}

// WorldConfig holds field dimensions and seeding.
type WorldConfig struct {
	Width   int   `yaml:"width"`
	Height  int   `yaml:"height"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
}

// DisplayConfig holds host-loop presentation settings.
type DisplayConfig struct {
	Scale        int    `yaml:"scale"`
	TPS          int    `yaml:"tps"`
	PresentEvery int    `yaml:"present_every"`
	Low          string `yaml:"low"`
	High         string `yaml:"high"`
}

// ProfileConfig describes a user-defined kernel/activation pairing.
type ProfileConfig struct {
	Name       string    `yaml:"name"`
	Kernel     []float32 `yaml:"kernel"`
	Activation string    `yaml:"activation"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks dimensions, colors and custom profiles.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size %dx%d must be positive", c.World.Width, c.World.Height)
	}
	if c.World.Workers < 0 {
		return fmt.Errorf("workers %d must not be negative", c.World.Workers)
	}
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	if _, err := c.CustomProfiles(); err != nil {
		return err
	}
	return nil
}

// Colors parses the boundary colors.
func (c *Config) Colors() (low, high nca.Color, err error) {
	low, err = nca.ParseColor(c.Display.Low)
	if err != nil {
		return low, high, fmt.Errorf("display.low: %w", err)
	}
	high, err = nca.ParseColor(c.Display.High)
	if err != nil {
		return low, high, fmt.Errorf("display.high: %w", err)
	}
	return low, high, nil
}

// CustomProfiles builds the profiles declared in the file.
func (c *Config) CustomProfiles() ([]nca.Profile, error) {
	out := make([]nca.Profile, 0, len(c.Profiles))
	seen := map[string]bool{}
	for i, pc := range c.Profiles {
		p, err := pc.Build()
		if err != nil {
			return nil, fmt.Errorf("profiles[%d]: %w", i, err)
		}
		if _, builtin := nca.FindProfile(p.Name); builtin || seen[p.Name] {
			return nil, fmt.Errorf("profiles[%d]: name %q already in use", i, p.Name)
		}
		seen[p.Name] = true
		out = append(out, p)
	}
	return out, nil
}

// Build converts the YAML description into a profile.
func (pc ProfileConfig) Build() (nca.Profile, error) {
	if pc.Name == "" {
		return nca.Profile{}, fmt.Errorf("profile needs a name")
	}
	act, ok := nca.ActivationByName(pc.Activation)
	if !ok {
		return nca.Profile{}, fmt.Errorf("profile %q: unknown activation %q", pc.Name, pc.Activation)
	}
	var k nca.Kernel
	w := pc.Kernel
	switch len(w) {
	case 3:
		k = nca.FullKernel(w[0], w[1], w[2])
	case 4:
		k = nca.QuadKernel(w[0], w[1], w[2], w[3])
	case 9:
		k = nca.NewKernel(w[0], w[1], w[2], w[3], w[4], w[5], w[6], w[7], w[8])
	default:
		return nca.Profile{}, fmt.Errorf("profile %q: kernel needs 3, 4 or 9 weights, got %d", pc.Name, len(w))
	}
	return nca.Profile{Name: pc.Name, Kernel: k, Activation: act}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
