package app

import (
	"flag"
	"strconv"

	"simple-nca/internal/config"
)

// Config represents the command-line parameters for the application. Flags
// that are set explicitly override the YAML session file.
type Config struct {
	ConfigPath   string
	Profile      string
	Prompt       bool
	Width        int
	Height       int
	Scale        int
	TPS          int
	PresentEvery int
	Seed         int64
	Workers      int
	Low          string
	High         string
}

// NewConfig returns a Config populated from the embedded session defaults.
func NewConfig() *Config {
	d := config.Default()
	return &Config{
		Profile:      d.Profile,
		Width:        d.World.Width,
		Height:       d.World.Height,
		Scale:        d.Display.Scale,
		TPS:          d.Display.TPS,
		PresentEvery: d.Display.PresentEvery,
		Seed:         d.World.Seed,
		Workers:      d.World.Workers,
		Low:          d.Display.Low,
		High:         d.Display.High,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML session file (empty = built-in defaults)")
	fs.StringVar(&c.Profile, "profile", c.Profile, "simulation profile (worm, wall, slime-mold, stars, mitosis, waves)")
	fs.BoolVar(&c.Prompt, "prompt", c.Prompt, "ask for the profile on stdin")
	fs.IntVar(&c.Width, "w", c.Width, "field width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "field height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.PresentEvery, "present-every", c.PresentEvery, "show one frame every N ticks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial field")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per step (0 = GOMAXPROCS)")
	fs.StringVar(&c.Low, "low", c.Low, "color for value 0 (#rrggbb)")
	fs.StringVar(&c.High, "high", c.High, "color for value 1 (#rrggbb)")
}

// Session loads the YAML session file and applies every flag the user set
// explicitly on fs.
func (c *Config) Session(fs *flag.FlagSet) (*config.Config, error) {
	s, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "profile":
			s.Profile = c.Profile
		case "w":
			s.World.Width = c.Width
		case "h":
			s.World.Height = c.Height
		case "seed":
			s.World.Seed = c.Seed
		case "workers":
			s.World.Workers = c.Workers
		case "scale":
			s.Display.Scale = c.Scale
		case "tps":
			s.Display.TPS = c.TPS
		case "present-every":
			s.Display.PresentEvery = c.PresentEvery
		case "low":
			s.Display.Low = c.Low
		case "high":
			s.Display.High = c.High
		}
	})
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// SimOptions converts a session into the string map sim factories accept.
func SimOptions(s *config.Config) map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(s.World.Width),
		"h":       strconv.Itoa(s.World.Height),
		"seed":    strconv.FormatInt(s.World.Seed, 10),
		"workers": strconv.Itoa(s.World.Workers),
		"low":     s.Display.Low,
		"high":    s.Display.High,
	}
}
