// Package config loads visualizer settings with the usual layering:
// defaults, then an optional forceviz.toml, then FORCEVIZ_* environment
// variables, then command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all settings for a visualizer session.
type Config struct {
	Width        float64 `koanf:"width"`
	Height       float64 `koanf:"height"`
	TPS          int     `koanf:"tps"`
	Title        string  `koanf:"title"`
	DataFile     string  `koanf:"data"`
	OutputFile   string  `koanf:"output"`
	Serve        bool    `koanf:"serve"`
	Port         int     `koanf:"port"`
	Charge       float64 `koanf:"charge"`
	Stiffness    float64 `koanf:"stiffness"`
	VertexRadius float64 `koanf:"radius"`
	Noise        float64 `koanf:"noise"`
	Seed         int64   `koanf:"seed"`
	Verbose      bool    `koanf:"verbose"`
}

// Flags returns the flag set Load consumes. Callers parse it themselves
// so tests can feed synthetic argv slices.
func Flags() *pflag.FlagSet {
	f := pflag.NewFlagSet("forceviz", pflag.ContinueOnError)
	f.Float64("width", 640, "window width in pixels")
	f.Float64("height", 480, "window height in pixels")
	f.Int("tps", 30, "simulation ticks per second")
	f.String("title", "forceviz", "window title")
	f.String("data", "", "edge list file (JSON or CSV); built-in sample when empty")
	f.String("output", "", "write a settled snapshot (svg/json by extension) and exit")
	f.Bool("serve", false, "serve the browser canvas host instead of opening a window")
	f.Int("port", 8080, "port for serve mode")
	f.Float64("charge", 100000, "pairwise repulsion constant")
	f.Float64("stiffness", 0.5, "neighbor spring constant, (0,1]")
	f.Float64("radius", 8, "vertex radius in world units")
	f.Float64("noise", 0, "drift field intensity, 0 disables")
	f.Int64("seed", 0, "layout scatter seed; 0 derives one from the clock")
	f.Bool("verbose", false, "enable debug logging")
	return f
}

// Load resolves the configuration. Priority: flags > env > file > defaults.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// Flag defaults double as the config defaults, so there is exactly
	// one place reference values live.
	if err := k.Load(posflag.Provider(Flags(), ".", k), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Optional config file.
	_ = k.Load(file.Provider("forceviz.toml"), toml.Parser())

	// Environment, e.g. FORCEVIZ_PORT=9090.
	if err := k.Load(env.Provider("FORCEVIZ_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "FORCEVIZ_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Stiffness <= 0 || c.Stiffness > 1 {
		return fmt.Errorf("stiffness must be in (0,1], got %g", c.Stiffness)
	}
	if c.Charge < 0 {
		return fmt.Errorf("charge must be non-negative, got %g", c.Charge)
	}
	if c.VertexRadius <= 0 {
		return fmt.Errorf("vertex radius must be positive, got %g", c.VertexRadius)
	}
	return nil
}
