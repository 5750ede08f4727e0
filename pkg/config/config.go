package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the fully resolved render parameters. Rendering never starts
// with an invalid configuration; Validate runs before any work is scheduled.
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Samples  int    `yaml:"samples"`
	MaxDepth int    `yaml:"max_depth"`
	Output   string `yaml:"output"`
	Scene    string `yaml:"scene,omitempty"`   // optional YAML scene file
	Format   string `yaml:"format"`            // "ppm" or "png"
	Workers  int    `yaml:"workers,omitempty"` // 0 = one per CPU
	Seed     int64  `yaml:"seed"`
}

// Default returns the default render configuration
func Default() Config {
	return Config{
		Width:    1920,
		Height:   1080,
		Samples:  64,
		MaxDepth: 32,
		Format:   "ppm",
		Seed:     42,
	}
}

// Load reads configuration overrides from a YAML file on top of base
func Load(path string, base Config) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return base, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field, or nil if the configuration
// is renderable
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("invalid width %d: must be positive", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("invalid height %d: must be positive", c.Height)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("invalid number of samples %d: must be positive", c.Samples)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid maximum depth %d: must not be negative", c.MaxDepth)
	}
	if c.Output == "" {
		return fmt.Errorf("no output file specified")
	}
	if c.Format != "ppm" && c.Format != "png" {
		return fmt.Errorf("invalid output format %q: must be ppm or png", c.Format)
	}
	return nil
}

// AspectRatio returns width/height
func (c Config) AspectRatio() (float64, error) {
	if c.Height == 0 {
		return 0, fmt.Errorf("aspect ratio undefined for zero height")
	}
	return float64(c.Width) / float64(c.Height), nil
}
