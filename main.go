package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/davg/go-parallel-raytracer/pkg/config"
	"github.com/davg/go-parallel-raytracer/pkg/renderer"
	"github.com/davg/go-parallel-raytracer/pkg/scene"
)

func main() {
	defaults := config.Default()

	var fl struct {
		width, height, samples, depth, workers int
		seed                                   int64
		scenePath, format, configPath          string
		help                                   bool
	}

	flag.IntVar(&fl.width, "width", defaults.Width, "image width in pixels")
	flag.IntVar(&fl.width, "w", defaults.Width, "image width (shorthand)")
	flag.IntVar(&fl.height, "height", defaults.Height, "image height in pixels")
	flag.IntVar(&fl.height, "h", defaults.Height, "image height (shorthand)")
	flag.IntVar(&fl.samples, "samples", defaults.Samples, "samples per pixel")
	flag.IntVar(&fl.samples, "s", defaults.Samples, "samples per pixel (shorthand)")
	flag.IntVar(&fl.depth, "depth", defaults.MaxDepth, "maximum ray bounce depth")
	flag.IntVar(&fl.depth, "d", defaults.MaxDepth, "maximum ray bounce depth (shorthand)")
	flag.StringVar(&fl.scenePath, "scene", "", "YAML scene file (default: built-in two-sphere scene)")
	flag.StringVar(&fl.format, "format", defaults.Format, "output format: ppm or png")
	flag.IntVar(&fl.workers, "workers", 0, "worker pool size (0 = one per CPU)")
	flag.Int64Var(&fl.seed, "seed", defaults.Seed, "random seed for reproducible renders")
	flag.StringVar(&fl.configPath, "config", "", "YAML config file with render parameters")
	flag.BoolVar(&fl.help, "help", false, "show help information")
	flag.Parse()

	if fl.help {
		fmt.Println("Parallel Raytracer")
		fmt.Println("Usage: raytracer [options] <output file>")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg := defaults
	if fl.configPath != "" {
		var err error
		cfg, err = config.Load(fl.configPath, defaults)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(2)
		}
	}

	// Explicit flags override config file values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width", "w":
			cfg.Width = fl.width
		case "height", "h":
			cfg.Height = fl.height
		case "samples", "s":
			cfg.Samples = fl.samples
		case "depth", "d":
			cfg.MaxDepth = fl.depth
		case "scene":
			cfg.Scene = fl.scenePath
		case "format":
			cfg.Format = fl.format
		case "workers":
			cfg.Workers = fl.workers
		case "seed":
			cfg.Seed = fl.seed
		}
	})

	if flag.NArg() > 0 {
		cfg.Output = flag.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("render failed")
		os.Exit(1)
	}
}

// buildScene resolves the scene to render: a YAML scene file if one was
// configured, otherwise the built-in two-sphere scene
func buildScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.NewDefaultScene(), nil
	}
	return scene.Load(path)
}

// run renders the configured scene and commits the framebuffer to the
// output file. The config must already be validated.
func run(cfg config.Config, logger zerolog.Logger) error {
	sc, err := buildScene(cfg.Scene)
	if err != nil {
		return err
	}

	logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("samples", cfg.Samples).
		Int("depth", cfg.MaxDepth).
		Int("objects", len(sc.Objects)).
		Msg("render starting")

	raytracer := renderer.NewRaytracer(sc, cfg.Width, cfg.Height, renderer.SamplingConfig{
		SamplesPerPixel: cfg.Samples,
		MaxDepth:        cfg.MaxDepth,
	})
	scheduler := renderer.NewScheduler(raytracer, cfg.Workers, cfg.Seed, logger)

	fb, stats := scheduler.Render()

	logger.Info().
		Int("pixels", stats.TotalPixels).
		Int("samples", stats.TotalSamples).
		Int("workers", stats.Workers).
		Dur("elapsed", stats.Elapsed).
		Msg("render complete")

	if err := writeOutput(fb, cfg); err != nil {
		return err
	}

	logger.Info().Str("output", cfg.Output).Str("format", cfg.Format).Msg("output written")
	return nil
}

// writeOutput commits the completed framebuffer to the output path.
// A failure here leaves the in-memory render intact; the caller may retry
// with a different path, but the process does not retry automatically.
func writeOutput(fb *renderer.Framebuffer, cfg config.Config) error {
	if cfg.Format == "png" {
		return fb.WritePNG(cfg.Output)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", cfg.Output, err)
	}
	if err := fb.WritePPM(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", cfg.Output, err)
	}
	return nil
}
