package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/davg/go-parallel-raytracer/pkg/config"
)

// renderConfig returns a small, fast render configuration for tests
func renderConfig(t *testing.T, output string) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Width = 32
	cfg.Height = 18
	cfg.Samples = 2
	cfg.MaxDepth = 4
	cfg.Workers = 2
	cfg.Output = output
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return cfg
}

func TestBuildScene(t *testing.T) {
	t.Run("default scene", func(t *testing.T) {
		sc, err := buildScene("")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(sc.Objects) != 2 {
			t.Errorf("Expected 2 objects in default scene, got %d", len(sc.Objects))
		}
	})

	t.Run("scene file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scene.yaml")
		content := "spheres:\n  - center: [0, 0, -2]\n    radius: 1\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		sc, err := buildScene(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(sc.Objects) != 1 {
			t.Errorf("Expected 1 object, got %d", len(sc.Objects))
		}
	})

	t.Run("missing scene file", func(t *testing.T) {
		if _, err := buildScene(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Expected error for missing scene file")
		}
	})
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := renderConfig(t, filepath.Join(t.TempDir(), "out.ppm"))

	if err := run(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("Output file missing: %v", err)
	}

	header := "P6\n32 18\n255\n"
	if !bytes.HasPrefix(out, []byte(header)) {
		t.Errorf("Expected PPM header %q, got %q", header, string(out[:min(len(out), len(header))]))
	}
	if got := len(out) - len(header); got != 32*18*3 {
		t.Errorf("Expected %d pixel bytes, got %d", 32*18*3, got)
	}
}

func TestRun_Idempotent(t *testing.T) {
	// Same seed and inputs must reproduce byte-identical output
	dir := t.TempDir()

	cfgA := renderConfig(t, filepath.Join(dir, "a.ppm"))
	cfgB := renderConfig(t, filepath.Join(dir, "b.ppm"))

	if err := run(cfgA, zerolog.Nop()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := run(cfgB, zerolog.Nop()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	a, err := os.ReadFile(cfgA.Output)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(cfgB.Output)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Error("Re-running with the same seed produced different output")
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	cfg := renderConfig(t, filepath.Join(t.TempDir(), "missing-dir", "out.ppm"))

	if err := run(cfg, zerolog.Nop()); err == nil {
		t.Error("Expected error for unwritable output path")
	}
}
