package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/skillscape/skillscape/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skillscape.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := engine.DefaultConfig()
	if cfg.Width != want.Width || cfg.Force.IdealLength != want.Force.IdealLength {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverlaysValues(t *testing.T) {
	path := writeConfig(t, `
[engine]
width = 1920
height = 1080
strategy = "force"

[force]
ideal_length = 200
seed = 7

[radial]
fan_spread_deg = 180

[loader]
node_batch = 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("Expected 1920x1080, got %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.Strategy != engine.StrategyForce {
		t.Errorf("Expected force strategy, got %v", cfg.Strategy)
	}
	if cfg.Force.IdealLength != 200 || cfg.Force.Seed != 7 {
		t.Errorf("Unexpected force config: %+v", cfg.Force)
	}
	if math.Abs(cfg.Radial.FanSpread-math.Pi) > 1e-9 {
		t.Errorf("Expected fan spread pi, got %v", cfg.Radial.FanSpread)
	}
	if cfg.Loader.NodeBatch != 5 {
		t.Errorf("Expected node batch 5, got %d", cfg.Loader.NodeBatch)
	}

	// Untouched sections keep their defaults.
	want := engine.DefaultConfig()
	if cfg.Force.Damping != want.Force.Damping {
		t.Errorf("Expected default damping, got %v", cfg.Force.Damping)
	}
	if cfg.Loader.EdgeBatch != want.Loader.EdgeBatch {
		t.Errorf("Expected default edge batch, got %d", cfg.Loader.EdgeBatch)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadMalformedTOMLFails(t *testing.T) {
	path := writeConfig(t, `[engine` + "\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for malformed TOML")
	}
}

func TestUnknownStrategyKeepsAuto(t *testing.T) {
	path := writeConfig(t, `
[engine]
strategy = "voronoi"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Strategy != engine.StrategyAuto {
		t.Errorf("Expected auto for an unknown strategy, got %v", cfg.Strategy)
	}
}
