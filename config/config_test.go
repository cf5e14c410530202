package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := Default()
	if cfg.Scoring != def.Scoring || cfg.Preferences != def.Preferences {
		t.Fatalf("embedded config drifted: %+v vs %+v", cfg, def)
	}
	if math.Abs(cfg.Launcher.AngleStep-def.Launcher.AngleStep) > 1e-12 {
		t.Fatalf("angle step drifted: %v vs %v", cfg.Launcher.AngleStep, def.Launcher.AngleStep)
	}
	if math.Abs(cfg.Physics.FixedStep-def.Physics.FixedStep) > 1e-12 {
		t.Fatalf("fixed step drifted: %v vs %v", cfg.Physics.FixedStep, def.Physics.FixedStep)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("scoring:\n  treasure_bonus: 42\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Scoring.TreasureBonus != 42 {
		t.Fatalf("expected override, got %d", cfg.Scoring.TreasureBonus)
	}
	if cfg.Scoring.AttemptBonus != 150 || cfg.Physics.Iterations != 20 {
		t.Fatalf("missing fields should keep defaults: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero_step", func(c *Config) { c.Physics.FixedStep = 0 }},
		{"delta_below_step", func(c *Config) { c.Physics.MaxFrameDelta = c.Physics.FixedStep / 2 }},
		{"no_iterations", func(c *Config) { c.Physics.Iterations = 0 }},
		{"inverted_angle", func(c *Config) { c.Launcher.MinAngle, c.Launcher.MaxAngle = 2, 1 }},
		{"inverted_magnitude", func(c *Config) { c.Launcher.MinMagnitude, c.Launcher.MaxMagnitude = 5, 1 }},
		{"zero_magnitude_step", func(c *Config) { c.Launcher.MagnitudeStep = 0 }},
		{"unknown_controller", func(c *Config) { c.Preferences.Controller = "joystick" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must be valid: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "puzzlepath.yaml")
	cfg := Default()
	cfg.Preferences.PlaySounds = false
	cfg.Preferences.Controller = ControllerGamepad
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Preferences != cfg.Preferences {
		t.Fatalf("expected %+v, got %+v", cfg.Preferences, got.Preferences)
	}
}

func TestLoadMissingPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error for a missing explicit path")
	}
}
