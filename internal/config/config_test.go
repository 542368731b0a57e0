package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultTurnBounceConfig() {
		t.Errorf("embedded YAML = %+v, hardcoded = %+v", cfg, DefaultTurnBounceConfig())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "physics:\n  initial_gravity: 0.2\nrotation:\n  wrap: false\n")

	cfg, err := load(path, nil)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Physics.InitialGravity != 0.2 {
		t.Errorf("InitialGravity = %g, expected 0.2", cfg.Physics.InitialGravity)
	}
	if cfg.Rotation.Wrap {
		t.Error("Wrap should be overridden to false")
	}
	// Untouched keys keep defaults
	if cfg.Physics.LaunchVelocity != 5.0 || cfg.Physics.Scale != 0.01 {
		t.Errorf("unset physics keys should keep defaults, got %+v", cfg.Physics)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := load(filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := writeFile(t, dir, "bad.yaml", "physics: [not, a, map")
	if _, err := load(bad, nil); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "physics:\n  scale: 0\n")
	_, err := load(invalid, nil)
	if err == nil {
		t.Fatal("invalid custom config should be an error")
	}
	if !strings.Contains(err.Error(), "physics.scale") {
		t.Errorf("error should name the bad key, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.yaml", "physics: {{{")
	first := writeFile(t, dir, "first.yaml", "controls:\n  keyboard_step: 0.1\n")
	second := writeFile(t, dir, "second.yaml", "controls:\n  keyboard_step: 0.2\n")

	cfg, err := load("", []string{filepath.Join(dir, "nope.yaml"), broken, first, second})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Controls.KeyboardStep != 0.1 {
		t.Errorf("KeyboardStep = %g, expected first valid file to win", cfg.Controls.KeyboardStep)
	}

	cfg, err = load("", nil)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg != DefaultTurnBounceConfig() {
		t.Error("with no files the embedded default should be used")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TurnBounceConfig)
		ok     bool
	}{
		{"default", func(*TurnBounceConfig) {}, true},
		{"zero gravity", func(c *TurnBounceConfig) { c.Physics.InitialGravity = 0 }, false},
		{"negative increase", func(c *TurnBounceConfig) { c.Physics.GravityIncrease = -0.1 }, false},
		{"zero launch", func(c *TurnBounceConfig) { c.Physics.LaunchVelocity = 0 }, false},
		{"window above zero", func(c *TurnBounceConfig) { c.Physics.BounceWindowLow = 0.1 }, false},
		{"fall limit inside window", func(c *TurnBounceConfig) { c.Physics.FallLimit = -0.2 }, false},
		{"negative key step", func(c *TurnBounceConfig) { c.Controls.KeyboardStep = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTurnBounceConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		preset  string
		gravity float64
	}{
		{"easy", "easy", 0.08},
		{"normal", "normal", 0.1},
		{"hard", "hard", 0.13},
		{"unknown keeps config", "insane", 0.1},
		{"empty keeps config", "", 0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTurnBounceConfig()
			ApplyPreset(&cfg, ParsePreset(tc.preset))
			if diff := cfg.Physics.InitialGravity - tc.gravity; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("InitialGravity = %g, expected %g", cfg.Physics.InitialGravity, tc.gravity)
			}
			if cfg.Physics.GravityIncrease != 0.1 {
				t.Error("presets must not touch the per-level increase")
			}
		})
	}
}

func TestClassicConfig(t *testing.T) {
	cfg := DefaultTurnBounceConfig()
	ApplyClassic(&cfg)
	if !cfg.RNG.ReseedEachAssignment {
		t.Error("classic config should reseed on each assignment")
	}
	if cfg.Rotation.Wrap {
		t.Error("classic config should keep rotation unbounded")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("classic config should validate: %v", err)
	}
}
