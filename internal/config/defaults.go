package config

import (
	_ "embed"
)

//go:embed defaults/turnbounce.yaml
var defaultTurnBounceYAML []byte

// DefaultTurnBounceConfig returns the built-in configuration.
func DefaultTurnBounceConfig() TurnBounceConfig {
	return TurnBounceConfig{
		Physics: PhysicsConfig{
			InitialGravity:  0.1,
			GravityIncrease: 0.1,
			LaunchVelocity:  5.0,
			Scale:           0.01,
			BounceWindowLow: -0.5,
			FallLimit:       -5.0,
		},
		Controls: ControlsConfig{
			KeyboardStep: 0.05,
			MouseScale:   0.01,
		},
		RNG: RNGConfig{
			ReseedEachAssignment: false,
		},
		Rotation: RotationConfig{
			Wrap: true,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
		},
	}
}

// ApplyClassic switches a config to the prototype's bookkeeping:
// wall-clock reseeding before every color change and an unbounded rotation.
func ApplyClassic(cfg *TurnBounceConfig) {
	cfg.RNG.ReseedEachAssignment = true
	cfg.Rotation.Wrap = false
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTurnBounceYAML
}
