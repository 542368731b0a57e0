// Package config provides YAML-based game configuration loading and
// difficulty presets for Turn & Bounce.
package config

import (
	"errors"
	"fmt"
)

// TurnBounceConfig contains all configuration for the ring game.
type TurnBounceConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Controls   ControlsConfig   `yaml:"controls"`
	RNG        RNGConfig        `yaml:"rng"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the ball recurrence and the bounce thresholds.
type PhysicsConfig struct {
	InitialGravity  float64 `yaml:"initial_gravity"`
	GravityIncrease float64 `yaml:"gravity_increase"` // Fraction added at each level-up
	LaunchVelocity  float64 `yaml:"launch_velocity"`
	Scale           float64 `yaml:"scale"`
	BounceWindowLow float64 `yaml:"bounce_window_low"` // Exclusive lower edge; upper edge is 0
	FallLimit       float64 `yaml:"fall_limit"`        // Below this the run is over
}

// ControlsConfig defines how input is turned into ring rotation.
type ControlsConfig struct {
	KeyboardStep float64 `yaml:"keyboard_step"` // Radians per frame while a turn key is down
	MouseScale   float64 `yaml:"mouse_scale"`   // Radians per unit of pointer motion
}

// RNGConfig controls color assignment randomness.
type RNGConfig struct {
	// ReseedEachAssignment reseeds from the wall clock before every color
	// reassignment instead of seeding once per game.
	ReseedEachAssignment bool `yaml:"reseed_each_assignment"`
}

// RotationConfig controls ring rotation bookkeeping.
type RotationConfig struct {
	Wrap bool `yaml:"wrap"` // Keep the accumulated rotation in [0, 2π)
}

// DifficultyConfig selects a preset applied on top of the physics values.
type DifficultyConfig struct {
	Preset string `yaml:"preset"`
}

// Validate reports configuration values the game cannot run with.
func (c TurnBounceConfig) Validate() error {
	var errs []error
	p := c.Physics
	if p.InitialGravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.initial_gravity must be > 0, got %g", p.InitialGravity))
	}
	if p.GravityIncrease < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity_increase must be >= 0, got %g", p.GravityIncrease))
	}
	if p.LaunchVelocity <= 0 {
		errs = append(errs, fmt.Errorf("physics.launch_velocity must be > 0, got %g", p.LaunchVelocity))
	}
	if p.Scale <= 0 {
		errs = append(errs, fmt.Errorf("physics.scale must be > 0, got %g", p.Scale))
	}
	if p.BounceWindowLow >= 0 {
		errs = append(errs, fmt.Errorf("physics.bounce_window_low must be < 0, got %g", p.BounceWindowLow))
	}
	if p.FallLimit >= p.BounceWindowLow {
		errs = append(errs, fmt.Errorf("physics.fall_limit (%g) must be below bounce_window_low (%g)", p.FallLimit, p.BounceWindowLow))
	}
	if c.Controls.KeyboardStep < 0 {
		errs = append(errs, fmt.Errorf("controls.keyboard_step must be >= 0, got %g", c.Controls.KeyboardStep))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid turnbounce config: %w", errors.Join(errs...))
	}
	return nil
}
