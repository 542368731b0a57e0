package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI/YAML string to a preset.
// Unknown or empty names return "" so the config default is kept.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// GravityFactorForPreset returns the multiplier applied to the initial gravity.
func GravityFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// ApplyPreset scales the starting gravity for the preset.
// The per-level increase is untouched, so levels always get strictly harder.
func ApplyPreset(cfg *TurnBounceConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = string(preset)
	cfg.Physics.InitialGravity *= GravityFactorForPreset(preset)
}
