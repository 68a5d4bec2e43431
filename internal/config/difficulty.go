package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// SpeedScaleForPreset returns the base speed multiplier of a preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
	default:
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}

	cfg.Speed.Base *= SpeedScaleForPreset(preset)

	// Easy runs also get a longer combo window and more power-ups.
	switch preset {
	case DifficultyEasy:
		cfg.Combo.Window *= 1.25
		cfg.PowerUps.SpawnChance = min(1, cfg.PowerUps.SpawnChance*1.5)
	case DifficultyHard:
		cfg.PowerUps.SlowDuration *= 0.75
	}
	return nil
}
