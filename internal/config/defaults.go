package config

import (
	_ "embed"
)

//go:embed defaults/fruitdash.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors
// defaults/fruitdash.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:    22,
			Height:   26,
			CellSize: 2,
		},
		Speed: SpeedConfig{
			Base:        6.0,
			SpeedRamp:   1.10,
			SpeedCap:    2.5,
			GrowthRamp:  1.05,
			GrowthCap:   1.8,
			GrowthEvery: 5,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:      0.30,
			ResetSpawnChance: 0.35,
			SlowDuration:     4.0,
			SlowFactor:       0.55,
			MagnetDuration:   6.0,
			MagnetRadius:     3,
		},
		Combo: ComboConfig{
			Window:        4.0,
			Count:         3,
			Bonus:         20,
			TurboDuration: 2.5,
			TurboFactor:   1.45,
		},
		Scoring: ScoringConfig{
			Fruit: 10,
		},
		Growth: GrowthConfig{
			InitialLength: 3,
		},
		Rules: RulesConfig{
			Mode:      "speed",
			Wrap:      true,
			Countdown: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
