package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default Blockfall configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			DropIntervalMs:    1000,
			MinDropIntervalMs: 150,
		},
		Specials: SpecialsConfig{
			BombProbability:     0.25,
			LaserProbability:    0.25,
			ExtruderProbability: 0.25,
			BombTimer:           3,
			BlastRadius:         1,
		},
		Scoring: ScoringConfig{
			LineScore: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default config file, the last entry of
// the search order.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
