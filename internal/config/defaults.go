package config

import (
	_ "embed"
)

//go:embed defaults/crunch.yaml
var defaultCrunchYAML []byte

// DefaultCrunchConfig returns the default Cookie Crunch configuration.
func DefaultCrunchConfig() CrunchConfig {
	return CrunchConfig{
		Board: CrunchBoard{
			PieceTypes:         6,
			MaxShuffleAttempts: 100,
			MaxDrawsPerCell:    1000,
			MaxCascadeSteps:    100,
		},
		Scoring: CrunchScoring{
			ChainBase:   60,
			ComboGrowth: 1,
		},
		Gameplay: CrunchGameplay{
			Moves:          20,
			TargetScore:    1000,
			ShowHints:      true,
			FlashTicks:     45,
			ShufflePenalty: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				TargetMultiplier: 1.0,
				MoveReduction:    8,
			},
		},
	}
}
