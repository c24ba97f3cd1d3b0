package config

import "math"

// DifficultyManager calculates endless mode stage goals based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on the
// score reached and the moves played so far.
func (d *DifficultyManager) Level(score int, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// StageTarget returns the points needed to clear the next endless stage.
// The target grows from base to base * (1 + targetMultiplier).
func (d *DifficultyManager) StageTarget(base int, score int, moves int) int {
	level := d.Level(score, moves)
	return int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.TargetMultiplier)))
}

// StageMoves returns the move budget of the next endless stage.
func (d *DifficultyManager) StageMoves(base int, score int, moves int) int {
	level := d.Level(score, moves)
	reduction := int(level * float64(d.cfg.Scaling.MoveReduction))
	result := base - reduction
	if result < 5 { // Minimum playable stage
		result = min(base, 5)
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
