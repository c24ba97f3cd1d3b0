// Package config provides YAML-based game configuration loading and
// difficulty management for Cookie Crunch.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/board"
)

// CrunchConfig contains all configuration for the Cookie Crunch game.
type CrunchConfig struct {
	Board      CrunchBoard      `yaml:"board"`
	Scoring    CrunchScoring    `yaml:"scoring"`
	Gameplay   CrunchGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrunchBoard defines the engine limits.
type CrunchBoard struct {
	PieceTypes         int `yaml:"piece_types"`
	MaxShuffleAttempts int `yaml:"max_shuffle_attempts"`
	MaxDrawsPerCell    int `yaml:"max_draws_per_cell"`
	MaxCascadeSteps    int `yaml:"max_cascade_steps"` // Longer cascades stop the game with an error
}

// CrunchScoring defines how removed chains are scored.
type CrunchScoring struct {
	ChainBase   int `yaml:"chain_base"`   // Points for a chain of three
	ComboGrowth int `yaml:"combo_growth"` // Multiplier added after each chain
}

// CrunchGameplay defines session rules that levels may override.
type CrunchGameplay struct {
	Moves          int  `yaml:"moves"`           // Used when a level does not set moves
	TargetScore    int  `yaml:"target_score"`    // Used when a level does not set a target
	ShowHints      bool `yaml:"show_hints"`      // Allow the hint key
	FlashTicks     int  `yaml:"flash_ticks"`     // How long status messages stay on screen
	ShufflePenalty int  `yaml:"shuffle_penalty"` // Moves charged for a manual reshuffle
	MoveBonus      int  `yaml:"move_bonus"`      // Added to every level's moves
}

// DifficultyConfig defines the endless mode progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TargetMultiplier float64 `yaml:"target_multiplier"` // Added to the stage target at max difficulty
	MoveReduction    int     `yaml:"move_reduction"`    // Moves removed from a stage at max difficulty
}

// ToBoardConfig converts the board section to the engine's config.
func (c CrunchConfig) ToBoardConfig() board.Config {
	return board.Config{
		PieceTypes:         c.Board.PieceTypes,
		MaxShuffleAttempts: c.Board.MaxShuffleAttempts,
		MaxDrawsPerCell:    c.Board.MaxDrawsPerCell,
		MaxCascadeSteps:    c.Board.MaxCascadeSteps,
	}
}

// Validate reports every out-of-range value.
func (c CrunchConfig) Validate() error {
	var errs []error
	if c.Board.PieceTypes < 3 || c.Board.PieceTypes > board.NumPieceTypes {
		errs = append(errs, fmt.Errorf("board.piece_types must be in [3, %d], got %d", board.NumPieceTypes, c.Board.PieceTypes))
	}
	if err := c.ToBoardConfig().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Scoring.ChainBase <= 0 {
		errs = append(errs, fmt.Errorf("scoring.chain_base must be positive, got %d", c.Scoring.ChainBase))
	}
	if c.Scoring.ComboGrowth < 0 {
		errs = append(errs, fmt.Errorf("scoring.combo_growth must not be negative, got %d", c.Scoring.ComboGrowth))
	}
	if c.Gameplay.Moves <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.moves must be positive, got %d", c.Gameplay.Moves))
	}
	if c.Gameplay.ShufflePenalty < 0 {
		errs = append(errs, fmt.Errorf("gameplay.shuffle_penalty must not be negative, got %d", c.Gameplay.ShufflePenalty))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid crunch config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
