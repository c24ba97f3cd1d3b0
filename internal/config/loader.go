package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in every config directory.
const configFile = "crunch.yaml"

// LoadCrunch loads Cookie Crunch configuration.
// Search order: customPath -> ~/.crunch/configs/crunch.yaml -> ./configs/crunch.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadCrunch(customPath string) (CrunchConfig, error) {
	cfg := DefaultCrunchConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", configFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultCrunchConfig()
	if err := yaml.Unmarshal(defaultCrunchYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultCrunchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (CrunchConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrunchConfig{}, false
	}
	cfg := DefaultCrunchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrunchConfig{}, false
	}
	if cfg.Validate() != nil {
		return CrunchConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crunch", "configs", filename)
}

// ApplyCrunchPreset modifies the config based on a difficulty preset.
func ApplyCrunchPreset(cfg *CrunchConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Board.PieceTypes = 5
		cfg.Gameplay.MoveBonus = 10
		cfg.Gameplay.ShufflePenalty = 0
	case DifficultyHard:
		cfg.Board.PieceTypes = 6
		cfg.Gameplay.MoveBonus = -5
		cfg.Gameplay.ShowHints = false
	}
}

// LevelMoves returns the move budget for a level, falling back to the
// configured default, plus the difficulty bonus. At least one move is granted.
func (c CrunchConfig) LevelMoves(levelMoves int) int {
	moves := c.Gameplay.Moves
	if levelMoves > 0 {
		moves = levelMoves
	}
	return max(moves+c.Gameplay.MoveBonus, 1)
}

// LevelTarget returns the score target for a level, falling back to the config.
func (c CrunchConfig) LevelTarget(levelTarget int) int {
	if levelTarget > 0 {
		return levelTarget
	}
	return c.Gameplay.TargetScore
}
