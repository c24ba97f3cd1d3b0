package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultCrunchConfig()
	require.NoError(t, yaml.Unmarshal(defaultCrunchYAML, &cfg))
	assert.Equal(t, DefaultCrunchConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadCrunchCustomPathOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "crunch.yaml")
	require.NoError(t, os.WriteFile(p, []byte("board:\n  piece_types: 4\ngameplay:\n  moves: 30\n"), 0o644))

	cfg, err := LoadCrunch(p)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Board.PieceTypes)
	assert.Equal(t, 30, cfg.Gameplay.Moves)
	assert.Equal(t, 100, cfg.Board.MaxShuffleAttempts, "untouched fields keep defaults")
	assert.Equal(t, 60, cfg.Scoring.ChainBase)
}

func TestLoadCrunchCustomPathErrors(t *testing.T) {
	_, err := LoadCrunch(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [1, 2"), 0o644))
	_, err = LoadCrunch(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("board:\n  piece_types: 2\n"), 0o644))
	_, err = LoadCrunch(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "piece_types")
}

func TestLoadCrunchSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := LoadCrunch("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCrunchConfig(), cfg, "embedded default")

	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", "crunch.yaml"), []byte("gameplay:\n  moves: 11\n"), 0o644))
	cfg, err = LoadCrunch("")
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Gameplay.Moves, "local configs directory")

	userDir := filepath.Join(home, ".crunch", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "crunch.yaml"), []byte("gameplay:\n  moves: 22\n"), 0o644))
	cfg, err = LoadCrunch("")
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.Gameplay.Moves, "user config wins over local")

	// An invalid user file is skipped.
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "crunch.yaml"), []byte("gameplay:\n  moves: -1\n"), 0o644))
	cfg, err = LoadCrunch("")
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Gameplay.Moves)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrunchConfig)
		want   string
	}{
		{name: "too few types", mutate: func(c *CrunchConfig) { c.Board.PieceTypes = 2 }, want: "piece_types"},
		{name: "too many types", mutate: func(c *CrunchConfig) { c.Board.PieceTypes = 7 }, want: "piece_types"},
		{name: "chain base", mutate: func(c *CrunchConfig) { c.Scoring.ChainBase = 0 }, want: "chain_base"},
		{name: "combo", mutate: func(c *CrunchConfig) { c.Scoring.ComboGrowth = -1 }, want: "combo_growth"},
		{name: "moves", mutate: func(c *CrunchConfig) { c.Gameplay.Moves = 0 }, want: "moves"},
		{name: "penalty", mutate: func(c *CrunchConfig) { c.Gameplay.ShufflePenalty = -2 }, want: "shuffle_penalty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCrunchConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestToBoardConfig(t *testing.T) {
	cfg := DefaultCrunchConfig()
	cfg.Board.PieceTypes = 4
	bc := cfg.ToBoardConfig()
	assert.Equal(t, 4, bc.PieceTypes)
	assert.Equal(t, cfg.Board.MaxShuffleAttempts, bc.MaxShuffleAttempts)
	assert.Equal(t, cfg.Board.MaxDrawsPerCell, bc.MaxDrawsPerCell)
	assert.Equal(t, cfg.Board.MaxCascadeSteps, bc.MaxCascadeSteps)
	require.NoError(t, bc.Validate())
}

func TestPresets(t *testing.T) {
	easy := DefaultCrunchConfig()
	ApplyCrunchPreset(&easy, DifficultyEasy)
	assert.Equal(t, 5, easy.Board.PieceTypes)
	assert.Equal(t, 25, easy.LevelMoves(15))
	assert.Equal(t, 30, easy.LevelMoves(0), "falls back to gameplay.moves")
	require.NoError(t, easy.Validate())

	hard := DefaultCrunchConfig()
	ApplyCrunchPreset(&hard, DifficultyHard)
	assert.Equal(t, 10, hard.LevelMoves(15))
	assert.Equal(t, 1, hard.LevelMoves(3), "at least one move")
	assert.False(t, hard.Gameplay.ShowHints)
	assert.InDelta(t, 0.7, hard.Difficulty.InitialLevel, 1e-9)

	fixed := DefaultCrunchConfig()
	ApplyCrunchPreset(&fixed, DifficultyFixed)
	assert.False(t, fixed.Difficulty.Enabled)
	assert.Equal(t, 15, fixed.LevelMoves(15))

	assert.Equal(t, 1000, fixed.LevelTarget(0))
	assert.Equal(t, 4000, fixed.LevelTarget(4000))
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)
	assert.False(t, IsFixedPreset(p))

	_, err = ParsePreset("nightmare")
	require.Error(t, err)
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultCrunchConfig().Difficulty
	d := NewDifficultyManager(cfg)

	assert.True(t, d.IsEnabled())
	assert.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(10000, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(50000, 0), 1e-9, "clamped")

	assert.Equal(t, 1000, d.StageTarget(1000, 0, 0))
	assert.Equal(t, 2000, d.StageTarget(1000, 20000, 0))
	assert.Equal(t, 20, d.StageMoves(20, 0, 0))
	assert.Equal(t, 12, d.StageMoves(20, 20000, 0))
	assert.Equal(t, 5, d.StageMoves(6, 20000, 0), "minimum stage")
	assert.Equal(t, 3, d.StageMoves(3, 20000, 0), "never above base")

	d.SetInitialLevel(2)
	assert.InDelta(t, 1.0, d.Level(0, 0), 1e-9)

	cfg.Progression.Type = "moves"
	cfg.Progression.MaxAt = 10
	d = NewDifficultyManager(cfg)
	assert.InDelta(t, 0.5, d.Level(999999, 5), 1e-9)

	cfg.Enabled = false
	d = NewDifficultyManager(cfg)
	assert.False(t, d.IsEnabled())
	assert.InDelta(t, 0.0, d.Level(20000, 10), 1e-9)
}
