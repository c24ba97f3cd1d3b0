package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-crunch/internal/games/crunch"
	"github.com/vovakirdan/cookie-crunch/internal/platform/tui"
	"github.com/vovakirdan/cookie-crunch/internal/registry"
)

var flagEndless bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, or the first level when none is given.

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Space/Enter       - Pick a cookie, then pick a neighbour to swap
  X                 - Drop the picked cookie
  ?                 - Show a possible swap
  Z                 - Shuffle the board (costs moves)
  P                 - Pause
  R                 - Restart (after the level ends)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Five cookie kinds and ten extra moves
  normal - Level as designed
  hard   - Five fewer moves and no hints
  fixed  - Like normal, endless stages do not get harder

Examples:
  crunch play
  crunch play Level_3
  crunch play Level_1 --difficulty easy
  crunch play --endless
  crunch play --config ./my-crunch.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless stages starting from the level")
}

func runPlay(_ *cobra.Command, args []string) error {
	lvl, err := levelArg(args)
	if err != nil {
		return err
	}

	gameID := crunch.ID
	if flagEndless {
		gameID = crunch.EndlessID
	}
	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(*crunch.Game)
	if !ok {
		return fmt.Errorf("game %q is not a crunch game", gameID)
	}
	game.SetLevel(lvl)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting level", "game", game.ID(), "level", lvl.ID, "seed", flagSeed)
	_, err = tui.Run(game, store, runtimeConfig(), logger)
	if err != nil {
		return err
	}
	return game.Err()
}
