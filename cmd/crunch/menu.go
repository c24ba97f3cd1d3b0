package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-crunch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the level picker menu",
	Long: `Start Cookie Crunch in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
After a level ends, press Esc to return to the menu.
Cleared levels are marked with a star.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - High scores
  Q            - Quit

Examples:
  crunch menu
  crunch menu --levels ./my-levels
  crunch menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	lvls, err := allLevels()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// A zero seed lets every level pick a fresh one
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, lvls)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, lvls, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		item := menuResult.Item
		if item == nil {
			return nil
		}

		game := item.NewGame()
		logger.Info("starting level", "game", game.ID(), "level", item.Level.ID)
		backToMenu, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			return err
		}
		if gameErr := game.Err(); gameErr != nil {
			logger.Error("level could not be played", "level", item.Level.ID, "err", gameErr)
		}
		if !backToMenu {
			return nil
		}
	}
}
