package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-crunch/internal/games/crunch"
	"github.com/vovakirdan/cookie-crunch/internal/storage"
)

var (
	flagScoresLimit   int
	flagScoresEndless bool
	flagScoresClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top high scores, for every level or for the given one.

Examples:
  crunch scores
  crunch scores Level_2
  crunch scores --endless
  crunch scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresEndless, "endless", false, "Show endless mode scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the selected mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := crunch.ID
	if flagScoresEndless {
		gameID = crunch.EndlessID
	}

	levelID, title := "", "all levels"
	if len(args) > 0 {
		lvl, err := levelArg(args)
		if err != nil {
			return err
		}
		levelID, title = lvl.ID, lvl.Title()
	}
	if flagScoresEndless {
		title = "endless, " + title
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, levelID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crunch play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %s\n", "Rank", "Score", "Moves", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-10s  %s\n", i+1, entry.Score, entry.MovesUsed, entry.LevelID, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	if levelID != "" {
		if best, err := store.HighScore(gameID, levelID); err == nil {
			fmt.Printf("Best on %s: %d\n", levelID, best)
		}
	}
	return nil
}
