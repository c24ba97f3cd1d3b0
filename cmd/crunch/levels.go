package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-crunch/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:     "levels",
	Aliases: []string{"list"},
	Short:   "List all available levels",
	Long: `Shows the levels that can be played, with their size, target and moves.
Built-in levels are listed unless --levels points at a directory.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	lvls, err := allLevels()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	progress := map[string]bool{}
	if store := openStore(); store != nil {
		defer store.Close()
		if p, err := store.Progress(); err == nil {
			for id, lp := range p {
				progress[id] = lp.Cleared
			}
		}
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Target", "Moves", "Name")
	fmt.Printf("  %-*s  %-7s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "------", "-----", "----")

	for i := range lvls {
		l := &lvls[i]
		mask, err := l.Mask()
		if err != nil {
			return fmt.Errorf("level %s: %w", l.ID, err)
		}
		name := l.Title()
		if progress[l.ID] {
			name += " (cleared)"
		}
		fmt.Printf("  %-*s  %-7s  %-7d  %-5d  %s\n",
			maxIDLen, l.ID,
			fmt.Sprintf("%dx%d", mask.Columns(), mask.Rows()),
			cfg.LevelTarget(l.TargetScore),
			cfg.LevelMoves(l.Moves),
			name,
		)
	}

	fmt.Println()
	fmt.Println("Modes:")
	for _, g := range registry.List() {
		fmt.Printf("  %-16s  %s\n", g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'crunch play <id>' to play a level, add --endless for endless mode.")
	return nil
}
