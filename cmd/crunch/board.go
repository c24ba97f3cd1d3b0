package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-crunch/internal/games/crunch"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/board"
)

var flagBoardMoves int

var boardCmd = &cobra.Command{
	Use:   "board [level]",
	Short: "Print a freshly shuffled board",
	Long: `Deal a level and print the board as text, top row first, followed by
its legal swaps. With --moves, random legal swaps are played and the board is
printed after every cascade.

Glyphs: c croissant, u cupcake, d danish, o donut, m macaroon, s sugar cookie,
. empty cell, blank no tile.

Examples:
  crunch board
  crunch board Level_2 --seed 42
  crunch board --seed 7 --moves 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().IntVar(&flagBoardMoves, "moves", 0, "Random legal swaps to play after the deal")
}

func runBoard(_ *cobra.Command, args []string) error {
	lvl, err := levelArg(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mask, err := lvl.Mask()
	if err != nil {
		return err
	}

	b, err := board.New(mask,
		board.WithConfig(cfg.ToBoardConfig()),
		board.WithSeed(flagSeed),
		board.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if _, err := b.Shuffle(); err != nil {
		return err
	}

	fmt.Printf("%s (%s), %dx%d, seed %d\n\n", lvl.Title(), lvl.ID, mask.Columns(), mask.Rows(), flagSeed)
	printBoard(b)

	pick := board.NewSource(flagSeed)
	total := 0
	for move := range flagBoardMoves {
		swaps := b.LegalSwaps()
		swap := swaps[pick.Intn(len(swaps))]
		from, to := swapCells(b, swap)
		b.PerformSwap(swap)
		cascade, err := b.Resolve()
		if err != nil {
			return fmt.Errorf("move %d: %w", move+1, err)
		}

		gain, _ := crunch.ScoreCascade(cascade, cfg.Scoring)
		total += gain
		fmt.Printf("\nMove %d: %s <-> %s, %d cascade step(s), +%d (total %d)\n\n",
			move+1, from, to, len(cascade.Steps), gain, total)

		if cascade.Deadlocked {
			fmt.Println("Deadlocked, reshuffling")
			if _, err := b.Shuffle(); err != nil {
				return err
			}
		}
		printBoard(b)
	}
	return nil
}

func printBoard(b *board.Board) {
	for _, line := range strings.Split(b.String(), "\n") {
		fmt.Printf("  %s\n", line)
	}

	swaps := b.LegalSwaps()
	parts := make([]string, 0, len(swaps))
	for _, s := range swaps {
		from, to := swapCells(b, s)
		parts = append(parts, from.String()+"-"+to.String())
	}
	fmt.Printf("\n%d legal swap(s): %s\n", len(swaps), strings.Join(parts, " "))
}

// swapCells returns the board positions of the two cookies of a swap.
func swapCells(b *board.Board, s board.Swap) (crunch.Pos, crunch.Pos) {
	a, _ := b.Cookie(s.A)
	c, _ := b.Cookie(s.B)
	return crunch.Pos{Column: a.Column, Row: a.Row}, crunch.Pos{Column: c.Column, Row: c.Row}
}
