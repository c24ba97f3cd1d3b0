package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/board"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/levels"
)

var (
	flagVerifySeeds   int
	flagVerifyMoves   int
	flagVerifyWorkers int
)

var verifyCmd = &cobra.Command{
	Use:   "verify [level]",
	Short: "Check board invariants over many seeds",
	Long: `Deal every level (or the given one) with many seeds and play random
legal swaps on each board, checking after every deal and every cascade that:

  - the cookie store is consistent with the tile mask
  - no run of three is left on the board
  - at least one legal swap exists (deadlocks are reshuffled)

Boards run in parallel, one per worker.

Examples:
  crunch verify
  crunch verify Level_4 --seeds 1000 --moves 50
  crunch verify --seed 1234 --workers 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&flagVerifySeeds, "seeds", 200, "Seeds to deal per level")
	verifyCmd.Flags().IntVar(&flagVerifyMoves, "moves", 30, "Random legal swaps to play per board")
	verifyCmd.Flags().IntVar(&flagVerifyWorkers, "workers", runtime.NumCPU(), "Boards checked in parallel")
}

func runVerify(cmd *cobra.Command, args []string) error {
	var lvls []levels.Level
	if len(args) > 0 {
		lvl, err := levelArg(args)
		if err != nil {
			return err
		}
		lvls = []levels.Level{lvl}
	} else {
		var err error
		if lvls, err = allLevels(); err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := soak(cmd.Context(), soakOptions{
		Levels:    lvls,
		Config:    cfg.ToBoardConfig(),
		Seeds:     flagVerifySeeds,
		FirstSeed: flagSeed,
		Moves:     flagVerifyMoves,
		Workers:   flagVerifyWorkers,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("OK: %d boards, %d swaps, %d cascade steps (max %d in one move), %d reshuffles in %s\n",
		report.Boards, report.Swaps, report.Steps, report.MaxSteps, report.Reshuffles,
		time.Since(start).Round(time.Millisecond))
	return nil
}

// soakOptions describes one verify run.
type soakOptions struct {
	Levels    []levels.Level
	Config    board.Config
	Seeds     int   // Seeds per level
	FirstSeed int64 // Seeds are FirstSeed, FirstSeed+1, ...; 0 starts at 1
	Moves     int   // Swaps per board
	Workers   int
	Logger    *log.Logger
}

// soakReport sums what the soak exercised.
type soakReport struct {
	Boards     int
	Swaps      int
	Steps      int
	MaxSteps   int
	Reshuffles int
}

func (r *soakReport) add(o soakReport) {
	r.Boards += o.Boards
	r.Swaps += o.Swaps
	r.Steps += o.Steps
	r.MaxSteps = max(r.MaxSteps, o.MaxSteps)
	r.Reshuffles += o.Reshuffles
}

// soak deals every (level, seed) pair on its own board and goroutine. The
// first failing board cancels the rest.
func soak(ctx context.Context, opts soakOptions) (soakReport, error) {
	if opts.Seeds <= 0 {
		return soakReport{}, errors.New("verify: seeds must be positive")
	}
	first := opts.FirstSeed
	if first == 0 {
		first = 1
	}

	type job struct {
		level levels.Level
		seed  int64
	}
	jobs := make([]job, 0, len(opts.Levels)*opts.Seeds)
	for _, lvl := range opts.Levels {
		for i := range opts.Seeds {
			jobs = append(jobs, job{level: lvl, seed: first + int64(i)})
		}
	}

	results := make([]soakReport, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := soakBoard(j.level, j.seed, opts)
			if err != nil {
				return fmt.Errorf("level %s seed %d: %w", j.level.ID, j.seed, err)
			}
			results[i] = r
			return nil
		})
	}

	var total soakReport
	if err := g.Wait(); err != nil {
		return total, err
	}
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}

// soakBoard deals one board and plays random legal swaps on it.
func soakBoard(lvl levels.Level, seed int64, opts soakOptions) (report soakReport, err error) {
	// Engine contract violations panic; report them as a failed board
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	mask, err := lvl.Mask()
	if err != nil {
		return report, err
	}
	b, err := board.New(mask, board.WithConfig(opts.Config), board.WithSeed(seed))
	if err != nil {
		return report, err
	}
	if _, err := b.Shuffle(); err != nil {
		return report, err
	}
	report.Boards = 1
	if err := checkSettled(b, mask); err != nil {
		return report, fmt.Errorf("after deal: %w", err)
	}

	pick := board.NewSource(seed)
	for move := range opts.Moves {
		swaps := b.LegalSwaps()
		swap := swaps[pick.Intn(len(swaps))]
		b.PerformSwap(swap)

		cascade, err := b.Resolve()
		if err != nil {
			return report, fmt.Errorf("move %d: %w", move+1, err)
		}
		if len(cascade.Steps) == 0 {
			return report, fmt.Errorf("move %d: legal swap %s matched nothing", move+1, swap)
		}
		report.Swaps++
		report.Steps += len(cascade.Steps)
		report.MaxSteps = max(report.MaxSteps, len(cascade.Steps))

		if cascade.Deadlocked {
			if opts.Logger != nil {
				opts.Logger.Debug("deadlock, reshuffling", "level", lvl.ID, "seed", seed, "move", move+1)
			}
			if _, err := b.Shuffle(); err != nil {
				return report, fmt.Errorf("move %d: %w", move+1, err)
			}
			report.Reshuffles++
		}
		if err := checkSettled(b, mask); err != nil {
			return report, fmt.Errorf("move %d: %w", move+1, err)
		}
	}
	return report, nil
}

// checkSettled asserts what must hold whenever the board waits for input.
func checkSettled(b *board.Board, mask board.TileMask) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.Count() != mask.Count() {
		return fmt.Errorf("%d cookies on %d tiles", b.Count(), mask.Count())
	}
	if b.HasMatches() {
		return errors.New("settled board still has a run")
	}
	if len(b.LegalSwaps()) == 0 {
		return errors.New("settled board has no legal swap")
	}
	return nil
}
