// crunch is a terminal Cookie Crunch game: swap neighbouring cookies to line
// up three or more of a kind before the level runs out of moves.
//
// Usage:
//
//	crunch levels            - List available levels
//	crunch play [level]      - Play a level
//	crunch menu              - Start the level picker
//	crunch serve             - Start SSH server for remote play
//	crunch scores [level]    - Show high scores
//	crunch board [level]     - Print a freshly shuffled board
//	crunch verify            - Soak test boards over many seeds
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.crunch/scores.db)
//	--config <path>       - Use a custom crunch.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--levels <dir>        - Load levels from a directory instead of the built-in set
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cookie-crunch/internal/config"
	"github.com/vovakirdan/cookie-crunch/internal/core"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/levels"
	"github.com/vovakirdan/cookie-crunch/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogLevel   string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crunch",
	Short: "Cookie Crunch - a tile matching game for your terminal",
	Long: `Cookie Crunch is a match-three puzzle played in the terminal.

Swap two neighbouring cookies to line up three or more of the same kind.
Matched cookies crunch, the ones above fall down and new cookies drop in.
Reach the level's target score before you run out of moves.

Available commands:
  levels   - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  board    - Print a shuffled board as text
  verify   - Check board invariants over many seeds

Examples:
  crunch levels
  crunch play Level_2
  crunch play --difficulty easy
  crunch menu
  crunch serve --ssh :2222
  crunch verify --seeds 500`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.crunch/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom crunch config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(verifyCmd)
}

// setup validates the global flags and hands them to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "crunch",
		Level:           level,
	})

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	crunch.Configure(crunch.Settings{
		ConfigPath: flagConfig,
		Difficulty: preset,
		LevelsDir:  flagLevelsDir,
		Logger:     logger,
	})
	return nil
}

// loadConfig resolves the crunch config the same way games do.
func loadConfig() (config.CrunchConfig, error) {
	cfg, err := config.LoadCrunch(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyCrunchPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// allLevels lists the levels from --levels or the built-in set.
func allLevels() ([]levels.Level, error) {
	lvls, err := levels.All(flagLevelsDir)
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("no levels found in %s", flagLevelsDir)
	}
	return lvls, nil
}

// levelArg resolves an optional level argument, defaulting to the first level.
func levelArg(args []string) (levels.Level, error) {
	if len(args) > 0 {
		return levels.Resolve(flagLevelsDir, args[0])
	}
	lvls, err := allLevels()
	if err != nil {
		return levels.Level{}, err
	}
	return lvls[0], nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database; failures only disable persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
