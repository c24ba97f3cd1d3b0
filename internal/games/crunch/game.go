// Package crunch implements the Cookie Crunch game on top of the board
// engine: cursor and selection, moves and targets, scoring, and the
// campaign and endless modes.
package crunch

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cookie-crunch/internal/config"
	"github.com/vovakirdan/cookie-crunch/internal/core"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/board"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/levels"
	"github.com/vovakirdan/cookie-crunch/internal/registry"
)

// Game IDs used by the registry and score storage.
const (
	ID        = "crunch"
	EndlessID = "crunch_endless"
)

// Game states.
const (
	StatePlaying    = "playing"
	StatePaused     = "paused"
	StateCleared    = "cleared"      // Target reached (campaign)
	StateOutOfMoves = "out_of_moves" // Moves exhausted before the target
	StateFailed     = "failed"       // The board could not be generated or settled
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // One level, win by reaching its target
	ModeEndless                  // Stages with growing targets until moves run out
)

// DefaultLevelID is played when nothing else is chosen.
const DefaultLevelID = "Level_0"

// Settings are process-wide defaults used by games created through the
// registry. The CLI sets them once from its flags.
type Settings struct {
	ConfigPath string
	Difficulty config.DifficultyPreset
	LevelsDir  string
	LevelID    string
	Logger     *log.Logger
}

var (
	settingsMu sync.RWMutex
	settings   Settings
)

// Configure replaces the registry defaults.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Option customizes a Game.
type Option func(*Game)

// WithLevel fixes the level instead of resolving it from Settings.
func WithLevel(lvl levels.Level) Option {
	return func(g *Game) {
		g.level = lvl
		g.levelSet = true
	}
}

// WithConfig fixes the configuration instead of loading it from Settings.
func WithConfig(cfg config.CrunchConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgSet = true
	}
}

// WithLogger sets the logger used by the game and its board.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// Game implements the Cookie Crunch game logic.
type Game struct {
	mode GameMode

	level    levels.Level
	levelSet bool
	cfg      config.CrunchConfig
	cfgSet   bool
	logger   *log.Logger

	runtime    core.RuntimeConfig
	board      *board.Board
	difficulty *config.DifficultyManager

	cursor    Pos
	selection *Pos
	hint      *board.Swap

	state     string
	err       error
	score     int
	target    int
	movesLeft int
	movesUsed int
	stage     int
	shuffles  int
	tick      uint64

	lastGain   int
	lastChains []ChainScore
	flash      string
	flashTicks int

	// Layout (computed from screen size)
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance (campaign mode).
func New(opts ...Option) *Game {
	return newGame(ModeCampaign, opts)
}

// NewEndless creates a new game instance in endless mode.
func NewEndless(opts ...Option) *Game {
	return newGame(ModeEndless, opts)
}

func newGame(mode GameMode, opts []Option) *Game {
	g := &Game{mode: mode}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Cookie Crunch (Endless)"
	}
	return "Cookie Crunch"
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// SetLevel picks the level the next Reset plays.
func (g *Game) SetLevel(lvl levels.Level) {
	WithLevel(lvl)(g)
}

// Board exposes the engine for inspection. Callers must not mutate it.
func (g *Game) Board() *board.Board {
	return g.board
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	s := currentSettings()

	if g.logger == nil {
		g.logger = s.Logger
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.score, g.movesUsed, g.shuffles, g.stage, g.tick = 0, 0, 0, 1, 0
	g.board, g.selection, g.hint, g.err = nil, nil, nil, nil
	g.lastGain, g.lastChains = 0, nil
	g.flash, g.flashTicks = "", 0
	g.state = StatePlaying

	if err := g.resolveSetup(s); err != nil {
		g.fail(err)
		return
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.target = g.cfg.LevelTarget(g.level.TargetScore)
	g.movesLeft = g.cfg.LevelMoves(g.level.Moves)

	g.calculateLayout()

	mask, err := g.level.Mask()
	if err != nil {
		g.fail(err)
		return
	}
	b, err := board.New(mask,
		board.WithConfig(g.cfg.ToBoardConfig()),
		board.WithSeed(runtime.Seed),
		board.WithLogger(g.logger),
	)
	if err != nil {
		g.fail(err)
		return
	}
	if _, err := b.Shuffle(); err != nil {
		g.fail(err)
		return
	}
	g.board = b
	g.cursor = g.firstPlayable()

	g.logger.Debug("level started",
		"game", g.ID(),
		"level", g.level.ID,
		"target", g.target,
		"moves", g.movesLeft,
		"legal_swaps", len(g.board.LegalSwaps()),
	)
}

// resolveSetup fills in the level and config that were not given as options.
func (g *Game) resolveSetup(s Settings) error {
	if !g.cfgSet {
		cfg, err := config.LoadCrunch(s.ConfigPath)
		if err != nil {
			return err
		}
		if s.Difficulty != "" {
			config.ApplyCrunchPreset(&cfg, s.Difficulty)
		}
		g.cfg = cfg
		g.cfgSet = true
	}
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	if !g.levelSet {
		id := s.LevelID
		if id == "" {
			id = DefaultLevelID
		}
		lvl, err := levels.Resolve(s.LevelsDir, id)
		if err != nil {
			return err
		}
		g.level = lvl
		g.levelSet = true
	}
	return nil
}

func (g *Game) calculateLayout() {
	mask, err := g.level.Mask()
	if err != nil {
		return
	}
	g.minScreenW = max(mask.Columns()*cellWidth+2, 40)
	g.minScreenH = mask.Rows() + hudRows + footerRows + 2
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH
}

func (g *Game) fail(err error) {
	g.err = err
	g.state = StateFailed
	g.logger.Error("game stopped", "game", g.ID(), "level", g.level.ID, "err", err)
	g.setFlash("error: " + err.Error())
}

// firstPlayable returns the lowest, leftmost cell with a tile.
func (g *Game) firstPlayable() Pos {
	for row := 0; row < g.board.Rows(); row++ {
		for column := 0; column < g.board.Columns(); column++ {
			if g.board.TileAt(column, row) {
				return Pos{column, row}
			}
		}
	}
	return Pos{}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.isOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = ""
		}
	}

	if g.state != StatePlaying || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.cursor = moveCursor(g.cursor, in, g.board.Columns(), g.board.Rows())

	switch {
	case in.Has(core.ActionSelect):
		g.handleSelect()
	case in.Has(core.ActionCancel):
		g.selection = nil
	case in.Has(core.ActionHint):
		g.showHint()
	case in.Has(core.ActionShuffle):
		g.manualShuffle()
	}

	return core.StepResult{State: g.State()}
}

// handleSelect picks up the cookie under the cursor, drops it, or swaps it
// with the picked one when the two are neighbours.
func (g *Game) handleSelect() {
	cur := g.cursor
	if g.selection == nil {
		if _, ok := g.board.CookieAt(cur.Column, cur.Row); !ok {
			g.setFlash("nothing to pick up")
			return
		}
		g.selection = &cur
		return
	}

	from := *g.selection
	switch {
	case from == cur:
		g.selection = nil
	case from.Adjacent(cur):
		g.selection = nil
		g.trySwap(from, cur)
	default:
		if _, ok := g.board.CookieAt(cur.Column, cur.Row); ok {
			g.selection = &cur
		}
	}
}

// TrySwap attempts to swap the cookies of two cells as one player move.
// It reports whether the swap was legal and played.
func (g *Game) TrySwap(from, to Pos) bool {
	if g.state != StatePlaying {
		return false
	}
	return g.trySwap(from, to)
}

func (g *Game) trySwap(from, to Pos) bool {
	s, err := SwapFor(g.board, from.Column, from.Row, to.Column, to.Row)
	if err != nil {
		g.setFlash("invalid swap")
		return false
	}
	if !g.board.IsLegalSwap(s) {
		g.setFlash("no match there")
		return false
	}

	g.hint = nil
	g.board.PerformSwap(s)
	cascade, err := g.board.Resolve()
	if err != nil {
		g.fail(err)
		return true
	}

	gain, chains := ScoreCascade(cascade, g.cfg.Scoring)
	g.score += gain
	g.lastGain, g.lastChains = gain, chains
	g.movesLeft--
	g.movesUsed++

	if len(cascade.Steps) > 1 {
		g.setFlash(fmt.Sprintf("+%d  cascade x%d", gain, len(cascade.Steps)))
	} else {
		g.setFlash(fmt.Sprintf("+%d", gain))
	}

	g.logger.Debug("move played",
		"swap", s,
		"steps", len(cascade.Steps),
		"gain", gain,
		"score", g.score,
		"moves_left", g.movesLeft,
	)

	if cascade.Deadlocked && !g.reshuffle() {
		return true
	}
	g.checkGoal()
	return true
}

// checkGoal decides whether the level is cleared or lost after a move.
func (g *Game) checkGoal() {
	if g.score >= g.target {
		if g.mode == ModeEndless {
			g.nextStage()
			return
		}
		g.state = StateCleared
		g.setFlash("level cleared!")
		return
	}
	if g.movesLeft <= 0 {
		g.movesLeft = 0
		g.state = StateOutOfMoves
		g.setFlash("out of moves")
	}
}

// nextStage raises the endless target and refills the moves.
func (g *Game) nextStage() {
	g.stage++
	base := g.cfg.LevelTarget(g.level.TargetScore)
	g.target = g.score + g.difficulty.StageTarget(base, g.score, g.movesUsed)
	g.movesLeft = g.difficulty.StageMoves(g.cfg.LevelMoves(g.level.Moves), g.score, g.movesUsed)
	g.setFlash(fmt.Sprintf("stage %d", g.stage))
}

func (g *Game) showHint() {
	if !g.cfg.Gameplay.ShowHints {
		g.setFlash("hints are off")
		return
	}
	swaps := g.board.LegalSwaps()
	if len(swaps) == 0 {
		return
	}
	h := swaps[0]
	g.hint = &h
}

// manualShuffle reshuffles on request at the cost of the shuffle penalty.
func (g *Game) manualShuffle() {
	penalty := g.cfg.Gameplay.ShufflePenalty
	if penalty >= g.movesLeft && penalty > 0 {
		g.setFlash("not enough moves to shuffle")
		return
	}
	g.movesLeft -= penalty
	g.movesUsed += penalty
	if g.reshuffle() {
		g.setFlash("shuffled")
	}
}

// reshuffle replaces the layout. A failure ends the game.
func (g *Game) reshuffle() bool {
	g.selection, g.hint = nil, nil
	if _, err := g.board.Shuffle(); err != nil {
		if errors.Is(err, board.ErrDeadlock) {
			g.logger.Warn("reshuffle gave up", "level", g.level.ID, "err", err)
		}
		g.fail(err)
		return false
	}
	g.shuffles++
	g.setFlash("no moves left, reshuffled")
	return true
}

func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashTicks = max(g.cfg.Gameplay.FlashTicks, 1)
}

func (g *Game) isOver() bool {
	return g.state == StateCleared || g.state == StateOutOfMoves || g.state == StateFailed
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.isOver(),
		Won:      g.state == StateCleared,
		Paused:   g.state == StatePaused,
	}
}

// Progress reports what storage records for a finished session.
func (g *Game) Progress() (levelID string, score, movesUsed int, cleared bool) {
	return g.level.ID, g.score, g.movesUsed, g.state == StateCleared
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
}
