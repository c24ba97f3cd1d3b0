package board

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"
)

// Config bounds the generation and cascade loops.
//
// PieceTypes accepts 1 and 2 even though no playable board can be dealt with
// fewer than three types: Shuffle reports such boards with
// ErrGenerationExhausted or ErrDeadlock. The game config requires 3 or more.
type Config struct {
	PieceTypes         int // Number of piece types in play (1..NumPieceTypes)
	MaxShuffleAttempts int // Fill+validate rounds before Shuffle gives up
	MaxDrawsPerCell    int // Redraws per cell during initial fill
	MaxCascadeSteps    int // Rounds Resolve plays before ErrCascadeExhausted
}

// DefaultConfig returns the classic six-type board settings.
func DefaultConfig() Config {
	return Config{
		PieceTypes:         NumPieceTypes,
		MaxShuffleAttempts: 100,
		MaxDrawsPerCell:    1000,
		MaxCascadeSteps:    100,
	}
}

// Validate checks that every bound is usable.
func (c Config) Validate() error {
	var errs []error
	if c.PieceTypes < 1 || c.PieceTypes > NumPieceTypes {
		errs = append(errs, fmt.Errorf("piece types %d outside [1,%d]", c.PieceTypes, NumPieceTypes))
	}
	if c.MaxShuffleAttempts < 1 {
		errs = append(errs, fmt.Errorf("max shuffle attempts must be positive, got %d", c.MaxShuffleAttempts))
	}
	if c.MaxDrawsPerCell < 1 {
		errs = append(errs, fmt.Errorf("max draws per cell must be positive, got %d", c.MaxDrawsPerCell))
	}
	if c.MaxCascadeSteps < 1 {
		errs = append(errs, fmt.Errorf("max cascade steps must be positive, got %d", c.MaxCascadeSteps))
	}
	if len(errs) > 0 {
		return fmt.Errorf("board: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Option customizes a Board.
type Option func(*Board)

// WithConfig replaces the default Config.
func WithConfig(cfg Config) Option {
	return func(b *Board) {
		b.cfg = cfg
	}
}

// WithSource sets the random stream piece types are drawn from.
func WithSource(src Source) Option {
	return func(b *Board) {
		b.src = src
	}
}

// WithSeed is shorthand for WithSource(NewSource(seed)).
func WithSeed(seed int64) Option {
	return WithSource(NewSource(seed))
}

// WithLogger attaches a logger for generation and cascade diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// Board is the aggregate of a fixed tile mask, the mutable cookie store and
// the cached set of legal swaps.
type Board struct {
	mask   TileMask
	cfg    Config
	src    Source
	gen    *Generator
	logger *log.Logger

	grid    []CookieID // row*columns + column
	cookies *intmap.Map[CookieID, *Cookie]
	nextID  CookieID

	legal *intmap.Map[uint64, Swap]
	state ShuffleState
}

// New creates an empty board over the given mask.
// Call Shuffle to deal the first layout.
func New(mask TileMask, opts ...Option) (*Board, error) {
	if mask.columns == 0 || mask.rows == 0 {
		return nil, fmt.Errorf("%w: zero-sized mask", ErrMalformedMask)
	}

	b := &Board{
		mask: mask,
		cfg:  DefaultConfig(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	if b.src == nil {
		b.src = NewSource(0)
	}
	if b.logger == nil {
		b.logger = log.New(io.Discard)
	}

	size := mask.columns * mask.rows
	b.gen = NewGenerator(b.src, b.cfg.PieceTypes)
	b.grid = make([]CookieID, size)
	b.cookies = intmap.New[CookieID, *Cookie](size)
	b.legal = intmap.New[uint64, Swap](size * 2)
	b.state = StateEmpty

	return b, nil
}

// Columns returns the grid width.
func (b *Board) Columns() int {
	return b.mask.columns
}

// Rows returns the grid height.
func (b *Board) Rows() int {
	return b.mask.rows
}

// Mask returns the board's tile mask.
func (b *Board) Mask() TileMask {
	return b.mask
}

// Config returns the board's generation bounds.
func (b *Board) Config() Config {
	return b.cfg
}

// TileAt reports whether the cell is playable. Out-of-range cells panic.
func (b *Board) TileAt(column, row int) bool {
	return b.mask.TileAt(column, row)
}

// State returns where the shuffle state machine currently is.
func (b *Board) State() ShuffleState {
	return b.state
}

func (b *Board) index(column, row int) int {
	return row*b.mask.columns + column
}
