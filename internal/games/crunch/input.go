package crunch

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cookie-crunch/internal/core"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/board"
)

// ErrInvalidSwapRequest is returned when two cells cannot form a swap:
// out of range, not adjacent, or one of them holds no cookie.
var ErrInvalidSwapRequest = errors.New("invalid swap request")

// Pos is a board cell, row 0 at the bottom.
type Pos struct {
	Column int
	Row    int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// Adjacent reports whether q is one of p's four orthogonal neighbours.
func (p Pos) Adjacent(q Pos) bool {
	dc, dr := p.Column-q.Column, p.Row-q.Row
	return dc*dc+dr*dr == 1
}

// SwapFor turns a pair of cells picked by the player into a swap. It is
// the only place where raw coordinates from input reach the engine, so it
// checks everything the engine treats as a contract. Legality of the swap
// is not checked here.
func SwapFor(b *board.Board, fromC, fromR, toC, toR int) (board.Swap, error) {
	from, to := Pos{fromC, fromR}, Pos{toC, toR}
	mask := b.Mask()
	if !mask.InBounds(fromC, fromR) || !mask.InBounds(toC, toR) {
		return board.Swap{}, fmt.Errorf("%w: %s or %s is off the board", ErrInvalidSwapRequest, from, to)
	}
	if !from.Adjacent(to) {
		return board.Swap{}, fmt.Errorf("%w: %s and %s are not neighbours", ErrInvalidSwapRequest, from, to)
	}

	a, ok := b.CookieAt(fromC, fromR)
	if !ok {
		return board.Swap{}, fmt.Errorf("%w: no cookie at %s", ErrInvalidSwapRequest, from)
	}
	c, ok := b.CookieAt(toC, toR)
	if !ok {
		return board.Swap{}, fmt.Errorf("%w: no cookie at %s", ErrInvalidSwapRequest, to)
	}
	return board.NewSwap(a.ID, c.ID), nil
}

// moveCursor applies the direction actions of a frame. Up raises the row
// since row 0 is drawn at the bottom.
func moveCursor(p Pos, in core.InputFrame, columns, rows int) Pos {
	switch {
	case in.Has(core.ActionUp):
		p.Row++
	case in.Has(core.ActionDown):
		p.Row--
	case in.Has(core.ActionLeft):
		p.Column--
	case in.Has(core.ActionRight):
		p.Column++
	}
	p.Column = core.Clamp(p.Column, 0, columns-1)
	p.Row = core.Clamp(p.Row, 0, rows-1)
	return p
}
