package board

import (
	"errors"
	"fmt"
)

// ErrGenerationExhausted is returned when the initial fill cannot find a type
// for a cell without creating a run. It means the configuration is degenerate,
// typically fewer than three piece types.
var ErrGenerationExhausted = errors.New("board: piece generation exhausted")

// createInitialCookies fills every playable cell, bottom row first and left
// to right, redrawing a candidate type while it would complete a run with the
// two cells before it in the same row or column. Only earlier cells are ever
// filled, so this is enough to leave the board without runs.
//
// With fewer than three piece types a cell can have no valid candidate; the
// redraw loop is bounded by MaxDrawsPerCell for that case.
func (b *Board) createInitialCookies() error {
	for row := 0; row < b.mask.rows; row++ {
		for column := 0; column < b.mask.columns; column++ {
			if !b.mask.TileAt(column, row) {
				continue
			}

			draws := 0
			for {
				t := b.gen.Next()
				draws++
				if !b.completesRun(column, row, t) {
					b.spawn(column, row, t)
					break
				}
				if draws >= b.cfg.MaxDrawsPerCell {
					return fmt.Errorf("%w: no type for cell (%d,%d) after %d draws",
						ErrGenerationExhausted, column, row, draws)
				}
			}
		}
	}
	return nil
}

// completesRun reports whether placing t at the cell would extend the two
// cells to its left, or the two cells below it, into a run of three.
func (b *Board) completesRun(column, row int, t PieceType) bool {
	if column >= 2 && b.typeAt(column-1, row) == t && b.typeAt(column-2, row) == t {
		return true
	}
	return row >= 2 && b.typeAt(column, row-1) == t && b.typeAt(column, row-2) == t
}
