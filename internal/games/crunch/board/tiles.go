package board

import (
	"errors"
	"fmt"
)

// ErrMalformedMask is returned when a level's tile matrix cannot be turned
// into a tile mask.
var ErrMalformedMask = errors.New("board: malformed tile matrix")

// TileMask records which cells of the grid are playable.
// Row 0 is the bottom row. A TileMask is immutable once built.
type TileMask struct {
	columns int
	rows    int
	tiles   []bool
}

// NewTileMask builds a mask from a level matrix of 0/1 values.
// The first row of the matrix is the visual top of the board, so rows are
// inverted into the bottom-up coordinate system.
func NewTileMask(matrix [][]int) (TileMask, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return TileMask{}, fmt.Errorf("%w: empty matrix", ErrMalformedMask)
	}

	rows := len(matrix)
	columns := len(matrix[0])
	m := TileMask{
		columns: columns,
		rows:    rows,
		tiles:   make([]bool, columns*rows),
	}

	for srcRow, line := range matrix {
		if len(line) != columns {
			return TileMask{}, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrMalformedMask, srcRow, len(line), columns)
		}
		row := rows - srcRow - 1
		for column, v := range line {
			switch v {
			case 0:
			case 1:
				m.tiles[row*columns+column] = true
			default:
				return TileMask{}, fmt.Errorf("%w: value %d at row %d column %d",
					ErrMalformedMask, v, srcRow, column)
			}
		}
	}

	return m, nil
}

// Columns returns the grid width.
func (m TileMask) Columns() int {
	return m.columns
}

// Rows returns the grid height.
func (m TileMask) Rows() int {
	return m.rows
}

// InBounds reports whether (column, row) lies inside the grid.
func (m TileMask) InBounds(column, row int) bool {
	return column >= 0 && column < m.columns && row >= 0 && row < m.rows
}

// TileAt reports whether the cell is playable.
// Out-of-range coordinates are a caller bug and panic.
func (m TileMask) TileAt(column, row int) bool {
	m.mustInBounds(column, row)
	return m.tiles[row*m.columns+column]
}

// Count returns the number of playable cells.
func (m TileMask) Count() int {
	n := 0
	for _, t := range m.tiles {
		if t {
			n++
		}
	}
	return n
}

func (m TileMask) mustInBounds(column, row int) {
	if !m.InBounds(column, row) {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d grid", column, row, m.columns, m.rows))
	}
}
