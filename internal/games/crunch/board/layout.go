package board

import (
	"errors"
	"fmt"
	"strings"
)

// Layout glyphs. Piece types use PieceType.Glyph.
const (
	GlyphNoTile = ' '
	GlyphEmpty  = '.'
)

// NewFromLayout builds a board from text rows, top row first:
// ' ' or '-' is a cell without a tile, '.' an empty playable cell, and a
// piece glyph a playable cell holding that cookie. Cookies are created in
// bottom-to-top, left-to-right order. The legal swap set is computed.
func NewFromLayout(layout []string, opts ...Option) (*Board, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrMalformedMask)
	}

	width := 0
	for _, line := range layout {
		width = max(width, len([]rune(line)))
	}

	matrix := make([][]int, len(layout))
	pieces := make([][]rune, len(layout))
	for i, line := range layout {
		runes := []rune(line)
		matrix[i] = make([]int, width)
		pieces[i] = make([]rune, width)
		for c := 0; c < width; c++ {
			r := GlyphNoTile
			if c < len(runes) {
				r = runes[c]
			}
			pieces[i][c] = r
			switch r {
			case GlyphNoTile, '-':
			case GlyphEmpty:
				matrix[i][c] = 1
			default:
				if _, ok := ParsePieceType(r); !ok {
					return nil, fmt.Errorf("%w: unknown glyph %q at row %d column %d", ErrMalformedMask, r, i, c)
				}
				matrix[i][c] = 1
			}
		}
	}

	mask, err := NewTileMask(matrix)
	if err != nil {
		return nil, err
	}
	b, err := New(mask, opts...)
	if err != nil {
		return nil, err
	}

	for row := 0; row < mask.rows; row++ {
		src := pieces[mask.rows-row-1]
		for column := 0; column < mask.columns; column++ {
			if t, ok := ParsePieceType(src[column]); ok {
				b.spawn(column, row, t)
			}
		}
	}
	b.DetectLegalSwaps()
	return b, nil
}

// String renders the board in the NewFromLayout format, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.mask.rows - 1; row >= 0; row-- {
		for column := 0; column < b.mask.columns; column++ {
			switch {
			case !b.mask.TileAt(column, row):
				sb.WriteRune('-')
			case b.typeAt(column, row) == Unknown:
				sb.WriteRune(GlyphEmpty)
			default:
				sb.WriteRune(b.typeAt(column, row).Glyph())
			}
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Validate checks the structural invariants of the cookie store: cookies only
// on playable cells, one cookie per cell, stored coordinates matching the
// cell, and no orphaned cookies in the arena.
func (b *Board) Validate() error {
	var errs []error
	seen := 0
	for row := 0; row < b.mask.rows; row++ {
		for column := 0; column < b.mask.columns; column++ {
			id := b.grid[b.index(column, row)]
			if id == 0 {
				continue
			}
			seen++
			if !b.mask.TileAt(column, row) {
				errs = append(errs, fmt.Errorf("cookie #%d on cell (%d,%d) without tile", id, column, row))
			}
			ck, ok := b.cookies.Get(id)
			if !ok {
				errs = append(errs, fmt.Errorf("cell (%d,%d) references missing cookie #%d", column, row, id))
				continue
			}
			if ck.Column != column || ck.Row != row {
				errs = append(errs, fmt.Errorf("cookie #%d stored at (%d,%d) but indexed at (%d,%d)",
					id, ck.Column, ck.Row, column, row))
			}
			if !ck.Type.Valid() {
				errs = append(errs, fmt.Errorf("cookie #%d has type %s", id, ck.Type))
			}
		}
	}
	if seen != b.cookies.Len() {
		errs = append(errs, fmt.Errorf("grid holds %d cookies, arena holds %d", seen, b.cookies.Len()))
	}
	if len(errs) > 0 {
		return fmt.Errorf("board: invariant violated: %w", errors.Join(errs...))
	}
	return nil
}
