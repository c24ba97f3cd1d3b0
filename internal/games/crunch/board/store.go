package board

import "fmt"

// CookieAt returns the cookie occupying the cell, if any.
// Out-of-range cells panic.
func (b *Board) CookieAt(column, row int) (Cookie, bool) {
	b.mask.mustInBounds(column, row)
	id := b.grid[b.index(column, row)]
	if id == 0 {
		return Cookie{}, false
	}
	ck, ok := b.cookies.Get(id)
	if !ok {
		panic(fmt.Sprintf("board: grid references missing cookie #%d", id))
	}
	return *ck, true
}

// Cookie looks a cookie up by identity.
func (b *Board) Cookie(id CookieID) (Cookie, bool) {
	ck, ok := b.cookies.Get(id)
	if !ok {
		return Cookie{}, false
	}
	return *ck, true
}

// Place creates a new cookie of type t at the cell.
// The cell must be playable and empty, and t must be a real piece type.
func (b *Board) Place(column, row int, t PieceType) Cookie {
	if !b.mask.TileAt(column, row) {
		panic(fmt.Sprintf("board: cannot place cookie at (%d,%d): no tile", column, row))
	}
	if b.grid[b.index(column, row)] != 0 {
		panic(fmt.Sprintf("board: cannot place cookie at (%d,%d): cell occupied", column, row))
	}
	if !t.Valid() {
		panic(fmt.Sprintf("board: cannot place cookie of type %s", t))
	}
	return b.spawn(column, row, t)
}

// Remove clears the cell and destroys the cookie that was there.
func (b *Board) Remove(column, row int) (Cookie, bool) {
	ck, ok := b.CookieAt(column, row)
	if !ok {
		return Cookie{}, false
	}
	b.grid[b.index(column, row)] = 0
	b.cookies.Del(ck.ID)
	return ck, true
}

// PerformSwap exchanges the positions of the two cookies in the swap.
// It does not check legality; call IsLegalSwap first. Applying the same swap
// twice restores the original layout. Unknown or non-adjacent cookies panic.
func (b *Board) PerformSwap(s Swap) {
	a, ok := b.cookies.Get(s.A)
	if !ok {
		panic(fmt.Sprintf("board: %s references missing cookie #%d", s, s.A))
	}
	c, ok := b.cookies.Get(s.B)
	if !ok {
		panic(fmt.Sprintf("board: %s references missing cookie #%d", s, s.B))
	}
	if !adjacent(a.Column, a.Row, c.Column, c.Row) {
		panic(fmt.Sprintf("board: %s between non-adjacent cookies %s and %s", s, a, c))
	}

	b.grid[b.index(a.Column, a.Row)] = c.ID
	b.grid[b.index(c.Column, c.Row)] = a.ID
	a.Column, c.Column = c.Column, a.Column
	a.Row, c.Row = c.Row, a.Row
}

// Cookies returns every placed cookie, bottom row first, left to right.
func (b *Board) Cookies() []Cookie {
	out := make([]Cookie, 0, b.cookies.Len())
	for _, id := range b.grid {
		if id == 0 {
			continue
		}
		ck, _ := b.cookies.Get(id)
		out = append(out, *ck)
	}
	return out
}

// Count returns the number of placed cookies.
func (b *Board) Count() int {
	return b.cookies.Len()
}

// typeAt returns the piece type at an in-bounds cell, or Unknown when empty.
func (b *Board) typeAt(column, row int) PieceType {
	id := b.grid[b.index(column, row)]
	if id == 0 {
		return Unknown
	}
	ck, _ := b.cookies.Get(id)
	return ck.Type
}

func (b *Board) spawn(column, row int, t PieceType) Cookie {
	b.nextID++
	ck := &Cookie{ID: b.nextID, Column: column, Row: row, Type: t}
	b.cookies.Put(ck.ID, ck)
	b.grid[b.index(column, row)] = ck.ID
	return *ck
}

// removeID destroys a cookie by identity. Already removed ids are ignored.
func (b *Board) removeID(id CookieID) {
	ck, ok := b.cookies.Get(id)
	if !ok {
		return
	}
	b.grid[b.index(ck.Column, ck.Row)] = 0
	b.cookies.Del(id)
}

func (b *Board) clear() {
	for i := range b.grid {
		b.grid[i] = 0
	}
	b.cookies.Clear()
	b.legal.Clear()
}

func adjacent(c1, r1, c2, r2 int) bool {
	dc, dr := c1-c2, r1-r2
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc+dr == 1
}
