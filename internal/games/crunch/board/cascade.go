package board

import "github.com/samber/lo"

// RemoveMatches finds every horizontal and vertical run, clears the cells of
// their cookies and returns the chains. A cookie at the crossing of an L or T
// shape belongs to two chains and is removed once.
func (b *Board) RemoveMatches() []Chain {
	chains := append(b.DetectHorizontalRuns(), b.DetectVerticalRuns()...)
	chains = lo.UniqBy(chains, Chain.Key)

	for _, chain := range chains {
		for _, ck := range chain.Cookies {
			b.removeID(ck.ID)
		}
	}
	return chains
}

// FillHoles lets cookies fall into the empty playable cells below them.
//
// Each column is scanned bottom to top. An empty playable cell takes the
// nearest cookie above it in the same column, even across cells without
// tiles, so surviving cookies keep their vertical order. The result lists,
// per column that changed, the cookies that moved in the order they moved.
func (b *Board) FillHoles() [][]Cookie {
	var columns [][]Cookie
	for column := 0; column < b.mask.columns; column++ {
		var moved []Cookie
		for row := 0; row < b.mask.rows; row++ {
			i := b.index(column, row)
			if !b.mask.tiles[i] || b.grid[i] != 0 {
				continue
			}
			for look := row + 1; look < b.mask.rows; look++ {
				j := b.index(column, look)
				id := b.grid[j]
				if id == 0 {
					continue
				}
				b.grid[j] = 0
				b.grid[i] = id
				ck, _ := b.cookies.Get(id)
				ck.Row = row
				moved = append(moved, *ck)
				break
			}
		}
		if len(moved) > 0 {
			columns = append(columns, moved)
		}
	}
	return columns
}

// TopUpCookies fills the empty playable cells at the top of each column with
// new cookies, scanning down until the first occupied cell. A new cookie never
// repeats the type of the one created just before it in the same column.
// Initial fill looks two cookies back instead.
func (b *Board) TopUpCookies() [][]Cookie {
	var columns [][]Cookie
	for column := 0; column < b.mask.columns; column++ {
		var added []Cookie
		last := Unknown
		for row := b.mask.rows - 1; row >= 0; row-- {
			i := b.index(column, row)
			if b.grid[i] != 0 {
				break
			}
			if !b.mask.tiles[i] {
				continue
			}
			t := b.gen.NextExcept(last)
			last = t
			added = append(added, b.spawn(column, row, t))
		}
		if len(added) > 0 {
			columns = append(columns, added)
		}
	}
	return columns
}
