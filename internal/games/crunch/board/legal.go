package board

import "sort"

// DetectLegalSwaps rebuilds the cached legal swap set from scratch and
// returns its size.
//
// Every cookie is tentatively swapped with its right and upper neighbour,
// which visits each adjacent pair exactly once. A swap is legal when either
// of the two cells then anchors a run of three. The tentative swap is always
// reverted.
func (b *Board) DetectLegalSwaps() int {
	b.legal.Clear()

	cols, rows := b.mask.columns, b.mask.rows
	for row := 0; row < rows; row++ {
		for column := 0; column < cols; column++ {
			i := b.index(column, row)
			id := b.grid[i]
			if id == 0 {
				continue
			}

			if column < cols-1 {
				if other := b.grid[i+1]; other != 0 {
					b.grid[i], b.grid[i+1] = other, id
					if b.hasRun(column+1, row) || b.hasRun(column, row) {
						b.addLegal(NewSwap(id, other))
					}
					b.grid[i], b.grid[i+1] = id, other
				}
			}

			if row < rows-1 {
				j := i + cols
				if other := b.grid[j]; other != 0 {
					b.grid[i], b.grid[j] = other, id
					if b.hasRun(column, row+1) || b.hasRun(column, row) {
						b.addLegal(NewSwap(id, other))
					}
					b.grid[i], b.grid[j] = id, other
				}
			}
		}
	}

	return b.legal.Len()
}

// IsLegalSwap reports whether the swap is in the cached legal set.
// The cache is only accurate after DetectLegalSwaps has run on the current
// layout.
func (b *Board) IsLegalSwap(s Swap) bool {
	_, ok := b.legal.Get(s.Key())
	return ok
}

// LegalSwaps returns the cached legal swaps in a stable order.
func (b *Board) LegalSwaps() []Swap {
	out := make([]Swap, 0, b.legal.Len())
	b.legal.ForEach(func(_ uint64, s Swap) bool {
		out = append(out, s)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key() < out[j].Key()
	})
	return out
}

func (b *Board) addLegal(s Swap) {
	b.legal.Put(s.Key(), s)
}

// hasRun reports whether the cell anchors a run of three or more, counting
// same-typed neighbours left/right and, separately, down/up.
func (b *Board) hasRun(column, row int) bool {
	t := b.typeAt(column, row)
	if t == Unknown {
		return false
	}

	horz := 1
	for c := column - 1; c >= 0 && b.typeAt(c, row) == t; c-- {
		horz++
	}
	for c := column + 1; c < b.mask.columns && b.typeAt(c, row) == t; c++ {
		horz++
	}
	if horz >= 3 {
		return true
	}

	vert := 1
	for r := row - 1; r >= 0 && b.typeAt(column, r) == t; r-- {
		vert++
	}
	for r := row + 1; r < b.mask.rows && b.typeAt(column, r) == t; r++ {
		vert++
	}
	return vert >= 3
}
