package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTileMaskInvertsRows(t *testing.T) {
	mask, err := NewTileMask([][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
		{1, 1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, mask.Columns())
	assert.Equal(t, 4, mask.Rows())
	assert.Equal(t, 5, mask.Count())

	// First matrix row is the top, i.e. row 3.
	assert.True(t, mask.TileAt(0, 3))
	assert.False(t, mask.TileAt(1, 3))
	assert.True(t, mask.TileAt(1, 2))
	assert.False(t, mask.TileAt(0, 1))
	for column := 0; column < 3; column++ {
		assert.True(t, mask.TileAt(column, 0), "bottom row column %d", column)
	}
}

func TestNewTileMaskErrors(t *testing.T) {
	tests := []struct {
		name   string
		matrix [][]int
	}{
		{name: "nil", matrix: nil},
		{name: "empty row", matrix: [][]int{{}}},
		{name: "ragged", matrix: [][]int{{1, 1, 1}, {1, 1}}},
		{name: "unknown value", matrix: [][]int{{1, 2, 1}}},
		{name: "negative value", matrix: [][]int{{0, -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTileMask(tt.matrix)
			require.ErrorIs(t, err, ErrMalformedMask)
		})
	}
}

func TestTileAtOutOfRangePanics(t *testing.T) {
	mask := fullMask(9, 9)

	assert.Panics(t, func() { mask.TileAt(-1, 0) })
	assert.Panics(t, func() { mask.TileAt(0, 9) })
	assert.Panics(t, func() { mask.TileAt(9, 0) })
	assert.NotPanics(t, func() { mask.TileAt(8, 8) })
	assert.False(t, mask.InBounds(9, 0))
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PieceTypes = 7
	_, err := New(fullMask(3, 3), WithConfig(cfg))
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.MaxShuffleAttempts = 0
	_, err = New(fullMask(3, 3), WithConfig(cfg))
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.PieceTypes = 0
	_, err = New(fullMask(3, 3), WithConfig(cfg))
	require.Error(t, err)

	_, err = New(TileMask{})
	require.ErrorIs(t, err, ErrMalformedMask)
}

// Fewer than three types is a valid engine config; Shuffle reports the boards
// it cannot build.
func TestNewAcceptsFewPieceTypes(t *testing.T) {
	for _, types := range []int{1, 2} {
		cfg := DefaultConfig()
		cfg.PieceTypes = types
		b, err := New(fullMask(3, 3), WithConfig(cfg))
		require.NoError(t, err)
		assert.Equal(t, types, b.Config().PieceTypes)
	}
}

func TestGenerator(t *testing.T) {
	gen := NewGenerator(NewSource(42), 4)
	counts := make(map[PieceType]int)
	for range 4000 {
		pt := gen.Next()
		require.True(t, pt.Valid())
		require.LessOrEqual(t, int(pt), 4)
		counts[pt]++
	}
	assert.Len(t, counts, 4)

	for range 1000 {
		except := gen.Next()
		assert.NotEqual(t, except, gen.NextExcept(except))
	}
	assert.True(t, gen.NextExcept(Unknown).Valid())
}

func TestSourceIsDeterministic(t *testing.T) {
	a, b := NewSource(99), NewSource(99)
	for range 100 {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestParsePieceType(t *testing.T) {
	for pt := Croissant; pt <= SugarCookie; pt++ {
		got, ok := ParsePieceType(pt.Glyph())
		require.True(t, ok)
		assert.Equal(t, pt, got)
	}
	_, ok := ParsePieceType('?')
	assert.False(t, ok)
	assert.Equal(t, "sugar_cookie", SugarCookie.String())
}
