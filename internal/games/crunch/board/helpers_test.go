package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testMasks are level shapes used across tests, top row first.
var testMasks = map[string][][]int{
	"full9x9": {
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
	},
	"diamond": {
		{0, 0, 0, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 0, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 1, 0, 0, 0},
	},
	"gaps": {
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 0, 0, 1, 0, 0, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 0, 1, 0, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
	},
}

func mustMask(t *testing.T, name string) TileMask {
	t.Helper()
	mask, err := NewTileMask(testMasks[name])
	require.NoError(t, err)
	return mask
}

func mustShuffled(t *testing.T, mask TileMask, seed int64, opts ...Option) *Board {
	t.Helper()
	b, err := New(mask, append([]Option{WithSeed(seed)}, opts...)...)
	require.NoError(t, err)
	_, err = b.Shuffle()
	require.NoError(t, err)
	return b
}

func mustLayout(t *testing.T, layout ...string) *Board {
	t.Helper()
	b, err := NewFromLayout(layout, WithSeed(7))
	require.NoError(t, err)
	return b
}

// checkInvariants asserts the store invariants plus a completely filled board.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	require.NoError(t, b.Validate())
	require.Equal(t, b.Mask().Count(), b.Count(), "every playable cell should hold a cookie")
}

// requireNoRuns asserts that no row or column holds a run of three.
func requireNoRuns(t *testing.T, b *Board) {
	t.Helper()
	require.Empty(t, b.DetectHorizontalRuns(), "horizontal runs on\n%s", b)
	require.Empty(t, b.DetectVerticalRuns(), "vertical runs on\n%s", b)
}

// fullMask returns a columns x rows mask with every cell playable.
func fullMask(columns, rows int) TileMask {
	m := TileMask{columns: columns, rows: rows, tiles: make([]bool, columns*rows)}
	for i := range m.tiles {
		m.tiles[i] = true
	}
	return m
}
