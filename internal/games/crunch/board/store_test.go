package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapIsUnordered(t *testing.T) {
	assert.Equal(t, NewSwap(3, 9), NewSwap(9, 3))
	assert.Equal(t, NewSwap(3, 9).Key(), NewSwap(9, 3).Key())
	assert.NotEqual(t, NewSwap(3, 9), NewSwap(3, 10))

	set := map[Swap]bool{NewSwap(1, 2): true}
	assert.True(t, set[NewSwap(2, 1)])
}

func TestPlaceAndRemove(t *testing.T) {
	b := mustLayout(t,
		"..",
		"-.",
	)

	ck := b.Place(1, 0, Donut)
	got, ok := b.CookieAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, ck, got)
	assert.Equal(t, 1, got.Column)
	assert.Equal(t, 0, got.Row)

	byID, ok := b.Cookie(ck.ID)
	require.True(t, ok)
	assert.Equal(t, ck, byID)

	assert.Panics(t, func() { b.Place(0, 0, Donut) }, "no tile")
	assert.Panics(t, func() { b.Place(1, 0, Donut) }, "occupied")
	assert.Panics(t, func() { b.Place(0, 1, Unknown) }, "sentinel type")
	assert.Panics(t, func() { b.CookieAt(5, 5) }, "out of range")

	removed, ok := b.Remove(1, 0)
	require.True(t, ok)
	assert.Equal(t, ck.ID, removed.ID)
	_, ok = b.CookieAt(1, 0)
	assert.False(t, ok)
	_, ok = b.Cookie(ck.ID)
	assert.False(t, ok)

	_, ok = b.Remove(1, 0)
	assert.False(t, ok)
	require.NoError(t, b.Validate())
}

func TestPerformSwapIsInvolutive(t *testing.T) {
	b := mustShuffled(t, mustMask(t, "diamond"), 1234)
	before := b.Cookies()
	layout := b.String()

	for _, s := range b.LegalSwaps() {
		b.PerformSwap(s)
		require.NoError(t, b.Validate())
		b.PerformSwap(s)
		require.Equal(t, layout, b.String())
		require.Equal(t, before, b.Cookies())
	}
}

func TestPerformSwapUpdatesCoordinates(t *testing.T) {
	b := mustLayout(t,
		"cu",
	)
	c, _ := b.CookieAt(0, 0)
	u, _ := b.CookieAt(1, 0)

	b.PerformSwap(NewSwap(c.ID, u.ID))

	movedC, _ := b.Cookie(c.ID)
	movedU, _ := b.Cookie(u.ID)
	assert.Equal(t, 1, movedC.Column)
	assert.Equal(t, 0, movedU.Column)
	atZero, _ := b.CookieAt(0, 0)
	assert.Equal(t, u.ID, atZero.ID)
	require.NoError(t, b.Validate())
}

func TestPerformSwapContractViolations(t *testing.T) {
	b := mustLayout(t,
		"cud",
	)
	c, _ := b.CookieAt(0, 0)
	d, _ := b.CookieAt(2, 0)

	assert.Panics(t, func() { b.PerformSwap(NewSwap(c.ID, d.ID)) }, "non-adjacent")
	assert.Panics(t, func() { b.PerformSwap(NewSwap(c.ID, 999)) }, "missing cookie")
}

func TestNewFromLayoutRoundTrip(t *testing.T) {
	layout := []string{
		"-cud-",
		"ou.sm",
	}
	b, err := NewFromLayout(layout)
	require.NoError(t, err)

	assert.Equal(t, "-cud-\nou.sm", b.String())
	assert.Equal(t, 7, b.Count())
	assert.False(t, b.TileAt(0, 1))
	assert.True(t, b.TileAt(2, 0))
	_, ok := b.CookieAt(2, 0)
	assert.False(t, ok)

	_, err = NewFromLayout([]string{"cx"})
	require.ErrorIs(t, err, ErrMalformedMask)
}
