package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleFullBoardSeeded(t *testing.T) {
	b := mustShuffled(t, fullMask(9, 9), 20240601)

	checkInvariants(t, b)
	requireNoRuns(t, b)
	assert.Equal(t, 81, b.Count())
	assert.NotEmpty(t, b.LegalSwaps())
	assert.Equal(t, StateReady, b.State())
}

func TestShuffleAcrossMasksAndSeeds(t *testing.T) {
	for name := range testMasks {
		t.Run(name, func(t *testing.T) {
			mask := mustMask(t, name)
			for seed := int64(1); seed <= 50; seed++ {
				b := mustShuffled(t, mask, seed)
				checkInvariants(t, b)
				requireNoRuns(t, b)
				require.NotEmpty(t, b.LegalSwaps(), "seed %d", seed)
			}
		})
	}
}

func TestShuffleReturnsEveryCookie(t *testing.T) {
	b, err := New(mustMask(t, "gaps"), WithSeed(5))
	require.NoError(t, err)

	cookies, err := b.Shuffle()
	require.NoError(t, err)
	assert.Len(t, cookies, b.Mask().Count())

	ids := make(map[CookieID]bool)
	for _, ck := range cookies {
		assert.False(t, ids[ck.ID], "duplicate id %d", ck.ID)
		ids[ck.ID] = true
		assert.True(t, b.TileAt(ck.Column, ck.Row))
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := mustShuffled(t, mustMask(t, "diamond"), 77)
	b := mustShuffled(t, mustMask(t, "diamond"), 77)
	assert.Equal(t, a.String(), b.String())
}

func TestShuffleReplacesPreviousLayout(t *testing.T) {
	b := mustShuffled(t, fullMask(6, 6), 3)
	first := b.Cookies()

	_, err := b.Shuffle()
	require.NoError(t, err)
	checkInvariants(t, b)
	for _, ck := range first {
		_, ok := b.Cookie(ck.ID)
		assert.False(t, ok, "cookie %s survived a reshuffle", ck)
	}
}

func TestShuffleDeadlockHitsCeiling(t *testing.T) {
	// Two cells can never form a run, so every layout is dead.
	cfg := DefaultConfig()
	cfg.MaxShuffleAttempts = 5
	b, err := New(fullMask(2, 1), WithConfig(cfg), WithSeed(1))
	require.NoError(t, err)

	_, err = b.Shuffle()
	require.ErrorIs(t, err, ErrDeadlock)
	assert.Contains(t, err.Error(), "5 attempts")
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, StateEmpty, b.State())
}

func TestShuffleTooFewTypesIsReported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PieceTypes = 1
	cfg.MaxDrawsPerCell = 20
	b, err := New(fullMask(3, 3), WithConfig(cfg), WithSeed(1))
	require.NoError(t, err)

	_, err = b.Shuffle()
	require.ErrorIs(t, err, ErrGenerationExhausted)
	assert.Equal(t, 0, b.Count())
}

func TestShuffleStateString(t *testing.T) {
	states := map[ShuffleState]string{
		StateEmpty:      "empty",
		StateFilled:     "filled",
		StateValidated:  "validated",
		StateDeadlock:   "deadlock",
		StateReady:      "ready",
		ShuffleState(9): "unknown",
	}
	for s, want := range states {
		assert.Equal(t, want, s.String())
	}
}

func TestLegalSwapsMatchBruteForce(t *testing.T) {
	for name := range testMasks {
		t.Run(name, func(t *testing.T) {
			b := mustShuffled(t, mustMask(t, name), 11)

			for _, ck := range b.Cookies() {
				for _, d := range [][2]int{{1, 0}, {0, 1}} {
					c, r := ck.Column+d[0], ck.Row+d[1]
					if !b.Mask().InBounds(c, r) {
						continue
					}
					other, ok := b.CookieAt(c, r)
					if !ok {
						continue
					}

					s := NewSwap(ck.ID, other.ID)
					b.PerformSwap(s)
					makesRun := b.HasMatches()
					b.PerformSwap(s)

					assert.Equal(t, makesRun, b.IsLegalSwap(s), "swap %s vs %s", ck, other)
				}
			}
		})
	}
}

func TestIsLegalSwapUsesCache(t *testing.T) {
	b := mustLayout(t, "cudc")
	assert.Zero(t, b.DetectLegalSwaps())

	b.Remove(1, 0)
	b.Place(1, 0, Croissant)
	d, _ := b.CookieAt(2, 0)
	c, _ := b.CookieAt(3, 0)
	s := NewSwap(d.ID, c.ID)

	// Structural changes do not refresh the cache until asked.
	assert.False(t, b.IsLegalSwap(s))
	assert.Equal(t, 1, b.DetectLegalSwaps())
	assert.True(t, b.IsLegalSwap(s))
}
