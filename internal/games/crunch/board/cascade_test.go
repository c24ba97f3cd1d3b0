package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapCompletingRowToTheLeft(t *testing.T) {
	// Row 2 reads c c u c o: swapping (2,2) and (3,2) moves the third
	// croissant next to the two on its left.
	b := mustLayout(t,
		"dsdsd",
		"sdsds",
		"ccuco",
		"dsdsd",
		"sdsds",
	)
	requireNoRuns(t, b)

	at22, _ := b.CookieAt(2, 2)
	at32, _ := b.CookieAt(3, 2)
	require.Equal(t, Cupcake, at22.Type)
	require.Equal(t, Croissant, at32.Type)

	s := NewSwap(at22.ID, at32.ID)
	require.True(t, b.IsLegalSwap(s))

	b.PerformSwap(s)
	chains := b.RemoveMatches()

	require.Len(t, chains, 1)
	chain := chains[0]
	assert.Equal(t, Horizontal, chain.Kind)
	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, Croissant, chain.Type())
	for i, ck := range chain.Cookies {
		assert.Equal(t, 2, ck.Row)
		assert.Equal(t, i, ck.Column)
		_, ok := b.CookieAt(i, 2)
		assert.False(t, ok, "cell (%d,2) should be cleared", i)
	}
	assert.True(t, chain.Contains(at32.ID))
	require.NoError(t, b.Validate())
}

func TestDetectRunsAreMaximal(t *testing.T) {
	b := mustLayout(t,
		"ddddd",
		"cuoms",
		"ccccu",
	)

	horizontal := b.DetectHorizontalRuns()
	require.Len(t, horizontal, 2)
	assert.Equal(t, 4, horizontal[0].Len(), "bottom row run")
	assert.Equal(t, 0, horizontal[0].Cookies[0].Row)
	assert.Equal(t, 5, horizontal[1].Len(), "top row run")
	assert.Empty(t, b.DetectVerticalRuns())
}

func TestRunsBreakOnMaskGaps(t *testing.T) {
	b := mustLayout(t,
		"c",
		"c",
		"-",
		"c",
		"c",
	)
	assert.Empty(t, b.DetectVerticalRuns())

	b = mustLayout(t, "cc-cc")
	assert.Empty(t, b.DetectHorizontalRuns())
}

func TestRemoveMatchesLShape(t *testing.T) {
	// The bottom-left croissant closes both the row and the column.
	b := mustLayout(t,
		"cum",
		"cmu",
		"ccc",
	)

	chains := b.RemoveMatches()
	require.Len(t, chains, 2)

	kinds := map[ChainKind]Chain{}
	for _, c := range chains {
		kinds[c.Kind] = c
		assert.GreaterOrEqual(t, c.Len(), 3)
	}
	require.Contains(t, kinds, Horizontal)
	require.Contains(t, kinds, Vertical)

	corner := kinds[Horizontal].Cookies[0]
	assert.True(t, kinds[Vertical].Contains(corner.ID), "chains share the corner cookie")

	// 3 + 3 - 1 shared cookie removed.
	assert.Equal(t, 9-5, b.Count())
	require.NoError(t, b.Validate())
}

func TestRemoveMatchesOnlyRemovesChainMembers(t *testing.T) {
	b := mustShuffled(t, mustMask(t, "gaps"), 404)
	swaps := b.LegalSwaps()
	require.NotEmpty(t, swaps)

	before := b.Cookies()
	b.PerformSwap(swaps[0])
	chains := b.RemoveMatches()
	require.NotEmpty(t, chains)

	members := map[CookieID]bool{}
	for _, c := range chains {
		require.GreaterOrEqual(t, c.Len(), 3)
		for _, id := range c.IDs() {
			members[id] = true
		}
	}
	for _, ck := range before {
		_, still := b.Cookie(ck.ID)
		assert.Equal(t, !members[ck.ID], still, "cookie %s", ck)
	}
}

func TestFillHolesSingleSurvivor(t *testing.T) {
	b := mustLayout(t,
		"c",
		".",
		".",
	)
	survivor, _ := b.CookieAt(0, 2)

	falls := b.FillHoles()
	require.Len(t, falls, 1)
	require.Len(t, falls[0], 1)
	assert.Equal(t, survivor.ID, falls[0][0].ID)
	assert.Equal(t, 0, falls[0][0].Row)

	moved, ok := b.CookieAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, survivor.ID, moved.ID)
	assert.Equal(t, 0, moved.Row)

	tops := b.TopUpCookies()
	require.Len(t, tops, 1)
	require.Len(t, tops[0], 2)
	assert.Equal(t, 2, tops[0][0].Row, "top-up scans from the top")
	assert.Equal(t, 1, tops[0][1].Row)
	assert.NotEqual(t, tops[0][0].Type, tops[0][1].Type)
	checkInvariants(t, b)
}

func TestFillHolesAcrossMaskGap(t *testing.T) {
	b := mustLayout(t,
		"c",
		"u",
		"-",
		".",
		".",
	)
	top, _ := b.CookieAt(0, 4)
	below, _ := b.CookieAt(0, 3)

	falls := b.FillHoles()
	require.Len(t, falls, 1)
	require.Len(t, falls[0], 2)

	first, _ := b.CookieAt(0, 0)
	second, _ := b.CookieAt(0, 1)
	assert.Equal(t, below.ID, first.ID, "relative order is kept")
	assert.Equal(t, top.ID, second.ID)
	assert.False(t, b.TileAt(0, 2))

	tops := b.TopUpCookies()
	require.Len(t, tops, 1)
	require.Len(t, tops[0], 2)
	for _, ck := range tops[0] {
		assert.True(t, b.TileAt(ck.Column, ck.Row))
		assert.GreaterOrEqual(t, ck.Row, 3)
	}
	checkInvariants(t, b)
}

func TestFillHolesNoMovesReportsNothing(t *testing.T) {
	b := mustShuffled(t, mustMask(t, "diamond"), 8)
	assert.Empty(t, b.FillHoles())
	assert.Empty(t, b.TopUpCookies())
}

func TestTopUpNeverRepeatsPreviousTypeInColumn(t *testing.T) {
	mask := fullMask(4, 20)
	cfg := DefaultConfig()
	cfg.PieceTypes = 3
	b, err := New(mask, WithConfig(cfg), WithSeed(9))
	require.NoError(t, err)

	for round := 0; round < 20; round++ {
		b.clear()
		tops := b.TopUpCookies()
		require.Len(t, tops, 4)
		for _, column := range tops {
			require.Len(t, column, 20)
			for i := 1; i < len(column); i++ {
				require.NotEqual(t, column[i-1].Type, column[i].Type)
			}
		}
	}
}

func TestResolveSettlesBoard(t *testing.T) {
	for name := range testMasks {
		t.Run(name, func(t *testing.T) {
			b := mustShuffled(t, mustMask(t, name), 31337)

			for move := 0; move < 40; move++ {
				swaps := b.LegalSwaps()
				if len(swaps) == 0 {
					_, err := b.Shuffle()
					require.NoError(t, err)
					continue
				}
				b.PerformSwap(swaps[move%len(swaps)])
				require.NoError(t, b.Validate())

				cascade, err := b.Resolve()
				require.NoError(t, err)
				require.NotEmpty(t, cascade.Steps, "a legal swap always matches")
				for _, step := range cascade.Steps {
					for _, chain := range step.Chains {
						require.GreaterOrEqual(t, chain.Len(), 3)
					}
					for _, column := range step.Falls {
						for i := 1; i < len(column); i++ {
							require.Equal(t, column[0].Column, column[i].Column)
							require.Less(t, column[i-1].Row, column[i].Row)
						}
					}
				}

				checkInvariants(t, b)
				requireNoRuns(t, b)
				assert.Equal(t, len(b.LegalSwaps()), cascade.LegalSwaps)
				assert.Equal(t, cascade.LegalSwaps == 0, cascade.Deadlocked)
			}
		})
	}
}

// twoStepLayout clears a vertical run in column 0, after which the danish
// above it falls next to two more danishes.
var twoStepLayout = []string{
	"ucm",
	"dmu",
	"cum",
	"cmu",
	"cdd",
}

func TestResolveFollowsFallsIntoNewRuns(t *testing.T) {
	b := mustLayout(t, twoStepLayout...)

	cascade, err := b.Resolve()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cascade.Steps), 2)
	assert.Equal(t, Vertical, cascade.Steps[0].Chains[0].Kind)
	checkInvariants(t, b)
	requireNoRuns(t, b)
}

func TestResolveStopsAtStepCeiling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCascadeSteps = 1
	b, err := NewFromLayout(twoStepLayout, WithConfig(cfg), WithSeed(7))
	require.NoError(t, err)

	cascade, err := b.Resolve()
	require.ErrorIs(t, err, ErrCascadeExhausted)
	assert.Len(t, cascade.Steps, 1)
	assert.True(t, b.HasMatches(), "the unsettled run stays on the board")
	require.NoError(t, b.Validate())
	assert.Equal(t, b.Mask().Count(), b.Count())
}

func TestResolveWithoutMatchesIsNoop(t *testing.T) {
	b := mustShuffled(t, fullMask(5, 5), 2)
	layout := b.String()

	cascade, err := b.Resolve()
	require.NoError(t, err)
	assert.Empty(t, cascade.Steps)
	assert.Equal(t, layout, b.String())
	assert.Positive(t, cascade.LegalSwaps)
}

func TestCascadeStepRemovedCountsSharedOnce(t *testing.T) {
	b := mustLayout(t,
		"cum",
		"cmu",
		"ccc",
	)
	step := CascadeStep{Chains: b.RemoveMatches()}
	assert.Equal(t, 5, step.Removed())
}
