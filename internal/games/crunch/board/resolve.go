package board

import (
	"errors"
	"fmt"
)

// ErrCascadeExhausted is returned by Resolve when the board still holds runs
// after Config.MaxCascadeSteps rounds.
var ErrCascadeExhausted = errors.New("board: cascade did not settle")

// CascadeStep is one remove/fall/refill round of a cascade.
type CascadeStep struct {
	Chains []Chain    // Runs removed in this round
	Falls  [][]Cookie // Per-column cookies moved by gravity
	TopUps [][]Cookie // Per-column cookies created at the top
}

// Removed returns how many distinct cookies the step removed.
func (s CascadeStep) Removed() int {
	seen := make(map[CookieID]struct{})
	for _, chain := range s.Chains {
		for _, ck := range chain.Cookies {
			seen[ck.ID] = struct{}{}
		}
	}
	return len(seen)
}

// Cascade is the full result of resolving the board after a swap.
type Cascade struct {
	Steps      []CascadeStep
	LegalSwaps int  // Size of the legal swap set once the board settled
	Deadlocked bool // The settled board has no legal swap
}

// Resolve runs the cascade until the board is stable: remove matches, let
// cookies fall, top up the columns and look for new matches again. Once no
// match is left the legal swap set is recomputed.
//
// At most Config.MaxCascadeSteps rounds are played. If runs are still left
// after that, the steps played so far are returned with ErrCascadeExhausted
// and the board keeps those runs.
func (b *Board) Resolve() (Cascade, error) {
	var cascade Cascade
	for {
		if len(cascade.Steps) >= b.cfg.MaxCascadeSteps {
			if b.HasMatches() {
				return cascade, fmt.Errorf("%w after %d steps", ErrCascadeExhausted, len(cascade.Steps))
			}
			break
		}
		chains := b.RemoveMatches()
		if len(chains) == 0 {
			break
		}

		step := CascadeStep{Chains: chains}
		step.Falls = b.FillHoles()
		step.TopUps = b.TopUpCookies()
		cascade.Steps = append(cascade.Steps, step)

		b.logger.Debug("cascade step",
			"step", len(cascade.Steps),
			"chains", len(step.Chains),
			"removed", step.Removed(),
		)
	}

	cascade.LegalSwaps = b.DetectLegalSwaps()
	cascade.Deadlocked = cascade.LegalSwaps == 0
	return cascade, nil
}
