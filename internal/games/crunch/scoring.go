package crunch

import (
	"github.com/vovakirdan/cookie-crunch/internal/config"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/board"
)

// ChainScore is the score awarded for one removed chain.
type ChainScore struct {
	Chain board.Chain
	Combo int
	Score int
}

// ScoreCascade scores every chain of a cascade in removal order. A chain of
// three is worth chain_base, every extra cookie adds another chain_base, and
// the result is multiplied by the combo, which starts at 1 for each move and
// grows by combo_growth after every chain.
func ScoreCascade(c board.Cascade, rules config.CrunchScoring) (int, []ChainScore) {
	var (
		total  int
		scores []ChainScore
	)
	combo := 1
	for _, step := range c.Steps {
		for _, chain := range step.Chains {
			s := rules.ChainBase * (chain.Len() - 2) * combo
			scores = append(scores, ChainScore{Chain: chain, Combo: combo, Score: s})
			total += s
			combo += rules.ComboGrowth
		}
	}
	return total, scores
}
