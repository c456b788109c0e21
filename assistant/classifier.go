package assistant

import "github.com/globalantic/globot/domain"

// Classification is the outcome of scoring tokens against the intent
// taxonomy. Confidence is advisory only; a low-confidence winner is still
// the winner.
type Classification struct {
	Intent     domain.Intent
	Confidence float64
}

// Classify scores tokens against each intent rule and returns the best
// match. A token scores when it exactly equals a keyword; duplicate tokens
// count multiple times. Ties keep the earlier rule in taxonomy order. A
// zero max score falls back to the general intent. Never fails.
func Classify(tokens []string) Classification {
	best := domain.IntentGeneral
	maxScore := 0

	for _, rule := range domain.Taxonomy() {
		score := 0
		for _, tok := range tokens {
			if rule.Matches(tok) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = rule.Name
		}
	}

	confidence := 0.0
	if len(tokens) > 0 {
		confidence = float64(maxScore) / float64(len(tokens))
	}

	return Classification{Intent: best, Confidence: confidence}
}
