package search

import (
	"unicode/utf8"

	"github.com/basirah-app/backend/internal/models"
)

// Select picks the winning candidate from the merged, scored list. The list
// must be in provider-order-then-item-order: ties are broken by keeping the
// earlier candidate, which makes selection deterministic for identical
// inputs.
//
// Candidates whose content is shorter than minContent are non-viable, but a
// non-viable candidate with any content at all (a title-only record, say)
// still wins when it is the only option; returning nil is reserved for the
// case where nothing has content, which the assembler turns into the
// disclaimer answer.
func Select(candidates []models.ScoredCandidate, minContent int) *models.ScoredCandidate {
	best := maxBy(candidates, func(c models.ScoredCandidate) bool {
		return utf8.RuneCountInString(c.Content) >= minContent
	})
	if best == nil {
		best = maxBy(candidates, func(c models.ScoredCandidate) bool {
			return c.Content != ""
		})
	}
	return best
}

func maxBy(candidates []models.ScoredCandidate, eligible func(models.ScoredCandidate) bool) *models.ScoredCandidate {
	var best *models.ScoredCandidate
	for i := range candidates {
		if !eligible(candidates[i]) {
			continue
		}
		if best == nil || candidates[i].Score > best.Score {
			best = &candidates[i]
		}
	}
	return best
}
