package search

import (
	"strings"
	"unicode/utf8"

	"github.com/basirah-app/backend/internal/models"
)

// Weights configures relevance scoring.
type Weights struct {
	// KeywordBonus is added for each question keyword found anywhere in
	// the candidate's title, content, or notes.
	KeywordBonus float64
	// TitleBonus is added on top when the keyword hits the title; a title
	// match is a stronger relevance signal than a body match.
	TitleBonus float64
}

// Score rates a candidate against the question keywords. The base score is
// proportional to content length weighted by the content tier, so longer
// structured text naturally outranks stubs. Scores are never negative.
func Score(c models.Candidate, keywords []string, w Weights) float64 {
	score := float64(utf8.RuneCountInString(c.Content)) * c.Tier / 10

	haystack := strings.ToLower(c.Title + " " + c.Content + " " + c.Note)
	title := strings.ToLower(c.Title)
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			score += w.KeywordBonus
		}
		if strings.Contains(title, kw) {
			score += w.TitleBonus
		}
	}
	return score
}
