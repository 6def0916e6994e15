package search

import (
	"sort"
	"unicode/utf8"

	"github.com/basirah-app/backend/internal/models"
	"github.com/basirah-app/backend/internal/processing"
)

// DisclaimerAnswer is the single fixed reply used whenever no provider
// yields usable text. Wording changes happen here and nowhere else.
const DisclaimerAnswer = "لم يرد نص صريح أو فتوى معتمدة في هذه المسألة حسب المصادر المتاحة. يُنصح بسؤال عالم شرعي مختص."

// ErrorAnswer is embedded in error responses so clients always have
// renderable text.
const ErrorAnswer = "حدث خطأ أثناء البحث. يرجى المحاولة مرة أخرى."

const maxSourceLabels = 3

// Assemble formats the winning candidate into the response payload. A nil
// winner produces the disclaimer answer with no other fields. Inputs are
// never mutated.
func Assemble(best *models.ScoredCandidate, ranked []models.ScoredCandidate, maxLen, minContent int) models.Answer {
	if best == nil {
		return models.Answer{Answer: DisclaimerAnswer}
	}

	out := models.Answer{
		Answer:   processing.Truncate(best.Content, maxLen),
		Title:    best.Title,
		AudioURL: best.MediaURL,
		Sources:  sourceLabels(ranked, minContent),
	}

	source := best.Source
	if best.Author != "" {
		source += " | " + best.Author
	}
	out.Source = source

	// secondary fields only when they add something beyond the answer text
	if best.Evidence != "" && best.Evidence != best.Content {
		out.Evidence = processing.Truncate(best.Evidence, maxLen)
	}
	if best.Note != "" && best.Note != best.Content {
		out.Note = processing.Truncate(best.Note, maxLen)
	}

	return out
}

// sourceLabels lists the distinct source labels of viable candidates in
// descending score order, so callers can show where the answer pool came
// from.
func sourceLabels(ranked []models.ScoredCandidate, minContent int) []string {
	viable := make([]models.ScoredCandidate, 0, len(ranked))
	for _, c := range ranked {
		if utf8.RuneCountInString(c.Content) >= minContent {
			viable = append(viable, c)
		}
	}
	sort.SliceStable(viable, func(i, j int) bool { return viable[i].Score > viable[j].Score })

	seen := make(map[string]struct{}, maxSourceLabels)
	var labels []string
	for _, c := range viable {
		if c.Source == "" {
			continue
		}
		if _, dup := seen[c.Source]; dup {
			continue
		}
		seen[c.Source] = struct{}{}
		labels = append(labels, c.Source)
		if len(labels) == maxSourceLabels {
			break
		}
	}
	return labels
}
