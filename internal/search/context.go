package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/basirah-app/backend/internal/models"
	"github.com/basirah-app/backend/internal/processing"
)

// BuildContext renders the strongest viable candidates as the source block
// fed to the generative gateway prompt. Returns "" when nothing viable
// exists; the gateway prompt states that explicitly.
func BuildContext(scored []models.ScoredCandidate, minContent, limit, snippetLen int) string {
	viable := make([]models.ScoredCandidate, 0, len(scored))
	for _, c := range scored {
		if utf8.RuneCountInString(c.Content) >= minContent {
			viable = append(viable, c)
		}
	}
	sort.SliceStable(viable, func(i, j int) bool { return viable[i].Score > viable[j].Score })
	if limit > 0 && len(viable) > limit {
		viable = viable[:limit]
	}

	var b strings.Builder
	for _, c := range viable {
		b.WriteString("\n---\n")
		b.WriteString("المصدر: ")
		b.WriteString(c.Source)
		if c.Author != "" {
			b.WriteString(" | ")
			b.WriteString(c.Author)
		}
		b.WriteString("\nالعنوان: ")
		b.WriteString(c.Title)
		b.WriteString("\nالمحتوى: ")
		b.WriteString(processing.Truncate(c.Content, snippetLen))
		b.WriteString("\n")
	}
	return b.String()
}
