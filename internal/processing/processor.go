package processing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	tags        = regexp.MustCompile(`<[^>]*>`)
	whitespace  = regexp.MustCompile(`\s+`)
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
)

// entities is the fixed set the upstream content providers actually emit.
var entities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// TruncationMarker terminates text cut by Truncate.
const TruncationMarker = "..."

// CleanText strips tag-delimited markup and HTML entities and squeezes
// whitespace. Total over any input; empty input yields "".
func CleanText(input string) string {
	if input == "" {
		return ""
	}
	out := tags.ReplaceAllString(input, "")
	out = entities.Replace(out)
	// entity decoding can reveal a second layer of markup
	out = tags.ReplaceAllString(out, "")
	out = whitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// QuestionKeywords tokenizes a question into the distinct lowercase terms
// used for relevance scoring. Tokens shorter than minLen runes are dropped;
// that filters out particles and most question words.
func QuestionKeywords(question string, minLen int) []string {
	clean := strings.ToLower(punctuation.ReplaceAllString(question, " "))
	seen := make(map[string]struct{})
	var out []string
	for _, token := range strings.Fields(clean) {
		if utf8.RuneCountInString(token) < minLen {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// Truncate caps s at max runes, replacing the tail with the truncation
// marker when text was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := max - utf8.RuneCountInString(TruncationMarker)
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + TruncationMarker
}

// TitleFromText derives a title from the first sentence of text, capped at
// maxWords. Returns empty string for empty text.
func TitleFromText(text string, maxWords int) string {
	if text == "" {
		return ""
	}

	var firstSentence string
	if end := strings.IndexAny(text, ".!?؟"); end > 0 {
		firstSentence = strings.TrimSpace(text[:end])
	} else {
		firstSentence = text
	}

	words := strings.Fields(firstSentence)
	if len(words) == 0 {
		return ""
	}

	if maxWords > 0 && len(words) > maxWords {
		return strings.Join(words[:maxWords], " ") + TruncationMarker
	}

	return strings.Join(words, " ")
}
