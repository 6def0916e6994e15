package models

// Content-tier weights assigned by the field extractors. Long-form article
// text is the strongest relevance signal, a bare title the weakest.
const (
	TierArticle     = 3.0
	TierDescription = 2.0
	TierNotes       = 1.0
	TierTitle       = 0.5
)

// Candidate is the normalized view of one provider record. Content is
// HTML-free and whitespace-collapsed; it may be empty when the record held
// no usable text field at all.
type Candidate struct {
	Content  string
	Title    string
	Author   string
	Source   string
	Category string
	MediaURL string
	Evidence string
	Note     string
	// Tier records which content field the extractor resolved.
	Tier float64
}

// ScoredCandidate pairs a candidate with its relevance score.
type ScoredCandidate struct {
	Candidate
	Score float64
}

// Answer is the externally visible result of a search. Answer is always
// non-empty; every other field is optional.
type Answer struct {
	Answer            string   `json:"answer"`
	Sources           []string `json:"sources,omitempty"`
	Evidence          string   `json:"evidence,omitempty"`
	Source            string   `json:"source,omitempty"`
	Note              string   `json:"note,omitempty"`
	SuggestedQuestion string   `json:"suggestedQuestion,omitempty"`
	Title             string   `json:"title,omitempty"`
	AudioURL          string   `json:"audioUrl,omitempty"`
}
