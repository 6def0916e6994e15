package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/basirah-app/backend/internal/models"
	"github.com/basirah-app/backend/internal/processing"
)

const quranPediaLabel = "QuranPedia"

// SourceBrand maps a substring of a fatwa's source URL to the human-readable
// name shown to users. Kept as one table so new upstream sites are a
// one-line change.
type SourceBrand struct {
	Domain string
	Label  string
}

// DefaultSourceBrands covers the sites QuranPedia aggregates today.
var DefaultSourceBrands = []SourceBrand{
	{Domain: "islamweb", Label: "إسلام ويب"},
	{Domain: "islamqa", Label: "إسلام سؤال وجواب"},
}

// QuranPedia queries the QuranPedia fatwa search API.
type QuranPedia struct {
	baseURL string
	bonus   float64
	brands  []SourceBrand
	http    *http.Client
	log     *slog.Logger
}

// NewQuranPedia builds the fatwa provider. bonus is its declared priority
// over generic content platforms.
func NewQuranPedia(baseURL string, bonus float64, timeout time.Duration, log *slog.Logger) *QuranPedia {
	return &QuranPedia{
		baseURL: strings.TrimRight(baseURL, "/"),
		bonus:   bonus,
		brands:  DefaultSourceBrands,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (p *QuranPedia) Name() string   { return "quranpedia" }
func (p *QuranPedia) Bonus() float64 { return p.bonus }

// fatwaRecord mirrors one item of the QuranPedia search payload. Most text
// fields come in an English-keyed and an ar_-prefixed variant; either may be
// empty.
type fatwaRecord struct {
	Title       string `json:"title"`
	ArTitle     string `json:"ar_title"`
	Content     string `json:"content"`
	ArContent   string `json:"ar_content"`
	Answer      string `json:"answer"`
	ArAnswer    string `json:"ar_answer"`
	Mufti       string `json:"mufti"`
	ArMufti     string `json:"ar_mufti"`
	SourceURL   string `json:"source_url"`
	ArSourceURL string `json:"ar_source_url"`
}

// Search runs the fatwa query and normalizes every returned record.
func (p *QuranPedia) Search(ctx context.Context, question string) ([]models.Candidate, error) {
	searchURL := fmt.Sprintf("%s/v1/search/%s/fatwas", p.baseURL, url.PathEscape(question))
	p.log.Debug("searching quranpedia", slog.String("url", searchURL))

	var payload struct {
		Data []fatwaRecord `json:"data"`
	}
	if err := get(ctx, p.http, searchURL, &payload); err != nil {
		return nil, fmt.Errorf("quranpedia search: %w", err)
	}

	out := make([]models.Candidate, 0, len(payload.Data))
	for _, rec := range payload.Data {
		out = append(out, p.extract(rec))
	}
	return out, nil
}

func (p *QuranPedia) extract(rec fatwaRecord) models.Candidate {
	content := processing.CleanText(firstNonEmpty(rec.Content, rec.ArContent, rec.Answer, rec.ArAnswer))
	title := processing.CleanText(firstNonEmpty(rec.Title, rec.ArTitle))

	tier := models.TierArticle
	if content == "" {
		// title-only fallback: keep the record selectable when nothing
		// better turns up anywhere
		content = title
		tier = models.TierTitle
	}
	if title == "" {
		title = processing.TitleFromText(content, 10)
	}

	return models.Candidate{
		Content: content,
		Title:   title,
		Author:  processing.CleanText(firstNonEmpty(rec.Mufti, rec.ArMufti)),
		Source:  p.sourceLabel(firstNonEmpty(rec.ArSourceURL, rec.SourceURL)),
		Tier:    tier,
	}
}

func (p *QuranPedia) sourceLabel(sourceURL string) string {
	for _, b := range p.brands {
		if strings.Contains(sourceURL, b.Domain) {
			return b.Label
		}
	}
	return quranPediaLabel
}
