package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/basirah-app/backend/internal/models"
	"github.com/basirah-app/backend/internal/processing"
)

const mofeedLabel = "منصة مفيد"

// arabic language id in the Mofeed content API
const mofeedLanguage = "1"

// Mofeed queries the Mofeed general content platform.
type Mofeed struct {
	baseURL string
	bonus   float64
	http    *http.Client
	log     *slog.Logger
}

// NewMofeed builds the content-platform provider.
func NewMofeed(baseURL string, bonus float64, timeout time.Duration, log *slog.Logger) *Mofeed {
	return &Mofeed{
		baseURL: strings.TrimRight(baseURL, "/"),
		bonus:   bonus,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (p *Mofeed) Name() string   { return "mofeed" }
func (p *Mofeed) Bonus() float64 { return p.bonus }

// contentRecord mirrors one item of the Mofeed content payload. The schema
// is loose: entity arrives as a string or an object, and media descriptors
// are sometimes JSON encoded inside a string.
type contentRecord struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
	Evidence    string          `json:"evidence"`
	Article     *articleBody    `json:"article"`
	Author      []namedItem     `json:"author"`
	Entity      flexibleEntity  `json:"entity"`
	Categories  []namedItem     `json:"categories"`
	Audio       json.RawMessage `json:"audio"`
	Video       json.RawMessage `json:"video"`
}

type articleBody struct {
	Content string `json:"content"`
	Body    string `json:"body"`
}

type namedItem struct {
	Name string `json:"name"`
}

// flexibleEntity accepts either a bare string or an object with a name
// field. Unknown shapes decode to the empty name instead of failing the
// whole record.
type flexibleEntity struct {
	Name string
}

func (e *flexibleEntity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		e.Name = obj.Name
		return nil
	}
	e.Name = ""
	return nil
}

// Search runs the content query and normalizes every returned record.
func (p *Mofeed) Search(ctx context.Context, question string) ([]models.Candidate, error) {
	searchURL := fmt.Sprintf("%s/Api/content?language=%s&search=%s",
		p.baseURL, mofeedLanguage, url.QueryEscape(question))
	p.log.Debug("searching mofeed", slog.String("url", searchURL))

	var payload struct {
		Data []contentRecord `json:"data"`
	}
	if err := get(ctx, p.http, searchURL, &payload); err != nil {
		return nil, fmt.Errorf("mofeed search: %w", err)
	}

	out := make([]models.Candidate, 0, len(payload.Data))
	for _, rec := range payload.Data {
		out = append(out, extractContent(rec))
	}
	return out, nil
}

// extractContent resolves the record's best text field. Precedence: article
// body, then description, then notes, then the bare name.
func extractContent(rec contentRecord) models.Candidate {
	article := ""
	if rec.Article != nil {
		article = processing.CleanText(firstNonEmpty(rec.Article.Content, rec.Article.Body))
	}
	description := processing.CleanText(rec.Description)
	notes := processing.CleanText(rec.Notes)
	name := processing.CleanText(rec.Name)

	var content string
	var tier float64
	switch {
	case article != "":
		content, tier = article, models.TierArticle
	case description != "":
		content, tier = description, models.TierDescription
	case notes != "":
		content, tier = notes, models.TierNotes
	default:
		content, tier = name, models.TierTitle
	}

	title := name
	if title == "" {
		title = processing.TitleFromText(content, 10)
	}

	author := ""
	if len(rec.Author) > 0 {
		author = strings.TrimSpace(rec.Author[0].Name)
	}

	source := strings.TrimSpace(rec.Entity.Name)
	if source == "" {
		source = mofeedLabel
	}

	category := ""
	if len(rec.Categories) > 0 {
		category = strings.TrimSpace(rec.Categories[0].Name)
	}

	media := ""
	if link, ok := mediaLink(rec.Audio); ok {
		media = link
	} else if link, ok := mediaLink(rec.Video); ok {
		media = link
	}

	return models.Candidate{
		Content:  content,
		Title:    title,
		Author:   author,
		Source:   source,
		Category: category,
		MediaURL: media,
		Evidence: processing.CleanText(rec.Evidence),
		Note:     notes,
		Tier:     tier,
	}
}
