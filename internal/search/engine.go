// Package search implements the question answering pipeline: concurrent
// provider fan-out, relevance scoring, winner selection, and answer
// assembly, with optional generative delegation on top.
package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/basirah-app/backend/internal/config"
	"github.com/basirah-app/backend/internal/models"
	"github.com/basirah-app/backend/internal/processing"
	"github.com/basirah-app/backend/internal/provider"
)

// ErrEmptyQuestion reports a missing or blank question.
var ErrEmptyQuestion = errors.New("question must be a non-empty string")

// Generator produces an answer from the question and an aggregated context
// block. Implemented by the AI gateway client.
type Generator interface {
	Generate(ctx context.Context, question, contextBlock string) (models.Answer, error)
}

// Engine orchestrates one search request end to end.
type Engine struct {
	cfg       config.Search
	providers []provider.Provider
	gateway   Generator
	log       *slog.Logger
}

// New builds an engine. gateway may be nil, in which case the deterministic
// pipeline alone produces the answer.
func New(cfg config.Search, providers []provider.Provider, gateway Generator, log *slog.Logger) *Engine {
	return &Engine{cfg: cfg, providers: providers, gateway: gateway, log: log}
}

// Handle answers one question. Provider failures degrade to empty
// contributions; a generative failure falls back to the deterministic
// pipeline; only an empty question is an error.
func (e *Engine) Handle(ctx context.Context, question string) (models.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.Answer{}, ErrEmptyQuestion
	}

	log := e.log.With(slog.String("search_id", uuid.NewString()))
	keywords := processing.QuestionKeywords(question, e.cfg.KeywordMinLength)

	scored := e.gather(ctx, log, question, keywords)
	log.Info("providers answered", slog.Int("candidates", len(scored)))

	if e.gateway != nil {
		block := BuildContext(scored, e.cfg.MinContent, e.cfg.ContextItems, e.cfg.MaxAnswerLen)
		answer, err := e.gateway.Generate(ctx, question, block)
		if err == nil {
			return answer, nil
		}
		log.Warn("generative delegation failed, using aggregation result", slog.Any("err", err))
	}

	best := Select(scored, e.cfg.MinContent)
	return Assemble(best, scored, e.cfg.MaxAnswerLen, e.cfg.MinContent), nil
}

// gather fans out to all providers concurrently and scores every candidate.
// Join-all semantics: one provider failing or timing out never cancels the
// others, it just contributes nothing.
func (e *Engine) gather(ctx context.Context, log *slog.Logger, question string, keywords []string) []models.ScoredCandidate {
	results := make([][]models.Candidate, len(e.providers))

	var g errgroup.Group
	for i, p := range e.providers {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(ctx, e.cfg.ProviderTimeout)
			defer cancel()

			candidates, err := p.Search(pctx, question)
			if err != nil {
				log.Warn("provider search failed",
					slog.String("provider", p.Name()),
					slog.Any("err", err),
				)
				return nil
			}
			results[i] = candidates
			return nil
		})
	}
	_ = g.Wait() // branches report failures via logs, never via errors

	weights := Weights{KeywordBonus: e.cfg.KeywordBonus, TitleBonus: e.cfg.TitleBonus}

	var scored []models.ScoredCandidate
	for i, p := range e.providers {
		for _, c := range results[i] {
			s := Score(c, keywords, weights)
			if c.Content != "" {
				s += p.Bonus()
			}
			scored = append(scored, models.ScoredCandidate{Candidate: c, Score: s})
		}
	}
	return scored
}
