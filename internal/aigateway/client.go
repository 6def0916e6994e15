// Package aigateway calls an OpenAI-compatible chat completions endpoint to
// synthesize an answer over the aggregated provider context.
package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/basirah-app/backend/internal/config"
	"github.com/basirah-app/backend/internal/models"
)

// ErrUnauthorized indicates a 401/403 from the gateway (bad API key).
var ErrUnauthorized = errors.New("aigateway: unauthorized")

// Client is a minimal chat-completions client with bounded retry on 429 and
// 5xx responses.
type Client struct {
	url         string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	maxRetries  int
	minBackoff  time.Duration
	http        *http.Client
	log         *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithMinBackoff sets the initial retry backoff (useful for testing).
func WithMinBackoff(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.minBackoff = d
		}
	}
}

// New builds a gateway client from configuration.
func New(cfg config.Gateway, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		url:         cfg.URL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		maxRetries:  cfg.MaxRetries,
		minBackoff:  250 * time.Millisecond,
		http:        &http.Client{Timeout: cfg.Timeout},
		log:         log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate asks the gateway to answer the question using only the supplied
// context block. The model is instructed to reply with the Answer JSON
// shape; replies that are not valid JSON degrade to a plain-text answer.
func (c *Client) Generate(ctx context.Context, question, contextBlock string) (models.Answer, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(question, contextBlock)},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return models.Answer{}, fmt.Errorf("marshal request: %w", err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(c.minBackoff),
		), uint64(c.maxRetries)),
		ctx,
	)

	var content string
	operation := func() error {
		var opErr error
		content, opErr = c.complete(ctx, body)
		return opErr
	}
	if err := backoff.Retry(operation, policy); err != nil {
		return models.Answer{}, err
	}

	return ParseAnswer(content)
}

// complete performs one HTTP round trip. Retryable failures return plain
// errors; anything not worth retrying is marked permanent.
func (c *Client) complete(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return "", backoff.Permanent(ErrUnauthorized)
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("gateway request failed, retrying",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(msg)),
		)
		return "", fmt.Errorf("gateway status %d", resp.StatusCode)
	default:
		return "", backoff.Permanent(fmt.Errorf("gateway status %d", resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", backoff.Permanent(errors.New("empty gateway response"))
	}
	return parsed.Choices[0].Message.Content, nil
}
