// Package provider wraps the upstream content sources queried per search
// request. Each adapter issues one HTTP query, parses that provider's own
// record shape, and hands back normalized candidates; raw records never
// leave this package.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/basirah-app/backend/internal/models"
)

// Provider is implemented by each upstream content source.
type Provider interface {
	Name() string
	// Bonus is this provider's declared priority: a fixed score added to
	// every candidate with content, so that more authoritative sources
	// outrank generic ones at equal content length.
	Bonus() float64
	Search(ctx context.Context, question string) ([]models.Candidate, error)
}

func get(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
