package aigateway

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/basirah-app/backend/internal/models"
)

var fence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ParseAnswer turns raw model output into an Answer. Models wrap JSON in
// markdown fences often enough that we strip those first; output that still
// is not the expected JSON shape becomes a plain-text answer rather than an
// error.
func ParseAnswer(content string) (models.Answer, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return models.Answer{}, errors.New("empty gateway content")
	}

	payload := trimmed
	if m := fence.FindStringSubmatch(trimmed); m != nil {
		payload = m[1]
	}

	var answer models.Answer
	if err := json.Unmarshal([]byte(payload), &answer); err != nil || answer.Answer == "" {
		return models.Answer{Answer: trimmed}, nil
	}
	return answer, nil
}
