package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/basirah-app/backend/internal/config"
)

func TestLoadAPIDefaults(t *testing.T) {
	cfg, err := config.LoadAPI()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.BindAddr)
	require.Equal(t, "https://api.quranpedia.net", cfg.Search.QuranPediaBaseURL)
	require.Equal(t, "https://content.mofeed.org", cfg.Search.MofeedBaseURL)
	require.Equal(t, 8*time.Second, cfg.Search.ProviderTimeout)
	require.Equal(t, 30, cfg.Search.MinContent)
	require.Equal(t, 1500, cfg.Search.MaxAnswerLen)
	require.Equal(t, 3, cfg.Search.KeywordMinLength)
	require.Equal(t, 10.0, cfg.Search.KeywordBonus)
	require.Equal(t, 20.0, cfg.Search.TitleBonus)
	require.Equal(t, 25.0, cfg.Search.FatwaBonus)
	require.Equal(t, 4, cfg.Prayer.DefaultMethod)
	require.False(t, cfg.Gateway.Enabled())
}

func TestLoadAPIOverrides(t *testing.T) {
	t.Setenv("SEARCH_MIN_CONTENT", "50")
	t.Setenv("SEARCH_PROVIDER_TIMEOUT", "3s")
	t.Setenv("AI_GATEWAY_API_KEY", "secret")

	cfg, err := config.LoadAPI()
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Search.MinContent)
	require.Equal(t, 3*time.Second, cfg.Search.ProviderTimeout)
	require.True(t, cfg.Gateway.Enabled())
}

func TestLoadAPIValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "min content", key: "SEARCH_MIN_CONTENT", value: "-1"},
		{name: "max answer len", key: "SEARCH_MAX_ANSWER_LEN", value: "0"},
		{name: "keyword min len", key: "SEARCH_KEYWORD_MIN_LEN", value: "0"},
		{name: "negative bonus", key: "SEARCH_KEYWORD_BONUS", value: "-5"},
		{name: "context items", key: "SEARCH_CONTEXT_ITEMS", value: "-3"},
		{name: "max tokens", key: "AI_GATEWAY_MAX_TOKENS", value: "0"},
		{name: "prayer method", key: "PRAYER_DEFAULT_METHOD", value: "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.LoadAPI()
			require.Error(t, err)
		})
	}
}

func TestLoadAPIIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SEARCH_MIN_CONTENT", "not-a-number")
	cfg, err := config.LoadAPI()
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Search.MinContent)
}
