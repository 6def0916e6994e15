package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Search tunes the aggregation pipeline. Scoring constants are deliberately
// configuration, not code: the weights shifted several times during the
// product's life and none of them is a contract.
type Search struct {
	QuranPediaBaseURL string
	MofeedBaseURL     string
	ProviderTimeout   time.Duration
	MinContent        int
	MaxAnswerLen      int
	KeywordMinLength  int
	KeywordBonus      float64
	TitleBonus        float64
	FatwaBonus        float64
	ContextItems      int
}

// Gateway configures the optional generative delegation step. The step is
// active only when an API key is present.
type Gateway struct {
	URL         string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	MaxRetries  int
	Timeout     time.Duration
}

// Enabled reports whether generative delegation should run.
func (g Gateway) Enabled() bool { return g.APIKey != "" }

// Prayer configures the AlAdhan passthrough client.
type Prayer struct {
	AlAdhanBaseURL string
	DefaultMethod  int
	Timeout        time.Duration
}

// Quran configures the Quran text and tafseer passthrough clients.
type Quran struct {
	AlQuranBaseURL string
	TafseerBaseURL string
	Timeout        time.Duration
}

// API describes HTTP-layer configuration for the backend service.
type API struct {
	BindAddr       string
	RequestTimeout time.Duration
	Search         Search
	Gateway        Gateway
	Prayer         Prayer
	Quran          Quran
}

// LoadAPI builds the API config from environment variables.
func LoadAPI() (*API, error) {
	c := &API{
		BindAddr:       getEnv("API_BIND_ADDR", "0.0.0.0:8080"),
		RequestTimeout: getDuration("API_REQUEST_TIMEOUT", "25s"),
		Search: Search{
			QuranPediaBaseURL: getEnv("QURANPEDIA_BASE_URL", "https://api.quranpedia.net"),
			MofeedBaseURL:     getEnv("MOFEED_BASE_URL", "https://content.mofeed.org"),
			ProviderTimeout:   getDuration("SEARCH_PROVIDER_TIMEOUT", "8s"),
			MinContent:        getInt("SEARCH_MIN_CONTENT", 30),
			MaxAnswerLen:      getInt("SEARCH_MAX_ANSWER_LEN", 1500),
			KeywordMinLength:  getInt("SEARCH_KEYWORD_MIN_LEN", 3),
			KeywordBonus:      getFloat("SEARCH_KEYWORD_BONUS", 10),
			TitleBonus:        getFloat("SEARCH_TITLE_BONUS", 20),
			FatwaBonus:        getFloat("SEARCH_FATWA_BONUS", 25),
			ContextItems:      getInt("SEARCH_CONTEXT_ITEMS", 3),
		},
		Gateway: Gateway{
			URL:         getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
			APIKey:      getEnv("AI_GATEWAY_API_KEY", ""),
			Model:       getEnv("AI_GATEWAY_MODEL", "google/gemini-2.5-flash"),
			Temperature: getFloat("AI_GATEWAY_TEMPERATURE", 0.3),
			MaxTokens:   getInt("AI_GATEWAY_MAX_TOKENS", 2000),
			MaxRetries:  getInt("AI_GATEWAY_MAX_RETRIES", 2),
			Timeout:     getDuration("AI_GATEWAY_TIMEOUT", "30s"),
		},
		Prayer: Prayer{
			AlAdhanBaseURL: getEnv("ALADHAN_BASE_URL", "https://api.aladhan.com"),
			DefaultMethod:  getInt("PRAYER_DEFAULT_METHOD", 4),
			Timeout:        getDuration("PRAYER_TIMEOUT", "10s"),
		},
		Quran: Quran{
			AlQuranBaseURL: getEnv("ALQURAN_BASE_URL", "https://api.alquran.cloud"),
			TafseerBaseURL: getEnv("TAFSEER_BASE_URL", "http://api.quran-tafseer.com"),
			Timeout:        getDuration("QURAN_TIMEOUT", "10s"),
		},
	}

	if c.Search.ProviderTimeout <= 0 {
		return nil, fmt.Errorf("SEARCH_PROVIDER_TIMEOUT must be positive")
	}
	if c.Search.MinContent <= 0 {
		return nil, fmt.Errorf("SEARCH_MIN_CONTENT must be positive")
	}
	if c.Search.MaxAnswerLen <= 0 {
		return nil, fmt.Errorf("SEARCH_MAX_ANSWER_LEN must be positive")
	}
	if c.Search.KeywordMinLength <= 0 {
		return nil, fmt.Errorf("SEARCH_KEYWORD_MIN_LEN must be positive")
	}
	if c.Search.KeywordBonus < 0 || c.Search.TitleBonus < 0 || c.Search.FatwaBonus < 0 {
		return nil, fmt.Errorf("scoring bonuses cannot be negative")
	}
	if c.Search.ContextItems <= 0 {
		return nil, fmt.Errorf("SEARCH_CONTEXT_ITEMS must be positive")
	}
	if c.Gateway.MaxTokens <= 0 {
		return nil, fmt.Errorf("AI_GATEWAY_MAX_TOKENS must be positive")
	}
	if c.Gateway.MaxRetries < 0 {
		return nil, fmt.Errorf("AI_GATEWAY_MAX_RETRIES cannot be negative")
	}
	if c.Prayer.DefaultMethod <= 0 {
		return nil, fmt.Errorf("PRAYER_DEFAULT_METHOD must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		fd, ferr := time.ParseDuration(fallback)
		if ferr != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, ferr))
		}
		return fd
	}
	return d
}
