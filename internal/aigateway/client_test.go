package aigateway_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/basirah-app/backend/internal/aigateway"
	"github.com/basirah-app/backend/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gatewayConfig(url string) config.Gateway {
	return config.Gateway{
		URL:        url,
		APIKey:     "test-key",
		Model:      "test-model",
		MaxTokens:  512,
		MaxRetries: 2,
		Timeout:    time.Second,
	}
}

func chatBody(content string) string {
	return `{"choices":[{"message":{"content":` + content + `}}]}`
}

func TestGenerateParsesStructuredAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		io.WriteString(w, chatBody(`"{\"answer\":\"الزكاة واجبة\",\"source\":\"إسلام ويب\"}"`))
	}))
	defer srv.Close()

	c := aigateway.New(gatewayConfig(srv.URL), testLogger())
	got, err := c.Generate(context.Background(), "سؤال", "سياق")
	require.NoError(t, err)
	require.Equal(t, "الزكاة واجبة", got.Answer)
	require.Equal(t, "إسلام ويب", got.Source)
}

func TestGenerateRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, chatBody(`"{\"answer\":\"جواب\"}"`))
	}))
	defer srv.Close()

	c := aigateway.New(gatewayConfig(srv.URL), testLogger(), aigateway.WithMinBackoff(time.Millisecond))
	got, err := c.Generate(context.Background(), "سؤال", "")
	require.NoError(t, err)
	require.Equal(t, "جواب", got.Answer)
	require.Equal(t, int32(2), calls.Load())
}

func TestGenerateUnauthorizedIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := aigateway.New(gatewayConfig(srv.URL), testLogger(), aigateway.WithMinBackoff(time.Millisecond))
	_, err := c.Generate(context.Background(), "سؤال", "")
	require.ErrorIs(t, err, aigateway.ErrUnauthorized)
	require.Equal(t, int32(1), calls.Load())
}

func TestGenerateExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := aigateway.New(gatewayConfig(srv.URL), testLogger(), aigateway.WithMinBackoff(time.Millisecond))
	_, err := c.Generate(context.Background(), "سؤال", "")
	require.Error(t, err)
	require.Equal(t, int32(3), calls.Load()) // initial attempt + two retries
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	c := aigateway.New(gatewayConfig(srv.URL), testLogger())
	_, err := c.Generate(context.Background(), "سؤال", "")
	require.Error(t, err)
}
