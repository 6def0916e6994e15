package provider

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMediaLink(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "empty", raw: ``, wantOK: false},
		{name: "null", raw: `null`, wantOK: false},
		{name: "plain url string", raw: `"https://cdn.example.org/a.mp3"`, want: "https://cdn.example.org/a.mp3", wantOK: true},
		{name: "object", raw: `{"download_link":"https://x/a.mp3"}`, want: "https://x/a.mp3", wantOK: true},
		{name: "array", raw: `[{"download_link":"https://x/b.mp3"}]`, want: "https://x/b.mp3", wantOK: true},
		{name: "json encoded in string", raw: `"[{\"download_link\":\"https://x/c.mp3\"}]"`, want: "https://x/c.mp3", wantOK: true},
		{name: "object in string", raw: `"{\"url\":\"https://x/d.mp4\"}"`, want: "https://x/d.mp4", wantOK: true},
		{name: "alternate keys", raw: `{"link":"https://x/e.mp3"}`, want: "https://x/e.mp3", wantOK: true},
		{name: "descriptor without link", raw: `{"title":"no link here"}`, wantOK: false},
		{name: "garbage string", raw: `"not json and not a url"`, wantOK: false},
		{name: "empty array", raw: `[]`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mediaLink(json.RawMessage(tt.raw))
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
