// Package quran proxies the alquran.cloud text/audio API and the
// quran-tafseer API.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/basirah-app/backend/internal/config"
)

// audio recitation and text script editions served to the reader UI
const (
	audioEdition = "ar.alafasy"
	textEdition  = "quran-uthmani"
)

// Surah is the chapter header.
type Surah struct {
	Number         int    `json:"number"`
	Name           string `json:"name"`
	EnglishName    string `json:"englishName"`
	RevelationType string `json:"revelationType"`
	NumberOfAyahs  int    `json:"numberOfAyahs"`
}

// Ayah is one verse with its recitation audio.
type Ayah struct {
	Number         int      `json:"number"`
	Text           string   `json:"text"`
	Audio          string   `json:"audio"`
	AudioSecondary []string `json:"audioSecondary"`
	Page           int      `json:"page"`
	Juz            int      `json:"juz"`
	HizbQuarter    int      `json:"hizbQuarter"`
}

// SurahResult bundles a chapter and its verses.
type SurahResult struct {
	Surah Surah  `json:"surah"`
	Ayahs []Ayah `json:"ayahs"`
}

// Tafseer is one verse's commentary.
type Tafseer struct {
	Tafseer     string `json:"tafseer"`
	TafseerName string `json:"tafseerName"`
}

// Client queries the Quran text and tafseer upstreams.
type Client struct {
	quranBase   string
	tafseerBase string
	http        *http.Client
	log         *slog.Logger
}

// New builds the client.
func New(cfg config.Quran, log *slog.Logger) *Client {
	return &Client{
		quranBase:   strings.TrimRight(cfg.AlQuranBaseURL, "/"),
		tafseerBase: strings.TrimRight(cfg.TafseerBaseURL, "/"),
		http:        &http.Client{Timeout: cfg.Timeout},
		log:         log,
	}
}

type editionPayload struct {
	Data struct {
		Number         int    `json:"number"`
		Name           string `json:"name"`
		EnglishName    string `json:"englishName"`
		RevelationType string `json:"revelationType"`
		NumberOfAyahs  int    `json:"numberOfAyahs"`
		Ayahs          []struct {
			NumberInSurah  int      `json:"numberInSurah"`
			Text           string   `json:"text"`
			Audio          string   `json:"audio"`
			AudioSecondary []string `json:"audioSecondary"`
			Page           int      `json:"page"`
			Juz            int      `json:"juz"`
			HizbQuarter    int      `json:"hizbQuarter"`
		} `json:"ayahs"`
	} `json:"data"`
}

// Surah fetches a chapter, merging the recitation edition with the uthmani
// text edition. The text fetch is best effort; on failure the recitation
// edition's own text is kept.
func (c *Client) Surah(ctx context.Context, surahID int) (*SurahResult, error) {
	var audio, text editionPayload
	var textOK bool

	var g errgroup.Group
	g.Go(func() error {
		return c.fetchEdition(ctx, surahID, audioEdition, &audio)
	})
	g.Go(func() error {
		if err := c.fetchEdition(ctx, surahID, textEdition, &text); err != nil {
			c.log.Warn("uthmani text fetch failed", slog.Any("err", err))
			return nil
		}
		textOK = true
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &SurahResult{
		Surah: Surah{
			Number:         audio.Data.Number,
			Name:           audio.Data.Name,
			EnglishName:    audio.Data.EnglishName,
			RevelationType: audio.Data.RevelationType,
			NumberOfAyahs:  audio.Data.NumberOfAyahs,
		},
		Ayahs: make([]Ayah, 0, len(audio.Data.Ayahs)),
	}

	for i, ayah := range audio.Data.Ayahs {
		verse := Ayah{
			Number:         ayah.NumberInSurah,
			Text:           ayah.Text,
			Audio:          ayah.Audio,
			AudioSecondary: ayah.AudioSecondary,
			Page:           ayah.Page,
			Juz:            ayah.Juz,
			HizbQuarter:    ayah.HizbQuarter,
		}
		if textOK && i < len(text.Data.Ayahs) && text.Data.Ayahs[i].Text != "" {
			verse.Text = text.Data.Ayahs[i].Text
		}
		out.Ayahs = append(out.Ayahs, verse)
	}

	return out, nil
}

func (c *Client) fetchEdition(ctx context.Context, surahID int, edition string, out *editionPayload) error {
	url := fmt.Sprintf("%s/v1/surah/%d/%s", c.quranBase, surahID, edition)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch edition %s: %w", edition, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("alquran.cloud status %d for edition %s", resp.StatusCode, edition)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode edition %s: %w", edition, err)
	}
	return nil
}

// Tafseer fetches the commentary of one verse.
func (c *Client) Tafseer(ctx context.Context, tafseerID, surahID, ayahNumber int) (*Tafseer, error) {
	url := fmt.Sprintf("%s/tafseer/%d/%d/%d", c.tafseerBase, tafseerID, surahID, ayahNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tafseer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quran-tafseer status %d", resp.StatusCode)
	}

	var payload struct {
		Text        string `json:"text"`
		TafseerName string `json:"tafseer_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode tafseer: %w", err)
	}

	return &Tafseer{Tafseer: payload.Text, TafseerName: payload.TafseerName}, nil
}
