package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/basirah-app/backend/internal/config"
	"github.com/basirah-app/backend/internal/models"
	"github.com/basirah-app/backend/internal/prayer"
	"github.com/basirah-app/backend/internal/quran"
	"github.com/basirah-app/backend/internal/search"
)

type answerer interface {
	Handle(ctx context.Context, question string) (models.Answer, error)
}

type prayerTimes interface {
	Today(ctx context.Context, latitude, longitude float64, method int) (*prayer.Times, error)
}

type quranAPI interface {
	Surah(ctx context.Context, surahID int) (*quran.SurahResult, error)
	Tafseer(ctx context.Context, tafseerID, surahID, ayahNumber int) (*quran.Tafseer, error)
}

type server struct {
	log    *slog.Logger
	cfg    *config.API
	search answerer
	prayer prayerTimes
	quran  quranAPI
}

type searchResponse struct {
	Result models.Answer `json:"result"`
}

type errorResponse struct {
	Error  string         `json:"error"`
	Result *models.Answer `json:"result,omitempty"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question is required"})
		return
	}

	result, err := s.search.Handle(ctx, req.Question)
	if errors.Is(err, search.ErrEmptyQuestion) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question is required"})
		return
	}
	if err != nil {
		s.log.Error("search failed", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:  "internal server error",
			Result: &models.Answer{Answer: search.ErrorAnswer},
		})
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Result: result})
}

func (s *server) handlePrayerTimes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	var req struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Method    int      `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "latitude and longitude are required"})
		return
	}

	method := req.Method
	if method <= 0 {
		method = s.cfg.Prayer.DefaultMethod
	}

	times, err := s.prayer.Today(ctx, *req.Latitude, *req.Longitude, method)
	if err != nil {
		s.log.Error("prayer times failed", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "prayer times unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, times)
}

func (s *server) handleQuran(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	var req struct {
		Action     string `json:"action"`
		SurahID    int    `json:"surahId"`
		AyahNumber int    `json:"ayahNumber"`
		TafseerID  int    `json:"tafseerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	switch req.Action {
	case "surah":
		result, err := s.quran.Surah(ctx, req.SurahID)
		if err != nil {
			s.log.Error("surah fetch failed", slog.Any("err", err), slog.Int("surah", req.SurahID))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "surah unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "tafseer":
		tafseerID := req.TafseerID
		if tafseerID <= 0 {
			tafseerID = 1 // ابن كثير
		}
		result, err := s.quran.Tafseer(ctx, tafseerID, req.SurahID, req.AyahNumber)
		if err != nil {
			s.log.Error("tafseer fetch failed", slog.Any("err", err), slog.Int("surah", req.SurahID))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "tafseer unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, result)

	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid action"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}
