package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/basirah-app/backend/internal/aigateway"
	"github.com/basirah-app/backend/internal/config"
	"github.com/basirah-app/backend/internal/logger"
	"github.com/basirah-app/backend/internal/prayer"
	"github.com/basirah-app/backend/internal/provider"
	"github.com/basirah-app/backend/internal/quran"
	"github.com/basirah-app/backend/internal/search"
)

func main() {
	_ = godotenv.Load()

	log := logger.New("api")
	cfg, err := config.LoadAPI()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	providers := []provider.Provider{
		provider.NewQuranPedia(cfg.Search.QuranPediaBaseURL, cfg.Search.FatwaBonus, cfg.Search.ProviderTimeout, log),
		provider.NewMofeed(cfg.Search.MofeedBaseURL, 0, cfg.Search.ProviderTimeout, log),
	}

	var gateway search.Generator
	if cfg.Gateway.Enabled() {
		gateway = aigateway.New(cfg.Gateway, log)
		log.Info("generative delegation enabled", slog.String("model", cfg.Gateway.Model))
	}

	srv := &server{
		log:    log,
		cfg:    cfg,
		search: search.New(cfg.Search, providers, gateway, log),
		prayer: prayer.New(cfg.Prayer, log),
		quran:  quran.New(cfg.Quran, log),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
	}))

	r.Get("/health", srv.handleHealth)
	r.Post("/search", srv.handleSearch)
	r.Post("/prayer-times", srv.handlePrayerTimes)
	r.Post("/quran", srv.handleQuran)

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("api server starting", slog.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}
