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

	"trendsight/config"
	"trendsight/internal/analysis"
	"trendsight/internal/api"
	"trendsight/internal/auth"
	"trendsight/internal/clients"
	"trendsight/internal/content"
	"trendsight/internal/db"
	"trendsight/internal/logging"
	"trendsight/internal/summarizer"
)

const tokenLifetime = 24 * time.Hour

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.LoadAppConfig()
	if cfg.JWTSecret == "" {
		slog.Error("[Server] JWT_SECRET is required")
		os.Exit(1)
	}
	if len(cfg.BrandWatchlist) == 0 {
		slog.Warn("[Server] BRAND_WATCHLIST is empty; reports will have no brand chart")
	}

	clients.InitValkey()
	defer clients.CloseValkey()
	db.InitDynamoDB()

	valkeyClient := clients.GetValkeyClient()

	authService := auth.NewService(
		auth.NewJWTManager(cfg.JWTSecret, tokenLifetime),
		auth.NewValkeyQuotaStore(valkeyClient),
	)

	loader := content.NewLoader()
	pipeline := analysis.NewPipeline(loader, cfg.BrandWatchlist, cfg.MaxKeywords,
		analysis.NewValkeyReportCache(valkeyClient))

	handler := api.NewHandler(authService, pipeline, loader,
		summarizer.SummarizeTrends, summarizer.AnswerQuestion)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewServer(handler),
	}

	// The listener reports fatal errors back here instead of exiting
	// itself, so the deferred client teardown still runs.
	errChan := make(chan error, 1)
	go func() {
		slog.Info("[Server] Listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		slog.Error("[Server] Listen failed", slog.String("error", err.Error()))
		return
	case <-stopChan:
	}

	slog.Info("[Server] Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Server] Shutdown failed", slog.String("error", err.Error()))
	}
}
