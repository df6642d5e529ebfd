package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "github.com/PabloGalante/moodlens/internal/adapters/http"
	memstore "github.com/PabloGalante/moodlens/internal/adapters/storage/memory"
	"github.com/PabloGalante/moodlens/internal/app/mood"
	"github.com/PabloGalante/moodlens/internal/config"
	"github.com/PabloGalante/moodlens/internal/observability"
)

func main() {
	// .env is optional; real env vars always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if err := observability.Init(os.Stdout, cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	logger := observability.WithFields("service", cfg.ServiceName, "mode", cfg.Mode)

	// History lives for the process lifetime only
	store := memstore.NewHistoryStore()
	svc := mood.NewService(store)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           httpadapter.NewServer(svc, cfg.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MoodLens API listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
