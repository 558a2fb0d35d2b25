package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"confronto/internal/budget"
	"confronto/internal/budget/lunchmoney"
	"confronto/internal/budget/memory"
	"confronto/internal/config"
	apphttp "confronto/internal/http"
	"confronto/internal/log"
	"confronto/internal/prefs"
	"confronto/internal/services"
	"confronto/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	// Budget source: the real API when a token is present, local fixtures
	// otherwise so the dashboard stays usable offline.
	var source budget.TransactionSource
	if cfg.APIToken != "" {
		source = lunchmoney.NewClient(cfg.APIBaseURL, cfg.APIToken, cfg.PageSize)
		logger.Info("Using budgeting API source", "base_url", cfg.APIBaseURL)
	} else {
		source = memory.NewFromFiles("data")
		logger.Warn("No API token configured, serving fixture data from ./data")
	}

	var store prefs.Store
	switch cfg.PrefsBackend {
	case "sqlite":
		sqliteStore, err := storage.NewSQLitePrefsStore(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite preference store",
				log.FieldError, err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		store = sqliteStore
		logger.Info("Initialized SQLite preference store", log.FieldBackend, cfg.PrefsBackend)
	default:
		store = prefs.NewMemoryStore()
		logger.Info("Initialized in-memory preference store", log.FieldBackend, cfg.PrefsBackend)
	}
	defer store.Close()

	summaries := services.NewSummaryService(source, cfg.CacheSize, cfg.CacheTTL)
	defer summaries.Close()

	srv := apphttp.NewServer(":"+cfg.Port, summaries, store, logger)

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting confronto server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
