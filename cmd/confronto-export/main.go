package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"confronto/internal/budget"
	"confronto/internal/budget/lunchmoney"
	"confronto/internal/budget/memory"
	"confronto/internal/config"
	"confronto/internal/export"
	"confronto/internal/export/google"
	"confronto/internal/log"
	"confronto/internal/services"
)

// One-shot tool: compute a comparison summary and write it to the
// configured Google Sheets spreadsheet.
func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	now := time.Now()
	year := flag.Int("year", now.Year(), "current period year")
	compare := flag.Int("compare", now.Year()-1, "comparison period year")
	month := flag.Int("month", 0, "restrict to a calendar month (1-12, 0 = full year)")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	if cfg.GoogleSpreadsheetID == "" {
		logger.Error("GOOGLE_SPREADSHEET_ID is required for export")
		os.Exit(1)
	}

	var source budget.TransactionSource
	if cfg.APIToken != "" {
		source = lunchmoney.NewClient(cfg.APIBaseURL, cfg.APIToken, cfg.PageSize)
	} else {
		source = memory.NewFromFiles("data")
		logger.Warn("No API token configured, exporting fixture data from ./data")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	writer, err := google.NewFromEnv(ctx, logger)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", log.FieldError, err)
		os.Exit(1)
	}

	summaries := services.NewSummaryService(source, 1, time.Minute)
	defer summaries.Close()

	summary, err := summaries.Summary(ctx, services.SummaryRequest{
		Year:        *year,
		CompareYear: *compare,
		Month:       *month,
	})
	if err != nil {
		logger.Error("Failed to compute summary",
			log.FieldYear, *year,
			log.FieldCompareYear, *compare,
			log.FieldError, err)
		os.Exit(1)
	}

	ref, err := writer.WriteSummary(ctx, export.SummaryRef{
		Year:        *year,
		CompareYear: *compare,
		Month:       *month,
	}, summary)
	if err != nil {
		logger.Error("Export failed", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Export complete", "range", ref)
}
