package main

import (
	"context"
	"os"
	"time"

	"github.com/panagiotisMouz/Football-Stats/internal/app"
	"github.com/panagiotisMouz/Football-Stats/internal/config"
	"github.com/panagiotisMouz/Football-Stats/internal/platform/logging"
)

// One-shot CSV load against the configured database, for cron jobs and
// local reloads without starting the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer func() { _ = application.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	reports, err := application.Ingestion.Run(ctx)
	if err != nil {
		logger.Error("ingestion failed", "error", err)
		os.Exit(1)
	}

	failed := 0
	for _, report := range reports {
		if report.Err != nil {
			failed++
			logger.Error("phase failed",
				"phase", report.Phase, "error", report.Error)
			continue
		}
		logger.Info("phase complete",
			"phase", report.Phase,
			"inserted", report.Inserted,
			"skipped", report.Skipped,
		)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
