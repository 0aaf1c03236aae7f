package main

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchplay-data-service/internal/export"
	"github.com/stitts-dev/matchplay-data-service/internal/providers"
	"github.com/stitts-dev/matchplay-data-service/internal/services"
	"github.com/stitts-dev/matchplay-data-service/pkg/config"
	"github.com/stitts-dev/matchplay-data-service/pkg/logger"
)

// One-shot export: runs the full pipeline once and exits. Useful for
// cron-driven deployments and for regenerating artifacts by hand.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	structuredLogger := logger.InitLogger("info", cfg.IsDevelopment())
	logger.WithService("matchplay-exporter").WithFields(logrus.Fields{
		"tournament": cfg.TournamentID,
		"output_dir": cfg.OutputDir,
	}).Info("Starting one-shot match-play export")

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.WithService("matchplay-exporter").Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.WithService("matchplay-exporter").Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	cacheService := services.NewCacheService(redisClient)
	circuitBreakerService := services.NewCircuitBreakerService(
		cfg.CircuitBreakerThreshold,
		cfg.ExternalAPITimeout,
		structuredLogger,
	)

	statsClient := providers.NewStatsClient(
		cfg.FeedBaseURL,
		cfg.TeeTimesURL,
		cfg.TournamentID,
		cfg.SeasonYear,
		cfg.ExternalAPITimeout,
		cfg.FeedRetryAttempts,
		cacheService,
		structuredLogger,
	)

	artifactWriter := export.NewArtifactWriter(cfg.OutputDir, cfg.TournamentID, structuredLogger)
	syncService := services.NewMatchPlaySyncService(
		nil, // no database mirror for one-shot runs
		statsClient,
		artifactWriter,
		circuitBreakerService,
		cfg.TournamentID,
		structuredLogger,
	)

	run, err := syncService.RunExport()
	if err != nil {
		logger.WithService("matchplay-exporter").WithError(err).Error("Export failed")
		os.Exit(1)
	}

	logger.WithService("matchplay-exporter").WithFields(logrus.Fields{
		"export_id":  run.ID,
		"rounds":     run.Rounds,
		"scorecards": run.Scorecards,
	}).Info("Export completed")
}
