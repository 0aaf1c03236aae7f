package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/stitts-dev/matchplay-data-service/internal/api/handlers"
	"github.com/stitts-dev/matchplay-data-service/internal/export"
	"github.com/stitts-dev/matchplay-data-service/internal/models"
	"github.com/stitts-dev/matchplay-data-service/internal/providers"
	"github.com/stitts-dev/matchplay-data-service/internal/services"
	"github.com/stitts-dev/matchplay-data-service/pkg/config"
	"github.com/stitts-dev/matchplay-data-service/pkg/database"
	"github.com/stitts-dev/matchplay-data-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize structured logger with service context
	structuredLogger := logger.InitLogger("info", cfg.IsDevelopment())
	logger.WithService("matchplay-data-service").WithFields(logrus.Fields{
		"version":     "1.0.0",
		"environment": cfg.Env,
		"port":        cfg.Port,
		"tournament":  cfg.TournamentID,
	}).Info("Starting match-play data service")

	// Setup Gin mode
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the optional leaderboard-mirror database
	var gormDB *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err := database.NewMatchPlayConnection(cfg.DatabaseURL, cfg.IsDevelopment())
		if err != nil {
			logger.WithService("matchplay-data-service").Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.AutoMigrate(&models.MatchRecord{}, &models.ExportRunRecord{}); err != nil {
			logger.WithService("matchplay-data-service").Fatalf("Failed to migrate database: %v", err)
		}
		gormDB = db.DB
	} else {
		logger.WithService("matchplay-data-service").Info("No DATABASE_URL configured, leaderboard mirror disabled")
	}

	// Connect to Redis
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.WithService("matchplay-data-service").Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithService("matchplay-data-service").Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize services
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
		gormDB,
		statsClient,
		artifactWriter,
		circuitBreakerService,
		cfg.TournamentID,
		structuredLogger,
	)

	scheduler := services.NewExportScheduler(cfg.ExportSchedule, syncService, structuredLogger)
	startupManager := services.NewStartupManager(cfg, structuredLogger, syncService, scheduler)

	// Initialize router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Initialize handlers
	matchPlayHandler := handlers.NewMatchPlayHandler(syncService, scheduler, structuredLogger)
	healthHandler := handlers.NewHealthHandler(redisClient, startupManager, structuredLogger)

	// Setup API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/matchplay/export", matchPlayHandler.TriggerExport)
		apiV1.GET("/matchplay/export/last", matchPlayHandler.GetLastRun)
		apiV1.GET("/matchplay/leaderboard", matchPlayHandler.GetLeaderboard)
		apiV1.GET("/matchplay/rounds/:round/matches/:match/scorecard", matchPlayHandler.GetScorecard)
		apiV1.GET("/matchplay/jobs", matchPlayHandler.GetJobs)
	}

	// Health check endpoints
	router.GET("/health", healthHandler.GetHealth)
	router.HEAD("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)
	router.HEAD("/ready", healthHandler.GetReady)

	// Start critical services
	logger.WithService("matchplay-data-service").Info("Starting critical services")
	startupManager.StartCriticalServices()

	// Start background initialization in separate goroutine
	go func() {
		logger.WithService("matchplay-data-service").Info("Starting background initialization")
		startupManager.StartBackgroundInitialization()
	}()

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.WithService("matchplay-data-service").WithField("port", cfg.Port).Info("Match-play data service started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("matchplay-data-service").Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("matchplay-data-service").Info("Shutting down match-play data service...")
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithService("matchplay-data-service").Fatalf("Match-play data service forced to shutdown: %v", err)
	}

	logger.WithService("matchplay-data-service").Info("Match-play data service exited")
}
