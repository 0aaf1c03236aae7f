package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchplay-data-service/internal/services"
	"github.com/stitts-dev/matchplay-data-service/pkg/types"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	redis          *redis.Client
	startupManager *services.StartupManager
	logger         *logrus.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(redis *redis.Client, startupManager *services.StartupManager, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		redis:          redis,
		startupManager: startupManager,
		logger:         logger,
	}
}

// GetHealth returns the basic health status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	response := types.HealthStatus{
		Status:    "ok",
		Service:   "matchplay-data-service",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	// Check Redis connection
	if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
		response.Status = "unhealthy"
		response.Checks["redis"] = "failed: " + err.Error()
	} else {
		response.Checks["redis"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status != "ok" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// GetReady returns the readiness status (includes startup phase)
func (h *HealthHandler) GetReady(c *gin.Context) {
	response := types.HealthStatus{
		Status:    "ready",
		Service:   "matchplay-data-service",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
		response.Status = "not_ready"
		response.Checks["redis"] = "failed: " + err.Error()
	} else {
		response.Checks["redis"] = "ok"
	}

	response.Checks["startup_phase"] = string(h.startupManager.Phase())
	if !h.startupManager.IsReady() {
		response.Status = "not_ready"
	}

	statusCode := http.StatusOK
	if response.Status != "ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
