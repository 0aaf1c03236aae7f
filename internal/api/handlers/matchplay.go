package handlers

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchplay-data-service/internal/export"
	"github.com/stitts-dev/matchplay-data-service/internal/services"
	"github.com/stitts-dev/matchplay-data-service/internal/utils"
)

// MatchPlayHandler exposes the export pipeline and its artifacts.
type MatchPlayHandler struct {
	syncService *services.MatchPlaySyncService
	scheduler   *services.ExportScheduler
	logger      *logrus.Logger
}

// NewMatchPlayHandler creates a new match-play handler
func NewMatchPlayHandler(syncService *services.MatchPlaySyncService, scheduler *services.ExportScheduler, logger *logrus.Logger) *MatchPlayHandler {
	return &MatchPlayHandler{
		syncService: syncService,
		scheduler:   scheduler,
		logger:      logger,
	}
}

// TriggerExport runs a full export pass and returns the run summary.
// The pipeline is sequential; the request blocks until it finishes.
func (h *MatchPlayHandler) TriggerExport(c *gin.Context) {
	run, err := h.syncService.RunExport()
	if err != nil {
		h.logger.WithError(err).Error("Export run failed")
		utils.SendInternalError(c, err.Error())
		return
	}
	utils.SendSuccessWithMessage(c, run, "export completed")
}

// GetLastRun returns the most recent export run summary.
func (h *MatchPlayHandler) GetLastRun(c *gin.Context) {
	run := h.syncService.LastRun()
	if run == nil {
		utils.SendNotFound(c, "no export run recorded yet")
		return
	}
	utils.SendSuccess(c, run)
}

// GetLeaderboard serves the round-by-round leaderboard summary from the
// most recent run.
func (h *MatchPlayHandler) GetLeaderboard(c *gin.Context) {
	rounds := h.syncService.LastRounds()
	if rounds == nil {
		utils.SendNotFound(c, "no leaderboard available, trigger an export first")
		return
	}
	data, err := export.MarshalLeaderboard(rounds)
	if err != nil {
		utils.SendInternalError(c, err.Error())
		return
	}
	c.Data(200, "application/json", data)
}

// GetScorecard serves one match's scorecard artifact.
func (h *MatchPlayHandler) GetScorecard(c *gin.Context) {
	roundNumber := c.Param("round")
	matchNum := c.Param("match")
	if roundNumber == "" || matchNum == "" {
		utils.SendBadRequest(c, "round and match are required")
		return
	}

	data, err := os.ReadFile(h.syncService.ScorecardPath(roundNumber, matchNum))
	if err != nil {
		if os.IsNotExist(err) {
			utils.SendNotFound(c, "no scorecard artifact for this match")
			return
		}
		utils.SendInternalError(c, err.Error())
		return
	}
	c.Data(200, "application/json", data)
}

// GetJobs returns scheduler job bookkeeping.
func (h *MatchPlayHandler) GetJobs(c *gin.Context) {
	utils.SendSuccess(c, h.scheduler.Jobs())
}
