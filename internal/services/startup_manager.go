package services

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/matchplay-data-service/pkg/config"
)

type StartupPhase string

const (
	PhaseStarting       StartupPhase = "starting"
	PhaseCriticalReady  StartupPhase = "critical_ready"
	PhaseBackgroundInit StartupPhase = "background_init"
	PhaseFullyReady     StartupPhase = "fully_ready"
)

// StartupManager sequences service startup: the HTTP surface comes up
// immediately, the initial export and the scheduler run in the
// background so a slow upstream never blocks readiness.
type StartupManager struct {
	phase       StartupPhase
	mu          sync.RWMutex
	logger      *logrus.Logger
	config      *config.Config
	syncService *MatchPlaySyncService
	scheduler   *ExportScheduler
}

func NewStartupManager(cfg *config.Config, logger *logrus.Logger, syncService *MatchPlaySyncService, scheduler *ExportScheduler) *StartupManager {
	return &StartupManager{
		phase:       PhaseStarting,
		logger:      logger,
		config:      cfg,
		syncService: syncService,
		scheduler:   scheduler,
	}
}

// StartCriticalServices marks the service ready to serve traffic.
func (sm *StartupManager) StartCriticalServices() error {
	sm.setPhase(PhaseCriticalReady)
	sm.logger.WithFields(logrus.Fields{
		"component": "startup_manager",
		"phase":     PhaseCriticalReady,
	}).Info("Critical services ready")
	return nil
}

// StartBackgroundInitialization runs the initial export (unless
// skipped) and starts the scheduler.
func (sm *StartupManager) StartBackgroundInitialization() {
	sm.setPhase(PhaseBackgroundInit)

	if sm.config.SkipInitialExport {
		sm.logger.Info("Skipping initial export (SKIP_INITIAL_EXPORT=true)")
	} else {
		started := time.Now()
		if _, err := sm.syncService.RunExport(); err != nil {
			sm.logger.WithError(err).Error("Initial export run failed")
		} else {
			sm.logger.WithField("duration", time.Since(started).String()).Info("Initial export completed")
		}
	}

	if err := sm.scheduler.Start(); err != nil {
		sm.logger.WithError(err).Error("Failed to start export scheduler")
	}

	sm.setPhase(PhaseFullyReady)
	sm.logger.WithFields(logrus.Fields{
		"component": "startup_manager",
		"phase":     PhaseFullyReady,
	}).Info("Background initialization complete")
}

// Phase returns the current startup phase.
func (sm *StartupManager) Phase() StartupPhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.phase
}

// IsReady reports whether the service has passed critical startup.
func (sm *StartupManager) IsReady() bool {
	phase := sm.Phase()
	return phase == PhaseCriticalReady || phase == PhaseBackgroundInit || phase == PhaseFullyReady
}

func (sm *StartupManager) setPhase(phase StartupPhase) {
	sm.mu.Lock()
	sm.phase = phase
	sm.mu.Unlock()
}
