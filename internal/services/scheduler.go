package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ExportScheduler re-runs the export pipeline on a cron schedule.
type ExportScheduler struct {
	logger      *logrus.Logger
	cron        *cron.Cron
	syncService *MatchPlaySyncService
	schedule    string

	mu        sync.RWMutex
	jobs      map[string]JobInfo
	isRunning bool
}

// JobInfo represents information about a scheduled job
type JobInfo struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Schedule   string        `json:"schedule"`
	LastRun    time.Time     `json:"last_run"`
	NextRun    time.Time     `json:"next_run"`
	Status     string        `json:"status"`
	RunCount   int           `json:"run_count"`
	ErrorCount int           `json:"error_count"`
	LastError  string        `json:"last_error,omitempty"`
	Duration   time.Duration `json:"duration"`
	IsEnabled  bool          `json:"is_enabled"`
}

// NewExportScheduler creates a scheduler. schedule may be empty, in
// which case Start is a no-op and exports run only on demand.
func NewExportScheduler(schedule string, syncService *MatchPlaySyncService, logger *logrus.Logger) *ExportScheduler {
	cronLogger := cron.VerbosePrintfLogger(logger)
	return &ExportScheduler{
		logger:      logger,
		cron:        cron.New(cron.WithLogger(cronLogger)),
		syncService: syncService,
		schedule:    schedule,
		jobs:        make(map[string]JobInfo),
	}
}

// Start schedules the export job and starts the cron loop.
func (es *ExportScheduler) Start() error {
	es.mu.Lock()
	defer es.mu.Unlock()

	if es.isRunning {
		return fmt.Errorf("export scheduler is already running")
	}
	if es.schedule == "" {
		es.logger.WithField("component", "scheduler").Info("No export schedule configured, running on demand only")
		return nil
	}

	if err := es.addJob("matchplay_export", es.schedule, "Match-play export", es.runExport); err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}

	es.cron.Start()
	es.isRunning = true

	es.logger.WithFields(logrus.Fields{
		"component": "scheduler",
		"schedule":  es.schedule,
	}).Info("Export scheduler started")
	return nil
}

// Stop halts the cron loop.
func (es *ExportScheduler) Stop() {
	es.mu.Lock()
	defer es.mu.Unlock()
	if !es.isRunning {
		return
	}
	es.cron.Stop()
	es.isRunning = false
	es.logger.WithField("component", "scheduler").Info("Export scheduler stopped")
}

// Jobs returns a snapshot of scheduled job bookkeeping.
func (es *ExportScheduler) Jobs() []JobInfo {
	es.mu.RLock()
	defer es.mu.RUnlock()
	jobs := make([]JobInfo, 0, len(es.jobs))
	for _, job := range es.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

func (es *ExportScheduler) addJob(id, schedule, name string, jobFunc func()) error {
	entryID, err := es.cron.AddFunc(schedule, func() {
		es.runJob(id, jobFunc)
	})
	if err != nil {
		return fmt.Errorf("failed to add job %s: %w", id, err)
	}

	var nextRun time.Time
	for _, entry := range es.cron.Entries() {
		if entry.ID == entryID {
			nextRun = entry.Next
			break
		}
	}

	es.jobs[id] = JobInfo{
		ID:        id,
		Name:      name,
		Schedule:  schedule,
		NextRun:   nextRun,
		Status:    "scheduled",
		IsEnabled: true,
	}

	es.logger.WithFields(logrus.Fields{
		"component": "scheduler",
		"job_id":    id,
		"schedule":  schedule,
		"next_run":  nextRun,
	}).Info("Scheduled job added")
	return nil
}

func (es *ExportScheduler) runJob(id string, jobFunc func()) {
	es.mu.Lock()
	job, exists := es.jobs[id]
	if !exists || !job.IsEnabled {
		es.mu.Unlock()
		return
	}
	job.Status = "running"
	job.LastRun = time.Now()
	job.RunCount++
	es.jobs[id] = job
	es.mu.Unlock()

	started := time.Now()
	jobFunc()

	es.mu.Lock()
	job = es.jobs[id]
	job.Status = "idle"
	job.Duration = time.Since(started)
	es.jobs[id] = job
	es.mu.Unlock()
}

func (es *ExportScheduler) runExport() {
	if _, err := es.syncService.RunExport(); err != nil {
		es.logger.WithError(err).Error("Scheduled export run failed")
		es.mu.Lock()
		job := es.jobs["matchplay_export"]
		job.ErrorCount++
		job.LastError = err.Error()
		es.jobs["matchplay_export"] = job
		es.mu.Unlock()
	}
}
