package types

import (
	"context"
	"time"
)

// HealthStatus represents the health status of a service
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// CacheProvider defines the interface for caching services
type CacheProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) bool
	// Convenience methods for callers without a request context
	SetSimple(key string, value interface{}, expiration time.Duration) error
	GetSimple(key string, dest interface{}) error
}

// ExportRun records one pass of the full feed export pipeline
type ExportRun struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournament_id"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	Rounds       int       `json:"rounds"`
	Scorecards   int       `json:"scorecards"`
	Status       string    `json:"status"`
	Error        string    `json:"error,omitempty"`
}
