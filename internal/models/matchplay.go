package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MatchRecord mirrors one projected match into Postgres after an
// export run. The database is an operational convenience for querying
// past runs; the JSON artifacts remain the output contract.
type MatchRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TournamentID string         `gorm:"index;not null" json:"tournament_id"`
	RoundNumber  string         `gorm:"index;not null" json:"round_number"`
	MatchNum     string         `gorm:"not null" json:"match_num"`
	GroupID      string         `gorm:"not null" json:"group_id"`
	PoolNumber   string         `json:"pool_number"`
	ScoreStatus  string         `json:"score_status"`
	MatchStatus  string         `json:"match_status"`
	WinnerPID    string         `json:"winner_pid"`
	PlayerPIDs   pq.StringArray `gorm:"type:text[]" json:"player_pids"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (MatchRecord) TableName() string {
	return "matchplay_matches"
}

// ExportRunRecord tracks one pipeline run per tournament.
type ExportRunRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TournamentID string    `gorm:"index;not null" json:"tournament_id"`
	Status       string    `gorm:"not null" json:"status"`
	Rounds       int       `json:"rounds"`
	Scorecards   int       `json:"scorecards"`
	Error        string    `json:"error,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

// TableName specifies the table name for GORM
func (ExportRunRecord) TableName() string {
	return "matchplay_export_runs"
}
