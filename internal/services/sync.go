package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/stitts-dev/matchplay-data-service/internal/export"
	"github.com/stitts-dev/matchplay-data-service/internal/matchplay"
	"github.com/stitts-dev/matchplay-data-service/internal/models"
	"github.com/stitts-dev/matchplay-data-service/internal/providers"
	"github.com/stitts-dev/matchplay-data-service/pkg/types"
)

// scorecardRounds caps detail fetching at the pool stage: only the
// first three rounds produce per-match scorecard artifacts. Later
// rounds still appear in the leaderboard summary.
const scorecardRounds = 3

// FeedProvider is the slice of the stats client the sync service needs.
type FeedProvider interface {
	GetTeeTimes() (*providers.TeeTimesFeed, error)
	GetLeaderboard() (*providers.LeaderboardFeed, error)
	GetMatchDetail(roundNumber, matchNum string) (*providers.MatchDetailFeed, error)
}

// MatchPlaySyncService runs the full export pipeline: tee times ->
// key index -> leaderboard -> per-match detail -> scorecard artifacts
// -> leaderboard summary artifact. Strictly sequential; a failure on
// any match aborts the run.
type MatchPlaySyncService struct {
	db             *gorm.DB // optional; mirror skipped when nil
	provider       FeedProvider
	writer         *export.ArtifactWriter
	circuitBreaker *CircuitBreakerService
	logger         *logrus.Logger
	tournamentID   string

	mu         sync.RWMutex
	lastRun    *types.ExportRun
	lastRounds []matchplay.Round
}

func NewMatchPlaySyncService(db *gorm.DB, provider FeedProvider, writer *export.ArtifactWriter, circuitBreaker *CircuitBreakerService, tournamentID string, logger *logrus.Logger) *MatchPlaySyncService {
	return &MatchPlaySyncService{
		db:             db,
		provider:       provider,
		writer:         writer,
		circuitBreaker: circuitBreaker,
		logger:         logger,
		tournamentID:   tournamentID,
	}
}

// RunExport performs one complete, sequential export pass.
func (s *MatchPlaySyncService) RunExport() (*types.ExportRun, error) {
	run := &types.ExportRun{
		ID:           uuid.New().String(),
		TournamentID: s.tournamentID,
		StartedAt:    time.Now(),
		Status:       "running",
	}
	s.logger.WithFields(logrus.Fields{
		"export_id":  run.ID,
		"tournament": s.tournamentID,
	}).Info("Starting match-play export run")

	rounds, err := s.runPipeline(run)
	run.FinishedAt = time.Now()
	if err != nil {
		run.Status = "failed"
		run.Error = err.Error()
		s.recordRun(run, nil)
		return run, err
	}

	run.Status = "completed"
	s.recordRun(run, rounds)

	s.logger.WithFields(logrus.Fields{
		"export_id":  run.ID,
		"rounds":     run.Rounds,
		"scorecards": run.Scorecards,
		"duration":   run.FinishedAt.Sub(run.StartedAt).String(),
	}).Info("Match-play export run completed")
	return run, nil
}

func (s *MatchPlaySyncService) runPipeline(run *types.ExportRun) ([]matchplay.Round, error) {
	teeTimes, err := s.fetchTeeTimes()
	if err != nil {
		return nil, err
	}
	keyIndex := matchplay.BuildKeyIndex(teeTimes)

	leaderboardFeed, err := s.fetchLeaderboard()
	if err != nil {
		return nil, err
	}

	rounds, err := matchplay.ProjectLeaderboard(leaderboardFeed, keyIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to project leaderboard: %w", err)
	}
	run.Rounds = len(rounds)

	// Pool-stage rounds only: fetch detail, enrich holes, write one
	// scorecard artifact per match. Matches are processed in feed
	// order with no concurrency; the key index is the only state
	// shared across match boundaries.
	for ri := range rounds {
		if ri >= scorecardRounds {
			break
		}
		round := &rounds[ri]
		for mi := range round.Matches {
			match := &round.Matches[mi]
			if err := s.exportMatch(round.RoundNumber, match, keyIndex); err != nil {
				return nil, err
			}
			run.Scorecards++
		}
	}

	leaderboardJSON, err := export.MarshalLeaderboard(rounds)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize leaderboard: %w", err)
	}
	if err := s.writer.WriteLeaderboard(leaderboardJSON); err != nil {
		return nil, err
	}

	s.persistLeaderboard(rounds)
	return rounds, nil
}

// exportMatch fetches one match's detail feed and writes its scorecard
// artifact, enriching the match's hole list in place.
func (s *MatchPlaySyncService) exportMatch(roundNumber string, match *matchplay.Match, keyIndex matchplay.KeyIndex) error {
	detail, err := s.fetchMatchDetail(roundNumber, match.MatchNum)
	if err != nil {
		return err
	}

	holes := matchplay.ResolveHoles(detail, *match)
	geometry := matchplay.BuildGeometryIndex(detail.Course)

	scorecards, err := matchplay.BuildPlayerScorecards(detail, roundNumber, holes, geometry, keyIndex)
	if err != nil {
		return fmt.Errorf("round %s match %s: %w", roundNumber, match.MatchNum, err)
	}

	match.Holes = holes
	details := matchplay.BuildMatchDetails(*match, scorecards)

	data, err := export.MarshalScorecard(details)
	if err != nil {
		return fmt.Errorf("failed to serialize scorecard r%s-m%s: %w", roundNumber, match.MatchNum, err)
	}
	return s.writer.WriteScorecard(roundNumber, match.MatchNum, data)
}

func (s *MatchPlaySyncService) fetchTeeTimes() (*providers.TeeTimesFeed, error) {
	result, err := s.circuitBreaker.Execute("teetimes", func() (interface{}, error) {
		return s.provider.GetTeeTimes()
	})
	if err != nil {
		return nil, fmt.Errorf("tee-time feed: %w", err)
	}
	return result.(*providers.TeeTimesFeed), nil
}

func (s *MatchPlaySyncService) fetchLeaderboard() (*providers.LeaderboardFeed, error) {
	result, err := s.circuitBreaker.Execute("statdata", func() (interface{}, error) {
		return s.provider.GetLeaderboard()
	})
	if err != nil {
		return nil, fmt.Errorf("leaderboard feed: %w", err)
	}
	return result.(*providers.LeaderboardFeed), nil
}

func (s *MatchPlaySyncService) fetchMatchDetail(roundNumber, matchNum string) (*providers.MatchDetailFeed, error) {
	result, err := s.circuitBreaker.Execute("statdata", func() (interface{}, error) {
		return s.provider.GetMatchDetail(roundNumber, matchNum)
	})
	if err != nil {
		return nil, fmt.Errorf("match detail feed r%s-m%s: %w", roundNumber, matchNum, err)
	}
	return result.(*providers.MatchDetailFeed), nil
}

// persistLeaderboard mirrors the projected matches into Postgres when a
// database is configured. Failures are logged, not fatal: the JSON
// artifacts are the output contract.
func (s *MatchPlaySyncService) persistLeaderboard(rounds []matchplay.Round) {
	if s.db == nil {
		s.logger.Debug("Skipping database mirror - no database configured")
		return
	}

	saved := 0
	for _, round := range rounds {
		for _, match := range round.Matches {
			pids := make([]string, 0, len(match.Players))
			for _, player := range match.Players {
				pids = append(pids, player.PID)
			}

			var existing models.MatchRecord
			err := s.db.Where("tournament_id = ? AND round_number = ? AND match_num = ?",
				s.tournamentID, round.RoundNumber, match.MatchNum).First(&existing).Error
			if err == nil {
				existing.GroupID = match.GroupID
				existing.PoolNumber = match.PoolNumber
				existing.ScoreStatus = match.ScoreStatus
				existing.MatchStatus = match.MatchStatus
				existing.WinnerPID = match.Winner()
				existing.PlayerPIDs = pids
				if err := s.db.Save(&existing).Error; err != nil {
					s.logger.WithError(err).Warn("Failed to update match record")
					continue
				}
			} else {
				record := models.MatchRecord{
					TournamentID: s.tournamentID,
					RoundNumber:  round.RoundNumber,
					MatchNum:     match.MatchNum,
					GroupID:      match.GroupID,
					PoolNumber:   match.PoolNumber,
					ScoreStatus:  match.ScoreStatus,
					MatchStatus:  match.MatchStatus,
					WinnerPID:    match.Winner(),
					PlayerPIDs:   pids,
				}
				if err := s.db.Create(&record).Error; err != nil {
					s.logger.WithError(err).Warn("Failed to create match record")
					continue
				}
			}
			saved++
		}
	}
	s.logger.WithField("matches", saved).Info("Mirrored leaderboard to database")
}

// recordRun stores the run outcome for the API and, when a database is
// configured, persists it.
func (s *MatchPlaySyncService) recordRun(run *types.ExportRun, rounds []matchplay.Round) {
	s.mu.Lock()
	s.lastRun = run
	if rounds != nil {
		s.lastRounds = rounds
	}
	s.mu.Unlock()

	if s.db == nil {
		return
	}
	record := models.ExportRunRecord{
		TournamentID: run.TournamentID,
		Status:       run.Status,
		Rounds:       run.Rounds,
		Scorecards:   run.Scorecards,
		Error:        run.Error,
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
	}
	if err := s.db.Create(&record).Error; err != nil {
		s.logger.WithError(err).Warn("Failed to persist export run record")
	}
}

// LastRun returns the most recent run outcome, or nil before the first.
func (s *MatchPlaySyncService) LastRun() *types.ExportRun {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// LastRounds returns the most recently projected rounds.
func (s *MatchPlaySyncService) LastRounds() []matchplay.Round {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRounds
}

// ScorecardPath exposes the writer's artifact layout to the API layer.
func (s *MatchPlaySyncService) ScorecardPath(roundNumber, matchNum string) string {
	return s.writer.ScorecardPath(roundNumber, matchNum)
}
