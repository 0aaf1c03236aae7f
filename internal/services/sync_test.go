package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/matchplay-data-service/internal/export"
	"github.com/stitts-dev/matchplay-data-service/internal/providers"
)

// stubFeedProvider serves canned feeds for a four-round bracket with
// one match per round and records which detail feeds were requested.
type stubFeedProvider struct {
	detailCalls []string
	failDetail  string // "round-match" that should fail, "" for none
	failFeeds   bool
}

func (s *stubFeedProvider) GetTeeTimes() (*providers.TeeTimesFeed, error) {
	if s.failFeeds {
		return nil, fmt.Errorf("upstream returned status 503")
	}
	rounds := make([]providers.TeeTimeRound, 0, 4)
	for r := 1; r <= 4; r++ {
		rounds = append(rounds, providers.TeeTimeRound{
			Round: fmt.Sprintf("%d", r),
			Groups: []providers.TeeTimeGroup{
				{
					GroupID: fmt.Sprintf("G%d", r),
					Players: []providers.TeeTimePlayer{{PID: "p1"}, {PID: "p2"}},
				},
			},
		})
	}
	return &providers.TeeTimesFeed{Rounds: rounds}, nil
}

func (s *stubFeedProvider) GetLeaderboard() (*providers.LeaderboardFeed, error) {
	rounds := make([]providers.LeaderboardRound, 0, 4)
	for r := 1; r <= 4; r++ {
		rounds = append(rounds, providers.LeaderboardRound{
			RoundNum: fmt.Sprintf("%d", r),
			Brackets: []providers.LeaderboardBracket{
				{
					Groups: []providers.LeaderboardMatch{
						{
							MatchNum: "1",
							PoolNum:  "1",
							Players: []providers.LeaderboardPlayer{
								{PID: "p1", MatchWinner: "Yes", MatchLeader: "Yes", FinalMatchScr: "2&1"},
								{PID: "p2", MatchWinner: "No", MatchLeader: "No", FinalMatchScr: "2&1"},
							},
						},
					},
				},
			},
		})
	}
	return &providers.LeaderboardFeed{Rounds: rounds}, nil
}

func (s *stubFeedProvider) GetMatchDetail(roundNumber, matchNum string) (*providers.MatchDetailFeed, error) {
	key := roundNumber + "-" + matchNum
	s.detailCalls = append(s.detailCalls, key)
	if s.failDetail == key {
		return nil, fmt.Errorf("upstream returned status 404")
	}
	holes := []providers.DetailHole{
		{
			SeqNum: "1", TournStatus: "1 up", HoleStatus: "1",
			Strokes: "4", YdsOfficial: "420", Par: "4",
			Shots: []providers.DetailShot{
				{ShotID: 1, X: "50", Y: "60", Distance: 7200, Left: 400, ShotText: "Drive"},
			},
		},
	}
	return &providers.MatchDetailFeed{
		Course: providers.MatchDetailCourse{CourseName: "Austin Country Club", CourseID: "867"},
		Players: []providers.DetailPlayer{
			{PID: "p1", Holes: holes},
			{PID: "p2", Holes: holes},
		},
	}, nil
}

func newTestSyncService(t *testing.T, provider FeedProvider) (*MatchPlaySyncService, *export.ArtifactWriter) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	writer := export.NewArtifactWriter(t.TempDir(), "470", logger)
	breaker := NewCircuitBreakerService(5, time.Second, logger)
	return NewMatchPlaySyncService(nil, provider, writer, breaker, "470", logger), writer
}

func TestRunExport_PoolRoundsOnly(t *testing.T) {
	provider := &stubFeedProvider{}
	service, writer := newTestSyncService(t, provider)

	run, err := service.RunExport()
	require.NoError(t, err)
	assert.Equal(t, "completed", run.Status)
	assert.Equal(t, 4, run.Rounds)
	assert.Equal(t, 3, run.Scorecards)

	// Detail feeds are fetched for the pool stage only.
	assert.Equal(t, []string{"1-1", "2-1", "3-1"}, provider.detailCalls)

	for _, round := range []string{"1", "2", "3"} {
		_, statErr := os.Stat(writer.ScorecardPath(round, "1"))
		assert.NoError(t, statErr, "round %s scorecard", round)
	}
	_, statErr := os.Stat(writer.ScorecardPath("4", "1"))
	assert.True(t, os.IsNotExist(statErr), "no scorecard for knockout rounds")
}

func TestRunExport_LeaderboardCoversAllRounds(t *testing.T) {
	service, writer := newTestSyncService(t, &stubFeedProvider{})

	_, err := service.RunExport()
	require.NoError(t, err)

	data, err := os.ReadFile(writer.LeaderboardPath())
	require.NoError(t, err)

	rounds, err := export.UnmarshalLeaderboard(data)
	require.NoError(t, err)
	require.Len(t, rounds, 4)

	// Pool rounds carry hole-by-hole outcomes, later rounds do not.
	assert.NotEmpty(t, rounds[0].Matches[0].Holes)
	assert.NotEmpty(t, rounds[2].Matches[0].Holes)
	assert.Empty(t, rounds[3].Matches[0].Holes)
	assert.Equal(t, "G4", rounds[3].Matches[0].GroupID)
	assert.Equal(t, "p1", rounds[0].Matches[0].Winner())
}

func TestRunExport_TracksLastRun(t *testing.T) {
	service, _ := newTestSyncService(t, &stubFeedProvider{})

	assert.Nil(t, service.LastRun())
	assert.Nil(t, service.LastRounds())

	_, err := service.RunExport()
	require.NoError(t, err)

	last := service.LastRun()
	require.NotNil(t, last)
	assert.Equal(t, "completed", last.Status)
	assert.Equal(t, "470", last.TournamentID)
	assert.Len(t, service.LastRounds(), 4)
}

func TestRunExport_DetailFailureAbortsRun(t *testing.T) {
	provider := &stubFeedProvider{failDetail: "2-1"}
	service, writer := newTestSyncService(t, provider)

	run, err := service.RunExport()
	require.Error(t, err)
	assert.Equal(t, "failed", run.Status)
	assert.Contains(t, run.Error, "r2-m1")

	// Later rounds are never fetched and no summary is written.
	assert.Equal(t, []string{"1-1", "2-1"}, provider.detailCalls)
	_, statErr := os.Stat(writer.LeaderboardPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunExport_FeedFailureAbortsRun(t *testing.T) {
	provider := &stubFeedProvider{failFeeds: true}
	service, _ := newTestSyncService(t, provider)

	run, err := service.RunExport()
	require.Error(t, err)
	assert.Equal(t, "failed", run.Status)
	assert.Contains(t, err.Error(), "tee-time feed")
	assert.Empty(t, provider.detailCalls)
}
