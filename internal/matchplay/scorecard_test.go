package matchplay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/matchplay-data-service/internal/providers"
)

func TestConvertInchesToDistance(t *testing.T) {
	cases := []struct {
		inches   int
		expected string
	}{
		{0, "0''"},
		{10, "10''"},
		{35, "35''"},
		{36, "3.0'"},
		{100, "9.0'"},
		{121, "11.0'"},
		{359, "30.0'"},
		{360, "10"},
		{400, "11"},
		{7200, "200"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, ConvertInchesToDistance(tc.inches), "inches=%d", tc.inches)
	}
}

func scorecardDetail() *providers.MatchDetailFeed {
	shots := []providers.DetailShot{
		{ShotID: 1, X: "50", Y: "60", Distance: 7200, Left: 400, ShotText: "Drive down the middle"},
		{ShotID: 2, X: "70", Y: "80", Distance: 396, Left: 100, ShotText: "Approach to the green"},
		{ShotID: 3, X: "71", Y: "81", Distance: 100, Left: 0, Cup: true, ShotText: "Holed putt"},
	}
	holes := []providers.DetailHole{
		{SeqNum: "1", TournStatus: "1 up", HoleStatus: "1", Strokes: "3", YdsOfficial: "420", Par: "4", Shots: shots},
		{SeqNum: "2", TournStatus: "1 up", HoleStatus: "0", Strokes: "4", YdsOfficial: "185", Par: "3"},
	}
	return &providers.MatchDetailFeed{
		Course: providers.MatchDetailCourse{
			CourseName: "Austin Country Club",
			CourseID:   "867",
			Holes: []providers.CourseHole{
				{
					HoleID: "1",
					Rounds: []providers.CourseHoleRnd{
						{RoundNum: "1", TeeX: "10", TeeY: "20", TeeZ: "5", PinX: "90", PinY: "95", PinZ: "0"},
					},
				},
			},
		},
		Players: []providers.DetailPlayer{
			{PID: "p1", Holes: holes},
			{PID: "p2", Holes: holes},
		},
	}
}

func buildScorecardsForTest(t *testing.T) []PlayerScorecard {
	t.Helper()
	detail := scorecardDetail()
	match := twoPlayerMatch()
	holes := ResolveHoles(detail, match)
	geo := BuildGeometryIndex(detail.Course)
	idx := BuildKeyIndex(loadTeeTimes(t))

	scorecards, err := BuildPlayerScorecards(detail, "1", holes, geo, idx)
	require.NoError(t, err)
	return scorecards
}

func TestBuildPlayerScorecards_OnePerPlayer(t *testing.T) {
	scorecards := buildScorecardsForTest(t)
	require.Len(t, scorecards, 2)

	assert.Equal(t, "p1", scorecards[0].PID)
	assert.Equal(t, "p2", scorecards[1].PID)
	for _, card := range scorecards {
		assert.Equal(t, "Austin Country Club", card.Scorecard.CourseName)
		assert.Equal(t, "867", card.Scorecard.RoundScorecard.CourseID)
		assert.Equal(t, "1", card.Scorecard.RoundScorecard.Round)
		assert.Equal(t, "G1", card.Scorecard.RoundScorecard.GroupID)
		assert.Len(t, card.Scorecard.RoundScorecard.Holes, 2)
	}
}

func TestBuildPlayerScorecards_ShotChain(t *testing.T) {
	scorecards := buildScorecardsForTest(t)
	shots := scorecards[0].Scorecard.RoundScorecard.Holes[0].PlayByPlay.Shots
	require.Len(t, shots, 3)

	// First shot starts at the round-1 tee for hole 1.
	assert.Equal(t, Coordinate{X: "10", Y: "20", Z: "5"}, shots[0].From)

	// Every later shot starts where the previous one landed.
	for i := 1; i < len(shots); i++ {
		assert.Equal(t, shots[i-1].Point, shots[i].From, "shot %d", i+1)
	}

	// Landing points carry the feed x/y with a zero z.
	assert.Equal(t, Coordinate{X: "50", Y: "60", Z: "0"}, shots[0].Point)
	assert.Equal(t, "1", shots[0].Stroke)
	assert.Equal(t, "200", shots[0].Distance)
	assert.Equal(t, "11", shots[0].DistToPin)
	assert.Equal(t, "9.0'", shots[1].DistToPin)
	assert.Equal(t, "0''", shots[2].DistToPin)
	assert.True(t, shots[2].Cup)
	assert.Equal(t, "Holed putt", shots[2].Description)
}

func TestBuildPlayerScorecards_OriginWhenGeometryMissing(t *testing.T) {
	scorecards := buildScorecardsForTest(t)

	// Hole 2 has no course geometry; the chain would start at the
	// origin, but this hole has no shots so only the status matters.
	hole2 := scorecards[0].Scorecard.RoundScorecard.Holes[1]
	assert.Empty(t, hole2.PlayByPlay.Shots)
	assert.Equal(t, "0", hole2.HoleStatus)

	detail := scorecardDetail()
	detail.Course.Holes = nil
	match := twoPlayerMatch()
	holes := ResolveHoles(detail, match)
	idx := BuildKeyIndex(loadTeeTimes(t))

	cards, err := BuildPlayerScorecards(detail, "1", holes, GeometryIndex{}, idx)
	require.NoError(t, err)
	shots := cards[0].Scorecard.RoundScorecard.Holes[0].PlayByPlay.Shots
	require.NotEmpty(t, shots)
	assert.Equal(t, Origin, shots[0].From)
}

func TestBuildPlayerScorecards_HoleFields(t *testing.T) {
	scorecards := buildScorecardsForTest(t)
	hole := scorecards[0].Scorecard.RoundScorecard.Holes[0]

	assert.Equal(t, "1", hole.Hole)
	assert.Equal(t, "1", hole.HoleStatus)
	assert.Equal(t, "3", hole.Strokes)
	assert.Equal(t, "420", hole.Yards)
	assert.Equal(t, "4", hole.Par)
	assert.Equal(t, "1 up", hole.Status)

	// Fields with no feed source stay unresolved rather than carrying
	// placeholder values.
	assert.False(t, hole.GIR.Known)
	assert.False(t, hole.Putts.Known)
	assert.False(t, hole.ToPar.Known)
	assert.False(t, scorecards[0].Scorecard.Thru.Known)
	assert.False(t, scorecards[0].Scorecard.HostCourse.Known)
}

func TestBuildPlayerScorecards_MissingHoleStatusFails(t *testing.T) {
	detail := scorecardDetail()
	idx := BuildKeyIndex(loadTeeTimes(t))

	// A hole list missing the feed's hole ids cannot be joined.
	_, err := BuildPlayerScorecards(detail, "1", []Hole{{Hole: "99"}}, GeometryIndex{}, idx)
	require.Error(t, err)

	var joinErr *MissingJoinKeyError
	require.True(t, errors.As(err, &joinErr))
	assert.Equal(t, "hole-status", joinErr.Kind)
}

func TestBuildPlayerScorecards_UnknownPlayerFails(t *testing.T) {
	detail := scorecardDetail()
	detail.Players[0].PID = "p99"
	match := twoPlayerMatch()
	holes := ResolveHoles(detail, match)
	idx := BuildKeyIndex(loadTeeTimes(t))

	_, err := BuildPlayerScorecards(detail, "1", holes, GeometryIndex{}, idx)
	require.Error(t, err)

	var joinErr *MissingJoinKeyError
	require.True(t, errors.As(err, &joinErr))
	assert.Equal(t, "group", joinErr.Kind)
}

func TestBuildMatchDetails(t *testing.T) {
	match := Match{
		MatchNum:    "1",
		ScoreStatus: "2&1",
		MatchStatus: "Complete",
		Players: []Player{
			{PID: "p1", IsMatchWinner: true, IsLeading: true},
			{PID: "p2"},
		},
	}
	scorecards := []PlayerScorecard{{PID: "p1"}, {PID: "p2"}}

	details := BuildMatchDetails(match, scorecards)
	assert.Equal(t, "p1", details.Leader)
	assert.Equal(t, "p1", details.Winner)
	assert.Equal(t, "Complete", details.MatchStatus)
	assert.Equal(t, "2&1", details.ScoreStatus)
	assert.Equal(t, scorecards, details.PlayerScorecards)
}
