package matchplay

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/matchplay-data-service/internal/providers"
)

const teeTimesFixture = `{
	"rounds": [
		{
			"round": "1",
			"groups": [
				{"group_id": "G1", "players": [{"pid": "p1"}, {"pid": "p2"}]},
				{"group_id": "G2", "players": [{"pid": "p3"}, {"pid": "p4"}]}
			]
		},
		{
			"round": "2",
			"groups": [
				{"group_id": "G7", "players": [{"pid": "p1"}, {"pid": "p3"}]}
			]
		}
	]
}`

func loadTeeTimes(t *testing.T) *providers.TeeTimesFeed {
	t.Helper()
	var feed providers.TeeTimesFeed
	require.NoError(t, json.Unmarshal([]byte(teeTimesFixture), &feed))
	return &feed
}

func TestBuildKeyIndex_Lookup(t *testing.T) {
	idx := BuildKeyIndex(loadTeeTimes(t))

	groupID, err := idx.Lookup("1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "G1", groupID)

	groupID, err = idx.Lookup("2", "p3")
	require.NoError(t, err)
	assert.Equal(t, "G7", groupID)
}

func TestKeyIndex_JoinConsistencyAcrossTeammates(t *testing.T) {
	idx := BuildKeyIndex(loadTeeTimes(t))

	// Both players of a pairing must resolve to the same group id.
	first, err := idx.Lookup("1", "p1")
	require.NoError(t, err)
	second, err := idx.Lookup("1", "p2")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKeyIndex_MissingMappingIsFatal(t *testing.T) {
	idx := BuildKeyIndex(loadTeeTimes(t))

	_, err := idx.Lookup("1", "p99")
	require.Error(t, err)

	var joinErr *MissingJoinKeyError
	require.True(t, errors.As(err, &joinErr))
	assert.Equal(t, "group", joinErr.Kind)
	assert.Equal(t, "1-p99", joinErr.Key)
}

func TestKeyIndex_SamePlayerDifferentRounds(t *testing.T) {
	idx := BuildKeyIndex(loadTeeTimes(t))

	round1, err := idx.Lookup("1", "p1")
	require.NoError(t, err)
	round2, err := idx.Lookup("2", "p1")
	require.NoError(t, err)

	assert.Equal(t, "G1", round1)
	assert.Equal(t, "G7", round2)
}

func TestBuildKeyIndex_DuplicateKeysOverwriteSilently(t *testing.T) {
	feed := &providers.TeeTimesFeed{
		Rounds: []providers.TeeTimeRound{
			{
				Round: "1",
				Groups: []providers.TeeTimeGroup{
					{GroupID: "G1", Players: []providers.TeeTimePlayer{{PID: "p1"}}},
					{GroupID: "G2", Players: []providers.TeeTimePlayer{{PID: "p1"}}},
				},
			},
		},
	}

	idx := BuildKeyIndex(feed)
	groupID, err := idx.Lookup("1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "G2", groupID)
}
