package matchplay

import (
	"fmt"

	"github.com/stitts-dev/matchplay-data-service/internal/providers"
)

// KeyIndex maps (roundNumber, playerID) to the tee-time group id.
// Built once from the tee-time feed and read-only afterwards; it is the
// only state shared across match boundaries during an export run.
type KeyIndex map[string]string

func roundPlayerKey(roundNumber, pid string) string {
	return fmt.Sprintf("%s-%s", roundNumber, pid)
}

// BuildKeyIndex walks the tee-time feed's rounds -> groups -> players
// nesting and records one entry per (round, player). Duplicate keys
// overwrite silently; they do not occur in well-formed feeds.
func BuildKeyIndex(feed *providers.TeeTimesFeed) KeyIndex {
	idx := make(KeyIndex)
	for _, round := range feed.Rounds {
		for _, group := range round.Groups {
			for _, player := range group.Players {
				idx[roundPlayerKey(round.Round, player.PID)] = group.GroupID
			}
		}
	}
	return idx
}

// Lookup resolves the group id for a round/player pair. Every player
// appearing in the leaderboard feed must have a tee-time entry, so a
// miss is fatal for the enclosing match.
func (idx KeyIndex) Lookup(roundNumber, pid string) (string, error) {
	key := roundPlayerKey(roundNumber, pid)
	groupID, ok := idx[key]
	if !ok {
		return "", &MissingJoinKeyError{Kind: "group", Key: key}
	}
	return groupID, nil
}
