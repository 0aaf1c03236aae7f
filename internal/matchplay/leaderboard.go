package matchplay

import (
	"fmt"

	"github.com/stitts-dev/matchplay-data-service/internal/providers"
)

// ProjectLeaderboard parses the leaderboard feed into the internal
// round/match/player model. The bracket/group nesting is discarded:
// only the leaf match objects matter, flattened per round in feed
// order. Group ids are resolved against the tee-time KeyIndex using
// each match's first listed player (both players share a group).
func ProjectLeaderboard(feed *providers.LeaderboardFeed, idx KeyIndex) ([]Round, error) {
	rounds := make([]Round, 0, len(feed.Rounds))
	for _, roundFeed := range feed.Rounds {
		round := Round{RoundNumber: roundFeed.RoundNum}
		for _, bracket := range roundFeed.Brackets {
			for _, matchFeed := range bracket.Groups {
				match, err := projectMatch(roundFeed.RoundNum, matchFeed, idx)
				if err != nil {
					return nil, fmt.Errorf("round %s match %s: %w", roundFeed.RoundNum, matchFeed.MatchNum, err)
				}
				round.Matches = append(round.Matches, match)
			}
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

func projectMatch(roundNumber string, matchFeed providers.LeaderboardMatch, idx KeyIndex) (Match, error) {
	if len(matchFeed.Players) == 0 {
		return Match{}, &MissingFieldError{Field: "players", Context: "leaderboard match"}
	}

	players := make([]Player, 0, len(matchFeed.Players))
	for _, playerFeed := range matchFeed.Players {
		players = append(players, Player{
			PID:           playerFeed.PID,
			IsMatchWinner: playerFeed.MatchWinner == "Yes",
			IsLeading:     playerFeed.MatchLeader == "Yes",
			Bio: PlayerBio{
				FirstName: playerFeed.FirstName,
				LastName:  playerFeed.LastName,
				Country:   playerFeed.Country,
				Seed:      playerFeed.Seed,
				Wins:      playerFeed.PoolWins,
				Losses:    playerFeed.PoolLosses,
				Halves:    playerFeed.PoolHalves,
			},
		})
	}

	groupID, err := idx.Lookup(roundNumber, players[0].PID)
	if err != nil {
		return Match{}, err
	}

	// The source feed is historical final data; no live status exists
	// to read, so the match status is the fixed "Complete".
	return Match{
		MatchNum:    matchFeed.MatchNum,
		PoolNumber:  matchFeed.PoolNum,
		GroupID:     groupID,
		ScoreStatus: matchFeed.Players[0].FinalMatchScr,
		MatchStatus: "Complete",
		Players:     players,
	}, nil
}
