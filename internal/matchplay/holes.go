package matchplay

import (
	"strconv"

	"github.com/stitts-dev/matchplay-data-service/internal/providers"
)

// ResolveHoles turns a match detail feed's hole-by-hole status into the
// per-hole outcome list used by both outputs. Hole outcomes are
// mirrored across both players in the feed, so only the first player's
// side needs reading. Holes keep the feed's order; they are not
// re-sorted.
//
// holeStatus maps 1 -> first listed player wins, -1 -> second listed
// player wins; any other value (0, missing, unparsable) means halved or
// undecided and yields an empty winner.
func ResolveHoles(detail *providers.MatchDetailFeed, match Match) []Hole {
	if len(detail.Players) == 0 {
		return nil
	}

	first := match.Players[0].PID
	last := match.Players[len(match.Players)-1].PID

	feedHoles := detail.Players[0].Holes
	holes := make([]Hole, 0, len(feedHoles))
	for _, feedHole := range feedHoles {
		var winner string
		switch status, err := strconv.Atoi(feedHole.HoleStatus); {
		case err != nil:
			winner = ""
		case status == 1:
			winner = first
		case status == -1:
			winner = last
		default:
			winner = ""
		}
		holes = append(holes, Hole{
			Hole:        feedHole.SeqNum,
			Winner:      winner,
			ScoreStatus: feedHole.TournStatus,
		})
	}
	return holes
}
