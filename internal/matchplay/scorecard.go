package matchplay

import (
	"fmt"
	"math"
	"strconv"

	"github.com/stitts-dev/matchplay-data-service/internal/providers"
)

// BuildPlayerScorecards turns the per-player raw hole/shot arrays of a
// match detail feed into one PlayerScorecard per player, joining the
// geometry index for tee positions and the resolved hole list for hole
// status. All inputs are plain values; the builder performs no I/O.
func BuildPlayerScorecards(detail *providers.MatchDetailFeed, roundNumber string, holes []Hole, geo GeometryIndex, idx KeyIndex) ([]PlayerScorecard, error) {
	scorecards := make([]PlayerScorecard, 0, len(detail.Players))
	for _, player := range detail.Players {
		holeDetails := make([]HoleDetails, 0, len(player.Holes))
		for _, feedHole := range player.Holes {
			details, err := buildHoleDetails(feedHole, roundNumber, holes, geo)
			if err != nil {
				return nil, fmt.Errorf("player %s hole %s: %w", player.PID, feedHole.SeqNum, err)
			}
			holeDetails = append(holeDetails, details)
		}

		groupID, err := idx.Lookup(roundNumber, player.PID)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", player.PID, err)
		}

		scorecards = append(scorecards, PlayerScorecard{
			PID:   player.PID,
			Holes: holes,
			Scorecard: Scorecard{
				CourseName:  detail.Course.CourseName,
				Thru:        UnresolvedString(),
				ScoringType: UnresolvedString(),
				HostCourse:  UnresolvedBool(),
				RoundScorecard: RoundScorecard{
					CurrentRound: false,
					CourseID:     detail.Course.CourseID,
					Round:        roundNumber,
					CurrentHole:  UnresolvedString(),
					GroupID:      groupID,
					Holes:        holeDetails,
				},
			},
		})
	}
	return scorecards, nil
}

// BuildMatchDetails assembles the scorecard artifact root for one
// match from the projected match and its player scorecards.
func BuildMatchDetails(match Match, scorecards []PlayerScorecard) MatchDetails {
	return MatchDetails{
		Leader:           match.Leader(),
		Winner:           match.Winner(),
		MatchStatus:      match.MatchStatus,
		ScoreStatus:      match.ScoreStatus,
		PlayerScorecards: scorecards,
	}
}

func buildHoleDetails(feedHole providers.DetailHole, roundNumber string, holes []Hole, geo GeometryIndex) (HoleDetails, error) {
	status, err := holeStatusFor(feedHole.SeqNum, holes)
	if err != nil {
		return HoleDetails{}, err
	}

	// The running shot position starts at the round's tee coordinate,
	// or the origin when no geometry is known for this hole.
	start := Origin
	if geometry, ok := geo.Lookup(feedHole.SeqNum, roundNumber); ok {
		start = geometry.Tee
	}

	return HoleDetails{
		GIR:        UnresolvedBool(),
		RoundToPar: UnresolvedString(),
		HoleStatus: feedHole.HoleStatus,
		Putts:      UnresolvedString(),
		Strokes:    feedHole.Strokes,
		Yards:      feedHole.YdsOfficial,
		Hole:       feedHole.SeqNum,
		FIR:        UnresolvedBool(),
		Par:        feedHole.Par,
		ToPar:      UnresolvedString(),
		Status:     status,
		PlayByPlay: PlayByPlay{Shots: buildShotChain(feedHole.Shots, start)},
	}, nil
}

// buildShotChain folds over the feed-order shot list with the previous
// landing point as the accumulator: shot[0].from is the tee (or
// origin), every later from is the preceding shot's point.
func buildShotChain(feedShots []providers.DetailShot, start Coordinate) []Shot {
	shots := make([]Shot, 0, len(feedShots))
	previous := start
	for _, feedShot := range feedShots {
		// The detail feed carries no z for landing points.
		point := Coordinate{X: feedShot.X, Y: feedShot.Y, Z: "0"}
		shots = append(shots, Shot{
			Stroke:              strconv.Itoa(feedShot.ShotID),
			From:                previous,
			Point:               point,
			Distance:            strconv.Itoa(feedShot.Distance / 36),
			Cup:                 feedShot.Cup,
			PositionDescription: UnresolvedString(),
			DistToPin:           ConvertInchesToDistance(feedShot.Left),
			Description:         feedShot.ShotText,
			Timestamp:           UnresolvedString(),
			Type:                UnresolvedString(),
		})
		previous = point
	}
	return shots
}

func holeStatusFor(holeNumber string, holes []Hole) (string, error) {
	for _, hole := range holes {
		if hole.Hole == holeNumber {
			return hole.ScoreStatus, nil
		}
	}
	return "", &MissingJoinKeyError{Kind: "hole-status", Key: holeNumber}
}

// ConvertInchesToDistance renders a distance-to-pin in raw inches with
// the tiered format used by the source feed: under a yard as inches
// with a double prime, under ten yards as ceiling feet with a single
// prime, otherwise as whole yards-worth of feet with no suffix.
func ConvertInchesToDistance(inches int) string {
	if inches/36 == 0 {
		return fmt.Sprintf("%d''", inches%36)
	}
	if inches/36 < 10 {
		return fmt.Sprintf("%.1f'", math.Ceil(float64(inches)/12.0))
	}
	return strconv.Itoa(inches / 36)
}
