package export

import (
	"encoding/json"

	"github.com/stitts-dev/matchplay-data-service/internal/matchplay"
)

// External JSON vocabulary for the two output artifacts. Field order
// and snake_case naming must be reproduced exactly for consumer
// compatibility; the structs below are the single source of that
// ordering.

// scorecardFormatTag is the fixed format marker emitted on every
// scorecard artifact.
const scorecardFormatTag = "FCS"

type leaderboardRoundJSON struct {
	Round   string                 `json:"round"`
	Matches []leaderboardMatchJSON `json:"matches"`
}

type leaderboardMatchJSON struct {
	Match       string                  `json:"match"`
	GroupID     string                  `json:"group_id"`
	PoolNumber  string                  `json:"pool_number"`
	ScoreStatus string                  `json:"score_status"`
	MatchStatus string                  `json:"match_status"`
	Players     []leaderboardPlayerJSON `json:"players"`
	Holes       []holeSummaryJSON       `json:"holes"`
}

type leaderboardPlayerJSON struct {
	PID           string        `json:"pid"`
	IsMatchWinner bool          `json:"is_match_winner"`
	IsLeading     bool          `json:"is_leading"`
	PlayerBio     playerBioJSON `json:"player_bio"`
}

type playerBioJSON struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Country   string `json:"country"`
	Seed      string `json:"seed"`
	Wins      string `json:"wins"`
	Losses    string `json:"losses"`
	Halves    string `json:"halves"`
}

type holeSummaryJSON struct {
	Hole        string `json:"hole"`
	Winner      string `json:"winner"`
	ScoreStatus string `json:"score_status"`
}

type matchDetailsJSON struct {
	Leader      string                `json:"leader"`
	MatchStatus string                `json:"match_status"`
	Format      string                `json:"format"`
	Scorecards  []playerScorecardJSON `json:"scorecards"`
}

type playerScorecardJSON struct {
	Holes     []holeSummaryJSON `json:"holes"`
	PID       string            `json:"pid"`
	Scorecard scorecardJSON     `json:"scorecard"`
}

type scorecardJSON struct {
	RoundScorecard roundScorecardJSON       `json:"round_scorecard"`
	CourseName     string                   `json:"course_name"`
	Thru           matchplay.OptionalString `json:"thru"`
	ScoringType    matchplay.OptionalString `json:"scoring_type"`
	HostCourse     matchplay.OptionalBool   `json:"host_course"`
}

type roundScorecardJSON struct {
	CurrentRound bool                     `json:"current_round"`
	Round        string                   `json:"round"`
	CourseID     string                   `json:"course_id"`
	CurrentHole  matchplay.OptionalString `json:"current_hole"`
	GroupID      string                   `json:"group_id"`
	Holes        []holeDetailsJSON        `json:"holes"`
}

type holeDetailsJSON struct {
	GIR        matchplay.OptionalBool   `json:"gir"`
	RoundToPar matchplay.OptionalString `json:"round_to_par"`
	HoleStatus string                   `json:"hole_status"`
	Putts      matchplay.OptionalString `json:"putts"`
	Strokes    string                   `json:"strokes"`
	PlayByPlay playByPlayJSON           `json:"pbp"`
	Yards      string                   `json:"yards"`
	Hole       string                   `json:"hole"`
	FIR        matchplay.OptionalBool   `json:"fir"`
	Par        string                   `json:"par"`
	ToPar      matchplay.OptionalString `json:"to_par"`
	Status     string                   `json:"status"`
}

type playByPlayJSON struct {
	Shots []shotJSON `json:"shots"`
}

type shotJSON struct {
	Stroke              string                   `json:"stroke"`
	Distance            string                   `json:"distance"`
	From                coordinateJSON           `json:"from"`
	Point               coordinateJSON           `json:"point"`
	Cup                 bool                     `json:"cup"`
	PositionDescription matchplay.OptionalString `json:"position_description"`
	DistToPin           string                   `json:"dist_to_pin"`
	Description         string                   `json:"description"`
	Timestamp           matchplay.OptionalString `json:"timestamp"`
	Type                matchplay.OptionalString `json:"type"`
}

type coordinateJSON struct {
	X string `json:"x"`
	Y string `json:"y"`
	Z string `json:"z"`
}

// MarshalLeaderboard projects the round/match model into the
// leaderboard summary JSON, pretty-printed with stable key order.
func MarshalLeaderboard(rounds []matchplay.Round) ([]byte, error) {
	out := make([]leaderboardRoundJSON, 0, len(rounds))
	for _, round := range rounds {
		matches := make([]leaderboardMatchJSON, 0, len(round.Matches))
		for _, match := range round.Matches {
			matches = append(matches, toMatchJSON(match))
		}
		out = append(out, leaderboardRoundJSON{Round: round.RoundNumber, Matches: matches})
	}
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalLeaderboard re-parses a leaderboard artifact back into the
// internal model. Serializing and re-parsing is lossless; tests rely on
// it as the schema-stability check.
func UnmarshalLeaderboard(data []byte) ([]matchplay.Round, error) {
	var parsed []leaderboardRoundJSON
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	rounds := make([]matchplay.Round, 0, len(parsed))
	for _, roundJSON := range parsed {
		round := matchplay.Round{RoundNumber: roundJSON.Round}
		for _, matchJSON := range roundJSON.Matches {
			round.Matches = append(round.Matches, fromMatchJSON(matchJSON))
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

// MarshalScorecard projects one match's scorecard artifact, pretty
// printed with stable key order.
func MarshalScorecard(details matchplay.MatchDetails) ([]byte, error) {
	scorecards := make([]playerScorecardJSON, 0, len(details.PlayerScorecards))
	for _, scorecard := range details.PlayerScorecards {
		scorecards = append(scorecards, toPlayerScorecardJSON(scorecard))
	}
	out := matchDetailsJSON{
		Leader:      details.Leader,
		MatchStatus: details.MatchStatus,
		Format:      scorecardFormatTag,
		Scorecards:  scorecards,
	}
	return json.MarshalIndent(out, "", "  ")
}

func toMatchJSON(match matchplay.Match) leaderboardMatchJSON {
	players := make([]leaderboardPlayerJSON, 0, len(match.Players))
	for _, player := range match.Players {
		players = append(players, leaderboardPlayerJSON{
			PID:           player.PID,
			IsMatchWinner: player.IsMatchWinner,
			IsLeading:     player.IsLeading,
			PlayerBio: playerBioJSON{
				FirstName: player.Bio.FirstName,
				LastName:  player.Bio.LastName,
				Country:   player.Bio.Country,
				Seed:      player.Bio.Seed,
				Wins:      player.Bio.Wins,
				Losses:    player.Bio.Losses,
				Halves:    player.Bio.Halves,
			},
		})
	}
	return leaderboardMatchJSON{
		Match:       match.MatchNum,
		GroupID:     match.GroupID,
		PoolNumber:  match.PoolNumber,
		ScoreStatus: match.ScoreStatus,
		MatchStatus: match.MatchStatus,
		Players:     players,
		Holes:       toHoleSummaries(match.Holes),
	}
}

func fromMatchJSON(matchJSON leaderboardMatchJSON) matchplay.Match {
	players := make([]matchplay.Player, 0, len(matchJSON.Players))
	for _, playerJSON := range matchJSON.Players {
		players = append(players, matchplay.Player{
			PID:           playerJSON.PID,
			IsMatchWinner: playerJSON.IsMatchWinner,
			IsLeading:     playerJSON.IsLeading,
			Bio: matchplay.PlayerBio{
				FirstName: playerJSON.PlayerBio.FirstName,
				LastName:  playerJSON.PlayerBio.LastName,
				Country:   playerJSON.PlayerBio.Country,
				Seed:      playerJSON.PlayerBio.Seed,
				Wins:      playerJSON.PlayerBio.Wins,
				Losses:    playerJSON.PlayerBio.Losses,
				Halves:    playerJSON.PlayerBio.Halves,
			},
		})
	}
	match := matchplay.Match{
		MatchNum:    matchJSON.Match,
		GroupID:     matchJSON.GroupID,
		PoolNumber:  matchJSON.PoolNumber,
		ScoreStatus: matchJSON.ScoreStatus,
		MatchStatus: matchJSON.MatchStatus,
		Players:     players,
	}
	for _, holeJSON := range matchJSON.Holes {
		match.Holes = append(match.Holes, matchplay.Hole{
			Hole:        holeJSON.Hole,
			Winner:      holeJSON.Winner,
			ScoreStatus: holeJSON.ScoreStatus,
		})
	}
	return match
}

func toHoleSummaries(holes []matchplay.Hole) []holeSummaryJSON {
	out := make([]holeSummaryJSON, 0, len(holes))
	for _, hole := range holes {
		out = append(out, holeSummaryJSON{
			Hole:        hole.Hole,
			Winner:      hole.Winner,
			ScoreStatus: hole.ScoreStatus,
		})
	}
	return out
}

func toPlayerScorecardJSON(scorecard matchplay.PlayerScorecard) playerScorecardJSON {
	holes := make([]holeDetailsJSON, 0, len(scorecard.Scorecard.RoundScorecard.Holes))
	for _, hole := range scorecard.Scorecard.RoundScorecard.Holes {
		holes = append(holes, toHoleDetailsJSON(hole))
	}
	return playerScorecardJSON{
		Holes: toHoleSummaries(scorecard.Holes),
		PID:   scorecard.PID,
		Scorecard: scorecardJSON{
			RoundScorecard: roundScorecardJSON{
				CurrentRound: scorecard.Scorecard.RoundScorecard.CurrentRound,
				Round:        scorecard.Scorecard.RoundScorecard.Round,
				CourseID:     scorecard.Scorecard.RoundScorecard.CourseID,
				CurrentHole:  scorecard.Scorecard.RoundScorecard.CurrentHole,
				GroupID:      scorecard.Scorecard.RoundScorecard.GroupID,
				Holes:        holes,
			},
			CourseName:  scorecard.Scorecard.CourseName,
			Thru:        scorecard.Scorecard.Thru,
			ScoringType: scorecard.Scorecard.ScoringType,
			HostCourse:  scorecard.Scorecard.HostCourse,
		},
	}
}

func toHoleDetailsJSON(hole matchplay.HoleDetails) holeDetailsJSON {
	shots := make([]shotJSON, 0, len(hole.PlayByPlay.Shots))
	for _, shot := range hole.PlayByPlay.Shots {
		shots = append(shots, shotJSON{
			Stroke:              shot.Stroke,
			Distance:            shot.Distance,
			From:                coordinateJSON(shot.From),
			Point:               coordinateJSON(shot.Point),
			Cup:                 shot.Cup,
			PositionDescription: shot.PositionDescription,
			DistToPin:           shot.DistToPin,
			Description:         shot.Description,
			Timestamp:           shot.Timestamp,
			Type:                shot.Type,
		})
	}
	return holeDetailsJSON{
		GIR:        hole.GIR,
		RoundToPar: hole.RoundToPar,
		HoleStatus: hole.HoleStatus,
		Putts:      hole.Putts,
		Strokes:    hole.Strokes,
		PlayByPlay: playByPlayJSON{Shots: shots},
		Yards:      hole.Yards,
		Hole:       hole.Hole,
		FIR:        hole.FIR,
		Par:        hole.Par,
		ToPar:      hole.ToPar,
		Status:     hole.Status,
	}
}
