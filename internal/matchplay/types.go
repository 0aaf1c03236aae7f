package matchplay

import "encoding/json"

// Internal model produced by the cross-feed join. The external JSON
// vocabulary lives in the export package; these types carry the joined
// data between the projector, the resolvers and the scorecard builder.

// Round is one round of the match-play bracket with its flattened
// match list. Rounds are immutable after projection except for hole
// enrichment once the match detail feed has been fetched.
type Round struct {
	RoundNumber string
	Matches     []Match
}

// Match is a single head-to-head pairing. Players always has exactly
// two entries.
type Match struct {
	MatchNum    string
	PoolNumber  string
	GroupID     string
	ScoreStatus string
	MatchStatus string
	Players     []Player
	Holes       []Hole
}

// Leader returns the pid of the player marked as leading, or "".
func (m Match) Leader() string {
	for _, p := range m.Players {
		if p.IsLeading {
			return p.PID
		}
	}
	return ""
}

// Winner returns the pid of the player marked as match winner, or "".
func (m Match) Winner() string {
	for _, p := range m.Players {
		if p.IsMatchWinner {
			return p.PID
		}
	}
	return ""
}

type Player struct {
	PID           string
	IsMatchWinner bool
	IsLeading     bool
	Bio           PlayerBio
}

// PlayerBio holds pool-stage aggregates, not match-specific data.
type PlayerBio struct {
	FirstName string
	LastName  string
	Country   string
	Seed      string
	Wins      string
	Losses    string
	Halves    string
}

// Hole is one hole's outcome within a match. Winner is a pid, or ""
// when the hole was halved or is undecided.
type Hole struct {
	Hole        string
	Winner      string
	ScoreStatus string
}

// Coordinate is an opaque (x, y, z) triple threaded through from the
// feeds without unit conversion.
type Coordinate struct {
	X string
	Y string
	Z string
}

// Origin is the fallback position when no geometry is known for a hole.
var Origin = Coordinate{X: "0", Y: "0", Z: "0"}

// OptionalString is a value whose derivation from the source feeds is
// not yet understood. Unresolved values are surfaced as JSON null by
// the serializer instead of shipping placeholder text as real data.
type OptionalString struct {
	Value string
	Known bool
}

// KnownString wraps a resolved value.
func KnownString(v string) OptionalString {
	return OptionalString{Value: v, Known: true}
}

// UnresolvedString marks a field with no known source mapping.
func UnresolvedString() OptionalString {
	return OptionalString{}
}

// MarshalJSON renders unresolved values as null so consumers can tell
// "not yet derivable" apart from a real empty string.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Known {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = OptionalString{}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = OptionalString{Value: v, Known: true}
	return nil
}

// OptionalBool is the boolean counterpart of OptionalString.
type OptionalBool struct {
	Value bool
	Known bool
}

func KnownBool(v bool) OptionalBool {
	return OptionalBool{Value: v, Known: true}
}

func UnresolvedBool() OptionalBool {
	return OptionalBool{}
}

func (o OptionalBool) MarshalJSON() ([]byte, error) {
	if !o.Known {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptionalBool) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = OptionalBool{}
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = OptionalBool{Value: v, Known: true}
	return nil
}

// MatchDetails is the root of one match's scorecard artifact.
// Ownership is strictly tree-shaped; the value lives for a single
// serialization pass.
type MatchDetails struct {
	Leader           string
	Winner           string
	MatchStatus      string
	ScoreStatus      string
	PlayerScorecards []PlayerScorecard
}

type PlayerScorecard struct {
	PID       string
	Holes     []Hole
	Scorecard Scorecard
}

type Scorecard struct {
	CourseName     string
	Thru           OptionalString
	ScoringType    OptionalString
	HostCourse     OptionalBool
	RoundScorecard RoundScorecard
}

type RoundScorecard struct {
	CurrentRound bool
	CourseID     string
	Round        string
	CurrentHole  OptionalString
	GroupID      string
	Holes        []HoleDetails
}

type HoleDetails struct {
	GIR        OptionalBool
	RoundToPar OptionalString
	HoleStatus string
	Putts      OptionalString
	Strokes    string
	Yards      string
	Hole       string
	FIR        OptionalBool
	Par        string
	ToPar      OptionalString
	Status     string
	PlayByPlay PlayByPlay
}

type PlayByPlay struct {
	Shots []Shot
}

// Shot is one stroke in a hole's play-by-play chain. From is the
// previous shot's landing point (the tee for the first stroke).
type Shot struct {
	Stroke              string
	From                Coordinate
	Point               Coordinate
	Distance            string
	Cup                 bool
	PositionDescription OptionalString
	DistToPin           string
	Description         string
	Timestamp           OptionalString
	Type                OptionalString
}
