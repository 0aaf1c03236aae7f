package providers

// Feed payload structures for the three PGA Tour match-play feeds.
// Field names mirror the upstream JSON exactly; all joining and
// reshaping happens in the matchplay package.

// TeeTimesFeed is the tee-time feed: rounds -> groups -> players.
type TeeTimesFeed struct {
	Rounds []TeeTimeRound `json:"rounds"`
}

type TeeTimeRound struct {
	Round  string         `json:"round"`
	Groups []TeeTimeGroup `json:"groups"`
}

type TeeTimeGroup struct {
	GroupID string          `json:"group_id"`
	Players []TeeTimePlayer `json:"players"`
}

type TeeTimePlayer struct {
	PID string `json:"pid"`
}

// LeaderboardFeed is the match-play leaderboard feed:
// rounds -> brackets -> groups (one group per head-to-head match).
type LeaderboardFeed struct {
	Rounds []LeaderboardRound `json:"rounds"`
}

type LeaderboardRound struct {
	RoundNum string               `json:"roundNum"`
	Brackets []LeaderboardBracket `json:"brackets"`
}

type LeaderboardBracket struct {
	Groups []LeaderboardMatch `json:"groups"`
}

type LeaderboardMatch struct {
	MatchNum string              `json:"matchNum"`
	PoolNum  string              `json:"poolNum"`
	Players  []LeaderboardPlayer `json:"players"`
}

type LeaderboardPlayer struct {
	PID           string `json:"pid"`
	MatchWinner   string `json:"matchWinner"`
	MatchLeader   string `json:"matchLeader"`
	FirstName     string `json:"fName"`
	LastName      string `json:"lName"`
	Country       string `json:"country"`
	Seed          string `json:"seed"`
	PoolWins      string `json:"poolWins"`
	PoolLosses    string `json:"poolLosses"`
	PoolHalves    string `json:"poolHalves"`
	FinalMatchScr string `json:"finalMatchScr"`
}

// MatchDetailFeed is the per-match detail feed with the course layout
// and per-player hole/shot arrays.
type MatchDetailFeed struct {
	Course  MatchDetailCourse `json:"course"`
	Players []DetailPlayer    `json:"players"`
}

type MatchDetailCourse struct {
	CourseName string       `json:"course_name"`
	CourseID   string       `json:"course_id"`
	Holes      []CourseHole `json:"holes"`
}

// CourseHole carries the round-invariant camera/target coordinates plus
// a nested per-round array with that round's tee and pin positions.
type CourseHole struct {
	HoleID       string          `json:"hole_id"`
	HoleCameraX  string          `json:"hole_camera_x"`
	HoleCameraY  string          `json:"hole_camera_y"`
	HoleCameraZ  string          `json:"hole_camera_z"`
	HoleTargetX  string          `json:"hole_target_x"`
	HoleTargetY  string          `json:"hole_target_y"`
	HoleTargetZ  string          `json:"hole_target_z"`
	GreenCameraX string          `json:"green_camera_x"`
	GreenCameraY string          `json:"green_camera_y"`
	GreenCameraZ string          `json:"green_camera_z"`
	GreenTargetX string          `json:"green_target_x"`
	GreenTargetY string          `json:"green_target_y"`
	GreenTargetZ string          `json:"green_target_z"`
	Rounds       []CourseHoleRnd `json:"round"`
}

type CourseHoleRnd struct {
	RoundNum string `json:"round_num"`
	TeeX     string `json:"tee_x"`
	TeeY     string `json:"tee_y"`
	TeeZ     string `json:"tee_z"`
	PinX     string `json:"pin_x"`
	PinY     string `json:"pin_y"`
	PinZ     string `json:"pin_z"`
}

type DetailPlayer struct {
	PID   string       `json:"pid"`
	Holes []DetailHole `json:"holes"`
}

type DetailHole struct {
	SeqNum      string       `json:"seqNum"`
	TournStatus string       `json:"tournStatus"`
	HoleStatus  string       `json:"holeStatus"`
	Strokes     string       `json:"strokes"`
	YdsOfficial string       `json:"ydsOfficial"`
	Par         string       `json:"par"`
	Shots       []DetailShot `json:"shots"`
}

type DetailShot struct {
	X        string `json:"x"`
	Y        string `json:"y"`
	Distance int    `json:"distance"`
	Left     int    `json:"left"`
	ShotID   int    `json:"shot_id"`
	Cup      bool   `json:"cup"`
	ShotText string `json:"shottext"`
}
