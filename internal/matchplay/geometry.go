package matchplay

import (
	"fmt"

	"github.com/stitts-dev/matchplay-data-service/internal/providers"
)

// StaticHoleSetup holds the camera/target coordinates that do not
// change between rounds.
type StaticHoleSetup struct {
	HoleCamera  Coordinate
	HoleTarget  Coordinate
	GreenCamera Coordinate
	GreenTarget Coordinate
}

// HoleGeometry combines a hole's static setup with one round's tee and
// pin positions.
type HoleGeometry struct {
	Static StaticHoleSetup
	Tee    Coordinate
	Pin    Coordinate
}

// GeometryIndex maps (holeID, roundNumber) to that round's hole
// geometry. Built once per match detail fetch.
type GeometryIndex map[string]HoleGeometry

func holeRoundKey(holeID, roundNumber string) string {
	return fmt.Sprintf("%s-%s", holeID, roundNumber)
}

// BuildGeometryIndex extracts one entry per (hole, round) pair from the
// detail feed's course object, combining the hole's static coordinates
// with the round-specific tee/pin positions.
func BuildGeometryIndex(course providers.MatchDetailCourse) GeometryIndex {
	idx := make(GeometryIndex)
	for _, hole := range course.Holes {
		static := StaticHoleSetup{
			HoleCamera:  Coordinate{X: hole.HoleCameraX, Y: hole.HoleCameraY, Z: hole.HoleCameraZ},
			HoleTarget:  Coordinate{X: hole.HoleTargetX, Y: hole.HoleTargetY, Z: hole.HoleTargetZ},
			GreenCamera: Coordinate{X: hole.GreenCameraX, Y: hole.GreenCameraY, Z: hole.GreenCameraZ},
			GreenTarget: Coordinate{X: hole.GreenTargetX, Y: hole.GreenTargetY, Z: hole.GreenTargetZ},
		}
		for _, roundHole := range hole.Rounds {
			idx[holeRoundKey(hole.HoleID, roundHole.RoundNum)] = HoleGeometry{
				Static: static,
				Tee:    Coordinate{X: roundHole.TeeX, Y: roundHole.TeeY, Z: roundHole.TeeZ},
				Pin:    Coordinate{X: roundHole.PinX, Y: roundHole.PinY, Z: roundHole.PinZ},
			}
		}
	}
	return idx
}

// Lookup returns the geometry for a hole/round pair. Absence is not
// fatal: the scorecard builder falls back to the origin coordinate.
func (idx GeometryIndex) Lookup(holeID, roundNumber string) (HoleGeometry, bool) {
	geo, ok := idx[holeRoundKey(holeID, roundNumber)]
	return geo, ok
}
