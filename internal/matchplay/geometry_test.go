package matchplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/matchplay-data-service/internal/providers"
)

func sampleCourse() providers.MatchDetailCourse {
	return providers.MatchDetailCourse{
		CourseName: "Austin Country Club",
		CourseID:   "867",
		Holes: []providers.CourseHole{
			{
				HoleID:      "1",
				HoleCameraX: "100", HoleCameraY: "200", HoleCameraZ: "30",
				HoleTargetX: "110", HoleTargetY: "210", HoleTargetZ: "0",
				GreenCameraX: "120", GreenCameraY: "220", GreenCameraZ: "25",
				GreenTargetX: "130", GreenTargetY: "230", GreenTargetZ: "0",
				Rounds: []providers.CourseHoleRnd{
					{RoundNum: "1", TeeX: "1", TeeY: "2", TeeZ: "3", PinX: "4", PinY: "5", PinZ: "6"},
					{RoundNum: "2", TeeX: "7", TeeY: "8", TeeZ: "9", PinX: "10", PinY: "11", PinZ: "12"},
				},
			},
		},
	}
}

func TestBuildGeometryIndex_PerRoundEntries(t *testing.T) {
	idx := BuildGeometryIndex(sampleCourse())

	round1, ok := idx.Lookup("1", "1")
	require.True(t, ok)
	assert.Equal(t, Coordinate{X: "1", Y: "2", Z: "3"}, round1.Tee)
	assert.Equal(t, Coordinate{X: "4", Y: "5", Z: "6"}, round1.Pin)

	round2, ok := idx.Lookup("1", "2")
	require.True(t, ok)
	assert.Equal(t, Coordinate{X: "7", Y: "8", Z: "9"}, round2.Tee)
}

func TestBuildGeometryIndex_StaticSetupSharedAcrossRounds(t *testing.T) {
	idx := BuildGeometryIndex(sampleCourse())

	round1, _ := idx.Lookup("1", "1")
	round2, _ := idx.Lookup("1", "2")

	assert.Equal(t, round1.Static, round2.Static)
	assert.Equal(t, Coordinate{X: "100", Y: "200", Z: "30"}, round1.Static.HoleCamera)
	assert.Equal(t, Coordinate{X: "130", Y: "230", Z: "0"}, round1.Static.GreenTarget)
}

func TestGeometryIndex_MissFallsThrough(t *testing.T) {
	idx := BuildGeometryIndex(sampleCourse())

	_, ok := idx.Lookup("18", "1")
	assert.False(t, ok)
	_, ok = idx.Lookup("1", "4")
	assert.False(t, ok)
}
