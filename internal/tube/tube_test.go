package tube

import (
	"testing"

	"github.com/flywave/go3d/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tendril-bg-renderer/internal/sculpt"
)

func TestSplineInterpolatesControlPoints(t *testing.T) {
	pts := []vec3.T{
		{0, 0, 0},
		{1, 2, 0},
		{2, 1, 1},
		{3, 3, 2},
		{4, 0, 0},
	}
	sp := NewSpline(pts)

	assert.Equal(t, pts[0], sp.At(0))
	assert.Equal(t, pts[len(pts)-1], sp.At(1))

	// u=0.5 lands exactly on the middle control point (4 segments).
	mid := sp.At(0.5)
	for k := 0; k < 3; k++ {
		assert.InDelta(t, float64(pts[2][k]), float64(mid[k]), 1e-5)
	}
}

func TestSweepCounts(t *testing.T) {
	control := sculpt.TendrilPoints(0, sculpt.MainTendrils, false)
	m := Sweep(control, sculpt.MainTubeRadius, sculpt.CurveSegments, sculpt.RadialSegments)

	wantVerts := (sculpt.CurveSegments + 1) * (sculpt.RadialSegments + 1)
	require.Len(t, m.Positions, wantVerts)
	require.Len(t, m.Normals, wantVerts)
	require.Len(t, m.UVs, wantVerts)
	require.Len(t, m.Indices, sculpt.CurveSegments*sculpt.RadialSegments*6)

	for _, idx := range m.Indices {
		assert.Less(t, int(idx), wantVerts)
	}
	for i, n := range m.Normals {
		assert.InDeltaf(t, 1.0, float64(n.Length()), 1e-4, "normal %d not unit", i)
	}
}

func TestMergeInvariant(t *testing.T) {
	m := BuildSculpture()

	perTendril := (sculpt.CurveSegments + 1) * (sculpt.RadialSegments + 1)
	wantVerts := (sculpt.MainTendrils + sculpt.BranchTendrils) * perTendril

	require.Len(t, m.Positions, wantVerts)
	require.Len(t, m.Normals, wantVerts)
	require.Len(t, m.UVs, wantVerts)
	require.Len(t, m.RestPose, wantVerts)

	// The rest pose starts as a verbatim snapshot of the positions.
	assert.Equal(t, m.Positions, m.RestPose)

	// Index buffer stays in range after offsetting.
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), wantVerts)
	}
}

func TestRestPoseIsIndependentBuffer(t *testing.T) {
	m := BuildSculpture()
	before := m.RestPose[0]

	m.Positions[0] = vec3.T{99, 99, 99}
	assert.Equal(t, before, m.RestPose[0])
}
