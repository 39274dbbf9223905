package camera

import (
	"testing"

	"github.com/flywave/go3d/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() Camera {
	return Camera{
		Position: vec3.T{0, 0, 10},
		Target:   vec3.T{0, 0, 0},
		Up:       vec3.T{0, 1, 0},
		FOV:      45,
	}
}

func TestProjectTargetToScreenCenter(t *testing.T) {
	cam := testCamera()
	pts := []vec3.T{{0, 0, 0}}
	px := make([]float64, 1)
	py := make([]float64, 1)
	pz := make([]float64, 1)

	cam.Project(pts, 100, px, py, pz)

	assert.InDelta(t, 50, px[0], 1e-6)
	assert.InDelta(t, 50, py[0], 1e-6)
	assert.InDelta(t, -10, pz[0], 1e-6)
}

func TestProjectDepthOrdering(t *testing.T) {
	cam := testCamera()
	pts := []vec3.T{
		{0, 0, 5},  // near
		{0, 0, -5}, // far
	}
	px := make([]float64, 2)
	py := make([]float64, 2)
	pz := make([]float64, 2)

	cam.Project(pts, 100, px, py, pz)

	// Larger pz means closer, matching the framebuffer z test.
	assert.Greater(t, pz[0], pz[1])
}

func TestProjectScreenAxes(t *testing.T) {
	cam := testCamera()
	pts := []vec3.T{
		{1, 0, 0},  // world +x is screen right
		{0, 1, 0},  // world +y is screen up, so smaller pixel y
		{-1, 0, 0},
	}
	px := make([]float64, 3)
	py := make([]float64, 3)
	pz := make([]float64, 3)

	cam.Project(pts, 200, px, py, pz)

	assert.Greater(t, px[0], 100.0)
	assert.Less(t, py[1], 100.0)
	assert.Less(t, px[2], 100.0)
}

func TestProjectClampsBehindCamera(t *testing.T) {
	cam := testCamera()
	pts := []vec3.T{{0, 0, 20}}
	px := make([]float64, 1)
	py := make([]float64, 1)
	pz := make([]float64, 1)

	cam.Project(pts, 100, px, py, pz)
	assert.Equal(t, -0.1, pz[0])
}

func TestFocalScaleMatchesProjection(t *testing.T) {
	cam := testCamera()

	// A point 1 unit right of the target at distance 10 lands
	// FocalScale/10 pixels right of center.
	pts := []vec3.T{{1, 0, 0}}
	px := make([]float64, 1)
	py := make([]float64, 1)
	pz := make([]float64, 1)
	cam.Project(pts, 100, px, py, pz)

	require.InDelta(t, 50+cam.FocalScale(100)/10, px[0], 1e-6)
}

func TestForwardIsUnit(t *testing.T) {
	cam := testCamera()
	f := cam.Forward()
	assert.InDelta(t, 1.0, float64(f.Length()), 1e-6)
	assert.InDelta(t, -1.0, float64(f[2]), 1e-6)
}
