// Package scene owns every piece of state the animation mutates: the merged
// sculpture mesh and its frozen rest pose, the particle field, the camera
// rig and the active palette. There are no package-level singletons; a Scene
// is an explicit value owned by whoever drives it.
package scene

import (
	"github.com/chewxy/math32"
	"github.com/flywave/go3d/vec3"

	"tendril-bg-renderer/internal/camera"
	"tendril-bg-renderer/internal/deform"
	"tendril-bg-renderer/internal/palette"
	"tendril-bg-renderer/internal/particles"
	"tendril-bg-renderer/internal/raster"
	"tendril-bg-renderer/internal/tube"
)

// TimeStep is the fixed per-frame time increment. Visual speed is tied to
// accepted frames, never to wall time, so the animation looks the same at
// any real frame rate.
const TimeStep = 0.008

// Scene is the owned animation context.
type Scene struct {
	Sculpture *tube.MergedMesh
	Particles *particles.Field

	Palette   palette.Palette
	ThemeName string

	Time float32

	Yaw  float32
	Lift float32
	Cam  camera.Camera
}

// New builds the sculpture and particle field and applies the default theme.
func New(seed int64) *Scene {
	p, _ := palette.Lookup(palette.Default)
	s := &Scene{
		Sculpture: tube.BuildSculpture(),
		Particles: particles.NewField(seed),
		Palette:   p,
		ThemeName: palette.Default,
	}
	s.Cam, s.Yaw, s.Lift = Rig(0)
	return s
}

// SetTheme re-reads the palette for the named theme into the scene. Unknown
// names are a silent no-op. Geometry is untouched either way.
func (s *Scene) SetTheme(name string) {
	if p, ok := palette.Lookup(name); ok {
		s.Palette = p
		s.ThemeName = name
	}
}

// Advance runs one accepted frame: bump time by the fixed step, deform the
// sculpture from its rest pose, rebuild normals, drift the particles and
// update the camera rig.
func (s *Scene) Advance() {
	s.Time += TimeStep
	deform.Displace(s.Sculpture.RestPose, s.Sculpture.Positions, s.Time)
	deform.RecomputeNormals(s.Sculpture.Positions, s.Sculpture.Indices, s.Sculpture.Normals)
	s.Particles.Step()
	s.Cam, s.Yaw, s.Lift = Rig(s.Time)
}

// Rig returns the camera and sculpture sway for animation time t. All
// oscillators are closed-form, so any frame can be evaluated directly.
func Rig(t float32) (cam camera.Camera, yaw, lift float32) {
	cam = camera.Camera{
		Position: vec3.T{
			math32.Sin(t*0.23) * 1.8,
			2.4 + math32.Sin(t*0.31)*0.9,
			16 + math32.Cos(t*0.19)*1.2,
		},
		Target: vec3.T{0, 0.4, 0},
		Up:     vec3.T{0, 1, 0},
		FOV:    45,
	}
	yaw = t*0.12 + math32.Sin(t*0.4)*0.08
	lift = math32.Sin(t*0.52) * 0.35
	return cam, yaw, lift
}

// FrameInput snapshots the current state for the rasterizer. The slices are
// shared, not copied; render before mutating again.
func (s *Scene) FrameInput() *raster.Input {
	return &raster.Input{
		Positions: s.Sculpture.Positions,
		Normals:   s.Sculpture.Normals,
		Indices:   s.Sculpture.Indices,
		Yaw:       s.Yaw,
		Lift:      s.Lift,
		Camera:    s.Cam,
		Palette:   s.Palette,
		Particles: s.Particles.Positions,
	}
}

// Release drops the large buffers on teardown. The scene must not be used
// afterwards.
func (s *Scene) Release() {
	s.Sculpture = nil
	s.Particles = nil
}
