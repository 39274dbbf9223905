package raster

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/flywave/go3d/vec3"

	"tendril-bg-renderer/internal/camera"
	"tendril-bg-renderer/internal/palette"
)

// World-space radius of one particle sprite.
const particleRadius = 0.09

// Input is everything the rasterizer needs for one frame. The driver and
// the offline pipeline both produce it; mutating the buffers afterwards has
// no effect on an already rendered frame.
type Input struct {
	Positions []vec3.T
	Normals   []vec3.T
	Indices   []uint32

	Yaw  float32 // sculpture rotation about Y
	Lift float32 // sculpture vertical offset

	Camera    camera.Camera
	Palette   palette.Palette
	Particles []vec3.T

	Backdrop *image.NRGBA // optional, must already match the render size
}

// Render rasterizes one frame at size×size and returns it as NRGBA.
func Render(in *Input, size int) *image.NRGBA {
	fb := NewFrameBuffer(size, size)
	if in.Backdrop != nil {
		fb.ClearImage(in.Backdrop)
	} else {
		bg := in.Palette.Background
		fb.Clear(
			clamp255(float64(bg[0])*255),
			clamp255(float64(bg[1])*255),
			clamp255(float64(bg[2])*255),
		)
	}

	// Model transform: yaw about Y plus vertical lift. Normals rotate with
	// the same basis; the lift does not affect them.
	sn := math32.Sin(in.Yaw)
	cs := math32.Cos(in.Yaw)
	world := make([]vec3.T, len(in.Positions))
	wnorm := make([]vec3.T, len(in.Normals))
	for i := range in.Positions {
		p := in.Positions[i]
		world[i] = vec3.T{p[0]*cs + p[2]*sn, p[1] + in.Lift, -p[0]*sn + p[2]*cs}
		n := in.Normals[i]
		wnorm[i] = vec3.T{n[0]*cs + n[2]*sn, n[1], -n[0]*sn + n[2]*cs}
	}

	nv := len(world)
	px := make([]float64, nv)
	py := make([]float64, nv)
	pz := make([]float64, nv)
	in.Camera.Project(world, size, px, py, pz)

	sh := NewShader(in.Palette, in.Camera.Forward())

	cr := make([]float64, nv)
	cg := make([]float64, nv)
	cb := make([]float64, nv)
	cf := make([]float64, nv)
	for i := range wnorm {
		cr[i], cg[i], cb[i] = sh.ShadeVertex(wnorm[i])
		cf[i] = sh.FogFactor(-pz[i])
	}

	for f := 0; f+2 < len(in.Indices); f += 3 {
		sh.Triangle(fb, px, py, pz, cr, cg, cb, cf, [3]int{
			int(in.Indices[f]),
			int(in.Indices[f+1]),
			int(in.Indices[f+2]),
		})
	}

	if len(in.Particles) > 0 {
		np := len(in.Particles)
		ppx := make([]float64, np)
		ppy := make([]float64, np)
		ppz := make([]float64, np)
		in.Camera.Project(in.Particles, size, ppx, ppy, ppz)

		er, eg, eb := sh.SpriteColor(in.Palette.ParticleColor)
		focal := in.Camera.FocalScale(size)
		for i := 0; i < np; i++ {
			depth := -ppz[i]
			radius := particleRadius * focal / depth
			sh.Sprite(fb, ppx[i], ppy[i], ppz[i], radius, er, eg, eb, sh.FogFactor(depth))
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	copy(img.Pix, fb.Color)
	return img
}
