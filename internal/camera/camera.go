package camera

import (
	"github.com/chewxy/math32"
	"github.com/flywave/go3d/vec3"
)

// Camera is a perspective look-at camera. The render target is square, so
// aspect is always 1.
type Camera struct {
	Position vec3.T
	Target   vec3.T
	Up       vec3.T
	FOV      float32 // vertical field of view, degrees
}

// Project transforms world-space points into screen coordinates, filling
// px/py (pixels) and pz (depth, larger = closer, matching the framebuffer
// z test). All three slices must have len(points) entries.
func (c *Camera) Project(points []vec3.T, size int, px, py, pz []float64) {
	right, up, forward := c.basis()
	f := float64(1 / math32.Tan(c.FOV*math32.Pi/180/2))
	half := float64(size) / 2

	for i := range points {
		d := vec3.Sub(&points[i], &c.Position)
		vx := float64(vec3.Dot(&d, &right))
		vy := float64(vec3.Dot(&d, &up))
		vz := float64(vec3.Dot(&d, &forward))
		if vz < 0.1 {
			vz = 0.1
		}
		px[i] = half + vx*f/vz*half
		py[i] = half - vy*f/vz*half
		pz[i] = -vz
	}
}

// FocalScale returns the pixel scale factor f*half used by Project, for
// sizing screen-space sprites consistently with projected geometry.
func (c *Camera) FocalScale(size int) float64 {
	return float64(1/math32.Tan(c.FOV*math32.Pi/180/2)) * float64(size) / 2
}

// Forward returns the unit view direction.
func (c *Camera) Forward() vec3.T {
	_, _, forward := c.basis()
	return forward
}

func (c *Camera) basis() (right, up, forward vec3.T) {
	forward = vec3.Sub(&c.Target, &c.Position)
	forward.Normalize()
	right = vec3.Cross(&forward, &c.Up)
	right.Normalize()
	up = vec3.Cross(&right, &forward)
	return
}
