package tube

import (
	"github.com/chewxy/math32"
	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// Mesh is one swept tube surface as indexed triangle buffers.
type Mesh struct {
	Positions []vec3.T
	Normals   []vec3.T
	UVs       []vec2.T
	Indices   []uint32
}

// Sweep builds a tube of the given radius around the control points. The
// curve is resampled through a Catmull-Rom spline and a parallel-transport
// frame is carried along it, so the rings never flip where the curve bends.
// Each ring has radial+1 vertices; the seam pair shares a position so the UV
// wrap stays clean.
func Sweep(control []vec3.T, radius float32, tubular, radial int) *Mesh {
	sp := NewSpline(control)
	rings := tubular + 1

	centers := make([]vec3.T, rings)
	tangents := make([]vec3.T, rings)
	for i := 0; i < rings; i++ {
		u := float32(i) / float32(tubular)
		centers[i] = sp.At(u)
		tangents[i] = sp.Tangent(u)
	}

	nverts := rings * (radial + 1)
	m := &Mesh{
		Positions: make([]vec3.T, 0, nverts),
		Normals:   make([]vec3.T, 0, nverts),
		UVs:       make([]vec2.T, 0, nverts),
		Indices:   make([]uint32, 0, tubular*radial*6),
	}

	normal := perpendicular(&tangents[0])
	for i := 0; i < rings; i++ {
		if i > 0 {
			// Parallel transport: strip the tangential component from the
			// previous normal and renormalize.
			d := vec3.Dot(&tangents[i], &normal)
			tc := tangents[i].Scaled(d)
			normal = vec3.Sub(&normal, &tc)
			if normal.Length() < 1e-6 {
				normal = perpendicular(&tangents[i])
			}
			normal.Normalize()
		}
		binormal := vec3.Cross(&tangents[i], &normal)
		binormal.Normalize()

		for j := 0; j <= radial; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(radial)
			cs := math32.Cos(theta)
			sn := math32.Sin(theta)

			var dir vec3.T
			for k := 0; k < 3; k++ {
				dir[k] = normal[k]*cs + binormal[k]*sn
			}
			pos := centers[i]
			off := dir.Scaled(radius)
			pos.Add(&off)

			m.Positions = append(m.Positions, pos)
			m.Normals = append(m.Normals, dir)
			m.UVs = append(m.UVs, vec2.T{
				float32(i) / float32(tubular),
				float32(j) / float32(radial),
			})
		}
	}

	stride := uint32(radial + 1)
	for i := 0; i < tubular; i++ {
		for j := 0; j < radial; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + 1
			c := a + stride
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}
	return m
}

// perpendicular picks any unit vector orthogonal to t, preferring the world
// up axis unless t is nearly vertical.
func perpendicular(t *vec3.T) vec3.T {
	axis := vec3.T{0, 1, 0}
	if math32.Abs(vec3.Dot(t, &axis)) > 0.9 {
		axis = vec3.T{1, 0, 0}
	}
	n := vec3.Cross(t, &axis)
	n.Normalize()
	return n
}
