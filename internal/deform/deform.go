// Package deform is the per-frame displacement field for the sculpture.
// It is a pure function of the rest pose and the animation time: no state
// survives between calls, so any frame can be replayed exactly.
package deform

import (
	"github.com/chewxy/math32"
	"github.com/flywave/go3d/vec3"
)

// Vertices closer than this to the vertical axis have no usable radial
// direction and pass through unchanged.
const onAxisEpsilon = 0.01

// Displace writes the deformed positions for animation time t into out,
// reading only the rest pose. len(out) must equal len(rest).
func Displace(rest, out []vec3.T, t float32) {
	for i := range rest {
		ox := rest[i][0]
		oy := rest[i][1]
		oz := rest[i][2]

		nh := (oy + 7) / 14
		wave1 := math32.Sin(4*nh-8*t) * 0.6
		wave2 := math32.Cos(6*nh+6*t) * 0.4
		wave3 := math32.Sin(8*nh-4*t) * 0.3
		twist := math32.Sin(5*t+4*nh) * 0.25
		pulse := 1 + math32.Sin(3*t-2*nh)*0.25

		radial := math32.Sqrt(ox*ox + oz*oz)
		if radial <= onAxisEpsilon {
			out[i] = rest[i]
			continue
		}
		ux := ox / radial
		uz := oz / radial

		out[i] = vec3.T{
			ox*pulse + ux*wave1 + uz*twist,
			oy + wave2 + wave3,
			oz*pulse + uz*wave1 - ux*twist,
		}
	}
}

// RecomputeNormals rebuilds area-weighted vertex normals from the current
// positions. The accumulation starts from zero every call; nothing is cached
// across frames.
func RecomputeNormals(positions []vec3.T, indices []uint32, out []vec3.T) {
	for i := range out {
		out[i] = vec3.T{}
	}
	for f := 0; f+2 < len(indices); f += 3 {
		a := indices[f]
		b := indices[f+1]
		c := indices[f+2]

		e1 := vec3.Sub(&positions[b], &positions[a])
		e2 := vec3.Sub(&positions[c], &positions[a])
		n := vec3.Cross(&e1, &e2)
		if n.Length() == 0 {
			continue
		}
		out[a].Add(&n)
		out[b].Add(&n)
		out[c].Add(&n)
	}
	for i := range out {
		if out[i].Length() > 0 {
			out[i].Normalize()
		}
	}
}
