package tube

import "github.com/flywave/go3d/vec3"

// Spline is a uniform Catmull-Rom interpolating spline through a fixed set
// of control points. The curve passes through every control point and is C¹.
type Spline struct {
	pts []vec3.T
}

// NewSpline wraps the control points; they are not copied.
func NewSpline(pts []vec3.T) *Spline {
	return &Spline{pts: pts}
}

// At evaluates the curve at u in [0,1]. Values outside the range clamp to
// the endpoints.
func (s *Spline) At(u float32) vec3.T {
	n := len(s.pts) - 1
	if u <= 0 {
		return s.pts[0]
	}
	if u >= 1 {
		return s.pts[n]
	}
	f := u * float32(n)
	seg := int(f)
	t := f - float32(seg)
	p0 := s.point(seg - 1)
	p1 := s.point(seg)
	p2 := s.point(seg + 1)
	p3 := s.point(seg + 2)
	return catmullRom(&p0, &p1, &p2, &p3, t)
}

// Tangent returns the unit tangent at u via central differencing.
func (s *Spline) Tangent(u float32) vec3.T {
	const eps = 1e-3
	a := s.At(clamp01(u - eps))
	b := s.At(clamp01(u + eps))
	d := vec3.Sub(&b, &a)
	if d.Length() < 1e-8 {
		return vec3.T{0, 1, 0}
	}
	d.Normalize()
	return d
}

// point clamps the control index so the endpoint segments reuse the first
// and last points as phantom neighbors.
func (s *Spline) point(i int) vec3.T {
	if i < 0 {
		i = 0
	}
	if i >= len(s.pts) {
		i = len(s.pts) - 1
	}
	return s.pts[i]
}

func catmullRom(p0, p1, p2, p3 *vec3.T, t float32) vec3.T {
	t2 := t * t
	t3 := t2 * t
	var out vec3.T
	for k := 0; k < 3; k++ {
		out[k] = 0.5 * (2*p1[k] +
			(-p0[k]+p2[k])*t +
			(2*p0[k]-5*p1[k]+4*p2[k]-p3[k])*t2 +
			(-p0[k]+3*p1[k]-3*p2[k]+p3[k])*t3)
	}
	return out
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
