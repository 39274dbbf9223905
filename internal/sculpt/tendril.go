package sculpt

import (
	"github.com/chewxy/math32"
	"github.com/flywave/go3d/vec3"
)

// Sculpture shape constants. All of these are aesthetic values tuned by eye;
// treat them as fixed inputs rather than derived quantities.
const (
	MainTendrils   = 20
	BranchTendrils = 8

	CurveSegments  = 80 // points per tendril = CurveSegments + 1
	RadialSegments = 16

	MainTubeRadius   = 0.12
	BranchTubeRadius = 0.08

	SpiralTurns  = 2.5
	SpiralRadius = 3.2
	SpiralHeight = 14.0
	BranchRadius = 5.4
)

// Branch tendrils follow the host spiral, swing out laterally, then return.
// The phase breakpoints are empirical; keep them as literals.
const (
	branchOutEnd = 0.3
	branchArcEnd = 0.7
)

// TendrilPoints returns the ordered control points for tendril i of n.
// The result depends only on the arguments and the shape constants, so
// repeated calls with the same inputs yield identical points.
func TendrilPoints(i, n int, isBranch bool) []vec3.T {
	pts := make([]vec3.T, CurveSegments+1)
	angleOffset := 2 * math32.Pi * float32(i) / float32(n)
	phase := 0.5 * float32(i)
	for s := 0; s <= CurveSegments; s++ {
		t := float32(s) / CurveSegments
		if isBranch {
			pts[s] = branchPoint(t, angleOffset, phase)
		} else {
			pts[s] = mainPoint(t, angleOffset, phase)
		}
	}
	return pts
}

func mainPoint(t, angleOffset, phase float32) vec3.T {
	angle := angleOffset + t*SpiralTurns*2*math32.Pi
	radius := SpiralRadius * (0.3 + 0.7*t)
	height := (t - 0.5) * SpiralHeight
	nx, ny, nz := curveNoise(t, phase, 1)
	return vec3.T{
		math32.Cos(angle)*radius + nx,
		height + ny,
		math32.Sin(angle)*radius + nz,
	}
}

// branchPoint walks three phases: spiral-out along the host helix, a
// sinusoidal lateral excursion out to BranchRadius, and a linear return.
// Each phase boundary is continuous by construction.
func branchPoint(t, angleOffset, phase float32) vec3.T {
	angle := angleOffset + t*SpiralTurns*2*math32.Pi
	radius := SpiralRadius * (0.3 + 0.7*t)
	height := (t - 0.5) * SpiralHeight

	switch {
	case t < branchOutEnd:
		// spiral-out: stays on the host spiral
	case t < branchArcEnd:
		u := (t - branchOutEnd) / (branchArcEnd - branchOutEnd)
		e := math32.Sin(u * math32.Pi / 2)
		radius += e * (BranchRadius - radius)
		angle += e * 0.5
		height += math32.Sin(u*math32.Pi) * 0.8
	default:
		v := (t - branchArcEnd) / (1 - branchArcEnd)
		e := 1 - v
		radius += e * (BranchRadius - radius)
		angle += e * 0.5
	}

	nx, ny, nz := curveNoise(t, phase, 1.2)
	return vec3.T{
		math32.Cos(angle)*radius + nx,
		height + ny,
		math32.Sin(angle)*radius + nz,
	}
}

// curveNoise is the deterministic per-point wobble; phase is 0.5*i so no two
// tendrils wobble in sync. Branch tendrils scale the amplitudes by 1.2.
func curveNoise(t, phase, amp float32) (x, y, z float32) {
	x = math32.Sin(3*t+phase) * 0.5 * amp
	y = math32.Cos(4*t+phase) * 0.8 * amp
	z = math32.Sin(5*t+phase) * 0.5 * amp
	return
}
