package particles

import (
	"math/rand"

	"github.com/flywave/go3d/vec3"
)

// Field layout constants.
const (
	Count       = 150
	FieldRadius = 6.5
	Depth       = 24.0
	DriftStep   = 0.012
)

// Field is the drifting particle cloud around the sculpture.
type Field struct {
	Positions []vec3.T
}

// NewField seeds Count particles uniformly inside a sphere of FieldRadius,
// then jitters each one independently along the depth axis. The same seed
// always produces the same field.
func NewField(seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]vec3.T, Count)
	for i := range pts {
		var v vec3.T
		for {
			v = vec3.T{
				rng.Float32()*2 - 1,
				rng.Float32()*2 - 1,
				rng.Float32()*2 - 1,
			}
			if l := v.Length(); l <= 1 && l > 1e-4 {
				break
			}
		}
		v.Scale(FieldRadius)
		v[2] += (rng.Float32() - 0.5) * Depth * 0.5
		pts[i] = v
	}
	return &Field{Positions: pts}
}

// Step drifts every particle upward by one fixed increment. A particle that
// crosses +Depth/2 resets to exactly -Depth/2 on that tick.
func (f *Field) Step() {
	for i := range f.Positions {
		f.Positions[i][1] += DriftStep
		if f.Positions[i][1] > Depth/2 {
			f.Positions[i][1] = -Depth / 2
		}
	}
}

// Snapshot copies the current positions so a frame state can be replayed
// out of order by the offline renderer.
func (f *Field) Snapshot() []vec3.T {
	cp := make([]vec3.T, len(f.Positions))
	copy(cp, f.Positions)
	return cp
}
