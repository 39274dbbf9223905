package tube

import (
	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"

	"tendril-bg-renderer/internal/sculpt"
)

// MergedMesh is the whole sculpture concatenated into one buffer set so a
// frame renders in a single pass. RestPose is the verbatim snapshot of the
// positions at merge time; it is the deformation reference and must never be
// written afterwards.
type MergedMesh struct {
	Positions []vec3.T
	Normals   []vec3.T
	UVs       []vec2.T
	Indices   []uint32
	RestPose  []vec3.T
}

// Merge concatenates per-tendril tube meshes, offsetting indices into the
// shared buffer, and freezes the rest pose. The inputs can be released by
// the caller afterwards; nothing here keeps a reference to them.
func Merge(meshes []*Mesh) *MergedMesh {
	var nverts, nidx int
	for _, m := range meshes {
		nverts += len(m.Positions)
		nidx += len(m.Indices)
	}

	out := &MergedMesh{
		Positions: make([]vec3.T, 0, nverts),
		Normals:   make([]vec3.T, 0, nverts),
		UVs:       make([]vec2.T, 0, nverts),
		Indices:   make([]uint32, 0, nidx),
	}
	for _, m := range meshes {
		base := uint32(len(out.Positions))
		out.Positions = append(out.Positions, m.Positions...)
		out.Normals = append(out.Normals, m.Normals...)
		out.UVs = append(out.UVs, m.UVs...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}

	out.RestPose = make([]vec3.T, nverts)
	copy(out.RestPose, out.Positions)
	return out
}

// BuildSculpture generates every main and branch tendril, sweeps each into a
// tube and merges them. The per-tendril meshes go out of scope here.
func BuildSculpture() *MergedMesh {
	meshes := make([]*Mesh, 0, sculpt.MainTendrils+sculpt.BranchTendrils)
	for i := 0; i < sculpt.MainTendrils; i++ {
		pts := sculpt.TendrilPoints(i, sculpt.MainTendrils, false)
		meshes = append(meshes, Sweep(pts, sculpt.MainTubeRadius, sculpt.CurveSegments, sculpt.RadialSegments))
	}
	for i := 0; i < sculpt.BranchTendrils; i++ {
		pts := sculpt.TendrilPoints(i, sculpt.BranchTendrils, true)
		meshes = append(meshes, Sweep(pts, sculpt.BranchTubeRadius, sculpt.CurveSegments, sculpt.RadialSegments))
	}
	return Merge(meshes)
}
