package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tendril-bg-renderer/internal/palette"
	"tendril-bg-renderer/internal/tube"
)

func TestDocumentLayout(t *testing.T) {
	m := tube.BuildSculpture()
	p, _ := palette.Lookup("dark")

	doc, err := Document(m, p)
	require.NoError(t, err)

	require.Len(t, doc.Buffers, 1)
	require.Len(t, doc.BufferViews, 4)
	require.Len(t, doc.Accessors, 4)
	require.Len(t, doc.Materials, 1)
	require.Len(t, doc.Meshes, 1)
	require.Len(t, doc.Nodes, 1)
	require.Len(t, doc.Scenes, 1)

	// One interleaved payload: u32 indices plus vec3 positions, vec3
	// normals and vec2 UVs as f32.
	wantBytes := len(m.Indices)*4 + len(m.RestPose)*12 + len(m.Normals)*12 + len(m.UVs)*8
	assert.Equal(t, uint32(wantBytes), doc.Buffers[0].ByteLength)
	assert.Len(t, doc.Buffers[0].Data, wantBytes)

	idx := doc.Accessors[0]
	assert.Equal(t, gltf.ComponentUint, idx.ComponentType)
	assert.Equal(t, gltf.AccessorScalar, idx.Type)
	assert.Equal(t, uint32(len(m.Indices)), idx.Count)

	pos := doc.Accessors[1]
	assert.Equal(t, gltf.AccessorVec3, pos.Type)
	assert.Equal(t, uint32(len(m.RestPose)), pos.Count)
	require.Len(t, pos.Min, 3)
	require.Len(t, pos.Max, 3)
	for k := 0; k < 3; k++ {
		assert.LessOrEqual(t, pos.Min[k], pos.Max[k])
	}

	prim := doc.Meshes[0].Primitives[0]
	assert.Equal(t, gltf.PrimitiveTriangles, prim.Mode)
	assert.Equal(t, uint32(1), prim.Attributes["POSITION"])
	assert.Equal(t, uint32(2), prim.Attributes["NORMAL"])
	assert.Equal(t, uint32(3), prim.Attributes["TEXCOORD_0"])

	mat := doc.Materials[0]
	require.NotNil(t, mat.PBRMetallicRoughness)
	assert.True(t, mat.DoubleSided)
	base := *mat.PBRMetallicRoughness.BaseColorFactor
	assert.Equal(t, p.MeshColor[0], base[0])
	assert.Equal(t, float32(1), base[3])
}

func TestDocumentEmptyMesh(t *testing.T) {
	_, err := Document(&tube.MergedMesh{}, palette.Palette{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty mesh")
}

func TestWriteGLB(t *testing.T) {
	m := tube.BuildSculpture()
	p, _ := palette.Lookup("light")
	path := filepath.Join(t.TempDir(), "sculpture.glb")

	require.NoError(t, WriteGLB(path, m, p))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "glTF", string(data[:4]))
}
