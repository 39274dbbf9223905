// Package export writes the rest-pose sculpture as binary glTF so a page
// that renders the background live can load the exact same geometry.
package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"

	"tendril-bg-renderer/internal/palette"
	"tendril-bg-renderer/internal/tube"
)

// Document builds a glTF document holding the merged rest-pose mesh with a
// PBR material derived from the theme palette.
func Document(m *tube.MergedMesh, p palette.Palette) (*gltf.Document, error) {
	if len(m.RestPose) == 0 {
		return nil, fmt.Errorf("export: empty mesh")
	}

	doc := &gltf.Document{}
	doc.Asset.Version = "2.0"
	sceneIdx := uint32(0)
	doc.Scene = &sceneIdx
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Nodes: []uint32{0}})

	buffer := &gltf.Buffer{}
	doc.Buffers = append(doc.Buffers, buffer)

	buf := bytes.NewBuffer(nil)

	appendView := func(data interface{}) (*gltf.BufferView, error) {
		view := &gltf.BufferView{Buffer: 0, ByteOffset: uint32(buf.Len())}
		if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
			return nil, fmt.Errorf("export: buffer write: %w", err)
		}
		view.ByteLength = uint32(buf.Len()) - view.ByteOffset
		doc.BufferViews = append(doc.BufferViews, view)
		return view, nil
	}

	if _, err := appendView(m.Indices); err != nil {
		return nil, err
	}
	if _, err := appendView(m.RestPose); err != nil {
		return nil, err
	}
	if _, err := appendView(m.Normals); err != nil {
		return nil, err
	}
	if _, err := appendView(m.UVs); err != nil {
		return nil, err
	}

	buffer.ByteLength = uint32(buf.Len())
	buffer.Data = buf.Bytes()

	bvIdx := uint32(0)
	bvPos := uint32(1)
	bvNrm := uint32(2)
	bvUV := uint32(3)

	idxAcc := &gltf.Accessor{
		BufferView:    &bvIdx,
		ComponentType: gltf.ComponentUint,
		Type:          gltf.AccessorScalar,
		Count:         uint32(len(m.Indices)),
	}
	doc.Accessors = append(doc.Accessors, idxAcc)

	min, max := bounds(m)
	posAcc := &gltf.Accessor{
		BufferView:    &bvPos,
		ComponentType: gltf.ComponentFloat,
		Type:          gltf.AccessorVec3,
		Count:         uint32(len(m.RestPose)),
		Min:           min,
		Max:           max,
	}
	doc.Accessors = append(doc.Accessors, posAcc)

	nrmAcc := &gltf.Accessor{
		BufferView:    &bvNrm,
		ComponentType: gltf.ComponentFloat,
		Type:          gltf.AccessorVec3,
		Count:         uint32(len(m.Normals)),
	}
	doc.Accessors = append(doc.Accessors, nrmAcc)

	uvAcc := &gltf.Accessor{
		BufferView:    &bvUV,
		ComponentType: gltf.ComponentFloat,
		Type:          gltf.AccessorVec2,
		Count:         uint32(len(m.UVs)),
	}
	doc.Accessors = append(doc.Accessors, uvAcc)

	metallic := float32(0.2)
	roughness := float32(0.45)
	mat := &gltf.Material{
		DoubleSided: true,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{p.MeshColor[0], p.MeshColor[1], p.MeshColor[2], 1},
			MetallicFactor:  &metallic,
			RoughnessFactor: &roughness,
		},
		EmissiveFactor: [3]float32{p.MeshEmissive[0], p.MeshEmissive[1], p.MeshEmissive[2]},
	}
	doc.Materials = append(doc.Materials, mat)

	idxAccIdx := uint32(0)
	matIdx := uint32(0)
	prim := &gltf.Primitive{
		Attributes: gltf.Attribute{
			"POSITION":   1,
			"NORMAL":     2,
			"TEXCOORD_0": 3,
		},
		Indices:  &idxAccIdx,
		Material: &matIdx,
		Mode:     gltf.PrimitiveTriangles,
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Primitives: []*gltf.Primitive{prim}})

	meshIdx := uint32(0)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Mesh: &meshIdx})

	return doc, nil
}

// WriteGLB encodes the sculpture as a binary .glb file.
func WriteGLB(path string, m *tube.MergedMesh, p palette.Palette) error {
	doc, err := Document(m, p)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	enc := gltf.NewEncoder(f)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}

func bounds(m *tube.MergedMesh) (min, max []float32) {
	min = []float32{m.RestPose[0][0], m.RestPose[0][1], m.RestPose[0][2]}
	max = []float32{m.RestPose[0][0], m.RestPose[0][1], m.RestPose[0][2]}
	for _, v := range m.RestPose {
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max
}
