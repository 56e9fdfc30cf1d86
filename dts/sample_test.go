package dts

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/siegetools/dtsfile"
)

// fixture builds little-endian byte data.
type fixture struct {
	bytes.Buffer
}

func (f *fixture) put(v interface{}) *fixture {
	binary.Write(&f.Buffer, binary.LittleEndian, v)
	return f
}

func (f *fixture) i16(v ...int16) *fixture   { return f.put(v) }
func (f *fixture) i32(v ...int32) *fixture   { return f.put(v) }
func (f *fixture) u32(v ...uint32) *fixture  { return f.put(v) }
func (f *fixture) f32(v ...float32) *fixture { return f.put(v) }
func (f *fixture) raw(b ...byte) *fixture    { f.Write(b); return f }

// tag writes a tagged header with the given class name.
func (f *fixture) tag(class string, version uint32) *fixture {
	f.raw('P', 'E', 'R', 'S')
	f.i32(0)
	f.i16(int16(len(class)))
	f.WriteString(class)
	if len(class) < 16 {
		f.raw(0)
	}
	return f.u32(version)
}

func (f *fixture) bytes() []byte {
	return f.Buffer.Bytes()
}

var one = dtsfile.Vector3F{X: 1, Y: 1, Z: 1}

// nanBits is a float with a NaN payload that must survive a round trip.
var nanBits = math.Float32frombits(0x7FC0BEEF)

func sampleMesh() *dtsfile.MeshV3 {
	return &dtsfile.MeshV3{
		Header: dtsfile.MeshHeaderV3{
			NumVerts:             2,
			VertsPerFrame:        2,
			NumTextureVerts:      1,
			NumFaces:             1,
			NumFrames:            1,
			TextureVertsPerFrame: 1,
			Radius:               1.5,
		},
		Vertices:        []dtsfile.Vertex{{X: 1, Y: 2, Z: 3, Normal: 4}, {X: 5, Y: 6, Z: 7, Normal: 8}},
		TextureVertices: []dtsfile.TextureVertex{{X: 0.25, Y: 0.75}},
		Faces:           []dtsfile.Face{{VI1: 0, VI2: 1, VI3: 1}},
		Frames:          []dtsfile.FrameV3{{FirstVert: 0, Scale: one}},
	}
}

func sampleMeshV1() *dtsfile.MeshV1 {
	return &dtsfile.MeshV1{
		Header: dtsfile.MeshHeaderV1{
			NumVerts:        1,
			VertsPerFrame:   1,
			NumTextureVerts: 0,
			NumFaces:        0,
			NumFrames:       1,
			Scale:           one,
			Radius:          3,
		},
		Vertices:        []dtsfile.Vertex{{X: 9, Y: 8, Z: 7, Normal: 6}},
		TextureVertices: []dtsfile.TextureVertex{},
		Faces:           []dtsfile.Face{},
		Frames:          []dtsfile.FrameV1{{FirstVert: 0}},
	}
}

func sampleMeshV2() *dtsfile.MeshV2 {
	return &dtsfile.MeshV2{
		Header: dtsfile.MeshHeaderV2{
			NumVerts:             1,
			VertsPerFrame:        1,
			NumTextureVerts:      1,
			NumFaces:             0,
			NumFrames:            1,
			TextureVertsPerFrame: 1,
			Origin:               dtsfile.Vector3F{Z: -1},
		},
		Vertices:        []dtsfile.Vertex{{X: 1}},
		TextureVertices: []dtsfile.TextureVertex{{X: 1, Y: 0}},
		Faces:           []dtsfile.Face{},
		Frames:          []dtsfile.FrameV1{{FirstVert: 0}},
	}
}

func sampleMaterialsV3() *dtsfile.MaterialListV3 {
	return &dtsfile.MaterialListV3{
		Header: dtsfile.MaterialListHeader{NumDetails: 1, NumMaterials: 2},
		Materials: []dtsfile.MaterialV3{
			{Flags: 1, Alpha: 1, Index: 0, RGBData: dtsfile.RGBData{Red: 255}, FileName: dtsfile.NewFileName("hull.bmp"), Type: 2, Elasticity: 0.5, Friction: 0.25},
			{Flags: 2, Alpha: 0.5, Index: 1, FileName: dtsfile.NewFileName("glass.bmp")},
		},
	}
}

func sampleMaterialsV4() *dtsfile.MaterialListV4 {
	return &dtsfile.MaterialListV4{
		Header: dtsfile.MaterialListHeader{NumDetails: 2, NumMaterials: 1},
		Materials: []dtsfile.MaterialV4{
			{Flags: 1, Alpha: 1, FileName: dtsfile.NewFileName("skin.bmp"), UseDefaultProperties: 1},
			{Flags: 1, Alpha: 1, FileName: dtsfile.NewFileName("skin_lod.bmp"), Friction: 0.75},
		},
	}
}

func sampleNames() []dtsfile.Name {
	return []dtsfile.Name{dtsfile.NewName("root"), dtsfile.NewName("walk")}
}

// sampleShape returns a shape of the given version with one element in each
// list and valid indices.
func sampleShape(version uint32) dtsfile.Shape {
	switch version {
	case 2:
		return &dtsfile.ShapeV2{
			Header: dtsfile.ShapeHeaderV2{
				NumNodes: 1, NumSequences: 1, NumSubSequences: 1, NumKeyFrames: 1, NumTransforms: 1,
				NumNames: 2, NumObjects: 1, NumDetails: 1, NumMeshes: 2, NumTransitions: 1,
			},
			Data:         dtsfile.DataV2{Radius: 2, Centre: dtsfile.Vector3F{X: 1}},
			Nodes:        []dtsfile.NodeV2{{Name: 0, Parent: -1, NumSubSequences: 1, DefaultTransform: 0}},
			Sequences:    []dtsfile.SequenceV2{{NameIndex: 1, Cyclic: 1, Duration: 1.5}},
			SubSequences: []dtsfile.SubSequenceV2{{SequenceIndex: 0, NumKeyFrames: 1}},
			Keyframes:    []dtsfile.KeyframeV2{{Position: 0.5, KeyValue: 0}},
			Transforms:   []dtsfile.TransformV2{{Rotation: dtsfile.Quaternion4F{W: 1}, Scale: one}},
			Names:        sampleNames(),
			Objects:      []dtsfile.ObjectV2{{NameIndex: 0, MeshIndex: 0, NodeIndex: 0, Dep: [3]dtsfile.Vector3F{{X: 1}, {Y: 1}, {Z: 1}}}},
			Details:      []dtsfile.Detail{{NameIndex: 0, Size: 100}},
			Transitions:  []dtsfile.TransitionV2{{Duration: 0.25, Transform: dtsfile.TransformV2{Scale: one}}},
			Meshes:       []dtsfile.Mesh{sampleMeshV1(), sampleMeshV2()},
			MaterialList: sampleMaterialsV3(),
		}
	case 3:
		return &dtsfile.ShapeV3{
			Header: dtsfile.ShapeHeaderV2{
				NumNodes: 1, NumSequences: 1, NumSubSequences: 1, NumKeyFrames: 1, NumTransforms: 1,
				NumNames: 2, NumObjects: 1, NumDetails: 1, NumMeshes: 1, NumTransitions: 1,
			},
			Data:         dtsfile.DataV2{Radius: 2},
			Nodes:        []dtsfile.NodeV2{{Name: 0, Parent: -1, NumSubSequences: 1, DefaultTransform: 0}},
			Sequences:    []dtsfile.SequenceV2{{NameIndex: 1, Cyclic: 0, Duration: 2, Priority: 3}},
			SubSequences: []dtsfile.SubSequenceV2{{SequenceIndex: 0, NumKeyFrames: 1}},
			Keyframes:    []dtsfile.KeyframeV3{{Position: 1, KeyValue: 0, MatIndex: 7}},
			Transforms:   []dtsfile.TransformV2{{Rotation: dtsfile.Quaternion4F{W: 1}, Translation: one, Scale: one}},
			Names:        sampleNames(),
			Objects:      []dtsfile.ObjectV2{{NameIndex: 0, Flags: 4, MeshIndex: 0, NodeIndex: 0}},
			Details:      []dtsfile.Detail{{NameIndex: 0, Size: 50}},
			Transitions:  []dtsfile.TransitionV2{{StartPosition: 0.1, EndPosition: 0.9}},
			Meshes:       []dtsfile.Mesh{sampleMesh()},
			MaterialList: nil,
		}
	case 5:
		return &dtsfile.ShapeV5{
			Header: dtsfile.ShapeHeaderV5{
				NumNodes: 1, NumSequences: 1, NumSubSequences: 1, NumKeyFrames: 1, NumTransforms: 1,
				NumNames: 2, NumObjects: 1, NumDetails: 1, NumMeshes: 1, NumTransitions: 1,
				NumFrameTriggers: 1,
			},
			Data:          dtsfile.DataV2{Radius: nanBits},
			Nodes:         []dtsfile.NodeV2{{Name: 0, Parent: -1, NumSubSequences: 1, DefaultTransform: 0}},
			Sequences:     []dtsfile.SequenceV5{{NameIndex: 1, Duration: 1, FirstFrameTrigger: 0, NumFrameTriggers: 1}},
			SubSequences:  []dtsfile.SubSequenceV2{{SequenceIndex: 0, NumKeyFrames: 1}},
			Keyframes:     []dtsfile.KeyframeV3{{Position: 0}},
			Transforms:    []dtsfile.TransformV2{{Rotation: dtsfile.Quaternion4F{W: 1}}},
			Names:         sampleNames(),
			Objects:       []dtsfile.ObjectV2{{NameIndex: 0, MeshIndex: 0, NodeIndex: 0}},
			Details:       []dtsfile.Detail{{NameIndex: 0, Size: 10}},
			Transitions:   []dtsfile.TransitionV2{{Duration: 1}},
			FrameTriggers: []dtsfile.FrameTrigger{{Position: 0.5, Value: 1}},
			Footer:        dtsfile.FooterV5{NumDefaultMaterials: 2},
			Meshes:        []dtsfile.Mesh{sampleMesh()},
			MaterialList:  sampleMaterialsV3(),
		}
	case 6:
		return &dtsfile.ShapeV6{
			Header: dtsfile.ShapeHeaderV5{
				NumNodes: 1, NumSequences: 1, NumSubSequences: 1, NumKeyFrames: 1, NumTransforms: 1,
				NumNames: 2, NumObjects: 1, NumDetails: 1, NumMeshes: 1, NumTransitions: 1,
				NumFrameTriggers: 1,
			},
			Data:          dtsfile.DataV2{Radius: 4},
			Nodes:         []dtsfile.NodeV2{{Name: 0, Parent: -1, NumSubSequences: 1, DefaultTransform: 0}},
			Sequences:     []dtsfile.SequenceV5{{NameIndex: 1, Duration: 1, NumFrameTriggers: 1, NumIflSubSequences: 0}},
			SubSequences:  []dtsfile.SubSequenceV2{{SequenceIndex: 0, NumKeyFrames: 1}},
			Keyframes:     []dtsfile.KeyframeV3{{Position: 0.75, KeyValue: 0}},
			Transforms:    []dtsfile.TransformV2{{Rotation: dtsfile.Quaternion4F{X: 0.5, W: 0.5}}},
			Names:         sampleNames(),
			Objects:       []dtsfile.ObjectV2{{NameIndex: 0, MeshIndex: 0, NodeIndex: 0}},
			Details:       []dtsfile.Detail{{NameIndex: 0, Size: 10}},
			Transitions:   []dtsfile.TransitionV2{{Duration: 1}},
			FrameTriggers: []dtsfile.FrameTrigger{{Position: 0.5, Value: 2}},
			Footer:        dtsfile.FooterV6{NumDefaultMaterials: 1, AlwaysNode: 0},
			Meshes:        []dtsfile.Mesh{sampleMesh()},
			MaterialList:  sampleMaterialsV4(),
		}
	case 7:
		return &dtsfile.ShapeV7{
			Header: dtsfile.ShapeHeaderV5{
				NumNodes: 1, NumSequences: 1, NumSubSequences: 1, NumKeyFrames: 1, NumTransforms: 1,
				NumNames: 2, NumObjects: 1, NumDetails: 1, NumMeshes: 1, NumTransitions: 1,
				NumFrameTriggers: 1,
			},
			Data:          dtsfile.DataV2{Radius: 4, Centre: one},
			Nodes:         []dtsfile.NodeV2{{Name: 0, Parent: -1, NumSubSequences: 1, DefaultTransform: 0}},
			Sequences:     []dtsfile.SequenceV5{{NameIndex: 1, Cyclic: 1, Duration: 3, NumFrameTriggers: 1}},
			SubSequences:  []dtsfile.SubSequenceV2{{SequenceIndex: 0, NumKeyFrames: 1}},
			Keyframes:     []dtsfile.KeyframeV3{{Position: 0.75, KeyValue: 0, MatIndex: 1}},
			Transforms:    []dtsfile.TransformV7{{Rotation: dtsfile.Quaternion4S{W: 32767}, Translation: one, Scale: one}},
			Names:         sampleNames(),
			Objects:       []dtsfile.ObjectV2{{NameIndex: 0, MeshIndex: 0, NodeIndex: 0, ObjectOffset: one}},
			Details:       []dtsfile.Detail{{NameIndex: 0, Size: 10}},
			Transitions:   []dtsfile.TransitionV7{{Duration: 1, Rotation: dtsfile.Quaternion4S{X: -1, W: 32767}, Scale: one}},
			FrameTriggers: []dtsfile.FrameTrigger{{Position: 0.5, Value: 2}},
			Footer:        dtsfile.FooterV6{NumDefaultMaterials: 1, AlwaysNode: -1},
			Meshes:        []dtsfile.Mesh{sampleMesh()},
			MaterialList:  sampleMaterialsV4(),
		}
	case 8:
		return &dtsfile.ShapeV8{
			Header: dtsfile.ShapeHeaderV5{
				NumNodes: 1, NumSequences: 1, NumSubSequences: 1, NumKeyFrames: 1, NumTransforms: 1,
				NumNames: 2, NumObjects: 1, NumDetails: 1, NumMeshes: 1, NumTransitions: 1,
				NumFrameTriggers: 1,
			},
			Data:          dtsfile.DataV8{Radius: 4, Bounds: dtsfile.Vector3FPair{Min: dtsfile.Vector3F{X: -1, Y: -1, Z: -1}, Max: one}},
			Nodes:         []dtsfile.NodeV8{{Name: 0, Parent: -1, NumSubSequences: 1, DefaultTransform: 0}},
			Sequences:     []dtsfile.SequenceV5{{NameIndex: 1, Cyclic: 1, Duration: 3, NumFrameTriggers: 1}},
			SubSequences:  []dtsfile.SubSequenceV8{{SequenceIndex: 0, NumKeyFrames: 1}},
			Keyframes:     []dtsfile.KeyframeV8{{Position: 0.75, KeyValue: 0, MatIndex: 1}},
			Transforms:    []dtsfile.TransformV8{{Rotation: dtsfile.Quaternion4S{W: 32767}, Translation: one}},
			Names:         sampleNames(),
			Objects:       []dtsfile.ObjectV8{{NameIndex: 0, Flags: 1, MeshIndex: 0, NodeIndex: 0, ObjectOffset: one}},
			Details:       []dtsfile.Detail{{NameIndex: 1, Size: 10}},
			Transitions:   []dtsfile.TransitionV8{{Duration: 1, Transformation: dtsfile.TransformV8{Translation: one}}},
			FrameTriggers: []dtsfile.FrameTrigger{{Position: 0.5, Value: 2}},
			Footer:        dtsfile.FooterV6{NumDefaultMaterials: 1, AlwaysNode: 0},
			Meshes:        []dtsfile.Mesh{sampleMesh()},
			MaterialList:  sampleMaterialsV3(),
		}
	}
	return nil
}
