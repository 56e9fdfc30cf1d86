package dts

// shapeLayout holds the packed size in bytes of each record of a shape
// version. A size of zero means the record is absent from the version.
type shapeLayout struct {
	Header       int
	Data         int
	Node         int
	Sequence     int
	SubSequence  int
	Keyframe     int
	Transform    int
	Name         int
	Object       int
	Detail       int
	Transition   int
	FrameTrigger int
	Footer       int

	// MaterialListFlag is whether an i32 flag indicating the presence of a
	// material list follows the meshes.
	MaterialListFlag bool
}

var shapeLayouts = map[uint32]shapeLayout{
	2: {
		Header: 40, Data: 16, Node: 20, Sequence: 16, SubSequence: 12,
		Keyframe: 8, Transform: 40, Name: 24, Object: 72, Detail: 8,
		Transition: 60, FrameTrigger: 0, Footer: 0,
		MaterialListFlag: true,
	},
	3: {
		Header: 40, Data: 16, Node: 20, Sequence: 16, SubSequence: 12,
		Keyframe: 12, Transform: 40, Name: 24, Object: 72, Detail: 8,
		Transition: 60, FrameTrigger: 0, Footer: 0,
		MaterialListFlag: true,
	},
	5: {
		Header: 44, Data: 16, Node: 20, Sequence: 32, SubSequence: 12,
		Keyframe: 12, Transform: 40, Name: 24, Object: 72, Detail: 8,
		Transition: 60, FrameTrigger: 8, Footer: 4,
		MaterialListFlag: true,
	},
	6: {
		Header: 44, Data: 16, Node: 20, Sequence: 32, SubSequence: 12,
		Keyframe: 12, Transform: 40, Name: 24, Object: 72, Detail: 8,
		Transition: 60, FrameTrigger: 8, Footer: 8,
		MaterialListFlag: true,
	},
	7: {
		Header: 44, Data: 16, Node: 20, Sequence: 32, SubSequence: 12,
		Keyframe: 12, Transform: 32, Name: 24, Object: 72, Detail: 8,
		Transition: 52, FrameTrigger: 8, Footer: 8,
		MaterialListFlag: true,
	},
	8: {
		Header: 44, Data: 40, Node: 10, Sequence: 32, SubSequence: 6,
		Keyframe: 8, Transform: 20, Name: 24, Object: 28, Detail: 8,
		Transition: 40, FrameTrigger: 8, Footer: 8,
		MaterialListFlag: true,
	},
}

// Packed sizes of mesh records.
const (
	meshHeaderV1Size  = 48
	meshHeaderV2Size  = 52
	meshHeaderV3Size  = 28
	vertexSize        = 4
	textureVertexSize = 8
	faceSize          = 28
	frameV1Size       = 4
	frameV3Size       = 28
)

// Packed sizes of material list records.
const (
	materialListHeaderSize = 8
	materialV2Size         = 48
	materialV3Size         = 60
	materialV4Size         = 64
)
