package dtsfile

// ShapeHeaderV2 holds the counts of shapes of versions 2 and 3.
type ShapeHeaderV2 struct {
	NumNodes        int32 `json:"numNodes"`
	NumSequences    int32 `json:"numSequences"`
	NumSubSequences int32 `json:"numSubSequences"`
	NumKeyFrames    int32 `json:"numKeyFrames"`
	NumTransforms   int32 `json:"numTransforms"`
	NumNames        int32 `json:"numNames"`
	NumObjects      int32 `json:"numObjects"`
	NumDetails      int32 `json:"numDetails"`
	NumMeshes       int32 `json:"numMeshes"`
	NumTransitions  int32 `json:"numTransitions"`
}

// ShapeHeaderV5 adds NumFrameTriggers to ShapeHeaderV2. It is used from
// version 5 onward.
type ShapeHeaderV5 struct {
	NumNodes         int32 `json:"numNodes"`
	NumSequences     int32 `json:"numSequences"`
	NumSubSequences  int32 `json:"numSubSequences"`
	NumKeyFrames     int32 `json:"numKeyFrames"`
	NumTransforms    int32 `json:"numTransforms"`
	NumNames         int32 `json:"numNames"`
	NumObjects       int32 `json:"numObjects"`
	NumDetails       int32 `json:"numDetails"`
	NumMeshes        int32 `json:"numMeshes"`
	NumTransitions   int32 `json:"numTransitions"`
	NumFrameTriggers int32 `json:"numFrameTriggers"`
}

// DataV2 is the bounding sphere of a shape.
type DataV2 struct {
	Radius float32  `json:"radius"`
	Centre Vector3F `json:"centre"`
}

// DataV8 adds a bounding box to DataV2.
type DataV8 struct {
	Radius float32      `json:"radius"`
	Centre Vector3F     `json:"centre"`
	Bounds Vector3FPair `json:"bounds"`
}

// NodeV2 is a joint of the skeleton. Parent is -1 for root nodes.
type NodeV2 struct {
	Name             int32 `json:"name"`
	Parent           int32 `json:"parent"`
	NumSubSequences  int32 `json:"numSubSequences"`
	FirstSubSequence int32 `json:"firstSubSequence"`
	DefaultTransform int32 `json:"defaultTransform"`
}

// NodeV8 narrows the fields of NodeV2 to 16 bits.
type NodeV8 struct {
	Name             int16 `json:"name"`
	Parent           int16 `json:"parent"`
	NumSubSequences  int16 `json:"numSubSequences"`
	FirstSubSequence int16 `json:"firstSubSequence"`
	DefaultTransform int16 `json:"defaultTransform"`
}

// SequenceV2 is a named animation clip.
type SequenceV2 struct {
	NameIndex int32   `json:"nameIndex"`
	Cyclic    int32   `json:"cyclic"`
	Duration  float32 `json:"duration"`
	Priority  int32   `json:"priority"`
}

// SequenceV5 adds frame trigger and IFL ranges to SequenceV2.
type SequenceV5 struct {
	NameIndex           int32   `json:"nameIndex"`
	Cyclic              int32   `json:"cyclic"`
	Duration            float32 `json:"duration"`
	Priority            int32   `json:"priority"`
	FirstFrameTrigger   int32   `json:"firstFrameTrigger"`
	NumFrameTriggers    int32   `json:"numFrameTriggers"`
	NumIflSubSequences  int32   `json:"numIflSubSequences"`
	FirstIflSubSequence int32   `json:"firstIflSubSequence"`
}

// SubSequenceV2 is the range of keyframes a sequence animates a node with.
type SubSequenceV2 struct {
	SequenceIndex int32 `json:"sequenceIndex"`
	NumKeyFrames  int32 `json:"numKeyFrames"`
	FirstKeyFrame int32 `json:"firstKeyFrame"`
}

// SubSequenceV8 narrows the fields of SubSequenceV2 to 16 bits.
type SubSequenceV8 struct {
	SequenceIndex int16 `json:"sequenceIndex"`
	NumKeyFrames  int16 `json:"numKeyFrames"`
	FirstKeyFrame int16 `json:"firstKeyFrame"`
}

// KeyframeV2 is a keyframe of a version 2 shape.
type KeyframeV2 struct {
	Position float32 `json:"position"`
	KeyValue uint32  `json:"keyValue"`
}

// KeyframeV3 adds a material index to KeyframeV2.
type KeyframeV3 struct {
	Position float32 `json:"position"`
	KeyValue uint32  `json:"keyValue"`
	MatIndex uint32  `json:"matIndex"`
}

// KeyframeV8 narrows the indices of KeyframeV3 to 16 bits.
type KeyframeV8 struct {
	Position float32 `json:"position"`
	KeyValue uint16  `json:"keyValue"`
	MatIndex uint16  `json:"matIndex"`
}

// TransformV2 is a node transform with a floating-point rotation.
type TransformV2 struct {
	Rotation    Quaternion4F `json:"rotation"`
	Translation Vector3F     `json:"translation"`
	Scale       Vector3F     `json:"scale"`
}

// TransformV7 is a node transform with a 16-bit rotation.
type TransformV7 struct {
	Rotation    Quaternion4S `json:"rotation"`
	Translation Vector3F     `json:"translation"`
	Scale       Vector3F     `json:"scale"`
}

// TransformV8 drops the scale of TransformV7.
type TransformV8 struct {
	Rotation    Quaternion4S `json:"rotation"`
	Translation Vector3F     `json:"translation"`
}

// ObjectV2 attaches a mesh to a node.
type ObjectV2 struct {
	NameIndex        int16       `json:"nameIndex"`
	Flags            int16       `json:"flags"`
	MeshIndex        int32       `json:"meshIndex"`
	NodeIndex        int32       `json:"nodeIndex"`
	DepFlags         int32       `json:"depFlags"`
	Dep              [3]Vector3F `json:"dep"`
	ObjectOffset     Vector3F    `json:"objectOffset"`
	NumSubSequences  int32       `json:"numSubSequences"`
	FirstSubSequence int32       `json:"firstSubSequence"`
}

// ObjectV8 drops the dependency fields of ObjectV2 and narrows its indices.
type ObjectV8 struct {
	NameIndex        int16    `json:"nameIndex"`
	Flags            int16    `json:"flags"`
	MeshIndex        int32    `json:"meshIndex"`
	NodeIndex        int16    `json:"nodeIndex"`
	ObjectOffset     Vector3F `json:"objectOffset"`
	NumSubSequences  int16    `json:"numSubSequences"`
	FirstSubSequence int16    `json:"firstSubSequence"`
}

// Detail is a level of detail.
type Detail struct {
	NameIndex int32   `json:"nameIndex"`
	Size      float32 `json:"size"`
}

// TransitionV2 blends between two sequences.
type TransitionV2 struct {
	StartSequence int32       `json:"startSequence"`
	EndSequence   int32       `json:"endSequence"`
	StartPosition float32     `json:"startPosition"`
	EndPosition   float32     `json:"endPosition"`
	Duration      float32     `json:"duration"`
	Transform     TransformV2 `json:"transform"`
}

// TransitionV7 stores the transform of a transition inline with a 16-bit
// rotation.
type TransitionV7 struct {
	StartSequence int32        `json:"startSequence"`
	EndSequence   int32        `json:"endSequence"`
	StartPosition float32      `json:"startPosition"`
	EndPosition   float32      `json:"endPosition"`
	Duration      float32      `json:"duration"`
	Rotation      Quaternion4S `json:"rotation"`
	Translation   Vector3F     `json:"translation"`
	Scale         Vector3F     `json:"scale"`
}

// TransitionV8 is a transition with a TransformV8.
type TransitionV8 struct {
	StartSequence  int32       `json:"startSequence"`
	EndSequence    int32       `json:"endSequence"`
	StartPosition  float32     `json:"startPosition"`
	EndPosition    float32     `json:"endPosition"`
	Duration       float32     `json:"duration"`
	Transformation TransformV8 `json:"transformation"`
}

// FrameTrigger marks a position within a sequence.
type FrameTrigger struct {
	Position float32 `json:"position"`
	Value    float32 `json:"value"`
}

// FooterV5 follows the frame triggers of a version 5 shape.
type FooterV5 struct {
	NumDefaultMaterials int32 `json:"numDefaultMaterials"`
}

// FooterV6 adds the node that is always drawn.
type FooterV6 struct {
	NumDefaultMaterials int32 `json:"numDefaultMaterials"`
	AlwaysNode          int32 `json:"alwaysNode"`
}

// ShapeV2 is a version 2 shape.
type ShapeV2 struct {
	Tag          TagHeader       `json:"tagHeader"`
	Header       ShapeHeaderV2   `json:"header"`
	Data         DataV2          `json:"data"`
	Nodes        []NodeV2        `json:"nodes"`
	Sequences    []SequenceV2    `json:"sequences"`
	SubSequences []SubSequenceV2 `json:"subSequences"`
	Keyframes    []KeyframeV2    `json:"keyframes"`
	Transforms   []TransformV2   `json:"transforms"`
	Names        []Name          `json:"names"`
	Objects      []ObjectV2      `json:"objects"`
	Details      []Detail        `json:"details"`
	Transitions  []TransitionV2  `json:"transitions"`
	Meshes       []Mesh          `json:"meshes"`
	MaterialList MaterialList    `json:"materialList"`
}

// ShapeV3 adds a material index to each keyframe.
type ShapeV3 struct {
	Tag          TagHeader       `json:"tagHeader"`
	Header       ShapeHeaderV2   `json:"header"`
	Data         DataV2          `json:"data"`
	Nodes        []NodeV2        `json:"nodes"`
	Sequences    []SequenceV2    `json:"sequences"`
	SubSequences []SubSequenceV2 `json:"subSequences"`
	Keyframes    []KeyframeV3    `json:"keyframes"`
	Transforms   []TransformV2   `json:"transforms"`
	Names        []Name          `json:"names"`
	Objects      []ObjectV2      `json:"objects"`
	Details      []Detail        `json:"details"`
	Transitions  []TransitionV2  `json:"transitions"`
	Meshes       []Mesh          `json:"meshes"`
	MaterialList MaterialList    `json:"materialList"`
}

// ShapeV5 adds frame triggers and a footer.
type ShapeV5 struct {
	Tag           TagHeader       `json:"tagHeader"`
	Header        ShapeHeaderV5   `json:"header"`
	Data          DataV2          `json:"data"`
	Nodes         []NodeV2        `json:"nodes"`
	Sequences     []SequenceV5    `json:"sequences"`
	SubSequences  []SubSequenceV2 `json:"subSequences"`
	Keyframes     []KeyframeV3    `json:"keyframes"`
	Transforms    []TransformV2   `json:"transforms"`
	Names         []Name          `json:"names"`
	Objects       []ObjectV2      `json:"objects"`
	Details       []Detail        `json:"details"`
	Transitions   []TransitionV2  `json:"transitions"`
	FrameTriggers []FrameTrigger  `json:"frameTriggers"`
	Footer        FooterV5        `json:"footer"`
	Meshes        []Mesh          `json:"meshes"`
	MaterialList  MaterialList    `json:"materialList"`
}

// ShapeV6 adds the always-drawn node to the footer.
type ShapeV6 struct {
	Tag           TagHeader       `json:"tagHeader"`
	Header        ShapeHeaderV5   `json:"header"`
	Data          DataV2          `json:"data"`
	Nodes         []NodeV2        `json:"nodes"`
	Sequences     []SequenceV5    `json:"sequences"`
	SubSequences  []SubSequenceV2 `json:"subSequences"`
	Keyframes     []KeyframeV3    `json:"keyframes"`
	Transforms    []TransformV2   `json:"transforms"`
	Names         []Name          `json:"names"`
	Objects       []ObjectV2      `json:"objects"`
	Details       []Detail        `json:"details"`
	Transitions   []TransitionV2  `json:"transitions"`
	FrameTriggers []FrameTrigger  `json:"frameTriggers"`
	Footer        FooterV6        `json:"footer"`
	Meshes        []Mesh          `json:"meshes"`
	MaterialList  MaterialList    `json:"materialList"`
}

// ShapeV7 narrows transform rotations to 16 bits.
type ShapeV7 struct {
	Tag           TagHeader       `json:"tagHeader"`
	Header        ShapeHeaderV5   `json:"header"`
	Data          DataV2          `json:"data"`
	Nodes         []NodeV2        `json:"nodes"`
	Sequences     []SequenceV5    `json:"sequences"`
	SubSequences  []SubSequenceV2 `json:"subSequences"`
	Keyframes     []KeyframeV3    `json:"keyframes"`
	Transforms    []TransformV7   `json:"transforms"`
	Names         []Name          `json:"names"`
	Objects       []ObjectV2      `json:"objects"`
	Details       []Detail        `json:"details"`
	Transitions   []TransitionV7  `json:"transitions"`
	FrameTriggers []FrameTrigger  `json:"frameTriggers"`
	Footer        FooterV6        `json:"footer"`
	Meshes        []Mesh          `json:"meshes"`
	MaterialList  MaterialList    `json:"materialList"`
}

// ShapeV8 narrows most indices to 16 bits, drops transform scale, and adds a
// bounding box.
type ShapeV8 struct {
	Tag           TagHeader       `json:"tagHeader"`
	Header        ShapeHeaderV5   `json:"header"`
	Data          DataV8          `json:"data"`
	Nodes         []NodeV8        `json:"nodes"`
	Sequences     []SequenceV5    `json:"sequences"`
	SubSequences  []SubSequenceV8 `json:"subSequences"`
	Keyframes     []KeyframeV8    `json:"keyframes"`
	Transforms    []TransformV8   `json:"transforms"`
	Names         []Name          `json:"names"`
	Objects       []ObjectV8      `json:"objects"`
	Details       []Detail        `json:"details"`
	Transitions   []TransitionV8  `json:"transitions"`
	FrameTriggers []FrameTrigger  `json:"frameTriggers"`
	Footer        FooterV6        `json:"footer"`
	Meshes        []Mesh          `json:"meshes"`
	MaterialList  MaterialList    `json:"materialList"`
}

func (s *ShapeV2) RecordHeader() TagHeader { return s.Tag }
func (s *ShapeV3) RecordHeader() TagHeader { return s.Tag }
func (s *ShapeV5) RecordHeader() TagHeader { return s.Tag }
func (s *ShapeV6) RecordHeader() TagHeader { return s.Tag }
func (s *ShapeV7) RecordHeader() TagHeader { return s.Tag }
func (s *ShapeV8) RecordHeader() TagHeader { return s.Tag }

func (*ShapeV2) Version() uint32 { return 2 }
func (*ShapeV3) Version() uint32 { return 3 }
func (*ShapeV5) Version() uint32 { return 5 }
func (*ShapeV6) Version() uint32 { return 6 }
func (*ShapeV7) Version() uint32 { return 7 }
func (*ShapeV8) Version() uint32 { return 8 }

func (*ShapeV2) ClassName() string { return ShapeClassName }
func (*ShapeV3) ClassName() string { return ShapeClassName }
func (*ShapeV5) ClassName() string { return ShapeClassName }
func (*ShapeV6) ClassName() string { return ShapeClassName }
func (*ShapeV7) ClassName() string { return ShapeClassName }
func (*ShapeV8) ClassName() string { return ShapeClassName }

func (s *ShapeV2) MeshList() []Mesh { return s.Meshes }
func (s *ShapeV3) MeshList() []Mesh { return s.Meshes }
func (s *ShapeV5) MeshList() []Mesh { return s.Meshes }
func (s *ShapeV6) MeshList() []Mesh { return s.Meshes }
func (s *ShapeV7) MeshList() []Mesh { return s.Meshes }
func (s *ShapeV8) MeshList() []Mesh { return s.Meshes }

func (s *ShapeV2) Materials() MaterialList { return s.MaterialList }
func (s *ShapeV3) Materials() MaterialList { return s.MaterialList }
func (s *ShapeV5) Materials() MaterialList { return s.MaterialList }
func (s *ShapeV6) Materials() MaterialList { return s.MaterialList }
func (s *ShapeV7) Materials() MaterialList { return s.MaterialList }
func (s *ShapeV8) Materials() MaterialList { return s.MaterialList }
