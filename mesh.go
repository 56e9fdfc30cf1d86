package dtsfile

// MeshHeaderV1 holds the counts of a version 1 mesh.
type MeshHeaderV1 struct {
	NumVerts        int32    `json:"numVerts"`
	VertsPerFrame   int32    `json:"vertsPerFrame"`
	NumTextureVerts int32    `json:"numTextureVerts"`
	NumFaces        int32    `json:"numFaces"`
	NumFrames       int32    `json:"numFrames"`
	Scale           Vector3F `json:"scale"`
	Origin          Vector3F `json:"origin"`
	Radius          float32  `json:"radius"`
}

// MeshHeaderV2 adds TextureVertsPerFrame to MeshHeaderV1.
type MeshHeaderV2 struct {
	NumVerts             int32    `json:"numVerts"`
	VertsPerFrame        int32    `json:"vertsPerFrame"`
	NumTextureVerts      int32    `json:"numTextureVerts"`
	NumFaces             int32    `json:"numFaces"`
	NumFrames            int32    `json:"numFrames"`
	TextureVertsPerFrame int32    `json:"textureVertsPerFrame"`
	Scale                Vector3F `json:"scale"`
	Origin               Vector3F `json:"origin"`
	Radius               float32  `json:"radius"`
}

// MeshHeaderV3 moves the scale and origin of the mesh into each frame.
type MeshHeaderV3 struct {
	NumVerts             int32   `json:"numVerts"`
	VertsPerFrame        int32   `json:"vertsPerFrame"`
	NumTextureVerts      int32   `json:"numTextureVerts"`
	NumFaces             int32   `json:"numFaces"`
	NumFrames            int32   `json:"numFrames"`
	TextureVertsPerFrame int32   `json:"textureVertsPerFrame"`
	Radius               float32 `json:"radius"`
}

// Vertex is a packed vertex position with an index into a table of normals.
// The position is scaled and offset by the scale and origin of its frame.
type Vertex struct {
	X      uint8 `json:"x"`
	Y      uint8 `json:"y"`
	Z      uint8 `json:"z"`
	Normal uint8 `json:"normal"`
}

// TextureVertex is a texture coordinate.
type TextureVertex struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Face is a triangle of vertex and texture vertex indices.
type Face struct {
	VI1      int32 `json:"vi1"`
	TI1      int32 `json:"ti1"`
	VI2      int32 `json:"vi2"`
	TI2      int32 `json:"ti2"`
	VI3      int32 `json:"vi3"`
	TI3      int32 `json:"ti3"`
	Material int32 `json:"material"`
}

// FrameV1 is an animation frame of a version 1 or 2 mesh.
type FrameV1 struct {
	FirstVert int32 `json:"firstVert"`
}

// FrameV3 is an animation frame of a version 3 mesh.
type FrameV3 struct {
	FirstVert int32    `json:"firstVert"`
	Scale     Vector3F `json:"scale"`
	Origin    Vector3F `json:"origin"`
}

// MeshV1 is a version 1 mesh.
type MeshV1 struct {
	Tag             TagHeader       `json:"tagHeader"`
	Header          MeshHeaderV1    `json:"header"`
	Vertices        []Vertex        `json:"vertices"`
	TextureVertices []TextureVertex `json:"textureVertices"`
	Faces           []Face          `json:"faces"`
	Frames          []FrameV1       `json:"frames"`
}

// MeshV2 is a version 2 mesh.
type MeshV2 struct {
	Tag             TagHeader       `json:"tagHeader"`
	Header          MeshHeaderV2    `json:"header"`
	Vertices        []Vertex        `json:"vertices"`
	TextureVertices []TextureVertex `json:"textureVertices"`
	Faces           []Face          `json:"faces"`
	Frames          []FrameV1       `json:"frames"`
}

// MeshV3 is a version 3 mesh.
type MeshV3 struct {
	Tag             TagHeader       `json:"tagHeader"`
	Header          MeshHeaderV3    `json:"header"`
	Vertices        []Vertex        `json:"vertices"`
	TextureVertices []TextureVertex `json:"textureVertices"`
	Faces           []Face          `json:"faces"`
	Frames          []FrameV3       `json:"frames"`
}

func (m *MeshV1) RecordHeader() TagHeader { return m.Tag }
func (m *MeshV2) RecordHeader() TagHeader { return m.Tag }
func (m *MeshV3) RecordHeader() TagHeader { return m.Tag }

func (*MeshV1) Version() uint32 { return 1 }
func (*MeshV2) Version() uint32 { return 2 }
func (*MeshV3) Version() uint32 { return 3 }

func (*MeshV1) ClassName() string { return MeshClassName }
func (*MeshV2) ClassName() string { return MeshClassName }
func (*MeshV3) ClassName() string { return MeshClassName }

func (*MeshV1) mesh() {}
func (*MeshV2) mesh() {}
func (*MeshV3) mesh() {}

// NewMesh returns an empty mesh of the given version, or nil if the version is
// not supported.
func NewMesh(version uint32) Mesh {
	switch version {
	case 1:
		return &MeshV1{}
	case 2:
		return &MeshV2{}
	case 3:
		return &MeshV3{}
	}
	return nil
}
