// The dtsfile package models the content of Darkstar shape (DTS) files.
//
// A shape file is a tree of tagged records. The top-level record is a shape,
// which contains a skeleton of nodes, animation sequences, keyframes and
// transforms, a list of meshes, and an optional material list. Each record
// type has evolved through several schema versions, and each version is
// represented by its own Go type: ShapeV2, ShapeV3, ShapeV5, ShapeV6, ShapeV7
// and ShapeV8 implement the Shape interface; MeshV1, MeshV2 and MeshV3
// implement Mesh; MaterialListV3 and MaterialListV4 implement MaterialList.
//
// Records refer to each other by integer index rather than by pointer. The
// Validate function checks that every index of a shape refers to an existing
// element.
//
// Shapes can be decoded from and encoded to the binary format with the "dts"
// sub-package, and converted to and from a structured document with the
// "json" sub-package.
package dtsfile

import (
	"bytes"
)

// Tag is the four byte signature that begins every record.
type Tag [4]byte

// PersTag is the only valid record signature.
var PersTag = Tag{'P', 'E', 'R', 'S'}

func (t Tag) String() string {
	return string(t[:])
}

// Canonical class names of each record family.
const (
	ShapeClassName        = "TS::Shape"
	MeshClassName         = "TS::CelAnimMesh"
	MaterialListClassName = "TS::MaterialList"
)

// FileInfo follows the tag of every record.
type FileInfo struct {
	// FileLength is the length of the record, counted from the end of the
	// FileInfo.
	FileLength int32

	// ClassNameLength is the declared length of the class name.
	ClassNameLength int16
}

// TagHeader precedes every record, both at the top of a file and before each
// nested mesh and material list.
//
// A decoded record keeps the header it was read with, so that it can be
// encoded to the same bytes. A zero TagHeader is filled in by the encoder.
type TagHeader struct {
	Tag       Tag
	FileInfo  FileInfo
	ClassName string
	Version   uint32
}

// IsZero returns whether h has not been set.
func (h TagHeader) IsZero() bool {
	return h == TagHeader{}
}

// ClassNameBytes returns the number of bytes the class name occupies in a
// file. Names shorter than 16 bytes are followed by an embedded terminator.
func ClassNameBytes(declared int16) int {
	n := int(declared)
	if n < 16 {
		n++
	}
	return n
}

// TrimName returns the printable part of a fixed-width byte string, which is
// everything before the first NUL byte.
func TrimName(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Record is implemented by every decoded record type.
type Record interface {
	// RecordHeader returns the tagged header the record was decoded with.
	RecordHeader() TagHeader
	// Version returns the schema version of the record's type.
	Version() uint32
	// ClassName returns the canonical class name of the record family.
	ClassName() string
}

// Shape is implemented by ShapeV2, ShapeV3, ShapeV5, ShapeV6, ShapeV7 and
// ShapeV8.
type Shape interface {
	Record
	// MeshList returns the meshes of the shape.
	MeshList() []Mesh
	// Materials returns the material list of the shape, or nil if the shape
	// has none.
	Materials() MaterialList
	shape() shapeIndex
}

// Mesh is implemented by MeshV1, MeshV2 and MeshV3.
type Mesh interface {
	Record
	mesh()
}

// MaterialList is implemented by MaterialListV3 and MaterialListV4. Lists of
// version 2 are upgraded to MaterialListV3 when decoded.
type MaterialList interface {
	Record
	materialList()
}

// ShapeVersions lists the supported shape schema versions in ascending order.
var ShapeVersions = []uint32{2, 3, 5, 6, 7, 8}

// MeshVersions lists the supported mesh schema versions.
var MeshVersions = []uint32{1, 2, 3}

// MaterialListVersions lists the supported material list schema versions.
var MaterialListVersions = []uint32{2, 3, 4}

// NewShape returns an empty shape of the given version, or nil if the version
// is not supported.
func NewShape(version uint32) Shape {
	switch version {
	case 2:
		return &ShapeV2{}
	case 3:
		return &ShapeV3{}
	case 5:
		return &ShapeV5{}
	case 6:
		return &ShapeV6{}
	case 7:
		return &ShapeV7{}
	case 8:
		return &ShapeV8{}
	}
	return nil
}
