package dtsfile

// Vector3F is a point or direction.
type Vector3F struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vector3FPair is an axis-aligned box.
type Vector3FPair struct {
	Min Vector3F `json:"min"`
	Max Vector3F `json:"max"`
}

// Quaternion4S is a rotation with components scaled to 16-bit integers.
type Quaternion4S struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
	Z int16 `json:"z"`
	W int16 `json:"w"`
}

// Quaternion4F is a rotation.
type Quaternion4F struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// RGBData is the color of a material.
type RGBData struct {
	Red      uint8 `json:"red"`
	Green    uint8 `json:"green"`
	Blue     uint8 `json:"blue"`
	RGBFlags uint8 `json:"rgbFlags"`
}

// Name is an entry of a shape's name table. Unused bytes are zero.
type Name [24]byte

func (n Name) String() string {
	return TrimName(n[:])
}

// NewName returns s as a Name, truncated to fit.
func NewName(s string) (n Name) {
	copy(n[:], s)
	return n
}

// FileName is the texture file name of a material.
type FileName [32]byte

func (n FileName) String() string {
	return TrimName(n[:])
}

// NewFileName returns s as a FileName, truncated to fit.
func NewFileName(s string) (n FileName) {
	copy(n[:], s)
	return n
}
