package dtsfile

// MaterialListHeader holds the dimensions of a material list. The list
// contains NumDetails*NumMaterials materials, one set of NumMaterials per
// level of detail.
type MaterialListHeader struct {
	NumDetails   int32 `json:"numDetails"`
	NumMaterials int32 `json:"numMaterials"`
}

// MaterialV2 is a material of a version 2 list.
type MaterialV2 struct {
	Flags    int32    `json:"flags"`
	Alpha    float32  `json:"alpha"`
	Index    int32    `json:"index"`
	RGBData  RGBData  `json:"rgbData"`
	FileName FileName `json:"fileName"`
}

// MaterialV3 adds surface properties to MaterialV2.
type MaterialV3 struct {
	Flags      int32    `json:"flags"`
	Alpha      float32  `json:"alpha"`
	Index      int32    `json:"index"`
	RGBData    RGBData  `json:"rgbData"`
	FileName   FileName `json:"fileName"`
	Type       int32    `json:"type"`
	Elasticity float32  `json:"elasticity"`
	Friction   float32  `json:"friction"`
}

// MaterialV4 adds UseDefaultProperties to MaterialV3.
type MaterialV4 struct {
	Flags                int32    `json:"flags"`
	Alpha                float32  `json:"alpha"`
	Index                int32    `json:"index"`
	RGBData              RGBData  `json:"rgbData"`
	FileName             FileName `json:"fileName"`
	Type                 int32    `json:"type"`
	Elasticity           float32  `json:"elasticity"`
	Friction             float32  `json:"friction"`
	UseDefaultProperties uint32   `json:"useDefaultProperties"`
}

// Upgrade returns m as a MaterialV3. The fields shared with MaterialV2 are
// copied, and the remaining fields are zero.
func (m MaterialV2) Upgrade() MaterialV3 {
	return MaterialV3{
		Flags:    m.Flags,
		Alpha:    m.Alpha,
		Index:    m.Index,
		RGBData:  m.RGBData,
		FileName: m.FileName,
	}
}

// Downgrade returns the fields of m that a MaterialV2 can hold.
func (m MaterialV3) Downgrade() MaterialV2 {
	return MaterialV2{
		Flags:    m.Flags,
		Alpha:    m.Alpha,
		Index:    m.Index,
		RGBData:  m.RGBData,
		FileName: m.FileName,
	}
}

// MaterialListV2 is a version 2 material list. Decoders never produce this
// type; lists read with version 2 are upgraded to MaterialListV3.
type MaterialListV2 struct {
	Tag       TagHeader          `json:"tagHeader"`
	Header    MaterialListHeader `json:"header"`
	Materials []MaterialV2       `json:"materials"`
}

// MaterialListV3 is a version 3 material list.
//
// A list upgraded from version 2 keeps the header it was read with. Its
// Tag.Version remains 2, and it is encoded in the version 2 layout.
type MaterialListV3 struct {
	Tag       TagHeader          `json:"tagHeader"`
	Header    MaterialListHeader `json:"header"`
	Materials []MaterialV3       `json:"materials"`
}

// MaterialListV4 is a version 4 material list.
type MaterialListV4 struct {
	Tag       TagHeader          `json:"tagHeader"`
	Header    MaterialListHeader `json:"header"`
	Materials []MaterialV4       `json:"materials"`
}

// Upgrade returns l as a MaterialListV3. The returned list owns a new slice
// of materials.
func (l *MaterialListV2) Upgrade() *MaterialListV3 {
	u := &MaterialListV3{
		Tag:       l.Tag,
		Header:    l.Header,
		Materials: make([]MaterialV3, len(l.Materials)),
	}
	for i, m := range l.Materials {
		u.Materials[i] = m.Upgrade()
	}
	return u
}

// Upgraded returns whether l was read as a version 2 list.
func (l *MaterialListV3) Upgraded() bool {
	return l.Tag.Version == 2
}

func (l *MaterialListV2) RecordHeader() TagHeader { return l.Tag }
func (l *MaterialListV3) RecordHeader() TagHeader { return l.Tag }
func (l *MaterialListV4) RecordHeader() TagHeader { return l.Tag }

func (*MaterialListV2) Version() uint32 { return 2 }
func (*MaterialListV3) Version() uint32 { return 3 }
func (*MaterialListV4) Version() uint32 { return 4 }

func (*MaterialListV2) ClassName() string { return MaterialListClassName }
func (*MaterialListV3) ClassName() string { return MaterialListClassName }
func (*MaterialListV4) ClassName() string { return MaterialListClassName }

func (*MaterialListV2) materialList() {}
func (*MaterialListV3) materialList() {}
func (*MaterialListV4) materialList() {}

// MaterialFileNames returns the texture file name of each material in l.
func MaterialFileNames(l MaterialList) []string {
	var names []string
	switch l := l.(type) {
	case *MaterialListV2:
		for _, m := range l.Materials {
			names = append(names, m.FileName.String())
		}
	case *MaterialListV3:
		for _, m := range l.Materials {
			names = append(names, m.FileName.String())
		}
	case *MaterialListV4:
		for _, m := range l.Materials {
			names = append(names, m.FileName.String())
		}
	}
	return names
}

// NewMaterialList returns an empty material list of the given version, or nil
// if the version is not supported.
func NewMaterialList(version uint32) MaterialList {
	switch version {
	case 2:
		return &MaterialListV2{}
	case 3:
		return &MaterialListV3{}
	case 4:
		return &MaterialListV4{}
	}
	return nil
}
