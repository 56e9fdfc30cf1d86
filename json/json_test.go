package json_test

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/siegetools/dtsfile"
	"github.com/siegetools/dtsfile/dts"
	"github.com/siegetools/dtsfile/json"
)

var one = dtsfile.Vector3F{X: 1, Y: 1, Z: 1}

func sampleMesh() *dtsfile.MeshV3 {
	return &dtsfile.MeshV3{
		Header: dtsfile.MeshHeaderV3{
			NumVerts: 1, VertsPerFrame: 1, NumTextureVerts: 1, NumFaces: 1, NumFrames: 1,
			TextureVertsPerFrame: 1, Radius: 0.5,
		},
		Vertices:        []dtsfile.Vertex{{X: 1, Y: 2, Z: 3, Normal: 200}},
		TextureVertices: []dtsfile.TextureVertex{{X: 0.125, Y: -0.5}},
		Faces:           []dtsfile.Face{{VI1: 0, TI1: 0, VI2: 0, TI2: 0, VI3: 0, TI3: 0, Material: 1}},
		Frames:          []dtsfile.FrameV3{{Scale: one, Origin: dtsfile.Vector3F{X: -2}}},
	}
}

func sampleShapeV7() *dtsfile.ShapeV7 {
	return &dtsfile.ShapeV7{
		Header: dtsfile.ShapeHeaderV5{
			NumNodes: 2, NumSequences: 1, NumSubSequences: 1, NumKeyFrames: 1, NumTransforms: 1,
			NumNames: 2, NumObjects: 1, NumDetails: 1, NumMeshes: 1, NumTransitions: 0,
			NumFrameTriggers: 1,
		},
		Data: dtsfile.DataV2{Radius: 10, Centre: dtsfile.Vector3F{Y: 0.1}},
		Nodes: []dtsfile.NodeV2{
			{Name: 0, Parent: -1, NumSubSequences: 1, FirstSubSequence: 0, DefaultTransform: 0},
			{Name: 1, Parent: 0, DefaultTransform: 0},
		},
		Sequences:     []dtsfile.SequenceV5{{NameIndex: 1, Cyclic: 1, Duration: 2.5, NumFrameTriggers: 1}},
		SubSequences:  []dtsfile.SubSequenceV2{{SequenceIndex: 0, NumKeyFrames: 1}},
		Keyframes:     []dtsfile.KeyframeV3{{Position: 1, KeyValue: 0, MatIndex: 3}},
		Transforms:    []dtsfile.TransformV7{{Rotation: dtsfile.Quaternion4S{Y: -32767, W: 12}, Translation: one, Scale: one}},
		Names:         []dtsfile.Name{dtsfile.NewName("body"), dtsfile.NewName("run")},
		Objects:       []dtsfile.ObjectV2{{NameIndex: 0, Flags: -2, MeshIndex: 0, NodeIndex: 1, Dep: [3]dtsfile.Vector3F{{X: 1}, {Y: 2}, {Z: 3}}}},
		Details:       []dtsfile.Detail{{NameIndex: 0, Size: 1e-7}},
		Transitions:   []dtsfile.TransitionV7{},
		FrameTriggers: []dtsfile.FrameTrigger{{Position: 0.5, Value: -1}},
		Footer:        dtsfile.FooterV6{NumDefaultMaterials: 1, AlwaysNode: 1},
		Meshes:        []dtsfile.Mesh{sampleMesh()},
		MaterialList: &dtsfile.MaterialListV4{
			Header: dtsfile.MaterialListHeader{NumDetails: 1, NumMaterials: 1},
			Materials: []dtsfile.MaterialV4{
				{Flags: 7, Alpha: 1, Index: 2, RGBData: dtsfile.RGBData{Red: 1, Green: 2, Blue: 3, RGBFlags: 4},
					FileName: dtsfile.NewFileName("body.bmp"), Type: 1, Elasticity: 0.25, Friction: 0.75, UseDefaultProperties: 1},
			},
		},
	}
}

// decoded returns s after a binary round trip, so that it carries a tagged
// header and non-nil lists.
func decoded(t *testing.T, s dtsfile.Shape) (dtsfile.Shape, []byte) {
	t.Helper()
	b, err := dts.Marshal(s)
	if err != nil {
		t.Fatalf("encode version %d: %s", s.Version(), err)
	}
	shape, err := dts.Unmarshal(b)
	if err != nil {
		t.Fatalf("decode version %d: %s", s.Version(), err)
	}
	return shape, b
}

func TestKeys(t *testing.T) {
	with := func(a []string, b ...string) []string {
		return append(append([]string(nil), a...), b...)
	}
	xyzw := []string{"x", "y", "z", "w"}
	mesh := []string{"version", "tagHeader", "header", "vertices", "textureVertices", "faces", "frames"}
	list := []string{"version", "tagHeader", "header", "materials"}
	material := []string{"flags", "alpha", "index", "rgbData", "fileName"}
	material3 := with(material, "type", "elasticity", "friction")
	shapeHead := []string{"numNodes", "numSequences", "numSubSequences", "numKeyFrames", "numTransforms",
		"numNames", "numObjects", "numDetails", "numMeshes", "numTransitions"}
	shape2 := []string{"version", "tagHeader", "header", "data", "nodes", "sequences", "subSequences", "keyframes",
		"transforms", "names", "objects", "details", "transitions", "meshes", "materialList"}
	shape5 := with(shape2[:13], "frameTriggers", "footer", "meshes", "materialList")
	node := []string{"name", "parent", "numSubSequences", "firstSubSequence", "defaultTransform"}
	sequence := []string{"nameIndex", "cyclic", "duration", "priority"}
	subSequence := []string{"sequenceIndex", "numKeyFrames", "firstKeyFrame"}
	transition := []string{"startSequence", "endSequence", "startPosition", "endPosition", "duration"}

	tests := []struct {
		v    interface{}
		keys []string
	}{
		{dtsfile.Vector3F{}, []string{"x", "y", "z"}},
		{dtsfile.Vector3FPair{}, []string{"min", "max"}},
		{dtsfile.Quaternion4S{}, xyzw},
		{dtsfile.Quaternion4F{}, xyzw},
		{dtsfile.RGBData{}, []string{"red", "green", "blue", "rgbFlags"}},

		{dtsfile.MeshHeaderV1{}, []string{"numVerts", "vertsPerFrame", "numTextureVerts", "numFaces", "numFrames", "scale", "origin", "radius"}},
		{dtsfile.MeshHeaderV2{}, []string{"numVerts", "vertsPerFrame", "numTextureVerts", "numFaces", "numFrames", "textureVertsPerFrame", "scale", "origin", "radius"}},
		{dtsfile.MeshHeaderV3{}, []string{"numVerts", "vertsPerFrame", "numTextureVerts", "numFaces", "numFrames", "textureVertsPerFrame", "radius"}},
		{dtsfile.Vertex{}, []string{"x", "y", "z", "normal"}},
		{dtsfile.TextureVertex{}, []string{"x", "y"}},
		{dtsfile.Face{}, []string{"vi1", "ti1", "vi2", "ti2", "vi3", "ti3", "material"}},
		{dtsfile.FrameV1{}, []string{"firstVert"}},
		{dtsfile.FrameV3{}, []string{"firstVert", "scale", "origin"}},
		{&dtsfile.MeshV1{}, mesh},
		{&dtsfile.MeshV2{}, mesh},
		{&dtsfile.MeshV3{}, mesh},

		{dtsfile.MaterialListHeader{}, []string{"numDetails", "numMaterials"}},
		{dtsfile.MaterialV2{}, material},
		{dtsfile.MaterialV3{}, material3},
		{dtsfile.MaterialV4{}, with(material3, "useDefaultProperties")},
		{&dtsfile.MaterialListV2{}, list},
		{&dtsfile.MaterialListV3{}, list},
		{&dtsfile.MaterialListV4{}, list},

		{dtsfile.ShapeHeaderV2{}, shapeHead},
		{dtsfile.ShapeHeaderV5{}, with(shapeHead, "numFrameTriggers")},
		{dtsfile.DataV2{}, []string{"radius", "centre"}},
		{dtsfile.DataV8{}, []string{"radius", "centre", "bounds"}},
		{dtsfile.NodeV2{}, node},
		{dtsfile.NodeV8{}, node},
		{dtsfile.SequenceV2{}, sequence},
		{dtsfile.SequenceV5{}, with(sequence, "firstFrameTrigger", "numFrameTriggers", "numIflSubSequences", "firstIflSubSequence")},
		{dtsfile.SubSequenceV2{}, subSequence},
		{dtsfile.SubSequenceV8{}, subSequence},
		{dtsfile.KeyframeV2{}, []string{"position", "keyValue"}},
		{dtsfile.KeyframeV3{}, []string{"position", "keyValue", "matIndex"}},
		{dtsfile.KeyframeV8{}, []string{"position", "keyValue", "matIndex"}},
		{dtsfile.TransformV2{}, []string{"rotation", "translation", "scale"}},
		{dtsfile.TransformV7{}, []string{"rotation", "translation", "scale"}},
		{dtsfile.TransformV8{}, []string{"rotation", "translation"}},
		{dtsfile.ObjectV2{}, []string{"nameIndex", "flags", "meshIndex", "nodeIndex", "depFlags", "dep", "objectOffset", "numSubSequences", "firstSubSequence"}},
		{dtsfile.ObjectV8{}, []string{"nameIndex", "flags", "meshIndex", "nodeIndex", "objectOffset", "numSubSequences", "firstSubSequence"}},
		{dtsfile.Detail{}, []string{"nameIndex", "size"}},
		{dtsfile.TransitionV2{}, with(transition, "transform")},
		{dtsfile.TransitionV7{}, with(transition, "rotation", "translation", "scale")},
		{dtsfile.TransitionV8{}, with(transition, "transformation")},
		{dtsfile.FrameTrigger{}, []string{"position", "value"}},
		{dtsfile.FooterV5{}, []string{"numDefaultMaterials"}},
		{dtsfile.FooterV6{}, []string{"numDefaultMaterials", "alwaysNode"}},
		{&dtsfile.ShapeV2{}, shape2},
		{&dtsfile.ShapeV3{}, shape2},
		{&dtsfile.ShapeV5{}, shape5},
		{&dtsfile.ShapeV6{}, shape5},
		{&dtsfile.ShapeV7{}, shape5},
		{&dtsfile.ShapeV8{}, shape5},

		{42, nil},
	}
	for _, test := range tests {
		if keys := json.Keys(test.v); !reflect.DeepEqual(keys, test.keys) {
			t.Errorf("%T: unexpected keys (expected %v, got %v)", test.v, test.keys, keys)
		}
	}
}

func TestDocument(t *testing.T) {
	shape, _ := decoded(t, sampleShapeV7())
	doc := json.ToDocument(shape)

	if v, _ := doc.Get("version"); v != uint64(7) {
		t.Errorf("unexpected version %v", v)
	}
	h, _ := doc.Get("tagHeader")
	header, ok := h.(json.Object)
	if !ok {
		t.Fatalf("expected tagHeader object, got %T", h)
	}
	if !reflect.DeepEqual(header.Keys(), []string{"className", "classNameLength", "fileLength", "version"}) {
		t.Errorf("unexpected tagHeader keys %v", header.Keys())
	}
	if v, _ := header.Get("className"); v != dtsfile.ShapeClassName {
		t.Errorf("unexpected class name %v", v)
	}
	names, _ := doc.Get("names")
	if !reflect.DeepEqual(names, json.Array{"body", "run"}) {
		t.Errorf("unexpected names %v", names)
	}
	u, err := json.FromDocument(doc, 0)
	if err != nil {
		t.Fatal(err)
	}
	if h := u.RecordHeader(); h != shape.RecordHeader() || h.ClassName != dtsfile.ShapeClassName {
		t.Errorf("unexpected tag header %+v", h)
	}

	s := sampleShapeV7()
	s.MaterialList = nil
	doc = json.ToDocument(s)
	if v, ok := doc.Get("materialList"); !ok || v != nil {
		t.Errorf("expected null materialList, got %v", v)
	}
	if v, _ := doc.Get("tagHeader"); v != nil {
		t.Errorf("expected null tagHeader for a synthesized header, got %v", v)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	shape, b := decoded(t, sampleShapeV7())
	doc := json.ToDocument(shape)

	forms := map[string]func() (json.Object, error){
		"document": func() (json.Object, error) { return doc, nil },
		"text":     func() (json.Object, error) { return json.Decode(json.Encode(doc)) },
		"compressed": func() (json.Object, error) {
			c, err := json.EncodeCompressed(doc)
			if err != nil {
				return nil, err
			}
			return json.DecodeCompressed(c)
		},
	}
	for name, form := range forms {
		d, err := form()
		if err != nil {
			t.Errorf("%s: %s", name, err)
			continue
		}
		s, err := json.FromDocument(d, 7)
		if err != nil {
			t.Errorf("%s: %s", name, err)
			continue
		}
		if !reflect.DeepEqual(s, shape) {
			t.Errorf("%s: shape differs after round trip", name)
		}
		again, err := dts.Marshal(s)
		if err != nil {
			t.Errorf("%s: %s", name, err)
			continue
		}
		if !bytes.Equal(again, b) {
			t.Errorf("%s: bytes differ after round trip", name)
		}
	}
}

// emptyShape returns a valid shape of the given version with no elements.
func emptyShape(version uint32) dtsfile.Shape {
	s := dtsfile.NewShape(version)
	switch s := s.(type) {
	case *dtsfile.ShapeV6:
		s.Footer.AlwaysNode = -1
	case *dtsfile.ShapeV7:
		s.Footer.AlwaysNode = -1
	case *dtsfile.ShapeV8:
		s.Footer.AlwaysNode = -1
	}
	return s
}

func TestEmptyShapes(t *testing.T) {
	for _, version := range dtsfile.ShapeVersions {
		shape, b := decoded(t, emptyShape(version))
		text, err := json.Marshal(shape)
		if err != nil {
			t.Errorf("version %d: %s", version, err)
			continue
		}
		s, err := json.Unmarshal(text, 0)
		if err != nil {
			t.Errorf("version %d: %s", version, err)
			continue
		}
		if s.Version() != version {
			t.Errorf("unexpected version (expected %d, got %d)", version, s.Version())
		}
		again, err := dts.Marshal(s)
		if err != nil {
			t.Errorf("version %d: %s", version, err)
			continue
		}
		if !bytes.Equal(again, b) {
			t.Errorf("version %d: bytes differ after round trip", version)
		}
	}
}

func TestNonFiniteFloats(t *testing.T) {
	s := sampleShapeV7()
	s.Data.Radius = math.Float32frombits(0x7FC0BEEF)
	s.Data.Centre.X = float32(math.Inf(-1))
	shape, b := decoded(t, s)

	text, err := json.Marshal(shape)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"radius": "f32:7FC0BEEF"`, `"x": "f32:FF800000"`} {
		if !strings.Contains(string(text), want) {
			t.Errorf("text does not contain %s", want)
		}
	}
	u, err := json.Unmarshal(text, 7)
	if err != nil {
		t.Fatal(err)
	}
	if bits := math.Float32bits(u.(*dtsfile.ShapeV7).Data.Radius); bits != 0x7FC0BEEF {
		t.Errorf("unexpected radius bits %08X", bits)
	}
	again, _ := dts.Marshal(u)
	if !bytes.Equal(again, b) {
		t.Errorf("bytes differ after round trip")
	}
}

func TestNumbers(t *testing.T) {
	doc := json.Object{
		{Name: "f", Value: float32(1)},
		{Name: "g", Value: float32(-0.1)},
		{Name: "h", Value: float32(1e20)},
		{Name: "i", Value: int64(-1)},
		{Name: "u", Value: uint64(math.MaxUint64)},
	}
	text := string(json.Encode(doc))
	for _, want := range []string{`"f": 1.0`, `"g": -0.1`, `"h": 1e+20`, `"i": -1`, `"u": 18446744073709551615`} {
		if !strings.Contains(text, want) {
			t.Errorf("text does not contain %s", want)
		}
	}
	d, err := json.Decode([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d, doc) {
		t.Errorf("unexpected document (expected %v, got %v)", doc, d)
	}
}

func TestFieldOrder(t *testing.T) {
	d, err := json.Decode([]byte(`{"z": 1, "a": [{"y": null, "b": "s"}], "m": {}}`))
	if err != nil {
		t.Fatal(err)
	}
	if keys := d.Keys(); !reflect.DeepEqual(keys, []string{"z", "a", "m"}) {
		t.Errorf("unexpected key order %v", keys)
	}
	a, _ := d.Get("a")
	if keys := a.(json.Array)[0].(json.Object).Keys(); !reflect.DeepEqual(keys, []string{"y", "b"}) {
		t.Errorf("unexpected nested key order %v", keys)
	}

	for _, bad := range []string{`[1]`, `{"a": 1} {}`, `{"a": }`} {
		if _, err := json.Decode([]byte(bad)); err == nil {
			t.Errorf("%s: expected error", bad)
		}
	}
}

// edit returns a copy of doc with the value at the given path replaced by v,
// or removed if remove is true.
func edit(doc json.Object, path []interface{}, v interface{}, remove bool) json.Object {
	var walk func(d interface{}, path []interface{}) interface{}
	walk = func(d interface{}, path []interface{}) interface{} {
		switch d := d.(type) {
		case json.Object:
			o := make(json.Object, 0, len(d))
			for _, f := range d {
				if f.Name == path[0] {
					if len(path) == 1 {
						if !remove {
							o = append(o, json.Field{Name: f.Name, Value: v})
						}
						continue
					}
					f.Value = walk(f.Value, path[1:])
				}
				o = append(o, f)
			}
			return o
		case json.Array:
			a := append(json.Array(nil), d...)
			i := path[0].(int)
			if len(path) == 1 {
				a[i] = v
			} else {
				a[i] = walk(a[i], path[1:])
			}
			return a
		}
		return d
	}
	return walk(doc, path).(json.Object)
}

func TestSchemaErrors(t *testing.T) {
	shape, _ := decoded(t, sampleShapeV7())
	doc := json.ToDocument(shape)

	tests := []struct {
		name    string
		doc     json.Object
		version uint32
		path    string
	}{
		{"missing key", edit(doc, []interface{}{"header"}, nil, true), 7, "header"},
		{"wrong kind", edit(doc, []interface{}{"meshes", 0, "header", "numVerts"}, "x", false), 7, "meshes[0].header.numVerts"},
		{"version", doc, 8, "version"},
		{"unknown version", doc, 4, "version"},
		{"overflow", edit(doc, []interface{}{"objects", 0, "flags"}, int64(40000), false), 7, "objects[0].flags"},
		{"negative unsigned", edit(doc, []interface{}{"keyframes", 0, "keyValue"}, int64(-1), false), 7, "keyframes[0].keyValue"},
		{"long name", edit(doc, []interface{}{"names", 1}, strings.Repeat("n", 25), false), 7, "names[1]"},
		{"unencodable name", edit(doc, []interface{}{"names", 0}, "日本", false), 7, "names[0]"},
		{"array length", edit(doc, []interface{}{"objects", 0, "dep"}, json.Array{}, false), 7, "objects[0].dep"},
		{"null mesh", edit(doc, []interface{}{"meshes", 0}, nil, false), 7, "meshes[0]"},
		{"mesh version", edit(doc, []interface{}{"meshes", 0, "version"}, uint64(9), false), 7, "meshes[0].version"},
		{"tag header", edit(doc, []interface{}{"tagHeader"}, json.Array{}, false), 7, "tagHeader"},
		{"float bits", edit(doc, []interface{}{"data", "radius"}, "f32:zz", false), 7, "data.radius"},
	}
	for _, test := range tests {
		_, err := json.FromDocument(test.doc, test.version)
		if !errors.Is(err, json.ErrSchemaMismatch) {
			t.Errorf("%s: expected ErrSchemaMismatch, got %v", test.name, err)
			continue
		}
		var serr json.SchemaError
		if !errors.As(err, &serr) || serr.Path != test.path {
			t.Errorf("%s: unexpected path (expected %q, got %q)", test.name, test.path, serr.Path)
		}
	}
}

func TestWindows1252(t *testing.T) {
	s := sampleShapeV7()
	s.Names[1] = dtsfile.Name{'c', 0xE9, 'l', 0x80}
	shape, b := decoded(t, s)

	doc := json.ToDocument(shape)
	names, _ := doc.Get("names")
	if name := names.(json.Array)[1]; name != "cél€" {
		t.Errorf("unexpected name %q", name)
	}
	u, err := json.FromDocument(doc, 7)
	if err != nil {
		t.Fatal(err)
	}
	again, _ := dts.Marshal(u)
	if !bytes.Equal(again, b) {
		t.Errorf("bytes differ after round trip")
	}
}

func TestWindows1252AllBytes(t *testing.T) {
	for c := 1; c < 256; c++ {
		s := sampleShapeV7()
		s.Names[1] = dtsfile.Name{'a', byte(c), 'z'}
		s.MaterialList.(*dtsfile.MaterialListV4).Materials[0].FileName = dtsfile.FileName{byte(c), '.', 'b'}
		shape, b := decoded(t, s)

		text, err := json.Marshal(shape)
		if err != nil {
			t.Errorf("byte %02X: %s", c, err)
			continue
		}
		u, err := json.Unmarshal(text, 7)
		if err != nil {
			t.Errorf("byte %02X: %s", c, err)
			continue
		}
		again, err := dts.Marshal(u)
		if err != nil {
			t.Errorf("byte %02X: %s", c, err)
			continue
		}
		if !bytes.Equal(again, b) {
			t.Errorf("byte %02X: bytes differ after round trip", c)
		}
	}
}

func TestNilRecords(t *testing.T) {
	s := sampleShapeV7()
	s.Meshes = []dtsfile.Mesh{(*dtsfile.MeshV3)(nil)}
	s.MaterialList = (*dtsfile.MaterialListV4)(nil)
	doc := json.ToDocument(s)
	if meshes, _ := doc.Get("meshes"); !reflect.DeepEqual(meshes, json.Array{nil}) {
		t.Errorf("expected null mesh, got %v", meshes)
	}
	if v, ok := doc.Get("materialList"); !ok || v != nil {
		t.Errorf("expected null materialList, got %v", v)
	}
	if doc := json.MeshToDocument((*dtsfile.MeshV2)(nil)); doc != nil {
		t.Errorf("expected nil document, got %v", doc)
	}
	if doc := json.ToDocument((*dtsfile.ShapeV8)(nil)); doc != nil {
		t.Errorf("expected nil document, got %v", doc)
	}
}

func TestMaterialListDocument(t *testing.T) {
	v2 := &dtsfile.MaterialListV2{
		Header:    dtsfile.MaterialListHeader{NumDetails: 1, NumMaterials: 1},
		Materials: []dtsfile.MaterialV2{{Flags: 1, Alpha: 0.5, FileName: dtsfile.NewFileName("a.bmp")}},
	}
	var buf bytes.Buffer
	if err := (dts.Encoder{}).EncodeMaterialList(&buf, v2); err != nil {
		t.Fatal(err)
	}
	list, _, err := dts.Decoder{}.DecodeMaterialList(buf.Bytes(), 0)
	if err != nil {
		t.Fatal(err)
	}

	doc := json.MaterialListToDocument(list)
	u, err := json.MaterialListFromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	l, ok := u.(*dtsfile.MaterialListV3)
	if !ok || !l.Upgraded() {
		t.Fatalf("expected upgraded MaterialListV3, got %T", u)
	}
	var again bytes.Buffer
	if err := (dts.Encoder{}).EncodeMaterialList(&again, l); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again.Bytes(), buf.Bytes()) {
		t.Errorf("bytes differ after round trip")
	}

	mesh := sampleMesh()
	m, err := json.MeshFromDocument(json.MeshToDocument(mesh))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m, mesh) {
		t.Errorf("mesh differs after round trip")
	}
}

func TestCompressed(t *testing.T) {
	doc := json.ToDocument(sampleShapeV7())
	c, err := json.EncodeCompressed(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !json.IsCompressed(c) {
		t.Errorf("expected compressed signature")
	}
	if _, err := json.DecodeCompressed(json.Encode(doc)); !errors.Is(err, json.ErrNotCompressed) {
		t.Errorf("expected ErrNotCompressed, got %v", err)
	}
	s, err := json.Unmarshal(c, 7)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*dtsfile.ShapeV7); !ok {
		t.Errorf("expected ShapeV7, got %T", s)
	}
}
