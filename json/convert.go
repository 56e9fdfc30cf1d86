package json

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/siegetools/dtsfile"
	"golang.org/x/text/encoding/charmap"
)

var (
	tagHeaderType    = reflect.TypeOf(dtsfile.TagHeader{})
	meshType         = reflect.TypeOf((*dtsfile.Mesh)(nil)).Elem()
	materialListType = reflect.TypeOf((*dtsfile.MaterialList)(nil)).Elem()
)

// Key of the field holding the schema version of a record.
const versionKey = "version"

// Key of the field holding the tagged header of a record.
const tagHeaderKey = "tagHeader"

// Prefix of the string form of non-finite floats.
const floatBitsPrefix = "f32:"

// fieldKey returns the document key of a struct field, given by its json tag.
func fieldKey(f reflect.StructField) string {
	key := f.Tag.Get("json")
	if key == "" {
		panic("field " + f.Name + " has no document key")
	}
	return key
}

// Keys returns the ordered keys of the document produced for a record or one
// of the structs within a record.
func Keys(v interface{}) []string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var keys []string
	if _, ok := v.(dtsfile.Record); ok {
		keys = append(keys, versionKey)
	}
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, fieldKey(t.Field(i)))
	}
	return keys
}

////////////////////////////////////////////////////////////////

// ToDocument converts a shape to a document.
func ToDocument(shape dtsfile.Shape) Object {
	if shape == nil {
		return nil
	}
	return recordToDocument(shape)
}

// MeshToDocument converts a mesh to a document.
func MeshToDocument(mesh dtsfile.Mesh) Object {
	if mesh == nil {
		return nil
	}
	return recordToDocument(mesh)
}

// MaterialListToDocument converts a material list to a document.
func MaterialListToDocument(list dtsfile.MaterialList) Object {
	if list == nil {
		return nil
	}
	return recordToDocument(list)
}

func recordToDocument(r dtsfile.Record) Object {
	v := reflect.ValueOf(r)
	if v.IsNil() {
		return nil
	}
	doc := Object{{Name: versionKey, Value: uint64(r.Version())}}
	return append(doc, structToDocument(v.Elem())...)
}

func tagHeaderToDocument(h dtsfile.TagHeader) interface{} {
	if h.IsZero() {
		return nil
	}
	return Object{
		{Name: "className", Value: decodeText([]byte(h.ClassName))},
		{Name: "classNameLength", Value: int64(h.FileInfo.ClassNameLength)},
		{Name: "fileLength", Value: int64(h.FileInfo.FileLength)},
		{Name: "version", Value: uint64(h.Version)},
	}
}

func structToDocument(v reflect.Value) Object {
	t := v.Type()
	doc := make(Object, t.NumField())
	for i := range doc {
		doc[i] = Field{Name: fieldKey(t.Field(i)), Value: valueToDocument(v.Field(i))}
	}
	return doc
}

func valueToDocument(v reflect.Value) interface{} {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		if r, ok := v.Interface().(dtsfile.Record); ok {
			if v.Elem().IsNil() {
				return nil
			}
			return recordToDocument(r)
		}
		return valueToDocument(v.Elem())
	case reflect.Struct:
		if v.Type() == tagHeaderType {
			return tagHeaderToDocument(v.Interface().(dtsfile.TagHeader))
		}
		return structToDocument(v)
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return decodeText(bytes.TrimRight(b, "\x00"))
		}
		fallthrough
	case reflect.Slice:
		a := make(Array, v.Len())
		for i := range a {
			a[i] = valueToDocument(v.Index(i))
		}
		return a
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32:
		return v.Interface().(float32)
	}
	panic("unsupported type " + v.Type().String())
}

// decodeByte returns the character of a Windows-1252 byte. The bytes the
// code page leaves undefined map to the C1 control with the same value.
func decodeByte(c byte) rune {
	if r := charmap.Windows1252.DecodeByte(c); r != utf8.RuneError {
		return r
	}
	return rune(c)
}

// decodeText converts a fixed-width Windows-1252 string to UTF-8.
func decodeText(b []byte) string {
	var s strings.Builder
	for _, c := range b {
		s.WriteRune(decodeByte(c))
	}
	return s.String()
}

// encodeText converts a UTF-8 string to Windows-1252. It is the inverse of
// decodeText.
func encodeText(s string) ([]byte, error) {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b = append(b, c)
			continue
		}
		if r >= 0x80 && r <= 0x9F && decodeByte(byte(r)) == r {
			b = append(b, byte(r))
			continue
		}
		return nil, fmt.Errorf("character %q is not in Windows-1252", r)
	}
	return b, nil
}

////////////////////////////////////////////////////////////////

// FromDocument converts a document produced by ToDocument back to a shape. The
// version selects the type of the shape, and must match the version recorded
// in the document. If version is 0, the version recorded in the document is
// used.
func FromDocument(doc Object, version uint32) (dtsfile.Shape, error) {
	if version == 0 {
		v, err := recordVersion("", doc)
		if err != nil {
			return nil, err
		}
		version = v
	}
	shape := dtsfile.NewShape(version)
	if shape == nil {
		return nil, mismatch(versionKey, "unsupported shape version %d", version)
	}
	if err := recordFromDocument("", doc, shape); err != nil {
		return nil, err
	}
	return shape, nil
}

// MeshFromDocument converts a document produced by MeshToDocument back to a
// mesh.
func MeshFromDocument(doc Object) (dtsfile.Mesh, error) {
	v, err := recordFromDocumentValue("", doc, meshType)
	if err != nil {
		return nil, err
	}
	return v.Interface().(dtsfile.Mesh), nil
}

// MaterialListFromDocument converts a document produced by
// MaterialListToDocument back to a material list.
func MaterialListFromDocument(doc Object) (dtsfile.MaterialList, error) {
	v, err := recordFromDocumentValue("", doc, materialListType)
	if err != nil {
		return nil, err
	}
	return v.Interface().(dtsfile.MaterialList), nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func recordVersion(path string, doc Object) (uint32, error) {
	var version uint32
	d, ok := doc.Get(versionKey)
	if !ok {
		return 0, mismatch(joinPath(path, versionKey), "missing key")
	}
	if err := valueFromDocument(joinPath(path, versionKey), d, reflect.ValueOf(&version).Elem()); err != nil {
		return 0, err
	}
	return version, nil
}

// recordFromDocumentValue creates a record of the interface type t, selected by
// the version recorded in doc.
func recordFromDocumentValue(path string, doc Object, t reflect.Type) (reflect.Value, error) {
	version, err := recordVersion(path, doc)
	if err != nil {
		return reflect.Value{}, err
	}
	var r dtsfile.Record
	switch t {
	case meshType:
		if m := dtsfile.NewMesh(version); m != nil {
			r = m
		}
	case materialListType:
		if l := dtsfile.NewMaterialList(version); l != nil {
			r = l
		}
	}
	if r == nil {
		return reflect.Value{}, mismatch(joinPath(path, versionKey), "unsupported version %d", version)
	}
	if err := recordFromDocument(path, doc, r); err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(r), nil
}

func recordFromDocument(path string, doc Object, r dtsfile.Record) error {
	version, err := recordVersion(path, doc)
	if err != nil {
		return err
	}
	if version != r.Version() {
		return mismatch(joinPath(path, versionKey), "expected version %d, got %d", r.Version(), version)
	}
	return structFromDocument(path, doc, reflect.ValueOf(r).Elem())
}

func structFromDocument(path string, doc Object, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := fieldKey(t.Field(i))
		d, ok := doc.Get(key)
		if !ok {
			return mismatch(joinPath(path, key), "missing key")
		}
		if err := valueFromDocument(joinPath(path, key), d, v.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

func tagHeaderFromDocument(path string, d interface{}, h *dtsfile.TagHeader) error {
	if d == nil {
		*h = dtsfile.TagHeader{}
		return nil
	}
	doc, ok := d.(Object)
	if !ok {
		return mismatch(path, "expected object, got %s", kind(d))
	}
	var className string
	fields := []struct {
		key string
		v   interface{}
	}{
		{"className", &className},
		{"classNameLength", &h.FileInfo.ClassNameLength},
		{"fileLength", &h.FileInfo.FileLength},
		{"version", &h.Version},
	}
	for _, f := range fields {
		d, ok := doc.Get(f.key)
		if !ok {
			return mismatch(joinPath(path, f.key), "missing key")
		}
		if err := valueFromDocument(joinPath(path, f.key), d, reflect.ValueOf(f.v).Elem()); err != nil {
			return err
		}
	}
	b, err := encodeText(className)
	if err != nil {
		return mismatch(joinPath(path, "className"), "%s", err)
	}
	h.Tag = dtsfile.PersTag
	h.ClassName = string(b)
	return nil
}

func valueFromDocument(path string, d interface{}, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Interface:
		if d == nil {
			if v.Type() == materialListType {
				v.Set(reflect.Zero(v.Type()))
				return nil
			}
			return mismatch(path, "expected object, got null")
		}
		doc, ok := d.(Object)
		if !ok {
			return mismatch(path, "expected object, got %s", kind(d))
		}
		r, err := recordFromDocumentValue(path, doc, v.Type())
		if err != nil {
			return err
		}
		v.Set(r)
		return nil

	case reflect.Struct:
		if v.Type() == tagHeaderType {
			return tagHeaderFromDocument(path, d, v.Addr().Interface().(*dtsfile.TagHeader))
		}
		doc, ok := d.(Object)
		if !ok {
			return mismatch(path, "expected object, got %s", kind(d))
		}
		return structFromDocument(path, doc, v)

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			s, ok := d.(string)
			if !ok {
				return mismatch(path, "expected string, got %s", kind(d))
			}
			b, err := encodeText(s)
			if err != nil {
				return mismatch(path, "%s", err)
			}
			if len(b) > v.Len() {
				return mismatch(path, "string of %d bytes exceeds %d", len(b), v.Len())
			}
			v.Set(reflect.Zero(v.Type()))
			reflect.Copy(v, reflect.ValueOf(b))
			return nil
		}
		a, ok := d.(Array)
		if !ok {
			return mismatch(path, "expected array, got %s", kind(d))
		}
		if len(a) != v.Len() {
			return mismatch(path, "expected %d elements, got %d", v.Len(), len(a))
		}
		for i, d := range a {
			if err := valueFromDocument(path+"["+strconv.Itoa(i)+"]", d, v.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice:
		a, ok := d.(Array)
		if !ok {
			return mismatch(path, "expected array, got %s", kind(d))
		}
		s := reflect.MakeSlice(v.Type(), len(a), len(a))
		for i, d := range a {
			if err := valueFromDocument(path+"["+strconv.Itoa(i)+"]", d, s.Index(i)); err != nil {
				return err
			}
		}
		v.Set(s)
		return nil

	case reflect.String:
		s, ok := d.(string)
		if !ok {
			return mismatch(path, "expected string, got %s", kind(d))
		}
		v.SetString(s)
		return nil

	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		switch d := d.(type) {
		case int64:
			n = d
		case uint64:
			if d > math.MaxInt64 {
				return mismatch(path, "integer %d overflows %s", d, v.Type())
			}
			n = int64(d)
		default:
			return mismatch(path, "expected integer, got %s", kind(d))
		}
		if v.OverflowInt(n) {
			return mismatch(path, "integer %d overflows %s", n, v.Type())
		}
		v.SetInt(n)
		return nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		switch d := d.(type) {
		case uint64:
			n = d
		case int64:
			if d < 0 {
				return mismatch(path, "integer %d overflows %s", d, v.Type())
			}
			n = uint64(d)
		default:
			return mismatch(path, "expected integer, got %s", kind(d))
		}
		if v.OverflowUint(n) {
			return mismatch(path, "integer %d overflows %s", n, v.Type())
		}
		v.SetUint(n)
		return nil

	case reflect.Float32:
		var f float32
		switch d := d.(type) {
		case float32:
			f = d
		case float64:
			f = float32(d)
		case int64:
			f = float32(d)
		case uint64:
			f = float32(d)
		case string:
			bits, err := parseFloatBits(d)
			if err != nil {
				return mismatch(path, "%s", err)
			}
			f = math.Float32frombits(bits)
		default:
			return mismatch(path, "expected number, got %s", kind(d))
		}
		v.Set(reflect.ValueOf(f).Convert(v.Type()))
		return nil
	}
	return mismatch(path, "unsupported type %s", v.Type())
}

// formatFloatBits returns the string form of a float that has no number
// token, such as NaN.
func formatFloatBits(f float32) string {
	return fmt.Sprintf("%s%08X", floatBitsPrefix, math.Float32bits(f))
}

func parseFloatBits(s string) (uint32, error) {
	if !strings.HasPrefix(s, floatBitsPrefix) {
		return 0, fmt.Errorf("expected number, got string %q", s)
	}
	bits, err := strconv.ParseUint(s[len(floatBitsPrefix):], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed float bits %q", s)
	}
	return uint32(bits), nil
}

// kind returns a description of the kind of a document value.
func kind(d interface{}) string {
	switch d.(type) {
	case nil:
		return "null"
	case Object:
		return "object"
	case Array:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, uint64:
		return "integer"
	case float32, float64:
		return "float"
	}
	return fmt.Sprintf("%T", d)
}
