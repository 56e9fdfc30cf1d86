package dts

import (
	"github.com/siegetools/dtsfile"
	"go.uber.org/zap"
)

// Decoder decodes a slice of bytes into shapes and material lists.
//
// A Decoder holds no state between calls, so it may be used by any number of
// goroutines at once.
type Decoder struct {
	// If NoValidate is true, then the decoder will not check that the indices
	// within a decoded shape refer to existing elements.
	NoValidate bool

	// If LaxClassNames is true, then the decoder will not check the class names
	// of records.
	LaxClassNames bool
}

func (d Decoder) newReader(b []byte, offset int) (*reader, error) {
	if offset < 0 || offset > len(b) {
		return nil, DataError{Offset: int64(offset), Cause: ErrTruncated}
	}
	r := newReader(b, offset)
	r.lax = d.LaxClassNames
	return r, nil
}

// finish produces the result of decoding a top-level record.
func (d Decoder) finish(r *reader) (warn, err error) {
	if err := r.result(); err != nil {
		return r.warn.Return(), err
	}
	if n := r.remaining(); n > 0 {
		r.warning(errTrailing(n))
	}
	return r.warn.Return(), nil
}

// Decode decodes the shape beginning at offset within b.
//
// Warnings are returned for anomalies that do not prevent decoding. No shape
// is returned when err is not nil.
func (d Decoder) Decode(b []byte, offset int) (shape dtsfile.Shape, warn, err error) {
	r, err := d.newReader(b, offset)
	if err != nil {
		return nil, nil, err
	}
	var h dtsfile.TagHeader
	if r.header(&h) {
		return nil, r.warn.Return(), r.result()
	}
	if !d.LaxClassNames && h.ClassName != dtsfile.ShapeClassName {
		r.fail(ClassError{Expected: dtsfile.ShapeClassName, Got: h.ClassName})
		return nil, r.warn.Return(), r.result()
	}
	shape = d.readShape(r, h.Version, h)
	if warn, err = d.finish(r); err != nil {
		return nil, warn, err
	}
	if err = d.validate(shape); err != nil {
		return nil, warn, err
	}
	return shape, warn, nil
}

// ReadShape decodes the body of a shape of the given version beginning at
// offset within b. It is used when the tagged header of the shape has already
// been read by the caller. The returned shape has a zero Tag.
func (d Decoder) ReadShape(b []byte, offset int, version uint32) (shape dtsfile.Shape, warn, err error) {
	r, err := d.newReader(b, offset)
	if err != nil {
		return nil, nil, err
	}
	shape = d.readShape(r, version, dtsfile.TagHeader{})
	if warn, err = d.finish(r); err != nil {
		return nil, warn, err
	}
	if err = d.validate(shape); err != nil {
		return nil, warn, err
	}
	return shape, warn, nil
}

// readShape reads the body of a shape of the given version. The shape keeps h
// as its header.
func (d Decoder) readShape(r *reader, version uint32, h dtsfile.TagHeader) dtsfile.Shape {
	codec, ok := shapeCodecs[version]
	if !ok {
		r.fail(ErrUnsupportedShapeVersion(version))
		return nil
	}
	shape, failed := codec.read(r, h)
	if failed {
		return nil
	}
	Logger().Debug("decoded shape",
		zap.Uint32("version", shape.Version()),
		zap.Int("meshes", len(shape.MeshList())),
		zap.Int64("end", r.offset()))
	return shape
}

func (d Decoder) validate(shape dtsfile.Shape) error {
	if d.NoValidate {
		return nil
	}
	return dtsfile.Validate(shape)
}

// DecodeMaterialList decodes the material list beginning at offset within b.
// Such lists are stored in their own files, separately from shapes. Lists of
// version 2 are upgraded to MaterialListV3.
func (d Decoder) DecodeMaterialList(b []byte, offset int) (list dtsfile.MaterialList, warn, err error) {
	r, err := d.newReader(b, offset)
	if err != nil {
		return nil, nil, err
	}
	list, _ = r.taggedMaterialList()
	if warn, err = d.finish(r); err != nil {
		return nil, warn, err
	}
	return list, warn, nil
}

// DecodeRecord decodes the record beginning at offset within b, which may be
// either a shape or a material list, as indicated by its class name. A record
// with any other class name is decoded as a shape if LaxClassNames is true.
func (d Decoder) DecodeRecord(b []byte, offset int) (record dtsfile.Record, warn, err error) {
	h, _, err := ReadHeader(b, offset)
	if err != nil {
		return nil, nil, err
	}
	if h.ClassName == dtsfile.MaterialListClassName {
		list, warn, err := d.DecodeMaterialList(b, offset)
		if err != nil {
			return nil, warn, err
		}
		return list, warn, nil
	}
	shape, warn, err := d.Decode(b, offset)
	if err != nil {
		return nil, warn, err
	}
	return shape, warn, nil
}

// Decode decodes the shape at the start of b with the default Decoder.
func Decode(b []byte) (shape dtsfile.Shape, warn, err error) {
	return Decoder{}.Decode(b, 0)
}
