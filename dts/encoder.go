package dts

import (
	"errors"
	"io"

	"github.com/siegetools/dtsfile"
	"go.uber.org/zap"
)

// Encoder encodes shapes and material lists into the binary format.
//
// A record with a zero Tag is written with a synthesized header: the canonical
// class name of the record and a file length covering the rest of the record.
// Otherwise, the stored header is written unchanged.
type Encoder struct{}

// Encode writes s to w as a tagged record.
func (e Encoder) Encode(w io.Writer, s dtsfile.Shape) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if s == nil {
		return errNilRecord
	}
	codec, ok := shapeCodecs[s.Version()]
	if !ok {
		return ErrUnsupportedShapeVersion(s.Version())
	}
	err := writeRecord(w, s.RecordHeader(), dtsfile.ShapeClassName, s.Version(), func(w *writer) bool {
		return codec.write(w, s)
	})
	if err != nil {
		return err
	}
	Logger().Debug("encoded shape",
		zap.Uint32("version", s.Version()),
		zap.Int("meshes", len(s.MeshList())))
	return nil
}

// EncodeMaterialList writes l to w as a tagged record.
func (e Encoder) EncodeMaterialList(w io.Writer, l dtsfile.MaterialList) error {
	if w == nil {
		return errors.New("nil writer")
	}
	return writeMaterialList(w, l)
}

// EncodeRecord writes a shape or material list to w.
func (e Encoder) EncodeRecord(w io.Writer, r dtsfile.Record) error {
	switch r := r.(type) {
	case dtsfile.Shape:
		return e.Encode(w, r)
	case dtsfile.MaterialList:
		return e.EncodeMaterialList(w, r)
	case nil:
		return errNilRecord
	}
	return errors.New("unsupported record type " + r.ClassName())
}
