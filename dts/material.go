package dts

import (
	"bytes"
	"io"

	"github.com/siegetools/dtsfile"
	"go.uber.org/zap"
)

func (r *reader) materialV2(m *dtsfile.MaterialV2) bool {
	return r.i32(&m.Flags) || r.f32(&m.Alpha) || r.i32(&m.Index) ||
		r.rgbData(&m.RGBData) || r.bytes(m.FileName[:])
}

func (r *reader) materialV3(m *dtsfile.MaterialV3) bool {
	return r.i32(&m.Flags) || r.f32(&m.Alpha) || r.i32(&m.Index) ||
		r.rgbData(&m.RGBData) || r.bytes(m.FileName[:]) ||
		r.i32(&m.Type) || r.f32(&m.Elasticity) || r.f32(&m.Friction)
}

func (r *reader) materialV4(m *dtsfile.MaterialV4) bool {
	return r.i32(&m.Flags) || r.f32(&m.Alpha) || r.i32(&m.Index) ||
		r.rgbData(&m.RGBData) || r.bytes(m.FileName[:]) ||
		r.i32(&m.Type) || r.f32(&m.Elasticity) || r.f32(&m.Friction) ||
		r.u32(&m.UseDefaultProperties)
}

// materialCount checks the dimensions of a material list and returns the
// number of materials it contains.
func (r *reader) materialCount(h dtsfile.MaterialListHeader, size int) (int32, bool) {
	if h.NumDetails < 0 {
		return 0, r.fail(CountError{Field: "numDetails", Count: int64(h.NumDetails)})
	}
	if h.NumMaterials < 0 {
		return 0, r.fail(CountError{Field: "numMaterials", Count: int64(h.NumMaterials)})
	}
	n := int64(h.NumDetails) * int64(h.NumMaterials)
	if _, failed := r.count("numDetails*numMaterials", n, size); failed {
		return 0, true
	}
	return int32(n), false
}

// materialListBody reads a material list of the version given by h. Version 2
// lists are upgraded to MaterialListV3.
func (r *reader) materialListBody(h dtsfile.TagHeader) (dtsfile.MaterialList, bool) {
	var header dtsfile.MaterialListHeader
	if r.i32(&header.NumDetails) || r.i32(&header.NumMaterials) {
		return nil, true
	}
	switch h.Version {
	case 2:
		l := &dtsfile.MaterialListV2{Tag: h, Header: header}
		n, failed := r.materialCount(header, materialV2Size)
		if failed || readList(r, "numDetails*numMaterials", n, materialV2Size, &l.Materials, (*reader).materialV2) {
			return nil, true
		}
		Logger().Debug("upgraded material list",
			zap.Int64("offset", r.offset()),
			zap.Int("materials", len(l.Materials)))
		return l.Upgrade(), false
	case 3:
		l := &dtsfile.MaterialListV3{Tag: h, Header: header}
		n, failed := r.materialCount(header, materialV3Size)
		if failed || readList(r, "numDetails*numMaterials", n, materialV3Size, &l.Materials, (*reader).materialV3) {
			return nil, true
		}
		return l, false
	case 4:
		l := &dtsfile.MaterialListV4{Tag: h, Header: header}
		n, failed := r.materialCount(header, materialV4Size)
		if failed || readList(r, "numDetails*numMaterials", n, materialV4Size, &l.Materials, (*reader).materialV4) {
			return nil, true
		}
		return l, false
	}
	return nil, r.fail(ErrUnsupportedMaterialListVersion(h.Version))
}

// taggedMaterialList reads a tagged material list record.
func (r *reader) taggedMaterialList() (dtsfile.MaterialList, bool) {
	var h dtsfile.TagHeader
	if r.nestedHeader(&h, dtsfile.MaterialListClassName) {
		return nil, true
	}
	switch h.Version {
	case 2, 3, 4:
	default:
		return nil, r.fail(ErrUnsupportedMaterialListVersion(h.Version))
	}
	return r.materialListBody(h)
}

// materialList reads the presence flag of a material list, followed by the
// list when the flag is non-zero.
func (r *reader) materialList(list *dtsfile.MaterialList) bool {
	var flag int32
	if r.i32(&flag) {
		return true
	}
	if flag == 0 {
		*list = nil
		return false
	}
	if flag != 1 {
		r.warning(errMaterialFlag(flag))
	}
	l, failed := r.taggedMaterialList()
	if failed {
		return r.wrapRecord("materialList", -1)
	}
	*list = l
	return false
}

func (w *writer) materialV2(m dtsfile.MaterialV2) bool {
	return w.i32(m.Flags) || w.f32(m.Alpha) || w.i32(m.Index) ||
		w.rgbData(m.RGBData) || w.bytes(m.FileName[:])
}

func (w *writer) materialV3(m dtsfile.MaterialV3) bool {
	return w.i32(m.Flags) || w.f32(m.Alpha) || w.i32(m.Index) ||
		w.rgbData(m.RGBData) || w.bytes(m.FileName[:]) ||
		w.i32(m.Type) || w.f32(m.Elasticity) || w.f32(m.Friction)
}

func (w *writer) materialV4(m dtsfile.MaterialV4) bool {
	return w.i32(m.Flags) || w.f32(m.Alpha) || w.i32(m.Index) ||
		w.rgbData(m.RGBData) || w.bytes(m.FileName[:]) ||
		w.i32(m.Type) || w.f32(m.Elasticity) || w.f32(m.Friction) ||
		w.u32(m.UseDefaultProperties)
}

func (w *writer) materialListHeader(h dtsfile.MaterialListHeader) bool {
	return w.i32(h.NumDetails) || w.i32(h.NumMaterials)
}

func materialCount(h dtsfile.MaterialListHeader) int32 {
	return h.NumDetails * h.NumMaterials
}

// writeMaterialList writes l as a tagged record. A MaterialListV3 that was
// upgraded from version 2 is written in the version 2 layout.
func writeMaterialList(out io.Writer, l dtsfile.MaterialList) error {
	switch l := l.(type) {
	case *dtsfile.MaterialListV2:
		return writeRecord(out, l.Tag, dtsfile.MaterialListClassName, 2, func(w *writer) bool {
			return w.materialListHeader(l.Header) ||
				writeList(w, "numDetails*numMaterials", materialCount(l.Header), l.Materials, (*writer).materialV2)
		})
	case *dtsfile.MaterialListV3:
		if l.Upgraded() {
			return writeRecord(out, l.Tag, dtsfile.MaterialListClassName, 2, func(w *writer) bool {
				return w.materialListHeader(l.Header) ||
					writeList(w, "numDetails*numMaterials", materialCount(l.Header), l.Materials, func(w *writer, m dtsfile.MaterialV3) bool {
						return w.materialV2(m.Downgrade())
					})
			})
		}
		return writeRecord(out, l.Tag, dtsfile.MaterialListClassName, 3, func(w *writer) bool {
			return w.materialListHeader(l.Header) ||
				writeList(w, "numDetails*numMaterials", materialCount(l.Header), l.Materials, (*writer).materialV3)
		})
	case *dtsfile.MaterialListV4:
		return writeRecord(out, l.Tag, dtsfile.MaterialListClassName, 4, func(w *writer) bool {
			return w.materialListHeader(l.Header) ||
				writeList(w, "numDetails*numMaterials", materialCount(l.Header), l.Materials, (*writer).materialV4)
		})
	case nil:
		return errNilRecord
	}
	return ErrUnsupportedMaterialListVersion(l.Version())
}

// materialList writes the presence flag of l, followed by l if it is not nil.
func (w *writer) materialList(l dtsfile.MaterialList) bool {
	if l == nil {
		return w.i32(0)
	}
	var buf bytes.Buffer
	if err := writeMaterialList(&buf, l); err != nil {
		return w.fail(RecordError{Record: "materialList", Index: -1, Cause: err})
	}
	return w.i32(1) || w.bytes(buf.Bytes())
}
