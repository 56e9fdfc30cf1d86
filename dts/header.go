package dts

import (
	"bytes"
	"io"

	"github.com/siegetools/dtsfile"
)

// Size of the tag and FileInfo that precede the class name.
const tagInfoSize = 4 + 4 + 2

// minRecordSize is the size of a tagged header with an empty class name.
const minRecordSize = tagInfoSize + 1 + 4

// header reads a tagged header.
func (r *reader) header(h *dtsfile.TagHeader) bool {
	if r.bytes(h.Tag[:]) {
		return true
	}
	if h.Tag != dtsfile.PersTag {
		return r.fail(ErrBadTag)
	}
	if r.i32(&h.FileInfo.FileLength) || r.i16(&h.FileInfo.ClassNameLength) {
		return true
	}
	if h.FileInfo.ClassNameLength < 0 {
		return r.fail(CountError{Field: "classNameLength", Count: int64(h.FileInfo.ClassNameLength)})
	}
	name := make([]byte, dtsfile.ClassNameBytes(h.FileInfo.ClassNameLength))
	if r.bytes(name) {
		return true
	}
	h.ClassName = string(bytes.TrimRight(name, "\x00"))
	return r.u32(&h.Version)
}

// nestedHeader reads the header of a nested record and checks its class name.
func (r *reader) nestedHeader(h *dtsfile.TagHeader, class string) bool {
	if r.header(h) {
		return true
	}
	if !r.lax && h.ClassName != class {
		return r.fail(ClassError{Expected: class, Got: h.ClassName})
	}
	return false
}

// ReadHeader reads the tagged header at offset within b. It returns the header
// and the number of bytes it occupies.
func ReadHeader(b []byte, offset int) (h dtsfile.TagHeader, n int, err error) {
	if offset < 0 || offset > len(b) {
		return h, 0, DataError{Offset: int64(offset), Cause: ErrTruncated}
	}
	r := newReader(b, offset)
	r.header(&h)
	if err := r.result(); err != nil {
		return dtsfile.TagHeader{}, 0, err
	}
	return h, int(r.fr.N()), nil
}

// writeRecord writes a tagged header followed by the body produced by body. If
// h is zero, a header is synthesized from class and the length of the body.
func writeRecord(out io.Writer, h dtsfile.TagHeader, class string, version uint32, body func(w *writer) bool) error {
	var buf bytes.Buffer
	bw := newWriter(&buf)
	body(bw)
	if err := bw.end(); err != nil {
		return err
	}

	if h.IsZero() {
		h.ClassName = class
		h.FileInfo.ClassNameLength = int16(len(class))
		h.FileInfo.FileLength = int32(dtsfile.ClassNameBytes(h.FileInfo.ClassNameLength) + 4 + buf.Len())
	}
	if h.FileInfo.ClassNameLength < 0 {
		return CountError{Field: "classNameLength", Count: int64(h.FileInfo.ClassNameLength)}
	}
	name := make([]byte, dtsfile.ClassNameBytes(h.FileInfo.ClassNameLength))
	copy(name, h.ClassName)

	w := newWriter(out)
	_ = w.bytes(dtsfile.PersTag[:]) ||
		w.i32(h.FileInfo.FileLength) ||
		w.i16(h.FileInfo.ClassNameLength) ||
		w.bytes(name) ||
		w.u32(version) ||
		w.bytes(buf.Bytes())
	return w.end()
}
