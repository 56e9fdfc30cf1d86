package dts

import (
	"bytes"
	"math"

	"github.com/anaminus/parse"
	"github.com/siegetools/dtsfile"
	"github.com/siegetools/dtsfile/errors"
)

// reader reads primitives from a byte slice. Every method returns whether it
// failed; the first failure is retained along with the offset where it
// occurred, and every later read fails immediately.
type reader struct {
	fr *parse.BinaryReader
	// Offset of the first byte of the input within the original buffer.
	base int64
	// Number of bytes in the input.
	size int64

	err error
	at  int64

	warn errors.Errors

	// Options copied from the Decoder.
	lax bool
}

func newReader(b []byte, offset int) *reader {
	b = b[offset:]
	return &reader{
		fr:   parse.NewBinaryReader(bytes.NewReader(b)),
		base: int64(offset),
		size: int64(len(b)),
	}
}

// offset returns the position of the next byte within the original buffer.
func (r *reader) offset() int64 {
	return r.base + r.fr.N()
}

func (r *reader) remaining() int64 {
	return r.size - r.fr.N()
}

func (r *reader) fail(err error) bool {
	if r.err == nil {
		r.err = err
		r.at = r.offset()
	}
	return true
}

// wrapRecord wraps the current failure in a RecordError.
func (r *reader) wrapRecord(record string, index int) bool {
	r.err = RecordError{Record: record, Index: index, Cause: r.err}
	return true
}

// warning records a non-fatal anomaly at the current offset.
func (r *reader) warning(err error) {
	r.warn = append(r.warn, DataError{Offset: r.offset(), Cause: err})
}

// result returns the retained failure as a DataError.
func (r *reader) result() error {
	if r.err == nil {
		return nil
	}
	return DataError{Offset: r.at, Cause: r.err}
}

func (r *reader) need(n int64) bool {
	if r.err != nil {
		return true
	}
	if n > r.remaining() {
		return r.fail(ErrTruncated)
	}
	return false
}

func (r *reader) number(v interface{}, n int64) bool {
	if r.need(n) {
		return true
	}
	if r.fr.Number(v) {
		err := r.fr.Err()
		if err == nil {
			err = ErrTruncated
		}
		return r.fail(err)
	}
	return false
}

func (r *reader) bytes(p []byte) bool {
	if r.need(int64(len(p))) {
		return true
	}
	if r.fr.Bytes(p) {
		err := r.fr.Err()
		if err == nil {
			err = ErrTruncated
		}
		return r.fail(err)
	}
	return false
}

func (r *reader) u8(v *uint8) bool   { return r.number(v, 1) }
func (r *reader) i16(v *int16) bool  { return r.number(v, 2) }
func (r *reader) u16(v *uint16) bool { return r.number(v, 2) }
func (r *reader) i32(v *int32) bool  { return r.number(v, 4) }
func (r *reader) u32(v *uint32) bool { return r.number(v, 4) }

// f32 reads the raw bits of a float so that NaN payloads are preserved.
func (r *reader) f32(v *float32) bool {
	var bits uint32
	if r.u32(&bits) {
		return true
	}
	*v = math.Float32frombits(bits)
	return false
}

// count checks that n records of the given size can be read.
func (r *reader) count(field string, n int64, size int) (int, bool) {
	if r.err != nil {
		return 0, true
	}
	if n < 0 || n > r.remaining() || n*int64(size) > r.remaining() {
		return 0, r.fail(CountError{Field: field, Count: n})
	}
	return int(n), false
}

// readList reads n records into list.
func readList[T any](r *reader, field string, n int32, size int, list *[]T, read func(*reader, *T) bool) bool {
	c, failed := r.count(field, int64(n), size)
	if failed {
		return true
	}
	s := make([]T, c)
	for i := range s {
		if read(r, &s[i]) {
			return true
		}
	}
	*list = s
	return false
}

func (r *reader) vector3F(v *dtsfile.Vector3F) bool {
	return r.f32(&v.X) || r.f32(&v.Y) || r.f32(&v.Z)
}

func (r *reader) vector3FPair(v *dtsfile.Vector3FPair) bool {
	return r.vector3F(&v.Min) || r.vector3F(&v.Max)
}

func (r *reader) quaternion4S(q *dtsfile.Quaternion4S) bool {
	return r.i16(&q.X) || r.i16(&q.Y) || r.i16(&q.Z) || r.i16(&q.W)
}

func (r *reader) quaternion4F(q *dtsfile.Quaternion4F) bool {
	return r.f32(&q.X) || r.f32(&q.Y) || r.f32(&q.Z) || r.f32(&q.W)
}

func (r *reader) rgbData(c *dtsfile.RGBData) bool {
	return r.u8(&c.Red) || r.u8(&c.Green) || r.u8(&c.Blue) || r.u8(&c.RGBFlags)
}

func (r *reader) name(n *dtsfile.Name) bool {
	return r.bytes(n[:])
}
