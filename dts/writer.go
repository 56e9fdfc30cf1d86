package dts

import (
	"io"
	"math"

	"github.com/anaminus/parse"
	"github.com/siegetools/dtsfile"
)

// writer writes primitives in little-endian order. Every method returns
// whether it failed.
type writer struct {
	fw *parse.BinaryWriter
}

func newWriter(w io.Writer) *writer {
	return &writer{fw: parse.NewBinaryWriter(w)}
}

func (w *writer) fail(err error) bool {
	w.fw.Add(0, err)
	return true
}

func (w *writer) end() error {
	_, err := w.fw.End()
	return err
}

func (w *writer) bytes(p []byte) bool { return w.fw.Bytes(p) }
func (w *writer) u8(v uint8) bool     { return w.fw.Number(v) }
func (w *writer) i16(v int16) bool    { return w.fw.Number(v) }
func (w *writer) u16(v uint16) bool   { return w.fw.Number(v) }
func (w *writer) i32(v int32) bool    { return w.fw.Number(v) }
func (w *writer) u32(v uint32) bool   { return w.fw.Number(v) }

func (w *writer) f32(v float32) bool {
	return w.fw.Number(math.Float32bits(v))
}

// writeList writes each record of list, after checking that the count n
// stored in the record header matches the length of the list.
func writeList[T any](w *writer, field string, n int32, list []T, write func(*writer, T) bool) bool {
	if int(n) != len(list) {
		return w.fail(LengthError{Field: field, Count: int64(n), Len: len(list)})
	}
	for _, v := range list {
		if write(w, v) {
			return true
		}
	}
	return false
}

func (w *writer) vector3F(v dtsfile.Vector3F) bool {
	return w.f32(v.X) || w.f32(v.Y) || w.f32(v.Z)
}

func (w *writer) vector3FPair(v dtsfile.Vector3FPair) bool {
	return w.vector3F(v.Min) || w.vector3F(v.Max)
}

func (w *writer) quaternion4S(q dtsfile.Quaternion4S) bool {
	return w.i16(q.X) || w.i16(q.Y) || w.i16(q.Z) || w.i16(q.W)
}

func (w *writer) quaternion4F(q dtsfile.Quaternion4F) bool {
	return w.f32(q.X) || w.f32(q.Y) || w.f32(q.Z) || w.f32(q.W)
}

func (w *writer) rgbData(c dtsfile.RGBData) bool {
	return w.u8(c.Red) || w.u8(c.Green) || w.u8(c.Blue) || w.u8(c.RGBFlags)
}

func (w *writer) name(n dtsfile.Name) bool {
	return w.bytes(n[:])
}
