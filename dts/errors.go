package dts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// Indicates a record that does not begin with the "PERS" signature.
	ErrBadTag = errors.New("bad tag")
	// Indicates that the input ended before the record was complete.
	ErrTruncated = errors.New("unexpected end of data")

	errNilRecord = errors.New("nil record")
)

// ErrUnsupportedShapeVersion indicates a shape schema version not recognized
// by the codec.
type ErrUnsupportedShapeVersion uint32

func (err ErrUnsupportedShapeVersion) Error() string {
	return fmt.Sprintf("unsupported shape version %d", uint32(err))
}

// ErrUnsupportedMeshVersion indicates a mesh schema version not recognized by
// the codec.
type ErrUnsupportedMeshVersion uint32

func (err ErrUnsupportedMeshVersion) Error() string {
	return fmt.Sprintf("unsupported mesh version %d", uint32(err))
}

// ErrUnsupportedMaterialListVersion indicates a material list schema version
// not recognized by the codec.
type ErrUnsupportedMaterialListVersion uint32

func (err ErrUnsupportedMaterialListVersion) Error() string {
	return fmt.Sprintf("unsupported material list version %d", uint32(err))
}

// CountError indicates a count that is negative, or that describes more data
// than remains in the input.
type CountError struct {
	// Field is the name of the count.
	Field string
	// Count is the value of the count.
	Count int64
}

func (err CountError) Error() string {
	return fmt.Sprintf("invalid count %d for %s", err.Count, err.Field)
}

// LengthError indicates that a count within a record does not match the length
// of the list it describes. It is returned by the encoder.
type LengthError struct {
	// Field is the name of the count.
	Field string
	// Count is the value of the count.
	Count int64
	// Len is the length of the list.
	Len int
}

func (err LengthError) Error() string {
	return fmt.Sprintf("%s is %d, but list has length %d", err.Field, err.Count, err.Len)
}

// ClassError indicates a record with an unexpected class name.
type ClassError struct {
	Expected string
	Got      string
}

func (err ClassError) Error() string {
	return fmt.Sprintf("expected class %q, got %q", err.Expected, err.Got)
}

// DataError wraps an error that occurred while decoding byte data.
type DataError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	var s strings.Builder
	s.WriteString("data error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DataError) Unwrap() error {
	return err.Cause
}

// RecordError indicates an error that occurred within a nested record.
type RecordError struct {
	// Record is the kind of the record, such as "mesh".
	Record string
	// Index is the position of the record within its parent, or -1 if the
	// record is not part of a list.
	Index int

	Cause error
}

func (err RecordError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("%s: %s", err.Record, err.Cause.Error())
	}
	return fmt.Sprintf("%s #%d: %s", err.Record, err.Index, err.Cause.Error())
}

func (err RecordError) Unwrap() error {
	return err.Cause
}

// errAlignment is a warning produced when the alignment bytes of an object are
// non-zero.
type errAlignment struct {
	Index int
	Bytes [2]byte
}

func (err errAlignment) Error() string {
	return fmt.Sprintf("object #%d: non-zero alignment bytes % 02X", err.Index, err.Bytes[:])
}

// errMaterialFlag is a warning produced when the material list flag of a
// shape is neither 0 nor 1.
type errMaterialFlag int32

func (err errMaterialFlag) Error() string {
	return fmt.Sprintf("unexpected material list flag %d", int32(err))
}

// errTrailing is a warning produced when bytes remain after the top-level
// record.
type errTrailing int64

func (err errTrailing) Error() string {
	return fmt.Sprintf("%d bytes follow the record", int64(err))
}
