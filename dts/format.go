// Package dts implements a decoder and encoder for the Darkstar binary shape
// format.
//
// A file consists of a tagged record: the four byte "PERS" signature, the
// length of the record, a class name and a schema version, followed by the
// body of the record. Shapes contain their meshes and material list as nested
// tagged records. All numbers are little-endian and records are packed
// without padding.
//
// The easiest way to decode and encode shapes is through the Unmarshal and
// Marshal functions. A Decoder may be configured to skip index validation or
// to accept unexpected class names.
package dts

import (
	"bytes"

	"github.com/siegetools/dtsfile"
)

// Unmarshal decodes the shape at the start of b with the default Decoder.
// Warnings are discarded.
func Unmarshal(b []byte) (dtsfile.Shape, error) {
	s, _, err := Decoder{}.Decode(b, 0)
	return s, err
}

// Marshal encodes s with the default Encoder.
func Marshal(s dtsfile.Shape) ([]byte, error) {
	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
