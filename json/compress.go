package json

import (
	"bytes"
	"fmt"

	"github.com/bkaradzic/go-lz4"
)

// Signature of the compressed form.
const compressedSig = "DTSZ"

// EncodeCompressed returns the text form of doc compressed as an lz4 block,
// preceded by the DTSZ signature.
func EncodeCompressed(doc Object) ([]byte, error) {
	// lz4 prepends the length of the uncompressed text.
	block, err := lz4.Encode(nil, Encode(doc))
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	b := make([]byte, 0, len(compressedSig)+len(block))
	b = append(b, compressedSig...)
	return append(b, block...), nil
}

// DecodeCompressed parses a document produced by EncodeCompressed.
func DecodeCompressed(b []byte) (Object, error) {
	if !IsCompressed(b) {
		return nil, ErrNotCompressed
	}
	text, err := lz4.Decode(nil, b[len(compressedSig):])
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	return Decode(text)
}

// IsCompressed returns whether b begins with the signature of the compressed
// form.
func IsCompressed(b []byte) bool {
	return bytes.HasPrefix(b, []byte(compressedSig))
}
