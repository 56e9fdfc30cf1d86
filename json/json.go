// The json package converts shapes to and from structured interchange
// documents.
//
// A document is an ordered tree of Object, Array and scalar values. Every
// record becomes an Object whose first field is the schema version of the
// record, followed by its tagged header (null when the header is synthesized)
// and its fields in binary order, named in camelCase. Fixed-width strings are
// decoded from Windows-1252 with trailing NULs removed.
//
// Documents have a text form, which is indented JSON, and a compressed form,
// which is the text form compressed with lz4.
package json

import (
	"errors"

	"github.com/siegetools/dtsfile"
)

// Marshal returns the text form of the document of shape.
func Marshal(shape dtsfile.Shape) ([]byte, error) {
	if shape == nil {
		return nil, errors.New("nil shape")
	}
	return Encode(ToDocument(shape)), nil
}

// Unmarshal converts the text or compressed form of a document to a shape of
// the given version. If version is 0, the version recorded in the document is
// used.
func Unmarshal(b []byte, version uint32) (dtsfile.Shape, error) {
	var doc Object
	var err error
	if IsCompressed(b) {
		doc, err = DecodeCompressed(b)
	} else {
		doc, err = Decode(b)
	}
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, version)
}
