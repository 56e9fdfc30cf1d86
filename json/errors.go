package json

import (
	"errors"
	"fmt"
)

// ErrSchemaMismatch indicates a document that does not have the shape of the
// record it is converted to.
var ErrSchemaMismatch = errors.New("schema mismatch")

// ErrNotCompressed indicates data that does not begin with the signature of
// the compressed form.
var ErrNotCompressed = errors.New("missing " + compressedSig + " signature")

// SchemaError is returned when a value within a document is missing or has the
// wrong kind.
type SchemaError struct {
	// Path locates the value, such as "meshes[0].header.numVerts".
	Path string
	// Cause wraps ErrSchemaMismatch.
	Cause error
}

func (err SchemaError) Error() string {
	if err.Path == "" {
		return err.Cause.Error()
	}
	return err.Path + ": " + err.Cause.Error()
}

func (err SchemaError) Unwrap() error {
	return err.Cause
}

func mismatch(path, format string, a ...interface{}) error {
	return SchemaError{
		Path:  path,
		Cause: fmt.Errorf("%w: "+format, append([]interface{}{ErrSchemaMismatch}, a...)...),
	}
}
