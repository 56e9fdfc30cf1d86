// Package errors collects the non-fatal problems found while processing shape
// data, so that they can be reported together.
package errors

import (
	"strconv"
	"strings"
)

// Errors is a list of errors, typically warnings accumulated while decoding.
type Errors []error

// Error formats the list by separating each message with a newline. Each
// produced line, including lines within messages, is prefixed with a tab.
func (errs Errors) Error() string {
	switch len(errs) {
	case 0:
		return "no errors"
	case 1:
		return errs[0].Error()
	}
	var buf strings.Builder
	buf.WriteString(strconv.Itoa(len(errs)))
	buf.WriteString(" errors:")
	for _, err := range errs {
		buf.WriteString("\n\t")
		buf.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n\t"))
	}
	return buf.String()
}

// Unwrap returns the list, so that errors.Is and errors.As inspect each
// element.
func (errs Errors) Unwrap() []error {
	return errs
}

// Append returns errs with each err appended to it. Arguments that are nil are
// skipped.
func (errs Errors) Append(err ...error) Errors {
	for _, err := range err {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Return prepares errs to be returned by a function by returning nil if errs is
// empty.
func (errs Errors) Return() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Union combines a number of errors into one Errors. Any errs that are Errors
// are flattened. Returns nil if all errs are nil or empty.
func Union(errs ...error) error {
	var e Errors
	for _, err := range errs {
		if list, ok := err.(Errors); ok {
			e = e.Append(list...)
			continue
		}
		e = e.Append(err)
	}
	return e.Return()
}

// Lines returns the message of each error in err. An Errors is flattened into
// its elements, and a nil err produces no lines.
func Lines(err error) []string {
	switch err := err.(type) {
	case nil:
		return nil
	case Errors:
		var lines []string
		for _, e := range err {
			lines = append(lines, Lines(e)...)
		}
		return lines
	}
	return []string{err.Error()}
}
