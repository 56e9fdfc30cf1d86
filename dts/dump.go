package dts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"unicode"

	"github.com/siegetools/dtsfile"
)

// Dump writes to w a readable representation of the record decoded from b,
// which may be a shape or a material list. Indices are not validated.
func (d Decoder) Dump(w io.Writer, b []byte) (warn, err error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}

	d.NoValidate = true
	record, warn, err := d.DecodeRecord(b, 0)
	if err != nil {
		return warn, err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Size: %d", len(b))
	dumpNewline(bw, 0)
	dumpRecord(bw, 0, record)
	bw.WriteByte('\n')
	return warn, bw.Flush()
}

func dumpRecord(w *bufio.Writer, indent int, record dtsfile.Record) {
	h := record.RecordHeader()
	fmt.Fprintf(w, "%s (version %d) {", record.ClassName(), record.Version())
	if h.IsZero() {
		dumpNewline(w, indent+1)
		w.WriteString("Header: <synthesized>")
	} else {
		dumpNewline(w, indent+1)
		w.WriteString("Tag: ")
		dumpSig(w, h.Tag)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "FileLength: %d", h.FileInfo.FileLength)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "ClassNameLength: %d", h.FileInfo.ClassNameLength)
		dumpNewline(w, indent+1)
		w.WriteString("ClassName: ")
		dumpString(w, indent+1, h.ClassName)
		if h.Version != record.Version() {
			dumpNewline(w, indent+1)
			fmt.Fprintf(w, "StoredVersion: %d", h.Version)
		}
	}

	v := reflect.ValueOf(record).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Name == "Tag" {
			continue
		}
		dumpNewline(w, indent+1)
		w.WriteString(t.Field(i).Name)
		w.WriteString(": ")
		dumpValue(w, indent+1, v.Field(i))
	}
	dumpNewline(w, indent)
	w.WriteByte('}')
}

// flat returns whether t is a struct with only numeric fields.
func flat(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		switch t.Field(i).Type.Kind() {
		case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
		default:
			return false
		}
	}
	return true
}

func dumpValue(w *bufio.Writer, indent int, v reflect.Value) {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			w.WriteString("nil")
			return
		}
		if record, ok := v.Interface().(dtsfile.Record); ok {
			dumpRecord(w, indent, record)
			return
		}
		dumpValue(w, indent, v.Elem())
	case reflect.Ptr:
		if v.IsNil() {
			w.WriteString("nil")
			return
		}
		dumpValue(w, indent, v.Elem())
	case reflect.Struct:
		t := v.Type()
		if flat(t) {
			w.WriteByte('{')
			for i := 0; i < t.NumField(); i++ {
				if i > 0 {
					w.WriteString(", ")
				}
				w.WriteString(t.Field(i).Name)
				w.WriteString(": ")
				dumpValue(w, indent, v.Field(i))
			}
			w.WriteByte('}')
			return
		}
		w.WriteByte('{')
		for i := 0; i < t.NumField(); i++ {
			dumpNewline(w, indent+1)
			w.WriteString(t.Field(i).Name)
			w.WriteString(": ")
			dumpValue(w, indent+1, v.Field(i))
		}
		dumpNewline(w, indent)
		w.WriteByte('}')
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			dumpString(w, indent, dtsfile.TrimName(b))
			return
		}
		dumpList(w, indent, v)
	case reflect.Slice:
		dumpList(w, indent, v)
	case reflect.Float32, reflect.Float64:
		w.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()))
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		w.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.String:
		dumpString(w, indent, v.String())
	default:
		fmt.Fprintf(w, "%v", v.Interface())
	}
}

func dumpList(w *bufio.Writer, indent int, v reflect.Value) {
	fmt.Fprintf(w, "(count:%d) {", v.Len())
	for i := 0; i < v.Len(); i++ {
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "%d: ", i)
		dumpValue(w, indent+1, v.Index(i))
	}
	if v.Len() > 0 {
		dumpNewline(w, indent)
	}
	w.WriteByte('}')
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	for i := 0; i < indent; i++ {
		w.WriteByte('\t')
	}
}

func dumpSig(w *bufio.Writer, sig dtsfile.Tag) {
	for _, c := range sig {
		if unicode.IsPrint(rune(c)) {
			w.WriteByte(c)
		} else {
			w.WriteByte('.')
		}
	}
	fmt.Fprintf(w, " (% 02X)", sig[:])
}

func dumpString(w *bufio.Writer, indent int, s string) {
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			dumpBytes(w, indent, []byte(s))
			return
		}
	}
	fmt.Fprintf(w, "(len:%d) ", len(s))
	w.WriteString(strconv.Quote(s))
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	fmt.Fprintf(w, "(len:%d)", len(b))
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		for i := j; i < j+width; {
			if i < len(b) {
				s := strconv.FormatUint(uint64(b[i]), 16)
				if len(s) == 1 {
					w.WriteString("0")
				}
				w.WriteString(s)
			} else if len(b) < width {
				break
			} else {
				w.WriteString("  ")
			}
			i++
			if i%8 == 0 && i < j+width {
				w.WriteString("  ")
			} else {
				w.WriteString(" ")
			}
		}
		w.WriteString("|")
		n := len(b)
		if j+width < n {
			n = j + width
		}
		for i := j; i < n; i++ {
			if 32 <= b[i] && b[i] <= 126 {
				w.WriteRune(rune(b[i]))
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}
