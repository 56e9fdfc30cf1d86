package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Encode returns the text form of doc: indented JSON with fields in document
// order. Floats are always written with a fraction or exponent, so that they
// are distinguished from integers when decoded. Non-finite floats are written
// as strings holding their bits, such as "f32:7FC00000".
func Encode(doc Object) []byte {
	var t text
	t.object(doc)
	t.s.WriteByte('\n')
	return t.s.Bytes()
}

type text struct {
	s    bytes.Buffer
	lead []byte
}

func (t *text) push() *text {
	t.lead = append(t.lead, '\t')
	return t
}

func (t *text) pop() *text {
	t.lead = t.lead[:len(t.lead)-1]
	return t
}

func (t *text) newline() *text {
	t.s.WriteByte('\n')
	t.s.Write(t.lead)
	return t
}

// array writes v as a JSON array.
func (t *text) array(v Array) *text {
	t.s.WriteByte('[')
	if len(v) == 0 {
		t.s.WriteByte(']')
		return t
	}
	t.push()
	t.newline()
	t.value(v[0])
	for i := 1; i < len(v); i++ {
		t.s.WriteByte(',')
		t.newline()
		t.value(v[i])
	}
	t.pop()
	t.newline()
	t.s.WriteByte(']')
	return t
}

// object writes v as a JSON object.
func (t *text) object(v Object) *text {
	t.s.WriteByte('{')
	if len(v) == 0 {
		t.s.WriteByte('}')
		return t
	}
	t.push()
	for i, f := range v {
		if i > 0 {
			t.s.WriteByte(',')
		}
		t.newline()
		t.string(f.Name)
		t.s.WriteString(": ")
		t.value(f.Value)
	}
	t.pop()
	t.newline()
	t.s.WriteByte('}')
	return t
}

func (t *text) string(s string) *text {
	// From encoding/json
	const hex = "0123456789abcdef"
	t.s.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if b >= ' ' && b != '"' && b != '\\' {
				i++
				continue
			}
			if start < i {
				t.s.WriteString(s[start:i])
			}
			t.s.WriteByte('\\')
			switch b {
			case '\\', '"':
				t.s.WriteByte(b)
			case '\n':
				t.s.WriteByte('n')
			case '\r':
				t.s.WriteByte('r')
			case '\t':
				t.s.WriteByte('t')
			default:
				t.s.WriteString(`u00`)
				t.s.WriteByte(hex[b>>4])
				t.s.WriteByte(hex[b&0xF])
			}
			i++
			start = i
			continue
		}
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			if start < i {
				t.s.WriteString(s[start:i])
			}
			t.s.WriteString(`\ufffd`)
			i += size
			start = i
			continue
		}
		if c == '\u2028' || c == '\u2029' {
			if start < i {
				t.s.WriteString(s[start:i])
			}
			t.s.WriteString(`\u202`)
			t.s.WriteByte(hex[c&0xF])
			i += size
			start = i
			continue
		}
		i += size
	}
	if start < len(s) {
		t.s.WriteString(s[start:])
	}
	t.s.WriteByte('"')
	return t
}

func (t *text) value(v interface{}) *text {
	switch v := v.(type) {
	default:
		t.s.WriteString("<UNKNOWN:" + fmt.Sprintf("%T", v) + ">")

	case nil:
		t.s.WriteString("null")
	case bool:
		t.s.WriteString(strconv.FormatBool(v))
	case string:
		t.string(v)
	case int64:
		t.s.WriteString(strconv.FormatInt(v, 10))
	case uint64:
		t.s.WriteString(strconv.FormatUint(v, 10))
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.string(formatFloatBits(v))
			break
		}
		s := strconv.FormatFloat(float64(v), 'g', -1, 32)
		t.s.WriteString(s)
		if !strings.ContainsAny(s, ".e") {
			t.s.WriteString(".0")
		}
	case Array:
		t.array(v)
	case Object:
		t.object(v)
	}
	return t
}

////////////////////////////////////////////////////////////////

// Decode parses the text form of a document. Object fields keep the order in
// which they appear. Numbers with a fraction or exponent become float32
// values, and other numbers become int64, or uint64 when they exceed the range
// of int64.
func Decode(b []byte) (Object, error) {
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	v, err := decodeValue(d)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(Object)
	if !ok {
		return nil, mismatch("", "expected object, got %s", kind(v))
	}
	if _, err := d.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after document")
	}
	return doc, nil
}

func decodeValue(d *json.Decoder) (interface{}, error) {
	tok, err := d.Token()
	if err != nil {
		return nil, err
	}
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			doc := Object{}
			for d.More() {
				key, err := d.Token()
				if err != nil {
					return nil, err
				}
				name, _ := key.(string)
				v, err := decodeValue(d)
				if err != nil {
					return nil, err
				}
				doc = append(doc, Field{Name: name, Value: v})
			}
			if _, err := d.Token(); err != nil {
				return nil, err
			}
			return doc, nil
		case '[':
			a := Array{}
			for d.More() {
				v, err := decodeValue(d)
				if err != nil {
					return nil, err
				}
				a = append(a, v)
			}
			if _, err := d.Token(); err != nil {
				return nil, err
			}
			return a, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(tok))
	case json.Number:
		return parseNumber(string(tok))
	}
	return tok, nil
}

func parseNumber(s string) (interface{}, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed float %q", s)
		}
		return float32(f), nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed integer %q", s)
	}
	return n, nil
}
