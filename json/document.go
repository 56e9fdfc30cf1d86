package json

// Object is a document object. Fields keep the order in which they were
// added, which is the order they are written in.
type Object []Field

// Field is a named value within an Object.
type Field struct {
	Name  string
	Value interface{}
}

// Array is a document array.
type Array []interface{}

// Get returns the value of the first field with the given name.
func (o Object) Get(name string) (v interface{}, ok bool) {
	for _, f := range o {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of the first field with the given name, or appends a
// new field if there is none.
func (o Object) Set(name string, v interface{}) Object {
	for i, f := range o {
		if f.Name == name {
			o[i].Value = v
			return o
		}
	}
	return append(o, Field{Name: name, Value: v})
}

// Keys returns the names of the fields of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, f := range o {
		keys[i] = f.Name
	}
	return keys
}
