// Package value defines the closed variant used for arguments, variables,
// request context and resolver results. A Value is one of Null, Bool, Int,
// Float, String, Array or Object. Object fields keep their insertion order,
// so a Value round-trips through JSON without reshuffling keys.
//
// Values are immutable once constructed. All conversions to and from native
// Go types are explicit: see FromGo, Interface, Parse and the JSON methods.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Value is a tagged variant. The zero Value is Null.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	elems  []Value
	fields []ObjectField
}

// ObjectField is a single key/value pair of an Object. Fields are ordered;
// keys within one Object are unique.
type ObjectField struct {
	Name  string
	Value Value
}

// Null returns the null Value. It is identical to the zero Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array Value holding the given elements in order.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: elems}
}

// Object returns an object Value holding the given fields in order. When the
// same name appears more than once, the last value wins while the field keeps
// the position of its first occurrence.
func Object(fields ...ObjectField) Value {
	out := make([]ObjectField, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Name]; ok {
			out[i].Value = f.Value
			continue
		}
		index[f.Name] = len(out)
		out = append(out, f)
	}
	return Value{kind: KindObject, fields: out}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, or false if v is not a Bool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload, or 0 if v is not an Int.
func (v Value) Int() int64 { return v.i }

// Float returns the floating point payload. For an Int it returns the
// integer converted to float64, otherwise 0 for non-numeric kinds.
func (v Value) Float() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Str returns the string payload, or "" if v is not a String.
func (v Value) Str() string { return v.s }

// Len returns the number of elements of an Array or fields of an Object,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.elems)
	case KindObject:
		return len(v.fields)
	}
	return 0
}

// Index returns the i-th element of an Array, or Null when out of range or
// not an Array.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.elems) {
		return Value{}
	}
	return v.elems[i]
}

// Get looks up an Object field by name.
func (v Value) Get(name string) (Value, bool) {
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether an Object has a field with the given name.
func (v Value) Has(name string) bool {
	_, ok := v.Get(name)
	return ok
}

// Fields returns the ordered fields of an Object. The returned slice is
// shared with v and must not be modified.
func (v Value) Fields() []ObjectField { return v.fields }

// Elems returns the elements of an Array. The returned slice is shared with
// v and must not be modified.
func (v Value) Elems() []Value { return v.elems }

// Equal reports whether two Values are structurally equal. Int and Float
// never compare equal to each other, Object fields must match in order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindInt:
		return v.i == w.i
	case KindFloat:
		return v.f == w.f
	case KindString:
		return v.s == w.s
	case KindArray:
		if len(v.elems) != len(w.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(w.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.fields) != len(w.fields) {
			return false
		}
		for i := range v.fields {
			if v.fields[i].Name != w.fields[i].Name || !v.fields[i].Value.Equal(w.fields[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns the JSON encoding of v. It is meant for logging and
// debugging; use MarshalJSON when the error matters.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid value: %s>", err)
	}
	return string(b)
}

// MarshalJSON encodes v, keeping Object fields in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		b, err := json.Marshal(v.f)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindString:
		b, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(f.Name)
			if err != nil {
				return err
			}
			buf.Write(name)
			buf.WriteByte(':')
			if err := f.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// Parse decodes a JSON document into a Value, preserving object key order.
// Numbers without a fraction or exponent become Int, all others Float.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return numberValue(t)
	case json.Delim:
		switch t {
		case '[':
			var elems []Value
			for dec.More() {
				e, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, e)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return Value{}, err
			}
			return Array(elems...), nil
		case '{':
			var fields []ObjectField
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("value: unexpected object key %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				fields = append(fields, ObjectField{Name: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return Value{}, err
			}
			return Object(fields...), nil
		}
	}
	return Value{}, fmt.Errorf("value: unexpected JSON token %v", tok)
}

func numberValue(n json.Number) (Value, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		i, err := n.Int64()
		if err == nil {
			return Int(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, err
	}
	return Float(f), nil
}

// FromGo converts a native Go value into a Value. Maps are emitted with
// sorted keys so the result is deterministic. Supported inputs are nil,
// bool, string, Go integer and float types, json.Number, []interface{},
// map[string]interface{}, Value and ObjectField slices thereof.
func FromGo(x interface{}) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Int(int64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		return numberValue(t)
	case []interface{}:
		elems := make([]Value, len(t))
		for i, e := range t {
			v, err := FromGo(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Array(elems...), nil
	case map[string]interface{}:
		names := make([]string, 0, len(t))
		for name := range t {
			names = append(names, name)
		}
		sort.Strings(names)
		fields := make([]ObjectField, len(names))
		for i, name := range names {
			v, err := FromGo(t[name])
			if err != nil {
				return Value{}, err
			}
			fields[i] = ObjectField{Name: name, Value: v}
		}
		return Object(fields...), nil
	}
	return Value{}, fmt.Errorf("value: cannot convert %T", x)
}

// Interface converts v back into native Go types: nil, bool, int64,
// float64, string, []interface{} and map[string]interface{}. Object key
// order is lost, as Go maps are unordered.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]interface{}, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.fields))
		for _, f := range v.fields {
			out[f.Name] = f.Value.Interface()
		}
		return out
	}
	return nil
}
