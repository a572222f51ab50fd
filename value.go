package jsonflow

import (
	"fmt"
	"strconv"
)

// Kind identifies which case of the tagged Value union is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

// String gives a human-readable name for a Kind, used in error messages
// and test failure output.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the tagged variant produced by a Parser: Null, Bool, Integer,
// Float, String, Array, or Object. The zero Value is KindNull.
//
// A Value handed out by Parser.Get is a live view into the parser's
// tree: Array and Object values may still be mutated by later Consume
// calls (new elements appended, a partial string grown) until their
// closing delimiter is observed. Treat it as read-only and re-fetch
// with Get after every Consume rather than caching it across calls.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []*Value
	obj  *object
}

func newNull() *Value            { return &Value{kind: KindNull} }
func newBool(b bool) *Value      { return &Value{kind: KindBool, b: b} }
func newInteger(i int64) *Value  { return &Value{kind: KindInteger, i: i} }
func newFloat(f float64) *Value  { return &Value{kind: KindFloat, f: f} }
func newString(s string) *Value  { return &Value{kind: KindString, s: s} }
func newArray() *Value           { return &Value{kind: KindArray} }
func newObject() *Value          { return &Value{kind: KindObject, obj: newObjectMap()} }

// Kind reports which case of the union is populated.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the JSON null literal.
func (v *Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload and whether the value is KindBool.
func (v *Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Integer returns the integer payload and whether the value is
// KindInteger.
func (v *Value) Integer() (int64, bool) { return v.i, v.kind == KindInteger }

// Float returns the floating-point payload and whether the value is
// KindFloat.
func (v *Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// String returns the string payload (raw input bytes, escape sequences
// left un-decoded) and whether the value is KindString. A string
// returned while its closing quote has not yet been observed is a
// partial value that will grow on subsequent Consume calls.
func (v *Value) String() (string, bool) { return v.s, v.kind == KindString }

// Len returns the number of elements (Array) or keys (Object); it is 0
// for every other Kind.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Index returns the i'th element of an Array value, or nil if v is not
// an Array or i is out of range.
func (v *Value) Index(i int) *Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return v.arr[i]
}

// Field returns the value for key in an Object, or nil if v is not an
// Object or the key is absent.
func (v *Value) Field(key string) *Value {
	if v.kind != KindObject {
		return nil
	}
	val, _ := v.obj.Get(key)
	return val
}

// Keys returns an Object's keys in first-insertion order. It returns
// nil for every other Kind.
func (v *Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return v.obj.Keys()
}

// Native converts the tagged tree into plain Go values
// (map[string]any, []any, string, int64, float64, bool, nil) so callers
// can compare it with encoding/json output or range over it without
// walking the tagged representation directly. The conversion is a deep
// copy; mutating the result does not affect the live Value.
func (v *Value) Native() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Native()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		for _, k := range v.obj.Keys() {
			val, _ := v.obj.Get(k)
			out[k] = val.Native()
		}
		return out
	default:
		return nil
	}
}

// Render renders v as a JSON-ish debug string. It is meant for test
// failure output and logging, not as a conformant encoder: strings are
// not escape-decoded or re-escaped, they are emitted verbatim between
// quotes.
func (v *Value) Render() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return `"` + v.s + `"`
	case KindArray:
		s := "["
		for i, e := range v.arr {
			if i > 0 {
				s += ","
			}
			s += e.Render()
		}
		return s + "]"
	case KindObject:
		s := "{"
		for i, k := range v.obj.Keys() {
			if i > 0 {
				s += ","
			}
			val, _ := v.obj.Get(k)
			s += `"` + k + `":` + val.Render()
		}
		return s + "}"
	default:
		return "<invalid>"
	}
}
