// Package value provides the generic dynamic value exchanged between GraphQL
// input documents and generated input object bindings.
//
// A Value is one of Null, Int, Float, String, Boolean, Enum, List or Object.
// An absent value (for example a missing object key) is represented by a nil
// Value, which is distinct from an explicit Null.
package value

import (
	"sort"
	"strconv"
	"strings"
)

// Kind enumerates the shapes a Value can take.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindBoolean
	KindEnum
	KindList
	KindObject
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed GraphQL input value.
// String renders the value using GraphQL literal syntax.
type Value interface {
	Kind() Kind
	String() string
}

type (
	Null    struct{}
	Int     int64
	Float   float64
	String  string
	Boolean bool
	Enum    string
	List    []Value
	// Object maps field names to values. Iteration through Keys is sorted.
	Object map[string]Value
)

func (Null) Kind() Kind    { return KindNull }
func (Int) Kind() Kind     { return KindInt }
func (Float) Kind() Kind   { return KindFloat }
func (String) Kind() Kind  { return KindString }
func (Boolean) Kind() Kind { return KindBoolean }
func (Enum) Kind() Kind    { return KindEnum }
func (List) Kind() Kind    { return KindList }
func (Object) Kind() Kind  { return KindObject }

func (Null) String() string { return "null" }

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

func (v Float) String() string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}

	return s
}

func (v String) String() string { return quote(string(v)) }

func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }

func (v Enum) String() string { return string(v) }

func (v List) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, item := range v {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(Render(item))
	}

	sb.WriteByte(']')

	return sb.String()
}

func (v Object) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, k := range v.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(Render(v[k]))
	}

	sb.WriteByte('}')

	return sb.String()
}

// Keys returns the object keys in sorted order.
func (v Object) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Get returns the value stored under key. The boolean reports presence.
func (v Object) Get(key string) (Value, bool) {
	val, ok := v[key]
	return val, ok
}

// Extend copies all entries of other into v, overwriting existing keys.
func (v Object) Extend(other Object) {
	for k, val := range other {
		v[k] = val
	}
}

// Clone returns a deep copy of v. A nil Value is returned unchanged.
func Clone(v Value) Value {
	switch tv := v.(type) {
	case List:
		out := make(List, len(tv))
		for i, item := range tv {
			out[i] = Clone(item)
		}

		return out
	case Object:
		out := make(Object, len(tv))
		for k, item := range tv {
			out[k] = Clone(item)
		}

		return out
	default:
		return v
	}
}

// OrNull returns v, or Null when v is absent.
func OrNull(v Value) Value {
	if v == nil {
		return Null{}
	}

	return v
}

// Render is like v.String but renders an absent value as null.
func Render(v Value) string {
	return OrNull(v).String()
}

// Equal reports whether a and b are structurally equal. Absent and Null are
// not equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch ta := a.(type) {
	case List:
		tb := b.(List)
		if len(ta) != len(tb) {
			return false
		}

		for i := range ta {
			if !Equal(ta[i], tb[i]) {
				return false
			}
		}

		return true
	case Object:
		tb := b.(Object)
		if len(ta) != len(tb) {
			return false
		}

		for k, va := range ta {
			vb, ok := tb[k]
			if !ok || !Equal(va, vb) {
				return false
			}
		}

		return true
	default:
		return a == b
	}
}

func quote(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte("0123456789abcdef"[r>>4])
				sb.WriteByte("0123456789abcdef"[r&0xf])
			} else {
				sb.WriteRune(r)
			}
		}
	}

	sb.WriteByte('"')

	return sb.String()
}
