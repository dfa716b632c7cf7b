package input

import (
	"fmt"
	"strconv"

	"input-object-generator/registry"
	"input-object-generator/value"
)

// Integer is the set of Go types accepted by the Int scalar. Every member
// fits in an Int, so uint and uint64 are left out.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32
}

// Floating is the set of Go types accepted by the Float scalar.
type Floating interface {
	~float32 | ~float64
}

func registerScalar(r *registry.Registry, name string) string {
	return r.CreateType(name, name+"!", func(*registry.Registry) registry.MetaType {
		return &registry.Scalar{Name: name}
	})
}

// Int returns the codec of the Int scalar for T.
func Int[T Integer]() InputType[T] { return intType[T]{} }

type intType[T Integer] struct{}

func (intType[T]) TypeName() string { return "Int" }

func (intType[T]) CreateTypeInfo(r *registry.Registry) string { return registerScalar(r, "Int") }

func (intType[T]) Parse(v value.Value) (T, error) {
	n, ok := v.(value.Int)
	if !ok {
		return 0, ExpectedType("Int!", v)
	}

	out := T(n)
	if int64(out) != int64(n) || (out < 0) != (n < 0) {
		return 0, &TypeMismatchError{
			Expected: "Int!",
			Found:    n,
			Reason:   fmt.Sprintf("out of range for %T", out),
		}
	}

	return out, nil
}

func (intType[T]) ToValue(x T) value.Value { return value.Int(x) }

// Float returns the codec of the Float scalar for T. Int values are
// accepted and widened.
func Float[T Floating]() InputType[T] { return floatType[T]{} }

type floatType[T Floating] struct{}

func (floatType[T]) TypeName() string { return "Float" }

func (floatType[T]) CreateTypeInfo(r *registry.Registry) string { return registerScalar(r, "Float") }

func (floatType[T]) Parse(v value.Value) (T, error) {
	switch n := v.(type) {
	case value.Float:
		return T(n), nil
	case value.Int:
		return T(n), nil
	default:
		return 0, ExpectedType("Float!", v)
	}
}

func (floatType[T]) ToValue(x T) value.Value { return value.Float(x) }

// String returns the codec of the String scalar for T.
func String[T ~string]() InputType[T] { return stringType[T]{} }

type stringType[T ~string] struct{}

func (stringType[T]) TypeName() string { return "String" }

func (stringType[T]) CreateTypeInfo(r *registry.Registry) string { return registerScalar(r, "String") }

func (stringType[T]) Parse(v value.Value) (T, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", ExpectedType("String!", v)
	}

	return T(s), nil
}

func (stringType[T]) ToValue(x T) value.Value { return value.String(x) }

// Boolean returns the codec of the Boolean scalar for T.
func Boolean[T ~bool]() InputType[T] { return booleanType[T]{} }

type booleanType[T ~bool] struct{}

func (booleanType[T]) TypeName() string { return "Boolean" }

func (booleanType[T]) CreateTypeInfo(r *registry.Registry) string { return registerScalar(r, "Boolean") }

func (booleanType[T]) Parse(v value.Value) (T, error) {
	b, ok := v.(value.Boolean)
	if !ok {
		return false, ExpectedType("Boolean!", v)
	}

	return T(b), nil
}

func (booleanType[T]) ToValue(x T) value.Value { return value.Boolean(x) }

// ID returns the codec of the ID scalar for T. Both strings and integers are
// accepted; the value is serialized as a string.
func ID[T ~string]() InputType[T] { return idType[T]{} }

type idType[T ~string] struct{}

func (idType[T]) TypeName() string { return "ID" }

func (idType[T]) CreateTypeInfo(r *registry.Registry) string { return registerScalar(r, "ID") }

func (idType[T]) Parse(v value.Value) (T, error) {
	switch id := v.(type) {
	case value.String:
		return T(id), nil
	case value.Int:
		return T(strconv.FormatInt(int64(id), 10)), nil
	default:
		return "", ExpectedType("ID!", v)
	}
}

func (idType[T]) ToValue(x T) value.Value { return value.String(x) }
