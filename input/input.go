// Package input holds the runtime contracts generated input objects are
// built on: the InputType codec interface, codecs for the built-in scalars,
// optional values, lists and nested input objects, and the input error
// taxonomy.
//
// Generated code composes codecs per field, for example a field of type
// []*int uses List(Optional(Int[int]())).
package input

import (
	"input-object-generator/registry"
	"input-object-generator/value"
)

// InputType converts between Go values of type T and generic values, and
// registers T's schema shape.
type InputType[T any] interface {
	// TypeName returns the bare GraphQL type name, e.g. "Int".
	TypeName() string
	// CreateTypeInfo registers the type and returns its qualified reference,
	// e.g. "Int!" or "[Int!]".
	CreateTypeInfo(r *registry.Registry) string
	// Parse converts v into T. A nil v means the value is absent.
	Parse(v value.Value) (T, error)
	ToValue(x T) value.Value
}

// InputValue is implemented by pointers to types that convert themselves,
// such as generated input objects and custom scalars.
type InputValue interface {
	registry.TypeInfoCreator
	ParseValue(v value.Value) error
	ToValue() value.Value
}

// InputObjectType marks an InputValue as usable as an input object, which is
// required for flattening.
type InputObjectType interface {
	InputValue
	InputObject()
}

type selfType[T any, PT interface {
	*T
	InputValue
}] struct{}

func (selfType[T, PT]) TypeName() string {
	return PT(new(T)).TypeName()
}

func (selfType[T, PT]) CreateTypeInfo(r *registry.Registry) string {
	return PT(new(T)).CreateTypeInfo(r)
}

func (selfType[T, PT]) Parse(v value.Value) (T, error) {
	var out T
	if err := PT(&out).ParseValue(v); err != nil {
		return out, err
	}

	return out, nil
}

func (selfType[T, PT]) ToValue(x T) value.Value {
	return PT(&x).ToValue()
}

// Object returns the codec of the input object T.
func Object[T any, PT interface {
	*T
	InputObjectType
}]() InputType[T] {
	return selfType[T, PT]{}
}

// Custom returns the codec of a type whose pointer implements InputValue.
func Custom[T any, PT interface {
	*T
	InputValue
}]() InputType[T] {
	return selfType[T, PT]{}
}

// ExpectObject returns v as an Object. An absent value yields an empty Object
// so that every field falls back to its default or absent handling. Any other
// non-object value is a TypeMismatchError against expected.
func ExpectObject(v value.Value, expected string) (value.Object, error) {
	switch tv := v.(type) {
	case nil:
		return value.Object{}, nil
	case value.Object:
		return tv, nil
	default:
		return nil, ExpectedType(expected, v)
	}
}

// RenderDefault renders x through t as the GraphQL literal shown as a field
// default in the schema.
func RenderDefault[T any](t InputType[T], x T) *string {
	s := value.Render(t.ToValue(x))
	return &s
}

// Ptr returns a pointer to s. Generated schema code uses it for optional
// metadata strings.
func Ptr(s string) *string {
	return &s
}
