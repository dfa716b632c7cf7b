package input

import (
	"strconv"
	"strings"

	"input-object-generator/registry"
	"input-object-generator/value"
)

// Optional returns the nullable codec for *T. Absent and null values parse
// to nil, and nil serializes to null.
func Optional[T any](of InputType[T]) InputType[*T] {
	return optionalType[T]{of: of}
}

type optionalType[T any] struct {
	of InputType[T]
}

func (t optionalType[T]) TypeName() string { return t.of.TypeName() }

func (t optionalType[T]) CreateTypeInfo(r *registry.Registry) string {
	return strings.TrimSuffix(t.of.CreateTypeInfo(r), "!")
}

func (t optionalType[T]) Parse(v value.Value) (*T, error) {
	if v == nil || v.Kind() == value.KindNull {
		return nil, nil
	}

	x, err := t.of.Parse(v)
	if err != nil {
		return nil, err
	}

	return &x, nil
}

func (t optionalType[T]) ToValue(x *T) value.Value {
	if x == nil {
		return value.Null{}
	}

	return t.of.ToValue(*x)
}

// List returns the non-null list codec for []T. Following GraphQL input
// coercion a single non-list value is accepted as a one element list.
func List[T any](of InputType[T]) InputType[[]T] {
	return listType[T]{of: of}
}

type listType[T any] struct {
	of InputType[T]
}

func (t listType[T]) TypeName() string { return "[" + t.of.TypeName() + "]" }

func (t listType[T]) CreateTypeInfo(r *registry.Registry) string {
	return "[" + t.of.CreateTypeInfo(r) + "]!"
}

func (t listType[T]) Parse(v value.Value) ([]T, error) {
	switch tv := v.(type) {
	case nil, value.Null:
		return nil, ExpectedType(t.qualifiedName(), v)
	case value.List:
		out := make([]T, 0, len(tv))

		for i, item := range tv {
			x, err := t.of.Parse(item)
			if err != nil {
				return nil, PropagateField(strconv.Itoa(i), err)
			}

			out = append(out, x)
		}

		return out, nil
	default:
		x, err := t.of.Parse(v)
		if err != nil {
			return nil, err
		}

		return []T{x}, nil
	}
}

func (t listType[T]) ToValue(x []T) value.Value {
	out := make(value.List, 0, len(x))
	for _, item := range x {
		out = append(out, t.of.ToValue(item))
	}

	return out
}

func (t listType[T]) qualifiedName() string {
	return t.TypeName() + "!"
}
