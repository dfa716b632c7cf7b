// Package registry is the schema type catalog that generated input objects
// register themselves into.
//
// Registration is memoized by type name: the first CreateType call for a name
// inserts a placeholder, builds the meta type and replaces the placeholder;
// later calls return immediately. The placeholder lets self-referencing types
// (for example a list of the enclosing type) terminate.
package registry

import (
	"sort"
)

// MetaType describes a registered named type.
type MetaType interface {
	TypeName() string
}

// InputObject is the meta type of a GraphQL input object.
type InputObject struct {
	Name        string
	Description *string
	InputFields *InputFields
}

// TypeName returns the registered name.
func (t *InputObject) TypeName() string { return t.Name }

// Scalar is the meta type of a GraphQL scalar.
type Scalar struct {
	Name        string
	Description *string
}

// TypeName returns the registered name.
func (t *Scalar) TypeName() string { return t.Name }

// placeholder marks a type whose construction is in progress.
type placeholder struct {
	name string
}

func (t *placeholder) TypeName() string { return t.name }

// MetaInputValue describes one input object field.
type MetaInputValue struct {
	Name        string
	Description *string
	// Type is the qualified type reference, e.g. "Int!" or "[String!]".
	Type string
	// DefaultValue is the GraphQL literal rendering of the default, if any.
	DefaultValue *string
	// Validator is the validator expression attached to the field. It is
	// metadata only and never evaluated by the registry.
	Validator *string
}

// TypeInfoCreator is implemented by anything that can register itself.
type TypeInfoCreator interface {
	TypeName() string
	CreateTypeInfo(r *Registry) string
}

// Registry memoizes meta types by name. It is not safe for concurrent use;
// see Catalog.
type Registry struct {
	types map[string]MetaType
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		types: make(map[string]MetaType),
	}
}

// CreateType registers the type called name using build unless it is already
// registered, and returns qualifiedName.
func (r *Registry) CreateType(name, qualifiedName string, build func(r *Registry) MetaType) string {
	if _, ok := r.types[name]; !ok {
		r.types[name] = &placeholder{name: name}
		r.types[name] = build(r)
	}

	return qualifiedName
}

// CreateDummyType registers t into a throwaway registry and returns its meta
// type. It is used to introspect a type without touching r.
func (r *Registry) CreateDummyType(t TypeInfoCreator) MetaType {
	dummy := New()
	t.CreateTypeInfo(dummy)

	return dummy.types[t.TypeName()]
}

// Lookup returns the meta type registered under name.
func (r *Registry) Lookup(name string) (MetaType, bool) {
	t, ok := r.types[name]
	if !ok {
		return nil, false
	}

	if _, pending := t.(*placeholder); pending {
		return nil, false
	}

	return t, true
}

// Names returns all registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}
