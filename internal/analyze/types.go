package analyze

import (
	"go/token"
	"go/types"

	"input-object-generator/internal/naming"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "input-object-generator/examples/paging"
	Name    string // e.g., "Pagination"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Shape classifies the underlying type of an annotated declaration.
type Shape int

const (
	ShapeOther  Shape = iota
	ShapeStruct       // struct with named fields
)

// String returns a human-readable representation of the Shape.
func (s Shape) String() string {
	if s == ShapeStruct {
		return "struct"
	}

	return "other"
}

// RecordDescriptor describes one type annotated with the //gql:input
// directive.
type RecordDescriptor struct {
	ID TypeID
	// Name is the explicit external name from the directive.
	Name *string
	// RenameFields is the rule applied to field identifiers.
	RenameFields naming.RenameRule
	// Internal marks types declared inside this module; generated code then
	// refers to the runtime by its canonical import path.
	Internal bool
	Doc      string
	Shape    Shape
	// Underlying is the printed underlying type, used in shape errors.
	Underlying string
	Fields     []FieldDescriptor
	Pos        token.Position
	Named      *types.Named
}

// FieldDescriptor describes one struct field of a record.
type FieldDescriptor struct {
	Ident    string
	Type     types.Type
	Exported bool
	Embedded bool
	Doc      string
	// Name is the explicit external name from the tag.
	Name *string
	// Default is the default literal expression. An empty expression means
	// the zero value of the field type.
	Default *string
	// DefaultWith is the default factory reference, invoked without arguments.
	DefaultWith *string
	// Validator is the validator expression from the validate tag.
	Validator *string
	Flatten   bool
	Pos       token.Position
}

// Package groups the records found in one Go package.
type Package struct {
	Path    string
	Name    string
	Dir     string
	Types   *types.Package
	Records []*RecordDescriptor
}

// Result is the outcome of loading and analyzing packages.
type Result struct {
	Packages []*Package
	// inputObjects holds every annotated record across all packages.
	inputObjects map[TypeID]*RecordDescriptor
}

// Record returns the annotated record with the given ID.
func (r *Result) Record(id TypeID) (*RecordDescriptor, bool) {
	rec, ok := r.inputObjects[id]
	return rec, ok
}

// Records returns every annotated record in package order.
func (r *Result) Records() []*RecordDescriptor {
	var out []*RecordDescriptor
	for _, p := range r.Packages {
		out = append(out, p.Records...)
	}

	return out
}

// IDOf returns the TypeID of a named type.
func IDOf(named *types.Named) TypeID {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return TypeID{Name: obj.Name()}
	}

	return TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
}
