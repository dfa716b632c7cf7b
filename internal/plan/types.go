package plan

import (
	"go/token"
	"go/types"

	"input-object-generator/internal/analyze"
	"input-object-generator/internal/diagnostic"
)

// InputObjectPlan is the final output of planning. It contains everything
// needed for code generation.
type InputObjectPlan struct {
	// Packages holds one entry per Go package with input objects.
	Packages []*PackagePlan
	// Diagnostics contains all warnings and errors from analysis and planning.
	Diagnostics diagnostic.Diagnostics
}

// Records returns every record plan in package order.
func (p *InputObjectPlan) Records() []*RecordPlan {
	var out []*RecordPlan
	for _, pkg := range p.Packages {
		out = append(out, pkg.Records...)
	}

	return out
}

// PackagePlan groups the record plans of one Go package. Each package gets a
// single generated file.
type PackagePlan struct {
	Path string
	Name string
	Dir  string
	// Types is the type-checked package; its scope tells which import names
	// the generated file must avoid.
	Types   *types.Package
	Records []*RecordPlan
}

// RecordPlan describes the bindings generated for one input object.
type RecordPlan struct {
	ID analyze.TypeID
	// TypeName is the resolved external name.
	TypeName    string
	Description *string
	// Internal selects the canonical runtime import path.
	Internal bool
	Fields   []FieldPlan
	Pos      token.Position
}

// FieldKind classifies how a field is bound.
type FieldKind int

const (
	// FieldScalar binds the field under its own external name.
	FieldScalar FieldKind = iota
	// FieldFlatten inlines the fields of a nested input object.
	FieldFlatten
)

// String returns a human-readable representation of the FieldKind.
func (k FieldKind) String() string {
	if k == FieldFlatten {
		return "flatten"
	}

	return "scalar"
}

// DefaultKind selects where an absent field's value comes from.
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	// DefaultLiteral uses a Go expression; an empty expression is the zero
	// value of the field type.
	DefaultLiteral
	// DefaultFactory calls a function without arguments.
	DefaultFactory
)

// String returns a human-readable representation of the DefaultKind.
func (k DefaultKind) String() string {
	switch k {
	case DefaultLiteral:
		return "literal"
	case DefaultFactory:
		return "factory"
	default:
		return "none"
	}
}

// DefaultPolicy is the resolved default of a scalar field.
type DefaultPolicy struct {
	Kind DefaultKind
	Expr string
}

// FieldPlan is the classified binding of one field.
type FieldPlan struct {
	// Ident is the Go field identifier.
	Ident string
	Kind  FieldKind
	Type  types.Type
	// Name is the external name. Empty for flatten fields.
	Name        string
	Description *string
	// Codec converts the field. Nil for flatten fields.
	Codec     *Codec
	Default   DefaultPolicy
	Validator *string
	// Target is the nested input object of a flatten field.
	Target *types.Named
	Pos    token.Position
}
