package gen

import (
	"github.com/dave/jennifer/jen"

	"input-object-generator/internal/plan"
)

// Identifiers used in generated methods.
const (
	idRecv      = "x"
	idParamV    = "v"
	idParamR    = "r"
	idVarObj    = "obj"
	idVarRaw    = "raw"
	idVarOK     = "ok"
	idVarFields = "fields"
	idVarMeta   = "mt"
	idVarNested = "nested"
)

// assemble emits the full binding of one record: the capability assertions,
// TypeName, CreateTypeInfo, ParseValue, ToValue and the InputObject marker.
func assemble(f *jen.File, rec *plan.RecordPlan, rt runtime) error {
	if len(rec.Fields) == 0 {
		return &plan.EmptyFieldsError{Type: rec.ID, Pos: rec.Pos}
	}

	genAssertions(f, rec, rt)
	genTypeName(f, rec)
	genCreateTypeInfo(f, rec, rt)
	genParseValue(f, rec, rt)
	genToValue(f, rec, rt)
	genMarker(f, rec)

	return nil
}

func genAssertions(f *jen.File, rec *plan.RecordPlan, rt runtime) {
	seen := map[string]bool{rec.ID.String(): true}
	targets := []jen.Code{jen.Id(rec.ID.Name)}

	for _, fp := range rec.Fields {
		if fp.Kind != plan.FieldFlatten {
			continue
		}

		key := fp.Target.Obj().Pkg().Path() + "." + fp.Target.Obj().Name()
		if seen[key] {
			continue
		}

		seen[key] = true
		targets = append(targets, goType(fp.Target))
	}

	f.Var().DefsFunc(func(g *jen.Group) {
		for _, t := range targets {
			g.Id("_").Qual(rt.input, "InputObjectType").Op("=").Parens(jen.Op("*").Add(t)).Parens(jen.Nil())
		}
	})
	f.Line()
}

func genTypeName(f *jen.File, rec *plan.RecordPlan) {
	f.Comment("TypeName returns the input object name " + rec.TypeName + ".")
	f.Func().Params(jen.Op("*").Id(rec.ID.Name)).Id("TypeName").Params().String().Block(
		jen.Return(jen.Lit(rec.TypeName)),
	)
	f.Line()
}

func genMarker(f *jen.File, rec *plan.RecordPlan) {
	f.Comment("InputObject marks " + rec.ID.Name + " as an input object.")
	f.Func().Params(jen.Op("*").Id(rec.ID.Name)).Id("InputObject").Params().Block()
	f.Line()
}

// optionalString renders s as input.Ptr("...") or nil.
func optionalString(rt runtime, s *string) jen.Code {
	if s == nil {
		return jen.Nil()
	}

	return jen.Qual(rt.input, "Ptr").Call(jen.Lit(*s))
}

// defaultExpr renders the default value of a scalar field.
func defaultExpr(fp plan.FieldPlan) jen.Code {
	switch {
	case fp.Default.Kind == plan.DefaultFactory:
		return jen.Id(fp.Default.Expr).Call()
	case fp.Default.Expr == "":
		return jen.Op("*").New(goType(fp.Type))
	default:
		return jen.Id(fp.Default.Expr)
	}
}
