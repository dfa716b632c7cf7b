package gen

import (
	"github.com/dave/jennifer/jen"

	"input-object-generator/internal/plan"
)

// genParseValue emits ParseValue. Every field is parsed into a local first;
// the receiver is only assigned once all fields succeeded. Located values are
// cloned before parsing so that the result never aliases the input.
func genParseValue(f *jen.File, rec *plan.RecordPlan, rt runtime) {
	f.Comment("ParseValue fills " + idRecv + " from an input value. A nil value is an absent input.")
	f.Func().Params(jen.Id(idRecv).Op("*").Id(rec.ID.Name)).Id("ParseValue").Params(
		jen.Id(idParamV).Qual(rt.value, "Value"),
	).Error().BlockFunc(func(g *jen.Group) {
		g.List(jen.Id(idVarObj), jen.Err()).Op(":=").Qual(rt.input, "ExpectObject").Call(
			jen.Id(idParamV), jen.Lit(rec.TypeName+"!"),
		)
		g.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err()))
		g.Line()

		locals := localNames(rec.Fields)

		for i, fp := range rec.Fields {
			switch {
			case fp.Kind == plan.FieldFlatten:
				genParseFlatten(g, fp, locals[i], rt)
			case fp.Default.Kind == plan.DefaultNone:
				genParseRequired(g, fp, locals[i], rt)
			default:
				genParseDefaulted(g, fp, locals[i], rt)
			}

			g.Line()
		}

		for i, fp := range rec.Fields {
			g.Id(idRecv).Dot(fp.Ident).Op("=").Id(locals[i])
		}

		g.Line()
		g.Return(jen.Nil())
	})
	f.Line()
}

// genParseRequired parses a field without default; an absent key reaches
// the codec as nil.
func genParseRequired(g *jen.Group, fp plan.FieldPlan, local string, rt runtime) {
	g.List(jen.Id(local), jen.Err()).Op(":=").Add(rt.codec(fp.Codec)).Dot("Parse").Call(
		rt.clone(jen.Id(idVarObj).Index(jen.Lit(fp.Name))),
	)
	g.If(jen.Err().Op("!=").Nil()).Block(
		jen.Return(jen.Qual(rt.input, "PropagateField").Call(jen.Lit(fp.Name), jen.Err())),
	)
}

// genParseDefaulted parses a present key and falls back to the default
// otherwise.
func genParseDefaulted(g *jen.Group, fp plan.FieldPlan, local string, rt runtime) {
	g.Var().Id(local).Add(goType(fp.Type))

	stmt := g.If(
		jen.List(jen.Id(idVarRaw), jen.Id(idVarOK)).Op(":=").Id(idVarObj).Index(jen.Lit(fp.Name)),
		jen.Id(idVarOK),
	).Block(
		jen.If(
			jen.List(jen.Id(local), jen.Err()).Op("=").Add(rt.codec(fp.Codec)).Dot("Parse").Call(rt.clone(jen.Id(idVarRaw))),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Qual(rt.input, "PropagateField").Call(jen.Lit(fp.Name), jen.Err())),
		),
	)

	// The zero value default is already held by the declaration.
	if fp.Default.Kind == plan.DefaultLiteral && fp.Default.Expr == "" {
		return
	}

	stmt.Else().Block(jen.Id(local).Op("=").Add(defaultExpr(fp)))
}

// genParseFlatten hands the whole object to the nested type. Errors are
// tagged with the Go field name since a flatten field has no name of its own.
func genParseFlatten(g *jen.Group, fp plan.FieldPlan, local string, rt runtime) {
	g.Var().Id(local).Add(goType(fp.Target))
	g.If(
		jen.Err().Op(":=").Id(local).Dot("ParseValue").Call(jen.Id(idVarObj)),
		jen.Err().Op("!=").Nil(),
	).Block(
		jen.Return(jen.Qual(rt.input, "PropagateField").Call(jen.Lit(fp.Ident), jen.Err())),
	)
}
