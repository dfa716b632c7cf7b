package gen

import (
	"github.com/dave/jennifer/jen"

	"input-object-generator/internal/plan"
)

// genToValue emits ToValue. Entries are written in declaration order, so a
// flattened entry overwrites an earlier one with the same name.
func genToValue(f *jen.File, rec *plan.RecordPlan, rt runtime) {
	f.Comment("ToValue converts " + idRecv + " into an input object value.")
	f.Func().Params(jen.Id(idRecv).Op("*").Id(rec.ID.Name)).Id("ToValue").Params().Qual(rt.value, "Value").BlockFunc(func(g *jen.Group) {
		g.Id(idVarObj).Op(":=").Qual(rt.value, "Object").Values()

		for _, fp := range rec.Fields {
			if fp.Kind == plan.FieldFlatten {
				g.If(
					jen.List(jen.Id(idVarNested), jen.Id(idVarOK)).Op(":=").Id(idRecv).Dot(fp.Ident).Dot("ToValue").Call().Assert(
						jen.Qual(rt.value, "Object"),
					),
					jen.Id(idVarOK),
				).Block(
					jen.Id(idVarObj).Dot("Extend").Call(jen.Id(idVarNested)),
				)

				continue
			}

			g.Id(idVarObj).Index(jen.Lit(fp.Name)).Op("=").Add(rt.codec(fp.Codec)).Dot("ToValue").Call(
				jen.Id(idRecv).Dot(fp.Ident),
			)
		}

		g.Line()
		g.Return(jen.Id(idVarObj))
	})
	f.Line()
}
