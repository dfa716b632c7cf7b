package gen

import (
	"github.com/dave/jennifer/jen"

	"input-object-generator/internal/plan"
)

// genCreateTypeInfo emits CreateTypeInfo. Scalar fields become
// MetaInputValues in declaration order; flatten fields register the nested
// type and copy its fields in place.
func genCreateTypeInfo(f *jen.File, rec *plan.RecordPlan, rt runtime) {
	f.Comment("CreateTypeInfo registers " + rec.TypeName + " and returns its qualified name.")
	f.Func().Params(jen.Op("*").Id(rec.ID.Name)).Id("CreateTypeInfo").Params(
		jen.Id(idParamR).Op("*").Qual(rt.registry, "Registry"),
	).String().Block(
		jen.Return(jen.Id(idParamR).Dot("CreateType").Call(
			jen.Lit(rec.TypeName),
			jen.Lit(rec.TypeName+"!"),
			jen.Func().Params(jen.Id(idParamR).Op("*").Qual(rt.registry, "Registry")).Qual(rt.registry, "MetaType").BlockFunc(func(g *jen.Group) {
				genSchemaBody(g, rec, rt)
			}),
		)),
	)
	f.Line()
}

func genSchemaBody(g *jen.Group, rec *plan.RecordPlan, rt runtime) {
	g.Id(idVarFields).Op(":=").Qual(rt.registry, "NewInputFields").Call()

	for _, fp := range rec.Fields {
		if fp.Kind == plan.FieldFlatten {
			genSchemaFlatten(g, fp, rt)
			continue
		}

		g.Id(idVarFields).Dot("Set").Call(jen.Lit(fp.Name), jen.Qual(rt.registry, "MetaInputValue").Values(jen.DictFunc(func(d jen.Dict) {
			d[jen.Id("Name")] = jen.Lit(fp.Name)
			d[jen.Id("Type")] = rt.codec(fp.Codec).Dot("CreateTypeInfo").Call(jen.Id(idParamR))

			if fp.Description != nil {
				d[jen.Id("Description")] = optionalString(rt, fp.Description)
			}

			if fp.Default.Kind != plan.DefaultNone {
				d[jen.Id("DefaultValue")] = jen.Qual(rt.input, "RenderDefault").Call(rt.codec(fp.Codec), defaultExpr(fp))
			}

			if fp.Validator != nil {
				d[jen.Id("Validator")] = optionalString(rt, fp.Validator)
			}
		})))
	}

	g.Return(jen.Op("&").Qual(rt.registry, "InputObject").Values(jen.DictFunc(func(d jen.Dict) {
		d[jen.Id("Name")] = jen.Lit(rec.TypeName)
		d[jen.Id("InputFields")] = jen.Id(idVarFields)

		if rec.Description != nil {
			d[jen.Id("Description")] = optionalString(rt, rec.Description)
		}
	})))
}

func genSchemaFlatten(g *jen.Group, fp plan.FieldPlan, rt runtime) {
	g.New(goType(fp.Target)).Dot("CreateTypeInfo").Call(jen.Id(idParamR))
	g.If(
		jen.List(jen.Id(idVarMeta), jen.Id(idVarOK)).Op(":=").Id(idParamR).Dot("CreateDummyType").Call(
			jen.New(goType(fp.Target)),
		).Assert(jen.Op("*").Qual(rt.registry, "InputObject")),
		jen.Id(idVarOK),
	).Block(
		jen.Id(idVarFields).Dot("Extend").Call(jen.Id(idVarMeta).Dot("InputFields")),
	)
}
