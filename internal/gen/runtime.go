package gen

import (
	"go/types"
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"input-object-generator/internal/plan"
)

// runtime holds the import paths of the runtime packages.
type runtime struct {
	input    string
	registry string
	value    string
}

func newRuntime(root string) runtime {
	root = strings.TrimSuffix(root, "/")

	return runtime{
		input:    root + "/input",
		registry: root + "/registry",
		value:    root + "/value",
	}
}

// importInto names the runtime imports of f. A name already declared at
// package level in scope, or given to another import path, gets a number
// appended. Paths named earlier keep their name.
func (rt runtime) importInto(f *jen.File, scope *types.Scope, taken map[string]string) {
	for _, p := range []string{rt.input, rt.registry, rt.value} {
		if _, ok := taken[p]; ok {
			continue
		}

		base := path.Base(p)
		name := base

		for i := 1; nameInUse(name, scope, taken); i++ {
			name = base + strconv.Itoa(i)
		}

		taken[p] = name
		f.ImportAlias(p, name)
	}
}

func nameInUse(name string, scope *types.Scope, taken map[string]string) bool {
	if scope != nil && scope.Lookup(name) != nil {
		return true
	}

	for _, n := range taken {
		if n == name {
			return true
		}
	}

	return false
}

// codec renders c as a runtime codec constructor call.
func (rt runtime) codec(c *plan.Codec) *jen.Statement {
	if c.Wraps() {
		return jen.Qual(rt.input, c.Kind.Func()).Call(rt.codec(c.Elem))
	}

	return jen.Qual(rt.input, c.Kind.Func()).Types(goType(c.Type)).Call()
}

// goType renders a go/types type as jennifer code.
func goType(t types.Type) *jen.Statement {
	switch tt := t.(type) {
	case *types.Basic:
		return jen.Id(tt.Name())
	case *types.Pointer:
		return jen.Op("*").Add(goType(tt.Elem()))
	case *types.Slice:
		return jen.Index().Add(goType(tt.Elem()))
	case *types.Array:
		return jen.Index(jen.Lit(int(tt.Len()))).Add(goType(tt.Elem()))
	case *types.Map:
		return jen.Map(goType(tt.Key())).Add(goType(tt.Elem()))
	case *types.Alias:
		return qualified(tt.Obj(), nil)
	case *types.Named:
		return qualified(tt.Obj(), tt.TypeArgs())
	default:
		return jen.Id(t.String())
	}
}

func qualified(obj *types.TypeName, args *types.TypeList) *jen.Statement {
	var s *jen.Statement
	if obj.Pkg() == nil {
		s = jen.Id(obj.Name())
	} else {
		s = jen.Qual(obj.Pkg().Path(), obj.Name())
	}

	if args == nil || args.Len() == 0 {
		return s
	}

	params := make([]jen.Code, args.Len())
	for i := range params {
		params[i] = goType(args.At(i))
	}

	return s.Types(params...)
}

// clone wraps a located input value in value.Clone.
func (rt runtime) clone(v jen.Code) *jen.Statement {
	return jen.Qual(rt.value, "Clone").Call(v)
}

// localName returns the name of the local variable holding a parsed field.
func localName(ident string) string {
	r, size := utf8.DecodeRuneInString(ident)
	return string(unicode.ToLower(r)) + ident[size:] + "Val"
}

// localNames returns the local variable of every field. Identifiers that
// differ only in the case of their first letter share a localName, so later
// ones get the field index appended; a localName always ends in "Val", which
// keeps the suffixed names unique.
func localNames(fields []plan.FieldPlan) []string {
	names := make([]string, len(fields))
	used := make(map[string]bool, len(fields))

	for i, fp := range fields {
		name := localName(fp.Ident)
		if used[name] {
			name += strconv.Itoa(i)
		}

		used[name] = true
		names[i] = name
	}

	return names
}
