package plan

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"

	"github.com/expr-lang/expr"
)

// checkLiteral checks that src is a Go expression assignable to fieldType,
// evaluated in the scope of pkg. Only package-level identifiers are visible.
func checkLiteral(pkg *types.Package, src string, fieldType types.Type) error {
	if _, err := parser.ParseExpr(src); err != nil {
		return fmt.Errorf("default %q is not a Go expression: %w", src, err)
	}

	if pkg == nil {
		return nil
	}

	tv, err := types.Eval(token.NewFileSet(), pkg, token.NoPos, src)
	if err != nil {
		return fmt.Errorf("default %q: %w", src, err)
	}

	if !tv.IsValue() {
		return fmt.Errorf("default %q is not a value", src)
	}

	if !assignable(tv, fieldType) {
		return fmt.Errorf("default %q of type %s is not assignable to %s", src, tv.Type, fieldType)
	}

	return nil
}

// assignable reports whether tv can be assigned to t. Untyped constants are
// checked by kind since types.AssignableTo does not see constant values.
func assignable(tv types.TypeAndValue, t types.Type) bool {
	b, ok := tv.Type.(*types.Basic)
	if !ok || b.Info()&types.IsUntyped == 0 {
		return types.AssignableTo(tv.Type, t)
	}

	switch t.Underlying().(type) {
	case *types.Interface:
		return true
	case *types.Pointer, *types.Slice, *types.Map, *types.Signature, *types.Chan:
		return b.Kind() == types.UntypedNil
	}

	target, ok := t.Underlying().(*types.Basic)
	if !ok || b.Kind() == types.UntypedNil {
		return false
	}

	from, to := b.Info(), target.Info()

	switch {
	case from&types.IsBoolean != 0:
		return to&types.IsBoolean != 0
	case from&types.IsString != 0:
		return to&types.IsString != 0
	case to&types.IsInteger != 0:
		return tv.Value != nil && constant.ToInt(tv.Value).Kind() == constant.Int
	case to&types.IsFloat != 0:
		return from&(types.IsInteger|types.IsFloat) != 0
	}

	return false
}

// checkFactory checks that ref names a function of pkg that takes no
// arguments and returns a value assignable to fieldType.
func checkFactory(pkg *types.Package, ref string, fieldType types.Type) error {
	e, err := parser.ParseExpr(ref)
	if err != nil {
		return fmt.Errorf("default_with %q is not a Go expression: %w", ref, err)
	}

	if _, ok := e.(*ast.Ident); !ok {
		return fmt.Errorf("default_with %q must name a function of the declaring package", ref)
	}

	if pkg == nil {
		return nil
	}

	tv, err := types.Eval(token.NewFileSet(), pkg, token.NoPos, ref)
	if err != nil {
		return fmt.Errorf("default_with %q: %w", ref, err)
	}

	sig, ok := tv.Type.(*types.Signature)
	if !ok {
		return fmt.Errorf("default_with %q is not a function", ref)
	}

	if sig.Params().Len() != 0 || sig.Results().Len() != 1 || sig.TypeParams().Len() != 0 {
		return fmt.Errorf("default_with %q must take no arguments and return one value", ref)
	}

	if res := sig.Results().At(0).Type(); !types.AssignableTo(res, fieldType) {
		return fmt.Errorf("default_with %q returns %s, which is not assignable to %s", ref, res, fieldType)
	}

	return nil
}

// checkValidator compiles a validator expression against a sample of the
// field's value. The expression is never run.
func checkValidator(src string, codec *Codec) error {
	env := map[string]any{"value": sampleValue(codec)}

	if _, err := expr.Compile(src, expr.Env(env), expr.AsBool()); err != nil {
		return fmt.Errorf("validator %q: %w", src, err)
	}

	return nil
}

// sampleValue returns a value with the shape the validator sees. Types
// without a fixed shape are left untyped.
func sampleValue(codec *Codec) any {
	if codec == nil {
		return nil
	}

	switch codec.Kind {
	case CodecInt:
		return 0
	case CodecFloat:
		return 0.0
	case CodecString, CodecID:
		return ""
	case CodecBoolean:
		return false
	case CodecList:
		return []any{}
	default:
		return nil
	}
}
