package plan

import (
	"fmt"
	"go/types"

	"input-object-generator/internal/analyze"
)

// CodecKind identifies a runtime codec constructor. Its String form is the
// constructor name.
//
//go:generate go tool stringer -type=CodecKind -trimprefix=Codec -output=codeckind_string.go
type CodecKind int

const (
	CodecInt CodecKind = iota
	CodecFloat
	CodecString
	CodecBoolean
	CodecID
	CodecOptional
	CodecList
	CodecObject
	CodecCustom
)

// Func returns the name of the runtime constructor, e.g. "Optional".
func (k CodecKind) Func() string {
	return k.String()
}

// Codec is a tree of runtime codec constructors, such as
// input.List(input.Optional(input.Int[int]())).
type Codec struct {
	Kind CodecKind
	// Type is the type argument of leaf codecs.
	Type types.Type
	// Elem is the wrapped codec of Optional and List.
	Elem *Codec
}

// Wraps reports whether the codec wraps another codec.
func (c *Codec) Wraps() bool {
	return c.Kind == CodecOptional || c.Kind == CodecList
}

// Format renders the codec as Go source using qf to qualify named types.
func (c *Codec) Format(qf types.Qualifier) string {
	if c.Wraps() {
		return fmt.Sprintf("input.%s(%s)", c.Kind.Func(), c.Elem.Format(qf))
	}

	return fmt.Sprintf("input.%s[%s]()", c.Kind.Func(), types.TypeString(c.Type, qf))
}

// String renders the codec with package-name qualified types.
func (c *Codec) String() string {
	return c.Format(func(p *types.Package) string { return p.Name() })
}

// Method names that make a type convert itself.
var (
	inputValueMethods  = []string{"TypeName", "CreateTypeInfo", "ParseValue", "ToValue"}
	inputObjectMethods = append(append([]string(nil), inputValueMethods...), "InputObject")
)

// resolveCodec maps a field type to its codec.
func resolveCodec(result *analyze.Result, t types.Type) (*Codec, error) {
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.Pointer:
		if _, ok := types.Unalias(tt.Elem()).(*types.Pointer); ok {
			return nil, fmt.Errorf("pointer to pointer %s is not supported", t)
		}

		elem, err := resolveCodec(result, tt.Elem())
		if err != nil {
			return nil, err
		}

		return &Codec{Kind: CodecOptional, Elem: elem}, nil
	case *types.Slice:
		elem, err := resolveCodec(result, tt.Elem())
		if err != nil {
			return nil, err
		}

		return &Codec{Kind: CodecList, Elem: elem}, nil
	case *types.Named:
		if isInputObject(result, tt) {
			return &Codec{Kind: CodecObject, Type: tt}, nil
		}

		if hasMethods(tt, inputValueMethods) {
			return &Codec{Kind: CodecCustom, Type: tt}, nil
		}

		if b, ok := tt.Underlying().(*types.Basic); ok {
			return basicCodec(t, b, tt.Obj().Name() == "ID")
		}
	case *types.Basic:
		return basicCodec(t, tt, false)
	}

	return nil, fmt.Errorf("type %s is not supported as an input value", t)
}

func basicCodec(t types.Type, b *types.Basic, isID bool) (*Codec, error) {
	info := b.Info()

	switch {
	case info&types.IsString != 0 && isID:
		return &Codec{Kind: CodecID, Type: t}, nil
	case info&types.IsString != 0:
		return &Codec{Kind: CodecString, Type: t}, nil
	case info&types.IsBoolean != 0:
		return &Codec{Kind: CodecBoolean, Type: t}, nil
	case b.Kind() == types.Uint || b.Kind() == types.Uint64 || b.Kind() == types.Uintptr:
		return nil, fmt.Errorf("type %s does not fit in Int, use a signed or narrower integer", t)
	case info&types.IsInteger != 0:
		return &Codec{Kind: CodecInt, Type: t}, nil
	case info&types.IsFloat != 0:
		return &Codec{Kind: CodecFloat, Type: t}, nil
	}

	return nil, fmt.Errorf("type %s is not supported as an input value", t)
}

// isInputObject reports whether named is an annotated record of this run or
// a type whose pointer already has the input object methods.
func isInputObject(result *analyze.Result, named *types.Named) bool {
	if result != nil {
		if _, ok := result.Record(analyze.IDOf(named)); ok && named.TypeArgs().Len() == 0 {
			return true
		}
	}

	return hasMethods(named, inputObjectMethods)
}

// hasMethods reports whether the method set of *named contains every name.
func hasMethods(named *types.Named, names []string) bool {
	ms := types.NewMethodSet(types.NewPointer(named))

	have := make(map[string]bool, ms.Len())
	for i := 0; i < ms.Len(); i++ {
		have[ms.At(i).Obj().Name()] = true
	}

	for _, n := range names {
		if !have[n] {
			return false
		}
	}

	return true
}
