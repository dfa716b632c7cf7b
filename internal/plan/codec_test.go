package plan

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCodec(t *testing.T) {
	t.Parallel()

	pkg := types.NewPackage("example.com/p", "p")
	named := func(name string, underlying types.Type) *types.Named {
		return types.NewNamed(types.NewTypeName(0, pkg, name, nil), underlying, nil)
	}

	tests := []struct {
		name string
		typ  types.Type
		want string
	}{
		{"int", types.Typ[types.Int], "input.Int[int]()"},
		{"uint16", types.Typ[types.Uint16], "input.Int[uint16]()"},
		{"float64", types.Typ[types.Float64], "input.Float[float64]()"},
		{"string", types.Typ[types.String], "input.String[string]()"},
		{"bool", types.Typ[types.Bool], "input.Boolean[bool]()"},
		{"named int", named("Count", types.Typ[types.Int]), "input.Int[p.Count]()"},
		{"id", named("ID", types.Typ[types.String]), "input.ID[p.ID]()"},
		{"pointer", types.NewPointer(types.Typ[types.String]), "input.Optional(input.String[string]())"},
		{"slice", types.NewSlice(types.Typ[types.Bool]), "input.List(input.Boolean[bool]())"},
		{
			"slice of pointers",
			types.NewSlice(types.NewPointer(types.Typ[types.Float32])),
			"input.List(input.Optional(input.Float[float32]()))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := resolveCodec(nil, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestResolveCodec_Unsupported(t *testing.T) {
	t.Parallel()

	for _, typ := range []types.Type{
		types.Typ[types.Complex128],
		types.Typ[types.Uintptr],
		types.Typ[types.Uint],
		types.Typ[types.Uint64],
		types.NewNamed(types.NewTypeName(0, nil, "Big", nil), types.Typ[types.Uint64], nil),
		types.NewSlice(types.Typ[types.Uint]),
		types.NewMap(types.Typ[types.String], types.Typ[types.Int]),
		types.NewChan(types.SendRecv, types.Typ[types.Int]),
		types.NewArray(types.Typ[types.Int], 3),
		types.NewPointer(types.NewPointer(types.Typ[types.Int])),
		types.NewStruct(nil, nil),
	} {
		_, err := resolveCodec(nil, typ)
		assert.Error(t, err, typ.String())
	}
}

func TestCheckLiteral(t *testing.T) {
	t.Parallel()

	pkg := types.NewPackage("example.com/p", "p")
	intType := types.Typ[types.Int]

	tests := []struct {
		src   string
		typ   types.Type
		valid bool
	}{
		{"10", intType, true},
		{"1.0", intType, true},
		{"1.5", intType, false},
		{`"x"`, intType, false},
		{"1 +", intType, false},
		{"missing", intType, false},
		{"0.5", types.Typ[types.Float32], true},
		{"3", types.Typ[types.Float64], true},
		{`"s"`, types.Typ[types.String], true},
		{"true", types.Typ[types.Bool], true},
		{"nil", types.NewPointer(intType), true},
		{"nil", intType, false},
		{`[]string{"a", "b"}`, types.NewSlice(types.Typ[types.String]), true},
		{"[]int{1}", types.NewSlice(types.Typ[types.String]), false},
		{"int", intType, false},
	}

	for _, tt := range tests {
		err := checkLiteral(pkg, tt.src, tt.typ)
		if tt.valid {
			assert.NoError(t, err, tt.src)
		} else {
			assert.Error(t, err, tt.src)
		}
	}
}

func TestCheckValidator(t *testing.T) {
	t.Parallel()

	intCodec := &Codec{Kind: CodecInt, Type: types.Typ[types.Int]}
	strCodec := &Codec{Kind: CodecString, Type: types.Typ[types.String]}
	listCodec := &Codec{Kind: CodecList, Elem: strCodec}

	assert.NoError(t, checkValidator("value > 0", intCodec))
	assert.NoError(t, checkValidator("value != '' && len(value) < 64", strCodec))
	assert.NoError(t, checkValidator("len(value) <= 3", listCodec))

	assert.Error(t, checkValidator("value >", intCodec))
	assert.Error(t, checkValidator("value + 1", intCodec))
	assert.Error(t, checkValidator("value > 0", strCodec))
	assert.Error(t, checkValidator("other > 0", intCodec))
}
