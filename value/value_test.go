package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"null", Null{}, "null"},
		{"int", Int(-42), "-42"},
		{"float integral", Float(3), "3.0"},
		{"float fraction", Float(1.5), "1.5"},
		{"string", String("a\"b\n"), `"a\"b\n"`},
		{"boolean", Boolean(true), "true"},
		{"enum", Enum("ASC"), "ASC"},
		{"list", List{Int(1), String("x"), nil}, `[1, "x", null]`},
		{"object sorted", Object{"b": Int(2), "a": Int(1)}, "{a: 1, b: 2}"},
		{"nested", Object{"o": Object{"l": List{}}}, "{o: {l: []}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestValue_Kind(t *testing.T) {
	assert.Equal(t, KindObject, Object{}.Kind())
	assert.Equal(t, "object", Object{}.Kind().String())
	assert.Equal(t, "list", List{}.Kind().String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestObject_KeysAndExtend(t *testing.T) {
	obj := Object{"z": Int(1), "m": Int(2)}
	obj.Extend(Object{"a": Int(3), "z": Int(4)})

	assert.Equal(t, []string{"a", "m", "z"}, obj.Keys())
	assert.Equal(t, Int(4), obj["z"])

	v, ok := obj.Get("m")
	assert.True(t, ok)
	assert.Equal(t, Int(2), v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestClone_IsDeep(t *testing.T) {
	orig := Object{"list": List{Int(1)}, "obj": Object{"k": String("v")}}
	cloned := Clone(orig).(Object)

	cloned["list"].(List)[0] = Int(9)
	cloned["obj"].(Object)["k"] = String("changed")

	assert.Equal(t, Int(1), orig["list"].(List)[0])
	assert.Equal(t, String("v"), orig["obj"].(Object)["k"])
	assert.Nil(t, Clone(nil))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, Null{}))
	assert.True(t, Equal(Null{}, Null{}))
	assert.True(t, Equal(Object{"a": List{Int(1)}}, Object{"a": List{Int(1)}}))
	assert.False(t, Equal(Object{"a": Int(1)}, Object{"b": Int(1)}))
	assert.False(t, Equal(Int(1), Float(1)))
	assert.False(t, Equal(List{Int(1)}, List{Int(1), Int(2)}))
}

func TestOrNullAndRender(t *testing.T) {
	assert.Equal(t, Null{}, OrNull(nil))
	assert.Equal(t, Int(1), OrNull(Int(1)))
	assert.Equal(t, "null", Render(nil))
}

func TestFromJSON(t *testing.T) {
	got, err := FromJSON([]byte(`{"limit": 5, "ratio": 0.5, "name": "a\"b", "tags": ["x", null], "on": true, "nested": {"k": 1e3}}`))
	require.NoError(t, err)

	want := Object{
		"limit":  Int(5),
		"ratio":  Float(0.5),
		"name":   String(`a"b`),
		"tags":   List{String("x"), Null{}},
		"on":     Boolean(true),
		"nested": Object{"k": Float(1000)},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FromJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestFromJSON_Scalars(t *testing.T) {
	v, err := FromJSON([]byte(`"x"`))
	require.NoError(t, err)
	assert.Equal(t, String("x"), v)

	v, err = FromJSON([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, Null{}, v)

	_, err = FromJSON([]byte(``))
	require.Error(t, err)
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(Object{"b": List{Int(1), Enum("ASC")}, "a": Null{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": null, "b": [1, "ASC"]}`, string(data))

	_, err = ToJSON(nil)
	require.Error(t, err)
}
