package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point registers an input object with two scalar fields and counts builds.
type point struct {
	builds *int
}

func (point) TypeName() string { return "Point" }

func (p point) CreateTypeInfo(r *Registry) string {
	return r.CreateType("Point", "Point!", func(r *Registry) MetaType {
		if p.builds != nil {
			*p.builds++
		}

		fields := NewInputFields()
		fields.Set("x", MetaInputValue{Name: "x", Type: registerInt(r)})
		fields.Set("y", MetaInputValue{Name: "y", Type: registerInt(r), DefaultValue: strPtr("0")})

		return &InputObject{Name: "Point", Description: strPtr("A point."), InputFields: fields}
	})
}

// node refers to itself through its fields.
type node struct{}

func (node) TypeName() string { return "Node" }

func (n node) CreateTypeInfo(r *Registry) string {
	return r.CreateType("Node", "Node!", func(r *Registry) MetaType {
		fields := NewInputFields()
		fields.Set("next", MetaInputValue{Name: "next", Type: "[" + n.CreateTypeInfo(r) + "]"})

		return &InputObject{Name: "Node", InputFields: fields}
	})
}

func registerInt(r *Registry) string {
	return r.CreateType("Int", "Int!", func(*Registry) MetaType {
		return &Scalar{Name: "Int"}
	})
}

func strPtr(s string) *string { return &s }

func TestRegistry_CreateType_IsIdempotent(t *testing.T) {
	r := New()
	builds := 0
	p := point{builds: &builds}

	first := p.CreateTypeInfo(r)
	second := p.CreateTypeInfo(r)

	assert.Equal(t, "Point!", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, builds)
	assert.Equal(t, []string{"Int", "Point"}, r.Names())
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_SelfReferenceTerminates(t *testing.T) {
	r := New()
	assert.Equal(t, "Node!", node{}.CreateTypeInfo(r))

	mt, ok := r.Lookup("Node")
	require.True(t, ok)

	obj := mt.(*InputObject)
	next, ok := obj.InputFields.Get("next")
	require.True(t, ok)
	assert.Equal(t, "[Node!]", next.Type)
}

func TestRegistry_CreateDummyType(t *testing.T) {
	r := New()
	builds := 0

	mt := r.CreateDummyType(point{builds: &builds})
	require.NotNil(t, mt)

	obj, ok := mt.(*InputObject)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, obj.InputFields.Names())

	// The real registry is untouched.
	assert.Equal(t, 0, r.Len())
	_, ok = r.Lookup("Point")
	assert.False(t, ok)
}

func TestRegistry_Lookup_Missing(t *testing.T) {
	_, ok := New().Lookup("Nope")
	assert.False(t, ok)
}

func TestInputFields_OrderAndReplace(t *testing.T) {
	f := NewInputFields()
	f.Set("b", MetaInputValue{Name: "b", Type: "Int!"})
	f.Set("a", MetaInputValue{Name: "a", Type: "Int!"})

	other := NewInputFields()
	other.Set("c", MetaInputValue{Name: "c", Type: "String"})
	other.Set("b", MetaInputValue{Name: "b", Type: "Float"})

	f.Extend(other)
	f.Extend(nil)

	assert.Equal(t, []string{"b", "a", "c"}, f.Names())
	assert.Equal(t, 3, f.Len())

	b, _ := f.Get("b")
	assert.Equal(t, "Float", b.Type)
	assert.Equal(t, "Float", f.Values()[0].Type)
}

func TestRegistry_SDL(t *testing.T) {
	r := New()
	point{}.CreateTypeInfo(r)
	r.CreateType("Cursor", "Cursor!", func(*Registry) MetaType {
		return &Scalar{Name: "Cursor", Description: strPtr("Opaque\npaging token")}
	})

	want := `"""
Opaque
paging token
"""
scalar Cursor

"A point."
input Point {
  x: Int!
  y: Int! = 0
}
`
	assert.Equal(t, want, r.SDL())
}

func TestCatalog_ConcurrentRegister(t *testing.T) {
	c := NewCatalog()
	builds := 0
	p := point{builds: &builds}

	var wg sync.WaitGroup
	names := make([]string, 16)

	for i := range names {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			names[i] = c.Register(p)
		}(i)
	}

	wg.Wait()

	for _, name := range names {
		assert.Equal(t, "Point!", name)
	}

	assert.Equal(t, 1, builds)

	_, ok := c.Lookup("Point")
	assert.True(t, ok)
	assert.Contains(t, c.SDL(), "input Point {")
}
