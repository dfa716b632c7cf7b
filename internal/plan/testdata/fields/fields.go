package fields

import (
	"input-object-generator/registry"
	"input-object-generator/value"
)

type (
	Level int
	ID    string
)

// Money is a custom scalar counted in cents.
type Money struct {
	Cents int64
}

func (*Money) TypeName() string { return "Money" }

func (*Money) CreateTypeInfo(r *registry.Registry) string {
	return r.CreateType("Money", "Money!", func(*registry.Registry) registry.MetaType {
		return &registry.Scalar{Name: "Money"}
	})
}

func (m *Money) ParseValue(v value.Value) error {
	if i, ok := v.(value.Int); ok {
		m.Cents = int64(i)
	}

	return nil
}

func (m *Money) ToValue() value.Value { return value.Int(m.Cents) }

const defaultLimit = 10

func defaultTags() []string { return []string{"x"} }

func yes() bool { return true }

// Query selects records.
//
//gql:input
type Query struct {
	// Limit caps the result size.
	Limit  int      `gql:",default=defaultLimit" validate:"value > 0"`
	Ratio  float32  `gql:",default=0.5"`
	Key    ID       `gql:"id"`
	Level  Level    `gql:",default=3"`
	Name   *string  `gql:",default"`
	Tags   []string `gql:",default_with=defaultTags" validate:"len(value) < 10"`
	Nested [][]*int
	Price  Money
	Maybe  *Money
	Inner  Inner `gql:",flatten"`
	Both   bool  `gql:",default=true,default_with=yes"`
	Sub    Inner
}

//gql:input name=InnerInput rename_fields=SCREAMING_SNAKE_CASE
type Inner struct {
	MaxCount int
}
