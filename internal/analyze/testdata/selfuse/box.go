package selfuse

import "input-object-generator/value"

//gql:input
type Box struct {
	Size int
}

// Dump returns the box as an input value.
func (b *Box) Dump() value.Value {
	return b.ToValue()
}
