package registry

// InputFields is an insertion-ordered mapping from field name to field
// metadata. Setting an existing name replaces the entry in place.
type InputFields struct {
	names  []string
	values map[string]MetaInputValue
}

// NewInputFields creates an empty mapping.
func NewInputFields() *InputFields {
	return &InputFields{
		values: make(map[string]MetaInputValue),
	}
}

// Set inserts or replaces the entry for name.
func (f *InputFields) Set(name string, v MetaInputValue) {
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}

	f.values[name] = v
}

// Get returns the entry for name.
func (f *InputFields) Get(name string) (MetaInputValue, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Extend copies every entry of other into f, in other's order.
func (f *InputFields) Extend(other *InputFields) {
	if other == nil {
		return
	}

	for _, name := range other.names {
		f.Set(name, other.values[name])
	}
}

// Names returns the field names in insertion order.
func (f *InputFields) Names() []string {
	return append([]string(nil), f.names...)
}

// Values returns the entries in insertion order.
func (f *InputFields) Values() []MetaInputValue {
	out := make([]MetaInputValue, 0, len(f.names))
	for _, name := range f.names {
		out = append(out, f.values[name])
	}

	return out
}

// Len returns the number of entries.
func (f *InputFields) Len() int {
	return len(f.names)
}
