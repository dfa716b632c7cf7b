package plan

import (
	"go/types"

	"gopkg.in/yaml.v3"
)

// ExportedPlan is the YAML view of an InputObjectPlan.
type ExportedPlan struct {
	InputObjects []ExportedRecord `yaml:"input_objects"`
}

// ExportedRecord is the YAML view of a RecordPlan.
type ExportedRecord struct {
	Type        string          `yaml:"type"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Internal    bool            `yaml:"internal,omitempty"`
	Position    string          `yaml:"position,omitempty"`
	Fields      []ExportedField `yaml:"fields"`
}

// ExportedField is the YAML view of a FieldPlan.
type ExportedField struct {
	Field       string `yaml:"field"`
	Kind        string `yaml:"kind"`
	Name        string `yaml:"name,omitempty"`
	Type        string `yaml:"type"`
	Codec       string `yaml:"codec,omitempty"`
	Default     string `yaml:"default,omitempty"`
	DefaultWith string `yaml:"default_with,omitempty"`
	Validator   string `yaml:"validate,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Export converts a plan into its YAML view.
func Export(p *InputObjectPlan) *ExportedPlan {
	out := &ExportedPlan{InputObjects: []ExportedRecord{}}

	for _, pkg := range p.Packages {
		qf := func(other *types.Package) string {
			if other.Path() == pkg.Path {
				return ""
			}

			return other.Name()
		}

		for _, rp := range pkg.Records {
			out.InputObjects = append(out.InputObjects, exportRecord(rp, qf))
		}
	}

	return out
}

// ExportYAML renders a plan as YAML.
func ExportYAML(p *InputObjectPlan) ([]byte, error) {
	return yaml.Marshal(Export(p))
}

func exportRecord(rp *RecordPlan, qf types.Qualifier) ExportedRecord {
	er := ExportedRecord{
		Type:     rp.ID.String(),
		Name:     rp.TypeName,
		Internal: rp.Internal,
		Fields:   make([]ExportedField, 0, len(rp.Fields)),
	}

	if rp.Description != nil {
		er.Description = *rp.Description
	}

	if rp.Pos.IsValid() {
		er.Position = rp.Pos.String()
	}

	for _, fp := range rp.Fields {
		er.Fields = append(er.Fields, exportField(fp, qf))
	}

	return er
}

func exportField(fp FieldPlan, qf types.Qualifier) ExportedField {
	ef := ExportedField{
		Field: fp.Ident,
		Kind:  fp.Kind.String(),
		Name:  fp.Name,
		Type:  types.TypeString(fp.Type, qf),
	}

	if fp.Codec != nil {
		ef.Codec = fp.Codec.Format(qf)
	}

	switch fp.Default.Kind {
	case DefaultLiteral:
		ef.Default = fp.Default.Expr
		if ef.Default == "" {
			ef.Default = "<zero>"
		}
	case DefaultFactory:
		ef.DefaultWith = fp.Default.Expr
	}

	if fp.Validator != nil {
		ef.Validator = *fp.Validator
	}

	if fp.Description != nil {
		ef.Description = *fp.Description
	}

	return ef
}
