package registry

import (
	"strings"
)

var builtinScalars = map[string]bool{
	"Int":     true,
	"Float":   true,
	"String":  true,
	"Boolean": true,
	"ID":      true,
}

// SDL renders every registered type, sorted by name, in GraphQL schema
// definition language. Built-in scalars are omitted.
func (r *Registry) SDL() string {
	var blocks []string

	for _, name := range r.Names() {
		switch t := r.types[name].(type) {
		case *InputObject:
			blocks = append(blocks, inputObjectSDL(t))
		case *Scalar:
			if builtinScalars[t.Name] {
				continue
			}

			blocks = append(blocks, description(t.Description, "")+"scalar "+t.Name+"\n")
		}
	}

	return strings.Join(blocks, "\n")
}

func inputObjectSDL(t *InputObject) string {
	var sb strings.Builder

	sb.WriteString(description(t.Description, ""))
	sb.WriteString("input ")
	sb.WriteString(t.Name)
	sb.WriteString(" {\n")

	if t.InputFields != nil {
		for _, f := range t.InputFields.Values() {
			sb.WriteString(description(f.Description, "  "))
			sb.WriteString("  ")
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			sb.WriteString(f.Type)

			if f.DefaultValue != nil {
				sb.WriteString(" = ")
				sb.WriteString(*f.DefaultValue)
			}

			sb.WriteString("\n")
		}
	}

	sb.WriteString("}\n")

	return sb.String()
}

func description(desc *string, indent string) string {
	if desc == nil || *desc == "" {
		return ""
	}

	if !strings.Contains(*desc, "\n") {
		return indent + `"` + strings.ReplaceAll(*desc, `"`, `\"`) + `"` + "\n"
	}

	var sb strings.Builder

	sb.WriteString(indent + `"""` + "\n")

	for _, line := range strings.Split(*desc, "\n") {
		sb.WriteString(indent + line + "\n")
	}

	sb.WriteString(indent + `"""` + "\n")

	return sb.String()
}
