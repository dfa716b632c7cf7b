package analyze

import (
	"fmt"
	"reflect"
	"strings"

	"input-object-generator/internal/naming"
)

// Struct tag keys read from record fields.
const (
	TagKey      = "gql"
	ValidateKey = "validate"
)

var tagOptions = []string{"flatten", "default", "default_with"}

// fieldTag holds the parsed gql and validate tags of one field.
type fieldTag struct {
	Name        *string
	Flatten     bool
	Default     *string
	DefaultWith *string
	Validator   *string
}

// parseFieldTag parses a struct tag such as
// `gql:"limit,default=10" validate:"value > 0"`.
func parseFieldTag(tag reflect.StructTag) (fieldTag, error) {
	var ft fieldTag

	if v, ok := tag.Lookup(ValidateKey); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return ft, fmt.Errorf("%s tag is empty", ValidateKey)
		}

		ft.Validator = &v
	}

	raw, ok := tag.Lookup(TagKey)
	if !ok {
		return ft, nil
	}

	parts := splitTopLevel(raw)
	if name := strings.TrimSpace(parts[0]); name != "" {
		ft.Name = &name
	}

	for _, opt := range parts[1:] {
		key, val, hasVal := strings.Cut(strings.TrimSpace(opt), "=")

		switch key {
		case "flatten":
			ft.Flatten = true
		case "default":
			val = strings.TrimSpace(val)
			if hasVal && val == "" {
				return ft, fmt.Errorf("option %q has an empty value", key)
			}

			ft.Default = &val
		case "default_with":
			val = strings.TrimSpace(val)
			if val == "" {
				return ft, fmt.Errorf("option %q requires a function reference", key)
			}

			ft.DefaultWith = &val
		case "":
			return ft, fmt.Errorf("empty option in %s tag %q", TagKey, raw)
		default:
			if s := naming.Suggest(key, tagOptions, 3); s != "" {
				return ft, fmt.Errorf("unknown %s tag option %q, did you mean %q?", TagKey, key, s)
			}

			return ft, fmt.Errorf("unknown %s tag option %q", TagKey, key)
		}
	}

	return ft, nil
}

// splitTopLevel splits s on commas that are not nested inside brackets,
// braces, parentheses or quotes, so default expressions like
// "[]int{1, 2}" stay intact.
func splitTopLevel(s string) []string {
	var (
		parts   []string
		depth   int
		quote   rune
		escaped bool
		start   int
	)

	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case quote != 0 && r == '\\' && quote != '`':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case r == '(' || r == '[' || r == '{':
			depth++
		case r == ')' || r == ']' || r == '}':
			depth--
		case r == ',' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	return append(parts, s[start:])
}
