// Package naming resolves the externally visible GraphQL names of input
// objects and their fields from Go identifiers, explicit overrides and rename
// rules.
package naming

import (
	"fmt"
	"strings"
)

// RenameRule is a naming convention applied to identifiers.
type RenameRule string

const (
	Original           RenameRule = "Original"
	Lowercase          RenameRule = "lowercase"
	Uppercase          RenameRule = "UPPERCASE"
	PascalCase         RenameRule = "PascalCase"
	CamelCase          RenameRule = "camelCase"
	SnakeCase          RenameRule = "snake_case"
	ScreamingSnakeCase RenameRule = "SCREAMING_SNAKE_CASE"
)

// Rules lists every supported rule.
var Rules = []RenameRule{
	Original,
	Lowercase,
	Uppercase,
	PascalCase,
	CamelCase,
	SnakeCase,
	ScreamingSnakeCase,
}

// Target selects the default rule applied when none is configured.
type Target int

const (
	TargetType Target = iota
	TargetField
)

// DefaultRule returns the rule used for t when no rule is configured.
func (t Target) DefaultRule() RenameRule {
	if t == TargetType {
		return PascalCase
	}

	return CamelCase
}

// ParseRenameRule parses a rule name. Unknown names produce an error that
// suggests the closest supported rule.
func ParseRenameRule(s string) (RenameRule, error) {
	for _, r := range Rules {
		if string(r) == s {
			return r, nil
		}
	}

	names := make([]string, len(Rules))
	for i, r := range Rules {
		names[i] = string(r)
	}

	if suggestion := Suggest(s, names, 3); suggestion != "" {
		return "", fmt.Errorf("unknown rename rule %q, did you mean %q?", s, suggestion)
	}

	return "", fmt.Errorf("unknown rename rule %q, expected one of %s", s, strings.Join(names, ", "))
}

// Apply renames ident according to r. An empty rule is treated as Original.
func (r RenameRule) Apply(ident string) string {
	words := Tokenize(ident)

	switch r {
	case Lowercase:
		return strings.ToLower(strings.Join(words, ""))
	case Uppercase:
		return strings.ToUpper(strings.Join(words, ""))
	case PascalCase:
		for i, w := range words {
			words[i] = capitalize(w)
		}

		return strings.Join(words, "")
	case CamelCase:
		for i, w := range words {
			if i == 0 {
				words[i] = strings.ToLower(w)
			} else {
				words[i] = capitalize(w)
			}
		}

		return strings.Join(words, "")
	case SnakeCase:
		return strings.ToLower(strings.Join(words, "_"))
	case ScreamingSnakeCase:
		return strings.ToUpper(strings.Join(words, "_"))
	default:
		return ident
	}
}

// TypeName resolves an input object's external name.
func TypeName(ident string, override *string) string {
	if override != nil {
		return *override
	}

	return TargetType.DefaultRule().Apply(ident)
}

// FieldName resolves a field's external name using the record's field rule.
// Go identifiers carry no raw-identifier escape, so ident is used as is.
func FieldName(ident string, override *string, rule RenameRule) string {
	if override != nil {
		return *override
	}

	if rule == "" {
		rule = TargetField.DefaultRule()
	}

	return rule.Apply(ident)
}
