package analyze

import (
	"fmt"
	"go/ast"
	"strings"

	"input-object-generator/internal/naming"
)

// Directive is the comment marker that opts a type into generation.
const Directive = "//gql:input"

var directiveOptions = []string{"name", "rename_fields", "internal"}

// directive holds the parsed options of a //gql:input comment.
type directive struct {
	Name         *string
	RenameFields naming.RenameRule
	Internal     bool
}

// findDirective returns the directive line in the given comment groups, if
// any. The type spec's own doc wins over the enclosing declaration's.
func findDirective(groups ...*ast.CommentGroup) (string, bool) {
	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			if c.Text == Directive || strings.HasPrefix(c.Text, Directive+" ") {
				return strings.TrimSpace(strings.TrimPrefix(c.Text, Directive)), true
			}
		}
	}

	return "", false
}

// parseDirective parses space separated directive options, e.g.
// "name=Paging rename_fields=snake_case internal".
func parseDirective(args string, defaultRule naming.RenameRule) (directive, error) {
	d := directive{RenameFields: defaultRule}

	for _, opt := range strings.Fields(args) {
		key, val, hasVal := strings.Cut(opt, "=")

		switch key {
		case "name":
			if !hasVal || val == "" {
				return d, fmt.Errorf("option %q requires a value", key)
			}

			d.Name = &val
		case "rename_fields":
			rule, err := naming.ParseRenameRule(val)
			if err != nil {
				return d, err
			}

			d.RenameFields = rule
		case "internal":
			if hasVal {
				return d, fmt.Errorf("option %q takes no value", key)
			}

			d.Internal = true
		default:
			if s := naming.Suggest(key, directiveOptions, 3); s != "" {
				return d, fmt.Errorf("unknown directive option %q, did you mean %q?", key, s)
			}

			return d, fmt.Errorf("unknown directive option %q", key)
		}
	}

	return d, nil
}
