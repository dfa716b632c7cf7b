// Package analyze provides package loading and input object discovery.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find types
// annotated with the //gql:input directive and to build a RecordDescriptor
// for each of them.
//
// Directive options:
//   - name=<Name>: explicit GraphQL type name
//   - rename_fields=<Rule>: rename rule applied to field identifiers
//   - internal: the type lives inside the runtime module
//
// Field tags:
//   - gql:"<name>,flatten,default,default=<expr>,default_with=<func>"
//   - validate:"<expr>"
package analyze
