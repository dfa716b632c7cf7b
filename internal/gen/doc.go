// Package gen emits the Go bindings of planned input objects with
// github.com/dave/jennifer.
//
// For every record the generated file contains:
//   - a compile-time assertion that *T (and every flatten target) is an
//     input.InputObjectType
//   - TypeName and the InputObject marker
//   - CreateTypeInfo, registering the schema shape
//   - ParseValue, converting a value.Value into T
//   - ToValue, converting T into a value.Object
//
// All records of one Go package go into a single file.
package gen
