// Package plan turns analyzed records into an InputObjectPlan consumed by
// code generation.
//
// Planning pipeline:
//  1. Analyze packages → record descriptors
//  2. Validate each record (struct shape, at least one field)
//  3. Resolve the external type name and field names
//  4. Classify each field as flatten or scalar; scalar fields get a codec
//     and a default policy
//  5. Check default expressions with go/types and validators with expr
//  6. Emit diagnostics (unsupported types, bad defaults, conflicts)
package plan
