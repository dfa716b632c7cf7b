// Package diagnostic collects errors, warnings and infos produced while
// analyzing and planning input objects.
//
// Any error diagnostic aborts generation before a single file is written.
package diagnostic
