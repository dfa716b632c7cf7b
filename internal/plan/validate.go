package plan

import (
	"fmt"
	"go/token"

	"input-object-generator/internal/analyze"
)

// ShapeError reports an annotated type that is not a struct with named
// fields.
type ShapeError struct {
	Type       analyze.TypeID
	Underlying string
	Pos        token.Position
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("input object %s must be a struct with named fields, found %s", e.Type.Name, e.Underlying)
}

// EmptyFieldsError reports an input object without fields.
type EmptyFieldsError struct {
	Type analyze.TypeID
	Pos  token.Position
}

func (e *EmptyFieldsError) Error() string {
	return fmt.Sprintf("input object %s must have at least one field", e.Type.Name)
}

// ValidateRecord checks that rec can be bound as an input object. Flatten
// fields count towards the field set.
func ValidateRecord(rec *analyze.RecordDescriptor) error {
	if rec.Shape != analyze.ShapeStruct {
		return &ShapeError{Type: rec.ID, Underlying: rec.Underlying, Pos: rec.Pos}
	}

	if len(rec.Fields) == 0 {
		return &EmptyFieldsError{Type: rec.ID, Pos: rec.Pos}
	}

	return nil
}
