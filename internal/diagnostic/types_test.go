package diagnostic

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndErr(t *testing.T) {
	var d Diagnostics

	assert.NoError(t, d.Err())
	assert.False(t, d.HasErrors())

	pos := token.Position{Filename: "models.go", Line: 12, Column: 6}
	d.AddError(CodeEmptyFields, pos, "Empty", "", "input object must define one or more fields")
	d.AddWarning(CodeConflictDefault, token.Position{}, "Paging", "Limit", "both %s and %s set", "default", "default_with")
	d.Add(Diagnostic{Severity: SeverityInfo, Message: "generated 2 types"})

	require.True(t, d.HasErrors())
	assert.Len(t, d.All(), 3)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
	assert.EqualError(t, d.Err(), "models.go:12:6: [Empty] [empty-fields] input object must define one or more fields")
	assert.Equal(t, "[Paging] Limit: [conflicting-defaults] both default and default_with set", d.Warnings[0].String())
	assert.Equal(t, "generated 2 types", d.Infos[0].String())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError(CodeShape, token.Position{}, "A", "", "not a struct")
	b.AddError(CodeShape, token.Position{}, "B", "", "not a struct")
	b.AddWarning(CodeDefault, token.Position{}, "B", "X", "w")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostic_Suggestions(t *testing.T) {
	d := Diagnostic{Code: CodeTag, Message: `unknown option "flaten"`, Suggestions: []string{"flatten"}}
	assert.Equal(t, `[tag] unknown option "flaten" (did you mean flatten?)`, d.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(7).String())
}
