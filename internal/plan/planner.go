package plan

import (
	"errors"
	"go/types"

	log "github.com/sirupsen/logrus"

	"input-object-generator/internal/analyze"
	"input-object-generator/internal/diagnostic"
	"input-object-generator/internal/naming"
)

// Planner validates analyzed records and classifies their fields.
type Planner struct {
	result *analyze.Result
	diags  diagnostic.Diagnostics
}

// NewPlanner creates a new Planner. diags carries diagnostics collected
// during analysis into the plan.
func NewPlanner(result *analyze.Result, diags diagnostic.Diagnostics) *Planner {
	return &Planner{result: result, diags: diags}
}

// Plan builds the InputObjectPlan. The plan is returned even when it has
// errors so that callers can report every diagnostic; the error is non-nil
// whenever generation must not proceed.
func (p *Planner) Plan() (*InputObjectPlan, error) {
	plan := &InputObjectPlan{}

	for _, pkg := range p.result.Packages {
		pp := &PackagePlan{Path: pkg.Path, Name: pkg.Name, Dir: pkg.Dir, Types: pkg.Types}

		for _, rec := range pkg.Records {
			if rp := p.planRecord(pkg, rec); rp != nil {
				pp.Records = append(pp.Records, rp)
			}
		}

		if len(pp.Records) > 0 {
			plan.Packages = append(plan.Packages, pp)
		}
	}

	plan.Diagnostics = p.diags

	return plan, plan.Diagnostics.Err()
}

func (p *Planner) planRecord(pkg *analyze.Package, rec *analyze.RecordDescriptor) *RecordPlan {
	if err := ValidateRecord(rec); err != nil {
		p.diags.AddError(validationCode(err), rec.Pos, rec.ID.Name, "", "%v", err)
		return nil
	}

	rp := &RecordPlan{
		ID:          rec.ID,
		TypeName:    naming.TypeName(rec.ID.Name, rec.Name),
		Description: optional(rec.Doc),
		Internal:    rec.Internal,
		Pos:         rec.Pos,
	}

	for i := range rec.Fields {
		fp, ok := p.planField(pkg, rec, &rec.Fields[i])
		if ok {
			rp.Fields = append(rp.Fields, fp)
		}
	}

	log.WithFields(log.Fields{
		"type":   rec.ID.String(),
		"name":   rp.TypeName,
		"fields": len(rp.Fields),
	}).Debug("planned input object")

	return rp
}

func (p *Planner) planField(pkg *analyze.Package, rec *analyze.RecordDescriptor, f *analyze.FieldDescriptor) (FieldPlan, bool) {
	fp := FieldPlan{
		Ident:       f.Ident,
		Type:        f.Type,
		Description: optional(f.Doc),
		Validator:   f.Validator,
		Pos:         f.Pos,
	}

	if f.Flatten {
		return p.planFlatten(rec, f, fp)
	}

	fp.Kind = FieldScalar
	fp.Name = naming.FieldName(f.Ident, f.Name, rec.RenameFields)

	codec, err := resolveCodec(p.result, f.Type)
	if err != nil {
		p.diags.AddError(diagnostic.CodeUnsupportedType, f.Pos, rec.ID.Name, f.Ident, "%v", err)
		return fp, false
	}

	fp.Codec = codec
	ok := true

	fp.Default = p.resolveDefault(rec, f)

	switch fp.Default.Kind {
	case DefaultLiteral:
		if fp.Default.Expr != "" {
			if err := checkLiteral(pkg.Types, fp.Default.Expr, f.Type); err != nil {
				p.diags.AddError(diagnostic.CodeDefault, f.Pos, rec.ID.Name, f.Ident, "%v", err)
				ok = false
			}
		}
	case DefaultFactory:
		if err := checkFactory(pkg.Types, fp.Default.Expr, f.Type); err != nil {
			p.diags.AddError(diagnostic.CodeDefault, f.Pos, rec.ID.Name, f.Ident, "%v", err)
			ok = false
		}
	}

	if f.Validator != nil {
		if err := checkValidator(*f.Validator, codec); err != nil {
			p.diags.AddError(diagnostic.CodeValidator, f.Pos, rec.ID.Name, f.Ident, "%v", err)
			ok = false
		}
	}

	return fp, ok
}

// resolveDefault picks the default policy. A literal wins over a factory.
func (p *Planner) resolveDefault(rec *analyze.RecordDescriptor, f *analyze.FieldDescriptor) DefaultPolicy {
	switch {
	case f.Default != nil && f.DefaultWith != nil:
		p.diags.AddWarning(diagnostic.CodeConflictDefault, f.Pos, rec.ID.Name, f.Ident,
			"both default and default_with are set; default_with=%s is ignored", *f.DefaultWith)

		return DefaultPolicy{Kind: DefaultLiteral, Expr: *f.Default}
	case f.Default != nil:
		return DefaultPolicy{Kind: DefaultLiteral, Expr: *f.Default}
	case f.DefaultWith != nil:
		return DefaultPolicy{Kind: DefaultFactory, Expr: *f.DefaultWith}
	default:
		return DefaultPolicy{Kind: DefaultNone}
	}
}

func (p *Planner) planFlatten(rec *analyze.RecordDescriptor, f *analyze.FieldDescriptor, fp FieldPlan) (FieldPlan, bool) {
	fp.Kind = FieldFlatten

	named, ok := types.Unalias(f.Type).(*types.Named)
	if !ok || !isInputObject(p.result, named) {
		p.diags.AddError(diagnostic.CodeNotInputObject, f.Pos, rec.ID.Name, f.Ident,
			"flatten field type %s is not an input object", f.Type)

		return fp, false
	}

	if f.Default != nil || f.DefaultWith != nil || f.Validator != nil || f.Name != nil {
		p.diags.AddWarning(diagnostic.CodeTag, f.Pos, rec.ID.Name, f.Ident,
			"name, default and validate options are ignored on flatten fields")
	}

	fp.Target = named

	return fp, true
}

func validationCode(err error) string {
	var emptyErr *EmptyFieldsError
	if errors.As(err, &emptyErr) {
		return diagnostic.CodeEmptyFields
	}

	return diagnostic.CodeShape
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
