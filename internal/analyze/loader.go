package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/tools/go/packages"

	"input-object-generator/internal/diagnostic"
	"input-object-generator/internal/naming"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Config controls package loading.
type Config struct {
	// Dir is the directory patterns are resolved against. Empty means the
	// current directory.
	Dir string
	// OutputFile is the generated file name. Existing copies are replaced by
	// an empty file while loading so stale output never breaks type checking.
	OutputFile string
	// RenameFields is the field rule used when a directive sets none.
	RenameFields naming.RenameRule
}

// Analyzer loads Go packages and extracts record descriptors.
type Analyzer struct {
	config Config
	diags  diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(config Config) *Analyzer {
	if config.RenameFields == "" {
		config.RenameFields = naming.TargetField.DefaultRule()
	}

	return &Analyzer{config: config}
}

// Diagnostics returns the problems found in directives and tags.
func (a *Analyzer) Diagnostics() diagnostic.Diagnostics {
	return a.diags
}

// LoadPackages loads the packages matching patterns (e.g. "./...",
// "input-object-generator/examples/paging") and extracts every annotated
// record.
//
// Packages are first loaded as they are, so hand-written code may call the
// methods of previously generated files. When that fails, the load is retried
// with those files blanked, since a stale generated file may not compile.
func (a *Analyzer) LoadPackages(patterns ...string) (*Result, error) {
	pkgs, err := a.load(patterns, nil)
	if err != nil {
		return nil, err
	}

	errs := packageErrors(pkgs)
	if len(errs) > 0 {
		overlay := a.blankOutputs(pkgs)
		if len(overlay) == 0 {
			return nil, fmt.Errorf("package errors: %v", errs)
		}

		log.Debugf("retrying load with %d generated files blanked", len(overlay))

		if pkgs, err = a.load(patterns, overlay); err != nil {
			return nil, err
		}

		if errs = packageErrors(pkgs); len(errs) > 0 {
			return nil, fmt.Errorf("package errors: %v", errs)
		}
	}

	result := &Result{inputObjects: make(map[TypeID]*RecordDescriptor)}

	for _, pkg := range pkgs {
		p := a.processPackage(pkg)
		if len(p.Records) == 0 {
			log.Debugf("package %s has no input objects", pkg.PkgPath)
			continue
		}

		for _, rec := range p.Records {
			result.inputObjects[rec.ID] = rec
		}

		result.Packages = append(result.Packages, p)
	}

	return result, nil
}

func (a *Analyzer) load(patterns []string, overlay map[string][]byte) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     a.config.Dir,
		Overlay: overlay,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	return pkgs, nil
}

func packageErrors(pkgs []*packages.Package) []error {
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	return errs
}

// blankOutputs returns an overlay that empties the previously generated files
// of pkgs.
func (a *Analyzer) blankOutputs(pkgs []*packages.Package) map[string][]byte {
	if a.config.OutputFile == "" {
		return nil
	}

	overlay := make(map[string][]byte)

	for _, pkg := range pkgs {
		for _, f := range pkg.GoFiles {
			if filepath.Base(f) == a.config.OutputFile {
				log.Debugf("ignoring previously generated %s", f)
				overlay[f] = []byte("package " + pkg.Name + "\n")
			}
		}
	}

	return overlay
}

// processPackage extracts annotated records from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) *Package {
	p := &Package{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Types: pkg.Types,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				docs := []*ast.CommentGroup{ts.Doc}
				if !gd.Lparen.IsValid() {
					docs = append(docs, gd.Doc)
				}

				args, ok := findDirective(docs...)
				if !ok {
					continue
				}

				if rec := a.processType(pkg, ts, docs, args); rec != nil {
					p.Records = append(p.Records, rec)
				}
			}
		}
	}

	return p
}

// processType builds the descriptor of one annotated type spec.
func (a *Analyzer) processType(
	pkg *packages.Package,
	ts *ast.TypeSpec,
	docs []*ast.CommentGroup,
	args string,
) *RecordDescriptor {
	pos := pkg.Fset.Position(ts.Name.Pos())
	id := TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}

	d, err := parseDirective(args, a.config.RenameFields)
	if err != nil {
		a.diags.AddError(diagnostic.CodeDirective, pos, id.Name, "", "%v", err)
		return nil
	}

	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		a.diags.AddError(diagnostic.CodeShape, pos, id.Name, "", "generic types cannot be input objects")
		return nil
	}

	rec := &RecordDescriptor{
		ID:           id,
		Name:         d.Name,
		RenameFields: d.RenameFields,
		Internal:     d.Internal,
		Doc:          docText(docs...),
		Pos:          pos,
	}

	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		rec.Underlying = "unknown"
		return rec
	}

	named, ok := obj.Type().(*types.Named)
	if !ok || ts.Assign.IsValid() {
		rec.Underlying = "alias of " + obj.Type().String()
		return rec
	}

	rec.Named = named

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		rec.Underlying = named.Underlying().String()
		return rec
	}

	rec.Shape = ShapeStruct

	var astFields []astField
	if structType, ok := ts.Type.(*ast.StructType); ok {
		astFields = flattenFields(structType)
	}

	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if v.Name() == "_" {
			continue
		}

		fieldPos := pos
		var doc string

		if i < len(astFields) {
			fieldPos = pkg.Fset.Position(astFields[i].pos)
			doc = docText(astFields[i].field.Doc, astFields[i].field.Comment)
		}

		tag, err := parseFieldTag(reflect.StructTag(st.Tag(i)))
		if err != nil {
			a.diags.AddError(diagnostic.CodeTag, fieldPos, id.Name, v.Name(), "%v", err)
			continue
		}

		rec.Fields = append(rec.Fields, FieldDescriptor{
			Ident:       v.Name(),
			Type:        v.Type(),
			Exported:    v.Exported(),
			Embedded:    v.Embedded(),
			Doc:         doc,
			Name:        tag.Name,
			Default:     tag.Default,
			DefaultWith: tag.DefaultWith,
			Validator:   tag.Validator,
			Flatten:     tag.Flatten || v.Embedded(),
			Pos:         fieldPos,
		})
	}

	log.WithFields(log.Fields{
		"type":   id.String(),
		"fields": len(rec.Fields),
	}).Debug("found input object")

	return rec
}

// astField pairs a syntax field with one of the names it declares.
type astField struct {
	field *ast.Field
	pos   token.Pos
}

// flattenFields expands "A, B int" into one entry per name so entries line up
// with types.Struct field indexes.
func flattenFields(st *ast.StructType) []astField {
	var out []astField

	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			out = append(out, astField{field: f, pos: f.Type.Pos()})
			continue
		}

		for _, n := range f.Names {
			out = append(out, astField{field: f, pos: n.Pos()})
		}
	}

	return out
}

// docText returns the text of the first non-empty comment group. Directive
// lines are dropped by ast.CommentGroup.Text.
func docText(groups ...*ast.CommentGroup) string {
	for _, g := range groups {
		if g == nil {
			continue
		}

		if text := strings.TrimSpace(g.Text()); text != "" {
			return text
		}
	}

	return ""
}
