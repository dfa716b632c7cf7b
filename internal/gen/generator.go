package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/types"

	"github.com/dave/jennifer/jen"
	log "github.com/sirupsen/logrus"

	"input-object-generator/internal/plan"
)

// CanonicalRuntime is the import root of the runtime packages inside this
// module. Records marked internal always use it.
const CanonicalRuntime = "input-object-generator"

// DefaultOutputFile is the name of the file generated in each package.
const DefaultOutputFile = "input_gen.go"

const headerComment = "Code generated by input-object-generator. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputFile is the generated file name in each package directory.
	OutputFile string
	// Runtime is the import root of the value, registry and input packages.
	Runtime string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputFile: DefaultOutputFile,
		Runtime:    CanonicalRuntime,
	}
}

// Generator generates Go code from an input object plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.OutputFile == "" {
		config.OutputFile = DefaultOutputFile
	}

	if config.Runtime == "" {
		config.Runtime = CanonicalRuntime
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "input_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// ErrPlanHasErrors is returned when asked to generate from a plan that
// failed planning.
var ErrPlanHasErrors = errors.New("plan has errors")

// Generate generates one file per package of p. Nothing is generated when
// the plan carries error diagnostics.
func (g *Generator) Generate(p *plan.InputObjectPlan) ([]GeneratedFile, error) {
	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrPlanHasErrors, p.Diagnostics.Err())
	}

	files := make([]GeneratedFile, 0, len(p.Packages))

	for _, pkg := range p.Packages {
		file, err := g.generatePackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pkg.Path, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generatePackage renders the bindings of every record in pkg into a single
// file.
func (g *Generator) generatePackage(pkg *plan.PackagePlan) (*GeneratedFile, error) {
	f := jen.NewFilePathName(pkg.Path, pkg.Name)
	f.HeaderComment(headerComment)

	var scope *types.Scope
	if pkg.Types != nil {
		scope = pkg.Types.Scope()
	}

	taken := make(map[string]string)

	for _, rec := range pkg.Records {
		rt := newRuntime(g.config.Runtime)
		if rec.Internal {
			rt = newRuntime(CanonicalRuntime)
		}

		rt.importInto(f, scope, taken)

		if err := assemble(f, rec, rt); err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{
			"type":   rec.ID.String(),
			"fields": len(rec.Fields),
		}).Debug("generated input object")
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	return &GeneratedFile{
		Dir:      pkg.Dir,
		Filename: g.config.OutputFile,
		Content:  buf.Bytes(),
	}, nil
}
