package cli

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"input-object-generator/internal/gen"
)

// errAborted is returned when diagnostics prevent generation.
var errAborted = errors.New("generation aborted")

// GenerateCmd returns the generate command.
func GenerateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "Write the generated bindings of every input object",
		Long: `Generate loads the packages matching the given patterns (or the configured
packages) and writes one file with the bindings of all input objects into each
package directory. Nothing is written when any input object has errors.

Examples:
  input-object-generator generate
  input-object-generator generate ./api/...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			p, err := buildPlan(cfg, args)
			if p != nil {
				printDiagnostics(cmd.ErrOrStderr(), p.Diagnostics)
			}

			if err != nil {
				return fmt.Errorf("%w: %w", errAborted, err)
			}

			files, err := gen.NewGenerator(gen.GeneratorConfig{
				OutputFile: cfg.OutputFile,
				Runtime:    cfg.Runtime,
			}).Generate(p)
			if err != nil {
				return fmt.Errorf("%w: %w", errAborted, err)
			}

			if err := gen.WriteFiles(files); err != nil {
				return err
			}

			log.Infof("generated %d files", len(files))

			return nil
		},
	}
}
