package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"input-object-generator/internal/diagnostic"
	"input-object-generator/internal/gen"
)

// CheckCmd returns the check command.
func CheckCmd(opts *options) *cobra.Command {
	var stale bool

	cmd := &cobra.Command{
		Use:   "check [patterns...]",
		Short: "Report problems with input objects without writing files",
		Long: `Check runs analysis and planning and prints every diagnostic. It exits with a
non-zero status when there are errors. With --stale it also fails when a
generated file is missing or out of date.

Examples:
  input-object-generator check
  input-object-generator check --stale ./...`,
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
				return err
			}

			if !stale {
				fmt.Fprintf(cmd.OutOrStdout(), "%d input objects OK\n", len(p.Records()))
				return nil
			}

			files, err := gen.NewGenerator(gen.GeneratorConfig{
				OutputFile: cfg.OutputFile,
				Runtime:    cfg.Runtime,
			}).Generate(p)
			if err != nil {
				return err
			}

			if paths := gen.Stale(files); len(paths) > 0 {
				for _, path := range paths {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", severityColors[diagnostic.SeverityWarning].Sprint("stale"), path)
				}

				return fmt.Errorf("%d generated files are out of date", len(paths))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d input objects OK, generated files up to date\n", len(p.Records()))

			return nil
		},
	}

	cmd.Flags().BoolVar(&stale, "stale", false, "fail when generated files are missing or out of date")

	return cmd
}
