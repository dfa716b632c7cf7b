package cli

import (
	"github.com/spf13/cobra"

	"input-object-generator/internal/plan"
)

// InspectCmd returns the inspect command.
func InspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [patterns...]",
		Short: "Print the planned input objects as YAML",
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

			data, err := plan.ExportYAML(p)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
