// Package cli implements the input-object-generator commands.
package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"input-object-generator/internal/analyze"
	"input-object-generator/internal/config"
	"input-object-generator/internal/plan"
)

// options are the flags shared by every command.
type options struct {
	configPath string
	logLevel   string
}

// RootCmd returns the root command with every subcommand attached.
func RootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "input-object-generator",
		Short: "Generate GraphQL input object bindings for Go structs",
		Long: `input-object-generator finds structs annotated with //gql:input and
generates their CreateTypeInfo, ParseValue and ToValue methods.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides log_level from the configuration")

	cmd.AddCommand(GenerateCmd(opts))
	cmd.AddCommand(CheckCmd(opts))
	cmd.AddCommand(InspectCmd(opts))

	return cmd
}

// loadConfig reads the configuration and applies the log level. A missing
// default configuration file is not an error.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if cmd.Flags().Changed("config") {
		cfg, err = config.Read(opts.configPath)
	} else {
		cfg, err = config.ReadOrDefault(opts.configPath)
	}

	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log.SetLevel(lvl)

	return cfg, nil
}

// buildPlan loads the packages matching patterns, or the configured ones,
// and plans their input objects. The plan is returned along with planning
// errors so that every diagnostic can be reported.
func buildPlan(cfg *config.Config, patterns []string) (*plan.InputObjectPlan, error) {
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}

	log.Debugf("loading packages %v", patterns)

	analyzer := analyze.NewAnalyzer(analyze.Config{
		OutputFile:   cfg.OutputFile,
		RenameFields: cfg.RenameRule(),
	})

	result, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	log.Debugf("found %d input objects", len(result.Records()))

	return plan.NewPlanner(result, analyzer.Diagnostics()).Plan()
}
