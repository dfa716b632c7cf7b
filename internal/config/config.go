// Package config reads the gqlinput.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"input-object-generator/internal/naming"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "gqlinput.yaml"

// CurrentVersion is the only supported configuration version.
const CurrentVersion = 1

type Config struct {
	Version int `yaml:"version"`
	// Packages are the package patterns to generate for, e.g. "./...".
	Packages []string `yaml:"packages"`
	// OutputFile is the generated file name in each package.
	OutputFile string `yaml:"output_file"`
	// Runtime is the import root of the runtime packages.
	Runtime string `yaml:"runtime"`
	// RenameFields is the default field rename rule.
	RenameFields string `yaml:"rename_fields"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the configuration used without a configuration file.
func Default() *Config {
	return &Config{
		Version:      CurrentVersion,
		Packages:     []string{"./..."},
		OutputFile:   "input_gen.go",
		Runtime:      "input-object-generator",
		RenameFields: string(naming.TargetField.DefaultRule()),
		LogLevel:     "info",
	}
}

// Read reads and validates the configuration file at configPath. Unset
// options take their default values.
func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(fileData, config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf(`invalid config file "%s": %w`, configPath, err)
	}

	return config, nil
}

// ReadOrDefault reads configPath, falling back to Default when the file does
// not exist.
func ReadOrDefault(configPath string) (*Config, error) {
	config, err := Read(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("no config file %s, using defaults", configPath)
		return Default(), nil
	}

	return config, err
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Version == 0 {
		c.Version = def.Version
	}

	if len(c.Packages) == 0 {
		c.Packages = def.Packages
	}

	if c.OutputFile == "" {
		c.OutputFile = def.OutputFile
	}

	if c.Runtime == "" {
		c.Runtime = def.Runtime
	}

	if c.RenameFields == "" {
		c.RenameFields = def.RenameFields
	}

	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate checks every option.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported version %d, expected %d", c.Version, CurrentVersion)
	}

	if filepath.Base(c.OutputFile) != c.OutputFile || !strings.HasSuffix(c.OutputFile, ".go") {
		return fmt.Errorf("output_file %q must be a .go file name without directories", c.OutputFile)
	}

	if strings.HasSuffix(c.OutputFile, "_test.go") {
		return fmt.Errorf("output_file %q must not be a test file", c.OutputFile)
	}

	if _, err := naming.ParseRenameRule(c.RenameFields); err != nil {
		return fmt.Errorf("rename_fields: %w", err)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

// RenameRule returns the parsed default field rename rule.
func (c *Config) RenameRule() naming.RenameRule {
	rule, err := naming.ParseRenameRule(c.RenameFields)
	if err != nil {
		return naming.TargetField.DefaultRule()
	}

	return rule
}
