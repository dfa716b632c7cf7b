package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"input-object-generator/internal/naming"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRead(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
version: 1
packages:
  - ./examples/...
output_file: zz_input.go
runtime: example.com/gql
rename_fields: snake_case
log_level: debug
`)

	config, err := Read(path)
	require.NoError(t, err)

	want := &Config{
		Version:      1,
		Packages:     []string{"./examples/..."},
		OutputFile:   "zz_input.go",
		Runtime:      "example.com/gql",
		RenameFields: "snake_case",
		LogLevel:     "debug",
	}

	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, naming.SnakeCase, config.RenameRule())
}

func TestRead_Defaults(t *testing.T) {
	t.Parallel()

	config, err := Read(writeConfig(t, "packages: [./a]\n"))
	require.NoError(t, err)

	want := Default()
	want.Packages = []string{"./a"}

	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, naming.CamelCase, config.RenameRule())
}

func TestRead_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"version", "version: 2\n", "unsupported version 2"},
		{"output dir", "output_file: gen/input.go\n", "without directories"},
		{"output ext", "output_file: input.txt\n", "must be a .go file"},
		{"output test", "output_file: input_test.go\n", "must not be a test file"},
		{"rename", "rename_fields: snake_cas\n", `did you mean "snake_case"?`},
		{"log level", "log_level: loud\n", "log_level"},
		{"yaml", "packages: {\n", "failed to unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Read(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadOrDefault(t *testing.T) {
	t.Parallel()

	config, err := ReadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	_, err = ReadOrDefault(writeConfig(t, "version: 3\n"))
	assert.Error(t, err)
}
