package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// File permission constants.
const (
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory. Files
// whose content is unchanged are left untouched.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		outputPath := filepath.Join(file.Dir, file.Filename)

		if existing, err := os.ReadFile(outputPath); err == nil && bytes.Equal(existing, file.Content) {
			log.Debugf("%s is up to date", outputPath)
			continue
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}

		log.Infof("wrote %s", outputPath)
	}

	return nil
}

// Stale returns the files whose content differs from what is on disk.
func Stale(files []GeneratedFile) []string {
	var stale []string

	for _, file := range files {
		outputPath := filepath.Join(file.Dir, file.Filename)

		existing, err := os.ReadFile(outputPath)
		if err != nil || !bytes.Equal(existing, file.Content) {
			stale = append(stale, outputPath)
		}
	}

	return stale
}
