package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile represents one generated output file.
type GeneratedFile struct {
	// Filename is the path relative to the output directory.
	Filename string
	// Content is the rendered file content.
	Content []byte
}

// WriteFiles writes all generated files under the output directory, creating
// intermediate directories as needed. Failures do not stop the loop; every
// write error is reported in the combined result.
func WriteFiles(files []GeneratedFile, outputDir string) (err error) {
	for _, file := range files {
		outputPath := filepath.Join(outputDir, filepath.FromSlash(file.Filename))

		if er := os.MkdirAll(filepath.Dir(outputPath), dirPerm); er != nil {
			err = multierr.Append(err, fmt.Errorf("creating output directory for %s: %w", file.Filename, er))
			continue
		}

		if er := os.WriteFile(outputPath, file.Content, filePerm); er != nil {
			err = multierr.Append(err, fmt.Errorf("writing file %s: %w", file.Filename, er))
		}
	}

	return err
}
