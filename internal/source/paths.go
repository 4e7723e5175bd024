package source

import (
	"path/filepath"
	"strings"
)

// FilePaths derives generated output paths from document source locations.
type FilePaths struct {
	// Extension replaces the source extension (e.g. ".generated").
	Extension string
}

// Generate returns the generated output path for a document location:
// the source extension is swapped for the configured one and the path is
// normalized to forward slashes, matching the path form used inside import
// statements.
func (f FilePaths) Generate(location string) string {
	ext := filepath.Ext(location)
	base := strings.TrimSuffix(location, ext)

	return filepath.ToSlash(base) + f.Extension
}
