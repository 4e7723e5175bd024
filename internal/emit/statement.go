package emit

import (
	"path"
	"strings"
)

// ImportSource identifies the file a group of symbols is imported from.
type ImportSource struct {
	// Path is the generated output path of the exporting file.
	Path string
	// Names are the symbol names to import, in emission order.
	Names []string
}

// ImportSpec is one import statement request. Both paths are relative to the
// same base output directory, so the rendered specifier never needs it.
type ImportSpec struct {
	// RelativeOutputPath is the generated path of the importing file.
	RelativeOutputPath string
	// Source is the file and symbols being imported.
	Source ImportSource
}

// ImportStatementGenerator renders one import statement from a spec.
type ImportStatementGenerator interface {
	Generate(spec ImportSpec) string
}

// StatementGenerator renders ES-style named import statements with a
// relative module specifier.
type StatementGenerator struct{}

// Generate renders "import { A, B } from './other.generated'".
func (g *StatementGenerator) Generate(spec ImportSpec) string {
	from := relativeImportPath(spec.RelativeOutputPath, spec.Source.Path)

	return "import { " + strings.Join(spec.Source.Names, ", ") + " } from '" + from + "'"
}

// relativeImportPath computes the module specifier for importing target from
// the file at from. Both paths are generated output paths relative to the
// same base output directory. Sibling imports get an explicit "./" prefix.
func relativeImportPath(from, target string) string {
	fromDir := path.Dir(from)

	rel := relPath(fromDir, target)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}

	return rel
}

// relPath returns target expressed relative to dir using forward slashes.
func relPath(dir, target string) string {
	if dir == "." {
		return target
	}

	dirParts := strings.Split(path.Clean(dir), "/")
	targetParts := strings.Split(path.Clean(target), "/")

	common := 0
	for common < len(dirParts) && common < len(targetParts)-1 {
		if dirParts[common] != targetParts[common] {
			break
		}
		common++
	}

	var parts []string
	for range dirParts[common:] {
		parts = append(parts, "..")
	}

	parts = append(parts, targetParts[common:]...)

	return strings.Join(parts, "/")
}
