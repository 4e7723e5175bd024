package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Document is one parsed GraphQL source file.
type Document struct {
	// AST holds the parsed definitions (operations and fragments).
	AST *ast.QueryDocument
	// Location is the source file path the document was read from.
	Location string
}

// Parse parses GraphQL source text into a Document.
func Parse(location, input string) (Document, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: location, Input: input})
	if err != nil {
		return Document{}, fmt.Errorf("failed to parse document %s: %w", location, err)
	}

	return Document{AST: doc, Location: location}, nil
}

// LoadFile reads and parses a single document file.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return Parse(path, string(data))
}

// LoadGlobs loads every document matched by the given glob patterns.
// Pattern order is preserved; matches within one pattern are sorted by path
// and a path matched by several patterns is loaded once.
func LoadGlobs(patterns []string) ([]Document, error) {
	var docs []Document

	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid documents pattern %q: %w", pattern, err)
		}

		sort.Strings(matches)

		for _, m := range matches {
			if seen[m] {
				continue
			}

			seen[m] = true

			doc, err := LoadFile(m)
			if err != nil {
				return nil, err
			}

			docs = append(docs, doc)
		}
	}

	return docs, nil
}
