// Package schema wraps the parsed GraphQL schema with the two lookups the
// linker needs: resolving a type-condition name and expanding a type into its
// possible concrete object types.
package schema

import (
	"fmt"
	"os"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Schema provides type lookup and possible-type expansion over a parsed
// GraphQL schema.
type Schema struct {
	inner *ast.Schema
}

// Load parses and validates a schema from the given source.
func Load(src *ast.Source) (*Schema, error) {
	s, err := gqlparser.LoadSchema(src)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", src.Name, err)
	}

	return &Schema{inner: s}, nil
}

// LoadFile reads and parses a schema file from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Load(&ast.Source{Name: path, Input: string(data)})
}

// Wrap adapts an already parsed schema.
func Wrap(s *ast.Schema) *Schema {
	return &Schema{inner: s}
}

// LookupType resolves a type name, returning nil if the schema does not
// define it.
func (s *Schema) LookupType(name string) *ast.Definition {
	return s.inner.Types[name]
}

// PossibleTypes expands a type into its concrete object types: an object
// expands to itself, an interface to its implementors, a union to its
// members. The returned order follows schema declaration order and is
// stable across runs. A type with no concrete implementors yields an empty
// result.
func (s *Schema) PossibleTypes(def *ast.Definition) []*ast.Definition {
	if def == nil {
		return nil
	}

	if def.Kind == ast.Object {
		return []*ast.Definition{def}
	}

	return s.inner.PossibleTypes[def.Name]
}
