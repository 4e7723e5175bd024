package plan

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// ExternalFragment is one fragment reference an output file depends on,
// carrying the metadata the downstream type emitter needs.
type ExternalFragment struct {
	// Name of the referenced fragment.
	Name string
	// Depth is the hop count from the output document (0 = spread directly).
	Depth int
	// OnType is the schema type the fragment's condition resolves to.
	OnType string
	// IsExternal marks the fragment as defined outside the output document.
	IsExternal bool
	// Definition is the fragment AST node.
	Definition *ast.FragmentDefinition
}

// Result is the planning output for a single output file. Both slices are
// fresh values per file; nothing is cached across files within a run.
type Result struct {
	// ExternalFragments lists referenced fragments in depth-map discovery
	// order.
	ExternalFragments []ExternalFragment
	// FragmentImportStatements are the rendered import statements, one per
	// source file, in first-discovery order.
	FragmentImportStatements []string
}
