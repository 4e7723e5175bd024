package registry

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Entry describes one registered fragment and the generated artifacts it
// will produce.
type Entry struct {
	// FilePath is the generated output path of the file exporting this
	// fragment's artifacts.
	FilePath string
	// ImportNames are the distinct generated symbol names this fragment
	// produces, in emission order. May be empty when the fragment's type
	// condition has no concrete implementors and no document value is
	// configured.
	ImportNames []string
	// OnType is the schema type the fragment's type condition resolves to.
	OnType string
	// Definition is the fragment AST node, the source of truth for
	// content-equality comparisons.
	Definition *ast.FragmentDefinition
}

// Registry maps fragment names to their entries. Iteration order is the
// order fragments were first encountered across documents. A Registry is
// built once per run and read-only afterwards.
type Registry struct {
	names   []string
	entries map[string]*Entry
}

// newRegistry returns an empty registry ready for the build pass.
func newRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// insert adds an entry under name. The caller guarantees the name is new.
func (r *Registry) insert(name string, e *Entry) {
	r.names = append(r.names, name)
	r.entries[name] = e
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns the registered fragment names in first-seen order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Len returns the number of registered fragments.
func (r *Registry) Len() int {
	return len(r.names)
}
