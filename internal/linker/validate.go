package linker

import (
	"fmt"

	"fragment-linker/internal/diagnostic"
	"fragment-linker/internal/registry"
	"fragment-linker/internal/source"
	"fragment-linker/internal/usage"
)

// CheckDanglingSpreads reports every fragment spread in the document that
// names a fragment absent from the registry. The planner skips such spreads
// silently; this pass exists so they still surface to the user. In strict
// mode they are errors that fail the run, otherwise warnings.
func CheckDanglingSpreads(doc source.Document, reg *registry.Registry, strict bool) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if doc.AST == nil {
		return diags
	}

	reported := make(map[string]bool)

	add := diags.AddWarning
	if strict {
		add = diags.AddError
	}

	visit := func(name string) {
		if _, ok := reg.Lookup(name); ok {
			return
		}

		if reported[name] {
			return
		}

		reported[name] = true

		add("dangling_fragment_spread",
			fmt.Sprintf("spread of unknown fragment %q", name),
			doc.Location, name)
	}

	for _, op := range doc.AST.Operations {
		usage.WalkSpreads(op.SelectionSet, visit)
	}

	for _, frag := range doc.AST.Fragments {
		usage.WalkSpreads(frag.SelectionSet, visit)
	}

	return diags
}
