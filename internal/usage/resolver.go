package usage

import (
	"github.com/vektah/gqlparser/v2/ast"

	"fragment-linker/internal/registry"
)

// Resolve walks the output document's fragment-spread graph and returns the
// depth map of every registered fragment it reaches.
//
// Spreads appearing anywhere in the document's own selections (operations,
// inline fragments and locally defined fragments' bodies) count as depth 0.
// Spreads found inside a registered fragment's body count one hop deeper than
// the spread that pulled that fragment in; when a fragment is reachable along
// several paths the smallest depth wins and its body is re-walked at the
// shorter distance.
//
// Fragments the document defines itself are not external references and are
// skipped. Spread names absent from the registry are ignored; surfacing them
// is a validation concern, not a resolution one. Cyclic spreads terminate
// because a body is only re-walked when the newly found depth is strictly
// smaller than the recorded one.
func Resolve(doc *ast.QueryDocument, reg *registry.Registry) *DepthMap {
	r := &resolver{registry: reg, depths: NewDepthMap()}

	local := make(map[string]bool, len(doc.Fragments))
	for _, frag := range doc.Fragments {
		local[frag.Name] = true
	}

	visit := func(name string) {
		if local[name] {
			return
		}

		r.record(name, 0)
	}

	for _, op := range doc.Operations {
		WalkSpreads(op.SelectionSet, visit)
	}

	for _, frag := range doc.Fragments {
		WalkSpreads(frag.SelectionSet, visit)
	}

	return r.depths
}

type resolver struct {
	registry *registry.Registry
	depths   *DepthMap
}

// record notes name at depth and descends into the fragment's own body when
// the depth improved.
func (r *resolver) record(name string, depth int) {
	entry, ok := r.registry.Lookup(name)
	if !ok {
		return
	}

	if prev, seen := r.depths.Depth(name); seen && prev <= depth {
		return
	}

	r.depths.Set(name, depth)

	WalkSpreads(entry.Definition.SelectionSet, func(spread string) {
		if spread == name {
			// A fragment must not spread itself; never follow the edge.
			return
		}

		r.record(spread, depth+1)
	})
}

// WalkSpreads calls visit for every fragment spread in the selection set,
// in document order, descending through fields and inline fragments.
func WalkSpreads(set ast.SelectionSet, visit func(name string)) {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			WalkSpreads(s.SelectionSet, visit)
		case *ast.InlineFragment:
			WalkSpreads(s.SelectionSet, visit)
		case *ast.FragmentSpread:
			visit(s.Name)
		}
	}
}
