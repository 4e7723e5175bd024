package plan

import (
	"fragment-linker/internal/emit"
	"fragment-linker/internal/registry"
	"fragment-linker/internal/usage"
)

// Planner plans imports and fragment references for output files against a
// shared, read-only registry.
type Planner struct {
	registry  *registry.Registry
	generator emit.ImportStatementGenerator
}

// NewPlanner creates a Planner over the given registry and statement
// generator.
func NewPlanner(reg *registry.Registry, gen emit.ImportStatementGenerator) *Planner {
	return &Planner{registry: reg, generator: gen}
}

// Plan produces the external fragment references and deduplicated import
// statements for the output file at outputFilePath.
//
// Names present in the depth map but absent from the registry are skipped
// silently; they indicate a fragment that was never registered, which is the
// usage resolver's concern, not the planner's.
func (p *Planner) Plan(outputFilePath string, depths *usage.DepthMap) *Result {
	result := &Result{}

	groups := newImportGroups()

	for _, name := range depths.Names() {
		entry, ok := p.registry.Lookup(name)
		if !ok {
			continue
		}

		depth, _ := depths.Depth(name)

		result.ExternalFragments = append(result.ExternalFragments, ExternalFragment{
			Name:       name,
			Depth:      depth,
			OnType:     entry.OnType,
			IsExternal: true,
			Definition: entry.Definition,
		})

		// Only directly spread fragments are imported; see the package
		// comment for the content-sharing invariant.
		if depth == 0 {
			groups.add(entry.FilePath, entry.ImportNames)
		}
	}

	for _, g := range groups.ordered {
		result.FragmentImportStatements = append(result.FragmentImportStatements, p.generator.Generate(emit.ImportSpec{
			RelativeOutputPath: outputFilePath,
			Source:             emit.ImportSource{Path: g.path, Names: g.names},
		}))
	}

	return result
}

// importGroups accumulates, per source file path, the union of symbol names
// needed from that file. Group order is first-discovery order, symbol order
// is first-contribution order.
type importGroups struct {
	ordered []*importGroup
	byPath  map[string]*importGroup
}

type importGroup struct {
	path  string
	names []string
	seen  map[string]bool
}

func newImportGroups() *importGroups {
	return &importGroups{byPath: make(map[string]*importGroup)}
}

// add unions names into the group for path, keeping set semantics.
func (g *importGroups) add(path string, names []string) {
	group, ok := g.byPath[path]
	if !ok {
		group = &importGroup{path: path, seen: make(map[string]bool)}
		g.byPath[path] = group
		g.ordered = append(g.ordered, group)
	}

	for _, name := range names {
		if group.seen[name] {
			continue
		}

		group.seen[name] = true
		group.names = append(group.names, name)
	}
}
