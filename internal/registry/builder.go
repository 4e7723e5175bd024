package registry

import (
	"bytes"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"fragment-linker/internal/common"
	"fragment-linker/internal/naming"
	"fragment-linker/internal/schema"
	"fragment-linker/internal/source"
)

// Builder scans documents and produces the fragment registry.
type Builder struct {
	schema *schema.Schema
	naming *naming.Convention
	paths  source.FilePaths
	// emitDocumentValue is resolved once per run from the plugin capability
	// declarations and the document mode.
	emitDocumentValue bool
}

// NewBuilder creates a Builder over the given collaborators.
func NewBuilder(s *schema.Schema, conv *naming.Convention, paths source.FilePaths, emitDocumentValue bool) *Builder {
	return &Builder{
		schema:            s,
		naming:            conv,
		paths:             paths,
		emitDocumentValue: emitDocumentValue,
	}
}

// Build scans all documents in order and returns the finished registry.
// Failure is atomic: on error the registry is not returned and no partial
// state is observable by callers.
//
// A fragment name defined twice with structurally equal bodies keeps the
// first-seen entry (shared fragments included from several documents are
// legal). Same name with different bodies is a conflict; conflicts are
// batched and reported together after the full scan.
func (b *Builder) Build(documents []source.Document) (*Registry, error) {
	reg := newRegistry()

	var duplicates []string

	seenDuplicate := make(map[string]bool)

	for _, doc := range documents {
		if doc.AST == nil {
			continue
		}

		filePath := b.paths.Generate(doc.Location)

		for _, frag := range doc.AST.Fragments {
			onType := b.schema.LookupType(frag.TypeCondition)
			if onType == nil {
				return nil, &UnknownFragmentTypeError{Fragment: frag.Name, TypeName: frag.TypeCondition}
			}

			possibleTypes := b.schema.PossibleTypes(onType)

			entry := &Entry{
				FilePath:    filePath,
				ImportNames: b.importNames(frag.Name, possibleTypes),
				OnType:      onType.Name,
				Definition:  frag,
			}

			existing, ok := reg.Lookup(frag.Name)
			if !ok {
				reg.insert(frag.Name, entry)
				continue
			}

			if printFragment(existing.Definition) == printFragment(frag) {
				// Identical body included from another document; keep the
				// first-seen entry.
				continue
			}

			if !seenDuplicate[frag.Name] {
				seenDuplicate[frag.Name] = true
				duplicates = append(duplicates, frag.Name)
			}
		}
	}

	if !common.IsEmpty(duplicates) {
		return nil, &DuplicateFragmentError{Names: duplicates}
	}

	return reg, nil
}

// importNames computes the generated symbol names for a fragment. All rules
// are additive and applied in a fixed order so repeated builds produce
// identical lists.
func (b *Builder) importNames(name string, possibleTypes []*ast.Definition) []string {
	var names []string

	if b.emitDocumentValue {
		names = append(names, b.naming.FragmentVariableName(name))
	}

	suffix := b.naming.FragmentSuffix(name)

	switch {
	case common.IsSingle(possibleTypes):
		names = append(names, b.naming.TypeSpecializedName(name, naming.Options{
			UsesTypesPrefix: true,
			Suffix:          suffix,
		}))
	case common.IsMultiple(possibleTypes):
		for _, t := range possibleTypes {
			names = append(names, b.naming.TypeSpecializedName(name, naming.Options{
				UsesTypesPrefix: true,
				Suffix:          "_" + t.Name + "_" + suffix,
			}))
		}
	}

	return names
}

// printFragment serializes a fragment definition for structural comparison.
func printFragment(frag *ast.FragmentDefinition) string {
	var buf bytes.Buffer

	doc := &ast.QueryDocument{Fragments: ast.FragmentDefinitionList{frag}}
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)

	return buf.String()
}
