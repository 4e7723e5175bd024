package emit

import (
	"fmt"
	"strings"
)

// FragmentRef is one external fragment listed in a manifest.
type FragmentRef struct {
	Name   string
	OnType string
	Depth  int
}

// Manifest is the rendered summary for one output file: its import block
// plus the ordered external fragment references the type emitter will
// expand.
type Manifest struct {
	// Source is the document the output file is generated from.
	Source string
	// OutputPath is the generated file path, relative to the base output dir.
	OutputPath string
	// Imports are rendered import statements, in first-discovery order.
	Imports []string
	// Fragments are the external fragment references in discovery order.
	Fragments []FragmentRef
}

// Render produces the manifest file content.
func (m *Manifest) Render() []byte {
	var b strings.Builder

	b.WriteString("// Code generated by fragment-linker. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// source: %s\n", m.Source)

	if m.OutputPath != "" {
		fmt.Fprintf(&b, "// output: %s\n", m.OutputPath)
	}

	if len(m.Imports) > 0 {
		b.WriteString("\n")

		for _, stmt := range m.Imports {
			b.WriteString(stmt)
			b.WriteString("\n")
		}
	}

	if len(m.Fragments) > 0 {
		b.WriteString("\n// External fragments:\n")

		for _, f := range m.Fragments {
			fmt.Fprintf(&b, "//   %s (on %s, depth %d)\n", f.Name, f.OnType, f.Depth)
		}
	}

	return []byte(b.String())
}
