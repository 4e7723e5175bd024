package registry

import (
	"fmt"
	"strings"
)

// UnknownFragmentTypeError reports a fragment whose type condition does not
// resolve against the schema. It aborts the build immediately: a missing
// schema type is a single unambiguous authoring error.
type UnknownFragmentTypeError struct {
	// Fragment is the offending fragment's name.
	Fragment string
	// TypeName is the missing schema type.
	TypeName string
}

func (e *UnknownFragmentTypeError) Error() string {
	return fmt.Sprintf("fragment %q is set on non-existing type %q", e.Fragment, e.TypeName)
}

// DuplicateFragmentError reports every fragment name defined more than once
// with non-identical bodies. Conflicts are collected across the whole scan so
// the user can fix all of them in one pass.
type DuplicateFragmentError struct {
	// Names of all conflicting fragments, in first-conflict order.
	Names []string
}

func (e *DuplicateFragmentError) Error() string {
	return fmt.Sprintf("multiple fragments with the same name were found: %s", strings.Join(e.Names, ", "))
}
