package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fragment-linker/internal/common"
)

// DocumentMode represents how generated documents are represented in output.
type DocumentMode int

const (
	// DocumentModeGraphQLTag - documents embedded via a template-literal tag.
	DocumentModeGraphQLTag DocumentMode = iota
	// DocumentModeDocumentNode - documents embedded as pre-parsed node values.
	DocumentModeDocumentNode
	// DocumentModeDocumentNodeImportFragments - pre-parsed node values with
	// fragment documents imported rather than inlined.
	DocumentModeDocumentNodeImportFragments
	// DocumentModeExternal - documents referenced from an external file.
	DocumentModeExternal
	// DocumentModeString - documents embedded as plain strings.
	DocumentModeString
)

// documentModeNames maps the YAML spelling to the enum value.
var documentModeNames = map[string]DocumentMode{
	"graphQLTag":                  DocumentModeGraphQLTag,
	"documentNode":                DocumentModeDocumentNode,
	"documentNodeImportFragments": DocumentModeDocumentNodeImportFragments,
	"external":                    DocumentModeExternal,
	"string":                      DocumentModeString,
}

// String returns the YAML spelling of the mode.
func (m DocumentMode) String() string {
	switch m {
	case DocumentModeGraphQLTag:
		return "graphQLTag"
	case DocumentModeDocumentNode:
		return "documentNode"
	case DocumentModeDocumentNodeImportFragments:
		return "documentNodeImportFragments"
	case DocumentModeExternal:
		return "external"
	case DocumentModeString:
		return "string"
	default:
		return common.UnknownStr
	}
}

// SuppressesDocumentValue returns true for the modes where a fragment's
// runtime document value is not a locally generated symbol: imported node
// documents and externally stored documents.
func (m DocumentMode) SuppressesDocumentValue() bool {
	return m == DocumentModeDocumentNodeImportFragments || m == DocumentModeExternal
}

// UnmarshalYAML implements custom YAML unmarshaling for DocumentMode.
// Accepts the string spelling; an empty value keeps the default mode.
func (m *DocumentMode) UnmarshalYAML(node *yaml.Node) error {
	var str string

	err := node.Decode(&str)
	if err != nil {
		return err
	}

	if str == "" {
		*m = DocumentModeGraphQLTag
		return nil
	}

	mode, ok := documentModeNames[str]
	if !ok {
		return fmt.Errorf("unknown document mode %q", str)
	}

	*m = mode

	return nil
}

// MarshalYAML implements custom YAML marshaling for DocumentMode.
func (m DocumentMode) MarshalYAML() (any, error) {
	return m.String(), nil
}
