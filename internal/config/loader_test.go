package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
schema: schema.graphql
documents:
  - "queries/*.graphql"
`))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "schema.graphql", cfg.Schema)
	assert.Equal(t, []string{"queries/*.graphql"}, cfg.Documents)
	assert.Equal(t, ".generated", cfg.GeneratedExtension)
	assert.Equal(t, "Fragment", cfg.Naming.FragmentSuffix)
	assert.Equal(t, "FragmentDoc", cfg.Naming.FragmentVariableSuffix)
	assert.Equal(t, DocumentModeGraphQLTag, cfg.DocumentMode)
	assert.False(t, cfg.Strict)
}

func TestParse_Strict(t *testing.T) {
	cfg, err := Parse([]byte("strict: true"))
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestParse_DocumentMode(t *testing.T) {
	tests := []struct {
		input    string
		expected DocumentMode
	}{
		{"graphQLTag", DocumentModeGraphQLTag},
		{"documentNode", DocumentModeDocumentNode},
		{"documentNodeImportFragments", DocumentModeDocumentNodeImportFragments},
		{"external", DocumentModeExternal},
		{"string", DocumentModeString},
	}

	for _, tt := range tests {
		cfg, err := Parse([]byte("documentMode: " + tt.input))
		require.NoError(t, err, "mode %q", tt.input)
		assert.Equal(t, tt.expected, cfg.DocumentMode)
		assert.Equal(t, tt.input, cfg.DocumentMode.String())
	}
}

func TestParse_UnknownDocumentModeFails(t *testing.T) {
	_, err := Parse([]byte("documentMode: banana"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document mode")
}

func TestEmitsDocumentValue(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected bool
	}{
		{
			name: "capability declared, tag mode",
			cfg: Config{
				Plugins: []Plugin{{Name: "typed-document-node", ProvidesDocumentValue: true}},
			},
			expected: true,
		},
		{
			name: "capability declared, documentNode mode",
			cfg: Config{
				DocumentMode: DocumentModeDocumentNode,
				Plugins:      []Plugin{{Name: "typed-document-node", ProvidesDocumentValue: true}},
			},
			expected: true,
		},
		{
			name: "capability declared, node-import mode suppresses",
			cfg: Config{
				DocumentMode: DocumentModeDocumentNodeImportFragments,
				Plugins:      []Plugin{{Name: "typed-document-node", ProvidesDocumentValue: true}},
			},
			expected: false,
		},
		{
			name: "capability declared, external mode suppresses",
			cfg: Config{
				DocumentMode: DocumentModeExternal,
				Plugins:      []Plugin{{Name: "typed-document-node", ProvidesDocumentValue: true}},
			},
			expected: false,
		},
		{
			name:     "no plugins",
			cfg:      Config{},
			expected: false,
		},
		{
			name: "plugins without the capability",
			cfg: Config{
				Plugins: []Plugin{{Name: "typescript"}, {Name: "typescript-operations"}},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.EmitsDocumentValue())
		})
	}
}

func TestMarshal_RoundTripsDocumentMode(t *testing.T) {
	cfg, err := Parse([]byte("documentMode: external"))
	require.NoError(t, err)

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "documentMode: external")
}
