package config

// Config represents the root of a YAML linker configuration file.
// This is the authoritative, human-reviewed generation configuration.
type Config struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Schema is the path to the GraphQL schema file.
	Schema string `yaml:"schema"`

	// Documents is a list of glob patterns selecting operation/fragment files.
	Documents []string `yaml:"documents"`

	// BaseOutputDir is the directory all generated files are written under.
	BaseOutputDir string `yaml:"baseOutputDir,omitempty"`

	// GeneratedExtension replaces the source extension when deriving a
	// document's generated file path (e.g. "A.graphql" -> "A.generated").
	GeneratedExtension string `yaml:"generatedExtension,omitempty"`

	// DocumentMode controls how generated documents are represented.
	DocumentMode DocumentMode `yaml:"documentMode,omitempty"`

	// Strict promotes recoverable findings (dangling fragment spreads) from
	// warnings to errors that fail the run.
	Strict bool `yaml:"strict,omitempty"`

	// Plugins lists the plugins active for this run together with their
	// declared capabilities.
	Plugins []Plugin `yaml:"plugins,omitempty"`

	// Naming configures the generated symbol naming conventions.
	Naming NamingConfig `yaml:"naming,omitempty"`
}

// Plugin describes one active plugin by name plus its declared capabilities.
// Capabilities are declared, not inferred from the plugin name, so the linker
// never has to keep a table of known plugin names.
type Plugin struct {
	// Name of the plugin (informational).
	Name string `yaml:"name"`

	// ProvidesDocumentValue is true if the plugin emits a runtime document
	// value symbol for every fragment (e.g. a parsed DocumentNode constant).
	ProvidesDocumentValue bool `yaml:"providesDocumentValue,omitempty"`
}

// NamingConfig configures the generated symbol naming conventions.
type NamingConfig struct {
	// TypesPrefix is prepended to every type-specialized symbol name.
	TypesPrefix string `yaml:"typesPrefix,omitempty"`

	// FragmentSuffix is appended to type-specialized fragment names.
	FragmentSuffix string `yaml:"fragmentSuffix,omitempty"`

	// FragmentVariableSuffix is appended to document-variable symbol names.
	FragmentVariableSuffix string `yaml:"fragmentVariableSuffix,omitempty"`
}

// EmitsDocumentValue resolves, once per run, whether fragment entries carry a
// runtime document-variable symbol: some active plugin must declare the
// capability and the document mode must not delegate document values to
// imported nodes or an external file.
func (c *Config) EmitsDocumentValue() bool {
	if c.DocumentMode.SuppressesDocumentValue() {
		return false
	}

	for _, p := range c.Plugins {
		if p.ProvidesDocumentValue {
			return true
		}
	}

	return false
}
