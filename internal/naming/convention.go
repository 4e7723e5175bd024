package naming

import (
	"strings"
	"unicode"

	"fragment-linker/internal/config"
)

// Options controls how a type-specialized name is assembled.
type Options struct {
	// UsesTypesPrefix prepends the configured types prefix.
	UsesTypesPrefix bool
	// Suffix is appended after the converted fragment name.
	Suffix string
}

// Convention applies the configured naming rules to fragment names.
type Convention struct {
	typesPrefix    string
	fragmentSuffix string
	variableSuffix string
}

// New creates a Convention from the naming configuration.
func New(cfg config.NamingConfig) *Convention {
	return &Convention{
		typesPrefix:    cfg.TypesPrefix,
		fragmentSuffix: cfg.FragmentSuffix,
		variableSuffix: cfg.FragmentVariableSuffix,
	}
}

// FragmentVariableName returns the document-variable symbol name for a
// fragment. The types prefix never applies to runtime values.
func (c *Convention) FragmentVariableName(name string) string {
	return convertName(name) + c.variableSuffix
}

// FragmentSuffix returns the type suffix used for this fragment's
// type-specialized names.
func (c *Convention) FragmentSuffix(_ string) string {
	return c.fragmentSuffix
}

// TypeSpecializedName returns a type-level symbol name for a fragment.
func (c *Convention) TypeSpecializedName(name string, opts Options) string {
	out := convertName(name) + opts.Suffix
	if opts.UsesTypesPrefix {
		out = c.typesPrefix + out
	}

	return out
}

// convertName normalizes a fragment name into PascalCase, splitting on the
// separators GraphQL authors commonly use in fragment names.
func convertName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	if len(parts) == 0 {
		return name
	}

	var b strings.Builder
	for _, p := range parts {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}

	return b.String()
}
