package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"fragment-linker/internal/config"
	"fragment-linker/internal/naming"
	"fragment-linker/internal/schema"
	"fragment-linker/internal/source"
)

const testSDL = `
type Query {
  user: User
  node: Node
  search: [SearchResult!]
}

interface Node {
  id: ID!
}

interface Orphan {
  id: ID!
}

type User implements Node {
  id: ID!
  name: String!
}

type Post implements Node {
  id: ID!
  title: String!
}

type Comment implements Node {
  id: ID!
}

union SearchResult = User | Post
`

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()

	s, err := schema.Load(&ast.Source{Name: "schema.graphql", Input: testSDL})
	require.NoError(t, err)

	return s
}

func doc(t *testing.T, location, text string) source.Document {
	t.Helper()

	d, err := source.Parse(location, text)
	require.NoError(t, err)

	return d
}

func testBuilder(t *testing.T, emitDocumentValue bool) *Builder {
	t.Helper()

	conv := naming.New(config.NamingConfig{
		FragmentSuffix:         "Fragment",
		FragmentVariableSuffix: "FragmentDoc",
	})

	return NewBuilder(testSchema(t), conv, source.FilePaths{Extension: ".generated"}, emitDocumentValue)
}

func TestBuild_RegistersFragmentsInDocumentOrder(t *testing.T) {
	b := testBuilder(t, true)

	reg, err := b.Build([]source.Document{
		doc(t, "a.graphql", `
fragment UserFields on User { id name }
fragment PostFields on Post { id title }
`),
		doc(t, "b.graphql", `fragment CommentFields on Comment { id }`),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"UserFields", "PostFields", "CommentFields"}, reg.Names())
	assert.Equal(t, 3, reg.Len())

	entry, ok := reg.Lookup("UserFields")
	require.True(t, ok)
	assert.Equal(t, "a.generated", entry.FilePath)
	assert.Equal(t, "User", entry.OnType)
	require.NotNil(t, entry.Definition)
	assert.Equal(t, "UserFields", entry.Definition.Name)

	entry, ok = reg.Lookup("CommentFields")
	require.True(t, ok)
	assert.Equal(t, "b.generated", entry.FilePath)
}

func TestBuild_ImportNames_SingleConcreteType(t *testing.T) {
	b := testBuilder(t, true)

	reg, err := b.Build([]source.Document{
		doc(t, "a.graphql", `fragment UserFields on User { id }`),
	})
	require.NoError(t, err)

	entry, ok := reg.Lookup("UserFields")
	require.True(t, ok)
	assert.Equal(t, []string{"UserFieldsFragmentDoc", "UserFieldsFragment"}, entry.ImportNames)
}

func TestBuild_ImportNames_WithoutDocumentValue(t *testing.T) {
	b := testBuilder(t, false)

	reg, err := b.Build([]source.Document{
		doc(t, "a.graphql", `fragment UserFields on User { id }`),
	})
	require.NoError(t, err)

	entry, _ := reg.Lookup("UserFields")
	assert.Equal(t, []string{"UserFieldsFragment"}, entry.ImportNames)
}

func TestBuild_ImportNames_InterfaceExpandsPerPossibleType(t *testing.T) {
	b := testBuilder(t, false)

	reg, err := b.Build([]source.Document{
		doc(t, "a.graphql", `fragment NodeParts on Node { id }`),
	})
	require.NoError(t, err)

	entry, _ := reg.Lookup("NodeParts")
	assert.Equal(t, []string{
		"NodeParts_User_Fragment",
		"NodeParts_Post_Fragment",
		"NodeParts_Comment_Fragment",
	}, entry.ImportNames)
	assert.Equal(t, "Node", entry.OnType)
}

func TestBuild_ImportNames_UnionExpandsPerMember(t *testing.T) {
	b := testBuilder(t, true)

	reg, err := b.Build([]source.Document{
		doc(t, "a.graphql", `fragment Hit on SearchResult { __typename }`),
	})
	require.NoError(t, err)

	entry, _ := reg.Lookup("Hit")
	assert.Equal(t, []string{
		"HitFragmentDoc",
		"Hit_User_Fragment",
		"Hit_Post_Fragment",
	}, entry.ImportNames)
}

func TestBuild_ImportNames_NoPossibleTypes(t *testing.T) {
	frag := `fragment OrphanFields on Orphan { id }`

	b := testBuilder(t, true)
	reg, err := b.Build([]source.Document{doc(t, "a.graphql", frag)})
	require.NoError(t, err)

	entry, _ := reg.Lookup("OrphanFields")
	assert.Equal(t, []string{"OrphanFieldsFragmentDoc"}, entry.ImportNames)

	// Without a document value there is nothing left to export.
	b = testBuilder(t, false)
	reg, err = b.Build([]source.Document{doc(t, "a.graphql", frag)})
	require.NoError(t, err)

	entry, _ = reg.Lookup("OrphanFields")
	assert.Empty(t, entry.ImportNames)
}

func TestBuild_UnknownTypeFailsImmediately(t *testing.T) {
	b := testBuilder(t, true)

	_, err := b.Build([]source.Document{
		doc(t, "a.graphql", `fragment Bad on Missing { id }`),
		// A later conflict must never be reached once the type lookup fails.
		doc(t, "b.graphql", "fragment Dup on User { id }\nfragment Dup on User { name }"),
	})
	require.Error(t, err)

	var typeErr *UnknownFragmentTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "Bad", typeErr.Fragment)
	assert.Equal(t, "Missing", typeErr.TypeName)
}

func TestBuild_DuplicateIdenticalKeepsFirst(t *testing.T) {
	b := testBuilder(t, true)

	reg, err := b.Build([]source.Document{
		doc(t, "a.graphql", `fragment Dup on User { id }`),
		doc(t, "b.graphql", `fragment Dup on User { id }`),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())

	entry, _ := reg.Lookup("Dup")
	assert.Equal(t, "a.generated", entry.FilePath)
}

func TestBuild_DuplicateConflictsAreBatched(t *testing.T) {
	b := testBuilder(t, true)

	_, err := b.Build([]source.Document{
		doc(t, "a.graphql", "fragment Dup1 on User { id }\nfragment Dup2 on Post { id }"),
		doc(t, "b.graphql", "fragment Dup1 on User { id name }\nfragment Dup2 on Post { id title }"),
	})
	require.Error(t, err)

	var dupErr *DuplicateFragmentError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, []string{"Dup1", "Dup2"}, dupErr.Names)
	assert.Equal(t, "multiple fragments with the same name were found: Dup1, Dup2", err.Error())
}

func TestBuild_ConflictReportedOncePerName(t *testing.T) {
	b := testBuilder(t, true)

	_, err := b.Build([]source.Document{
		doc(t, "a.graphql", `fragment Dup on User { id }`),
		doc(t, "b.graphql", `fragment Dup on User { name }`),
		doc(t, "c.graphql", `fragment Dup on User { __typename }`),
	})
	require.Error(t, err)

	var dupErr *DuplicateFragmentError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, []string{"Dup"}, dupErr.Names)
}

func TestBuild_Idempotent(t *testing.T) {
	docs := []source.Document{
		doc(t, "a.graphql", "fragment NodeParts on Node { id }\nfragment UserFields on User { id }"),
		doc(t, "b.graphql", `fragment Hit on SearchResult { __typename }`),
	}

	b := testBuilder(t, true)

	first, err := b.Build(docs)
	require.NoError(t, err)

	second, err := b.Build(docs)
	require.NoError(t, err)

	require.Equal(t, first.Names(), second.Names())

	for _, name := range first.Names() {
		e1, _ := first.Lookup(name)
		e2, _ := second.Lookup(name)
		assert.Equal(t, e1.ImportNames, e2.ImportNames, "fragment %s", name)
		assert.Equal(t, e1.FilePath, e2.FilePath, "fragment %s", name)
	}
}
