package cmd_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/samwightt/gqlast/cmd"
	"github.com/samwightt/gqlast/pkg/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeQuery(t *testing.T, name string, query string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(query), 0644)
	require.NoError(t, err)
	return path
}

const getUserQuery = `query GetUser($id: ID!) {
  user(id: $id) {
    name
  }
}
`

func TestParse_Text(t *testing.T) {
	path := writeQuery(t, "query.graphql", getUserQuery)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"parse", path, "-f", "text"})
	require.NoError(t, err)

	expected := path + ":\n" +
		"  query GetUser($id: ID!) [1:1]\n" +
		"    user(id: $id) [2:3]\n" +
		"      name [3:5]\n"
	assert.Equal(t, expected, stdout)
}

func TestParse_StdinShorthandAndFragment(t *testing.T) {
	stdin := bytes.NewBufferString("{ a { b } ...F }\nfragment F on T { c }")

	stdout, _, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "-f", "text"}, stdin)
	require.NoError(t, err)

	expected := "stdin:\n" +
		"  query (shorthand) [1:1]\n" +
		"    a [1:3]\n" +
		"      b [1:7]\n" +
		"    ...F [1:14]\n" +
		"  fragment F on T [2:1]\n" +
		"    c [2:19]\n"
	assert.Equal(t, expected, stdout)
}

func TestParse_TextShowsAliasesArgumentsAndDirectives(t *testing.T) {
	stdin := bytes.NewBufferString(`query Q @live { me: user(id: 1, tags: ["a"]) @include(if: $x) { ... on Admin { level } } }`)

	stdout, _, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "-f", "text"}, stdin)
	require.NoError(t, err)

	assert.Contains(t, stdout, "  query Q @live [1:1]\n")
	assert.Contains(t, stdout, `    me: user(id: 1, tags: ["a"]) @include(if: $x) [1:17]`)
	assert.Contains(t, stdout, "      ... on Admin [")
	assert.Contains(t, stdout, "        level [")
}

func TestParse_JSON(t *testing.T) {
	path := writeQuery(t, "query.graphql", getUserQuery)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"parse", path, "-f", "json"})
	require.NoError(t, err)

	var docs []struct {
		Source   string `json:"source"`
		Document struct {
			Kind        string           `json:"kind"`
			Definitions []map[string]any `json:"definitions"`
		} `json:"document"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &docs))
	require.Len(t, docs, 1)

	assert.Equal(t, path, docs[0].Source)
	assert.Equal(t, "Document", docs[0].Document.Kind)
	require.Len(t, docs[0].Document.Definitions, 1)

	op := docs[0].Document.Definitions[0]
	assert.Equal(t, "OperationDefinition", op["kind"])
	assert.Equal(t, "query", op["operation"])
	assert.Equal(t, "GetUser", op["name"])
	assert.Equal(t, map[string]any{"line": float64(1), "column": float64(1)}, op["loc"])
}

func TestParse_YAML(t *testing.T) {
	stdin := bytes.NewBufferString("{ a }")

	stdout, _, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "-f", "yaml"}, stdin)
	require.NoError(t, err)

	assert.Contains(t, stdout, "- document:\n")
	assert.Contains(t, stdout, "kind: Document")
	assert.Contains(t, stdout, "shorthand: true")
	assert.Contains(t, stdout, "source: stdin")
}

func TestParse_Pretty(t *testing.T) {
	path := writeQuery(t, "query.graphql", getUserQuery)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"parse", path, "-f", "pretty"})
	require.NoError(t, err)

	plain := ansi.Strip(stdout)
	assert.Contains(t, plain, path)
	assert.Contains(t, plain, "query GetUser($id: ID!) 1:1")
	assert.Contains(t, plain, "user(id: $id) 2:3")
	assert.Contains(t, plain, "name 3:5")
}

func TestParse_MultipleFilesKeepArgumentOrder(t *testing.T) {
	first := writeQuery(t, "a.graphql", "{ a }")
	second := writeQuery(t, "b.graphql", "{ b }")
	third := writeQuery(t, "c.graphql", "{ c }")

	stdout, _, err := cmd.ExecuteWithArgs([]string{"parse", third, first, second, "-f", "json", "-j", "2"})
	require.NoError(t, err)

	var docs []struct {
		Source string `json:"source"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &docs))
	require.Len(t, docs, 3)
	assert.Equal(t, third, docs[0].Source)
	assert.Equal(t, first, docs[1].Source)
	assert.Equal(t, second, docs[2].Source)
}

func TestParse_SyntaxErrorStillPrintsOtherFiles(t *testing.T) {
	good := writeQuery(t, "good.graphql", "{ a }")
	bad := writeQuery(t, "bad.graphql", "{ a(")

	stdout, stderr, err := cmd.ExecuteWithArgs([]string{"parse", good, bad, "-f", "text"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, cmd.ErrParseFailed))

	assert.Contains(t, stdout, good+":")
	assert.NotContains(t, stdout, bad)

	plain := ansi.Strip(stderr)
	assert.Contains(t, plain, "error: Expected Name, found <EOF>")
	assert.Contains(t, plain, "--> "+bad+":1:5")
}

func TestParse_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.graphql")

	_, _, err := cmd.ExecuteWithArgs([]string{"parse", missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query file does not exist: "+missing)
}

func TestParse_MaxTokens(t *testing.T) {
	stdin := bytes.NewBufferString("{ a b c d }")

	_, stderr, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "--max-tokens", "3", "-f", "text"}, stdin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cmd.ErrParseFailed))
	assert.Contains(t, ansi.Strip(stderr), "error: exceeded token limit of 3")
}

func TestParse_DefectAbortsRun(t *testing.T) {
	stdin := bytes.NewBufferString("{ a(x: 99999999999999999999) }")

	_, _, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "-f", "text"}, stdin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, language.ErrDefect))
	assert.Contains(t, err.Error(), "stdin: defect: integer literal 99999999999999999999 does not fit in 64 bits")
}

func TestParse_FloatOverflowAbortsRun(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			stdin := bytes.NewBufferString("{ a(f: 1e400) }")

			stdout, _, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "-f", format}, stdin)
			require.Error(t, err)
			assert.True(t, errors.Is(err, language.ErrDefect))
			assert.Contains(t, err.Error(), "stdin: defect: float literal 1e400 does not fit in 64 bits")
			assert.Empty(t, stdout)
		})
	}
}

func TestParse_StringLocationsInJSON(t *testing.T) {
	stdin := bytes.NewBufferString("{ a(s: \"\"\"\n  block\n\"\"\", t: \"x\") { b } }")

	stdout, _, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "-f", "json"}, stdin)
	require.NoError(t, err)

	var docs []struct {
		Document struct {
			Definitions []struct {
				SelectionSet struct {
					Selections []struct {
						Arguments []struct {
							Value struct {
								Loc map[string]int `json:"loc"`
							} `json:"value"`
						} `json:"arguments"`
					} `json:"selections"`
				} `json:"selectionSet"`
			} `json:"definitions"`
		} `json:"document"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &docs))

	args := docs[0].Document.Definitions[0].SelectionSet.Selections[0].Arguments
	require.Len(t, args, 2)
	assert.Equal(t, map[string]int{"line": 1, "column": 8}, args[0].Value.Loc)
	assert.Equal(t, map[string]int{"line": 3, "column": 9}, args[1].Value.Loc)
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "-f", "xml"}, bytes.NewBufferString("{ a }"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format: xml")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	stdin := bytes.NewBufferString("{ a }")

	_, stderr, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "-v", "-f", "text"}, stdin)
	require.NoError(t, err)
	assert.Contains(t, stderr, "parsed document")
	assert.Contains(t, stderr, "source=stdin")
	assert.Contains(t, stderr, "definitions=1")
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	t.Setenv("GQLAST_LOG_LEVEL", "loud")

	_, _, err := cmd.ExecuteWithArgsAndStdin([]string{"parse", "-f", "text"}, bytes.NewBufferString("{ a }"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid GQLAST_LOG_LEVEL")
}
