package jsonlogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForms(t *testing.T) {
	expr, err := Parse([]byte(`{"glob": ["*.md", {"var": "path"}]}`))
	require.NoError(t, err)

	op, ok := expr.(Op)
	require.True(t, ok)
	assert.Equal(t, OpGlob, op.Name)
	require.Len(t, op.Args, 2)
	assert.Equal(t, Literal{Value: "*.md"}, op.Args[0])
	assert.Equal(t, Var{Path: "path", Default: ""}, op.Args[1])
}

func TestParseVarForms(t *testing.T) {
	tests := []struct {
		query string
		want  Var
	}{
		{`{"var": "path"}`, Var{Path: "path", Default: ""}},
		{`{"var": ["content"]}`, Var{Path: "content", Default: ""}},
		{`{"var": ["tags", "none"]}`, Var{Path: "tags", Default: "none"}},
	}
	for _, tt := range tests {
		expr, err := Parse([]byte(tt.query))
		require.NoError(t, err, "query %s", tt.query)
		assert.Equal(t, tt.want, expr, "query %s", tt.query)
	}
}

func TestParseArityViolations(t *testing.T) {
	queries := []string{
		`{"!": [true, false]}`,
		`{"!!": []}`,
		`{"glob": ["*.md"]}`,
		`{"regexp": ["a", "b", "c"]}`,
		`{"==": [1]}`,
		`{"<": [1, 2, 3, 4]}`,
		`{"and": []}`,
		`{"var": []}`,
		`{"var": [1]}`,
	}
	for _, query := range queries {
		_, err := Parse([]byte(query))
		var malformed *MalformedExpressionError
		require.ErrorAs(t, err, &malformed, "query %s", query)
	}
}

func TestParseRejectsMultiKeyObject(t *testing.T) {
	_, err := Parse([]byte(`{"and": [true], "or": [false]}`))
	var malformed *MalformedExpressionError
	require.ErrorAs(t, err, &malformed)
}

func TestParseRejectsUnknownOperator(t *testing.T) {
	_, err := Parse([]byte(`{"if": [true, 1, 2]}`))
	var opErr *UnsupportedOperatorError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "if", opErr.Operator)
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"and": [`))
	var malformed *MalformedExpressionError
	require.ErrorAs(t, err, &malformed)
}

func TestParseNestedQuery(t *testing.T) {
	query := `{
		"and": [
			{"glob": ["*.md", {"var": "path"}]},
			{"or": [
				{"regexp": ["Keaton", {"var": "content"}]},
				{"==": [{"var": "path"}, "inbox.md"]}
			]}
		]
	}`
	expr, err := Parse([]byte(query))
	require.NoError(t, err)

	op, ok := expr.(Op)
	require.True(t, ok)
	assert.Equal(t, OpAnd, op.Name)
	require.Len(t, op.Args, 2)

	inner, ok := op.Args[1].(Op)
	require.True(t, ok)
	assert.Equal(t, OpOr, inner.Name)
}

func TestParsePrecompilesLiteralPatterns(t *testing.T) {
	expr, err := Parse([]byte(`{"regexp": ["Kea.on", {"var": "content"}]}`))
	require.NoError(t, err)

	op, ok := expr.(Op)
	require.True(t, ok)
	assert.NotNil(t, op.compiledRe)

	expr, err = Parse([]byte(`{"glob": ["*.md", {"var": "path"}]}`))
	require.NoError(t, err)
	op, ok = expr.(Op)
	require.True(t, ok)
	assert.NotNil(t, op.compiledGlob)
}
