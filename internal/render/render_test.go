package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONPlainValues(t *testing.T) {
	out, err := JSON(map[string]any{"a": []any{1, "two", nil}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,"two",null]}`, string(out))
}

func TestJSONIndent(t *testing.T) {
	out, err := JSONIndent(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(out))
}

func TestSharedSubtreeIsNotCyclic(t *testing.T) {
	shared := map[string]any{"x": 1}
	doc := map[string]any{"a": shared, "b": shared, "c": []any{shared, shared}}
	assert.False(t, Cyclic(doc))

	out, err := JSON(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":{"x":1},"b":{"x":1},"c":[{"x":1},{"x":1}]}`, string(out))
}

func TestSelfReferentialMapIsCyclic(t *testing.T) {
	doc := map[string]any{"a": 1}
	doc["self"] = doc
	assert.True(t, Cyclic(doc))

	_, err := JSON(doc)
	assert.ErrorIs(t, err, ErrCyclicValue)
}

func TestIndirectCycleIsCyclic(t *testing.T) {
	a := map[string]any{}
	b := map[string]any{"back": a}
	a["fwd"] = []any{b}
	assert.True(t, Cyclic(map[string]any{"root": a}))
}

func TestSelfReferentialSliceIsCyclic(t *testing.T) {
	s := make([]any, 1)
	s[0] = s
	assert.True(t, Cyclic(s))
}

func TestEmptyContainers(t *testing.T) {
	assert.False(t, Cyclic(map[string]any{}))
	assert.False(t, Cyclic([]any{}))
	assert.False(t, Cyclic(nil))
}
