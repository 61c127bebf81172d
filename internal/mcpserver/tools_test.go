package mcpserver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHandleLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.json", `{"a": {"$ref": "#/b"}, "b": 42}`)
	s := New(dir)

	result, output, err := s.handleLoad(context.Background(), nil, loadInput{URI: path})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 1, output.Documents)
	assert.True(t, strings.HasPrefix(output.URI, "file://"))
}

func TestHandleLoadInlineContent(t *testing.T) {
	s := New(t.TempDir())
	result, output, err := s.handleLoad(context.Background(), nil, loadInput{
		URI:     "file:///virtual/doc.json",
		Content: `{"a": 1}`,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "file:///virtual/doc.json", output.URI)
}

func TestHandleLoadMissingFile(t *testing.T) {
	s := New(t.TempDir())
	result, _, err := s.handleLoad(context.Background(), nil, loadInput{URI: "nope.json"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandlePointer(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.json", `{"a": {"$ref": "#/b/c"}, "b": {"c": "hit"}}`)
	s := New(dir)

	result, output, err := s.handlePointer(context.Background(), nil, pointerInput{
		URI:     path,
		Pointer: "/a",
		Compact: true,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, `"hit"`, output.Value)
}

func TestHandlePointerWholeDocumentIndented(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.json", `{"a": 1}`)
	s := New(dir)

	result, output, err := s.handlePointer(context.Background(), nil, pointerInput{URI: path})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "{\n  \"a\": 1\n}", output.Value)
}

func TestHandlePointerCyclicValue(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.json", `{"a": {"loop": {"$ref": "#/a"}}}`)
	s := New(dir)

	result, _, err := s.handlePointer(context.Background(), nil, pointerInput{
		URI:     path,
		Pointer: "/a",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleSource(t *testing.T) {
	dir := t.TempDir()
	raw := `{"a": {"$ref": "#/b"}, "b": 1}`
	path := writeDoc(t, dir, "doc.json", raw)
	s := New(dir)

	result, output, err := s.handleSource(context.Background(), nil, sourceInput{URI: path})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, raw, output.Source, "source text is unaffected by resolution")
}

func TestHandleSourceMissing(t *testing.T) {
	s := New(t.TempDir())
	result, _, err := s.handleSource(context.Background(), nil, sourceInput{URI: "missing.json"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestSanitizeError(t *testing.T) {
	assert.Equal(t, "", sanitizeError(nil))
	assert.Equal(t, "open <path>: no such file",
		sanitizeError(errors.New("open /home/user/secret/doc.json: no such file")))
}
