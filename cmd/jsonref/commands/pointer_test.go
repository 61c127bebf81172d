package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgpinkus/jsonref/referrors"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPointer(t *testing.T) {
	path := writeDoc(t, "doc.json", `{"a": {"$ref": "#/b/c"}, "b": {"c": {"hit": true}}}`)

	var buf bytes.Buffer
	require.NoError(t, runPointer(&buf, path, "/a", FormatJSON))
	assert.JSONEq(t, `{"hit": true}`, buf.String())
}

func TestRunPointerWholeDocument(t *testing.T) {
	path := writeDoc(t, "doc.json", `{"a": 1}`)

	var buf bytes.Buffer
	require.NoError(t, runPointer(&buf, path, "", FormatJSON))
	assert.JSONEq(t, `{"a": 1}`, buf.String())
}

func TestRunPointerYAMLOutput(t *testing.T) {
	path := writeDoc(t, "doc.yaml", "a:\n  b: hit\n")

	var buf bytes.Buffer
	require.NoError(t, runPointer(&buf, path, "/a", FormatYAML))
	assert.Equal(t, "b: hit\n\n", buf.String())
}

func TestRunPointerMissingTarget(t *testing.T) {
	path := writeDoc(t, "doc.json", `{"a": 1}`)

	var buf bytes.Buffer
	err := runPointer(&buf, path, "/nope", FormatJSON)
	assert.ErrorIs(t, err, referrors.ErrNotFound)
}

func TestRunPointerCyclicValue(t *testing.T) {
	path := writeDoc(t, "doc.json", `{"a": {"loop": {"$ref": "#/a"}}}`)

	var buf bytes.Buffer
	err := runPointer(&buf, path, "/a", FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestHandlePointerArgCount(t *testing.T) {
	assert.Error(t, HandlePointer(nil))
	assert.Error(t, HandlePointer([]string{"only-one.json"}))
}

func TestHandlePointerInvalidFormat(t *testing.T) {
	path := writeDoc(t, "doc.json", `{"a": 1}`)
	assert.Error(t, HandlePointer([]string{"--format", "xml", path, "/a"}))
}
