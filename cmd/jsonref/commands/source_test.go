package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgpinkus/jsonref/referrors"
)

func TestRunSource(t *testing.T) {
	raw := `{"a": {"$ref": "#/b"}, "b": 1}`
	path := writeDoc(t, "doc.json", raw)

	var buf bytes.Buffer
	require.NoError(t, runSource(&buf, path))
	assert.Equal(t, raw, buf.String(), "source is the raw text, not the resolved document")
}

func TestRunSourceMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runSource(&buf, "/does/not/exist.json")
	assert.ErrorIs(t, err, referrors.ErrNotFound)
}

func TestHandleSourceArgCount(t *testing.T) {
	assert.Error(t, HandleSource(nil))
	assert.Error(t, HandleSource([]string{"a.json", "b.json"}))
}
