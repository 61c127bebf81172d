package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestOutputStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputStructured(&buf, map[string]any{"a": 1}, FormatJSON))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestOutputStructuredYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputStructured(&buf, map[string]any{"a": 1}, FormatYAML))
	assert.Equal(t, "a: 1\n\n", buf.String())
}

func TestOutputStructuredInvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, OutputStructured(&buf, map[string]any{}, "xml"))
}
