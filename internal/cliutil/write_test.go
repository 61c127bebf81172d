package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "loaded %d documents from %s", 3, "bundle")
	assert.Equal(t, "loaded 3 documents from bundle", buf.String())
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWritefWriteError(t *testing.T) {
	// A failing writer must not panic; the error goes to stderr.
	Writef(errorWriter{}, "dropped")
}
