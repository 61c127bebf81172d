// Package commands provides CLI command handlers for jsonref.
package commands

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/sgpinkus/jsonref/docs"
	"github.com/sgpinkus/jsonref/loader"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = fmt.Fprintln(w, string(bytes))
	return err
}

// newCache builds the document cache used by CLI commands: file loads are
// unconfined and web URIs are fetched.
func newCache() *docs.Cache {
	l := loader.NewSchemeLoader(loader.NewFileLoader(""), loader.NewHTTPLoader(nil))
	return docs.New(l)
}
