package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sgpinkus/jsonref/internal/uriutil"
)

type loadInput struct {
	URI     string `json:"uri"               jsonschema:"URI or local path of the document to load"`
	Content string `json:"content,omitempty" jsonschema:"Inline document text; when set, uri names the document instead of locating it"`
}

type loadOutput struct {
	URI       string `json:"uri"`
	Documents int    `json:"documents"`
}

func (s *Server) handleLoad(_ context.Context, _ *mcp.CallToolRequest, input loadInput) (*mcp.CallToolResult, loadOutput, error) {
	uri, err := uriutil.FromPathOrURI(input.URI)
	if err != nil {
		return errResult(err), loadOutput{}, nil
	}

	if input.Content != "" {
		_, err = s.cache.LoadDoc([]byte(input.Content), uri)
	} else {
		_, err = s.cache.LoadURI(uri)
	}
	if err != nil {
		return errResult(err), loadOutput{}, nil
	}

	return nil, loadOutput{URI: uri, Documents: s.cache.Len()}, nil
}
