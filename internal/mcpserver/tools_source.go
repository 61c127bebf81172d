package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sgpinkus/jsonref/internal/uriutil"
)

type sourceInput struct {
	URI string `json:"uri" jsonschema:"URI or local path of the document"`
}

type sourceOutput struct {
	URI    string `json:"uri"`
	Source string `json:"source"`
}

func (s *Server) handleSource(_ context.Context, _ *mcp.CallToolRequest, input sourceInput) (*mcp.CallToolResult, sourceOutput, error) {
	uri, err := uriutil.FromPathOrURI(input.URI)
	if err != nil {
		return errResult(err), sourceOutput{}, nil
	}

	if !s.cache.Exists(uri) {
		if _, err := s.cache.LoadURI(uri); err != nil {
			return errResult(err), sourceOutput{}, nil
		}
	}

	src, ok := s.cache.Source(uri)
	if !ok {
		// Documents supplied as already-decoded values have no raw text.
		return errResult(fmt.Errorf("no source text available for %s", uri)), sourceOutput{}, nil
	}

	return nil, sourceOutput{URI: uri, Source: string(src)}, nil
}
