package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sgpinkus/jsonref/internal/render"
	"github.com/sgpinkus/jsonref/internal/uriutil"
)

type pointerInput struct {
	URI     string `json:"uri"               jsonschema:"URI or local path of the document"`
	Pointer string `json:"pointer,omitempty" jsonschema:"JSON Pointer (e.g. /definitions/user) or $id anchor name; empty addresses the document root"`
	Compact bool   `json:"compact,omitempty" jsonschema:"Emit compact JSON instead of indented"`
}

type pointerOutput struct {
	URI   string `json:"uri"`
	Value string `json:"value"`
}

func (s *Server) handlePointer(_ context.Context, _ *mcp.CallToolRequest, input pointerInput) (*mcp.CallToolResult, pointerOutput, error) {
	uri, err := uriutil.FromPathOrURI(input.URI)
	if err != nil {
		return errResult(err), pointerOutput{}, nil
	}

	target := uri
	if p := input.Pointer; p != "" {
		if strings.Contains(uri, "#") {
			target = uri + p
		} else {
			target = uri + "#" + p
		}
	}

	v, err := s.cache.Pointer(target)
	if err != nil {
		return errResult(err), pointerOutput{}, nil
	}

	var data []byte
	if input.Compact {
		data, err = render.JSON(v)
	} else {
		data, err = render.JSONIndent(v)
	}
	if err != nil {
		return errResult(err), pointerOutput{}, nil
	}

	return nil, pointerOutput{URI: target, Value: string(data)}, nil
}
