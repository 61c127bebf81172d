// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes jsonref document loading and pointer resolution as MCP
// tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sgpinkus/jsonref"
	"github.com/sgpinkus/jsonref/docs"
	"github.com/sgpinkus/jsonref/loader"
)

const serverInstructions = `jsonref MCP server — loads JSON/YAML documents, resolves JSON References ($ref) in place, and answers JSON Pointer queries against the resolved documents.

Documents are cached for the session, keyed by absolute URI. Referenced documents are fetched automatically: file:// URIs are confined to the server's root directory, http:// and https:// URIs are fetched with a bounded response size. References may form cycles; cyclic structures load fine, but a value that contains itself cannot be rendered as JSON and the pointer tool reports an error for it.

Tools:
- load: load a document (by URI/path or inline content) and resolve all its references
- pointer: evaluate a JSON Pointer against a resolved document and return the value as JSON
- source: return the original raw text of a loaded document`

// Server holds the session-scoped document cache shared by all tools.
type Server struct {
	cache *docs.Cache
}

// New creates a server whose file loads are confined to rootDir
// (empty disables confinement).
func New(rootDir string) *Server {
	l := loader.NewSchemeLoader(loader.NewFileLoader(rootDir), loader.NewHTTPLoader(nil))
	return &Server{cache: docs.New(l)}
}

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context, rootDir string) error {
	s := New(rootDir)
	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsonref", Version: jsonref.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	s.register(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "load",
		Description: "Load a JSON or YAML document and resolve every JSON Reference ($ref) in it, fetching referenced documents as needed. Accepts a URI or local path, or inline content with a naming URI. Loading is atomic: on any failure nothing is cached.",
	}, s.handleLoad)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pointer",
		Description: "Evaluate a JSON Pointer (RFC 6901) against a resolved document and return the addressed value as JSON. Loads the document first if it is not already cached. An empty pointer returns the whole document.",
	}, s.handlePointer)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "source",
		Description: "Return the original raw text of a document, exactly as loaded, unaffected by reference resolution.",
	}, s.handleSource)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
