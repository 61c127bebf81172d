package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sgpinkus/jsonref"
	"github.com/sgpinkus/jsonref/cmd/jsonref/commands"
	"github.com/sgpinkus/jsonref/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("jsonref v%s\n", jsonref.Version())
	case "help", "-h", "--help":
		printUsage()
	case "pointer":
		if err := commands.HandlePointer(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "source":
		if err := commands.HandleSource(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background(), ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`jsonref - JSON Reference resolution tools

Usage:
  jsonref <command> [options]

Commands:
  pointer     Load a document, resolve its references, and print the value a JSON Pointer addresses
  source      Print the original raw text of a document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  jsonref pointer schema.json /definitions/user
  jsonref pointer --format yaml https://example.com/schema.json /properties
  jsonref source schema.yaml

Run 'jsonref <command> --help' for more information on a command.`)
}
