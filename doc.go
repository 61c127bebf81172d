// Package jsonref provides loading and dereferencing of JSON documents that
// use JSON Reference ($ref) and JSON Pointer expressions.
//
// jsonref loads a document graph by URI, collects every $ref and $id it
// contains, recursively loads any external documents they point at, and then
// replaces each reference node with the value it resolves to. Repeated loads
// of the same URI return the identical cached document.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - docs: the document cache and dereferencing engine
//   - loader: pluggable document loaders (file, HTTP, preloaded bundle, null)
//   - referrors: structured error types shared by the other packages
//
// # Quick Start
//
// Load a document from disk and dereference it:
//
//	import (
//		"github.com/sgpinkus/jsonref/docs"
//		"github.com/sgpinkus/jsonref/loader"
//	)
//
//	c := docs.New(loader.NewFileLoader("/data/schemas"))
//	doc, err := c.LoadURI("file:///data/schemas/user.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Resolve a JSON Pointer inside a loaded document:
//
//	value, err := c.Pointer("file:///data/schemas/user.json#/definitions/name")
//
// Documents may be JSON or YAML; both decode through the same parser.
//
// # Reference semantics
//
// An object of the form {"$ref": <uri-or-pointer>} stands in for the value
// its target identifies and is replaced wholesale during dereferencing; any
// sibling keys are ignored. An object carrying {"$id": <name>} registers a
// local anchor addressable by name instead of by pointer path. An object may
// not declare both, and anchors must be unique within one document.
//
// After dereferencing, every reference to the same object or array target
// shares the same underlying value, so mutations through one are observable
// through the others. Scalar targets are copied by Go value semantics.
//
// Reference chains that can never bottom out in real data, such as two
// pointers referring to each other, fail with a reference-cycle error.
// Mutually recursive structures that pass through real values resolve fine
// and produce cyclic in-memory documents; for that reason the engine retains
// each document's original source text, available via Source.
//
// # Error Handling
//
// All failures are reported through the structured types in the referrors
// package and can be classified with errors.Is and errors.As:
//
//	if errors.Is(err, referrors.ErrReferenceCycle) {
//		// the document contains a pure pointer loop
//	}
//
// # Concurrency
//
// A docs.Cache is not goroutine-safe. Create separate instances for
// concurrent use, or serialize access to a shared one.
//
// # Command-Line Interface
//
// In addition to the library packages, jsonref provides a command-line
// interface:
//
//	# Print the value a JSON Pointer resolves to
//	jsonref pointer schema.json /definitions/user
//
//	# Print the original source text of a loaded document
//	jsonref source schema.json
//
// Install the CLI:
//
//	go install github.com/sgpinkus/jsonref/cmd/jsonref@latest
package jsonref
