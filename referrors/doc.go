// Package referrors provides structured error types for the jsonref library.
//
// Import path: github.com/sgpinkus/jsonref/referrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides five core error types:
//
//   - [DecodeError]: malformed JSON or YAML document text
//   - [ResourceNotFoundError]: a URI, pointer, or anchor that cannot be satisfied
//   - [ReferenceError]: illegal $id/$ref usage, duplicate anchors, reference cycles
//   - [LogicError]: malformed construction input, such as a bad loader bundle
//   - [ResourceLimitError]: resource exhaustion (depth, size, count limits)
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrDecode]: matches any [DecodeError]
//   - [ErrNotFound]: matches any [ResourceNotFoundError]
//   - [ErrPathTraversal]: matches [ResourceNotFoundError] with IsPathTraversal=true
//   - [ErrReference]: matches any [ReferenceError]
//   - [ErrReferenceCycle]: matches [ReferenceError] with IsCycle=true
//   - [ErrDuplicateID]: matches [ReferenceError] with IsDuplicateID=true
//   - [ErrLogic]: matches any [LogicError]
//   - [ErrResourceLimit]: matches any [ResourceLimitError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	doc, err := cache.LoadURI("file:///schemas/user.json")
//	if errors.Is(err, referrors.ErrNotFound) {
//	    // URI or pointer target does not exist
//	}
//
// Extract error details with errors.As():
//
//	var refErr *referrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("failed reference: %s\n", refErr.Ref)
//	    if refErr.IsCycle {
//	        // the document contains a pure pointer loop
//	    }
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method.
// This allows finding root causes through the standard error chain:
//
//	var nfErr *referrors.ResourceNotFoundError
//	if errors.As(err, &nfErr) {
//	    if errors.Is(nfErr.Cause, os.ErrNotExist) {
//	        // the referenced file does not exist on disk
//	    }
//	}
package referrors
