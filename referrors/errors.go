package referrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDecode indicates a document decoding failure.
	ErrDecode = errors.New("decode error")

	// ErrNotFound indicates a URI, pointer, or anchor could not be satisfied.
	ErrNotFound = errors.New("resource not found")

	// ErrPathTraversal indicates a path traversal attempt was blocked.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrReference indicates an illegal reference or anchor declaration.
	ErrReference = errors.New("reference error")

	// ErrReferenceCycle indicates a pure reference-to-reference loop was detected.
	ErrReferenceCycle = errors.New("reference cycle")

	// ErrDuplicateID indicates two nodes in one document declared the same $id.
	ErrDuplicateID = errors.New("duplicate $id")

	// ErrLogic indicates malformed construction input.
	ErrLogic = errors.New("logic error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// DecodeError represents a failure to decode a document's raw text.
type DecodeError struct {
	// URI identifies the document that failed to decode
	URI string
	// Message describes the decoding failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.URI != "" {
		msg += " in " + e.URI
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ResourceNotFoundError represents a URI, JSON Pointer, or $id anchor that
// could not be satisfied by the loader or the document it addresses.
type ResourceNotFoundError struct {
	// URI is the document or reference URI that could not be satisfied
	URI string
	// Pointer is the fragment that failed to resolve, if any
	Pointer string
	// ResolvedPrefix is the deepest pointer prefix that did resolve,
	// kept for diagnostics when descent fails partway
	ResolvedPrefix string
	// IsPathTraversal is true if the lookup was rejected because it escaped
	// the loader's allowed directory
	IsPathTraversal bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ResourceNotFoundError) Error() string {
	msg := "resource not found"
	if e.IsPathTraversal {
		msg = "path traversal detected"
	}
	if e.URI != "" {
		msg += ": " + e.URI
	}
	if e.Pointer != "" {
		msg += fmt.Sprintf(": pointer %q", e.Pointer)
	}
	if e.ResolvedPrefix != "" {
		msg += fmt.Sprintf(" (resolved up to %q)", e.ResolvedPrefix)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ResourceNotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrNotFound, and also ErrPathTraversal when the flag is set.
func (e *ResourceNotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	if target == ErrPathTraversal && e.IsPathTraversal {
		return true
	}
	return false
}

// ReferenceError represents an illegal $ref or $id declaration, or a
// reference cycle detected during dereferencing.
type ReferenceError struct {
	// Ref is the reference or anchor string involved in the failure
	Ref string
	// URI identifies the document containing the failing node, if known
	URI string
	// IsCycle is true if this error is due to a reference-to-reference loop
	IsCycle bool
	// IsDuplicateID is true if this error is due to a duplicate $id anchor
	IsDuplicateID bool
	// Chain is the resolution chain that revisited a node, for cycle errors
	Chain []string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCycle {
		msg = "reference cycle"
	} else if e.IsDuplicateID {
		msg = "duplicate $id"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.URI != "" {
		msg += " in " + e.URI
	}
	if len(e.Chain) > 0 {
		msg += fmt.Sprintf(" (chain: %v)", e.Chain)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrReferenceCycle or ErrDuplicateID
// when appropriate flags are set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	if target == ErrReferenceCycle && e.IsCycle {
		return true
	}
	if target == ErrDuplicateID && e.IsDuplicateID {
		return true
	}
	return false
}

// LogicError represents malformed construction input, such as a loader
// bundle containing duplicate or non-absolute URIs.
type LogicError struct {
	// Input is the offending input value, if known
	Input string
	// Message describes the construction failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LogicError) Error() string {
	msg := "logic error"
	if e.Input != "" {
		msg += fmt.Sprintf(" for input %q", e.Input)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LogicError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LogicError) Is(target error) bool {
	return target == ErrLogic
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when loading or dereferencing exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "ref_depth", "cached_documents", "file_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
