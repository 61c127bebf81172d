// Package loader provides document loaders for the jsonref engine.
//
// A Loader maps an absolute URI to the raw text of the document it
// identifies, or refuses. The engine never fetches anything itself; remote
// access policy is decided entirely by which loader it is constructed with.
package loader

import (
	"net/url"
)

// MaxFileSize is the default maximum size (in bytes) allowed for a loaded
// document. This prevents resource exhaustion from arbitrarily large files.
// Set to 10MB which should be sufficient for most JSON documents.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

// Loader maps an absolute URI to raw document text.
//
// Load fails with a referrors.ResourceNotFoundError when the URI cannot be
// satisfied. The fragment of the URI, if any, is ignored: loaders deal in
// whole documents.
type Loader interface {
	Load(u *url.URL) ([]byte, error)
}
