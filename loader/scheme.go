package loader

import (
	"fmt"
	"net/url"

	"github.com/sgpinkus/jsonref/referrors"
)

// SchemeLoader routes each load to a delegate by URI scheme: file:// URIs to
// File, http:// and https:// URIs to HTTP. A nil delegate means the scheme is
// not served. Any other scheme fails.
type SchemeLoader struct {
	File Loader
	HTTP Loader
}

// NewSchemeLoader creates a loader serving file URIs through file and web
// URIs through http. Either delegate may be nil to disable its schemes.
func NewSchemeLoader(file, http Loader) *SchemeLoader {
	return &SchemeLoader{File: file, HTTP: http}
}

// Load implements Loader.
func (l *SchemeLoader) Load(u *url.URL) ([]byte, error) {
	var delegate Loader
	switch u.Scheme {
	case "file":
		delegate = l.File
	case "http", "https":
		delegate = l.HTTP
	}
	if delegate == nil {
		return nil, &referrors.ResourceNotFoundError{
			URI:     u.String(),
			Message: fmt.Sprintf("no loader configured for scheme %q", u.Scheme),
		}
	}
	return delegate.Load(u)
}

var _ Loader = (*SchemeLoader)(nil)
