package loader

import (
	"net/url"

	"github.com/sgpinkus/jsonref/internal/uriutil"
	"github.com/sgpinkus/jsonref/referrors"
)

// BundleEntry is one document in a preloaded bundle.
type BundleEntry struct {
	// URI is the absolute identifying URI the document is addressable under.
	URI string
	// Body is the raw document text.
	Body []byte
}

// BundleLoader resolves URIs against a precomputed in-memory set of
// documents, for self-contained bundles that must never touch disk or
// network. Construction validates every entry up front: a duplicate URI or
// an entry without an absolute identifying URI is a hard error.
type BundleLoader struct {
	docs map[string][]byte
}

// NewBundleLoader creates a loader over the given entries.
func NewBundleLoader(entries []BundleEntry) (*BundleLoader, error) {
	docs := make(map[string][]byte, len(entries))
	for _, e := range entries {
		u, err := uriutil.ParseAbsolute(e.URI)
		if err != nil {
			return nil, &referrors.LogicError{
				Input:   e.URI,
				Message: "bundle entry needs an absolute identifying URI",
				Cause:   err,
			}
		}
		key := uriutil.Normalize(u)
		if _, ok := docs[key]; ok {
			return nil, &referrors.LogicError{
				Input:   e.URI,
				Message: "duplicate bundle URI",
			}
		}
		docs[key] = e.Body
	}
	return &BundleLoader{docs: docs}, nil
}

// Load implements Loader.
func (l *BundleLoader) Load(u *url.URL) ([]byte, error) {
	body, ok := l.docs[uriutil.Normalize(u)]
	if !ok {
		return nil, &referrors.ResourceNotFoundError{
			URI:     u.String(),
			Message: "not in bundle",
		}
	}
	return body, nil
}

// Len reports the number of documents in the bundle.
func (l *BundleLoader) Len() int { return len(l.docs) }

var _ Loader = (*BundleLoader)(nil)
