package docs

import (
	"fmt"
	"net/url"

	"go.yaml.in/yaml/v4"

	"github.com/sgpinkus/jsonref/internal/uriutil"
	"github.com/sgpinkus/jsonref/loader"
	"github.com/sgpinkus/jsonref/referrors"
)

const (
	// DefaultMaxRefDepth is the maximum length allowed for a chain of
	// references through references. This prevents stack overflow from
	// deeply nested (but non-circular) chains.
	DefaultMaxRefDepth = 100

	// DefaultMaxCachedDocuments is the maximum number of documents held in
	// the cache. This prevents memory exhaustion from documents with many
	// external references.
	DefaultMaxCachedDocuments = 100
)

// entry is one cached document with its identity table and original raw
// source. The raw source is retained because a document containing resolved
// cycles can no longer be safely re-serialized to plain JSON.
type entry struct {
	// key is the normalized (fragment-stripped) URI the document was loaded under
	key string
	// uri is the parsed form of key, the base for relative reference resolution
	uri *url.URL
	// doc is the decoded document tree, mutated in place during dereferencing
	doc any
	// ids maps $id anchor values to their nodes
	ids map[string]any
	// source is the original raw text, nil for pre-decoded documents
	source []byte
}

// Cache loads, dereferences, and memoizes JSON documents by URI.
//
// Loading a URI parses the document, collects its references and anchors,
// recursively loads every external document referenced, and resolves all
// pending references before returning. A second load of the same URI returns
// the identical cached document without re-parsing. A failed load leaves the
// cache without the offending documents; entries cached by earlier successful
// calls remain valid.
//
// Cache is not goroutine-safe.
type Cache struct {
	loader       loader.Loader
	logger       Logger
	strictIDs    bool
	maxRefDepth  int
	maxDocuments int
	entries      map[string]*entry
	pending      *refQueue
}

// New creates a document cache backed by l. A nil l gets the null loader,
// so documents can only be supplied directly and external references fail.
func New(l loader.Loader, opts ...Option) *Cache {
	if l == nil {
		l = loader.NewNullLoader()
	}
	c := &Cache{
		loader:       l,
		logger:       NopLogger{},
		maxRefDepth:  DefaultMaxRefDepth,
		maxDocuments: DefaultMaxCachedDocuments,
		entries:      make(map[string]*entry),
		pending:      &refQueue{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// suppliedDoc carries caller-provided document content into a load.
type suppliedDoc struct {
	raw    []byte
	val    any
	hasVal bool
}

// LoadURI loads, dereferences, and caches the document identified by uri,
// fetching its text through the configured loader. uri must be absolute;
// any fragment is ignored for loading.
func (c *Cache) LoadURI(uri string) (any, error) {
	u, err := uriutil.ParseAbsolute(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid document URI: %w", err)
	}
	return c.load(u, nil)
}

// LoadDoc loads raw document text under the given identifying URI instead of
// going through the loader. If the URI is already cached the supplied text is
// ignored and the cached document is returned: documents load once and are
// identified by URI.
func (c *Cache) LoadDoc(raw []byte, uri string) (any, error) {
	u, err := uriutil.ParseAbsolute(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid document URI: %w", err)
	}
	return c.load(u, &suppliedDoc{raw: raw})
}

// LoadValue loads an already-decoded document tree under the given
// identifying URI. The tree is dereferenced in place. Source reports no
// original text for documents loaded this way.
func (c *Cache) LoadValue(doc any, uri string) (any, error) {
	u, err := uriutil.ParseAbsolute(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid document URI: %w", err)
	}
	return c.load(u, &suppliedDoc{val: doc, hasVal: true})
}

// Pointer resolves a URI with an optional fragment to the value it
// addresses, loading the document first if needed. The fragment may be
// empty (the document root), a JSON Pointer ("/a/b/0"), or an $id anchor
// name.
func (c *Cache) Pointer(uri string) (any, error) {
	u, err := uriutil.ParseAbsolute(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid document URI: %w", err)
	}
	if _, err := c.load(u, nil); err != nil {
		return nil, err
	}
	e := c.entries[uriutil.Normalize(u)]
	v, _, err := c.fragmentValue(e, u.Fragment)
	return v, err
}

// Source returns the original raw text the URI's document was loaded from.
// It reports false for URIs that are not cached and for documents supplied
// pre-decoded. The text is the pristine input even after the in-memory
// document has been mutated by dereferencing.
func (c *Cache) Source(uri string) ([]byte, bool) {
	u, err := uriutil.ParseAbsolute(uri)
	if err != nil {
		return nil, false
	}
	e, ok := c.entries[uriutil.Normalize(u)]
	if !ok || e.source == nil {
		return nil, false
	}
	return e.source, true
}

// Exists reports whether the URI's document is cached.
func (c *Cache) Exists(uri string) bool {
	u, err := uriutil.ParseAbsolute(uri)
	if err != nil {
		return false
	}
	_, ok := c.entries[uriutil.Normalize(u)]
	return ok
}

// Len reports the number of cached documents.
func (c *Cache) Len() int { return len(c.entries) }

// Clear drops every cached document and any pending state.
func (c *Cache) Clear() {
	c.entries = make(map[string]*entry)
	c.pending.reset()
}

// load runs the full load-and-dereference sequence for one root document.
// On failure every entry created by this call is rolled back, leaving
// previously cached documents untouched.
func (c *Cache) load(u *url.URL, content *suppliedDoc) (any, error) {
	if e, ok := c.entries[uriutil.Normalize(u)]; ok {
		return e.doc, nil
	}

	var added []string
	e, err := c.ensure(u, content, &added)
	if err == nil {
		err = c.drain()
	}
	if err != nil {
		for _, key := range added {
			delete(c.entries, key)
		}
		c.pending.reset()
		return nil, err
	}
	return e.doc, nil
}

// ensure brings the document at u into the cache, decoding it, collecting
// its references and anchors, and recursively ensuring every external
// document it references is loaded too. Resolution is left to drain.
func (c *Cache) ensure(u *url.URL, content *suppliedDoc, added *[]string) (*entry, error) {
	key := uriutil.Normalize(u)
	if e, ok := c.entries[key]; ok {
		return e, nil
	}
	if len(c.entries) >= c.maxDocuments {
		return nil, &referrors.ResourceLimitError{
			ResourceType: "cached_documents",
			Limit:        int64(c.maxDocuments),
			Actual:       int64(len(c.entries)),
			Message:      "too many loaded documents",
		}
	}

	base := uriutil.StripFragment(u)
	var raw []byte
	var doc any
	switch {
	case content != nil && content.hasVal:
		doc = content.val
	case content != nil:
		raw = content.raw
	default:
		var err error
		if raw, err = c.loader.Load(base); err != nil {
			return nil, err
		}
	}
	if raw != nil {
		// The YAML parser handles both YAML and JSON text.
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, &referrors.DecodeError{URI: key, Cause: err}
		}
	}

	e := &entry{
		key:    key,
		uri:    base,
		doc:    doc,
		ids:    make(map[string]any),
		source: raw,
	}
	c.entries[key] = e
	*added = append(*added, key)
	c.logger.Debug("document loaded", "uri", key, "bytes", len(raw))

	external, err := c.collect(e)
	if err != nil {
		return nil, err
	}

	for _, ext := range external {
		eu, err := url.Parse(ext)
		if err != nil {
			return nil, &referrors.ResourceNotFoundError{URI: ext, Cause: err}
		}
		if _, err := c.ensure(eu, nil, added); err != nil {
			return nil, fmt.Errorf("loading %s referenced from %s: %w", ext, key, err)
		}
	}
	return e, nil
}
