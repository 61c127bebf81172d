// Package uriutil provides URI helpers for document identity and
// relative reference resolution.
package uriutil

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ParseAbsolute parses s and requires it to be an absolute URI
// (scheme plus path, e.g. file:///schemas/user.json).
func ParseAbsolute(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid URI %q: %w", s, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("URI %q is not absolute", s)
	}
	return u, nil
}

// Resolve resolves ref against base per RFC 3986. A fragment-only ref
// ("#/a/b") keeps base's scheme, authority, and path; a relative path
// resolves against base's directory; an absolute ref stands alone.
func Resolve(base *url.URL, ref string) (*url.URL, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	if base == nil {
		if !r.IsAbs() {
			return nil, fmt.Errorf("reference %q is relative and no base URI is available", ref)
		}
		return r, nil
	}
	return base.ResolveReference(r), nil
}

// Normalize returns the cache identity for u: the URI with its fragment
// stripped. Two URIs differing only in fragment identify the same document.
func Normalize(u *url.URL) string {
	if u.Fragment == "" {
		return u.String()
	}
	c := *u
	c.Fragment = ""
	c.RawFragment = ""
	return c.String()
}

// StripFragment returns a copy of u with the fragment removed.
func StripFragment(u *url.URL) *url.URL {
	c := *u
	c.Fragment = ""
	c.RawFragment = ""
	return &c
}

// FromFilePath converts a local filesystem path to a file:// URI,
// making relative paths absolute against the working directory.
func FromFilePath(path string) (*url.URL, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", path, err)
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
}

// FromPathOrURI accepts either an absolute URI or a local filesystem path
// and returns an absolute URI string. A fragment on a path input survives
// the conversion.
func FromPathOrURI(raw string) (string, error) {
	path := raw
	frag := ""
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		path, frag = raw[:i], raw[i:]
	}

	// len(Scheme) > 1 keeps Windows drive letters out of the URI branch.
	if u, err := url.Parse(path); err == nil && u.IsAbs() && len(u.Scheme) > 1 {
		return raw, nil
	}

	u, err := FromFilePath(path)
	if err != nil {
		return "", err
	}
	return u.String() + frag, nil
}
