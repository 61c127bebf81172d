package docs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sgpinkus/jsonref/referrors"
)

// slot addresses the place a value occupies in its document: an object
// property, an array element, or the document root. Writing through a slot
// is how a resolved reference becomes visible to everything else holding
// the containing structure.
type slot struct {
	obj map[string]any
	key string
	arr []any
	idx int
	ent *entry
}

func objSlot(m map[string]any, key string) slot { return slot{obj: m, key: key} }
func arrSlot(a []any, idx int) slot             { return slot{arr: a, idx: idx} }
func rootSlot(e *entry) slot                    { return slot{ent: e} }

// get reads the slot's current value.
func (s slot) get() any {
	switch {
	case s.obj != nil:
		return s.obj[s.key]
	case s.arr != nil:
		return s.arr[s.idx]
	case s.ent != nil:
		return s.ent.doc
	default:
		return nil
	}
}

// set writes v into the slot.
func (s slot) set(v any) {
	switch {
	case s.obj != nil:
		s.obj[s.key] = v
	case s.arr != nil:
		s.arr[s.idx] = v
	case s.ent != nil:
		s.ent.doc = v
	}
}

// fragmentValue resolves a URI fragment against one document: the empty
// fragment is the document root, a fragment starting with "/" is a JSON
// Pointer, and anything else is an $id anchor name. An unknown anchor name
// falls back to a root-relative pointer walk, so "#name" and "#/name"
// address the same value when no anchor called "name" exists.
func (c *Cache) fragmentValue(e *entry, frag string) (any, slot, error) {
	if frag == "" {
		return e.doc, rootSlot(e), nil
	}
	if strings.HasPrefix(frag, "/") {
		return walkPointer(e, frag)
	}
	if node, ok := e.ids[frag]; ok {
		return node, slot{}, nil
	}
	v, s, err := walkPointer(e, "/"+frag)
	if err != nil {
		return nil, slot{}, &referrors.ResourceNotFoundError{
			URI:     e.key,
			Pointer: frag,
			Message: "no such $id anchor, and no such pointer",
		}
	}
	return v, s, nil
}

// walkPointer descends ptr segment by segment per RFC 6901, unescaping
// ~1 to "/" and ~0 to "~". Empty segments are skipped, which makes the
// pointer "/" address the document root. On failure the error carries the
// deepest prefix that did resolve, for diagnostics.
func walkPointer(e *entry, ptr string) (any, slot, error) {
	cur := e.doc
	cs := rootSlot(e)
	prefix := ""
	for _, seg := range strings.Split(ptr, "/") {
		if seg == "" {
			continue
		}
		seg = unescapePointerToken(seg)
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil, slot{}, &referrors.ResourceNotFoundError{
					URI:            e.key,
					Pointer:        ptr,
					ResolvedPrefix: prefix,
					Message:        fmt.Sprintf("missing key %q", seg),
				}
			}
			cs = objSlot(v, seg)
			cur = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, slot{}, &referrors.ResourceNotFoundError{
					URI:            e.key,
					Pointer:        ptr,
					ResolvedPrefix: prefix,
					Message:        fmt.Sprintf("invalid array index %q", seg),
				}
			}
			if idx < 0 || idx >= len(v) {
				return nil, slot{}, &referrors.ResourceNotFoundError{
					URI:            e.key,
					Pointer:        ptr,
					ResolvedPrefix: prefix,
					Message:        fmt.Sprintf("array index %d out of bounds (length %d)", idx, len(v)),
				}
			}
			cs = arrSlot(v, idx)
			cur = v[idx]
		default:
			return nil, slot{}, &referrors.ResourceNotFoundError{
				URI:            e.key,
				Pointer:        ptr,
				ResolvedPrefix: prefix,
				Message:        fmt.Sprintf("cannot traverse into %T", v),
			}
		}
		prefix += "/" + seg
	}
	return cur, cs, nil
}

// unescapePointerToken unescapes JSON Pointer tokens.
// Per RFC 6901, ~1 represents / and ~0 represents ~.
func unescapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// fragmentDepth counts the non-empty /-separated segments of a fragment.
// The empty fragment and "/" are depth 0.
func fragmentDepth(frag string) int {
	n := 0
	for _, seg := range strings.Split(frag, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}
