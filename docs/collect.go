package docs

import (
	"regexp"
	"slices"

	"github.com/sgpinkus/jsonref/internal/uriutil"
	"github.com/sgpinkus/jsonref/referrors"
)

// idPattern is the anchor-name grammar enforced under strict mode.
var idPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.:-]*$`)

// collect walks e's freshly decoded document depth-first, registering every
// $id anchor, rewriting every $ref value to an absolute URI against the
// document's base, and queueing a pending reference for each. Reference
// nodes are not recursed into: their contents are irrelevant, they will be
// wholesale replaced. Returns the normalized URIs of the distinct external
// documents referenced, in stable order.
func (c *Cache) collect(e *entry) ([]string, error) {
	w := &collectWalk{cache: c, entry: e, external: make(map[string]struct{})}
	if err := w.walk(e.doc, rootSlot(e), 0); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(w.external))
	for k := range w.external {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	c.logger.Debug("document collected",
		"uri", e.key, "ids", len(e.ids), "external", len(keys))
	return keys, nil
}

type collectWalk struct {
	cache    *Cache
	entry    *entry
	external map[string]struct{}
}

func (w *collectWalk) walk(v any, s slot, depth int) error {
	switch node := v.(type) {
	case map[string]any:
		refVal, isRef := node["$ref"].(string)
		idVal, hasID := node["$id"].(string)

		if isRef && hasID {
			return &referrors.ReferenceError{
				Ref:     refVal,
				URI:     w.entry.key,
				Message: "node declares both $id and $ref",
			}
		}

		if hasID {
			if err := w.registerID(idVal, node, depth); err != nil {
				return err
			}
		}

		if isRef {
			return w.queueRef(refVal, node, s, depth)
		}

		for key, child := range node {
			if err := w.walk(child, objSlot(node, key), depth+1); err != nil {
				return err
			}
		}

	case []any:
		for i, child := range node {
			if err := w.walk(child, arrSlot(node, i), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// registerID records an $id anchor under its literal value. The root node is
// exempt from the strict syntax check.
func (w *collectWalk) registerID(id string, node map[string]any, depth int) error {
	if w.cache.strictIDs && depth > 0 && !idPattern.MatchString(id) {
		return &referrors.ReferenceError{
			Ref:     id,
			URI:     w.entry.key,
			Message: "malformed $id anchor name",
		}
	}
	if _, dup := w.entry.ids[id]; dup {
		return &referrors.ReferenceError{
			Ref:           id,
			URI:           w.entry.key,
			IsDuplicateID: true,
		}
	}
	w.entry.ids[id] = node
	return nil
}

// queueRef rewrites node's $ref to its absolute form and queues it for
// resolution.
func (w *collectWalk) queueRef(ref string, node map[string]any, s slot, depth int) error {
	target, err := uriutil.Resolve(w.entry.uri, ref)
	if err != nil {
		return &referrors.ReferenceError{
			Ref:   ref,
			URI:   w.entry.key,
			Cause: err,
		}
	}
	node["$ref"] = target.String()

	if key := uriutil.Normalize(target); key != w.entry.key {
		w.external[key] = struct{}{}
	}

	w.cache.pending.push(&pendingRef{
		slot:           s,
		target:         target,
		pointerDepth:   fragmentDepth(target.Fragment),
		discoveryDepth: depth,
	})
	return nil
}
