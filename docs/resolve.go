package docs

import (
	"fmt"

	"github.com/sgpinkus/jsonref/internal/uriutil"
	"github.com/sgpinkus/jsonref/referrors"
)

// drain resolves queued references in priority order until none remain.
// Any failure is terminal for the enclosing load.
func (c *Cache) drain() error {
	for {
		p := c.pending.pop()
		if p == nil {
			return nil
		}
		if err := c.resolveChain(p, nil); err != nil {
			return err
		}
	}
}

// resolveChain resolves one pending reference, following chains of
// still-unresolved reference targets. chain carries the absolute target
// URIs already being resolved in this call; revisiting one means the
// references can never bottom out in real data.
func (c *Cache) resolveChain(p *pendingRef, chain []string) error {
	// A reference two chains pointed through may already be resolved;
	// its slot then no longer holds a reference node and there is
	// nothing left to do.
	if _, ok := refNode(p.slot.get()); !ok {
		return nil
	}

	if len(chain) >= c.maxRefDepth {
		return &referrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(c.maxRefDepth),
			Actual:       int64(len(chain) + 1),
			Message:      "reference chain too deep",
		}
	}

	key := p.target.String()
	for _, seen := range chain {
		if seen == key {
			return &referrors.ReferenceError{
				Ref:     key,
				IsCycle: true,
				Chain:   append(chain, key),
			}
		}
	}
	chain = append(chain, key)

	e, ok := c.entries[uriutil.Normalize(p.target)]
	if !ok {
		return &referrors.ResourceNotFoundError{
			URI:     key,
			Message: "referenced document is not loaded",
		}
	}

	val, vslot, err := c.fragmentValue(e, p.target.Fragment)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", key, err)
	}

	if tnode, ok := refNode(val); ok {
		// The target is itself an unresolved reference: resolve it first,
		// then alias through it.
		tref, _ := tnode["$ref"].(string)
		turi, err := uriutil.Resolve(e.uri, tref)
		if err != nil {
			return &referrors.ReferenceError{Ref: tref, URI: e.key, Cause: err}
		}
		q := &pendingRef{slot: vslot, target: turi}
		if err := c.resolveChain(q, chain); err != nil {
			return err
		}
		val = q.slot.get()
	}

	p.slot.set(val)
	c.logger.Debug("reference resolved", "ref", key, "chain", len(chain))
	return nil
}

// refNode reports whether v is a still-unresolved reference node:
// an object carrying a string $ref.
func refNode(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	if _, ok := m["$ref"].(string); !ok {
		return nil, false
	}
	return m, true
}
