package docs

import (
	"container/heap"
	"net/url"
)

// pendingRef is a reference discovered by collection and awaiting resolution.
type pendingRef struct {
	// slot addresses the reference node in its document; its $ref has
	// already been rewritten to an absolute URI
	slot slot
	// target is the absolute URI the reference points at
	target *url.URL
	// pointerDepth is the number of non-empty segments in target's fragment
	pointerDepth int
	// discoveryDepth is the nesting depth at which node was found
	discoveryDepth int
}

// refQueue orders pending references so that shallower pointer fragments
// resolve before deeper ones, and for equal pointer depth, references
// discovered at shallower document nesting resolve first. Resolving shallow
// pointers first maximizes the chance that a reference pointing through
// another reference finds its intermediate already resolved. Ties beyond
// discovery depth are unordered.
type refQueue struct {
	items []*pendingRef
}

// Len implements heap.Interface.
func (q *refQueue) Len() int { return len(q.items) }

// Less implements heap.Interface.
func (q *refQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.pointerDepth != b.pointerDepth {
		return a.pointerDepth < b.pointerDepth
	}
	return a.discoveryDepth < b.discoveryDepth
}

// Swap implements heap.Interface.
func (q *refQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push implements heap.Interface.
func (q *refQueue) Push(x any) { q.items = append(q.items, x.(*pendingRef)) }

// Pop implements heap.Interface.
func (q *refQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// push queues a pending reference. Insertion may interleave with pops:
// collection of one document queues references while another document's
// are still pending.
func (q *refQueue) push(p *pendingRef) {
	heap.Push(q, p)
}

// pop removes and returns the highest-priority pending reference,
// or nil when none remain.
func (q *refQueue) pop() *pendingRef {
	if len(q.items) == 0 {
		return nil
	}
	return heap.Pop(q).(*pendingRef)
}

// reset drops all pending references.
func (q *refQueue) reset() {
	q.items = q.items[:0]
}
