package docs

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pending(pointerDepth, discoveryDepth int) *pendingRef {
	return &pendingRef{
		target:         &url.URL{Scheme: "file", Path: "/d.json"},
		pointerDepth:   pointerDepth,
		discoveryDepth: discoveryDepth,
	}
}

func TestRefQueueOrdering(t *testing.T) {
	q := &refQueue{}
	q.push(pending(2, 1))
	q.push(pending(0, 5))
	q.push(pending(1, 3))
	q.push(pending(1, 1))

	// Shallower pointer fragments first; equal pointer depth orders by
	// shallower discovery.
	got := [][2]int{}
	for p := q.pop(); p != nil; p = q.pop() {
		got = append(got, [2]int{p.pointerDepth, p.discoveryDepth})
	}
	assert.Equal(t, [][2]int{{0, 5}, {1, 1}, {1, 3}, {2, 1}}, got)
}

func TestRefQueueInterleavedPushPop(t *testing.T) {
	q := &refQueue{}
	q.push(pending(3, 0))
	q.push(pending(1, 0))

	p := q.pop()
	assert.Equal(t, 1, p.pointerDepth)

	// New references discovered while earlier ones are pending.
	q.push(pending(0, 0))
	q.push(pending(2, 0))

	assert.Equal(t, 0, q.pop().pointerDepth)
	assert.Equal(t, 2, q.pop().pointerDepth)
	assert.Equal(t, 3, q.pop().pointerDepth)
	assert.Nil(t, q.pop())
}

func TestRefQueueReset(t *testing.T) {
	q := &refQueue{}
	q.push(pending(1, 1))
	q.push(pending(2, 2))
	q.reset()
	assert.Nil(t, q.pop())
	assert.Equal(t, 0, q.Len())
}
