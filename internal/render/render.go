// Package render serializes resolved document values to JSON. Resolution can
// produce values that contain themselves (a reference to an ancestor resolves
// to a shared container), which would send an encoder into infinite descent;
// render detects such values first and reports an error instead.
package render

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
)

// ErrCyclicValue is returned when a value cannot be serialized because a
// container appears among its own descendants.
var ErrCyclicValue = fmt.Errorf("render: value contains a cycle")

// JSON returns v encoded as compact JSON, or ErrCyclicValue when v contains
// a container that is its own descendant.
func JSON(v any) ([]byte, error) {
	if Cyclic(v) {
		return nil, ErrCyclicValue
	}
	return json.Marshal(v)
}

// JSONIndent is JSON with two-space indentation.
func JSONIndent(v any) ([]byte, error) {
	if Cyclic(v) {
		return nil, ErrCyclicValue
	}
	return json.MarshalIndent(v, "", "  ")
}

// Cyclic reports whether v contains a map or slice that appears among its own
// descendants. Sharing alone is fine; only ancestor repetition counts.
func Cyclic(v any) bool {
	return cyclicWalk(v, make(map[uintptr]struct{}))
}

// cyclicWalk tracks the identity of each container on the current descent
// path. Containers are identified by their header pointer via reflect: the
// map header for maps, the backing array for slices. An empty slice has no
// backing array and cannot participate in a cycle.
func cyclicWalk(v any, path map[uintptr]struct{}) bool {
	switch node := v.(type) {
	case map[string]any:
		key := reflect.ValueOf(node).Pointer()
		if _, on := path[key]; on {
			return true
		}
		path[key] = struct{}{}
		for _, child := range node {
			if cyclicWalk(child, path) {
				return true
			}
		}
		delete(path, key)

	case []any:
		if len(node) == 0 {
			return false
		}
		key := reflect.ValueOf(node).Pointer()
		if _, on := path[key]; on {
			return true
		}
		path[key] = struct{}{}
		for _, child := range node {
			if cyclicWalk(child, path) {
				return true
			}
		}
		delete(path, key)
	}
	return false
}
