// Package docs implements the jsonref document cache and dereferencing
// engine.
//
// A [Cache] loads documents by URI through a pluggable loader, collects
// every $ref and $id they contain, recursively loads all referenced
// documents, and then resolves the collected references in priority order:
// references with shallower pointer fragments first, so that a reference
// pointing through another reference has the best chance of finding its
// intermediate already resolved. This ordering is a heuristic, not a
// guarantee; a pointer-through-pointer that the ordering cannot untangle
// fails to resolve.
//
// Resolution replaces each reference node with the value it points at.
// Object and array targets are shared, so every reference to the same
// target aliases one underlying value; scalar targets are copied by Go
// value semantics. Pure reference-to-reference loops fail with a
// reference-cycle error; loops that pass through real values resolve into
// cyclic in-memory structures, which is why the original source text of
// every document is retained and available via [Cache.Source].
//
// A Cache is not goroutine-safe.
package docs
