// Package searcher provides the reusable building blocks of top-k selection.
//
// All types own their storage and are reset, not reallocated, between
// queries:
//   - HitHeap: fixed-capacity 4-ary heap with the weakest hit at the root
//   - HitBuffer: flat buffer with a tracked logical length
//   - Select: in-place introselect over a hit slice
//
// None of the types are safe for concurrent use.
package searcher
