// Package model defines the core types shared by the selectors.
//
// # Identity Types
//
//   - Score: Ranking score of a hit (uint64, higher is better)
//   - DocID: Document identifier (uint32)
//   - Hit: A (Score, DocID) pair flowing through the pipeline
//
// # Ordering
//
// Order is the "retain largest by score" comparator. It is independent of
// any container, so heaps and selection routines share exactly one notion
// of "better". Equal scores are resolved by an explicit TieBreak policy:
//
//	ord := model.NewOrder(model.TiesByDocAsc)
//	ord.Better(model.Hit{Score: 7, Doc: 1}, model.Hit{Score: 7, Doc: 2}) // true
package model
