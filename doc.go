// Package topk retrieves the k highest-scoring hits from a stream without
// sorting it.
//
// Top-k selection is the last step of most search and ranking pipelines:
// millions of candidate matches are reduced to a handful of results per
// query. Package topk provides two reusable selectors behind one interface
// and two single-shot reference functions.
//
// # Quick Start
//
//	sel, _ := topk.New(topk.StrategyBuffered, 10)
//	out := make([]topk.Hit, 0, 10)
//
//	for query := range queries {
//	    out = sel.TopK(query.Hits(), out) // no allocation per query
//	    slices.SortFunc(out, topk.Order{}.Compare)
//	    ...
//	}
//
// # Strategies
//
//	// 1. HEAP: bounded 4-ary heap of the k best hits.
//	//    O(n) for ascending/random streams, O(n log k) worst case.
//	sel, _ := topk.NewHeapSelector(k)
//
//	// 2. BUFFERED: 2k buffer compacted with quickselect when full.
//	//    No per-hit ordering work, periodic O(k) partition.
//	sel, _ := topk.NewBufferedSelector(k)
//
// Both return exactly min(k, n) hits in unspecified order. A stream shorter
// than k yields all its hits; results are never padded.
//
// # Reference Functions
//
// HeapTopK and BufferedTopK allocate per call and return a result sorted by
// descending score. They are meant as correctness oracles and for one-off
// use.
//
// # Ties
//
// By default only the score is compared, so which of several equally scored
// hits is retained is arbitrary. WithTieBreak(TiesByDocAsc) makes the lower
// document identifier win and the result deterministic.
//
// # Concurrency
//
// Selectors mutate their scratch storage in place and are not safe for
// concurrent use. Pool hands out exclusively owned selectors to concurrent
// callers.
package topk
