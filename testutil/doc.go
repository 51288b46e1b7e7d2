// Package testutil provides testing utilities for topk.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating hit streams and computing exact
// top-k results to compare selectors against.
//
// # Hit Generation
//
//	rng := testutil.NewRNG(seed)
//	hits := rng.ShuffledHits(1_000_000)     // scores 0..n-1, random order
//	hits := testutil.AscendingHits(n)       // sorted stream
//	hits := testutil.DescendingHits(n)      // worst case for the heap
//	hits := testutil.ConstantHits(n, 7)     // all ties
//
// # Ground Truth
//
//	want := testutil.SortedTopK(hits, k, model.Order{})
//	assert.Equal(t, testutil.Scores(want), testutil.Scores(got))
package testutil
