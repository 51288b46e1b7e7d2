// Package stream provides adapters that build and shape hit streams before
// they reach a selector.
//
// Selectors consume iter.Seq[model.Hit] and always run to the end of the
// stream. Early termination, filtering and tombstone handling are therefore
// done here, on the caller side:
//
//	deleted := roaring.BitmapOf(3, 17)
//	hits := stream.Limit(stream.ExcludeDocs(stream.FromSlice(all), deleted), 100_000)
//	out = sel.TopK(hits, out)
package stream

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/topk/model"
)

// FromSlice returns a stream over hits.
func FromSlice(hits []model.Hit) iter.Seq[model.Hit] {
	return func(yield func(model.Hit) bool) {
		for _, h := range hits {
			if !yield(h) {
				return
			}
		}
	}
}

// FromScores returns a stream of hits whose doc is the index of the score.
func FromScores(scores []model.Score) iter.Seq[model.Hit] {
	return func(yield func(model.Hit) bool) {
		for i, s := range scores {
			if !yield(model.Hit{Score: s, Doc: model.DocID(i)}) {
				return
			}
		}
	}
}

// Limit truncates seq after n hits. n <= 0 yields nothing.
func Limit(seq iter.Seq[model.Hit], n int) iter.Seq[model.Hit] {
	return func(yield func(model.Hit) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for h := range seq {
			if !yield(h) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Filter yields the hits of seq for which keep returns true.
func Filter(seq iter.Seq[model.Hit], keep func(model.Hit) bool) iter.Seq[model.Hit] {
	return func(yield func(model.Hit) bool) {
		for h := range seq {
			if keep(h) && !yield(h) {
				return
			}
		}
	}
}

// ExcludeDocs drops hits whose doc is contained in excluded, e.g. a
// tombstone set. A nil or empty bitmap passes seq through unchanged.
func ExcludeDocs(seq iter.Seq[model.Hit], excluded *roaring.Bitmap) iter.Seq[model.Hit] {
	if excluded == nil || excluded.IsEmpty() {
		return seq
	}
	return Filter(seq, func(h model.Hit) bool {
		return !excluded.Contains(uint32(h.Doc))
	})
}

// RestrictDocs yields only hits whose doc is contained in allowed, e.g. the
// result of a metadata pre-filter. A nil bitmap passes seq through; an
// empty one yields nothing.
func RestrictDocs(seq iter.Seq[model.Hit], allowed *roaring.Bitmap) iter.Seq[model.Hit] {
	if allowed == nil {
		return seq
	}
	return Filter(seq, func(h model.Hit) bool {
		return allowed.Contains(uint32(h.Doc))
	})
}

// Count increments *n for every hit seq yields.
func Count(seq iter.Seq[model.Hit], n *int) iter.Seq[model.Hit] {
	return func(yield func(model.Hit) bool) {
		for h := range seq {
			*n++
			if !yield(h) {
				return
			}
		}
	}
}
