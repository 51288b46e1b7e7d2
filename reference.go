package topk

import (
	"container/heap"
	"iter"
	"slices"

	"github.com/hupe1980/topk/internal/searcher"
	"github.com/hupe1980/topk/model"
)

// refCapacityHint bounds the up-front allocation of the reference functions
// so a large k over a short stream does not reserve k slots.
const refCapacityHint = 4096

// HeapTopK returns the min(k, n) best hits of the stream, sorted by
// descending score. Equal scores are ordered arbitrarily.
//
// It is the single-shot form of HeapSelector: storage is allocated per
// call. It is built on container/heap rather than the selector's own heap,
// which makes it usable as an independent oracle in tests.
func HeapTopK(hits iter.Seq[Hit], k int) ([]Hit, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}

	h := make(minScoreHeap, 0, min(k, refCapacityHint))

	var threshold Score
	for hit := range hits {
		if len(h) < k {
			heap.Push(&h, hit)
			if len(h) == k {
				threshold = h[0].Score
			}
			continue
		}
		if hit.Score <= threshold {
			continue
		}
		h[0] = hit
		heap.Fix(&h, 0)
		threshold = h[0].Score
	}

	out := []Hit(h)
	slices.SortFunc(out, model.Order{}.Compare)
	return out, nil
}

// BufferedTopK returns the min(k, n) best hits of the stream, sorted by
// descending score. Equal scores are ordered arbitrarily.
//
// It is the single-shot form of BufferedSelector: storage is allocated per
// call.
func BufferedTopK(hits iter.Seq[Hit], k int) ([]Hit, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}

	var order model.Order
	buf := make([]Hit, 0, min(2*k, refCapacityHint))

	var (
		threshold Score
		bounded   bool
		seen      int
	)
	for hit := range hits {
		seen++
		if seen > k && bounded && hit.Score <= threshold {
			continue
		}
		buf = append(buf, hit)
		if len(buf) == 2*k {
			searcher.Select(buf, k-1, order)
			threshold = buf[k-1].Score
			bounded = true
			buf = buf[:k]
		}
	}

	slices.SortFunc(buf, order.Compare)
	if len(buf) > k {
		buf = buf[:k]
	}
	return buf, nil
}

// minScoreHeap implements heap.Interface with the lowest score at the root.
type minScoreHeap []Hit

func (h minScoreHeap) Len() int           { return len(h) }
func (h minScoreHeap) Less(i, j int) bool { return h[i].Score < h[j].Score }
func (h minScoreHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minScoreHeap) Push(x any) { *h = append(*h, x.(Hit)) }

func (h *minScoreHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
