package topk

import (
	"context"
	"iter"

	"github.com/hupe1980/topk/internal/searcher"
	"github.com/hupe1980/topk/model"
)

// Compile time check to ensure HeapSelector satisfies the Selector interface.
var _ Selector = (*HeapSelector)(nil)

// HeapSelector retains the k best hits in a bounded heap whose root is the
// weakest retained hit.
//
// The first k hits seed the heap. Every later hit is compared against the
// root and discarded in O(1) unless it is better, in which case it replaces
// the root in O(log k). Ascending and random streams therefore cost close to
// O(n); a descending stream is the worst case at O(n log k).
type HeapSelector struct {
	heap *searcher.HitHeap
	k    int
	obs  observer
}

// NewHeapSelector creates a HeapSelector retaining k hits.
func NewHeapSelector(k int, optFns ...Option) (*HeapSelector, error) {
	opts := applyOptions(optFns)
	if err := validateK(k); err != nil {
		opts.logger.LogConstruct(context.Background(), StrategyHeap, k, err)
		return nil, err
	}

	opts.logger.LogConstruct(context.Background(), StrategyHeap, k, nil)

	return &HeapSelector{
		heap: searcher.NewHitHeap(k, model.NewOrder(opts.ties)),
		k:    k,
		obs:  newObserver(opts, StrategyHeap, k),
	}, nil
}

// K implements Selector.
func (s *HeapSelector) K() int { return s.k }

// Strategy implements Selector.
func (s *HeapSelector) Strategy() Strategy { return StrategyHeap }

// TopK implements Selector.
func (s *HeapSelector) TopK(hits iter.Seq[Hit], dst []Hit) []Hit {
	started := s.obs.start()

	h := s.heap
	h.Reset()
	order := h.Order()

	var (
		threshold Hit
		scanned   int
		accepted  int
	)
	for hit := range hits {
		scanned++
		if !h.Full() {
			h.Append(hit)
			if h.Full() {
				h.Init()
				threshold = h.Peek()
			}
			continue
		}
		if !order.Better(hit, threshold) {
			continue
		}
		h.ReplaceTop(hit)
		threshold = h.Peek()
		accepted++
	}

	dst = append(dst[:0], h.Hits()...)

	s.obs.finish(started, SelectStats{
		Strategy: StrategyHeap,
		K:        s.k,
		Scanned:  scanned,
		Accepted: accepted,
		Retained: len(dst),
	})
	return dst
}
