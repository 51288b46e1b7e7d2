package topk

import (
	"context"
	"iter"

	"github.com/hupe1980/topk/internal/searcher"
	"github.com/hupe1980/topk/model"
)

// Compile time check to ensure BufferedSelector satisfies the Selector interface.
var _ Selector = (*BufferedSelector)(nil)

// BufferedSelector retains the k best hits in a flat buffer of capacity 2k.
//
// Hits that beat the current cutoff are appended without any ordering work.
// Once the buffer fills up, a quickselect pass moves the k best hits to the
// front, the k-th best becomes the new cutoff and the logical length drops
// back to k. On typical score distributions most hits fail the cutoff test
// in O(1), so the amortized cost per accepted hit is constant rather than
// logarithmic.
type BufferedSelector struct {
	buf   *searcher.HitBuffer
	order model.Order
	k     int
	obs   observer
}

// NewBufferedSelector creates a BufferedSelector retaining k hits.
func NewBufferedSelector(k int, optFns ...Option) (*BufferedSelector, error) {
	opts := applyOptions(optFns)
	if err := validateK(k); err != nil {
		opts.logger.LogConstruct(context.Background(), StrategyBuffered, k, err)
		return nil, err
	}

	opts.logger.LogConstruct(context.Background(), StrategyBuffered, k, nil)

	return &BufferedSelector{
		buf:   searcher.NewHitBuffer(2 * k),
		order: model.NewOrder(opts.ties),
		k:     k,
		obs:   newObserver(opts, StrategyBuffered, k),
	}, nil
}

// K implements Selector.
func (s *BufferedSelector) K() int { return s.k }

// Strategy implements Selector.
func (s *BufferedSelector) Strategy() Strategy { return StrategyBuffered }

// TopK implements Selector.
func (s *BufferedSelector) TopK(hits iter.Seq[Hit], dst []Hit) []Hit {
	started := s.obs.start()

	b := s.buf
	b.Reset()

	var (
		cutoff      Hit
		bounded     bool // cutoff is valid once the first compaction ran
		scanned     int
		accepted    int
		compactions int
	)
	for hit := range hits {
		scanned++
		if scanned <= s.k {
			b.Append(hit)
			continue
		}
		if bounded && !s.order.Better(hit, cutoff) {
			continue
		}
		b.Append(hit)
		accepted++
		if b.Full() {
			cutoff = s.compact()
			bounded = true
			compactions++
		}
	}

	if b.Len() > s.k {
		s.compact()
		compactions++
	}

	dst = append(dst[:0], b.Filled()...)

	s.obs.finish(started, SelectStats{
		Strategy:    StrategyBuffered,
		K:           s.k,
		Scanned:     scanned,
		Accepted:    accepted,
		Retained:    len(dst),
		Compactions: compactions,
	})
	return dst
}

// compact moves the k best buffered hits to the front, shrinks the logical
// length to k and returns the k-th best hit.
func (s *BufferedSelector) compact() Hit {
	searcher.Select(s.buf.Filled(), s.k-1, s.order)
	cutoff := s.buf.At(s.k - 1)
	s.buf.Truncate(s.k)
	return cutoff
}
