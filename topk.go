package topk

import (
	"context"
	"fmt"
	"iter"

	"github.com/hupe1980/topk/model"
)

// Hit is a scored reference to a document.
type Hit = model.Hit

// Score is the ranking score of a hit. Higher scores are better.
type Score = model.Score

// DocID identifies the document a hit refers to.
type DocID = model.DocID

// TieBreak names the policy used to rank hits with equal scores.
type TieBreak = model.TieBreak

// Order is the retain-largest-by-score comparator.
type Order = model.Order

const (
	// TiesUnspecified consults the score only; equal scores are unordered.
	TiesUnspecified = model.TiesUnspecified
	// TiesByDocAsc breaks equal scores by ascending document identifier.
	TiesByDocAsc = model.TiesByDocAsc
)

// NewOrder returns an Order using the given tie policy.
func NewOrder(ties TieBreak) Order {
	return model.NewOrder(ties)
}

// Selector retains the k best hits of a stream.
//
// A Selector owns fixed scratch storage sized from k at construction and
// reuses it across calls, so a long-lived selector paired with a reusable
// output slice performs no allocation per query.
//
// Selectors are NOT thread-safe. Use one per goroutine, or a Pool.
type Selector interface {
	// K returns the retention count.
	K() int

	// Strategy returns the selection strategy implemented.
	Strategy() Strategy

	// TopK consumes hits in a single pass, truncates dst to length zero,
	// appends the min(k, n) best hits of the stream (n being the stream
	// length) and returns the resulting slice. The order of the returned
	// hits is unspecified; sort afterwards if needed.
	//
	// A stream shorter than k yields all of its hits; nothing is padded.
	// Each call starts from a clean state; no hit of a previous call can
	// appear in the result.
	TopK(hits iter.Seq[Hit], dst []Hit) []Hit
}

// Strategy selects a Selector implementation.
type Strategy uint8

const (
	// StrategyHeap keeps a bounded heap of the k best hits.
	StrategyHeap Strategy = iota + 1
	// StrategyBuffered appends candidates to a 2k buffer and periodically
	// partitions it with quickselect.
	StrategyBuffered
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyBuffered:
		return "buffered"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy returns the Strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "heap":
		return StrategyHeap, nil
	case "buffered":
		return StrategyBuffered, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Strategies returns all available strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyHeap, StrategyBuffered}
}

// New creates a Selector of the given strategy retaining k hits.
func New(strategy Strategy, k int, optFns ...Option) (Selector, error) {
	switch strategy {
	case StrategyHeap:
		return NewHeapSelector(k, optFns...)
	case StrategyBuffered:
		return NewBufferedSelector(k, optFns...)
	default:
		err := fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
		applyOptions(optFns).logger.LogConstruct(context.Background(), strategy, k, err)
		return nil, err
	}
}
