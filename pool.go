package topk

import (
	"iter"
	"sync"
)

// Pool hands out selectors of one strategy and k to concurrent callers.
//
// A selector is owned by exactly one goroutine between Get and Put, which
// keeps the no-allocation reuse of a long-lived selector available to
// request handlers running in parallel.
type Pool struct {
	strategy Strategy
	k        int
	pool     sync.Pool
}

// NewPool creates a Pool of selectors. Options apply to every selector the
// pool creates.
func NewPool(strategy Strategy, k int, optFns ...Option) (*Pool, error) {
	first, err := New(strategy, k, optFns...)
	if err != nil {
		return nil, err
	}

	p := &Pool{
		strategy: strategy,
		k:        k,
	}
	p.pool.New = func() any {
		// Arguments were validated above, construction cannot fail.
		s, _ := New(strategy, k, optFns...)
		return s
	}
	p.pool.Put(first)
	return p, nil
}

// K returns the retention count of pooled selectors.
func (p *Pool) K() int { return p.k }

// Strategy returns the strategy of pooled selectors.
func (p *Pool) Strategy() Strategy { return p.strategy }

// Get returns a selector from the pool.
func (p *Pool) Get() Selector {
	return p.pool.Get().(Selector)
}

// Put returns a selector to the pool. Selectors with a different strategy
// or k are dropped.
func (p *Pool) Put(s Selector) {
	if s == nil || s.K() != p.k || s.Strategy() != p.strategy {
		return
	}
	p.pool.Put(s)
}

// TopK runs a single selection on a pooled selector.
// It is safe for concurrent use.
func (p *Pool) TopK(hits iter.Seq[Hit], dst []Hit) []Hit {
	s := p.Get()
	defer p.Put(s)
	return s.TopK(hits, dst)
}
