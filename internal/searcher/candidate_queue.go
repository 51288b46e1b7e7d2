package searcher

import "github.com/hupe1980/topk/model"

// heapArity is the fan-out of HitHeap. A 4-ary heap halves the depth of a
// binary heap and keeps siblings in one cache line.
const heapArity = 4

// HitHeap is a fixed-capacity heap of hits.
// It is used for collecting top-k results: the heap is ordered "worst first",
// so the root is always the weakest retained hit and the eviction candidate.
type HitHeap struct {
	hits  []model.Hit
	order model.Order
}

// NewHitHeap creates a new HitHeap holding at most capacity hits.
func NewHitHeap(capacity int, order model.Order) *HitHeap {
	return &HitHeap{
		hits:  make([]model.Hit, 0, capacity),
		order: order,
	}
}

// Reset clears the heap for reuse. Capacity is kept.
func (h *HitHeap) Reset() {
	h.hits = h.hits[:0]
}

// Order returns the comparator the heap is keyed by.
func (h *HitHeap) Order() model.Order {
	return h.order
}

func (h *HitHeap) Len() int { return len(h.hits) }

// Cap returns the fixed capacity of the heap.
func (h *HitHeap) Cap() int { return cap(h.hits) }

// Full reports whether the heap holds Cap() hits.
func (h *HitHeap) Full() bool { return len(h.hits) == cap(h.hits) }

// Append adds x without restoring the heap invariant.
// Call Init once all raw appends are done.
func (h *HitHeap) Append(x model.Hit) {
	if len(h.hits) == cap(h.hits) {
		panic("searcher: append to full hit heap")
	}
	h.hits = append(h.hits, x)
}

// Init establishes the heap invariant over the current contents in O(n).
func (h *HitHeap) Init() {
	n := len(h.hits)
	if n < 2 {
		return
	}
	for i := (n - 2) / heapArity; i >= 0; i-- {
		h.down(i, n)
	}
}

// Push inserts x and restores the heap invariant.
func (h *HitHeap) Push(x model.Hit) {
	h.Append(x)
	h.up(len(h.hits) - 1)
}

// Pop removes and returns the weakest hit.
// Panics if the heap is empty - caller should check Len() > 0.
func (h *HitHeap) Pop() model.Hit {
	n := len(h.hits) - 1
	h.hits[0], h.hits[n] = h.hits[n], h.hits[0]
	h.down(0, n)
	x := h.hits[n]
	h.hits = h.hits[:n]
	return x
}

// Peek returns the weakest hit without removing it.
// Panics if the heap is empty - caller should check Len() > 0.
func (h *HitHeap) Peek() model.Hit {
	return h.hits[0]
}

// ReplaceTop replaces the weakest hit with x and restores the heap invariant.
// Panics if the heap is empty - caller should check Len() > 0.
func (h *HitHeap) ReplaceTop(x model.Hit) {
	h.hits[0] = x
	h.down(0, len(h.hits))
}

// Hits returns the heap contents in heap order.
// The slice aliases internal storage and is valid until the next mutation.
func (h *HitHeap) Hits() []model.Hit {
	return h.hits
}

// up moves element at j up the heap with a single final write.
func (h *HitHeap) up(j int) {
	item := h.hits[j]
	for j > 0 {
		i := (j - 1) / heapArity
		if !h.order.Worse(item, h.hits[i]) {
			break
		}
		h.hits[j] = h.hits[i]
		j = i
	}
	h.hits[j] = item
}

// down moves element at i0 down the heap with a single final write.
// First child = 4*i+1, up to 4 children to compare.
func (h *HitHeap) down(i0, n int) {
	i := i0
	item := h.hits[i]
	for {
		firstChild := heapArity*i + 1
		if firstChild >= n {
			break
		}

		// Find the weakest child among up to 4 children
		worst := firstChild
		lastChild := min(firstChild+heapArity, n)
		for c := firstChild + 1; c < lastChild; c++ {
			if h.order.Worse(h.hits[c], h.hits[worst]) {
				worst = c
			}
		}

		if !h.order.Worse(h.hits[worst], item) {
			break
		}
		h.hits[i] = h.hits[worst]
		i = worst
	}
	h.hits[i] = item
}
