package searcher

import (
	"fmt"

	"github.com/hupe1980/topk/model"
)

// HitBuffer is a fixed-capacity scratch buffer with an explicitly tracked
// logical length. Slots at or beyond Len() are never exposed.
//
// HitBuffer is NOT thread-safe.
type HitBuffer struct {
	slots []model.Hit
	n     int
}

// NewHitBuffer allocates a buffer with the given capacity.
func NewHitBuffer(capacity int) *HitBuffer {
	return &HitBuffer{
		slots: make([]model.Hit, capacity),
	}
}

// Reset sets the logical length to zero. Storage is kept.
func (b *HitBuffer) Reset() {
	b.n = 0
}

// Len returns the logical length.
func (b *HitBuffer) Len() int { return b.n }

// Cap returns the allocated capacity.
func (b *HitBuffer) Cap() int { return len(b.slots) }

// Full reports whether the logical length reached the capacity.
func (b *HitBuffer) Full() bool { return b.n == len(b.slots) }

// Append stores h in the next free slot.
// Panics if the buffer is full.
func (b *HitBuffer) Append(h model.Hit) {
	if b.n == len(b.slots) {
		panic(fmt.Sprintf("searcher: append to full hit buffer (cap %d)", len(b.slots)))
	}
	b.slots[b.n] = h
	b.n++
}

// At returns the hit in slot i. Panics if i is outside the logical length.
func (b *HitBuffer) At(i int) model.Hit {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("searcher: index %d out of range [0:%d]", i, b.n))
	}
	return b.slots[i]
}

// Truncate shrinks the logical length to n.
// Panics if n is negative or larger than the current length.
func (b *HitBuffer) Truncate(n int) {
	if n < 0 || n > b.n {
		panic(fmt.Sprintf("searcher: truncate to %d with length %d", n, b.n))
	}
	b.n = n
}

// Filled returns the filled prefix of the buffer.
// The slice aliases internal storage and is valid until the next mutation.
func (b *HitBuffer) Filled() []model.Hit {
	return b.slots[:b.n:b.n]
}
