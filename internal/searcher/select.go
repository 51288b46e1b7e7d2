package searcher

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/hupe1980/topk/model"
)

// insertionThreshold is the range length below which Select finishes with
// an insertion sort instead of partitioning further.
const insertionThreshold = 12

// Select partially orders hits in place so that hits[nth] holds the hit that
// would occupy position nth in a descending sort under order. Every hit
// before nth is not worse than hits[nth] and every hit after it is not
// better.
//
// Select runs in expected linear time. Pivots are median-of-three and the
// partition is three-way, so runs of equal scores shrink the range instead of
// degrading it. After 2*log2(n) partition rounds the remaining range is
// sorted outright, bounding the worst case at O(n log n).
//
// Panics if nth is outside [0, len(hits)).
func Select(hits []model.Hit, nth int, order model.Order) {
	if nth < 0 || nth >= len(hits) {
		panic(fmt.Sprintf("searcher: select index %d out of range [0:%d]", nth, len(hits)))
	}

	lo, hi := 0, len(hits)
	budget := 2 * bits.Len(uint(len(hits)))
	for hi-lo > insertionThreshold {
		if budget == 0 {
			slices.SortFunc(hits[lo:hi], order.Compare)
			return
		}
		budget--

		pivot := medianOfThree(hits[lo], hits[lo+(hi-lo)/2], hits[hi-1], order)
		lt, gt := partition3(hits, lo, hi, pivot, order)

		// [lo,lt) better than pivot, [lt,gt) tied with it, [gt,hi) worse.
		switch {
		case nth < lt:
			hi = lt
		case nth >= gt:
			lo = gt
		default:
			return
		}
	}
	insertionSort(hits[lo:hi], order)
}

func medianOfThree(a, b, c model.Hit, order model.Order) model.Hit {
	if order.Better(b, a) {
		a, b = b, a
	}
	if order.Better(c, b) {
		b = c
		if order.Better(b, a) {
			b = a
		}
	}
	return b
}

// partition3 is a Dutch national flag partition of hits[lo:hi] around pivot.
func partition3(hits []model.Hit, lo, hi int, pivot model.Hit, order model.Order) (lt, gt int) {
	lt, gt = lo, hi
	i := lo
	for i < gt {
		switch {
		case order.Better(hits[i], pivot):
			hits[lt], hits[i] = hits[i], hits[lt]
			lt++
			i++
		case order.Better(pivot, hits[i]):
			gt--
			hits[i], hits[gt] = hits[gt], hits[i]
		default:
			i++
		}
	}
	return lt, gt
}

func insertionSort(hits []model.Hit, order model.Order) {
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && order.Better(hits[j], hits[j-1]); j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
}
