package topk_test

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/topk"
	"github.com/hupe1980/topk/stream"
)

func Example() {
	sel, err := topk.New(topk.StrategyBuffered, 2)
	if err != nil {
		panic(err)
	}

	hits := []topk.Hit{{Score: 5, Doc: 0}, {Score: 1, Doc: 1}, {Score: 9, Doc: 2}, {Score: 3, Doc: 3}}

	out := make([]topk.Hit, 0, sel.K())
	out = sel.TopK(slices.Values(hits), out)

	// Result order is unspecified; sort for presentation.
	slices.SortFunc(out, topk.Order{}.Compare)
	fmt.Println(out)
	// Output: [Hit(2:9) Hit(0:5)]
}

func ExampleHeapTopK() {
	out, err := topk.HeapTopK(stream.FromScores([]topk.Score{7, 3}), 5)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: [Hit(0:7) Hit(1:3)]
}

func ExampleWithTieBreak() {
	sel, err := topk.NewHeapSelector(2, topk.WithTieBreak(topk.TiesByDocAsc))
	if err != nil {
		panic(err)
	}

	hits := []topk.Hit{{Score: 4, Doc: 9}, {Score: 4, Doc: 3}, {Score: 4, Doc: 6}}
	out := sel.TopK(slices.Values(hits), nil)

	slices.SortFunc(out, topk.NewOrder(topk.TiesByDocAsc).Compare)
	fmt.Println(out)
	// Output: [Hit(3:4) Hit(6:4)]
}

func Example_excludeDeleted() {
	sel, err := topk.NewBufferedSelector(3)
	if err != nil {
		panic(err)
	}

	scores := []topk.Score{10, 80, 30, 90, 50, 70}
	deleted := roaring.BitmapOf(1, 3)

	out := sel.TopK(stream.ExcludeDocs(stream.FromScores(scores), deleted), nil)

	slices.SortFunc(out, topk.Order{}.Compare)
	fmt.Println(out)
	// Output: [Hit(5:70) Hit(4:50) Hit(2:30)]
}
