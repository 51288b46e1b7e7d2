package stream

import (
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/topk/model"
)

func hitsOf(scores ...model.Score) []model.Hit {
	hits := make([]model.Hit, len(scores))
	for i, s := range scores {
		hits[i] = model.Hit{Score: s, Doc: model.DocID(i)}
	}
	return hits
}

func TestFromSlice(t *testing.T) {
	hits := hitsOf(5, 1, 9)
	assert.Equal(t, hits, slices.Collect(FromSlice(hits)))
	assert.Empty(t, slices.Collect(FromSlice(nil)))
}

func TestFromScores(t *testing.T) {
	got := slices.Collect(FromScores([]model.Score{5, 1, 9}))
	assert.Equal(t, hitsOf(5, 1, 9), got)
}

func TestLimit(t *testing.T) {
	hits := hitsOf(1, 2, 3, 4, 5)

	assert.Equal(t, hits[:3], slices.Collect(Limit(FromSlice(hits), 3)))
	assert.Equal(t, hits, slices.Collect(Limit(FromSlice(hits), 10)))
	assert.Empty(t, slices.Collect(Limit(FromSlice(hits), 0)))

	// Limit must stop pulling from the source once satisfied.
	pulled := 0
	_ = slices.Collect(Limit(Count(FromSlice(hits), &pulled), 2))
	assert.Equal(t, 2, pulled)
}

func TestFilter(t *testing.T) {
	hits := hitsOf(1, 2, 3, 4, 5)
	got := slices.Collect(Filter(FromSlice(hits), func(h model.Hit) bool { return h.Score%2 == 1 }))
	assert.Equal(t, []model.Hit{hits[0], hits[2], hits[4]}, got)
}

func TestExcludeDocs(t *testing.T) {
	hits := hitsOf(10, 20, 30, 40)

	got := slices.Collect(ExcludeDocs(FromSlice(hits), roaring.BitmapOf(1, 3)))
	assert.Equal(t, []model.Hit{hits[0], hits[2]}, got)

	assert.Equal(t, hits, slices.Collect(ExcludeDocs(FromSlice(hits), nil)))
	assert.Equal(t, hits, slices.Collect(ExcludeDocs(FromSlice(hits), roaring.New())))
}

func TestRestrictDocs(t *testing.T) {
	hits := hitsOf(10, 20, 30, 40)

	got := slices.Collect(RestrictDocs(FromSlice(hits), roaring.BitmapOf(1, 3)))
	assert.Equal(t, []model.Hit{hits[1], hits[3]}, got)

	assert.Equal(t, hits, slices.Collect(RestrictDocs(FromSlice(hits), nil)))
	assert.Empty(t, slices.Collect(RestrictDocs(FromSlice(hits), roaring.New())))
}

func TestCount(t *testing.T) {
	n := 0
	_ = slices.Collect(Count(FromSlice(hitsOf(1, 2, 3)), &n))
	assert.Equal(t, 3, n)
}
