package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/topk/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Shuffle permutes hits in place.
func (r *RNG) Shuffle(hits []model.Hit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(hits), func(i, j int) {
		hits[i], hits[j] = hits[j], hits[i]
	})
}

// ShuffledHits returns hits with scores 0..n-1 in random order.
// Doc equals score.
func (r *RNG) ShuffledHits(n int) []model.Hit {
	hits := AscendingHits(n)
	r.Shuffle(hits)
	return hits
}

// UniformHits returns n hits with scores drawn uniformly from [0, maxScore).
// Doc is the position in the slice.
func (r *RNG) UniformHits(n int, maxScore uint64) []model.Hit {
	r.mu.Lock()
	defer r.mu.Unlock()

	hits := make([]model.Hit, n)
	for i := range hits {
		hits[i] = model.Hit{
			Score: model.Score(r.rand.Uint64() % maxScore),
			Doc:   model.DocID(i),
		}
	}
	return hits
}

// AscendingHits returns hits with scores 0..n-1 in ascending order.
// Doc equals score.
func AscendingHits(n int) []model.Hit {
	hits := make([]model.Hit, n)
	for i := range hits {
		hits[i] = model.Hit{Score: model.Score(i), Doc: model.DocID(i)}
	}
	return hits
}

// DescendingHits returns hits with scores n-1..0 in descending order.
// Doc equals score.
func DescendingHits(n int) []model.Hit {
	hits := AscendingHits(n)
	slices.Reverse(hits)
	return hits
}

// ConstantHits returns n hits that all carry score; doc is the position.
func ConstantHits(n int, score model.Score) []model.Hit {
	hits := make([]model.Hit, n)
	for i := range hits {
		hits[i] = model.Hit{Score: score, Doc: model.DocID(i)}
	}
	return hits
}

// SortedTopK computes the exact top-k by fully sorting a copy of hits.
// The result is sorted by order (descending) and has length min(k, len(hits)).
func SortedTopK(hits []model.Hit, k int, order model.Order) []model.Hit {
	sorted := slices.Clone(hits)
	slices.SortStableFunc(sorted, order.Compare)
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// Scores extracts the scores of hits, sorted descending.
func Scores(hits []model.Hit) []model.Score {
	scores := make([]model.Score, len(hits))
	for i, h := range hits {
		scores[i] = h.Score
	}
	slices.Sort(scores)
	slices.Reverse(scores)
	return scores
}

// Docs extracts the docs of hits, sorted ascending.
func Docs(hits []model.Hit) []model.DocID {
	docs := make([]model.DocID, len(hits))
	for i, h := range hits {
		docs[i] = h.Doc
	}
	slices.Sort(docs)
	return docs
}
