package topk

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topk/testutil"
)

var referenceFuncs = map[string]func(iter.Seq[Hit], int) ([]Hit, error){
	"heap":     HeapTopK,
	"buffered": BufferedTopK,
}

func TestReferenceSorted(t *testing.T) {
	rng := testutil.NewRNG(4711)
	hits := rng.ShuffledHits(100)

	for name, fn := range referenceFuncs {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				rng.Shuffle(hits)

				out, err := fn(slices.Values(hits), 10)
				require.NoError(t, err)

				require.Len(t, out, 10)
				for j, h := range out {
					assert.Equal(t, Score(99-j), h.Score)
				}
			}
		})
	}
}

func TestReferenceSmallExample(t *testing.T) {
	for name, fn := range referenceFuncs {
		t.Run(name, func(t *testing.T) {
			out, err := fn(slices.Values(hitsOf(5, 1, 9, 3)), 2)
			require.NoError(t, err)
			assert.Equal(t, []Hit{{Score: 9, Doc: 2}, {Score: 5, Doc: 0}}, out)
		})
	}
}

func TestReferenceShortStream(t *testing.T) {
	for name, fn := range referenceFuncs {
		t.Run(name, func(t *testing.T) {
			out, err := fn(slices.Values(hitsOf(7, 3)), 5)
			require.NoError(t, err)
			assert.Equal(t, []Hit{{Score: 7, Doc: 0}, {Score: 3, Doc: 1}}, out)

			out, err = fn(slices.Values([]Hit(nil)), 5)
			require.NoError(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestReferenceAgreesWithSort(t *testing.T) {
	rng := testutil.NewRNG(1234)

	inputs := map[string][]Hit{
		"descending": testutil.DescendingHits(3000),
		"uniform":    rng.UniformHits(3000, 30),
		"constant":   testutil.ConstantHits(3000, 0),
	}

	for name, hits := range inputs {
		for _, k := range []int{1, 7, 64, 2999, 3000, 4000} {
			for fnName, fn := range referenceFuncs {
				t.Run(fmt.Sprintf("%s/%s/k=%d", fnName, name, k), func(t *testing.T) {
					want := testutil.SortedTopK(hits, k, Order{})

					out, err := fn(slices.Values(hits), k)
					require.NoError(t, err)

					require.Len(t, out, len(want))
					got := make([]Score, len(out))
					for i, h := range out {
						got[i] = h.Score
					}
					assert.Equal(t, testutil.Scores(want), got, "result must already be sorted")
				})
			}
		}
	}
}

func TestReferenceInvalidK(t *testing.T) {
	for name, fn := range referenceFuncs {
		t.Run(name, func(t *testing.T) {
			_, err := fn(slices.Values(hitsOf(1)), 0)
			assert.ErrorIs(t, err, ErrInvalidK)
		})
	}
}

func TestSelectorsMatchReference(t *testing.T) {
	rng := testutil.NewRNG(8)
	hits := rng.UniformHits(20_000, 1_000)

	forEachStrategy(t, func(t *testing.T, s Strategy) {
		for _, k := range []int{1, 10, 100, 1000} {
			want, err := HeapTopK(slices.Values(hits), k)
			require.NoError(t, err)

			out := newSelector(t, s, k).TopK(slices.Values(hits), nil)
			slices.SortFunc(out, Order{}.Compare)

			got := make([]Score, len(out))
			wantScores := make([]Score, len(want))
			for i := range out {
				got[i] = out[i].Score
				wantScores[i] = want[i].Score
			}
			assert.Equal(t, wantScores, got, "k=%d", k)
		}
	})
}
