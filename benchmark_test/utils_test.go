package benchmark_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/hupe1980/topk"
	"github.com/hupe1980/topk/testutil"
)

const streamLen = 1_000_000

// ks spans a single best match up to a large re-ranking pool.
var ks = []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048}

// Fixtures are built once per process; generating a shuffled million-hit
// stream costs more than most measured runs.
var (
	ascendingHits  = testutil.AscendingHits(streamLen)
	descendingHits = testutil.DescendingHits(streamLen)
	shuffledHits   = testutil.NewRNG(42).ShuffledHits(streamLen)
	uniformHits    = testutil.NewRNG(42).UniformHits(streamLen, 1000)
)

var distributions = []struct {
	name string
	hits []topk.Hit
}{
	{"shuffled", shuffledHits},
	{"sorted", ascendingHits},
	{"reversed", descendingHits},
	{"uniform1k", uniformHits},
}

// forEachCase runs fn for every distribution and k, with GC settled before
// the measurement starts.
func forEachCase(b *testing.B, fn func(b *testing.B, hits []topk.Hit, k int)) {
	for _, d := range distributions {
		for _, k := range ks {
			b.Run(fmt.Sprintf("%s/k=%d", d.name, k), func(b *testing.B) {
				runtime.GC()
				b.ReportAllocs()
				b.SetBytes(int64(len(d.hits)) * 16)
				b.ResetTimer()
				fn(b, d.hits, k)
			})
		}
	}
}
