// Package bench provides reproducible micro-benchmarks for istr. Run via:
//
//	go test ./bench -bench=. -benchmem -cpu 1,4,16
//
// We measure:
//  1. Intern          — InternSkipLocal cycling over the dataset (the first
//     pass over a key takes the arena + shard insert path; later
//     passes are shard hits)
//  2. InternRepeat     — interning already-known strings (local cache hit)
//  3. InternParallel    — highly concurrent repeat-interning (b.RunParallel)
//  4. Lookup           — read-only resolution of already-interned strings
//
// NOTE: Correctness tests live in pkg/istr; this file is only for
// performance.
//
// © 2025 arena-cache authors. MIT License.
package bench

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"

	"github.com/arcanehash/istr/pkg/istr"
)

const keys = 1 << 16 // 65536 distinct words for dataset

// ds is the shared word dataset reused across benchmarks to avoid
// reallocating large slices per-benchmark.
var ds = func() [][]byte {
	rnd := rand.New(rand.NewSource(42))
	arr := make([][]byte, keys)
	for i := range arr {
		arr[i] = []byte(fmt.Sprintf("word-%d-%x", i, rnd.Uint32()))
	}
	return arr
}()

func init() {
	runtime.GOMAXPROCS(runtime.NumCPU())
}

func BenchmarkIntern(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := ds[i&(keys-1)]
		istr.InternSkipLocal(key)
	}
}

func BenchmarkInternRepeat(b *testing.B) {
	for _, k := range ds {
		istr.Intern(k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := ds[i&(keys-1)]
		istr.Intern(key)
	}
}

func BenchmarkInternParallel(b *testing.B) {
	for _, k := range ds {
		istr.Intern(k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		idx := rand.Intn(keys)
		for pb.Next() {
			idx = (idx + 1) & (keys - 1)
			istr.Intern(ds[idx])
		}
	})
}

func BenchmarkLookup(b *testing.B) {
	handles := make([]istr.Handle, keys)
	for i, k := range ds {
		handles[i] = istr.Intern(k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := ds[i&(keys-1)]
		if _, ok := istr.Lookup(key); !ok {
			b.Fatalf("expected %q to already be interned", key)
		}
	}
}
