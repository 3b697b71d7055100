//go:build istr_hash_murmur3

package hashfn

import "github.com/spaolacci/murmur3"

// EmptyHash is murmur3.Sum64(nil) with seed 0: MurmurHash3_x64_128 of the
// empty input avalanches a zero state to zero, so the low 64 bits are 0.
const EmptyHash uint64 = 0

func hash(b []byte) uint64 {
	return murmur3.Sum64(b)
}
