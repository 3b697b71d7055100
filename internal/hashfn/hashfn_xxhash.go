//go:build !istr_hash_murmur3

package hashfn

import "github.com/cespare/xxhash/v2"

// EmptyHash is xxhash.Sum64(nil): the XXH64 digest of the empty byte
// string with the library's default seed. Pinned as a constant so the
// interner's empty-string fast path never has to call into the hasher.
const EmptyHash uint64 = 0xef46db3751d8e999

func hash(b []byte) uint64 {
	return xxhash.Sum64(b)
}
