package hashmap

import (
	"hash/maphash"

	"github.com/arloliu/slotkit/internal/hash"
	"github.com/arloliu/slotkit/union"
)

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K comparable] func(K) uint64

// StringHasher hashes strings with xxHash64.
func StringHasher(s string) uint64 {
	return hash.String(s)
}

// UnionHasher hashes a union cell by its bytes.
func UnionHasher[W union.Width](d union.Data[W]) uint64 {
	return d.Hash()
}

// ComparableHasher returns a hasher for any comparable key, seeded randomly
// per call.
func ComparableHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
