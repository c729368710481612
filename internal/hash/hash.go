// Package hash holds the xxHash64 helpers shared by cells, dictionaries and
// snapshots, so every on-disk and in-memory hash agrees.
package hash

import "github.com/cespare/xxhash/v2"

// String computes the xxHash64 of s.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes computes the xxHash64 of b.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Fold32 mixes the high half of h into its low 32 bits.
func Fold32(h uint64) uint32 {
	return uint32(h) ^ uint32(h>>32)
}
