// Package slotkit provides fixed-width value cells and prime-sized hash tables.
//
// slotkit is built from three layers:
//
//   - union: Data[W], a fixed-size byte cell that stores any pointer-free
//     value in native byte layout and reads it back as any type that fits
//   - primes: the prime sizing policy (GetPrime, ExpandPrime) and the
//     multiply-shift FastMod used for bucket selection
//   - hashmap: a separate-chaining Dictionary sized and indexed by primes,
//     usable with union cells as keys and values
//
// Dictionaries of cells can be written to and restored from a compact,
// checksummed binary snapshot with optional compression (None, Zstd, S2, LZ4).
//
// # Basic Usage
//
// Storing values in cells:
//
//	import "github.com/arloliu/slotkit/union"
//
//	cell := union.From[union.W16](3.5)
//	f := union.Read[float64](&cell)
//
//	union.Write(&cell, [2]int32{7, 9})
//	pair := union.Read[[2]int32](&cell)
//
// Building a dictionary of cells and snapshotting it:
//
//	cells, _ := slotkit.NewUnionDictionary[union.W16, union.W16]()
//	cells.Set(union.From[union.W16](KeyID("player.hp")), union.From[union.W16](int32(100)))
//
//	data, _ := slotkit.Encode(cells, snapshot.WithCompression(format.CompressionS2))
//	restored, _ := slotkit.Decode[union.W16, union.W16](data)
//
// Sizing your own bucket arrays:
//
//	size := slotkit.NextCapacity(1000)  // 1103
//	size = slotkit.GrowCapacity(size)   // 2333
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the union,
// primes, hashmap and snapshot packages. For fine-grained control, use
// those packages directly.
package slotkit

import (
	"github.com/arloliu/slotkit/hashmap"
	"github.com/arloliu/slotkit/internal/hash"
	"github.com/arloliu/slotkit/primes"
	"github.com/arloliu/slotkit/snapshot"
	"github.com/arloliu/slotkit/union"
)

// UnionDictionary is a dictionary from KW-wide cells to VW-wide cells.
type UnionDictionary[KW union.Width, VW union.Width] = snapshot.Cells[KW, VW]

// NextCapacity returns the hash table size to use for at least minCapacity
// entries. Negative values are treated as zero.
//
// Example:
//
//	buckets := make([]int32, slotkit.NextCapacity(n))
func NextCapacity(minCapacity int) int {
	size, err := primes.GetPrime(max(minCapacity, 0))
	if err != nil {
		// unreachable: the argument is never negative
		panic(err)
	}

	return size
}

// GrowCapacity returns the size a full table of oldSize buckets should grow
// to: roughly double, prime, and never beyond primes.MaxPrimeArrayLength.
func GrowCapacity(oldSize int) int {
	return primes.ExpandPrime(oldSize)
}

// NewDictionary creates a Dictionary for any comparable key type hashed with
// a randomly seeded hash/maphash hasher.
//
// Available options:
//   - hashmap.WithCapacity(n)
//   - hashmap.WithLogger(logger)
//   - hashmap.WithCollisionThreshold(n)
//
// Returns an error if the configuration is invalid.
func NewDictionary[K comparable, V any](opts ...hashmap.Option) (*hashmap.Dictionary[K, V], error) {
	return hashmap.New[K, V](nil, opts...)
}

// NewStringDictionary creates a Dictionary keyed by strings hashed with
// xxHash64, so bucket placement is stable across processes.
func NewStringDictionary[V any](opts ...hashmap.Option) (*hashmap.Dictionary[string, V], error) {
	return hashmap.New[string, V](hashmap.StringHasher, opts...)
}

// NewUnionDictionary creates a Dictionary with KW-wide cell keys and
// VW-wide cell values, the shape accepted by Encode.
func NewUnionDictionary[KW union.Width, VW union.Width](opts ...hashmap.Option) (*UnionDictionary[KW, VW], error) {
	return hashmap.NewUnionKeyed[KW, union.Data[VW]](opts...)
}

// Encode writes cells to a snapshot. Zstd compression is used unless
// snapshot.WithCompression says otherwise.
//
// Returns:
//   - []byte: The encoded snapshot
//   - error: An error if the options are invalid or compression fails
func Encode[KW union.Width, VW union.Width](cells *UnionDictionary[KW, VW], opts ...snapshot.Option) ([]byte, error) {
	return snapshot.Encode(cells, opts...)
}

// Decode restores a dictionary written by Encode. KW and VW must match the
// widths it was written with.
func Decode[KW union.Width, VW union.Width](data []byte, opts ...hashmap.Option) (*UnionDictionary[KW, VW], error) {
	return snapshot.Decode[KW, VW](data, opts...)
}

// KeyID computes a stable 64-bit identifier for a name, suitable for storing
// string keys in cells.
//
// Example:
//
//	key := union.From[union.W16](slotkit.KeyID("player.hp"))
func KeyID(name string) uint64 {
	return hash.String(name)
}
