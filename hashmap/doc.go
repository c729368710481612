// Package hashmap provides Dictionary, a separate-chaining hash table whose
// bucket array is sized by the primes package.
//
// Entries live in a dense slice and chain through int32 links; buckets hold
// 1-based entry indices so the zero value marks an empty bucket. The bucket
// count is always a value handed out by primes.GetPrime or primes.ExpandPrime,
// and bucket indices are computed with primes.FastMod using a multiplier that
// is recomputed on every resize.
//
// Keys are hashed by a Hasher. StringHasher and UnionHasher use xxHash64;
// ComparableHasher works for any comparable key through hash/maphash.
//
//	d, _ := hashmap.New[string, int](hashmap.StringHasher, hashmap.WithCapacity(64))
//	d.Set("answer", 42)
//	v, ok := d.Get("answer")
//
// Union cells make natural keys and values for heterogeneous caches:
//
//	cells, _ := hashmap.NewUnionKeyed[union.W16, union.Default]()
//	cells.Set(union.From[union.W16](int64(7)), union.From[union.W16](float64(0.5)))
//
// A Dictionary is not safe for concurrent mutation.
package hashmap
