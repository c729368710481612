// Package primes provides the capacity sizing policy for prime-sized hash tables.
//
// A bucket-array container asks GetPrime for its initial size and ExpandPrime
// for the size to grow to. Sizes come from a precomputed ascending table of
// primes; requests beyond the table fall back to trial division. Every size
// handed out (other than 2) satisfies (p-1) % HashPrime != 0, which keeps
// double hashing of the form h1(key) + i*h2(key) from cycling early.
//
// Bucket indices are computed with FastMod, which replaces the division in
// value % divisor with two multiplications and shifts. The multiplier must be
// recomputed with FastModMultiplier whenever the table size changes:
//
//	size, _ := primes.GetPrime(capacity)
//	mul := primes.FastModMultiplier(uint32(size))
//	bucket := primes.FastMod(uint32(hash), uint32(size), mul)
//
// FastMod relies on a full 64-bit multiply and is intended for 64-bit targets.
//
// # Thread Safety
//
// All functions are pure and the prime table is never mutated after package
// initialization, so everything here is safe for concurrent use.
package primes
