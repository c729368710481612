package primes

import "math"

// FastModMultiplier returns the approximate reciprocal ceil(2^64 / divisor)
// used by FastMod.
//
// A divisor of zero is a caller error and panics. A divisor of one wraps the
// multiplier to zero, which FastMod still handles correctly.
func FastModMultiplier(divisor uint32) uint64 {
	if divisor == 0 {
		panic("primes: FastModMultiplier called with a zero divisor")
	}

	return math.MaxUint64/uint64(divisor) + 1
}

// FastMod returns value % divisor using a multiplier precomputed by
// FastModMultiplier(divisor).
//
// It only uses 64-bit multiplications and shifts, which is faster than an
// integer division on 64-bit targets. Passing a multiplier computed for a
// different divisor yields a meaningless result.
func FastMod(value, divisor uint32, multiplier uint64) uint32 {
	lowbits := multiplier * uint64(value)

	return uint32((((lowbits >> 32) + 1) * uint64(divisor)) >> 32)
}
