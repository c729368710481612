package primes

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/slotkit/errs"
)

const (
	// HashCollisionThreshold is the number of chain links a single lookup may
	// walk before a container treats its hash distribution as degenerate.
	HashCollisionThreshold = 100

	// MaxPrimeArrayLength is the largest prime below the maximum array length
	// of a 32-bit indexed table. ExpandPrime clamps to it.
	MaxPrimeArrayLength = 0x7FEFFFFD

	// HashPrime is the modulus excluded from table sizes: no size p beyond the
	// precomputed table satisfies (p-1) % HashPrime == 0.
	HashPrime = 101

	// scanLimit bounds the trial-division fallback of GetPrime.
	scanLimit = math.MaxInt32
)

// primeTable holds the precomputed table sizes. Each entry is roughly 1.2x the
// previous one, so a doubling resize lands a few entries further along.
var primeTable = [...]int{
	3, 7, 11, 17, 23, 29, 37, 47, 59, 71, 89, 107, 131, 163, 197, 239, 293, 353, 431, 521, 631, 761, 919,
	1103, 1327, 1597, 1931, 2333, 2801, 3371, 4049, 4861, 5839, 7013, 8419, 10103, 12143, 14591,
	17519, 21023, 25229, 30293, 36353, 43627, 52361, 62851, 75431, 90523, 108631, 130363, 156437,
	187751, 225307, 270371, 324449, 389357, 467237, 560689, 672827, 807403, 968897, 1162687, 1395263,
	1674319, 2009191, 2411033, 2893249, 3471899, 4166287, 4999559, 5999471, 7199369,
}

func init() {
	if p, err := GetPrime(MaxPrimeArrayLength); err != nil || p != MaxPrimeArrayLength {
		panic(fmt.Sprintf("primes: MaxPrimeArrayLength %#x is not a valid table size", MaxPrimeArrayLength))
	}
}

// Primes returns a copy of the precomputed prime table in ascending order.
func Primes() []int {
	return slices.Clone(primeTable[:])
}

// LargestTablePrime returns the last entry of the precomputed table.
func LargestTablePrime() int {
	return primeTable[len(primeTable)-1]
}

// IsPrime reports whether candidate is prime using trial division.
//
// Odd candidates are divided by every odd number up to their square root.
// 2 is the only even prime. Negative numbers are never prime. 1 takes the odd
// path and, having no divisors to try, reports true; the table never hands it
// out as a size.
func IsPrime(candidate int) bool {
	if candidate < 0 {
		return false
	}

	if candidate&1 != 0 {
		limit := int(math.Sqrt(float64(candidate)))
		for divisor := 3; divisor <= limit; divisor += 2 {
			if candidate%divisor == 0 {
				return false
			}
		}

		return true
	}

	return candidate == 2
}

// GetPrime returns the smallest usable table size that is at least min.
//
// The precomputed table is consulted first. Beyond its last entry the odd
// numbers from min|1 upward are scanned for a prime p with
// (p-1) % HashPrime != 0. If the scan reaches math.MaxInt32 without finding
// one, min is returned unchanged, which callers must read as "no larger size
// is available".
//
// Parameters:
//   - min: Minimum acceptable size
//
// Returns:
//   - int: Table size >= min
//   - error: ErrNegativeMin if min is negative
func GetPrime(min int) (int, error) {
	if min < 0 {
		return 0, errs.ErrNegativeMin
	}

	if min <= primeTable[len(primeTable)-1] {
		i, _ := slices.BinarySearch(primeTable[:], min)
		return primeTable[i], nil
	}

	for i := min | 1; i < scanLimit; i += 2 {
		if IsPrime(i) && (i-1)%HashPrime != 0 {
			return i, nil
		}
	}

	return min, nil
}

// ExpandPrime returns the size a table of oldSize entries should grow to.
//
// The result is the table size for twice oldSize. Once doubling would pass
// MaxPrimeArrayLength the result is clamped to MaxPrimeArrayLength, so tables
// can approach the maximum array length before hitting capacity overflow.
// A table already at or beyond the maximum keeps asking GetPrime, which
// returns the doubled size unchanged when nothing larger exists.
//
// Parameters:
//   - oldSize: Current table size
//
// Returns:
//   - int: New table size, >= 2*oldSize unless clamped
func ExpandPrime(oldSize int) int {
	newSize := 2 * oldSize

	// The uint conversion also routes a wrapped negative doubling to the clamp.
	if uint(newSize) <= MaxPrimeArrayLength || MaxPrimeArrayLength <= oldSize {
		p, err := GetPrime(newSize)
		if err != nil {
			return MaxPrimeArrayLength
		}

		return p
	}

	return MaxPrimeArrayLength
}
