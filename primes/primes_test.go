package primes

import (
	"math"
	"testing"

	"github.com/arloliu/slotkit/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimes_TableProperties(t *testing.T) {
	table := Primes()
	require.Len(t, table, 72)
	require.Equal(t, 3, table[0])
	require.Equal(t, 7199369, table[len(table)-1])
	require.Equal(t, 7199369, LargestTablePrime())

	for i, p := range table {
		require.True(t, IsPrime(p), "table entry %d is not prime", p)
		require.NotZero(t, (p-1)%HashPrime, "table entry %d is 1 mod %d", p, HashPrime)
		if i > 0 {
			require.Greater(t, p, table[i-1], "table is not ascending at index %d", i)
		}
	}
}

func TestPrimes_ReturnsCopy(t *testing.T) {
	table := Primes()
	table[0] = 4

	require.Equal(t, 3, Primes()[0])
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name      string
		candidate int
		want      bool
	}{
		{"two", 2, true},
		{"three", 3, true},
		{"one takes the odd path", 1, true},
		{"zero", 0, false},
		{"four", 4, false},
		{"nine", 9, false},
		{"square of prime", 7919 * 7919, false},
		{"large prime", 7199371, true},
		{"max prime array length", MaxPrimeArrayLength, true},
		{"negative odd", -7, false},
		{"negative even", -8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrime(tt.candidate))
		})
	}
}

func TestIsPrime_EvenNumbers(t *testing.T) {
	for n := -1000; n <= 100000; n += 2 {
		if n == 2 {
			continue
		}
		require.False(t, IsPrime(n), "even number %d reported prime", n)
	}
}

func TestIsPrime_MatchesSieve(t *testing.T) {
	const limit = 20000
	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if !composite[i] {
			for j := i * i; j <= limit; j += i {
				composite[j] = true
			}
		}
	}

	for n := 2; n <= limit; n++ {
		require.Equal(t, !composite[n], IsPrime(n), "mismatch for %d", n)
	}
}

func TestGetPrime_Negative(t *testing.T) {
	_, err := GetPrime(-1)
	require.ErrorIs(t, err, errs.ErrNegativeMin)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = GetPrime(math.MinInt)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestGetPrime_TableLookups(t *testing.T) {
	tests := []struct {
		min  int
		want int
	}{
		{0, 3},
		{1, 3},
		{3, 3},
		{4, 7},
		{100, 107},
		{107, 107},
		{108, 131},
		{7199368, 7199369},
		{7199369, 7199369},
	}
	for _, tt := range tests {
		got, err := GetPrime(tt.min)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "GetPrime(%d)", tt.min)
	}
}

func TestGetPrime_BeyondTable(t *testing.T) {
	got, err := GetPrime(7199370)
	require.NoError(t, err)
	require.Greater(t, got, 7199369)
	require.True(t, IsPrime(got))
	require.NotZero(t, (got-1)%HashPrime)
	require.Equal(t, 7199371, got)
}

func TestGetPrime_Properties(t *testing.T) {
	mins := []int{0, 1, 2, 5, 1000, 65536, 1 << 20, 7199369, 7199370, 10_000_000, 123_456_789}
	for m := 0; m < 5000; m += 7 {
		mins = append(mins, m)
	}

	for _, min := range mins {
		p, err := GetPrime(min)
		require.NoError(t, err)
		require.GreaterOrEqual(t, p, min)
		require.True(t, IsPrime(p), "GetPrime(%d) = %d is not prime", min, p)
		require.True(t, p == 2 || (p-1)%HashPrime != 0, "GetPrime(%d) = %d is 1 mod %d", min, p, HashPrime)
	}
}

func TestGetPrime_SkipsOneModHashPrime(t *testing.T) {
	start := 10_000_000
	for i := 0; i < 200; i++ {
		p, err := GetPrime(start + i*1013)
		require.NoError(t, err)
		require.NotZero(t, (p-1)%HashPrime)
	}
}

func TestGetPrime_ExhaustedScanReturnsMin(t *testing.T) {
	got, err := GetPrime(math.MaxInt32)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt32, got)

	big := math.MaxInt32 + 10
	got, err = GetPrime(big)
	require.NoError(t, err)
	require.Equal(t, big, got)
}

func TestExpandPrime(t *testing.T) {
	for _, old := range []int{0, 1, 2, 3, 7, 100, 1000, 50_000, 3_600_000, 4_000_000, 100_000_000} {
		got := ExpandPrime(old)
		require.GreaterOrEqual(t, got, 2*old, "ExpandPrime(%d)", old)
		require.True(t, IsPrime(got))
	}

	require.Equal(t, 3, ExpandPrime(0))
	require.Equal(t, 7, ExpandPrime(2))
	require.Equal(t, 239, ExpandPrime(100))
}

func TestExpandPrime_Clamps(t *testing.T) {
	require.Equal(t, MaxPrimeArrayLength, ExpandPrime(MaxPrimeArrayLength/2+1))
	require.Equal(t, MaxPrimeArrayLength, ExpandPrime(MaxPrimeArrayLength-1))
	require.Equal(t, MaxPrimeArrayLength, ExpandPrime(-5))
}

func TestExpandPrime_AtMaximum(t *testing.T) {
	// Already at the maximum: GetPrime has nothing larger and hands back the doubled size.
	require.Equal(t, 2*MaxPrimeArrayLength, ExpandPrime(MaxPrimeArrayLength))
}

func BenchmarkGetPrime_Table(b *testing.B) {
	for b.Loop() {
		_, _ = GetPrime(500_000)
	}
}

func BenchmarkExpandPrime(b *testing.B) {
	for b.Loop() {
		_ = ExpandPrime(3_000_000)
	}
}
