package slotkit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/format"
	"github.com/arloliu/slotkit/hashmap"
	"github.com/arloliu/slotkit/primes"
	"github.com/arloliu/slotkit/snapshot"
	"github.com/arloliu/slotkit/union"
)

// TestNextCapacity verifies table lookups and clamping of negative input
func TestNextCapacity(t *testing.T) {
	require.Equal(t, 3, NextCapacity(-5))
	require.Equal(t, 3, NextCapacity(0))
	require.Equal(t, 1103, NextCapacity(1000))
	require.Equal(t, 7199369, NextCapacity(7199369))
	require.Equal(t, 7199371, NextCapacity(7199370))
}

// TestGrowCapacity verifies growth doubles to the next prime and clamps
func TestGrowCapacity(t *testing.T) {
	require.Equal(t, 2333, GrowCapacity(1103))
	require.Equal(t, primes.MaxPrimeArrayLength, GrowCapacity(primes.MaxPrimeArrayLength/2+1))
}

func TestNewDictionary(t *testing.T) {
	d, err := NewDictionary[int, string](hashmap.WithCapacity(10))
	require.NoError(t, err)
	require.Equal(t, 11, d.Cap())

	d.Set(1, "one")
	v, ok := d.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", v)

	_, err = NewDictionary[int, string](hashmap.WithCapacity(-1))
	require.ErrorIs(t, err, errs.ErrInvalidCapacity)
}

func TestNewStringDictionary(t *testing.T) {
	d, err := NewStringDictionary[int]()
	require.NoError(t, err)

	for i, name := range []string{"alpha", "beta", "gamma"} {
		require.True(t, d.Set(name, i))
	}
	require.Equal(t, 3, d.Len())
	require.True(t, d.Contains("beta"))
	require.False(t, d.Contains("delta"))
}

// TestEncodeDecode verifies cells survive a snapshot round trip
func TestEncodeDecode(t *testing.T) {
	cells, err := NewUnionDictionary[union.W16, union.W16]()
	require.NoError(t, err)

	names := []string{"player.hp", "player.mp", "enemy.count"}
	for i, name := range names {
		cells.Set(union.From[union.W16](KeyID(name)), union.From[union.W16](int32(i*100)))
	}

	data, err := Encode(cells, snapshot.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	restored, err := Decode[union.W16, union.W16](data)
	require.NoError(t, err)
	require.Equal(t, len(names), restored.Len())

	v, ok := restored.Get(union.From[union.W16](KeyID("player.mp")))
	require.True(t, ok)
	require.Equal(t, int32(100), union.Read[int32](&v))

	_, err = Decode[union.W24, union.W16](data)
	require.ErrorIs(t, err, errs.ErrWidthMismatch)
}

// TestKeyID verifies hash generation is deterministic
func TestKeyID(t *testing.T) {
	id1 := KeyID("test.key")
	id2 := KeyID("test.key")

	require.Equal(t, id1, id2, "KeyID should be deterministic")
	require.NotZero(t, id1)
	require.NotEqual(t, id1, KeyID("other.key"))
	require.Equal(t, hashmap.StringHasher("test.key"), id1)
}
