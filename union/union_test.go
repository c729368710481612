package union

import (
	"math"
	"reflect"
	"testing"
	"unsafe"

	"github.com/arloliu/slotkit/endian"
	"github.com/arloliu/slotkit/errs"
	"github.com/stretchr/testify/require"
)

type color uint8

const (
	red color = iota + 1
	green
)

type vec3 struct {
	X, Y, Z float32
}

type pair struct {
	A int64
	B int64
}

type withPointer struct {
	ID   int32
	Name string
}

func TestData_Sizes(t *testing.T) {
	require.Equal(t, 16, int(unsafe.Sizeof(Default{})))
	require.Equal(t, 24, int(unsafe.Sizeof(Data24{})))
	require.Equal(t, 4096, int(unsafe.Sizeof(Data[W4096]{})))
	require.Equal(t, 8, int(unsafe.Alignof(Default{})))

	require.Equal(t, DefaultByteCount, Default{}.ByteCount())
	require.Equal(t, 64, Data64{}.ByteCount())
	require.Equal(t, 40, ByteCountOf[W40]())
}

// padded satisfies Width through embedding but is wider than its declared width.
type padded struct {
	W16
	extra byte
}

func TestWidthTypes(t *testing.T) {
	require.Equal(t, 16, ByteCountOf[W16]())
	require.Equal(t, 24, ByteCountOf[W24]())
	require.Equal(t, 1024, ByteCountOf[W1024]())
	require.Equal(t, MaxByteCount, ByteCountOf[W4096]())
	require.Equal(t, MaxByteCount, Data[W4096]{}.ByteCount())

	wide := From[W4096](pair{A: 1, B: 2})
	require.False(t, wide.IsZero())
	require.True(t, wide.Equal(From[W4096](pair{A: 1, B: 2})))
	require.True(t, Data[W4096]{}.IsZero())

	require.Panics(t, func() { _ = ByteCountOf[padded]() })
	require.Panics(t, func() { _ = From[padded](int32(1)) })
}

func TestWriteRead_Int64(t *testing.T) {
	var d Default
	Write(&d, uint64(0x1122334455667788))

	require.Equal(t, uint64(0x1122334455667788), Read[uint64](&d))
}

func TestWriteRead_Float32Bits(t *testing.T) {
	values := []float32{0, -0.0, 1.5, math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.Inf(-1))}
	for _, v := range values {
		var d Default
		Write(&d, v)
		got := Read[float32](&d)
		require.Equal(t, math.Float32bits(v), math.Float32bits(got))
	}

	nan := math.Float32frombits(0x7fc00001)
	d := From[W16](nan)
	require.Equal(t, uint32(0x7fc00001), math.Float32bits(Read[float32](&d)))
}

func TestWriteRead_Shapes(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		d := From[W16](true)
		require.True(t, Read[bool](&d))
	})

	t.Run("enum", func(t *testing.T) {
		d := From[W16](green)
		require.Equal(t, green, Read[color](&d))
	})

	t.Run("struct", func(t *testing.T) {
		d := From[W16](vec3{1, 2, 3})
		require.Equal(t, vec3{1, 2, 3}, Read[vec3](&d))
	})

	t.Run("two words fill the default cell", func(t *testing.T) {
		d := From[W16](pair{A: -1, B: math.MaxInt64})
		require.Equal(t, pair{A: -1, B: math.MaxInt64}, Read[pair](&d))
	})

	t.Run("complex128", func(t *testing.T) {
		d := From[W16](complex(1.25, -3.5))
		require.Equal(t, complex(1.25, -3.5), Read[complex128](&d))
	})

	t.Run("wide cell", func(t *testing.T) {
		var arr [64]uint64
		for i := range arr {
			arr[i] = uint64(i) * 0x0101010101010101
		}
		d := From[W512](arr)
		require.Equal(t, arr, Read[[64]uint64](&d))
	})
}

func TestWrite_LeavesTailUntouched(t *testing.T) {
	var d Default
	Write(&d, pair{A: -1, B: -1})
	Write(&d, uint32(0))

	b := d.Bytes()
	require.Equal(t, []byte{0, 0, 0, 0}, b[:4])
	for _, v := range b[4:] {
		require.Equal(t, byte(0xff), v)
	}
}

func TestWrite_NarrowOverWide(t *testing.T) {
	var d Data32
	Write(&d, [4]uint64{0x1111111111111111, 0x2222222222222222, 0x3333333333333333, 0x4444444444444444})
	before := d.Bytes()

	Write(&d, int64(-1))
	require.Equal(t, int64(-1), Read[int64](&d))
	require.Equal(t, before[8:], d.Bytes()[8:], "bytes past the int64 must be untouched")

	Write(&d, vec3{X: 1, Y: 2, Z: 3})
	require.Equal(t, vec3{X: 1, Y: 2, Z: 3}, Read[vec3](&d))
	require.Equal(t, before[12:], d.Bytes()[12:], "bytes past the vec3 must be untouched")

	words := Read[[4]uint64](&d)
	require.Equal(t, uint64(0x3333333333333333), words[2])
	require.Equal(t, uint64(0x4444444444444444), words[3])
}

func TestWrite_NativeByteOrder(t *testing.T) {
	d := From[W16](uint64(0x1122334455667788))
	engine := endian.CheckEndianness()

	require.Equal(t, uint64(0x1122334455667788), engine.Uint64(d.Bytes()[:8]))
}

func TestReadNarrowerType(t *testing.T) {
	d := From[W16](uint64(0x1122334455667788))
	low := Read[uint32](&d)

	if endian.IsNativeLittleEndian() {
		require.Equal(t, uint32(0x55667788), low)
	} else {
		require.Equal(t, uint32(0x11223344), low)
	}
}

func TestOversizedTypePanics(t *testing.T) {
	var d Default
	require.Panics(t, func() { Write(&d, [17]byte{}) })
	require.Panics(t, func() { _ = Read[[3]uint64](&d) })
	require.NotPanics(t, func() { Write(&d, [16]byte{}) })

	require.True(t, Fits[[16]byte, W16]())
	require.False(t, Fits[[17]byte, W16]())
	require.True(t, Fits[[17]byte, W24]())
}

func TestIsBlittable(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeFor[int](), true},
		{reflect.TypeFor[color](), true},
		{reflect.TypeFor[vec3](), true},
		{reflect.TypeFor[[4]pair](), true},
		{reflect.TypeFor[[0]*int](), true},
		{reflect.TypeFor[struct{}](), true},
		{reflect.TypeFor[string](), false},
		{reflect.TypeFor[withPointer](), false},
		{reflect.TypeFor[[2]*int](), false},
		{reflect.TypeFor[map[int]int](), false},
		{reflect.TypeFor[func()](), false},
		{reflect.TypeFor[unsafe.Pointer](), false},
		{nil, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, IsBlittable(tt.typ), "%v", tt.typ)
		// second call goes through the cache
		require.Equal(t, tt.want, IsBlittable(tt.typ), "%v", tt.typ)
	}
}

func TestEquality_IsByteWise(t *testing.T) {
	a := From[W16](uint64(0x3ff0000000000000))
	b := From[W16](float64(1.0))

	require.True(t, a.Equal(b))
	require.True(t, a == b)
	require.Equal(t, a.Hash(), b.Hash())

	c := From[W16](int32(7))
	d := From[W16]([4]byte{7, 0, 0, 0})
	if endian.IsNativeLittleEndian() {
		require.True(t, c.Equal(d))
	}

	e := From[W16](float64(2.0))
	require.False(t, a.Equal(e))
	require.NotEqual(t, a.Hash(), e.Hash())
}

func TestData_MapKey(t *testing.T) {
	m := map[Default]string{
		From[W16](int64(1)): "one",
		From[W16](int64(2)): "two",
	}

	require.Equal(t, "one", m[From[W16](uint64(1))])
	require.Len(t, m, 2)
}

func TestData_BytesLoadAppend(t *testing.T) {
	src := From[W24](pair{A: 10, B: 20})

	raw := src.Bytes()
	require.Len(t, raw, 24)

	raw[0] ^= 0xff
	require.Equal(t, pair{A: 10, B: 20}, Read[pair](&src), "Bytes must return a copy")
	raw[0] ^= 0xff

	var dst Data24
	require.NoError(t, dst.Load(raw))
	require.Equal(t, src, dst)

	err := dst.Load(raw[:8])
	require.ErrorIs(t, err, errs.ErrInvalidWidth)

	buf := []byte{0xaa}
	buf = src.AppendTo(buf)
	require.Len(t, buf, 25)
	require.Equal(t, raw, buf[1:])
}

func TestData_ResetAndZero(t *testing.T) {
	d := From[W16](int16(-1))
	require.False(t, d.IsZero())

	d.Reset()
	require.True(t, d.IsZero())
	require.Equal(t, Default{}, d)
}

func TestData_String(t *testing.T) {
	d := From[W16]([2]byte{0xab, 0xcd})
	require.Equal(t, "union.Data[16](abcd0000000000000000000000000000)", d.String())
}

func TestValidateByteCount(t *testing.T) {
	for _, n := range []int{16, 24, 64, 4088, 4096} {
		require.NoError(t, ValidateByteCount(n), n)
	}
	for _, n := range []int{-8, 0, 8, 15, 17, 4104, 8192} {
		err := ValidateByteCount(n)
		require.ErrorIs(t, err, errs.ErrInvalidWidth, n)
		require.ErrorIs(t, err, errs.ErrInvalidArgument, n)
	}
}

func TestByteCounts(t *testing.T) {
	counts := ByteCounts()
	require.Len(t, counts, 511)
	require.Equal(t, MinByteCount, counts[0])
	require.Equal(t, MaxByteCount, counts[len(counts)-1])
	for _, n := range counts {
		require.NoError(t, ValidateByteCount(n))
	}
}

func BenchmarkWriteRead(b *testing.B) {
	var d Default
	var sink uint64
	for b.Loop() {
		Write(&d, sink+1)
		sink = Read[uint64](&d)
	}
}

func BenchmarkHash(b *testing.B) {
	d := From[W16](pair{A: 1, B: 2})
	for b.Loop() {
		_ = d.Hash()
	}
}
