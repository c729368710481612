package union

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/internal/hash"
)

const (
	// SizeOfLong is the size of a 64-bit word and the width step.
	SizeOfLong = 8
	// MaxLongCount is the number of 64-bit words in the widest cell.
	MaxLongCount = 512
	// MaxIntCount is the number of 32-bit words in the widest cell.
	MaxIntCount = MaxLongCount * 2
	// MinByteCount is the width of the narrowest cell.
	MinByteCount = SizeOfLong * 2
	// MaxByteCount is the width of the widest cell.
	MaxByteCount = SizeOfLong * MaxLongCount
	// DefaultByteCount is the width of Default.
	DefaultByteCount = SizeOfLong * 2
)

// Data is a cell of len(W) bytes holding the bit pattern of one value.
//
// The zero value is an all-zero cell.
type Data[W Width] struct {
	_   [0]uint64 // 8-byte alignment for the word-sized types stored in buf
	buf W
}

// Common cell widths.
type (
	Default = Data[W16]
	Data16  = Data[W16]
	Data24  = Data[W24]
	Data32  = Data[W32]
	Data64  = Data[W64]
)

// Data adds no bytes beyond its width.
var (
	_ [DefaultByteCount - int(unsafe.Sizeof(Default{}))]byte
	_ [int(unsafe.Sizeof(Default{})) - DefaultByteCount]byte
	_ [MaxByteCount - int(unsafe.Sizeof(Data[W4096]{}))]byte
)

// From returns a zeroed cell holding v.
func From[W Width, T any](v T) Data[W] {
	var d Data[W]
	Write(&d, v)

	return d
}

// Write stores v in the first unsafe.Sizeof(v) bytes of d, leaving the rest
// of the cell untouched.
//
// It panics if T is wider than the cell or contains pointers.
func Write[T any, W Width](d *Data[W], v T) {
	mustFit[T, W]()
	*(*T)(unsafe.Pointer(&d.buf)) = v
}

// Read reinterprets the first unsafe.Sizeof(T) bytes of d as a T.
//
// The cell does not record which type was written. Reading a different type
// than the last write returns well-defined but meaningless bits.
//
// It panics if T is wider than the cell or contains pointers.
func Read[T any, W Width](d *Data[W]) T {
	mustFit[T, W]()
	return *(*T)(unsafe.Pointer(&d.buf))
}

// Fits reports whether a T fits in a Data[W].
func Fits[T any, W Width]() bool {
	var v T
	return int(unsafe.Sizeof(v)) <= ByteCountOf[W]()
}

func mustFit[T any, W Width]() {
	var v T
	if n := ByteCountOf[W](); int(unsafe.Sizeof(v)) > n {
		panic(fmt.Sprintf("union: %v is %d bytes, wider than the %d-byte cell",
			reflect.TypeFor[T](), unsafe.Sizeof(v), n))
	}
	checkBlittable[T]()
}

// ByteCount returns the width of the cell in bytes.
func (d Data[W]) ByteCount() int {
	return int(unsafe.Sizeof(d.buf))
}

// view aliases the cell's bytes. It must not outlive d.
func (d *Data[W]) view() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&d.buf)), unsafe.Sizeof(d.buf))
}

// Bytes returns a copy of the cell's bytes.
func (d Data[W]) Bytes() []byte {
	out := make([]byte, d.ByteCount())
	copy(out, d.view())

	return out
}

// AppendTo appends the cell's bytes to b and returns the extended slice.
func (d *Data[W]) AppendTo(b []byte) []byte {
	return append(b, d.view()...)
}

// Load replaces the cell's bytes with b.
//
// Returns:
//   - error: ErrInvalidWidth if len(b) differs from the cell width
func (d *Data[W]) Load(b []byte) error {
	if len(b) != d.ByteCount() {
		return fmt.Errorf("load %d bytes into a %d-byte cell: %w", len(b), d.ByteCount(), errs.ErrInvalidWidth)
	}
	copy(d.view(), b)

	return nil
}

// Reset zeroes the cell.
func (d *Data[W]) Reset() {
	*d = Data[W]{}
}

// IsZero reports whether every byte of the cell is zero.
func (d Data[W]) IsZero() bool {
	var zero W
	return d.buf == zero
}

// Equal reports whether d and other hold identical bytes.
func (d Data[W]) Equal(other Data[W]) bool {
	return d.buf == other.buf
}

// Hash returns the xxHash64 of the cell's bytes. Equal cells hash equally.
func (d Data[W]) Hash() uint64 {
	return hash.Bytes(d.view())
}

// String formats the cell as its width and hex bytes.
func (d Data[W]) String() string {
	return fmt.Sprintf("union.Data[%d](%s)", d.ByteCount(), hex.EncodeToString(d.view()))
}
