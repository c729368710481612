package union

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/slotkit/errs"
)

// Width is satisfied only by the generated W16 .. W4096 array types, so a
// Data with an unsupported width does not compile and every Data type has
// exactly one width.
type Width interface {
	comparable
	byteCount() int
}

// ByteCountOf returns the width selected by W.
//
// It panics if W is not laid out as its declared width, which can only happen
// for a struct that embeds a width type next to other fields.
func ByteCountOf[W Width]() int {
	var w W
	n := w.byteCount()
	if int(unsafe.Sizeof(w)) != n {
		panic(fmt.Sprintf("union: width type %T is %d bytes, not %d", w, unsafe.Sizeof(w), n))
	}

	return n
}

// ValidateByteCount checks that n is a supported cell width.
//
// Widths are chosen at compile time through Data's type parameter; this is
// for code that receives a width as data, such as a snapshot header or a
// command-line flag.
func ValidateByteCount(n int) error {
	if n < MinByteCount || n > MaxByteCount || n%SizeOfLong != 0 {
		return fmt.Errorf("%d bytes (want %d..%d in steps of %d): %w",
			n, MinByteCount, MaxByteCount, SizeOfLong, errs.ErrInvalidWidth)
	}

	return nil
}

// ByteCounts returns every supported cell width in ascending order.
func ByteCounts() []int {
	out := make([]int, 0, MaxLongCount-1)
	for n := MinByteCount; n <= MaxByteCount; n += SizeOfLong {
		out = append(out, n)
	}

	return out
}
