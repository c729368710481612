// Package union provides Data, a fixed-width cell that holds the bit pattern
// of any small blittable value without boxing.
//
// A cell has no type tag. Whoever owns the cell decides which type is live and
// reads it back with the same type it was written with:
//
//	var cell union.Default
//	union.Write(&cell, int64(0x1122334455667788))
//	v := union.Read[int64](&cell)
//
// Values are stored in the host's native byte order (see the endian package),
// so the raw bytes of a cell are only meaningful on a host with the same byte
// order.
//
// # Width
//
// The width of a cell is fixed when the program is built, through the type
// parameter of Data. Width lists every supported width, from 16 to 4096 bytes
// in 8-byte steps; Default is the 16-byte cell, which holds two 64-bit words.
//
//	type Cell = union.Data[union.W32]
//
// # Preconditions
//
// Writing or reading a type wider than the cell panics. So does using a type
// that contains pointers (strings, slices, maps, interfaces, channels, funcs
// or pointers), since the garbage collector cannot see pointers hidden in the
// cell's bytes. The pointer check can be compiled out with the union_nocheck
// build tag; the width check cannot. Neither is reported as an error value.
//
// # Equality
//
// Two cells are equal when their bytes are identical, regardless of the types
// used to write them. Data values are comparable with == and usable as map
// keys; Hash is consistent with that equality.
//
// # Thread Safety
//
// Data is a plain value. Concurrent use of one cell needs external
// synchronization like any other variable.
package union

//go:generate go run ../internal/cmd/genwidths -out widths_gen.go
