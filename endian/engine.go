// Package endian provides byte order utilities for slotkit's binary formats.
//
// Union cells store values in the host's native byte order, so any format
// that persists raw cell bytes has to record which order the writer used and
// refuse to interpret bytes written by a host with the other one. This package
// detects the native order and exposes it, together with the fixed orders, as
// an EndianEngine combining encoding/binary's ByteOrder and AppendByteOrder.
//
//	engine := endian.GetNativeEngine()
//	buf = engine.AppendUint32(buf, count)
//
// # Thread Safety
//
// All functions are safe for concurrent use. The returned engines are
// immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var native = detect()

func detect() EndianEngine {
	// 0x0100 stores 0x01 first on a big-endian host.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness returns the host's byte order.
func CheckEndianness() binary.ByteOrder {
	return native
}

// GetNativeEngine returns the engine matching the host's byte order.
func GetNativeEngine() EndianEngine {
	return native
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return native == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return native == binary.BigEndian
}

// CompareNativeEndian reports whether engine uses the host's byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == native
}

// IsLittleEndian reports whether engine is the little-endian engine.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
