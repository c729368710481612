package snapshot

import (
	"github.com/arloliu/slotkit/endian"
	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/format"
)

// Flag is the packed leading part of the header.
type Flag struct {
	// Options packs the magic number (bits 4-15) and the endianness of the
	// writer (bit 1). The remaining bits are reserved and must be zero.
	Options uint16
	// Compression is the codec applied to the payload.
	Compression format.CompressionType
}

// NewFlag returns a flag for the current host with the given compression.
func NewFlag(compression format.CompressionType) Flag {
	f := Flag{Options: MagicCellsV1Opt, Compression: compression}
	if endian.IsNativeBigEndian() {
		f.WithBigEndian()
	} else {
		f.WithLittleEndian()
	}

	return f
}

// IsBigEndian reports whether the writer was big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// IsLittleEndian reports whether the writer was little-endian.
func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// WithBigEndian marks the writer as big-endian.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// WithLittleEndian marks the writer as little-endian.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// GetEndianEngine returns the byte order the header integers and the cells
// were written in.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// IsNative reports whether the snapshot was written on a host with this
// host's byte order.
func (f Flag) IsNative() bool {
	return endian.CompareNativeEndian(f.GetEndianEngine())
}

// GetMagicNumber returns the magic number bits.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, reserved bits and compression type.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicCellsV1Opt {
		return errs.ErrInvalidMagic
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.Compression.IsValid() {
		return errs.ErrInvalidCompression
	}

	return nil
}
