package snapshot

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/slotkit/endian"
	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/format"
)

func testHeader() Header {
	return Header{
		Flag:          NewFlag(format.CompressionS2),
		KeyWidth:      16,
		ValueWidth:    24,
		Count:         10,
		Buckets:       17,
		PayloadLength: 123,
		RawLength:     400,
		Checksum:      0x0123456789abcdef,
	}
}

func TestNewFlag(t *testing.T) {
	f := NewFlag(format.CompressionZstd)

	require.Equal(t, uint16(MagicCellsV1Opt), f.GetMagicNumber())
	require.Equal(t, format.CompressionZstd, f.Compression)
	require.Equal(t, endian.IsNativeBigEndian(), f.IsBigEndian())
	require.True(t, f.IsNative())
	require.NoError(t, f.Validate())
}

func TestFlag_Endianness(t *testing.T) {
	f := NewFlag(format.CompressionNone)

	f.WithBigEndian()
	require.True(t, f.IsBigEndian())
	require.False(t, f.IsLittleEndian())
	require.Equal(t, endian.GetBigEndianEngine(), f.GetEndianEngine())

	f.WithLittleEndian()
	require.True(t, f.IsLittleEndian())
	require.Equal(t, endian.GetLittleEndianEngine(), f.GetEndianEngine())
	require.Equal(t, uint16(MagicCellsV1Opt), f.GetMagicNumber())
}

func TestFlag_Validate(t *testing.T) {
	tests := []struct {
		name string
		flag Flag
		want error
	}{
		{"valid", Flag{Options: MagicCellsV1Opt, Compression: format.CompressionLZ4}, nil},
		{"bad magic", Flag{Options: 0xEA10, Compression: format.CompressionLZ4}, errs.ErrInvalidMagic},
		{"reserved bit", Flag{Options: MagicCellsV1Opt | 0x0001, Compression: format.CompressionLZ4}, errs.ErrInvalidHeaderFlags},
		{"zero compression", Flag{Options: MagicCellsV1Opt}, errs.ErrInvalidCompression},
		{"unknown compression", Flag{Options: MagicCellsV1Opt, Compression: 7}, errs.ErrInvalidCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flag.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		h := testHeader()
		if bigEndian {
			h.Flag.WithBigEndian()
		} else {
			h.Flag.WithLittleEndian()
		}

		b := h.Bytes()
		require.Len(t, b, HeaderSize)
		require.Equal(t, h.Flag.Options, binary.LittleEndian.Uint16(b))

		got, err := ParseHeader(append(b, 0xAA, 0xBB))
		require.NoError(t, err)
		require.Equal(t, h, got)
		require.Equal(t, 40, got.RecordSize())
	}
}

func TestHeader_ByteOrder(t *testing.T) {
	h := testHeader()
	h.Flag.WithBigEndian()
	b := h.Bytes()
	require.Equal(t, []byte{0x00, 0x10}, b[offsetKeyWidth:offsetKeyWidth+2])

	h.Flag.WithLittleEndian()
	b = h.Bytes()
	require.Equal(t, []byte{0x10, 0x00}, b[offsetKeyWidth:offsetKeyWidth+2])
}

func TestParseHeader_Errors(t *testing.T) {
	valid := testHeader()

	t.Run("short", func(t *testing.T) {
		_, err := ParseHeader(make([]byte, HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("exact size required by Parse", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		b := valid.Bytes()
		binary.LittleEndian.PutUint16(b, 0x1234)
		_, err := ParseHeader(b)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("reserved byte", func(t *testing.T) {
		b := valid.Bytes()
		b[offsetReserved] = 1
		_, err := ParseHeader(b)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("unknown compression", func(t *testing.T) {
		b := valid.Bytes()
		b[offsetCompression] = 0
		_, err := ParseHeader(b)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("key width off ladder", func(t *testing.T) {
		h := valid
		h.KeyWidth = 20
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidWidth)
	})

	t.Run("value width too large", func(t *testing.T) {
		h := valid
		h.ValueWidth = 8192
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidWidth)
	})

	t.Run("raw length mismatch", func(t *testing.T) {
		h := valid
		h.RawLength++
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})
}
