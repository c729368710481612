package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/format"
	"github.com/arloliu/slotkit/union"
)

// Header is the fixed-size section at the start of a snapshot.
type Header struct {
	Flag Flag // byte offset 0-3

	// KeyWidth and ValueWidth are the cell widths in bytes.
	KeyWidth   uint16 // byte offset 4-5
	ValueWidth uint16 // byte offset 6-7
	// Count is the number of key/value records in the payload.
	Count uint32 // byte offset 8-11
	// Buckets is the bucket count of the dictionary that was written; decoding
	// presizes to it.
	Buckets uint32 // byte offset 12-15
	// PayloadLength is the length of the payload after compression.
	PayloadLength uint32 // byte offset 16-19
	// RawLength is Count * (KeyWidth + ValueWidth).
	RawLength uint32 // byte offset 20-23
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 24-31
}

// RecordSize returns the size of one key/value record.
func (h Header) RecordSize() int {
	return int(h.KeyWidth) + int(h.ValueWidth)
}

// Bytes serializes the header. Integer fields use the byte order recorded in
// the flag; the options field is always little-endian so readers can find
// that order first.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Flag.GetEndianEngine()

	binary.LittleEndian.PutUint16(b[offsetOptions:], h.Flag.Options)
	b[offsetCompression] = uint8(h.Flag.Compression)
	engine.PutUint16(b[offsetKeyWidth:], h.KeyWidth)
	engine.PutUint16(b[offsetValueWidth:], h.ValueWidth)
	engine.PutUint32(b[offsetCount:], h.Count)
	engine.PutUint32(b[offsetBuckets:], h.Buckets)
	engine.PutUint32(b[offsetPayloadLen:], h.PayloadLength)
	engine.PutUint32(b[offsetRawLen:], h.RawLength)
	engine.PutUint64(b[offsetChecksum:], h.Checksum)

	return b
}

// Parse parses and validates a header from exactly HeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagic, ErrInvalidHeaderFlags,
//     ErrInvalidCompression or ErrInvalidWidth
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[offsetOptions:])
	h.Flag.Compression = format.CompressionType(data[offsetCompression])
	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if data[offsetReserved] != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	engine := h.Flag.GetEndianEngine()
	h.KeyWidth = engine.Uint16(data[offsetKeyWidth:])
	h.ValueWidth = engine.Uint16(data[offsetValueWidth:])
	h.Count = engine.Uint32(data[offsetCount:])
	h.Buckets = engine.Uint32(data[offsetBuckets:])
	h.PayloadLength = engine.Uint32(data[offsetPayloadLen:])
	h.RawLength = engine.Uint32(data[offsetRawLen:])
	h.Checksum = engine.Uint64(data[offsetChecksum:])

	if err := union.ValidateByteCount(int(h.KeyWidth)); err != nil {
		return fmt.Errorf("key width: %w", err)
	}
	if err := union.ValidateByteCount(int(h.ValueWidth)); err != nil {
		return fmt.Errorf("value width: %w", err)
	}
	if uint64(h.Count)*uint64(h.RecordSize()) != uint64(h.RawLength) {
		return fmt.Errorf("%d records of %d bytes do not fill %d bytes: %w",
			h.Count, h.RecordSize(), h.RawLength, errs.ErrInvalidPayload)
	}

	return nil
}

// ParseHeader parses the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
