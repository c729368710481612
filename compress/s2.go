package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/slotkit/errs"
)

// S2Compressor compresses with S2, a Snappy extension tuned for speed.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes a single S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSized decodes a single S2 block of rawSize bytes. The block's own
// length prefix is checked against rawSize before anything is allocated, so a
// payload that disagrees with its snapshot header is rejected cheaply.
func (c S2Compressor) DecompressSized(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkDecodedSize(nil, rawSize)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w: %w", errs.ErrInvalidPayload, err)
	}
	if n != rawSize {
		return nil, fmt.Errorf("s2 block holds %d bytes, want %d: %w", n, rawSize, errs.ErrInvalidPayload)
	}

	out, err := s2.Decode(make([]byte, rawSize), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w: %w", errs.ErrInvalidPayload, err)
	}

	return checkDecodedSize(out, rawSize)
}
