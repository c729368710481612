//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/slotkit/errs"
)

// zstdLevel matches zstd.SpeedDefault of the pure Go build, so snapshots
// written by either build are the same size class and decode with both.
const zstdLevel = 3

// Compress compresses data as one Zstandard frame with the cgo bindings.
// Checksums are left to the snapshot header, as in the pure Go build.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decodes Zstandard frames with the cgo bindings.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressSized decodes Zstandard frames into a buffer preallocated to
// rawSize bytes, which gozstd appends to without growing.
func (c ZstdCompressor) DecompressSized(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkDecodedSize(nil, rawSize)
	}

	out, err := gozstd.Decompress(make([]byte, 0, rawSize), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w: %w", errs.ErrInvalidPayload, err)
	}

	return checkDecodedSize(out, rawSize)
}
