package compress

import (
	"fmt"

	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/format"
)

// Compressor compresses a complete snapshot payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	// Empty input may yield a nil result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same type.
type Decompressor interface {
	// Decompress returns the original bytes, or an error if data is corrupted
	// or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor decodes a payload whose decoded size is recorded
// elsewhere, such as in a snapshot header.
type SizedDecompressor interface {
	// DecompressSized decodes data into exactly rawSize bytes. It returns an
	// error wrapping ErrInvalidPayload if data does not decode to rawSize bytes.
	DecompressSized(data []byte, rawSize int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
	SizedDecompressor
}

func checkDecodedSize(out []byte, rawSize int) ([]byte, error) {
	if len(out) != rawSize {
		return nil, fmt.Errorf("decoded %d bytes, want %d: %w", len(out), rawSize, errs.ErrInvalidPayload)
	}

	return out, nil
}

// Stats describes the effect of compressing one payload.
type Stats struct {
	Algorithm      format.CompressionType `yaml:"algorithm"`
	OriginalSize   int64                  `yaml:"original_size"`
	CompressedSize int64                  `yaml:"compressed_size"`
}

// Ratio returns compressed size / original size, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
//
// Returns:
//   - Codec: Shared codec instance
//   - error: ErrInvalidCompression wrapped with the offending type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compression type %d: %w", uint8(compressionType), errs.ErrInvalidCompression)
}

// Measure compresses data with codec and reports the resulting sizes along
// with the compressed bytes.
func Measure(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compress: %w", compressionType, err)
	}

	return out, Stats{
		Algorithm:      compressionType,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
	}, nil
}
