package compress

// ZstdCompressor compresses with Zstandard. It gives the best ratio of the
// built-in codecs and suits snapshots that are written once and kept.
//
// The default build uses the pure Go implementation from klauspost/compress;
// zstd_cgo.go holds the gozstd variant.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
