// Package compress provides the payload codecs used by snapshot.
//
// A snapshot payload is a run of raw union cells: fixed-width records with
// long zero tails when small values sit in wide cells, which every codec here
// shrinks well. Codecs are selected by format.CompressionType:
//
//   - CompressionNone: pass-through
//   - CompressionZstd: best ratio, klauspost/compress/zstd (pure Go); the
//     cgo build of valyala/gozstd is selected with the gozstd tag
//   - CompressionS2: fast, klauspost/compress/s2
//   - CompressionLZ4: fast block compression, pierrec/lz4
//
// All codecs are stateless values backed by pooled encoders where the
// underlying library benefits from reuse, and are safe for concurrent use.
package compress
