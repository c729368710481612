// Package snapshot serializes dictionaries of union cells to a compact binary
// form and back.
//
// A snapshot is a 32-byte header followed by a payload of fixed-size records,
// each the raw bytes of one key cell followed by one value cell, compressed
// with one of the compress codecs:
//
//	data, err := snapshot.Encode(cells, snapshot.WithCompression(format.CompressionS2))
//	restored, err := snapshot.Decode[union.W16, union.W32](data)
//
// Cells hold values in native byte order and carry no type information, so a
// snapshot can only be decoded on a host with the writer's byte order; Decode
// returns ErrEndianMismatch otherwise. The header records the order so that
// ParseHeader and Describe still work on foreign snapshots.
package snapshot
