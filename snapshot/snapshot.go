package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/slotkit/compress"
	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/format"
	"github.com/arloliu/slotkit/hashmap"
	"github.com/arloliu/slotkit/internal/hash"
	"github.com/arloliu/slotkit/internal/options"
	"github.com/arloliu/slotkit/internal/pool"
	"github.com/arloliu/slotkit/primes"
	"github.com/arloliu/slotkit/union"
)

// Cells is a dictionary from KW-wide cells to VW-wide cells.
type Cells[KW union.Width, VW union.Width] = hashmap.Dictionary[union.Data[KW], union.Data[VW]]

// Config holds encoding settings.
type Config struct {
	compression format.CompressionType
}

// Option configures Encode.
type Option = options.Option[*Config]

// WithCompression selects the payload codec. The default is Zstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if !compression.IsValid() {
			return fmt.Errorf("compression type %d: %w", uint8(compression), errs.ErrInvalidCompression)
		}
		c.compression = compression

		return nil
	})
}

// Encode writes every entry of d to a new snapshot.
//
// Returns:
//   - []byte: Header followed by the compressed payload
//   - error: ErrInvalidCompression for a bad option, ErrInvalidPayload if the
//     payload exceeds the 4GiB the header can describe, or a codec error
func Encode[KW union.Width, VW union.Width](d *Cells[KW, VW], opts ...Option) ([]byte, error) {
	cfg := &Config{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	keyWidth := union.ByteCountOf[KW]()
	valueWidth := union.ByteCountOf[VW]()
	rawLen := uint64(d.Len()) * uint64(keyWidth+valueWidth)
	if rawLen > math.MaxUint32 {
		return nil, fmt.Errorf("payload of %d bytes: %w", rawLen, errs.ErrInvalidPayload)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(int(rawLen))
	for k, v := range d.All() {
		buf.B = k.AppendTo(buf.B)
		buf.B = v.AppendTo(buf.B)
	}
	raw := buf.Bytes()

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("compressed payload of %d bytes: %w", len(payload), errs.ErrInvalidPayload)
	}

	h := Header{
		Flag:          NewFlag(cfg.compression),
		KeyWidth:      uint16(keyWidth),
		ValueWidth:    uint16(valueWidth),
		Count:         uint32(d.Len()),
		Buckets:       uint32(d.Stats().Buckets),
		PayloadLength: uint32(len(payload)),
		RawLength:     uint32(len(raw)),
		Checksum:      hash.Bytes(raw),
	}

	// payload may alias the pooled buffer, so it is copied before the buffer is released.
	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, h.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

// Decode rebuilds a dictionary from a snapshot produced by Encode with the
// same widths. Extra options are passed to the dictionary constructor.
//
// Returns:
//   - *Cells[KW, VW]: Dictionary holding every record of the snapshot
//   - error: header errors from ParseHeader, ErrEndianMismatch,
//     ErrWidthMismatch, ErrInvalidPayload or ErrChecksumMismatch
func Decode[KW union.Width, VW union.Width](data []byte, opts ...hashmap.Option) (*Cells[KW, VW], error) {
	h, raw, err := open(data)
	if err != nil {
		return nil, err
	}

	if !h.Flag.IsNative() {
		return nil, errs.ErrEndianMismatch
	}
	if int(h.KeyWidth) != union.ByteCountOf[KW]() || int(h.ValueWidth) != union.ByteCountOf[VW]() {
		return nil, fmt.Errorf("snapshot holds %d/%d-byte cells, want %d/%d: %w",
			h.KeyWidth, h.ValueWidth, union.ByteCountOf[KW](), union.ByteCountOf[VW](), errs.ErrWidthMismatch)
	}

	opts = append([]hashmap.Option{hashmap.WithCapacity(int(h.Count))}, opts...)
	d, err := hashmap.NewUnionKeyed[KW, union.Data[VW]](opts...)
	if err != nil {
		return nil, err
	}
	// Restore the writer's table size, but never beyond one growth step past
	// the record count so a forged header cannot force a huge allocation.
	buckets := min(int(h.Buckets), primes.ExpandPrime(int(h.Count)))
	if _, err := d.EnsureCapacity(buckets); err != nil {
		return nil, err
	}

	var (
		key   union.Data[KW]
		value union.Data[VW]
	)
	keyWidth := int(h.KeyWidth)
	for off := 0; off < len(raw); off += h.RecordSize() {
		if err := key.Load(raw[off : off+keyWidth]); err != nil {
			return nil, err
		}
		if err := value.Load(raw[off+keyWidth : off+h.RecordSize()]); err != nil {
			return nil, err
		}
		if !d.Set(key, value) {
			return nil, fmt.Errorf("duplicate key %s: %w", key, errs.ErrInvalidPayload)
		}
	}

	return d, nil
}

// open validates the header and returns the decompressed, checksummed payload.
func open(data []byte) (Header, []byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	if uint64(len(data)-HeaderSize) != uint64(h.PayloadLength) {
		return Header{}, nil, fmt.Errorf("have %d payload bytes, header says %d: %w",
			len(data)-HeaderSize, h.PayloadLength, errs.ErrInvalidPayload)
	}

	codec, err := compress.GetCodec(h.Flag.Compression)
	if err != nil {
		return Header{}, nil, err
	}
	// The header's raw length sizes the output, so codecs that cannot learn
	// it from the payload (LZ4) decode any size in one pass.
	raw, err := codec.DecompressSized(data[HeaderSize:], int(h.RawLength))
	if err != nil {
		return Header{}, nil, fmt.Errorf("decompress payload: %w", err)
	}
	if hash.Bytes(raw) != h.Checksum {
		return Header{}, nil, errs.ErrChecksumMismatch
	}

	return h, raw, nil
}

// Info summarizes a snapshot without decoding its cells.
type Info struct {
	KeyWidth   int            `yaml:"key_width"`
	ValueWidth int            `yaml:"value_width"`
	Count      int            `yaml:"count"`
	Buckets    int            `yaml:"buckets"`
	BigEndian  bool           `yaml:"big_endian"`
	Native     bool           `yaml:"native"`
	Checksum   string         `yaml:"checksum"`
	Payload    compress.Stats `yaml:"payload"`
}

// Describe validates a snapshot, including its checksum, and summarizes it.
// Unlike Decode it accepts snapshots written with a foreign byte order.
func Describe(data []byte) (Info, error) {
	h, _, err := open(data)
	if err != nil {
		return Info{}, err
	}

	return Info{
		KeyWidth:   int(h.KeyWidth),
		ValueWidth: int(h.ValueWidth),
		Count:      int(h.Count),
		Buckets:    int(h.Buckets),
		BigEndian:  h.Flag.IsBigEndian(),
		Native:     h.Flag.IsNative(),
		Checksum:   fmt.Sprintf("%016x", h.Checksum),
		Payload: compress.Stats{
			Algorithm:      h.Flag.Compression,
			OriginalSize:   int64(h.RawLength),
			CompressedSize: int64(h.PayloadLength),
		},
	}, nil
}
