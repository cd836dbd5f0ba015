package codec

import (
	"github.com/klauspost/compress/zstd"
)

// zstdTransform reuses one encoder/decoder pair across calls; EncodeAll and
// DecodeAll are stateless given concurrency 1.
type zstdTransform struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstd returns the Zstandard compressor.
func NewZstd() (*Compressor, error) {
	// WithZeroFrames makes empty input produce a valid empty frame instead
	// of zero bytes, which would trip the zero-compressed guard.
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true))
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return NewCompressor(&zstdTransform{enc: enc, dec: dec}), nil
}

func (*zstdTransform) Name() string { return "zstd" }

func (t *zstdTransform) Encode(src []byte) ([]byte, error) {
	return t.enc.EncodeAll(src, nil), nil
}

func (t *zstdTransform) Decode(src []byte) ([]byte, error) {
	return t.dec.DecodeAll(src, nil)
}
