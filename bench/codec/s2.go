package codec

import (
	"github.com/klauspost/compress/s2"
)

type s2Transform struct{}

// NewS2 returns the S2 (Snappy-compatible) compressor.
func NewS2() *Compressor {
	return NewCompressor(s2Transform{})
}

func (s2Transform) Name() string { return "s2" }

func (s2Transform) Encode(src []byte) ([]byte, error) {
	return s2.Encode(nil, src), nil
}

func (s2Transform) Decode(src []byte) ([]byte, error) {
	return s2.Decode(nil, src)
}
