package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

type gzipTransform struct{}

// NewGzip returns the gzip compressor.
func NewGzip() *Compressor {
	return NewCompressor(gzipTransform{})
}

func (gzipTransform) Name() string { return "gzip" }

func (gzipTransform) Encode(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gzipTransform) Decode(src []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
