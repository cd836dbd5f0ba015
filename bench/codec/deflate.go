package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// deflateTransform is the DEFLATE codec in a zlib envelope.
type deflateTransform struct{}

// NewDeflate returns the deflate/zlib compressor.
func NewDeflate() *Compressor {
	return NewCompressor(deflateTransform{})
}

func (deflateTransform) Name() string { return "deflate" }

func (deflateTransform) Encode(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (deflateTransform) Decode(src []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
