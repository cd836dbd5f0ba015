package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4 block framing. The block format does not carry the original length,
// and CompressBlock reports incompressible input by returning zero bytes,
// so each artifact is framed as:
//
//	[uvarint originalLen][flag byte][body]
//
// flag 0x00 means the body is the original bytes stored raw (incompressible
// or empty input); flag 0x01 means the body is an LZ4 block.
const (
	lz4FlagRaw   = 0x00
	lz4FlagBlock = 0x01
)

type lz4Transform struct{}

// NewLZ4 returns the LZ4 block compressor.
func NewLZ4() *Compressor {
	return NewCompressor(lz4Transform{})
}

func (lz4Transform) Name() string { return "lz4" }

func (lz4Transform) Encode(src []byte) ([]byte, error) {
	header := binary.AppendUvarint(nil, uint64(len(src)))

	if len(src) > 0 {
		dst := make([]byte, lz4.CompressBlockBound(len(src)))
		var c lz4.Compressor
		n, err := c.CompressBlock(src, dst)
		if err != nil {
			return nil, err
		}
		if n > 0 && n < len(src) {
			out := append(header, lz4FlagBlock)
			return append(out, dst[:n]...), nil
		}
	}

	// empty or incompressible: store raw
	out := append(header, lz4FlagRaw)
	return append(out, src...), nil
}

func (lz4Transform) Decode(src []byte) ([]byte, error) {
	origLen, n := binary.Uvarint(src)
	if n <= 0 {
		return nil, fmt.Errorf("lz4: malformed length header")
	}
	if n >= len(src) {
		return nil, fmt.Errorf("lz4: truncated frame")
	}
	flag, body := src[n], src[n+1:]

	switch flag {
	case lz4FlagRaw:
		if uint64(len(body)) != origLen {
			return nil, fmt.Errorf("lz4: raw body is %d bytes, header says %d", len(body), origLen)
		}
		return append([]byte(nil), body...), nil

	case lz4FlagBlock:
		dst := make([]byte, origLen)
		m, err := lz4.UncompressBlock(body, dst)
		if err != nil {
			return nil, err
		}
		if uint64(m) != origLen {
			return nil, fmt.Errorf("lz4: decompressed %d bytes, header says %d", m, origLen)
		}
		return dst[:m], nil

	default:
		return nil, fmt.Errorf("lz4: unknown frame flag 0x%02x", flag)
	}
}
