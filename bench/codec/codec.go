// Package codec wraps interchangeable compression backends behind one
// uniform capability: compress/decompress over bytes or files, each call
// returning a timed, size-annotated Result. The byte transforms themselves
// are thin forwards to external codec libraries; the contract this package
// owns is the result shape, the timing measurement, and the ratio guard.
package codec

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrZeroCompressed is returned when a transform reports a zero-byte
// compressed output, which would make the compression ratio undefined.
// The hazard is surfaced as an explicit error, never as a NaN/Inf ratio.
var ErrZeroCompressed = errors.New("compressed size is zero, ratio undefined")

// Result captures one compress or decompress operation. For compression,
// OriginalSize is the input and Payload holds the compressed bytes; for
// decompression, OriginalSize is the recovered size and Payload holds the
// recovered bytes. Ratio is always originalSize/compressedSize.
type Result struct {
	OriginalSize   int
	CompressedSize int
	Ratio          float64
	Elapsed        time.Duration
	Payload        []byte
	SourcePath     string
}

// ElapsedMs returns the operation time in milliseconds.
func (r Result) ElapsedMs() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Transform is the raw byte-level codec boundary. Implementations forward
// to an external compression library and carry no timing or sizing logic.
type Transform interface {
	Name() string
	Encode(src []byte) ([]byte, error)
	Decode(src []byte) ([]byte, error)
}

// Compressor is the uniform four-operation capability the orchestrator sees:
// compress and decompress, each over raw bytes or a file path.
type Compressor struct {
	transform Transform
}

// NewCompressor wraps a raw transform in the uniform capability.
func NewCompressor(t Transform) *Compressor {
	return &Compressor{transform: t}
}

// Name returns the codec's registry key, also used as the artifact file
// extension for persisted compressed payloads.
func (c *Compressor) Name() string {
	return c.transform.Name()
}

// Compress compresses data and returns the timed result.
func (c *Compressor) Compress(data []byte) (Result, error) {
	start := time.Now()
	out, err := c.transform.Encode(data)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("codec %s: compress: %w", c.Name(), err)
	}
	return c.result(len(data), len(out), out, elapsed)
}

// CompressFile reads the payload at path, compresses it, and writes the
// compressed artifact next to it as "<path>.<codecName>". Both the read and
// the write release their handles on every exit path.
func (c *Compressor) CompressFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("codec %s: read %s: %w", c.Name(), path, err)
	}
	res, err := c.Compress(data)
	if err != nil {
		return Result{}, err
	}
	res.SourcePath = path
	artifact := path + "." + c.Name()
	if err := os.WriteFile(artifact, res.Payload, 0o644); err != nil {
		return Result{}, fmt.Errorf("codec %s: write %s: %w", c.Name(), artifact, err)
	}
	return res, nil
}

// Decompress recovers the original bytes from compressed data.
func (c *Compressor) Decompress(data []byte) (Result, error) {
	start := time.Now()
	out, err := c.transform.Decode(data)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("codec %s: decompress: %w", c.Name(), err)
	}
	return c.result(len(out), len(data), out, elapsed)
}

// DecompressFile reads a compressed artifact and recovers the original bytes.
func (c *Compressor) DecompressFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("codec %s: read %s: %w", c.Name(), path, err)
	}
	res, err := c.Decompress(data)
	if err != nil {
		return Result{}, err
	}
	res.SourcePath = path
	return res, nil
}

// result assembles a Result, guarding the ratio against a zero-sized
// compressed payload.
func (c *Compressor) result(originalSize, compressedSize int, payload []byte, elapsed time.Duration) (Result, error) {
	if compressedSize == 0 {
		return Result{}, fmt.Errorf("codec %s: %w", c.Name(), ErrZeroCompressed)
	}
	return Result{
		OriginalSize:   originalSize,
		CompressedSize: compressedSize,
		Ratio:          float64(originalSize) / float64(compressedSize),
		Elapsed:        elapsed,
		Payload:        payload,
	}, nil
}
