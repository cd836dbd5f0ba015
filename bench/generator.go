// Synthetic payload generation.
//
// A payload is produced in three phases: shape a probability vector for the
// requested entropy, fill an element buffer by replicating fresh uniform
// draws according to the vector, then shuffle and serialize. The shuffle is
// required: it decorrelates buffer position from slot assignment so the
// measured entropy reflects the value distribution rather than positional
// runs.

package bench

import (
	"encoding/binary"
	"math"
	"math/rand"
	"os"
)

// Generator produces entropy-targeted synthetic payloads for one config.
// The RNG is instance-local so that parallel sweep workers stay reproducible.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// NewGenerator validates cfg and returns a Generator drawing from rng.
func NewGenerator(cfg GeneratorConfig, rng *rand.Rand) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, rng: rng}, nil
}

// Config returns the generator's validated configuration.
func (g *Generator) Config() GeneratorConfig {
	return g.cfg
}

// Generate produces the payload bytes. The result is always exactly
// ElementCount()*width bytes, which may be shorter than the requested
// payload size when the size is not a multiple of the element width.
func (g *Generator) Generate() ([]byte, error) {
	n := g.cfg.ElementCount()
	dist := ShapeDistribution(g.cfg.TargetEntropy, n)

	switch g.cfg.Kind {
	case KindInt32:
		vals := fillSlots(g.rng, dist, n, g.drawInt32)
		buf := make([]byte, n*4)
		for i, v := range vals {
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
		}
		return buf, nil

	case KindFloat32:
		vals := fillSlots(g.rng, dist, n, g.drawFloat32)
		buf := make([]byte, n*4)
		for i, v := range vals {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
		}
		return buf, nil

	case KindFloat64:
		vals := fillSlots(g.rng, dist, n, g.drawFloat64)
		buf := make([]byte, n*8)
		for i, v := range vals {
			binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
		}
		return buf, nil

	case KindByte:
		// byte payloads are the element buffer itself
		return fillSlots(g.rng, dist, n, g.drawByte), nil

	default:
		return nil, &ConfigError{Field: "kind", Reason: g.cfg.Kind.String()}
	}
}

// GenerateFile generates the payload and writes it to path. The write is
// scoped: the file handle is released on every exit path.
func (g *Generator) GenerateFile(path string) ([]byte, error) {
	data, err := g.Generate()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}
	return data, nil
}

// fillSlots builds the element buffer from a slot-weight vector. Slot i
// contributes floor(dist[i]*n) copies of one fresh draw; positions left over
// from the flooring are filled with additional fresh draws. The buffer is
// then uniformly shuffled.
func fillSlots[T any](rng *rand.Rand, dist []float64, n int, draw func() T) []T {
	out := make([]T, 0, n)
	for _, p := range dist {
		count := int(p * float64(n))
		if count > n-len(out) {
			count = n - len(out)
		}
		if count == 0 {
			continue
		}
		v := draw()
		for j := 0; j < count; j++ {
			out = append(out, v)
		}
	}
	for len(out) < n {
		out = append(out, draw())
	}

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (g *Generator) drawInt32() int32 {
	lo, hi := int64(g.cfg.MinValue), int64(g.cfg.MaxValue)
	return int32(lo + g.rng.Int63n(hi-lo+1))
}

func (g *Generator) drawFloat32() float32 {
	return float32(g.cfg.MinValue + g.rng.Float64()*(g.cfg.MaxValue-g.cfg.MinValue))
}

func (g *Generator) drawFloat64() float64 {
	return g.cfg.MinValue + g.rng.Float64()*(g.cfg.MaxValue-g.cfg.MinValue)
}

func (g *Generator) drawByte() byte {
	lo, hi := int64(g.cfg.MinValue), int64(g.cfg.MaxValue)
	return byte(lo + g.rng.Int63n(hi-lo+1))
}
