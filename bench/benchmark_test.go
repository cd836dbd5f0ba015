package bench

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entropy-bench/entropy-bench/bench/codec"
)

func singleCodecRegistry(t *testing.T) *codec.Registry {
	t.Helper()
	reg := codec.NewRegistry()
	reg.Register(codec.NewGzip())
	return reg
}

func TestOrchestrator_MinimalSweep(t *testing.T) {
	// sweep(sizes=[128], entropies=[0.0, 1.0], kinds=[Byte]) with one codec
	// yields exactly 2 records, each with a positive compressed size.
	cfg := SweepConfig{
		Sizes:     SizeRange{Min: 128, Max: 128, Step: 128},
		Entropies: EntropyRange{Min: 0.0, Max: 1.0, Step: 1.0},
		Kinds:     []SymbolKind{KindByte},
		Seed:      42,
	}

	orch, err := NewOrchestrator(cfg, singleCodecRegistry(t))
	require.NoError(t, err)
	require.NoError(t, orch.Run())

	records := orch.Records()
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, KindByte, r.Kind)
		assert.Equal(t, "gzip", r.Compressor)
		assert.Equal(t, 128, r.OriginalSize)
		assert.Greater(t, r.CompressedSize, 0)
		assert.Greater(t, r.Ratio, 0.0)
	}
	assert.Equal(t, 0.0, records[0].TargetEntropy)
	assert.Equal(t, 1.0, records[1].TargetEntropy)

	// low-entropy cells compress better than high-entropy ones
	assert.Greater(t, records[0].Ratio, records[1].Ratio)
	assert.Less(t, records[0].MeasuredEntropy, records[1].MeasuredEntropy)
}

func TestOrchestrator_RecordsNilBeforeRun(t *testing.T) {
	cfg := SweepConfig{
		Sizes:     SizeRange{Min: 128, Max: 128, Step: 128},
		Entropies: EntropyRange{Min: 0, Max: 1, Step: 1},
		Kinds:     []SymbolKind{KindByte},
	}
	orch, err := NewOrchestrator(cfg, singleCodecRegistry(t))
	require.NoError(t, err)
	assert.Nil(t, orch.Records())
}

func TestOrchestrator_EmptyRegistryRejected(t *testing.T) {
	cfg := SweepConfig{
		Sizes:     SizeRange{Min: 128, Max: 128, Step: 128},
		Entropies: EntropyRange{Min: 0, Max: 1, Step: 1},
		Kinds:     []SymbolKind{KindByte},
	}
	_, err := NewOrchestrator(cfg, codec.NewRegistry())
	assert.Error(t, err)
}

func TestOrchestrator_RecordPerCellAndCompressor(t *testing.T) {
	reg, err := codec.NewDefaultRegistry()
	require.NoError(t, err)

	cfg := SweepConfig{
		Sizes:     SizeRange{Min: 256, Max: 512, Step: 256},
		Entropies: EntropyRange{Min: 0, Max: 1, Step: 0.5},
		Kinds:     []SymbolKind{KindByte, KindInt32},
		Seed:      7,
	}
	orch, err := NewOrchestrator(cfg, reg)
	require.NoError(t, err)
	require.NoError(t, orch.Run())

	// 2 kinds x 2 sizes x 3 entropies x 5 codecs
	assert.Len(t, orch.Records(), 60)
}

func TestOrchestrator_GzipInt32Scenario(t *testing.T) {
	// generate(size=1024, kind=Int32, entropy=0.99) → gzip round trip
	// reproduces the original 1024 bytes exactly.
	minValue, maxValue := DefaultBounds(KindInt32)
	genCfg, err := NewGeneratorConfig(1024, KindInt32, 0.99, minValue, maxValue)
	require.NoError(t, err)
	gen, err := NewGenerator(genCfg, testRNG(42))
	require.NoError(t, err)

	payload, err := gen.Generate()
	require.NoError(t, err)
	require.Len(t, payload, 1024)

	gzip := codec.NewGzip()
	compressed, err := gzip.Compress(payload)
	require.NoError(t, err)
	decompressed, err := gzip.Decompress(compressed.Payload)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, decompressed.Payload))
}

func TestOrchestrator_IntegrityFailureAbortsSweep(t *testing.T) {
	reg := codec.NewRegistry()
	reg.Register(codec.NewCompressor(corruptingTransform{}))

	cfg := SweepConfig{
		Sizes:     SizeRange{Min: 128, Max: 128, Step: 128},
		Entropies: EntropyRange{Min: 0, Max: 1, Step: 0.5},
		Kinds:     []SymbolKind{KindByte},
		Seed:      42,
	}
	orch, err := NewOrchestrator(cfg, reg)
	require.NoError(t, err)

	err = orch.Run()
	require.Error(t, err)
	assert.True(t, IsIntegrityError(err), "got %v, want IntegrityError", err)
	assert.Nil(t, orch.Records(), "aborted sweep must not expose records")
}

func TestOrchestrator_ParallelMatchesSequential(t *testing.T) {
	run := func(workers int) []Record {
		reg, err := codec.NewDefaultRegistry()
		require.NoError(t, err)
		cfg := SweepConfig{
			Sizes:     SizeRange{Min: 256, Max: 1024, Step: 256},
			Entropies: EntropyRange{Min: 0, Max: 1, Step: 0.25},
			Kinds:     []SymbolKind{KindByte, KindFloat64},
			Seed:      42,
			Workers:   workers,
		}
		orch, err := NewOrchestrator(cfg, reg)
		require.NoError(t, err)
		require.NoError(t, orch.Run())
		return orch.Records()
	}

	sequential := run(1)
	parallel := run(4)
	require.Equal(t, len(sequential), len(parallel))

	// identical except for wall-clock timing
	for i := range sequential {
		s, p := sequential[i], parallel[i]
		s.ElapsedMs, p.ElapsedMs = 0, 0
		assert.Equal(t, s, p, "record %d", i)
	}
}

func TestOrchestrator_PersistsArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg := SweepConfig{
		Sizes:     SizeRange{Min: 128, Max: 128, Step: 128},
		Entropies: EntropyRange{Min: 0.5, Max: 0.5, Step: 0.5},
		Kinds:     []SymbolKind{KindByte},
		Seed:      42,
		OutputDir: dir,
	}
	orch, err := NewOrchestrator(cfg, singleCodecRegistry(t))
	require.NoError(t, err)
	require.NoError(t, orch.Run())

	payload, err := os.ReadFile(filepath.Join(dir, "byte_128_0.5"))
	require.NoError(t, err)
	assert.Len(t, payload, 128)

	artifact, err := os.ReadFile(filepath.Join(dir, "byte_128_0.5.gzip"))
	require.NoError(t, err)
	assert.NotEmpty(t, artifact)
}

// corruptingTransform stores bytes as-is but flips one byte on decode,
// simulating a codec with a correctness bug.
type corruptingTransform struct{}

func (corruptingTransform) Name() string { return "corrupt" }

func (corruptingTransform) Encode(src []byte) ([]byte, error) {
	return append([]byte(nil), src...), nil
}

func (corruptingTransform) Decode(src []byte) ([]byte, error) {
	out := append([]byte(nil), src...)
	if len(out) > 0 {
		out[0] ^= 0xff
	}
	return out, nil
}
