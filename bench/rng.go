package bench

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SweepKey uniquely identifies a reproducible benchmark sweep.
// Two sweeps with the same SweepKey and identical configuration MUST produce
// bit-for-bit identical payloads, and therefore identical records.
type SweepKey int64

// NewSweepKey creates a SweepKey from a seed value.
func NewSweepKey(seed int64) SweepKey {
	return SweepKey(seed)
}

// CellName returns the canonical name of one sweep cell. It doubles as the
// persisted payload filename stem, so the format is part of the on-disk
// interop contract: <kind>_<size>_<entropy>.
func CellName(kind SymbolKind, sizeBytes int, entropy float64) string {
	return fmt.Sprintf("%s_%d_%g", kind, sizeBytes, entropy)
}

// PartitionedRNG provides deterministic, isolated RNG instances per sweep
// cell. Each cell's generator is seeded as masterSeed XOR fnv1a64(cellName),
// so a cell's payload does not depend on sweep order or on how many workers
// the sweep runs with.
//
// Thread-safety: NOT thread-safe. Parallel sweeps must call ForCell from a
// single goroutine (or derive all cell RNGs up front) and hand each worker
// its own *rand.Rand.
type PartitionedRNG struct {
	key   SweepKey
	cells map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SweepKey.
func NewPartitionedRNG(key SweepKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:   key,
		cells: make(map[string]*rand.Rand),
	}
}

// ForCell returns a deterministically-seeded RNG for the named cell.
// The same name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForCell(name string) *rand.Rand {
	if rng, ok := p.cells[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.cells[name] = rng
	return rng
}

// Key returns the SweepKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SweepKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
