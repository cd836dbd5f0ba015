package bench

import (
	"testing"
)

// === SweepKey Tests ===

func TestSweepKey_Creation(t *testing.T) {
	for _, seed := range []int64{42, 0, -1} {
		key := NewSweepKey(seed)
		if int64(key) != seed {
			t.Errorf("NewSweepKey(%d) = %d, want %d", seed, key, seed)
		}
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// Same key+cell produces the same sequence across instances.
	rng1 := NewPartitionedRNG(NewSweepKey(42))
	rng2 := NewPartitionedRNG(NewSweepKey(42))

	cell := CellName(KindByte, 1024, 0.5)
	for i := 0; i < 5; i++ {
		v1 := rng1.ForCell(cell).Float64()
		v2 := rng2.ForCell(cell).Float64()
		if v1 != v2 {
			t.Errorf("draw %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_CellIsolation(t *testing.T) {
	// Draining one cell's RNG must not perturb another cell's stream.
	rngA := NewPartitionedRNG(NewSweepKey(42))
	rngB := NewPartitionedRNG(NewSweepKey(42))

	other := CellName(KindInt32, 4096, 0.25)
	target := CellName(KindByte, 128, 1.0)

	for i := 0; i < 100; i++ {
		rngA.ForCell(other).Float64()
	}

	for i := 0; i < 5; i++ {
		v1 := rngA.ForCell(target).Float64()
		v2 := rngB.ForCell(target).Float64()
		if v1 != v2 {
			t.Errorf("draw %d: cell %q affected by draws from %q", i, target, other)
		}
	}
}

func TestPartitionedRNG_CachesInstances(t *testing.T) {
	rng := NewPartitionedRNG(NewSweepKey(7))
	cell := CellName(KindFloat64, 64, 0.0)
	if rng.ForCell(cell) != rng.ForCell(cell) {
		t.Error("ForCell returned distinct instances for the same cell")
	}
}

func TestCellName_InteropFormat(t *testing.T) {
	// The cell name doubles as the persisted payload filename; the format is
	// an interop contract.
	tests := []struct {
		kind    SymbolKind
		size    int
		entropy float64
		want    string
	}{
		{KindByte, 128, 0.0, "byte_128_0"},
		{KindInt32, 1024, 0.99, "int32_1024_0.99"},
		{KindFloat64, 65536, 0.5, "float64_65536_0.5"},
	}
	for _, tt := range tests {
		if got := CellName(tt.kind, tt.size, tt.entropy); got != tt.want {
			t.Errorf("CellName(%s, %d, %g) = %q, want %q", tt.kind, tt.size, tt.entropy, got, tt.want)
		}
	}
}
