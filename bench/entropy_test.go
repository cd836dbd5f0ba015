package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// === Order-0 Tests ===

func TestNormalizedEntropyOrder0_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		seq  []byte
	}{
		{"empty", nil},
		{"single element", []byte{7}},
		{"constant short", []byte{3, 3}},
		{"constant long", []byte{9, 9, 9, 9, 9, 9, 9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizedEntropyOrder0(tt.seq); got != 0.0 {
				t.Errorf("NormalizedEntropyOrder0(%v) = %v, want exactly 0", tt.seq, got)
			}
		})
	}
}

func TestNormalizedEntropyOrder0_AllDistinct(t *testing.T) {
	// All-distinct sequences reach the maximum for their alphabet.
	for _, n := range []int{2, 5, 16, 256} {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i
		}
		assert.InDelta(t, 1.0, NormalizedEntropyOrder0(seq), 1e-12, "n=%d", n)
	}
}

func TestNormalizedEntropyOrder0_KnownValues(t *testing.T) {
	// Two symbols at 50/50 is exactly 1 bit over a 2-symbol alphabet.
	assert.InDelta(t, 1.0, NormalizedEntropyOrder0([]byte{0, 1, 0, 1}), 1e-12)

	// 3:1 split: H = -(0.75*log2(0.75) + 0.25*log2(0.25)) ≈ 0.8113 bits.
	got := NormalizedEntropyOrder0([]byte{0, 0, 0, 1})
	assert.InDelta(t, 0.811278, got, 1e-5)
}

func TestNormalizedEntropyOrder0_GenericSymbolTypes(t *testing.T) {
	// The estimator is polymorphic over the symbol type; the same
	// distribution must score identically regardless of representation.
	asBytes := NormalizedEntropyOrder0([]byte{1, 1, 2, 3})
	asInts := NormalizedEntropyOrder0([]uint32{100, 100, 200, 300})
	asStrings := NormalizedEntropyOrder0([]string{"a", "a", "b", "c"})

	assert.Equal(t, asBytes, asInts)
	assert.Equal(t, asBytes, asStrings)
}

// === Order-1 Tests ===

func TestNormalizedEntropyOrder1_Degenerate(t *testing.T) {
	assert.Zero(t, NormalizedEntropyOrder1[byte](nil))
	assert.Zero(t, NormalizedEntropyOrder1([]byte{5}))
	assert.Zero(t, NormalizedEntropyOrder1([]byte{5, 5, 5, 5}))
}

func TestNormalizedEntropyOrder1_DeterministicSuccessors(t *testing.T) {
	// A strict cycle has several distinct symbols but every context fully
	// determines its successor, so conditional entropy is 0.
	seq := []byte{1, 2, 3, 1, 2, 3, 1, 2, 3, 1}
	assert.InDelta(t, 0.0, NormalizedEntropyOrder1(seq), 1e-12)
}

func TestNormalizedEntropyOrder1_BelowOrder0ForStructuredData(t *testing.T) {
	// Alternating symbols look maximally random to order-0 but are fully
	// predictable given one symbol of context.
	seq := make([]byte, 1024)
	for i := range seq {
		seq[i] = byte(i % 2)
	}
	o0 := NormalizedEntropyOrder0(seq)
	o1 := NormalizedEntropyOrder1(seq)

	assert.InDelta(t, 1.0, o0, 1e-9)
	assert.InDelta(t, 0.0, o1, 1e-9)
}

func TestNormalizedEntropyOrder1_Range(t *testing.T) {
	seq := []byte{0, 1, 1, 0, 2, 1, 0, 0, 2, 2, 1, 0}
	got := NormalizedEntropyOrder1(seq)
	if got < 0 || got > 1 {
		t.Errorf("order-1 entropy %v out of [0, 1]", got)
	}
}

// === Distribution Entropy Tests ===

func TestDistributionEntropy(t *testing.T) {
	assert.Zero(t, DistributionEntropy(nil))
	assert.Zero(t, DistributionEntropy([]float64{1.0}))

	uniform := []float64{0.25, 0.25, 0.25, 0.25}
	assert.InDelta(t, 1.0, DistributionEntropy(uniform), 1e-12)

	// concentrated mass scores near zero
	peaked := []float64{0.999, 0.0005, 0.0005}
	got := DistributionEntropy(peaked)
	if got > 0.01 {
		t.Errorf("peaked distribution entropy = %v, want < 0.01", got)
	}

	// zero entries must not produce NaN
	withZeros := []float64{0.5, 0.5, 0, 0}
	assert.False(t, math.IsNaN(DistributionEntropy(withZeros)))
}
