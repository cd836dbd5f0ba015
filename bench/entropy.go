// Entropy estimation over symbol sequences.
//
// Both estimators return *normalized* Shannon entropy: the empirical entropy
// divided by the maximum entropy achievable with the observed alphabet, so
// results are unitless in [0, 1] and comparable across payload sizes and
// symbol kinds. Degenerate inputs (empty, single element, single distinct
// value) have entropy 0 by definition, never a division by zero.

package bench

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// NormalizedEntropyOrder0 computes the zero-order normalized Shannon entropy
// of a sequence: each symbol counted independently of its neighbors.
func NormalizedEntropyOrder0[T comparable](seq []T) float64 {
	counts := make(map[T]int, 256)
	for _, v := range seq {
		counts[v]++
	}
	if len(counts) <= 1 {
		return 0
	}

	probs := make([]float64, 0, len(counts))
	total := float64(len(seq))
	for _, c := range counts {
		probs = append(probs, float64(c)/total)
	}

	// stat.Entropy is in nats; dividing by ln(alphabet) cancels the base,
	// so the result equals H_bits / log2(alphabet).
	return stat.Entropy(probs) / math.Log(float64(len(counts)))
}

// NormalizedEntropyOrder1 computes the first-order (context) normalized
// entropy: the entropy of a symbol conditioned on its immediate predecessor,
// averaged over contexts weighted by how often each context occurs.
func NormalizedEntropyOrder1[T comparable](seq []T) float64 {
	if len(seq) <= 1 {
		return 0
	}

	alphabet := make(map[T]struct{}, 256)
	for _, v := range seq {
		alphabet[v] = struct{}{}
	}
	if len(alphabet) <= 1 {
		return 0
	}

	// successor frequency table per context symbol
	successors := make(map[T]map[T]int)
	ctxTotals := make(map[T]int)
	for i := 0; i < len(seq)-1; i++ {
		ctx, next := seq[i], seq[i+1]
		m, ok := successors[ctx]
		if !ok {
			m = make(map[T]int)
			successors[ctx] = m
		}
		m[next]++
		ctxTotals[ctx]++
	}

	transitions := float64(len(seq) - 1)
	var weighted float64
	for ctx, m := range successors {
		ctxCount := float64(ctxTotals[ctx])
		probs := make([]float64, 0, len(m))
		for _, c := range m {
			probs = append(probs, float64(c)/ctxCount)
		}
		weighted += (ctxCount / transitions) * stat.Entropy(probs)
	}

	return weighted / math.Log(float64(len(alphabet)))
}

// DistributionEntropy computes the normalized entropy of a probability
// vector directly, treating each slot as one outcome. Used by the shaper to
// score candidate distributions without sampling.
func DistributionEntropy(probs []float64) float64 {
	if len(probs) <= 1 {
		return 0
	}
	return stat.Entropy(probs) / math.Log(float64(len(probs)))
}
