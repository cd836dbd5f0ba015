// Probability shaping: turn a target normalized entropy into a concrete
// probability vector that the generator samples from.
//
// NOTE ON SEMANTICS: the vector's length equals the payload's element count,
// and each entry is a *positional slot* weight, not a per-distinct-value
// probability. This conflates slot weight with symbol probability and is not
// the classical statistical model — it is preserved exactly because prior
// baseline measurements depend on it. Do not "correct" it to an
// alphabet-sized vector without re-baselining every downstream comparison.

package bench

const (
	// shaperStep is the mass moved into or out of slot 0 per iteration.
	shaperStep = 0.01
	// shaperTolerance is the convergence threshold on |current - target|.
	shaperTolerance = 0.001
	// shaperMaxIterations bounds the hill climb. Targets very close to 0 or 1
	// may hit the cap without converging; the best-effort vector is returned.
	shaperMaxIterations = 2000
	// shaperSlot0Cap keeps slot 0 strictly below certainty so the remaining
	// slots always retain some mass.
	shaperSlot0Cap = 0.99
)

// ShapeDistribution produces a probability vector of length n whose
// normalized entropy approximates target. Mass is concentrated into slot 0
// to lower entropy and spread back toward uniform to raise it; every other
// slot always carries an equal share of the remainder. The climb is a
// bounded 1-D search: step 0.01, tolerance 0.001, at most 2000 iterations.
// Exact convergence is not guaranteed near the extremes and callers must not
// assume it.
func ShapeDistribution(target float64, n int) []float64 {
	probs := make([]float64, n)
	uniform := 1.0 / float64(n)
	for i := range probs {
		probs[i] = uniform
	}
	if n <= 1 {
		return probs
	}

	current := DistributionEntropy(probs)
	for iter := 0; iter < shaperMaxIterations; iter++ {
		diff := current - target
		if diff < shaperTolerance && diff > -shaperTolerance {
			break
		}

		if current > target {
			probs[0] += shaperStep
			if probs[0] > shaperSlot0Cap {
				probs[0] = shaperSlot0Cap
			}
		} else {
			probs[0] -= shaperStep
			if probs[0] < uniform {
				probs[0] = uniform
			}
		}

		// remaining mass is always spread evenly over slots 1..n-1
		rest := (1.0 - probs[0]) / float64(n-1)
		for i := 1; i < n; i++ {
			probs[i] = rest
		}

		current = DistributionEntropy(probs)
	}

	return probs
}
