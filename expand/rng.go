// Package expand - RNG utilities for the randomized strategy.
//
// This file centralizes deterministic random generation for QDrift.
//
// Goals:
//   - Determinism: same seed ⇒ identical sampled factor list across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Expand call builds its own
//     stream from the configured seed, so concurrent Expand calls on the
//     same strategy never share RNG state.
package expand

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sampleIndex draws one index from the discrete distribution whose weight
// for index i is weights[i] ≥ 0, with total mass total > 0. Deterministic
// given the RNG state; ties on boundaries resolve to the lower index.
//
// Complexity: O(n) per draw - fine for the short term lists QDrift sees.
func sampleIndex(rng *rand.Rand, weights []float64, total float64) int {
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}

	// Float round-off can leave r marginally positive after the last
	// subtraction; attribute that mass to the final index.
	return len(weights) - 1
}
