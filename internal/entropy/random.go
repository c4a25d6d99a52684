// Package entropy provides the single seeded random stream that the
// simulator threads through every phase and event unit, plus the weighted
// selection helpers built on top of it. Reproducibility depends on every
// caller drawing from the same stream in a fixed order.
package entropy

import "math/rand"

// NewStream returns a deterministic random stream for the given seed.
func NewStream(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// WeightedIndex picks an index with probability proportional to weights[i].
// Weights need not sum to 1; relative magnitude is what matters. Entries
// that are zero or negative are never selected. If no weight is positive
// the choice degrades to uniform.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	r := rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Choice returns a uniformly random element of items. Panics on an empty
// slice, matching rand.Intn semantics; callers guard for emptiness.
func Choice[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// Sample returns k distinct elements drawn without replacement.
// k must not exceed len(items).
func Sample[T any](rng *rand.Rand, items []T, k int) []T {
	idx := rng.Perm(len(items))
	out := make([]T, k)
	for i := 0; i < k; i++ {
		out[i] = items[idx[i]]
	}
	return out
}

// IntBetween returns a uniform int in the inclusive range [lo, hi].
func IntBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Chance returns true with probability p. Always consumes exactly one draw.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Clamp restricts p to the inclusive band [lo, hi].
func Clamp(p, lo, hi float64) float64 {
	if p < lo {
		return lo
	}
	if p > hi {
		return hi
	}
	return p
}
