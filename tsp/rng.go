// Package tsp - deterministic instance generation for demos and tests.
//
// Goals:
//   - Determinism: same seed ⇒ identical cities across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; GenerateCities creates
// a fresh private stream per call, so concurrent calls are fine.

package tsp

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// coordinateSpan bounds generated coordinates to [0, coordinateSpan).
const coordinateSpan = 100.0

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// GenerateCities returns n deterministic pseudo-random cities labeled
// "City1".."CityN" with coordinates in [0, 100). Intended for demos,
// benchmarks and tests; n < 1 yields an empty slice.
//
// Complexity: O(n).
func GenerateCities(n int, seed int64) []City {
	if n < 1 {
		return nil
	}

	var (
		rng = rngFromSeed(seed)
		out = make([]City, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = City{
			Label: fmt.Sprintf("City%d", i+1),
			X:     rng.Float64() * coordinateSpan,
			Y:     rng.Float64() * coordinateSpan,
		}
	}

	return out
}
