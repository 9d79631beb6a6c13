package collection

import "math/rand/v2"

// Shuffle permutes s in place. A nil rng draws from the auto-seeded global
// source, which is safe for concurrent use.
func Shuffle[T any](rng *rand.Rand, s []T) {
	swap := func(i, j int) { s[i], s[j] = s[j], s[i] }

	if rng == nil {
		rand.Shuffle(len(s), swap)
		return
	}
	rng.Shuffle(len(s), swap)
}

// RandomElement picks one element of s. It returns false for an empty slice.
func RandomElement[T any](rng *rand.Rand, s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}

	if rng == nil {
		return s[rand.IntN(len(s))], true
	}
	return s[rng.IntN(len(s))], true
}
