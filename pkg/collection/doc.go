// Package collection provides generic slice helpers: shuffling and random
// picks with an injectable random source, English list joining, optional
// filtering and range queries, and Map/MapE.
//
// # Usage
//
//	import "github.com/ajtatum/BabouExtensions/pkg/collection"
//
//	collection.JoinWithFinal([]string{"red", "green", "blue"}, "and")
//	// "red, green, and blue"
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	collection.Shuffle(rng, deck)
//
//	adults := collection.Between(people, Person.Age, 18, 120)
//
// # Randomness
//
// Shuffle and RandomElement take a *rand.Rand from math/rand/v2. Pass a
// seeded generator for reproducible results, or nil to use the global
// source. A *rand.Rand is not safe for concurrent use; the global source is.
package collection
