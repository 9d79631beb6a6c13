package collection_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajtatum/BabouExtensions/pkg/collection"
)

func TestShuffle(t *testing.T) {
	t.Parallel()

	t.Run("is a permutation", func(t *testing.T) {
		t.Parallel()

		original := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		shuffled := slices.Clone(original)
		collection.Shuffle(rand.New(rand.NewPCG(7, 11)), shuffled)

		sorted := slices.Clone(shuffled)
		slices.Sort(sorted)
		assert.Equal(t, original, sorted)
	})

	t.Run("same seed same order", func(t *testing.T) {
		t.Parallel()

		a := []string{"a", "b", "c", "d", "e", "f"}
		b := slices.Clone(a)
		collection.Shuffle(rand.New(rand.NewPCG(42, 42)), a)
		collection.Shuffle(rand.New(rand.NewPCG(42, 42)), b)
		assert.Equal(t, a, b)
	})

	t.Run("nil rng", func(t *testing.T) {
		t.Parallel()

		s := []int{1, 2, 3}
		collection.Shuffle(nil, s)
		assert.ElementsMatch(t, []int{1, 2, 3}, s)
	})

	t.Run("tiny slices", func(t *testing.T) {
		t.Parallel()

		var empty []int
		collection.Shuffle(nil, empty)
		assert.Empty(t, empty)

		one := []int{9}
		collection.Shuffle(nil, one)
		assert.Equal(t, []int{9}, one)
	})

	t.Run("matches the rand shuffle for the same seed", func(t *testing.T) {
		t.Parallel()

		got := []int{1, 2, 3, 4, 5, 6, 7, 8}
		want := slices.Clone(got)

		collection.Shuffle(rand.New(rand.NewPCG(5, 9)), got)
		rand.New(rand.NewPCG(5, 9)).Shuffle(len(want), func(i, j int) {
			want[i], want[j] = want[j], want[i]
		})

		assert.Equal(t, want, got)
	})

	t.Run("every position reachable", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewPCG(1, 2))
		firsts := make(map[int]bool)
		for range 200 {
			s := []int{0, 1, 2}
			collection.Shuffle(rng, s)
			firsts[s[0]] = true
		}
		assert.Len(t, firsts, 3)
	})
}

func TestRandomElement(t *testing.T) {
	t.Parallel()

	_, ok := collection.RandomElement[int](nil, nil)
	assert.False(t, ok)

	items := []string{"x", "y", "z"}
	rng := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		v, ok := collection.RandomElement(rng, items)
		require.True(t, ok)
		assert.Contains(t, items, v)
	}

	v, ok := collection.RandomElement(nil, []string{"only"})
	require.True(t, ok)
	assert.Equal(t, "only", v)
}
