package collection_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajtatum/BabouExtensions/pkg/collection"
)

type person struct {
	name string
	age  int
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, collection.IsEmpty[int](nil))
	assert.True(t, collection.IsEmpty([]int{}))
	assert.False(t, collection.IsEmpty([]int{0}))
}

func TestMatches(t *testing.T) {
	t.Parallel()

	assert.True(t, collection.Matches([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.False(t, collection.Matches([]int{1, 2, 3}, []int{3, 2, 1}), "order matters")
	assert.False(t, collection.Matches([]int{1, 2}, []int{1, 2, 3}))
	assert.True(t, collection.Matches[string](nil, []string{}))
}

func TestWhereIf(t *testing.T) {
	t.Parallel()

	numbers := []int{1, 2, 3, 4, 5, 6}
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4, 6}, collection.WhereIf(numbers, true, even))
	assert.Equal(t, numbers, collection.WhereIf(numbers, false, even))
	assert.Equal(t, numbers, collection.WhereIf(numbers, true, nil))
}

func TestBetween(t *testing.T) {
	t.Parallel()

	people := []person{
		{"ann", 12},
		{"bob", 18},
		{"cid", 40},
		{"dee", 65},
		{"eve", 90},
	}
	age := func(p person) int { return p.age }

	adults := collection.Between(people, age, 18, 65)
	names := collection.Map(adults, func(p person) string { return p.name })
	assert.Equal(t, []string{"bob", "cid", "dee"}, names)

	assert.Empty(t, collection.Between(people, age, 100, 120))
	assert.Nil(t, collection.Between[person, int](people, nil, 0, 100))

	words := []string{"apple", "banana", "cherry", "date"}
	byWord := collection.Between(words, func(s string) string { return s }, "b", "cz")
	assert.Equal(t, []string{"banana", "cherry"}, byWord)
}

func TestForEach(t *testing.T) {
	t.Parallel()

	var seen []int
	collection.ForEach([]int{3, 1, 2}, func(n int) { seen = append(seen, n) })
	assert.Equal(t, []int{3, 1, 2}, seen)

	assert.NotPanics(t, func() { collection.ForEach([]int{1}, nil) })
}

func TestMap(t *testing.T) {
	t.Parallel()

	result := collection.Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, result)
	assert.Empty(t, collection.Map([]int{}, strconv.Itoa))
}

func TestMapE(t *testing.T) {
	t.Parallel()

	result, err := collection.MapE([]string{"1", "2", "3"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, result)

	result, err = collection.MapE([]string{"1", "x", "3"}, strconv.Atoi)
	require.Error(t, err)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Nil(t, result)
}
