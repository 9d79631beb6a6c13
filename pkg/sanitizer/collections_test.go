package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajtatum/BabouExtensions/pkg/sanitizer"
)

func TestFilterEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "filters empty strings",
			input:    []string{"hello", "", "world", "   ", "test"},
			expected: []string{"hello", "world", "test"},
		},
		{
			name:     "handles all empty",
			input:    []string{"", "   ", "\t\n"},
			expected: []string{},
		},
		{
			name:     "keeps surrounding whitespace of kept items",
			input:    []string{" a ", ""},
			expected: []string{" a "},
		},
		{
			name:     "handles nil slice",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.FilterEmpty(tt.input))
		})
	}
}

func TestDeduplicate(t *testing.T) {
	t.Parallel()

	t.Run("strings keep first occurrence order", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.Deduplicate([]string{"b", "a", "b", "c", "a"})
		assert.Equal(t, []string{"b", "a", "c"}, result)
	})

	t.Run("case sensitive", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.Deduplicate([]string{"A", "a", "A"})
		assert.Equal(t, []string{"A", "a"}, result)
	})

	t.Run("integers", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.Deduplicate([]int{3, 1, 3, 2, 1})
		assert.Equal(t, []int{3, 1, 2}, result)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, sanitizer.Deduplicate([]string{}))
	})
}

func TestTrimStringSlice(t *testing.T) {
	t.Parallel()

	input := []string{"  a", "b  ", "\tc\n", ""}
	result := sanitizer.TrimStringSlice(input)

	assert.Equal(t, []string{"a", "b", "c", ""}, result)
	assert.Equal(t, "  a", input[0], "input must not be modified")
}

func TestCleanStringSlice(t *testing.T) {
	t.Parallel()

	result := sanitizer.CleanStringSlice([]string{" a", "", "b ", "a", "  ", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, result)
}
