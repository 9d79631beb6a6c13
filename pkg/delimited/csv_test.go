package delimited_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajtatum/BabouExtensions/pkg/delimited"
)

func TestToCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		split    rune
		join     rune
		policy   delimited.QuotePolicy
		opts     []delimited.Option
		expected string
	}{
		{
			name:     "auto leaves digits and booleans bare",
			source:   "Hello,true,1,there,here",
			split:    ',',
			join:     ',',
			policy:   delimited.QuoteAuto,
			opts:     []delimited.Option{delimited.KeepLineBreaks()},
			expected: "'Hello',true,1,'there','here'",
		},
		{
			name:     "auto quotes signs decimals and other casings",
			source:   "-1,1.5,True,FALSE,007",
			split:    ',',
			join:     ',',
			policy:   delimited.QuoteAuto,
			expected: "'-1','1.5','True','FALSE',007",
		},
		{
			name:     "always quotes every field",
			source:   "a,1,true",
			split:    ',',
			join:     ';',
			policy:   delimited.QuoteAlways,
			expected: "'a';'1';'true'",
		},
		{
			name:     "never quotes",
			source:   "a, b ,c",
			split:    ',',
			join:     '|',
			policy:   delimited.QuoteNever,
			expected: "a|b|c",
		},
		{
			name:     "duplicates removed before joining",
			source:   "x,y,x",
			split:    ',',
			join:     ',',
			policy:   delimited.QuoteNever,
			expected: "x,y",
		},
		{
			name:     "lines become fields",
			source:   "red\ngreen\r\nblue",
			split:    ',',
			join:     ',',
			policy:   delimited.QuoteAlways,
			expected: "'red','green','blue'",
		},
		{
			name:     "quotes inside tokens are not escaped",
			source:   "it's",
			split:    ',',
			join:     ',',
			policy:   delimited.QuoteAlways,
			expected: "'it's'",
		},
		{
			name:     "no tokens",
			source:   " , , ",
			split:    ',',
			join:     ',',
			policy:   delimited.QuoteAlways,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := delimited.ToCSV(tt.source, tt.split, tt.join, tt.policy, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToCSVEmptyInput(t *testing.T) {
	t.Parallel()

	for _, policy := range []delimited.QuotePolicy{delimited.QuoteAuto, delimited.QuoteAlways, delimited.QuoteNever} {
		result, err := delimited.ToCSV("", ',', ',', policy)
		require.ErrorIs(t, err, delimited.ErrEmptyInput)
		assert.Empty(t, result)
	}
}

func TestToCSVAlwaysShape(t *testing.T) {
	t.Parallel()

	result, err := delimited.ToCSV("one;two;three;four", ';', ',', delimited.QuoteAlways)
	require.NoError(t, err)

	fields := strings.Split(result, ",")
	require.Len(t, fields, 4)
	for _, field := range fields {
		assert.True(t, strings.HasPrefix(field, "'") && strings.HasSuffix(field, "'"), "field %q", field)
		assert.Greater(t, len(field), 2)
	}
	assert.NotContains(t, result, ",,")
	assert.False(t, strings.HasSuffix(result, ","))
}

func TestParseQuotePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected delimited.QuotePolicy
	}{
		{"auto", delimited.QuoteAuto},
		{"", delimited.QuoteAuto},
		{"   ", delimited.QuoteAuto},
		{"Always", delimited.QuoteAlways},
		{" never ", delimited.QuoteNever},
	}

	for _, tt := range tests {
		policy, err := delimited.ParseQuotePolicy(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, policy)
		assert.NotEqual(t, "unknown", policy.String())
	}

	_, err := delimited.ParseQuotePolicy("sometimes")
	require.ErrorIs(t, err, delimited.ErrUnknownQuotePolicy)
}

func TestToCSVWithBlankPolicyName(t *testing.T) {
	t.Parallel()

	policy, err := delimited.ParseQuotePolicy("")
	require.NoError(t, err)
	require.Equal(t, delimited.QuoteAuto, policy)

	out, err := delimited.ToCSV("a,1,true", ',', ',', policy)
	require.NoError(t, err)
	assert.Equal(t, "'a',1,true", out)
}

func TestQuotePolicyNames(t *testing.T) {
	t.Parallel()

	names := delimited.QuotePolicyNames()
	require.Len(t, names, 3)
	assert.True(t, strings.HasPrefix(names[0], "auto ("))
	assert.True(t, strings.HasPrefix(names[1], "always ("))
	assert.True(t, strings.HasPrefix(names[2], "never ("))
	assert.Equal(t, "unknown", delimited.QuotePolicy(42).String())
}
