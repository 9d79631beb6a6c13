package convert_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajtatum/BabouExtensions/pkg/convert"
)

func TestTryBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
		ok       bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{" False ", false, true},
		{"1", false, false},
		{"yes", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		v, ok := convert.Try[bool](tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.expected, v, "input %q", tt.input)
	}
}

func TestTryIntegers(t *testing.T) {
	t.Parallel()

	v, ok := convert.Try[int]("  42 ")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	i8, ok := convert.Try[int8]("-128")
	require.True(t, ok)
	assert.Equal(t, int8(math.MinInt8), i8)

	_, ok = convert.Try[int8]("128")
	assert.False(t, ok, "overflow")

	u8, ok := convert.Try[uint8]("255")
	require.True(t, ok)
	assert.Equal(t, uint8(255), u8)

	_, ok = convert.Try[uint]("-1")
	assert.False(t, ok)

	i64, ok := convert.Try[int64]("9223372036854775807")
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), i64)

	u64, ok := convert.Try[uint64]("18446744073709551615")
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), u64)

	for _, bad := range []string{"1.5", "0x10", "1_000", "abc", ""} {
		v, ok := convert.Try[int](bad)
		assert.False(t, ok, "input %q", bad)
		assert.Zero(t, v)
	}

	i16, ok := convert.Try[int16]("-300")
	require.True(t, ok)
	assert.Equal(t, int16(-300), i16)

	i32, ok := convert.Try[int32]("70000")
	require.True(t, ok)
	assert.Equal(t, int32(70000), i32)

	u16, ok := convert.Try[uint16]("65535")
	require.True(t, ok)
	assert.Equal(t, uint16(65535), u16)

	u32, ok := convert.Try[uint32]("4294967295")
	require.True(t, ok)
	assert.Equal(t, uint32(math.MaxUint32), u32)
}

func TestTryFloats(t *testing.T) {
	t.Parallel()

	f, ok := convert.Try[float64]("3.25")
	require.True(t, ok)
	assert.InDelta(t, 3.25, f, 1e-12)

	f32, ok := convert.Try[float32]("-0.5")
	require.True(t, ok)
	assert.Equal(t, float32(-0.5), f32)

	e, ok := convert.Try[float64]("1e3")
	require.True(t, ok)
	assert.InDelta(t, 1000.0, e, 1e-12)

	_, ok = convert.Try[float64]("1,5")
	assert.False(t, ok)
}

func TestTryTime(t *testing.T) {
	t.Parallel()

	v, ok := convert.Try[time.Time]("2024-03-05")
	require.True(t, ok)
	assert.True(t, v.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))

	v, ok = convert.Try[time.Time]("not a date")
	assert.False(t, ok)
	assert.True(t, v.IsZero())
}

func TestTryPtr(t *testing.T) {
	t.Parallel()

	p, ok := convert.TryPtr[int]("7")
	require.True(t, ok)
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)

	p, ok = convert.TryPtr[int]("   ")
	assert.False(t, ok)
	assert.Nil(t, p)

	b, ok := convert.TryPtr[bool]("maybe")
	assert.False(t, ok)
	assert.Nil(t, b)
}

func TestOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8080, convert.OrDefault("8080", 80))
	assert.Equal(t, 80, convert.OrDefault("http", 80))
	assert.Equal(t, 80, convert.OrDefault("", 80))
	assert.True(t, convert.OrDefault("TRUE", false))
	assert.InDelta(t, 0.5, convert.OrDefault("x", 0.5), 1e-12)
}
