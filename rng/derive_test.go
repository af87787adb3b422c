package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextUint32(t *testing.T) {
	gen, err := New(123456789)
	require.NoError(t, err)

	// low 32 bits of 0xd4143202229d1a35
	assert.Equal(t, uint32(580721205), gen.NextUint32())
}

func TestDoubleKnownAnswer(t *testing.T) {
	gen, err := New(123456789)
	require.NoError(t, err)

	// raw output 0xd4143202229d1a35: low 21 bits 0x11a35, bits 32-63
	// 0xd4143202, combined 53-bit integer 8191592818291202
	d, err := gen.NextDouble()
	require.NoError(t, err)
	assert.Equal(t, float64(8191592818291202)/float64(1<<53), d)
}

func TestDoubleBounds(t *testing.T) {
	gen, err := New(0xC0FFEE)
	require.NoError(t, err)

	for i := 0; i < 100000; i++ {
		d, err := gen.NextDouble()
		require.NoError(t, err)
		require.GreaterOrEqual(t, d, 0.0, "draw %d", i)
		require.Less(t, d, 1.0, "draw %d", i)
	}
}

func TestRangeCoverage(t *testing.T) {
	gen, err := New(20230615)
	require.NoError(t, err)

	seen := map[int]int{}

	for i := 0; i < 100000; i++ {
		v, err := gen.NextRange(1, 6)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 1, "draw %d", i)
		require.LessOrEqual(t, v, 6, "draw %d", i)

		seen[v]++
	}

	for face := 1; face <= 6; face++ {
		assert.Greater(t, seen[face], 0, "face %d never rolled", face)
	}
}

func TestRangeArgumentValidation(t *testing.T) {
	gen, err := New(1)
	require.NoError(t, err)

	_, err = gen.NextRange(5, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = gen.NextRange(5, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRangeNegativeBounds(t *testing.T) {
	gen, err := New(31337)
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		v, err := gen.NextRange(-3, 3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 3)
	}
}

func TestRangeMatchesDoubleDerivation(t *testing.T) {
	a, err := New(4242)
	require.NoError(t, err)

	b, err := New(4242)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		v, err := a.NextRange(10, 20)
		require.NoError(t, err)

		d, err := b.NextDouble()
		require.NoError(t, err)

		require.Equal(t, 10+int(d*11), v, "draw %d", i)
	}
}
