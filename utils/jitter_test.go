package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJitterDeterministic(t *testing.T) {
	a, b := NewJitter(42), NewJitter(42)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestJitterZeroSeed(t *testing.T) {
	j := NewJitter(0)
	assert.NotZero(t, j.Uint64())
}

func TestJitterSpread(t *testing.T) {
	j := NewJitter(7)
	for i := 0; i < 10000; i++ {
		f := j.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)

		v := j.Spread(100, 0.2)
		require.GreaterOrEqual(t, v, 80.0)
		require.Less(t, v, 120.0)
	}
}
