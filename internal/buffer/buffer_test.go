package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_AppendAndFinalize(t *testing.T) {
	b := New[float64](0)
	for i := 0; i < 10; i++ {
		b.Append(float64(i))
	}
	require.Equal(t, 10, b.Len())

	out := b.Finalize()
	require.Len(t, out, 10)
	for i, v := range out {
		assert.Equal(t, float64(i), v)
	}
}

func TestBuffer_HintSizesCapacity(t *testing.T) {
	// 8 KiB of float64 is 1024 elements.
	b := New[float64](8 * 1024)
	require.Equal(t, 1024, b.Cap())
	require.Equal(t, 0, b.Len())

	// Appends within the hinted capacity must not reallocate.
	for i := 0; i < 1024; i++ {
		b.Append(1.0)
	}
	assert.Equal(t, 1024, b.Cap())
}

func TestBuffer_GeometricGrowth(t *testing.T) {
	b := New[uint64](0)
	lastCap := 0
	growths := 0
	for i := 0; i < 100_000; i++ {
		b.Append(uint64(i))
		if b.Cap() != lastCap {
			growths++
			lastCap = b.Cap()
		}
	}
	// Doubling from 1024 reaches 100k in a handful of reallocations.
	assert.LessOrEqual(t, growths, 8)
}

func TestBuffer_FinalizeDoesNotAlias(t *testing.T) {
	b := New[uint64](0)
	b.Append(7)
	out := b.Finalize()

	require.Equal(t, []uint64{7}, out)
	assert.Equal(t, 1, cap(out))

	assert.Panics(t, func() { b.Append(8) })
	assert.Panics(t, func() { b.Finalize() })
}

func TestBuffer_FinalizeEmpty(t *testing.T) {
	b := New[string](0)
	out := b.Finalize()
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestBuffer_Discard(t *testing.T) {
	b := New[float64](0)
	b.Append(1)
	b.Discard()
	assert.Panics(t, func() { b.Append(2) })
}
