package cbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualBytes(t *testing.T) {
	assert.True(t, Equal([]byte{}, []byte{}))
	assert.True(t, Equal([]byte{1, 2, 3}, []byte{1, 2, 3}))
	assert.False(t, Equal([]byte{1, 2, 3}, []byte{1, 2, 4}))
	assert.False(t, Equal([]byte{1, 2}, []byte{1, 2, 3}))
	assert.False(t, Equal([]byte{1, 2, 3}, []byte{1, 2}))
	assert.True(t, Equal(nil, []byte{}))
}

func TestEqualRunes(t *testing.T) {
	assert.True(t, Equal([]rune("après"), []rune("après")))
	assert.False(t, Equal([]rune("après"), []rune("âpres")))
	assert.False(t, Equal([]rune("ab"), []rune("abc")))
}

func TestEqualInts(t *testing.T) {
	assert.True(t, Equal([]int{-7, 0, 1 << 40}, []int{-7, 0, 1 << 40}))
	assert.False(t, Equal([]int{-7, 0, 1 << 40}, []int{-7, 0, 1<<40 + 1}))
}

// The number of elements examined must not depend on where the first
// mismatch sits.
func TestEqualStepCountIndependentOfMismatch(t *testing.T) {
	const size = 64

	base := make([]byte, size)
	for i := range base {
		base[i] = byte(i)
	}

	eq, steps := foldDiff(base, base)
	assert.True(t, eq)
	assert.Equal(t, size, steps)

	for pos := 0; pos < size; pos++ {
		other := dup(base)
		other[pos] ^= 0xFF

		eq, got := foldDiff(base, other)
		assert.False(t, eq)
		assert.Equal(t, steps, got, "work must not depend on mismatch position %d", pos)
	}
}
