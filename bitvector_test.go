// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitVectorGetSet(t *testing.T) {
	v := NewBitVector(130)
	assert.Equal(t, 130, v.Len())
	for i := 0; i < v.Len(); i++ {
		assert.False(t, v.Get(i))
	}
	for i := 0; i < v.Len(); i += 3 {
		v.Set(i, true)
	}
	for i := 0; i < v.Len(); i++ {
		assert.Equal(t, i%3 == 0, v.Get(i), "at %d", i)
	}
	v.Set(63, true)
	v.Set(63, false)
	assert.False(t, v.Get(63))
	assert.True(t, v.Get(0))
}

func TestBitVectorWords(t *testing.T) {
	v := NewBitVector(70)
	assert.Equal(t, 2, v.NumWords())
	v.Set(0, true)
	v.Set(64, true)
	assert.Equal(t, uint64(1), v.Word(0))
	assert.Equal(t, uint64(1), v.Word(1))

	// Padding bits past the length stay zero.
	count := 0
	for k := 0; k < v.NumWords(); k++ {
		count += bits.OnesCount64(v.Word(k))
	}
	assert.Equal(t, 2, count)
}

func TestBitVectorEqual(t *testing.T) {
	a := bvFromString("10110")
	b := bvFromString("10110")
	assert.True(t, a.Equal(b))
	b.Set(4, true)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(bvFromString("101100")))
}
