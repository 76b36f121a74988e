// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

// BitVector is a fixed-length sequence of bits packed into 64-bit words.
// Bits beyond the length are kept zero so that word-level kernels can read
// whole words. The rank and select supports hold a reference to a BitVector
// and never mutate it; mutating a vector after a support was built leaves
// the support's tables stale and it must be rebuilt.
type BitVector struct {
	words []uint64
	n     int
}

// NewBitVector creates a zero-initialized bit vector of n bits.
func NewBitVector(n int) *BitVector {
	return &BitVector{words: make([]uint64, (n+wordBits-1)/wordBits), n: n}
}

// Len returns the number of bits.
func (v *BitVector) Len() int {
	return v.n
}

// Get returns bit i.
func (v *BitVector) Get(i int) bool {
	return v.words[i>>6]&(1<<uint(i&63)) != 0
}

// Set sets bit i to b.
func (v *BitVector) Set(i int, b bool) {
	if b {
		v.words[i>>6] |= 1 << uint(i&63)
	} else {
		v.words[i>>6] &^= 1 << uint(i&63)
	}
}

// Word returns the k-th 64-bit storage word.
func (v *BitVector) Word(k int) uint64 {
	return v.words[k]
}

// NumWords returns the number of storage words.
func (v *BitVector) NumWords() int {
	return len(v.words)
}

// Equal reports whether v and o have the same length and bits.
func (v *BitVector) Equal(o *BitVector) bool {
	if v.n != o.n {
		return false
	}
	for i, w := range v.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}
