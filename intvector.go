// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import "math/bits"

// IntVector is a fixed-length sequence of unsigned integers, each stored in
// the same number of bits, packed into 64-bit words. A value may straddle a
// word boundary. For a vector holding values below n, bitWidth(n) gives the
// smallest usable width.
type IntVector struct {
	words []uint64
	n     int
	width uint8
}

// bitWidth returns the number of bits needed to store any value in [0, n).
func bitWidth(n int) uint8 {
	if n <= 1 {
		return 1
	}
	return uint8(bits.Len64(uint64(n - 1)))
}

// NewIntVector creates a zero-initialized vector of n integers of the given
// width, 1 <= width <= 64.
func NewIntVector(n int, width uint8) *IntVector {
	if width == 0 || width > wordBits {
		panic("textindex: int vector width out of range")
	}
	nw := (n*int(width) + wordBits - 1) / wordBits
	return &IntVector{words: make([]uint64, nw), n: n, width: width}
}

// Len returns the number of integers.
func (v *IntVector) Len() int {
	return v.n
}

// Width returns the number of bits per integer.
func (v *IntVector) Width() uint8 {
	return v.width
}

// Get returns the i-th integer.
func (v *IntVector) Get(i int) uint64 {
	w := int(v.width)
	bit := i * w
	k, off := bit>>6, bit&63
	x := v.words[k] >> uint(off)
	if off+w > wordBits {
		x |= v.words[k+1] << uint(wordBits-off)
	}
	return x & loMask(w)
}

// Set stores x as the i-th integer. Bits of x above the width are discarded.
func (v *IntVector) Set(i int, x uint64) {
	w := int(v.width)
	x &= loMask(w)
	bit := i * w
	k, off := bit>>6, bit&63
	v.words[k] = v.words[k]&^(loMask(w)<<uint(off)) | x<<uint(off)
	if off+w > wordBits {
		spill := wordBits - off
		v.words[k+1] = v.words[k+1]&^(loMask(w)>>uint(spill)) | x>>uint(spill)
	}
}

// Equal reports whether v and o have the same length, width and values.
func (v *IntVector) Equal(o *IntVector) bool {
	if v.n != o.n || v.width != o.width {
		return false
	}
	for i, w := range v.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}
