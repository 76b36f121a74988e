// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import "math/bits"

// wordBits is the number of bits per storage word.
const wordBits = 64

// loMask returns a word with the low k bits set, 0 <= k <= 64.
func loMask(k int) uint64 {
	if k >= wordBits {
		return ^uint64(0)
	}
	return (uint64(1) << uint(k)) - 1
}

// map10 marks every position i of w where the two-bit pattern 10 ends,
// i.e. bit i-1 is 1 and bit i is 0. carry is the highest bit of the
// preceding word (or the initial carry at the start of the vector).
func map10(w, carry uint64) uint64 {
	return ((w << 1) | carry) &^ w
}

// map01 marks every position i of w where the two-bit pattern 01 ends,
// i.e. bit i-1 is 0 and bit i is 1.
func map01(w, carry uint64) uint64 {
	return ^((w << 1) | carry) & w
}

// map11 marks every position i of w where bits i-1 and i are both 1.
func map11(w, carry uint64) uint64 {
	return w & ((w << 1) | carry)
}

// map00 marks every position i of w where bits i-1 and i are both 0.
func map00(w, carry uint64) uint64 {
	return ^(w | ((w << 1) | carry))
}

// selectInWord returns the position of the k-th set bit of w, 1 <= k <= popcount(w).
func selectInWord(w uint64, k int) int {
	for ; k > 1; k-- {
		w &= w - 1
	}
	return bits.TrailingZeros64(w)
}
