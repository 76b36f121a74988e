// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import "math/bits"

// BitPattern identifies the fixed bit pattern a rank or select support counts.
// Two-bit patterns are counted at the position of their second bit, so an
// occurrence of Pattern10 at position i means bit i-1 is 1 and bit i is 0.
// An occurrence may straddle a word boundary; the kernels propagate the high
// bit of the preceding word as a carry. At the very start of the vector the
// carry is initialized to 1 for Pattern01 and Pattern00 and to 0 otherwise,
// which rules out an occurrence of any two-bit pattern at position 0.
type BitPattern uint8

const (
	// PatternZero counts 0-bits.
	PatternZero BitPattern = iota
	// PatternOne counts 1-bits.
	PatternOne
	// Pattern10 counts 1-to-0 transitions.
	Pattern10
	// Pattern01 counts 0-to-1 transitions.
	Pattern01
	// Pattern11 counts adjacent pairs of 1-bits (overlapping).
	Pattern11
	// Pattern00 counts adjacent pairs of 0-bits (overlapping).
	Pattern00
)

// Length returns the pattern length in bits, 1 or 2.
func (p BitPattern) Length() int {
	if p == PatternZero || p == PatternOne {
		return 1
	}
	return 2
}

// initCarry returns the carry assumed before the first bit of the vector.
func (p BitPattern) initCarry() uint64 {
	if p == Pattern01 || p == Pattern00 {
		return 1
	}
	return 0
}

// mapWord returns a word whose set bits mark the pattern occurrences in w.
// carry is the highest bit of the preceding word, or initCarry at the start.
func (p BitPattern) mapWord(w, carry uint64) uint64 {
	switch p {
	case PatternZero:
		return ^w
	case PatternOne:
		return w
	case Pattern10:
		return map10(w, carry)
	case Pattern01:
		return map01(w, carry)
	case Pattern11:
		return map11(w, carry)
	default:
		return map00(w, carry)
	}
}

// countInWord counts the pattern occurrences in the whole word w and returns
// the carry to feed into the next word.
func (p BitPattern) countInWord(w, carry uint64) (int, uint64) {
	return bits.OnesCount64(p.mapWord(w, carry)), w >> (wordBits - 1)
}

// wordRank counts the pattern occurrences among the first i&63 bits of the
// word containing bit i of v. The carry is taken from the preceding word, or
// from initCarry when i lies in the first word.
func (p BitPattern) wordRank(v *BitVector, i int) int {
	k := i >> 6
	carry := p.initCarry()
	if k > 0 {
		carry = v.words[k-1] >> (wordBits - 1)
	}
	return bits.OnesCount64(p.mapWord(v.words[k], carry) & loMask(i&63))
}

// String returns the literal bit pattern.
func (p BitPattern) String() string {
	switch p {
	case PatternZero:
		return "0"
	case PatternOne:
		return "1"
	case Pattern10:
		return "10"
	case Pattern01:
		return "01"
	case Pattern11:
		return "11"
	default:
		return "00"
	}
}
