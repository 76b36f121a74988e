// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import "math/bits"

// SelectSupportScan answers select queries by a linear scan over the words of
// a bit vector. It needs no auxiliary storage, which makes it the minimal
// fallback when a sampled select structure is not worth its space. Supported
// patterns are PatternZero, PatternOne, Pattern10 and Pattern01.
//
// Like RankSupport it holds a non-owning reference to its vector and must be
// repointed with SetVector after the vector is replaced.
type SelectSupportScan struct {
	v       *BitVector
	pattern BitPattern
}

// NewSelectSupportScan creates a scan-based select support for v.
func NewSelectSupportScan(v *BitVector, pattern BitPattern) *SelectSupportScan {
	if pattern == Pattern11 || pattern == Pattern00 {
		panic("textindex: select scan supports patterns 0, 1, 10 and 01 only")
	}
	return &SelectSupportScan{v: v, pattern: pattern}
}

// Pattern returns the supported bit pattern.
func (s *SelectSupportScan) Pattern() BitPattern {
	return s.pattern
}

// Select returns the position of the i-th pattern occurrence, i >= 1. For
// two-bit patterns the reported position is that of the second bit. Querying
// beyond the total occurrence count is a precondition violation; the scan
// fails fast with a panic instead of returning a position.
func (s *SelectSupportScan) Select(i int) int {
	carry := s.pattern.initCarry()
	sum := 0
	for k := 0; k < s.v.NumWords(); k++ {
		w := s.v.Word(k)
		mw := s.pattern.mapWord(w, carry)
		c := bits.OnesCount64(mw)
		if sum+c >= i {
			return k<<6 + selectInWord(mw, i-sum)
		}
		sum += c
		carry = w >> (wordBits - 1)
	}
	panic("textindex: select argument exceeds occurrence count")
}

// SetVector repoints the support at v.
func (s *SelectSupportScan) SetVector(v *BitVector) {
	s.v = v
}

// Vector returns the supported vector.
func (s *SelectSupportScan) Vector() *BitVector {
	return s.v
}
