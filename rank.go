// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

// rank sampling layout: one superblock per 8 words (512 bits) holding the
// absolute occurrence count before the superblock, plus one 16-bit relative
// count per word holding the occurrences between the superblock start and
// that word. Both arrays carry one extra entry so that Rank(Len()) needs no
// special case when the length is a multiple of the word size.
const wordsPerSuperblock = 8

// RankSupport answers pattern-occurrence counting queries on a prefix of a
// bit vector in constant time. It holds a non-owning reference to the vector
// it was built for; if that vector is replaced or reloaded at a new address,
// SetVector must be called before the next query. SetVector only repoints,
// it does not rebuild the sampling tables, so the new vector must hold the
// same bit content.
type RankSupport struct {
	v           *BitVector
	pattern     BitPattern
	superblocks []uint64
	blocks      []uint16
	total       int
}

// NewRankSupport builds a rank support for the given vector and pattern.
func NewRankSupport(v *BitVector, pattern BitPattern) *RankSupport {
	r := &RankSupport{v: v, pattern: pattern}
	r.build()
	return r
}

// build fills the sampling tables from the referenced vector.
func (r *RankSupport) build() {
	nw := r.v.NumWords()
	r.superblocks = make([]uint64, nw/wordsPerSuperblock+1)
	r.blocks = make([]uint16, nw+1)
	carry := r.pattern.initCarry()
	var cum uint64
	var rel int
	for j := 0; j <= nw; j++ {
		if j%wordsPerSuperblock == 0 {
			r.superblocks[j/wordsPerSuperblock] = cum
			rel = 0
		}
		r.blocks[j] = uint16(rel)
		if j < nw {
			var c int
			c, carry = r.pattern.countInWord(r.v.Word(j), carry)
			cum += uint64(c)
			rel += c
		}
	}
	// Word counts include any zero padding after the last valid bit, so the
	// exact total has to be taken from a masked prefix query.
	r.total = r.Rank(r.v.Len())
}

// Pattern returns the supported bit pattern.
func (r *RankSupport) Pattern() BitPattern {
	return r.pattern
}

// Total returns the number of pattern occurrences in the whole vector,
// equal to Rank(Len()).
func (r *RankSupport) Total() int {
	return r.total
}

// Rank returns the number of pattern occurrences in positions [0, i) of the
// supported vector, 0 <= i <= Len().
func (r *RankSupport) Rank(i int) int {
	if i == 0 {
		return 0
	}
	k := i >> 6
	res := int(r.superblocks[k/wordsPerSuperblock]) + int(r.blocks[k])
	if i&63 != 0 {
		res += r.pattern.wordRank(r.v, i)
	}
	return res
}

// SetVector repoints the support at v without rebuilding the tables. It is
// the caller's obligation that v holds the same bits the tables were built
// for, typically after relocating the vector or loading both from storage.
func (r *RankSupport) SetVector(v *BitVector) {
	r.v = v
}

// Vector returns the supported vector.
func (r *RankSupport) Vector() *BitVector {
	return r.v
}
