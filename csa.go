// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import (
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// CSA is a bitcompressed compressed suffix array: the suffix array and its
// inverse stored verbatim as fixed-width integer vectors, plus the alphabet
// of the indexed text. Everything else (Psi, LF, BWT, ISA, F and text access)
// is derived on demand from these three members. Once built a CSA is never
// mutated; all queries are read-only.
type CSA struct {
	sa    *IntVector
	isa   *IntVector
	alpha Alphabet
}

// NewCSA builds a CSA from a text and its precomputed suffix array. The
// suffix array must be a permutation of [0, len(text)); the inverse is
// derived in a single linear pass. Entries outside that range are reported
// as an error, duplicate entries are not detected.
func NewCSA(text []byte, sa []int32) (*CSA, error) {
	n := len(text)
	if len(sa) != n {
		return nil, errors.Errorf("suffix array length %d does not match text length %d", len(sa), n)
	}
	width := bitWidth(n)
	c := &CSA{
		sa:    NewIntVector(n, width),
		isa:   NewIntVector(n, width),
		alpha: newAlphabet(text),
	}
	for i, p := range sa {
		if int(p) < 0 || int(p) >= n {
			return nil, errors.Errorf("suffix array entry %d out of range [0,%d)", p, n)
		}
		c.sa.Set(i, uint64(p))
		c.isa.Set(int(p), uint64(i))
	}
	logger.Debug().
		Int("size", n).
		Int("sigma", c.alpha.Sigma()).
		Str("storage", humanize.Bytes(uint64(len(c.sa.words)+len(c.isa.words))*8)).
		Msg("csa built")
	return c, nil
}

// FromText suffix-sorts text and builds its CSA. The text is indexed as
// given; callers wanting the textbook rotation behavior should terminate it
// with a unique smallest sentinel.
func FromText(text []byte) *CSA {
	c, err := NewCSA(text, sais(text))
	if err != nil {
		// sais returns a permutation, so this is unreachable.
		panic(err)
	}
	return c
}

// Size returns the number of indexed suffixes, which equals the text length.
func (c *CSA) Size() int {
	return c.sa.Len()
}

// Empty reports whether the CSA indexes an empty text.
func (c *CSA) Empty() bool {
	return c.Size() == 0
}

// At returns the suffix array value at rank i, the text offset of the i-th
// lexicographically smallest suffix.
func (c *CSA) At(i int) int {
	return int(c.sa.Get(i))
}

// ISAAt returns the inverse suffix array value at text position i.
func (c *CSA) ISAAt(i int) int {
	return int(c.isa.Get(i))
}

// PsiAt returns Psi[i], the suffix array rank of the suffix starting one
// text position after the suffix of rank i.
func (c *CSA) PsiAt(i int) int {
	return int(c.isa.Get((int(c.sa.Get(i)) + 1) % c.Size()))
}

// LFAt returns LF[i], the suffix array rank of the suffix starting one text
// position before the suffix of rank i. LF is the inverse of Psi.
func (c *CSA) LFAt(i int) int {
	n := c.Size()
	return int(c.isa.Get((int(c.sa.Get(i)) + n - 1) % n))
}

// Sigma returns the alphabet size of the indexed text.
func (c *CSA) Sigma() int {
	return c.alpha.Sigma()
}

// Alpha returns the alphabet owned by the CSA.
func (c *CSA) Alpha() *Alphabet {
	return &c.alpha
}

// firstRowSymbol returns the symbol whose C interval contains rank i, i.e.
// the first character of the suffix of rank i (the F column of the sorted
// rotations). For tiny alphabets a linear scan of C beats the binary search.
func (c *CSA) firstRowSymbol(i int) byte {
	if c.alpha.sigma < 16 {
		res := 1
		for res < c.alpha.sigma && c.alpha.c[res] <= i {
			res++
		}
		return c.alpha.comp2char[res-1]
	}
	// Invariant of the search: C[res] <= i < C[res+1] on exit.
	lower, upper := 0, c.alpha.sigma
	res := 0
	for {
		res = (upper + lower) / 2
		if i < c.alpha.c[res] {
			upper = res
		} else if i >= c.alpha.c[res+1] {
			lower = res + 1
		} else {
			return c.alpha.comp2char[res]
		}
	}
}

// BWTAt returns the Burrows-Wheeler transform symbol at rank i: the first
// character of the suffix one backward step (LF) away.
func (c *CSA) BWTAt(i int) byte {
	return c.firstRowSymbol(c.LFAt(i))
}

// TextAt reconstructs the text symbol at position i as the first character
// of the suffix of rank ISA[i].
func (c *CSA) TextAt(i int) byte {
	return c.firstRowSymbol(int(c.isa.Get(i)))
}

// RankBWT returns the number of occurrences of symbol ch in BWT[0, i),
// 0 <= i <= Size(). A symbol absent from the text yields 0.
//
// Within the interval [C[cc], C[cc+1]) of ranks whose suffixes start with
// the compacted symbol cc, Psi is strictly increasing and enumerates exactly
// the BWT positions holding ch, so a binary search for the last Psi value
// below i counts the occurrences in O(log n).
func (c *CSA) RankBWT(i int, ch byte) int {
	cc, ok := c.alpha.Comp(ch)
	if !ok {
		return 0
	}
	lower := c.alpha.c[cc]
	upper := c.alpha.c[int(cc)+1]
	for lower+1 < upper {
		mid := (lower + upper) / 2
		if c.PsiAt(mid) >= i {
			upper = mid
		} else {
			lower = mid
		}
	}
	if lower > c.alpha.c[cc] {
		return lower - c.alpha.c[cc] + 1
	}
	// The loop never vouched for the first candidate, so probe it directly.
	if c.PsiAt(lower) < i {
		return 1
	}
	return 0
}

// SelectBWT returns the position of the i-th occurrence of symbol ch in the
// BWT, i >= 1, or Size() when ch occurs fewer than i times. The sentinel is
// part of the contract; callers compare against Size().
//
// The interval [C[cc], C[cc+1]) lists the occurrences of ch in BWT order
// under Psi, so the answer is a single Psi access.
func (c *CSA) SelectBWT(i int, ch byte) int {
	cc, ok := c.alpha.Comp(ch)
	if !ok {
		return c.Size()
	}
	if p := c.alpha.c[cc] + i - 1; p < c.alpha.c[int(cc)+1] {
		return c.PsiAt(p)
	}
	return c.Size()
}

// Equal reports whether two CSAs index identical texts, comparing the suffix
// array, its inverse and the alphabet.
func (c *CSA) Equal(o *CSA) bool {
	return c.sa.Equal(o.sa) && c.isa.Equal(o.isa) && c.alpha.Equal(&o.alpha)
}
