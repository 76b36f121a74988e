// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

// Alphabet maps the byte values that occur in a text to a dense range of
// compacted symbols [0, Sigma) and back, and carries the cumulative symbol
// frequency table C. It is built once from the text and immutable afterwards.
type Alphabet struct {
	char2comp [256]byte
	present   [256]bool
	comp2char []byte
	c         []int
	sigma     int
}

// newAlphabet builds the alphabet of text. Compacted symbols are assigned in
// increasing byte order, so the mapping preserves the ordering of the bytes.
func newAlphabet(text []byte) Alphabet {
	var a Alphabet
	var freq [256]int
	for _, ch := range text {
		freq[ch]++
	}
	for ch := 0; ch < 256; ch++ {
		if freq[ch] > 0 {
			a.char2comp[ch] = byte(a.sigma)
			a.present[ch] = true
			a.comp2char = append(a.comp2char, byte(ch))
			a.sigma++
		}
	}
	a.c = make([]int, a.sigma+1)
	for r, ch := range a.comp2char {
		a.c[r+1] = a.c[r] + freq[ch]
	}
	return a
}

// Sigma returns the number of distinct symbols.
func (a *Alphabet) Sigma() int {
	return a.sigma
}

// C returns the cumulative frequency table entry for compacted symbol r,
// 0 <= r <= Sigma(). C(r+1)-C(r) is the occurrence count of symbol r and
// C(Sigma()) is the text length.
func (a *Alphabet) C(r int) int {
	return a.c[r]
}

// Comp returns the compacted symbol for byte ch and whether ch occurs in the
// text at all.
func (a *Alphabet) Comp(ch byte) (byte, bool) {
	return a.char2comp[ch], a.present[ch]
}

// Char returns the byte value of compacted symbol r, 0 <= r < Sigma().
func (a *Alphabet) Char(r byte) byte {
	return a.comp2char[r]
}

// Equal reports whether a and o describe the same alphabet.
func (a *Alphabet) Equal(o *Alphabet) bool {
	if a.sigma != o.sigma {
		return false
	}
	for r := 0; r < a.sigma; r++ {
		if a.comp2char[r] != o.comp2char[r] || a.c[r+1] != o.c[r+1] {
			return false
		}
	}
	return true
}
