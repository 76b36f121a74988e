// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

// Suffix sorting via SA-IS (induced sorting of LMS substrings). The index
// structures in this package take a finished suffix array as construction
// input; this sorter exists so that FromText and the tests do not depend on
// an external one. The top level works on byte texts; the recursion works on
// summary strings whose symbols are the dense LMS substring names, so both
// levels share one generic implementation with plain slice buckets.

// saSymbol is a text symbol the sorter can bucket by value.
type saSymbol interface {
	~byte | ~int32
}

// sais returns the suffix array of text.
func sais(text []byte) []int32 {
	if len(text) == 0 {
		return []int32{}
	} else if len(text) == 1 {
		return []int32{0}
	}
	sa := make([]int32, len(text))
	saisRec(text, sa)
	return sa
}

// saisRec fills sa with the suffix array of text, len(text) >= 2.
func saisRec[T saSymbol](text []T, sa []int32) {
	var (
		minSym, maxSym = int32(text[0]), int32(text[0])
		l, r, numLMS   int32
		s              bool
	)
	// One backward scan: symbol range plus the number of LMS positions
	// (S-type positions whose left neighbor is L-type).
	for i := len(text) - 1; i >= 0; i-- {
		l, r = int32(text[i]), l
		if l < minSym {
			minSym = l
		}
		if l > maxSym {
			maxSym = l
		}
		if l < r {
			s = true
		} else if l > r && s {
			s = false
			numLMS++
		}
	}

	asize := maxSym - minSym + 1
	freq := make([]int32, asize)
	bucket := make([]int32, asize)
	symCounts(text, freq, minSym)

	placeLMS(text, sa, freq, bucket, minSym)
	if numLMS > 1 {
		// Sort the LMS substrings by partial induction, name them, and
		// recurse on the summary string when names repeat.
		induceSubL(text, sa, freq, bucket, minSym)
		induceSubS(text, sa, freq, bucket, minSym)
		summary := sa[len(sa)-int(numLMS):]
		maxName := nameLMS(text, sa, summary, numLMS)

		summarySA := sa[:numLMS]
		if maxName < numLMS {
			saisRec(summary, summarySA)
			unmapLMS(text, sa, summarySA, summary)
		} else {
			copy(summarySA, summary)
			clear(sa[numLMS:])
		}
		placeSorted(text, sa, summarySA, freq, bucket, minSym)
	}
	induceL(text, sa, freq, bucket, minSym)
	induceS(text, sa, freq, bucket, minSym)
}

// symCounts counts the occurrences of each symbol relative to minSym.
func symCounts[T saSymbol](text []T, freq []int32, minSym int32) {
	clear(freq)
	for _, v := range text {
		freq[int32(v)-minSym]++
	}
}

// bucketHeads sets bucket[i] to the first position of symbol i's bucket.
func bucketHeads(freq, bucket []int32) {
	var offset int32
	for i, n := range freq {
		if n > 0 {
			bucket[i] = offset
			offset += n
		}
	}
}

// bucketTails sets bucket[i] to the last position of symbol i's bucket.
func bucketTails(freq, bucket []int32) {
	var offset int32
	for i, n := range freq {
		if n > 0 {
			offset += n
			bucket[i] = offset - 1
		}
	}
}

// placeLMS drops every LMS suffix at the tail of its symbol's bucket.
func placeLMS[T saSymbol](text []T, sa, freq, bucket []int32, minSym int32) {
	bucketTails(freq, bucket)
	var (
		l, r, j, b, lastLMS int32
		numLMS              int
		s                   bool
	)
	for i := int32(len(text) - 1); i >= 0; i-- {
		l, r = int32(text[i]), l
		if l < r {
			s = true
		} else if l > r && s {
			s = false
			j = r - minSym
			b = bucket[j]
			bucket[j] = b - 1
			sa[b] = i + 1
			lastLMS = b
			numLMS++
		}
	}
	// The first LMS placed (last in text order) only seeds the induction
	// and is recomputed, so clear its slot when it is not alone.
	if numLMS > 1 {
		sa[lastLMS] = 0
	}
}

// induceSubL performs the left-to-right induction pass that orders the
// L-type prefixes of the LMS substrings. Entries turned negative mark
// suffixes whose successor is S-type.
func induceSubL[T saSymbol](text []T, sa, freq, bucket []int32, minSym int32) {
	bucketHeads(freq, bucket)
	var (
		k       = int32(len(text) - 1)
		l, r    = int32(text[k-1]), int32(text[k])
		lastSym = int32(text[len(text)-1])
		b       = bucket[lastSym-minSym]
	)
	if l < r {
		k = -k
	}
	bucket[lastSym-minSym] = b + 1
	sa[b] = k

	for i := 0; i < len(sa); i++ {
		if sa[i] == 0 {
			continue
		}
		j := sa[i]
		if j < 0 {
			sa[i] = -j
			continue
		}
		sa[i] = 0
		k = j - 1
		l, r = int32(text[k-1]), int32(text[k])
		if l < r {
			k = -k
		}
		b = bucket[r-minSym]
		bucket[r-minSym] = b + 1
		sa[b] = k
	}
}

// induceSubS performs the right-to-left induction pass that completes the
// LMS substring order, compacting the sorted LMS positions at the top of sa.
func induceSubS[T saSymbol](text []T, sa, freq, bucket []int32, minSym int32) {
	bucketTails(freq, bucket)
	var (
		j, b, l, r, k int32
		top           = len(sa)
	)
	for i := len(sa) - 1; i >= 0; i-- {
		j = sa[i]
		if j == 0 {
			continue
		}
		sa[i] = 0
		if j < 0 {
			top--
			sa[top] = -j
			continue
		}
		k = j - 1
		l, r = int32(text[k-1]), int32(text[k])
		if l > r {
			k = -k
		}
		b = bucket[r-minSym]
		bucket[r-minSym] = b - 1
		sa[b] = k
	}
}

// lmsLengths stores the length of the LMS substring starting at each LMS
// position i into sa[(i+1)/2]. Consecutive LMS positions are at least two
// apart, so the half-index slots never collide.
func lmsLengths[T saSymbol](text []T, sa []int32) {
	var (
		l, r int32
		prev = int32(len(text)) - 1
		s    bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = int32(text[i]), l
		if l < r {
			s = true
		} else if l > r && s {
			s = false
			sa[(i+1)/2] = prev - int32(i)
			prev = int32(i)
		}
	}
}

// sameLMS reports whether the LMS substrings at l and r are identical.
func sameLMS[T saSymbol](text []T, l, r, lLen, rLen int32) bool {
	if lLen != rLen {
		return false
	}
	for lLen > 0 {
		if text[l] != text[r] {
			return false
		}
		l++
		r++
		lLen--
	}
	return true
}

// nameLMS assigns ranks to the sorted LMS substrings in summary and, when
// names repeat, rewrites summary with the name string for the recursion.
// It returns the number of distinct names.
func nameLMS[T saSymbol](text []T, sa, summary []int32, numLMS int32) int32 {
	lmsLengths(text, sa)
	var (
		name, maxName int32 = 1, 1
		posLMS              = summary
		prevLen             = sa[posLMS[0]/2]
	)
	sa[posLMS[0]/2] = name
	for i := 1; i < len(posLMS); i++ {
		prev, curr := posLMS[i-1], posLMS[i]
		if !sameLMS(text, prev, curr, prevLen, sa[curr/2]) {
			name++
			maxName++
		}
		prevLen = sa[curr/2]
		sa[curr/2] = name
	}
	if maxName >= numLMS {
		return maxName
	}
	// Compact the names, which sit at half-index positions in text order,
	// into the summary string.
	var j int
	for i := 0; i < len(sa)/2; i++ {
		curr := sa[i]
		if curr <= 0 {
			continue
		}
		sa[i], summary[j] = 0, curr
		j++
	}
	return maxName
}

// unmapLMS translates the summary suffix array back to LMS positions in the
// original text, reusing the summary slots as scratch.
func unmapLMS[T saSymbol](text []T, sa, summarySA, lms []int32) {
	var (
		j    = int32(len(lms))
		l, r int32
		s    bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = int32(text[i]), l
		if l < r {
			s = true
		} else if l > r && s {
			s = false
			j--
			lms[j] = int32(i) + 1
		}
	}
	for i := 0; i < len(lms); i++ {
		j = summarySA[i]
		sa[i] = lms[j]
		lms[j] = 0
	}
}

// placeSorted re-buckets the now correctly ordered LMS suffixes to seed the
// final induction passes.
func placeSorted[T saSymbol](text []T, sa, summarySA, freq, bucket []int32, minSym int32) {
	symCounts(text, freq, minSym)
	bucketTails(freq, bucket)
	var lmsIdx, b, j int32
	for i := len(summarySA) - 1; i >= 0; i-- {
		lmsIdx = summarySA[i]
		summarySA[i] = 0
		j = int32(text[lmsIdx]) - minSym
		b = bucket[j]
		sa[b] = lmsIdx
		bucket[j] = b - 1
	}
}

// induceL performs the final left-to-right induction of L-type suffixes.
func induceL[T saSymbol](text []T, sa, freq, bucket []int32, minSym int32) {
	bucketHeads(freq, bucket)
	var (
		k       = int32(len(text) - 1)
		l, r    = int32(text[k-1]), int32(text[k])
		lastSym = int32(text[len(text)-1])
		b       = bucket[lastSym-minSym]
	)
	if l < r {
		k = -k
	}
	bucket[lastSym-minSym] = b + 1
	sa[b] = k

	for i := 0; i < len(sa); i++ {
		j := sa[i]
		if j <= 0 {
			continue
		}
		k = j - 1
		r = int32(text[k])
		if k > 0 {
			if l = int32(text[k-1]); l < r {
				k = -k
			}
		}
		b = bucket[r-minSym]
		bucket[r-minSym] = b + 1
		sa[b] = k
	}
}

// induceS performs the final right-to-left induction of S-type suffixes,
// restoring the sign-marked entries on the way.
func induceS[T saSymbol](text []T, sa, freq, bucket []int32, minSym int32) {
	bucketTails(freq, bucket)
	var j, l, r, k, b int32
	for i := len(sa) - 1; i >= 0; i-- {
		j = sa[i]
		if j >= 0 {
			continue
		}
		j = -j
		sa[i] = j

		k = j - 1
		r = int32(text[k])
		if k > 0 {
			if l = int32(text[k-1]); l <= r {
				k = -k
			}
		}
		b = bucket[r-minSym]
		bucket[r-minSym] = b - 1
		sa[b] = k
	}
}
