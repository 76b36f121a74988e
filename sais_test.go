// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func genRandText(size, sigma int) []byte {
	input := make([]byte, size)
	for i := 0; i < size; i++ {
		input[i] = byte(rand.Intn(sigma))
	}
	return input
}

// makeSA builds the suffix array by plain comparison sorting, the oracle the
// induced sorter is checked against.
func makeSA(text []byte) []int32 {
	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func TestSAIS(t *testing.T) {
	tests := map[string]struct {
		input []byte
	}{
		"empty string": {
			input: []byte{},
		},
		"single character": {
			input: []byte{100},
		},
		"same characters": {
			input: []byte("aaaaaaaaaaaaaaaaaaaaa"),
		},
		"1 LMS": {
			input: []byte("aabab"),
		},
		"2 LMS": {
			input: []byte("aababab"),
		},
		"banana": {
			input: []byte("banana"),
		},
		"repeated pattern": {
			input: []byte{1, 2, 1, 2, 1, 2, 1, 2},
		},
		"reverse sorted": {
			input: []byte{5, 4, 3, 2, 1},
		},
		"abracadabra": {
			input: []byte("abracadabra"),
		},
		"abracadabra with sentinel": {
			input: []byte("abracadabra$"),
		},
		"ACGTGCCTAGCCTACCGTGCC": {
			input: []byte("ACGTGCCTAGCCTACCGTGCC"),
		},
		"min/max edges": {
			input: []byte{0, 255},
		},
		"alternating pattern": {
			input: []byte{3, 1, 3, 1, 3, 1},
		},
		"zero characters": {
			input: []byte{0, 0, 0, 1, 1, 1},
		},
		"long random binary": {
			input: genRandText(1000, 2),
		},
		"long random dna": {
			input: genRandText(1000, 4),
		},
		"long random bytes": {
			input: genRandText(1000, 256),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, makeSA(tc.input), sais(tc.input))
		})
	}
}
