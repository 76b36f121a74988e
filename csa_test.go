// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// genSentinelText generates a random text over symbols [1, sigma] terminated
// by a unique smallest sentinel 0, the shape RankBWT's Psi-order invariant
// assumes.
func genSentinelText(size, sigma int) []byte {
	text := make([]byte, size+1)
	for i := 0; i < size; i++ {
		text[i] = byte(1 + rand.Intn(sigma))
	}
	return text
}

// bruteBWT derives the Burrows-Wheeler transform directly from the text and
// its suffix array.
func bruteBWT(text []byte, sa []int32) []byte {
	n := len(text)
	bwt := make([]byte, n)
	for i, p := range sa {
		bwt[i] = text[(int(p)+n-1)%n]
	}
	return bwt
}

func TestCSAAbracadabra(t *testing.T) {
	text := []byte("abracadabra$")
	c := FromText(text)

	assert.Equal(t, 12, c.Size())
	assert.False(t, c.Empty())
	assert.Equal(t, 5, c.Sigma()) // $ a b c d

	bwt := c.BWTView()
	got := make([]byte, bwt.Size())
	for i := range got {
		got[i] = bwt.At(i)
	}
	assert.Equal(t, []byte("ard$rcaaaabb"), got)

	assert.Equal(t, 5, c.RankBWT(12, 'a'))
	assert.Equal(t, 2, c.RankBWT(12, 'b'))
	assert.Equal(t, 1, c.RankBWT(12, '$'))
	assert.Equal(t, 0, c.RankBWT(12, 'z'))
}

func TestCSARoundTrip(t *testing.T) {
	tests := map[string]struct {
		text []byte
	}{
		"single character": {text: []byte{42}},
		"same characters":  {text: []byte("aaaaaaa")},
		"banana":           {text: []byte("banana$")},
		"abracadabra":      {text: []byte("abracadabra$")},
		"dna":              {text: append(genRandText(500, 4), 0)},
		"bytes":            {text: append(genRandText(500, 256), 0)},
		"large alphabet":   {text: genRandText(300, 200)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sa := makeSA(tc.text)
			c, err := NewCSA(tc.text, sa)
			assert.NoError(t, err)
			n := c.Size()
			assert.Equal(t, len(tc.text), n)

			for i := 0; i < n; i++ {
				assert.Equal(t, int(sa[i]), c.At(i), "sa at %d", i)
				assert.Equal(t, i, c.ISAAt(c.At(i)), "isa inverse at %d", i)
			}
		})
	}
}

func TestCSAPsiLFInverse(t *testing.T) {
	tests := map[string]struct {
		text []byte
	}{
		"banana":      {text: []byte("banana$")},
		"abracadabra": {text: []byte("abracadabra$")},
		"repetitive":  {text: []byte("abababababab$")},
		"random":      {text: append(genRandText(400, 16), 0)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := FromText(tc.text)
			for i := 0; i < c.Size(); i++ {
				assert.Equal(t, i, c.LFAt(c.PsiAt(i)), "lf(psi) at %d", i)
				assert.Equal(t, i, c.PsiAt(c.LFAt(i)), "psi(lf) at %d", i)
			}
		})
	}
}

func TestCSABWTIdentity(t *testing.T) {
	tests := map[string]struct {
		text []byte
	}{
		"banana":         {text: []byte("banana$")},
		"abracadabra":    {text: []byte("abracadabra$")},
		"random small":   {text: append(genRandText(300, 8), 0)},
		"large alphabet": {text: append(genRandText(300, 250), 1)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := FromText(tc.text)
			want := bruteBWT(tc.text, sais(tc.text))
			bwt := c.BWTView()
			for i := 0; i < c.Size(); i++ {
				assert.Equal(t, want[i], bwt.At(i), "bwt at %d", i)
			}
		})
	}
}

func TestCSATextAccess(t *testing.T) {
	tests := map[string]struct {
		text []byte
	}{
		"banana":         {text: []byte("banana$")},
		"tiny alphabet":  {text: append(genRandText(200, 3), 0)},
		"large alphabet": {text: append(genRandText(200, 255), 0)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := FromText(tc.text)
			txt := c.TextView()
			for i, ch := range tc.text {
				assert.Equal(t, ch, txt.At(i), "text at %d", i)
			}
		})
	}
}

// TestCSABackwardWalk reproduces the text in reverse by walking LF from the
// rank of the first suffix and reading the F column at every step.
func TestCSABackwardWalk(t *testing.T) {
	text := []byte("abracadabra$")
	c := FromText(text)
	n := c.Size()
	f := c.FView()
	lf := c.LFView()

	r := c.ISAAt(0)
	got := make([]byte, 0, n)
	for range text {
		got = append(got, f.At(r))
		r = lf.At(r)
	}
	// The walk visits text positions 0, n-1, n-2, ..., 1.
	want := []byte{text[0]}
	for i := n - 1; i >= 1; i-- {
		want = append(want, text[i])
	}
	assert.Equal(t, want, got)
}

func TestCSARankSelectBWT(t *testing.T) {
	tests := map[string]struct {
		text []byte
	}{
		"banana":         {text: []byte("banana$")},
		"abracadabra":    {text: []byte("abracadabra$")},
		"random":         {text: genSentinelText(300, 6)},
		"large alphabet": {text: genSentinelText(300, 240)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := FromText(tc.text)
			n := c.Size()
			want := bruteBWT(tc.text, sais(tc.text))

			// Exhaustive rank check against a running count of the BWT.
			var seen [256]int
			for i := 0; i <= n; i++ {
				for _, ch := range []byte("ab$z") {
					assert.Equal(t, seen[ch], c.RankBWT(i, ch), "rank of %q before %d", ch, i)
				}
				if i < n {
					seen[want[i]]++
				}
			}

			// Select is the inverse of rank occurrence by occurrence, and
			// returns Size() past the last occurrence.
			for ch := 0; ch < 256; ch++ {
				total := seen[ch]
				for i := 1; i <= total; i++ {
					pos := c.SelectBWT(i, byte(ch))
					assert.Less(t, pos, n)
					assert.Equal(t, byte(ch), want[pos], "select of %d-th %q", i, ch)
					assert.Equal(t, i-1, c.RankBWT(pos, byte(ch)))
				}
				assert.Equal(t, n, c.SelectBWT(total+1, byte(ch)), "sentinel for %q", ch)
			}
		})
	}
}

func TestCSAConstructionErrors(t *testing.T) {
	_, err := NewCSA([]byte("abc"), []int32{0, 1})
	assert.Error(t, err)

	_, err = NewCSA([]byte("abc"), []int32{0, 1, 5})
	assert.Error(t, err)
}

func TestCSAEmpty(t *testing.T) {
	c, err := NewCSA(nil, nil)
	assert.NoError(t, err)
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 0, c.Sigma())
	assert.Equal(t, 0, c.RankBWT(0, 'a'))
	assert.Equal(t, 0, c.SelectBWT(1, 'a'))
}

func TestCSAEqual(t *testing.T) {
	a := FromText([]byte("abracadabra$"))
	b := FromText([]byte("abracadabra$"))
	other := FromText([]byte("banana$"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(other))
}
