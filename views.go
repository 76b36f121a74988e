// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import "iter"

// The traversal views are zero-storage projections of a CSA: every access
// recomputes its value from the stored SA/ISA and the alphabet, nothing is
// cached. A view holds a non-owning pointer to its CSA and stays valid
// exactly as long as that CSA does. Code that copies or reloads a CSA into a
// new location must Rebind every view it kept; nothing detects a stale
// binding on its own.

// Sequence is the uniform read-only random-access contract all views (and
// the CSA itself, over suffix array values) provide, so generic algorithms
// can run against stored and computed sequences alike.
type Sequence[V any] interface {
	Size() int
	Empty() bool
	At(i int) V
}

// All iterates a sequence in index order.
func All[V any](s Sequence[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := 0; i < s.Size(); i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Psi is the forward-successor view: Psi.At(i) is the suffix array rank of
// the suffix one text position after the suffix of rank i.
type Psi struct{ csa *CSA }

// PsiView returns the Psi view of c.
func (c *CSA) PsiView() Psi { return Psi{csa: c} }

// Size returns the number of entries.
func (p Psi) Size() int { return p.csa.Size() }

// Empty reports whether the view has no entries.
func (p Psi) Empty() bool { return p.csa.Empty() }

// At returns Psi[i].
func (p Psi) At(i int) int { return p.csa.PsiAt(i) }

// Rebind repoints the view at c after its CSA was relocated.
func (p *Psi) Rebind(c *CSA) { p.csa = c }

// LF is the backward-successor view, the inverse of Psi.
type LF struct{ csa *CSA }

// LFView returns the LF view of c.
func (c *CSA) LFView() LF { return LF{csa: c} }

// Size returns the number of entries.
func (f LF) Size() int { return f.csa.Size() }

// Empty reports whether the view has no entries.
func (f LF) Empty() bool { return f.csa.Empty() }

// At returns LF[i].
func (f LF) At(i int) int { return f.csa.LFAt(i) }

// Rebind repoints the view at c after its CSA was relocated.
func (f *LF) Rebind(c *CSA) { f.csa = c }

// ISA is the inverse suffix array view: At(i) is the rank of the suffix
// starting at text position i.
type ISA struct{ csa *CSA }

// ISAView returns the inverse suffix array view of c.
func (c *CSA) ISAView() ISA { return ISA{csa: c} }

// Size returns the number of entries.
func (s ISA) Size() int { return s.csa.Size() }

// Empty reports whether the view has no entries.
func (s ISA) Empty() bool { return s.csa.Empty() }

// At returns ISA[i].
func (s ISA) At(i int) int { return s.csa.ISAAt(i) }

// Rebind repoints the view at c after its CSA was relocated.
func (s *ISA) Rebind(c *CSA) { s.csa = c }

// BWT is the Burrows-Wheeler transform view, including the rank and select
// queries the FM-style structures are built on.
type BWT struct{ csa *CSA }

// BWTView returns the BWT view of c.
func (c *CSA) BWTView() BWT { return BWT{csa: c} }

// Size returns the number of entries.
func (b BWT) Size() int { return b.csa.Size() }

// Empty reports whether the view has no entries.
func (b BWT) Empty() bool { return b.csa.Empty() }

// At returns the BWT symbol at rank i.
func (b BWT) At(i int) byte { return b.csa.BWTAt(i) }

// Rank returns the number of occurrences of ch in BWT[0, i).
func (b BWT) Rank(i int, ch byte) int { return b.csa.RankBWT(i, ch) }

// Select returns the position of the i-th occurrence of ch in the BWT, or
// Size() when there are fewer than i occurrences.
func (b BWT) Select(i int, ch byte) int { return b.csa.SelectBWT(i, ch) }

// Rebind repoints the view at c after its CSA was relocated.
func (b *BWT) Rebind(c *CSA) { b.csa = c }

// FirstRow is the F column view: At(i) is the first character of the suffix
// of rank i.
type FirstRow struct{ csa *CSA }

// FView returns the first row (F column) view of c.
func (c *CSA) FView() FirstRow { return FirstRow{csa: c} }

// Size returns the number of entries.
func (f FirstRow) Size() int { return f.csa.Size() }

// Empty reports whether the view has no entries.
func (f FirstRow) Empty() bool { return f.csa.Empty() }

// At returns F[i].
func (f FirstRow) At(i int) byte { return f.csa.firstRowSymbol(i) }

// Rebind repoints the view at c after its CSA was relocated.
func (f *FirstRow) Rebind(c *CSA) { f.csa = c }

// Text is the original-text view, reconstructing one symbol per access.
type Text struct{ csa *CSA }

// TextView returns the text view of c.
func (c *CSA) TextView() Text { return Text{csa: c} }

// Size returns the text length.
func (t Text) Size() int { return t.csa.Size() }

// Empty reports whether the text is empty.
func (t Text) Empty() bool { return t.csa.Empty() }

// At returns the text symbol at position i.
func (t Text) At(i int) byte { return t.csa.TextAt(i) }

// Rebind repoints the view at c after its CSA was relocated.
func (t *Text) Rebind(c *CSA) { t.csa = c }
