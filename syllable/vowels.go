// ptstemmer - Portuguese stemmer for Go
//
// Copyright (c) 2013 - Thiago Cardoso <thiagoncc@gmail.com>
//
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
//
// 1. Redistributions of source code must retain the above copyright notice, this
//    list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright notice,
//    this list of conditions and the following disclaimer in the documentation
//    and/or other materials provided with the distribution.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND
// ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
// WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
// DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT OWNER OR CONTRIBUTORS BE LIABLE FOR
// ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES
// (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
// LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND
// ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
// SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// Package syllable splits Brazilian Portuguese words into syllables, with
// two interchangeable algorithms: Silva2011 (a context-sensitive rule
// cascade) and CECI (a table-driven finite-state scanner).
package syllable

import "errors"

// ErrSyllabifierFault is returned when the Silva2011 rule cascade indexes
// past the end of the word. Callers should treat the word as a
// single syllable rather than surface this to an end user.
var ErrSyllabifierFault = errors.New("syllable: fault while splitting word")

// ErrUnknownCECIAction is returned when the CECI action table yields a
// digit outside {0,1,2,3,4}, which should only happen if the table has
// been corrupted.
var ErrUnknownCECIAction = errors.New("syllable: unknown CECI action code")

// V holds the oral/nasal full vowels (the Silva2011 "V" set). i and u are
// excluded here because Portuguese treats them as semivowels (see G) in
// many contexts; they are still counted as vowel-like when locating
// syllable nuclei (see vowelPositions).
var V = map[rune]bool{
	'a': true, 'e': true, 'o': true, 'á': true, 'é': true, 'í': true,
	'ó': true, 'ú': true, 'ã': true, 'õ': true, 'â': true, 'ê': true,
	'ô': true, 'à': true, 'ü': true,
}

// G holds the semivowels.
var G = map[rune]bool{'i': true, 'u': true}

// CO, CF, CL, CN are the stop, fricative, liquid and nasal consonants. The
// original Python sets also list two and three letter onset/coda digraphs
// ("qu", "ch", "rr", ...), but every membership test against these sets in
// silva2011.py compares a single rune, so the multi-letter members can
// never match and are omitted here; the digraph cases that do matter
// ("qu", "gu", "qü", "gü") are checked as explicit two-rune slices at their
// call sites instead, exactly as the original does.
var (
	CO = map[rune]bool{'p': true, 't': true, 'b': true, 'd': true, 'c': true, 'g': true, 'q': true}
	CF = map[rune]bool{'f': true, 'v': true, 's': true, 'ç': true, 'z': true, 'j': true, 'x': true}
	CL = map[rune]bool{'l': true, 'r': true}
	CN = map[rune]bool{'m': true, 'n': true}
)

// C is the union of all consonants.
var C = unionRune(CO, CF, CL, CN)

// OS lists orthographic consonant sequences that straddle a syllable
// boundary (e.g. "apto" -> ap-to).
var OS = map[string]bool{
	"bp": true, "bt": true, "bd": true, "bc": true, "bm": true, "bn": true,
	"bs": true, "bz": true, "bj": true, "bv": true, "pt": true, "ps": true,
	"pç": true, "pc": true, "dm": true, "dv": true, "dj": true, "tm": true,
	"ct": true, "cn": true, "gm": true, "mn": true, "ft": true,
}

func unionRune(sets ...map[rune]bool) map[rune]bool {
	out := map[rune]bool{}
	for _, s := range sets {
		for r := range s {
			out[r] = true
		}
	}
	return out
}

// ch returns the rune at index i, following Python string-indexing
// semantics: a negative i wraps from the end of the word, and an index at
// or past len(w) panics with ErrSyllabifierFault (mirroring the IndexError
// the original algorithm relies on for its own fault recovery).
func ch(w []rune, i int) rune {
	n := len(w)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		panic(ErrSyllabifierFault)
	}
	return w[i]
}

// pySlice mimics Python's forgiving string-slicing semantics: indices are
// clamped into range (after wrapping negatives) rather than panicking, and
// an inverted range yields "".
func pySlice(w []rune, lo, hi int) string {
	n := len(w)
	if lo < 0 {
		lo += n
	}
	if hi < 0 {
		hi += n
	}
	if lo < 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return ""
	}
	return string(w[lo:hi])
}

// vowelPositions returns the rune offsets of every vowel-or-semivowel
// character in w, in ascending order.
func vowelPositions(w []rune) []int {
	var p []int
	for i, r := range w {
		if V[r] || G[r] {
			p = append(p, i)
		}
	}
	return p
}

func pIndex(p []int, k int) int {
	if k < 0 || k >= len(p) {
		panic(ErrSyllabifierFault)
	}
	return p[k]
}
