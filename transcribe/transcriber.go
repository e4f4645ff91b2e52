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

// Package transcribe turns a word's hyphenated syllables into an IPA
// phonetic transcription, following the grapheme-to-phoneme cascade from
// Marquiafavel's thesis as implemented by PETRUS's g2p module.
package transcribe

import (
	"strings"

	"github.com/alessandrobokan/PETRUS/stress"
	"github.com/alessandrobokan/PETRUS/syllable"
	"golang.org/x/text/unicode/norm"
)

// consonants and vowels, used for set-membership tests throughout the
// transcription cascade.
var (
	consonantSet = runeSet("bcdfghjklmnpqrstvwxyz")
	vowelSet     = runeSet("aeoáéíóúãõâêôàü")
)

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

func inSet(set map[rune]bool, r rune) bool { return set[r] }

func inRunes(r rune, opts string) bool { return strings.ContainsRune(opts, r) }

// rAt returns the rune at index idx, or the zero rune if idx is out of
// range. Most call sites in the cascade below are guarded by a "tam - N > i"
// length check, as in the original; the rest read a neighbour without one,
// and such out-of-range reads yield the zero rune, which is in no letter set.
func rAt(s []rune, idx int) rune {
	if idx < 0 || idx >= len(s) {
		return 0
	}
	return s[idx]
}

// rSlice mimics Python's forgiving string slicing: out-of-range bounds
// clamp instead of panicking.
func rSlice(s []rune, lo, hi int) string {
	n := len(s)
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo > n {
		lo = n
	}
	if lo >= hi {
		return ""
	}
	return string(s[lo:hi])
}

// splice returns rSlice(w,0,j) + repl + rSlice(w,j+drop,len(w)), exactly
// mirroring the original's repeated `w[:j] + X + w[j+drop:]` pattern.
func splice(w []rune, j, drop int, repl string) []rune {
	head := rSlice(w, 0, j)
	tail := rSlice(w, j+drop, len(w))
	return []rune(head + repl + tail)
}

// Transcriber turns one Brazilian Portuguese word into its IPA
// transcription using a chosen syllabification algorithm.
type Transcriber struct {
	word     string
	stress   *stress.Detector
	sep      syllabifier
	prefixes PrefixTable
	hhs      HHTable

	syllables string
}

type syllabifier interface {
	Separate() ([]string, error)
}

// Algorithm selects which syllable separator backs a Transcriber.
type Algorithm int

const (
	// Silva selects the Silva2011 context-sensitive rule cascade (default).
	Silva Algorithm = iota
	// CECI selects the table-driven finite-state scanner.
	CECI
)

// New builds a Transcriber for word using the given syllabification
// algorithm and resource tables. Pass nil tables to use the embedded
// defaults.
func New(word string, algo Algorithm, prefixes PrefixTable, hhs HHTable) *Transcriber {
	w := strings.ToLower(word)
	d := stress.New(w)

	var sep syllabifier
	if algo == CECI {
		sep = syllable.NewCECI(w)
	} else {
		sep = syllable.NewSilva2011(w, d.StressVowel())
	}
	if prefixes == nil {
		prefixes, _ = LoadPrefixes("")
	}
	if hhs == nil {
		hhs, _ = LoadHomographsHeterophones("")
	}

	t := &Transcriber{word: w, stress: d, sep: sep, prefixes: prefixes, hhs: hhs}
	t.syllables = t.syllablesWithHyphen()
	return t
}

// Syllables returns the word split into syllables, e.g. ["cho","co","la","te"].
// On any syllabifier fault it falls back to treating the whole word as a
// single syllable, matching the original's `except (ValueError, IndexError)`.
func (t *Transcriber) Syllables() []string {
	out, err := t.sep.Separate()
	if err != nil {
		return []string{t.word}
	}
	return out
}

func (t *Transcriber) syllablesWithHyphen() string {
	return strings.Join(t.Syllables(), "-")
}

// SyllablesWithHyphen returns the hyphenated syllabification, e.g. "cho-co-la-te".
func (t *Transcriber) SyllablesWithHyphen() string { return t.syllables }

// SyllablesWithStressBoundaries brackets the tonic syllable with "[" "]",
// e.g. "cho-co-[la]-te".
func (t *Transcriber) SyllablesWithStressBoundaries() string {
	a, b := t.stress.SyllableWithHyphen(t.syllables)
	r := []rune(t.syllables)
	return rSlice(r, 0, a) + "[" + rSlice(r, a, b) + "]" + rSlice(r, b, len(r))
}

func (t *Transcriber) isTonicSyllable(ts1, ts2, i int) bool {
	return ts1 <= i && i <= ts2
}

func (t *Transcriber) isLastSyllable(i int) bool {
	r := []rune(t.syllables)
	a := 0
	for idx, c := range r {
		if c == '-' {
			a = idx + 1
		}
	}
	b := len(r) - 1
	return a <= i && i <= b
}

// preTranscribe applies the prefix table to the hyphenated syllables,
// returning the rewritten output buffer (w) the phoneme cascade starts
// from, and the (i, j) cursor offset the cascade should resume at. A
// handful of prefixes have hand-tuned phonetic overrides the original
// special-cases by exact syllable match instead of using the table's
// generic entry.
func (t *Transcriber) preTranscribe() (i, j int, w []rune) {
	p, ok := newPrefixTrie(t.prefixes).match(t.syllables)
	if !ok {
		return 0, 0, []rune(t.syllables)
	}

	phones := p.Phonemes
	switch t.syllables {
	case "e-co-cha-to", "e-co-rre-no-va-ção":
		phones = "ɛ-ko"
	case "e-le-tro-do", "e-le-trô-ni-co":
		phones = "e-le-tɾo"
	}
	if strings.Index(t.syllables, "te-le-fo-ne") == 0 {
		phones = "te-le"
	}
	i, j = len([]rune(p.Syllables)), len([]rune(phones))
	rest := rSlice([]rune(t.syllables), i, len([]rune(t.syllables)))
	return i, j, []rune(phones + rest)
}

// Transcribe returns the word's IPA transcription, e.g. "ʃo.ko.ˈla.ʧɪ". A
// Homograph Heterophone short-circuits the whole cascade and returns its
// alternative readings comma-joined.
func (t *Transcriber) Transcribe() string {
	if phones, ok := t.hhs[t.word]; ok {
		return strings.ReplaceAll(phones, "|", ", ")
	}

	i, j, w := t.preTranscribe()
	word := []rune(t.syllables)
	tam := len(word)

	ts1, ts2 := t.stress.SyllableWithHyphen(t.syllables)

	for i < tam {
		switch word[i] {
		case 'p':
			i, j, w = t.ruleP(word, w, i, j, tam)
		case 'b':
			i, j, w = t.ruleB(word, w, i, j, tam, ts1, ts2)
		case 'c':
			i, j, w = t.ruleC(word, w, i, j, tam)
		case 'ç':
			w = splice(w, j, 1, "s")
		case 't':
			i, j, w = t.ruleT(word, w, i, j, tam)
		case 'd':
			i, j, w = t.ruleD(word, w, i, j, tam)
		case 'f':
			i, j, w = t.ruleF(word, w, i, j, tam)
		case 'g':
			i, j, w = t.ruleG(word, w, i, j, tam)
		case 'h':
			if i == 0 {
				w = []rune(rSlice(w, j+1, len(w)))
				j--
			}
		case 'v':
			i, j, w = t.ruleV(word, w, i, j, tam)
		case 'w':
			if rAt(word, i+1) == 'h' {
				w = splice(w, j, 2, "u")
				j--
			} else {
				w = splice(w, j, 1, "u")
			}
		case 's':
			i, j, w = t.ruleS(word, w, i, j, tam)
		case 'j':
			w = splice(w, j, 1, "ʒ")
		case 'z':
			if tam-1 == i {
				w = []rune(rSlice(w, 0, j) + "s")
			}
		case 'r':
			i, j, w = t.ruleR(word, w, i, j, tam)
		case 'm':
			i, j, w = t.ruleM(word, w, i, j, tam)
		case 'n':
			i, j, w = t.ruleN(word, w, i, j, tam)
		case 'l':
			i, j, w = t.ruleL(word, w, i, j, tam)
		case 'x':
			i, j, w = t.ruleX(word, w, i, j, tam)
		case 'q':
			i, j, w = t.ruleQ(word, w, i, j, tam)
		case 'y':
			w = splice(w, j, 1, "i")
		case 'k':
			if tam-1 == i || rAt(word, i+1) == '-' {
				w = splice(w, j+1, 0, "ɪ")
				j++
			}
		case 'a':
			i, j, w = t.ruleA(word, w, i, j, tam, ts1, ts2)
		case 'â':
			i, j, w = t.ruleAcirc(word, w, i, j, tam, ts1, ts2)
		case 'à':
			w = splice(w, j, 1, "a")
		case 'á':
			w = splice(w, j, 1, "a")
		case 'e':
			i, j, w = t.ruleE(word, w, i, j, tam, ts1, ts2)
		case 'é':
			i, j, w = t.ruleEacute(word, w, i, j, tam)
		case 'ê':
			i, j, w = t.ruleEcirc(word, w, i, j, tam)
		case 'i':
			i, j, w = t.ruleI(word, w, i, j, tam, ts1, ts2)
		case 'í':
			i, j, w = t.ruleIacute(word, w, i, j, tam)
		case 'o':
			i, j, w = t.ruleO(word, w, i, j, tam, ts1, ts2)
		case 'ó':
			i, j, w = t.ruleOacute(word, w, i, j, tam)
		case 'ô':
			i, j, w = t.ruleOcirc(word, w, i, j, tam, ts1, ts2)
		case 'u':
			i, j, w = t.ruleU(word, w, i, j, tam, ts1, ts2)
		case 'ú':
			i, j, w = t.ruleUacute(word, w, i, j, tam)
		case 'ã':
			i, j, w = t.ruleAtil(word, w, i, j, tam)
		case 'õ':
			i, j, w = t.ruleOtil(word, w, i, j, tam)
		}
		i++
		j++
	}

	a, _ := t.stress.PhoneticSyllable(t.syllables, string(w))
	result := rSlice(w, 0, a) + "ˈ" + rSlice(w, a, len(w))
	result = strings.ReplaceAll(result, "-", ".")
	return norm.NFC.String(result)
}

func (t *Transcriber) ruleP(word, w []rune, i, j, tam int) (int, int, []rune) {
	T := "bcçfgnst"
	if (tam-1 > i && inRunes(rAt(word, i+1), T)) ||
		(tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T)) {
		w = splice(w, j+1, 0, "ɪ")
		j++
	}
	return i, j, w
}

func (t *Transcriber) ruleB(word, w []rune, i, j, tam int, ts1, ts2 int) (int, int, []rune) {
	T := "cdjmnptvs"
	switch {
	case tam-1 > i && inRunes(rAt(word, i+1), T):
		w = splice(w, j+1, 0, "ɪ")
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 's' && t.isTonicSyllable(ts1, ts2, i+2):
		w = splice(w, j+1, 2, "ɪ-s")
		j += 3
		i += 2
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T) && !t.isTonicSyllable(ts1, ts2, i+2):
		w = splice(w, j+1, 1, "ɪ-")
		j += 2
		i++
	}
	if tam-1 == i {
		w = splice(w, j+1, 0, "ɪ")
		j++
	}
	return i, j, w
}

func (t *Transcriber) ruleC(word, w []rune, i, j, tam int) (int, int, []rune) {
	switch {
	case tam-1 > i && inRunes(rAt(word, i+1), "eéêií"):
		w = splice(w, j, 1, "s")
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), consonantsStr) && !inRunes(rAt(word, i+2), "rl"):
		w = splice(w, j, 1, "kɪ")
		j++
	case tam-1 == i:
		w = splice(w, j, len(w)-j, "kɪ")
	case tam-2 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'ç':
		w = splice(w, j, 1, "kɪ")
		j++
	case tam-1 > i && rAt(word, i+1) == 'h':
		w = splice(w, j, 2, "ʃ")
		i++
	case tam-1 > i && !inRunes(rAt(word, i+1), "eéêií"):
		w = splice(w, j, 1, "k")
	}
	return i, j, w
}

const consonantsStr = "bcdfghjklmnpqrstvwxyz"

func (t *Transcriber) ruleT(word, w []rune, i, j, tam int) (int, int, []rune) {
	switch {
	case tam-1 > i && inRunes(rAt(word, i+1), "ií"):
		w = splice(w, j, 1, "ʧ")
	case tam-2 == i && rAt(word, i+1) == 'e':
		w = splice(w, j, 1, "ʧ")
	case tam-3 == i && rSlice(word, i+1, i+3) == "es":
		w = splice(w, j, 1, "ʧ")
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), consonantsStr):
		w = splice(w, j, 1, "ʧɪ")
		j++
	case tam-1 > i && inRunes(rAt(word, i+1), "mn"):
		w = splice(w, j, 1, "ʧɪ")
		j++
	}
	return i, j, w
}

func (t *Transcriber) ruleD(word, w []rune, i, j, tam int) (int, int, []rune) {
	tmp := "aâãáàéêôóouú"
	switch {
	case tam-1 > i && rAt(word, i+1) == 's':
		w = splice(w, j, 1, "ʤɪ")
		j++
	case tam-1 > i && (inRunes(rAt(word, i+1), tmp) || inRunes(rAt(word, i+1), consonantsStr)):
		w = splice(w, j, 1, "d")
	case tam-1 > i && rAt(word, i+1) == 'i':
		w = splice(w, j, 1, "ʤ")
	case tam-2 == i && rAt(word, i+1) == 'e':
		w = splice(w, j, 1, "ʤ")
	case tam-3 == i && rSlice(word, i+1, i+3) == "es":
		w = splice(w, j, 1, "ʤ")
	case tam-1 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), consonantsStr):
		w = splice(w, j, 1, "ʤɪ")
		j++
	case tam-1 == i:
		w = splice(w, j, 1, "ʤ")
	}
	return i, j, w
}

func (t *Transcriber) ruleF(word, w []rune, i, j, tam int) (int, int, []rune) {
	switch {
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), consonantsStr):
		w = splice(w, j+1, 0, "ɪ")
		j++
	case tam-1 == i:
		w = append(append([]rune{}, w...), 'ɪ')
	}
	return i, j, w
}

func (t *Transcriber) ruleG(word, w []rune, i, j, tam int) (int, int, []rune) {
	T2 := "eéêií"
	T3 := "ao"
	T4 := "ei"
	switch {
	case tam-1 > i && inRunes(rAt(word, i+1), T2):
		w = splice(w, j, 1, "ʒ")
	case tam-1 > i && inRunes(rAt(word, i+1), consonantsStr) && !inRunes(rAt(word, i+1), "lr"):
		w = splice(w, j+1, 0, "ɪ")
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), consonantsStr) && !inRunes(rAt(word, i+2), "lr"):
		w = splice(w, j+1, 0, "ɪ")
		j++
	case len(word)-3 > i && rAt(word, i+1) == 'u' && inRunes(rAt(word, i+2), "eéê") && rAt(word, i+3) == 'n':
		w = splice(w, j, 2, "gʊ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'u' && inRunes(rAt(word, i+2), T3):
		w = splice(w, j+1, 1, "ʊ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'u' && inRunes(rAt(word, i+2), T4):
		w = splice(w, j+1, 1, "")
		i++
	}
	return i, j, w
}

func (t *Transcriber) ruleV(word, w []rune, i, j, tam int) (int, int, []rune) {
	if tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), consonantsStr) {
		w = splice(w, j+1, 0, "ɪ")
		j++
	}
	if tam-1 > i && inRunes(rAt(word, i+1), consonantsStr) {
		w = splice(w, j+1, 0, "ɪ")
		j++
	}
	return i, j, w
}

func (t *Transcriber) ruleS(word, w []rune, i, j, tam int) (int, int, []rune) {
	T1 := "nrzvgdbml"
	T2 := "sç"
	T3 := "eéêiíî"
	T4 := "aáàâoóôuúû"
	extVowels := "aeoáéíóúãõâêôàüiu"
	switch {
	case tam-1 > i && tam-2 >= 0 && rAt(word, i-1) == '-' && inRunes(rAt(word, i-2), extVowels) && inRunes(rAt(word, i+1), extVowels):
		w = splice(w, j, 1, "z")
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1):
		w = splice(w, j, 1, "z")
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T2):
		w = splice(w, j, 3, "-s")
		j++
		i += 2
	case tam-2 > i && rAt(word, i+1) == 's':
		w = splice(w, j+1, 1, "")
		i++
	case tam-3 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'c' && inRunes(rAt(word, i+3), T3):
		w = splice(w, j, 3, "-s")
		j++
		i += 2
	case tam-3 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'c' && inRunes(rAt(word, i+3), T4):
		w = splice(w, j+1, 2, "-k")
		j += 2
		i += 2
	case tam-1 > i && rAt(word, i+1) == 'h':
		w = splice(w, j, 2, "ʃ")
		i++
	}
	return i, j, w
}

func (t *Transcriber) ruleR(word, w []rune, i, j, tam int) (int, int, []rune) {
	T1 := "bdgptcfv"
	T2 := "bdgvzjmnl"
	switch {
	case i == 0:
		w = splice(w, j, 1, "x")
	case tam-1 == i:
		w = []rune(rSlice(w, 0, j) + "x")
	case rAt(word, i-1) == '-' && inRunes(rAt(word, i-2), "snl"):
		w = splice(w, j, 1, "x")
	case rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), "ptcfq"):
		w = splice(w, j, 1, "x")
	case tam-1 > i && inRunes(rAt(word, i+1), "aeoáéíóúãõâêôàüiu") && rAt(word, i-1) == '-' && inRunes(rAt(word, i-2), "aeoáéíóúãõâêôàüiu"):
		w = splice(w, j, 1, "ɾ")
	case i-1 >= 0 && inRunes(rAt(word, i-1), T1):
		w = splice(w, j, 1, "ɾ")
	case tam-2 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'r':
		w = splice(w, j, 3, "-x")
		j++
		i += 2
	case tam-1 > i && rAt(word, i+1) == 'r':
		w = splice(w, j, 2, "x")
		i++
	case tam-1 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T2):
		w = splice(w, j, 1, "ɣ")
	default:
		w = splice(w, j, 1, "ɾ")
	}
	return i, j, w
}

func (t *Transcriber) ruleM(word, w []rune, i, j, tam int) (int, int, []rune) {
	switch {
	case t.syllables == "mui-ta" || t.syllables == "mui-tas" || t.syllables == "mui-to" || t.syllables == "mui-tos":
		w = splice(w, j+2, 1, "ĩ")
		j += 4
		i += 3
	case tam-1 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), consonantsStr) && !inRunes(rAt(word, i+2), "pb"):
		// Mirrors the original's `w[:j+1] + ipa + word[j+1:]`: the tail is
		// sliced from the syllable string, not the phoneme buffer.
		w = []rune(rSlice(w, 0, j+1) + "ɪ" + rSlice(word, j+1, len(word)))
		j++
	}
	return i, j, w
}

func (t *Transcriber) ruleN(word, w []rune, i, j, tam int) (int, int, []rune) {
	T := "aeiou"
	switch {
	case tam-1 > i && inRunes(rAt(word, i-1), T) && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), "cgr"):
		w = splice(w, j, 1, "ɳ")
	case tam-2 > i && rAt(word, i+1) == 'h' && rSlice(word, i+2, i+5) != "i-a":
		w = splice(w, j, 2, "ɲ")
		i++
	case tam-2 > i && rAt(word, i+1) == 'h' && rSlice(word, i+2, i+5) == "i-a":
		w = splice(w, j+1, 1, "")
		i++
	}
	return i, j, w
}

func (t *Transcriber) ruleL(word, w []rune, i, j, tam int) (int, int, []rune) {
	switch {
	case tam-1 == i:
		w = splice(w, j, 1, "ʊ")
	case tam-1 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), consonantsStr):
		w = splice(w, j, 1, "ʊ")
	case tam-2 > i && rAt(word, i+1) == 'h':
		w = splice(w, j, 2, "ʎ")
		i++
	}
	return i, j, w
}

func (t *Transcriber) ruleX(word, w []rune, i, j, tam int) (int, int, []rune) {
	T1 := "fkpqts"
	T2 := "cfpt"
	T3 := "eéêií"
	switch {
	case i == 0:
		w = splice(w, j, 1, "ʃ")
	case rSlice(word, i-3, i-1) == "en" || rSlice(word, i-3, i-1) == "ai" || rSlice(word, i-3, i-1) == "ei" || rSlice(word, i-3, i-1) == "ou":
		w = splice(w, j, 1, "ʃ")
	case tam-3 > 1 && rAt(word, i-1) == '-' && rAt(word, i-2) == 'i' && inRunes(rAt(word, i-3), "fm"):
		w = splice(w, j, 1, "ks")
		j++
	case tam-4 > 1 && rAt(word, i-1) == '-' && inRunes(rAt(word, i-2), "eu") && rSlice(word, i-4, i-2) == "fl":
		w = splice(w, j, 1, "ks")
		j++
	case tam-1 == i:
		w = []rune(rSlice(w, 0, j) + "kɪs")
	case tam-3 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'c' && inRunes(rAt(word, i+3), T3):
		w = splice(w, j, 3, "s")
		i += 2
	case i-3 == 0 && rAt(word, i-1) == '-' && rAt(word, i-2) == 'i' && inRunes(rAt(word, i-3), "fm"):
		w = splice(w, j, 1, "kɪs")
		j += 2
	case tam-1 > i && i-1 == 0 && rAt(word, i-1) == 'e' && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T2):
		w = splice(w, j, 1, "s")
	case tam-3 > i && i-2 == 0 && inRunes(rAt(word, i-2), "eê") && inSet(vowelSet, rAt(word, i+1)) && inSet(consonantSet, rAt(word, i+2)):
		w = splice(w, j, 1, "z")
	case tam-3 > i && i-2 == 0 && inRunes(rAt(word, i-2), "eê") && inSet(vowelSet, rAt(word, i+1)) && rAt(word, i+2) == '-' && inSet(consonantSet, rAt(word, i+3)):
		w = splice(w, j, 1, "z")
	case tam-3 > i && i-5 == 0 && rSlice(word, i-5, i-1) == "i-ne" && (inSet(vowelSet, rAt(word, i+1)) || rAt(word, i+1) == 'i') && inSet(consonantSet, rAt(word, i+2)):
		w = splice(w, j, 1, "z")
	case tam-3 > i && i-5 == 0 && rSlice(word, i-5, i-1) == "i-ne" && inSet(vowelSet, rAt(word, i+1)) && rAt(word, i+2) == '-' && inSet(consonantSet, rAt(word, i+3)):
		w = splice(w, j, 1, "z")
	case tam-1 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1):
		w = splice(w, j, 1, "s")
	case tam-1 > i && i-1 == 0 && inRunes(rAt(word, i-1), "eê") && rAt(word, i+1) == '-' && inSet(consonantSet, rAt(word, i+2)) && rAt(word, i+2) != 'v':
		w = splice(w, j, 1, "z")
	case tam-1 > i && i-4 == 0 && rSlice(word, i-4, i) == "i-ne" && rAt(word, i+1) == '-' && inSet(consonantSet, rAt(word, i+2)) && rAt(word, i+2) != 'v':
		w = splice(w, j, 1, "z")
	default:
		w = splice(w, j, 1, "ʃ")
	}
	return i, j, w
}

func (t *Transcriber) ruleQ(word, w []rune, i, j, tam int) (int, int, []rune) {
	T1 := "aàáâoó"
	T2 := "eéêií"
	switch {
	case len(word)-3 > i && rAt(word, i+1) == 'u' && inRunes(rAt(word, i+2), "eéê") && rAt(word, i+3) == 'n':
		w = splice(w, j, 2, "kʊ")
		i++
		j++
	case len(word)-2 > i && rAt(word, i+1) == 'u' && inRunes(rAt(word, i+2), T1):
		w = splice(w, j, 2, "kʊ")
		i++
		j++
	case len(word)-2 > i && rAt(word, i+1) == 'u' && inRunes(rAt(word, i+2), T2):
		w = splice(w, j, 2, "k")
		i++
	}
	return i, j, w
}

func (t *Transcriber) ruleA(word, w []rune, i, j, tam int, ts1, ts2 int) (int, int, []rune) {
	T1 := "nm"
	switch {
	case tam-1 > i && rAt(word, i+1) == 'm' && i+1 == len(word)-1:
		w = splice(w, j, 2, "ɐ͂ʊ̃")
		i++
		j += 3
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ɐ͂")
		i++
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1) && t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ɐ͂")
		j++
	case tam-3 > i && rAt(word, i+1) == 'm' && rAt(word, i+2) == '-' && inRunes(rAt(word, i+3), "pb"):
		w = splice(w, j, 1, "ɐ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'o':
		w = splice(w, j+1, 1, "ʊ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'i':
		w = splice(w, j+1, 1, "ɪ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'u':
		w = splice(w, j, 2, "aʊ")
		i++
		j++
	case tam-3 > i && rAt(word, i+1) == 'l' && rAt(word, i+2) == '-' && inSet(consonantSet, rAt(word, i+3)):
		w = splice(w, j, 2, "aʊ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'a':
		w = splice(w, j+1, 2, "")
		i += 2
	case len(word)-1 > i && i == ts2-1 && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), "mn"):
		w = splice(w, j, 1, "ɐ")
	}
	return i, j, w
}

func (t *Transcriber) ruleAcirc(word, w []rune, i, j, tam int, ts1, ts2 int) (int, int, []rune) {
	T1 := "nm"
	T2 := "ptkbd"
	T3 := "fvszj"
	switch {
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ɐ͂")
		i++
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1) && t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ɐ͂")
		j++
	case tam-1 > i && inRunes(rAt(word, i+1), T1) && inRunes(rAt(word, i-1), T2):
		w = splice(w, j, 1, "ɐ͂")
		i++
		j += 2
	case tam-1 > i && inRunes(rAt(word, i+1), T1) && inRunes(rAt(word, i-1), T3):
		w = splice(w, j, 2, "ɐ͂")
		i++
		j++
	case tam-1 > i && (i == 0 || rAt(word, i-1) == '-') && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ɐ͂")
		i++
		j++
	case t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ɐ͂")
		j++
	}
	return i, j, w
}

func (t *Transcriber) ruleE(word, w []rune, i, j, tam int, ts1, ts2 int) (int, int, []rune) {
	T := t.syllables == "e-la" || t.syllables == "e-las" || t.syllables == "es-ta" || t.syllables == "es-tas"
	T1 := "nm"
	T2 := "tkd"

	if tam-1 > i && i == 0 && inRunes(rAt(word, i+1), "sz") {
		w = []rune("i" + rSlice(w, j+1, len(w)))
	} else if tam-3 > i && i == 0 && rAt(word, i+1) == '-' && rSlice(word, i+2, i+4) == "xa" {
		w = []rune("i" + rSlice(w, j+1, len(w)))
	} else if tam-3 > i && i == 0 && rAt(word, i+1) == 'x' && rAt(word, i+2) == '-' && inRunes(rAt(word, i+3), "pt") {
		w = []rune("i" + rSlice(w, j+1, len(w)))
	}

	switch {
	case tam-3 > i && inRunes(rAt(word, i+1), T1) && rAt(word, i+2) == '-' && inRunes(rAt(word, i+3), T2):
		w = splice(w, j, 2, "ẽɪ̃")
		i++
		j += 3
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ẽɪ̃")
		i++
		j += 3
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1) && t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ẽ")
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'a':
		w = splice(w, j, 1, "ɪ")
		i += 2
		j += 2
	case tam-1 > i && rAt(word, i+1) == 'i':
		w = splice(w, j+1, 1, "ɪ")
		i++
		j++
	case tam-3 == i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'o':
		w = splice(w, j, 3, "ɪʊ")
		i += 2
		j += 2
	case tam-1 > i && rAt(word, i+1) == 'u':
		w = splice(w, j+1, 1, "ʊ")
		i++
		j++
	case tam-1 > i && t.isTonicSyllable(ts1, ts2, i) && rAt(word, i+1) == 'l' && len(word)-2 == i:
		w = []rune(rSlice(w, 0, j) + "ɛʊ")
		i++
		j++
	case tam-1 > i && t.isTonicSyllable(ts1, ts2, i) && rAt(word, i+1) == 'l':
		w = splice(w, j, 1, "ɛ")
	case T && t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ɛ")
	case tam-3 > i && t.isTonicSyllable(ts1, ts2, i) && rAt(word, i+1) == '-' &&
		(rSlice(word, i+2, i+4) == "la" || rSlice(word, i+2, i+4) == "lo") &&
		t.syllables != "pe-lo" && t.syllables != "pe-la":
		w = splice(w, j, 1, "ɛ")
	case tam-1 == i:
		w = []rune(rSlice(w, 0, j) + "ɪ")
	case tam-2 == i && rAt(word, i+1) == 's':
		w = splice(w, j, 1, "ɪ")
	case tam-1 > i && i == 0 && inRunes(rAt(word, i+1), "sz"):
		w = splice(w, j, 1, "ɪ")
	}
	return i, j, w
}

func (t *Transcriber) ruleEacute(word, w []rune, i, j, tam int) (int, int, []rune) {
	T1 := "nm"
	T2 := "ptkbd"
	switch {
	case tam-3 > i && inRunes(rAt(word, i+1), T1) && rAt(word, i+2) == '-' && inRunes(rAt(word, i+3), T2):
		w = splice(w, j, 2, "ẽɪ̃")
		i++
		j += 2
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ẽɪ̃")
		i++
		j += 2
	case tam-1 > i && rAt(word, i+1) == 'i':
		w = splice(w, j, 2, "ɛɪ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'o':
		w = splice(w, j, 2, "ɛʊ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'u':
		w = splice(w, j, 2, "ɛʊ")
		i++
		j++
	default:
		w = splice(w, j, 1, "ɛ")
	}
	return i, j, w
}

func (t *Transcriber) ruleEcirc(word, w []rune, i, j, tam int) (int, int, []rune) {
	T1 := "nm"
	T2 := "ptkbd"
	T3 := "cgr"
	switch {
	case tam-3 > i && inRunes(rAt(word, i+1), T1) && rAt(word, i+2) == '-' && inRunes(rAt(word, i+3), T2):
		w = splice(w, j, 2, "ẽɪ̃")
		i++
		j += 2
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ẽɪ̃")
		i++
		j += 3
	case tam-3 > i && inRunes(rAt(word, i+1), T1) && rAt(word, i+2) == '-' && inRunes(rAt(word, i+3), T3):
		w = splice(w, j, 2, "eŋ")
		i++
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1):
		w = splice(w, j, 1, "ẽ")
		j++
	default:
		w = splice(w, j, 1, "e")
	}
	return i, j, w
}

func (t *Transcriber) ruleI(word, w []rune, i, j, tam int, ts1, ts2 int) (int, int, []rune) {
	T1 := "nm"
	switch {
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ĩ")
		i++
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1) && t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ĩ")
		j++
	case tam-3 == i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'e':
		w = splice(w, j+1, 2, "ɪ")
		i += 2
		j += 2
	case tam-2 == i && rAt(word, i+1) == 'u':
		w = splice(w, j+1, 2, "ʊ")
		i += 2
		j += 2
	case tam-3 == i && rAt(word, i-1) == '-' && inRunes(rAt(word, i-2), "eo") && rAt(word, i+1) == '-' && rAt(word, i+2) == 'o':
		w = splice(w, j, 3, "ɪ-ʊ")
		i += 2
		j += 2
	case tam-2 > i && rAt(word, i-1) == '-' && inRunes(rAt(word, i-2), "ae") && rAt(word, i+1) == '-' && rAt(word, i+2) == 'o':
		w = splice(w, j, 3, "ɪ-u")
		i += 2
		j += 2
	case tam-3 == i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'o':
		w = []rune(rSlice(w, 0, j) + "i-ʊ")
		i += 2
		j += 2
	case tam-4 > i && inRunes(rAt(word, i-1), "cs") && rAt(word, i+1) == '-' && rAt(word, i+2) == 'o' && rAt(word, i+3) == '-' && rAt(word, i+4) == 'n':
		w = splice(w, j, 3, "ɪ-o")
		i += 2
		j += 2
	case tam-1 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'u':
		w = splice(w, j+2, 1, "ʊ")
		i += 2
		j += 2
	case tam-1 > i && rAt(word, i+1) == 'l':
		w = splice(w, j+1, 1, "ʊ")
		i++
		j++
	case tam-1 == i && !t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ɪ")
	}
	return i, j, w
}

func (t *Transcriber) ruleIacute(word, w []rune, i, j, tam int) (int, int, []rune) {
	T1 := "nm"
	T2 := "cgr"
	switch {
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ĩ")
		i++
		j++
	case tam-3 > i && inRunes(rAt(word, i+1), T1) && rAt(word, i+2) == '-' && inRunes(rAt(word, i+3), T2):
		w = splice(w, j, 2, "iŋ")
		i++
		j++
	default:
		w = splice(w, j, 1, "i")
	}
	return i, j, w
}

func (t *Transcriber) ruleO(word, w []rune, i, j, tam int, ts1, ts2 int) (int, int, []rune) {
	T1 := "nm"
	switch {
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "õʊ̃")
		i++
		j += 3
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1) && t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "õ")
		j++
	case tam-1 > i && (rAt(word, i+1) == 'o' || rSlice(word, i+1, i+3) == "-o"):
		w = splice(w, j, 2, "")
		i++
		j--
	case tam-3 > i && rAt(word, i+1) == '-' && rSlice(word, i+2, i+4) == "ra":
		w = splice(w, j, 1, "ɔ")
	case tam-2 == i && t.isTonicSyllable(ts1, ts2, i) && rAt(word, i+1) == 'l':
		w = []rune(rSlice(w, 0, j) + "ɔʊ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'i':
		w = splice(w, j+1, 1, "ɪ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'e':
		w = splice(w, j+1, 1, "ɪ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'a':
		w = splice(w, j, 1, "ʊ")
		i++
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'a':
		w = splice(w, j, 1, "ʊ")
		i += 2
		j += 2
	case tam-4 == i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'o' && rAt(word, i+3) == 'u':
		w = []rune(rSlice(w, 0, j+3) + "ʊ")
		i += 3
		j += 3
	case tam-2 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'o':
		w = splice(w, j+1, 2, "")
		i += 3
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'ó':
		w = splice(w, j, 3, "ɔ")
		i += 3
		j++
	case tam-1 > i && rAt(word, i+1) == 'u':
		w = splice(w, j+1, 1, "ʊ")
		i++
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && rAt(word, i+2) == 'ú':
		w = splice(w, j+2, 1, "u")
		i += 2
		j += 2
	case tam-5 == i && rAt(word, i+1) == '-' && rSlice(word, i+2, i+5) == "sos":
		w = splice(w, j, 4, "ɔ-zʊ")
		i += 4
		j += 4
	case tam-1 > i && tam-2 == i && rAt(word, i+1) == 's':
		w = splice(w, j, 1, "ʊ")
		i += 2
		j += 2
	case tam-4 == i && rAt(word, i+1) == '-' && rSlice(word, i+2, i+4) == "sa":
		w = splice(w, j, 1, "ɔ")
	case tam-2 == i && rAt(word, i+1) == 'z' && t.syllables != "ar-roz":
		w = splice(w, j, 1, "ɔ")
	case tam-1 == i && !t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ʊ")
	}
	return i, j, w
}

func (t *Transcriber) ruleOacute(word, w []rune, i, j, tam int) (int, int, []rune) {
	if tam-1 > i && rAt(word, i+1) == 'i' {
		w = splice(w, j, 2, "ɔɪ")
		i += 2
		j += 2
	} else {
		w = splice(w, j, 1, "ɔ")
	}
	return i, j, w
}

func (t *Transcriber) ruleOcirc(word, w []rune, i, j, tam int, ts1, ts2 int) (int, int, []rune) {
	T1 := "nm"
	T2 := "cgr"
	switch {
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1) && t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "õ")
		j++
	case tam-3 > i && inRunes(rAt(word, i+1), T1) && rAt(word, i+2) == '-' && inRunes(rAt(word, i+3), T2):
		w = splice(w, j, 2, "oŋ")
		i++
		j++
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "õʊ̃")
		i++
		j += 2
	case tam-1 > i && rAt(word, i+1) == 'o':
		w = splice(w, j, 2, "oʊ")
		i += 2
		j += 2
	default:
		w = splice(w, j, 1, "o")
	}
	return i, j, w
}

func (t *Transcriber) ruleU(word, w []rune, i, j, tam int, ts1, ts2 int) (int, int, []rune) {
	T := "cgq"
	T1 := "nm"
	switch {
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ũ")
		i++
		j++
	case tam-2 > i && rAt(word, i+1) == '-' && inRunes(rAt(word, i+2), T1) && t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ũ")
		j++
	case tam-1 > i && rAt(word, i+1) == 'a' && inRunes(rAt(word, i-1), T):
		w = splice(w, j, 1, "ʊ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'a' && !inRunes(rAt(word, i-1), T):
		w = splice(w, j+1, 0, "")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'e' && inRunes(rAt(word, i-1), T):
		w = splice(w, j, 1, "ʊ")
		i++
		j++
	case tam-1 > i && rAt(word, i+1) == 'e' && !inRunes(rAt(word, i-1), T):
		w = splice(w, j+1, 0, "")
		i++
		j++
	case t.syllables == "mui-to":
		w = splice(w, j+1, 1, "ɪ")
		i++
		j++
	case tam-2 > i && rAt(word, i+1) == 'i' && rAt(word, i+2) == '-':
		w = splice(w, j+1, 1, "ɪ")
		i++
		j++
	case tam-2 == i && rAt(word, i+1) == 'i':
		w = splice(w, j+1, 1, "ɪ")
		i++
		j++
	case tam-1 > i && rAt(word, i-1) == 'q' && rAt(word, i+1) == 'o':
		w = splice(w, j, 1, "ʊ")
		i++
		j++
	case tam-2 > i && rAt(word, i+1) == 'l' && rAt(word, i+2) == '-':
		w = splice(w, j+1, 1, "ʊ")
		i++
		j++
	case tam-2 == i && rAt(word, i+1) == 'l':
		w = splice(w, j+1, 1, "ʊ")
		i++
		j++
	case tam-1 > i && tam-2 == i && rAt(word, i+1) == 's' && !t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ʊ")
		i += 2
		j += 2
	case t.isLastSyllable(i) && !t.isTonicSyllable(ts1, ts2, i):
		w = splice(w, j, 1, "ʊ")
	case tam-1 > i && inRunes(rAt(word, i-1), "kg") && inSet(vowelSet, rAt(word, i+1)):
		w = splice(w, j, 1, "ʊ")
	case tam-1 > i && inSet(vowelSet, rAt(word, i-1)) && rAt(word, i+1) == '-' && inSet(vowelSet, rAt(word, i+2)):
		w = splice(w, j, 1, "ʊ")
	case tam-1 > i && rAt(word, i-1) == '-' && inSet(vowelSet, rAt(word, i-2)) && rAt(word, i+1) == '-' && inSet(vowelSet, rAt(word, i+2)):
		w = splice(w, j, 1, "ʊ")
	}
	return i, j, w
}

func (t *Transcriber) ruleUacute(word, w []rune, i, j, tam int) (int, int, []rune) {
	T1 := "nm"
	T2 := "cgr"
	switch {
	case tam-3 > i && inRunes(rAt(word, i+1), T1) && rAt(word, i+2) == '-' && inRunes(rAt(word, i+3), T2):
		w = splice(w, j, 2, "ũ")
		i++
		j++
	case tam-1 > i && inRunes(rAt(word, i+1), T1):
		w = splice(w, j, 2, "ũʊ̃")
		i++
		j += 2
	default:
		w = splice(w, j, 1, "u")
	}
	return i, j, w
}

func (t *Transcriber) ruleAtil(word, w []rune, i, j, tam int) (int, int, []rune) {
	switch {
	case tam-1 > i && rAt(word, i+1) == 'e':
		w = splice(w, j, 2, "ɐ͂ɪ̃")
		i++
		j += 3
	case tam-1 > i && rAt(word, i+1) == 'o':
		w = splice(w, j, 2, "ɐ͂ʊ̃")
		i++
		j += 3
	case tam-1 == i:
		w = []rune(rSlice(w, 0, j) + "ɐ͂")
	default:
		w = splice(w, j, 1, "ɐ͂")
		j++
	}
	return i, j, w
}

func (t *Transcriber) ruleOtil(word, w []rune, i, j, tam int) (int, int, []rune) {
	if tam-1 > i && rAt(word, i+1) == 'e' {
		w = splice(w, j, 2, "õɪ̃")
		i += 2
		j += 2
	}
	return i, j, w
}
