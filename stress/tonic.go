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

// Package stress locates the tonic vowel of a Brazilian Portuguese word,
// following the algorithm described in chapter 3 of:
//
//	Silva, D.C. (2011) Algoritmos de Processamento da Linguagem e Síntese
//	de Voz com Emoções Aplicados a um Conversor Text-Fala Baseado em HMM.
//	PhD dissertation, COPPE, UFRJ.
package stress

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const vowels = "aeiou"

var (
	reAccented   = regexp.MustCompile(`á|é|í|ó|ú|â|ê|ô|à|ã|õ`)
	reEndRLZXN   = regexp.MustCompile(`[rlzxn]$`)
	reEndIOUM    = regexp.MustCompile(`[iou]m$`)
	reEndIOUNS   = regexp.MustCompile(`[iou]ns$`)
	reEndQGUI    = regexp.MustCompile(`[qg][uü]i$`)
	reEndQGUIS   = regexp.MustCompile(`[qg][uü]is$`)
	reEndVIU     = regexp.MustCompile(`[aeiou][iu]$`)
	reEndNVIU    = regexp.MustCompile(`[^aeiou][iu]$`)
	reEndVIUS    = regexp.MustCompile(`[aeiou][iu]s$`)
	reEndNVIUS   = regexp.MustCompile(`[^aeiou][iu]s$`)
	reEndVQGUE   = regexp.MustCompile(`[aeiou][qg]ue$`)
	reEndNVQGUE  = regexp.MustCompile(`[^aeiou][qg]ue$`)
	reEndVQGUES  = regexp.MustCompile(`[aeiou][qg]ues$`)
	reEndNVQGUES = regexp.MustCompile(`[^aeiou][qg]ues$`)
	reEndVIUV    = regexp.MustCompile(`[aeiou][iu][aeiou]$`)
	reEndRule14  = regexp.MustCompile(`[^qg][aeiou][iu][^aeiou][aeiou]$`)
	reEndRule15  = regexp.MustCompile(`[^qg][aeiou][iu][^aeiou][aeiou]s$`)
	reEndRule16  = regexp.MustCompile(`[aeiou][iu]n[bdfghjklmnñpqrstvxyz][aeo]$`)
	reVowel      = regexp.MustCompile(`a|e|i|o|u`)
)

// Detector finds the tonic vowel, syllable and phonetic-syllable positions
// of a single lowercase word. It holds no state beyond the word itself and
// is safe to share across goroutines.
type Detector struct {
	word string
}

// New returns a Detector for word, folding it to lower case first.
func New(word string) *Detector {
	return &Detector{word: strings.ToLower(word)}
}

func runeIndex(s string, byteIdx int) int {
	return utf8.RuneCountInString(s[:byteIdx])
}

func (d *Detector) runeLen() int {
	return utf8.RuneCountInString(d.word)
}

// StressVowel returns the rune offset of the tonic vowel in the word, or -1
// when no rule places the stress (for example an unaccented word with fewer
// than two of a, e, i, o, u that matches none of the ending patterns).
func (d *Detector) StressVowel() int {
	w := d.word

	// Rule 1: an explicitly accented vowel is always tonic.
	if loc := reAccented.FindStringIndex(w); loc != nil {
		return runeIndex(w, loc[0])
	}

	switch {
	case reEndRLZXN.MatchString(w):
		return d.runeLen() - 2
	case reEndIOUM.MatchString(w):
		return d.runeLen() - 2
	case reEndIOUNS.MatchString(w):
		return d.runeLen() - 3
	case reEndQGUI.MatchString(w):
		return d.runeLen() - 1
	case reEndQGUIS.MatchString(w):
		return d.runeLen() - 2
	case reEndVIU.MatchString(w):
		return d.runeLen() - 2
	case reEndNVIU.MatchString(w):
		return d.runeLen() - 1
	case reEndVIUS.MatchString(w):
		return d.runeLen() - 3
	case reEndNVIUS.MatchString(w):
		return d.runeLen() - 2
	case w == "porque":
		return d.runeLen() - 1
	case reEndVQGUE.MatchString(w):
		return d.runeLen() - 4
	case reEndNVQGUE.MatchString(w):
		return d.runeLen() - 5
	case reEndVQGUES.MatchString(w):
		return d.runeLen() - 5
	case reEndNVQGUES.MatchString(w):
		return d.runeLen() - 6
	case reEndVIUV.MatchString(w):
		return d.runeLen() - 3
	case reEndRule14.MatchString(w):
		return d.runeLen() - 4
	case reEndRule15.MatchString(w):
		return d.runeLen() - 5
	case reEndRule16.MatchString(w):
		return d.runeLen() - 4
	}

	// Rule 17: a semivowel (i/u) preceded by a vowel and followed by a
	// consonant, two vowels before the end, overrides the default
	// penultimate-vowel rule below.
	if matches := reVowel.FindAllStringIndex(w, -1); len(matches) >= 2 {
		runes := []rune(w)
		n := len(runes)
		k := runeIndex(w, matches[len(matches)-2][0])
		// word[k-1] mirrors Python's negative-index wraparound when k==0,
		// preserved here for fidelity with the original algorithm.
		prev := runes[(k-1+n)%n]
		if strings.ContainsRune("iu", runes[k]) && strings.ContainsRune(vowels, prev) && !strings.ContainsRune(vowels, runes[k+1]) {
			if k-2 < 0 {
				return 0
			}
			if !strings.ContainsRune("qg", runes[k-2]) {
				return k - 1
			}
		}
	}

	// Rule 18:
	if w == "quem" {
		return d.runeLen() - 2
	}

	// Rule 19: default to the penultimate vowel in the word.
	if matches := reVowel.FindAllStringIndex(w, -1); len(matches) >= 2 {
		return runeIndex(w, matches[len(matches)-2][0])
	}

	return -1
}

// StressVowelWithHyphen maps the plain StressVowel offset into the
// hyphenated syllable string (e.g. "cho-co-la-te").
func (d *Detector) StressVowelWithHyphen(syllables string) int {
	w := []rune(d.word)
	syl := []rune(syllables)
	stress := d.StressVowel()

	a, b := 0, 0
	for a < len(syl) {
		if b >= len(w) {
			return -1
		}
		if syl[a] != w[b] {
			a++
		}
		if stress == b {
			return a
		}
		a, b = a+1, b+1
	}

	return -1
}

// Syllable returns the [start, end) rune interval of the tonic syllable
// within a plain (non-hyphenated) syllable slice.
func (d *Detector) Syllable(syllables []string) (int, int) {
	a, b := 0, 0
	stress := d.StressVowel()
	for _, it := range syllables {
		n := utf8.RuneCountInString(it)
		b += n
		if stress >= a && stress < b {
			return a, b
		}
		a += n
	}
	if len(syllables) > 0 {
		return 0, utf8.RuneCountInString(syllables[0])
	}
	return 0, 0
}

func hyphenPositions(rs []rune) []int {
	positions := []int{-1}
	for i, r := range rs {
		if r == '-' {
			positions = append(positions, i)
		}
	}
	positions = append(positions, len(rs))
	sort.Ints(positions)
	return positions
}

// SyllableWithHyphen returns the [start, end) rune interval of the tonic
// syllable within a hyphenated syllable string (e.g. "ca-cho-rro").
func (d *Detector) SyllableWithHyphen(syllables string) (int, int) {
	syl := []rune(syllables)
	var mtch []int
	for i, r := range syl {
		if r == '-' {
			mtch = append(mtch, i)
		}
	}
	stress := d.StressVowelWithHyphen(syllables)

	tmp1, tmp2 := 0, len(syl)
	for i := 0; i < len(mtch); i++ {
		if mtch[i] < stress {
			tmp1 = mtch[i]
		} else {
			tmp2 = mtch[i]
			break
		}
	}
	if tmp1 != 0 {
		tmp1++
	}
	return tmp1, tmp2
}

// PhoneticSyllable projects the tonic syllable interval computed over the
// orthographic syllables onto the parallel phonetic (IPA) syllable string.
// When the two strings don't hyphenate into the same number of syllables,
// it falls back to (0, len(phonemes)) rather than guessing.
func (d *Detector) PhoneticSyllable(syllables, phonemes string) (int, int) {
	sylRunes := []rune(syllables)
	phoRunes := []rune(phonemes)
	syl := hyphenPositions(sylRunes)
	pho := hyphenPositions(phoRunes)
	a, b := d.SyllableWithHyphen(syllables)

	if len(syl) == len(pho) {
		i, j, k := 0, 0, 0
		for k < len(syl)-1 {
			if syl[k] <= a && syl[k+1] >= b {
				i, j = k, k+1
				break
			}
			k++
		}
		return pho[i] + 1, pho[j]
	}

	return 0, len(phoRunes)
}
