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

package syllable

import "strings"

// Silva2011 splits a word into syllables using the context-sensitive rule
// cascade from chapter 4 of:
//
//	Silva, D.C. (2011) Algoritmos de Processamento da Linguagem e Síntese
//	de Voz com Emoções Aplicados a um Conversor Text-Fala Baseado em HMM.
//	PhD dissertation, COPPE, UFRJ.
type Silva2011 struct {
	word   string
	stress int
}

// NewSilva2011 builds a separator for word, folded to lower case. stress is
// the rune offset of the tonic vowel, as returned by stress.Detector.
func NewSilva2011(word string, stress int) *Silva2011 {
	return &Silva2011{word: strings.ToLower(word), stress: stress}
}

// Separate splits the word into syllables. On any out-of-range access in
// the rule cascade it returns ErrSyllabifierFault; callers should fall back
// to treating the word as a single syllable.
func (s *Silva2011) Separate() (syllables []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				syllables, err = nil, e
				return
			}
			panic(r)
		}
	}()

	w := []rune(s.word)
	if len(w) == 1 {
		return []string{string(w)}, nil
	}

	st := cursors{w: w, p: vowelPositions(w), p0: 0, pVt: s.stress, k: 0, c: 0}

	for st.p0 <= len(st.w)-1 {
		st = step(st)
		st.p0++
	}

	out := collapseHyphens(st.w)
	return strings.Split(out, "-"), nil
}

func collapseHyphens(w []rune) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range w {
		if r == '-' {
			if prevHyphen {
				continue
			}
			prevHyphen = true
		} else {
			prevHyphen = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	return strings.TrimSuffix(s, "-")
}

// step evaluates the rule cascade once against the current cursor state and
// returns the state after whichever single rule (if any) fired. It mirrors
// the elif chain in the original silva2011.py line for line; see cases.go
// for what each case does.
func step(st cursors) cursors {
	w := st.w
	p0 := st.p0

	// New rule 1: an orthographic sequence (OS) straddles a consonant
	// cluster; split inside it.
	if OS[pySlice(w, p0, p0+2)] {
		if !C[ch(w, p0+2)] {
			return case9(st)
		}
		return case10(st)
	}

	pk := pIndex(st.p, st.k)

	// New rule 2: vowel/glide + glide + vowel/glide run, handed to case1.
	if pk+2 < len(w) && (V[ch(w, pk)] || G[ch(w, pk)]) && G[ch(w, pk+1)] && (V[ch(w, pk+2)] || G[ch(w, pk+2)]) {
		return case1(st)
	}

	// Rule 1: plain hiatus of two full vowels. The original's extra guard
	// here (pk+3 < len(w) and pk+3 == len(w)) can never be true and is
	// omitted.
	if pk+1 < len(w) && V[ch(w, p0)] && ch(w, pk) != 'ã' && ch(w, pk) != 'õ' && V[ch(w, pk+1)] && !G[ch(w, pk+1)] {
		return case1(st)
	}

	// Rule 2:
	if pk+3 < len(w) && V[ch(w, p0)] && C[ch(w, pk+1)] && C[ch(w, pk+2)] && CO[ch(w, pk+3)] {
		return case1(st)
	}

	// Rule 3:
	if pk+2 < len(w) && V[ch(w, p0)] &&
		(G[ch(w, pk+1)] || CN[ch(w, pk+1)] || ch(w, pk+1) == 's' || ch(w, pk+1) == 'r' || ch(w, pk+1) == 'l' || ch(w, pk+1) == 'x') &&
		C[ch(w, pk+2)] {
		switch {
		case ch(w, pk+1) == 'i' && CN[ch(w, pk+2)]:
			return case1(st)
		case ch(w, pk+2) != 's' && ch(w, pk+2) != 'h' && ch(w, pk+1) != ch(w, pk+2):
			return case2(st)
		case pk+3 < len(w) && CN[ch(w, pk+1)] && ch(w, pk+2) == 's' && !V[ch(w, pk+3)]:
			return case7(st)
		case ch(w, pk+1) == ch(w, pk+2) || ch(w, pk+2) == 'h':
			return case1(st)
		case pk+3 < len(w) && ch(w, pk+2) == 's' && ((C[ch(w, pk+3)] && ch(w, pk+3) != 's') || (!C[ch(w, pk+3)] && !V[ch(w, pk+3)])):
			return case7(st)
		default:
			return case2(st)
		}
	}

	// Rule 4:
	if pk+3 < len(w) && V[ch(w, p0)] &&
		(CO[ch(w, pk+1)] || CF[ch(w, pk+1)] || ch(w, pk+1) == 'g' || ch(w, pk+1) == 'p') &&
		(CO[ch(w, pk+2)] || CF[ch(w, pk+2)] || CN[ch(w, pk+2)] || ch(w, pk+2) == 'ç') &&
		(V[ch(w, pk+3)] || G[ch(w, pk+3)]) {
		return case1(st)
	}

	// Rule 5:
	if pk+2 < len(w) && V[ch(w, p0)] && C[ch(w, pk+1)] &&
		(V[ch(w, pk+2)] || G[ch(w, pk+2)] || CL[ch(w, pk+2)] || ch(w, pk+2) == 'h') {
		return case1(st)
	}

	// Rule 6:
	if pk+3 < len(w) && V[ch(w, p0)] && G[ch(w, pk+1)] && ch(w, pk+2) == 's' && CO[ch(w, pk+3)] {
		return case5(st)
	}

	// Rule 7:
	if pk+2 < len(w) && !V[ch(w, p0)] &&
		(C[ch(w, pk-1)] || ch(w, pk-1) == 'u' || ch(w, pk-1) == 'ü' || ch(w, pk-1) == 'q') &&
		C[ch(w, pk+1)] && V[ch(w, pk+2)] {
		return case3(st)
	}

	// Rule 8:
	if pk+3 < len(w) && !V[ch(w, p0)] && C[ch(w, pk-1)] && G[ch(w, pk+1)] && ch(w, pk+2) == 'r' && C[ch(w, pk+3)] {
		return case3(st)
	}

	// Rule 9:
	if pk+3 < len(w) && !V[ch(w, p0)] && C[ch(w, pk-1)] && (G[ch(w, pk+1)] || CN[ch(w, pk+1)]) && ch(w, pk+2) == 's' && CO[ch(w, pk+3)] {
		return case7(st)
	}

	// Rule 10:
	if pk+3 < len(w) && !V[ch(w, p0)] && (C[ch(w, pk-1)] || G[ch(w, pk-1)]) &&
		isAny(ch(w, pk+1), 'i', 'u', 'e', 'o') && pk+1 != st.pVt && ch(w, pk) != ch(w, pk+1) &&
		C[ch(w, pk+2)] && (C[ch(w, pk+3)] || V[ch(w, pk+3)]) && ch(w, pk+2) != 's' {
		switch {
		case pk == st.pVt && ch(w, pk+2) != 'n' && !C[ch(w, pk+3)]:
			return case4(st)
		case ch(w, pk-1) != 'q' && ch(w, pk-1) != 'g' && ch(w, pk) == 'u' && ch(w, pk+1) == 'i' && ch(w, pk+2) != 'n':
			return case1(st)
		case pk != st.pVt && ch(w, pk+1) == 'i' && ch(w, pk+2) != 'n':
			return case2(st)
		case (ch(w, pk+1) != 'i' && (CN[ch(w, pk+2)] || ch(w, pk+2) == 'r') && ch(w, pk+3) != 'h' && ch(w, pk+3) != ch(w, st.pVt)) ||
			(isAny(ch(w, pk), 'a', 'e', 'o') && isAny(ch(w, pk+1), 'a', 'e', 'o') && CN[ch(w, pk+2)] && ch(w, pk+3) != 'h' && ch(w, pk+3) != 's' && (V[ch(w, pk+4)] || C[ch(w, pk+4)])):
			switch {
			case pySlice(w, pk-1, pk+1) == "gu" && V[ch(w, pk+1)] && CN[ch(w, pk+2)]:
				return case5(st)
			case pySlice(w, pk-1, pk+1) == "gu" && V[ch(w, pk+1)] && CL[ch(w, pk+2)]:
				return case2(st)
			default:
				return case1(st)
			}
		case G[ch(w, pk)] && isAny(ch(w, pk+1), 'a', 'e', 'o') && CN[ch(w, pk+2)]:
			return case1(st)
		case CN[ch(w, pk+2)]:
			return case5(st)
		default:
			return case4(st)
		}
	}

	// Rule 11:
	if pk+2 < len(w) && !V[ch(w, p0)] && C[ch(w, pk-1)] && G[ch(w, pk+1)] && V[ch(w, pk+2)] {
		return case4(st)
	}

	// Rule 12:
	if pk+3 < len(w) && !V[ch(w, p0)] && C[ch(w, pk-1)] && ch(w, pk-1) != 'q' && ch(w, pk-1) != 'g' &&
		G[ch(w, pk)] && (V[ch(w, pk+1)] || ch(w, pk+1) == 'i') && ch(w, pk) != ch(w, pk+1) &&
		C[ch(w, pk+2)] && V[ch(w, pk+3)] {
		switch {
		case (ch(w, pk-1) == 'q' || ch(w, pk-1) == 'g') &&
			((ch(w, pk+2) == 'ç' && (ch(w, pk+3) == 'ã' || ch(w, pk+3) == 'õ')) || (ch(w, pk-1) == 'q' && V[ch(w, pk+1)])):
			return case2(st)
		case pk+1 == st.pVt || (ch(w, pk-1) == 'r' && pk+3 == st.pVt):
			return case1(st)
		default:
			return case8(st)
		}
	}

	// Rule 13:
	if pk+3 < len(w) && !V[ch(w, p0)] &&
		(C[ch(w, pk-1)] || isAnyStr(pySlice(w, pk-1, pk+1), "qu", "qü", "gu", "gü")) &&
		(V[ch(w, pk+1)] || CL[ch(w, pk+1)] || CN[ch(w, pk+1)] || ch(w, pk+1) == 'c' || ch(w, pk+1) == 'x') &&
		isAny(ch(w, pk+2), 'h', 'l', 'r') &&
		(V[ch(w, pk+3)] || isAny(ch(w, pk+3), 'h', 'l', 'r')) {
		if ch(w, pk+1) == ch(w, pk+2) || ch(w, pk+1) == 'c' || ch(w, pk+1) == 'l' || pySlice(w, pk+1, pk+3) == "nh" {
			return case1(st)
		}
		return case4(st)
	}

	// Rule 14:
	if pk+2 < len(w) && !V[ch(w, p0)] && C[ch(w, pk-1)] && (CL[ch(w, pk+1)] || CN[ch(w, pk+1)] || ch(w, pk+1) == 'i') && ch(w, pk+2) == 's' {
		switch {
		case pk+3 == len(w):
			st.p0 = case6(st.w, st.p0)
			return st
		case pk == st.pVt || (pk+3 < len(w) && V[ch(w, pk+3)]):
			return case4(st)
		default:
			return case5(st)
		}
	}

	// Rule 15:
	if pk+2 < len(w) && !V[ch(w, p0)] && V[ch(w, pk+1)] && (V[ch(w, pk+2)] || G[ch(w, pk+2)]) && pySlice(w, pk-1, pk+1) != "qu" && pySlice(w, pk-1, pk+1) != "gu" {
		if pk+3 < len(w) && pk == st.pVt && G[ch(w, pk+1)] && C[ch(w, pk+3)] {
			return case2(st)
		}
		return case1(st)
	}

	// Rule 16:
	if pk+2 < len(w) && !V[ch(w, p0)] && ch(w, pk) != 'u' && C[ch(w, pk-1)] && V[ch(w, pk+1)] && CN[ch(w, pk+2)] {
		return case3(st)
	}

	// Rule 17:
	if pk+1 < len(w) && pk-2 >= 0 && !V[ch(w, p0)] && ch(w, pk) == 'i' &&
		(isAny(ch(w, pk-2), 'á', 'é', 'í', 'ó', 'ú') || isAny(ch(w, pk-3), 'á', 'é', 'í', 'ó', 'ú')) &&
		C[ch(w, pk-1)] && isAny(ch(w, pk+1), 'a', 'o') {
		return case1(st)
	}

	// Rule 18:
	if pk+1 < len(w) && !V[ch(w, p0)] && isAny(ch(w, pk), 'ã', 'õ') && C[ch(w, pk-1)] && isAny(ch(w, pk+1), 'e', 'o') {
		st.p0 = case6(st.w, st.p0)
		return st
	}

	// Rule 20 (applied before 19, as in the original, which swaps their order):
	if pk+3 < len(w) && !V[ch(w, p0)] && C[ch(w, pk-1)] && V[ch(w, pk+1)] && CN[ch(w, pk+2)] && C[ch(w, pk+3)] {
		return case7(st)
	}

	// Rule 19:
	if pk+1 < len(w) && !V[ch(w, p0)] && C[ch(w, pk-1)] && pk+1 == st.pVt && ch(w, pk+1) != 'i' && ch(w, pk+1) != 'u' &&
		pySlice(w, pk-1, pk+1) != "gu" && pySlice(w, pk-1, pk+1) != "qu" {
		switch {
		case pk+3 == len(w) && isAnyStr(pySlice(w, pk-1, pk+1), "gu", "qu") && V[ch(w, pk+1)] && C[ch(w, pk+2)]:
			st.p0 = case6(st.w, st.p0)
			return st
		case pk+2 < len(w) && isAnyStr(pySlice(w, pk-1, pk+1), "gu", "qu") && V[ch(w, pk+1)] && (C[ch(w, pk+2)] || G[ch(w, pk+2)]):
			return case5(st)
		default:
			return case3(st)
		}
	}

	// Rule 21:
	if pk+3 < len(w) && !V[ch(w, p0)] && (CO[ch(w, pk+1)] || ch(w, pk+1) == 'f' || ch(w, pk+1) == 'v' || ch(w, pk+1) == 'g') &&
		(CL[ch(w, pk+2)] || CO[ch(w, pk+2)]) && (V[ch(w, pk+3)] || G[ch(w, pk+3)]) {
		if isAny(ch(w, pk+1), 'f', 'p') && isAny(ch(w, pk+2), 't', 'ç') {
			return case2(st)
		}
		return case1(st)
	}

	// Rule 22:
	if pk+1 < len(w) && pk-2 >= 0 && !V[ch(w, p0)] &&
		(C[ch(w, pk-1)] || isAnyStr(pySlice(w, pk-1, pk+1), "qu", "gu")) &&
		V[ch(w, pk+1)] && (pk+2 == len(w) || C[ch(w, pk+2)]) {
		switch {
		case (isAny(ch(w, pk), 'i', 'u', 'í', 'ú', 'é', 'ê') && pk == st.pVt && ch(w, pk+1) != 'u') ||
			(pk+3 < len(w) && !G[ch(w, pk)] && ch(w, pk+2) == 's' && !C[ch(w, pk+3)] && !V[ch(w, pk+3)]):
			return case3(st)
		case pk+2 == len(w) && ch(w, pk) == 'i' && pk == st.pVt && ch(w, pk+1) == 'u':
			return case4(st)
		case pk+3 < len(w) && ((G[ch(w, pk)] && pk+1 != st.pVt && !C[ch(w, pk+2)] && !V[ch(w, pk+2)]) ||
			(ch(w, pk+2) == 's' && !C[ch(w, pk+3)] && !V[ch(w, pk+3)]) ||
			(pk != st.pVt && pk+1 != st.pVt && ch(w, pk+2) == 's' && pk+3 == len(w))):
			return case2(st)
		case pk+3 < len(w) && isAnyStr(pySlice(w, pk-1, pk+1), "qu", "gu") && C[ch(w, pk+2)] && (V[ch(w, pk+3)] || G[ch(w, pk+3)]):
			return case2(st)
		case pk+2 == len(w) && isAnyStr(pySlice(w, pk-1, pk+1), "qu", "gu") && (V[ch(w, pk+1)] || G[ch(w, pk+1)]):
			st.p0 = case6(st.w, st.p0)
			return st
		case pk+3 == len(w) && isAny(ch(w, pk+1), 'o', 'u') && pk+1 != st.pVt && ch(w, pk+2) == 's':
			return case7(st)
		case ch(w, pk) == 'u' && isAny(ch(w, pk+1), 'e', 'ê', 'é') && isAny(ch(w, pk+2), 'n', 's', 'i', 'l'):
			return case5(st)
		default:
			return case2(st)
		}
	}

	// Rule 23:
	if pk+2 < len(w) && !V[ch(w, p0)] && (C[ch(w, pk-1)] || pySlice(w, pk-2, pk-1) == "qu") && C[ch(w, pk+1)] && C[ch(w, pk+2)] {
		switch {
		case ch(w, pk+1) == ch(w, pk+2):
			return case1(st)
		case ch(w, pk+1) == 's' && ch(w, pk+2) != 's':
			return case2(st)
		case pk+3 < len(w) && ch(w, pk+2) == 's' && CO[ch(w, pk+3)]:
			return case5(st)
		default:
			return case2(st)
		}
	}

	// Rule 24:
	if pk+2 < len(w) && !V[ch(w, p0)] && C[ch(w, pk+1)] && G[ch(w, pk+2)] {
		return case1(st)
	}

	// Rule 25: already applied (no-op in the original).

	// Rule 26:
	if pk+2 < len(w) && !V[ch(w, p0)] && (C[ch(w, pk-1)] || isAnyStr(pySlice(w, pk-1, pk+1), "qu", "qü", "gu", "gü")) &&
		G[ch(w, pk+1)] && CN[ch(w, pk+2)] {
		if C[ch(w, pk+3)] {
			return case5(st)
		}
		return case4(st)
	}

	// Rule 27:
	if pk+2 < len(w) && !V[ch(w, p0)] && C[ch(w, pk-1)] && C[ch(w, pk-2)] && G[ch(w, pk+1)] && C[ch(w, pk+2)] {
		return case1(st)
	}

	// Rule 28:
	if pk+2 < len(w) && !V[ch(w, p0)] && isAnyStr(pySlice(w, pk-1, pk+1), "qu", "qü", "gu", "gü") && V[ch(w, pk+1)] {
		switch {
		case pk+3 < len(w) && C[ch(w, pk+2)] && C[ch(w, pk+3)]:
			return case5(st)
		case pk+3 < len(w) && C[ch(w, pk+2)] && (V[ch(w, pk+3)] || G[ch(w, pk+3)]):
			return case4(st)
		case pk+2 < len(w) && V[ch(w, pk+2)]:
			return case4(st)
		case pk+2 < len(w) && G[ch(w, pk+2)]:
			return case5(st)
		}
	}

	return st
}

func isAny(r rune, opts ...rune) bool {
	for _, o := range opts {
		if r == o {
			return true
		}
	}
	return false
}

func isAnyStr(s string, opts ...string) bool {
	for _, o := range opts {
		if s == o {
			return true
		}
	}
	return false
}
