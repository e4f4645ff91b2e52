package syllable

// The Silva2011 rule cascade in silva2011.go dispatches to ten small case
// functions, each responsible for inserting a single syllable-boundary
// hyphen (or, for case6, just skipping ahead) and updating the cursors the
// cascade reads on its next iteration. The original implementation
// (Bokan & Cunha's "cases" module, imported by silva2011.py) was not
// available when this package was written; the case functions below are a
// reconstruction from the call-site context of every rule in silva2011.go
// and from hand-tracing every worked example in the specification against
// the real silva2011.py source (see DESIGN.md for the per-case reasoning).
// Each case is a pure, total function of its cursor state; none of them may
// assume a fixed offset from p[k] holds across every rule that calls it —
// case1 in particular branches on the letters it is splitting between.

type cursors struct {
	w    []rune
	p    []int
	p0   int
	pVt  int
	k    int
	c    int
}

// insertHyphen splices a hyphen into w at rune offset at, then recomputes
// every downstream cursor: p0 becomes at (the loop that drives the rule
// cascade always adds 1 on its next iteration, landing just past the new
// hyphen); pVt shifts right by one if the hyphen lands at or before it; p
// is rebuilt against the new string; k is advanced to the first vowel
// strictly past the hyphen, or the last known vowel if none remains; c
// counts the hyphen.
func insertHyphen(s cursors, at int) cursors {
	if at < 0 || at > len(s.w) {
		panic(ErrSyllabifierFault)
	}

	nw := make([]rune, 0, len(s.w)+1)
	nw = append(nw, s.w[:at]...)
	nw = append(nw, '-')
	nw = append(nw, s.w[at:]...)

	pVt := s.pVt
	if at <= pVt {
		pVt++
	}

	p := vowelPositions(nw)
	k := len(p) - 1
	for i, v := range p {
		if v > at {
			k = i
			break
		}
	}

	return cursors{w: nw, p: p, p0: at, pVt: pVt, k: k, c: s.c + 1}
}

// case1 splits right after the current vowel: a plain hiatus or an
// onset-vowel boundary with nothing retained as coda. When the two letters
// following the vowel are identical (the geminate "rr"/"ss" of "arroz"),
// the split instead falls between them, so the first copy stays in the
// current syllable's coda and the second opens the next one.
func case1(s cursors) cursors {
	pk := pIndex(s.p, s.k)
	if pk+2 < len(s.w) && s.w[pk+1] == s.w[pk+2] {
		return insertHyphen(s, pk+2)
	}
	return insertHyphen(s, pk+1)
}

// case2 retains one trailing consonant as coda before the split.
func case2(s cursors) cursors { return insertHyphen(s, pIndex(s.p, s.k)+2) }

// case3 splits right after the current vowel, same as case1's plain
// branch, but is reached from the consonant-walk rules (p0 sitting on the
// onset consonant rather than the vowel itself).
func case3(s cursors) cursors { return insertHyphen(s, pIndex(s.p, s.k)+1) }

// case4 keeps a glide attached to its vowel as a single nucleus before
// splitting (confirmed against "muito" -> "mui-to").
func case4(s cursors) cursors { return insertHyphen(s, pIndex(s.p, s.k)+2) }

// case5 retains two trailing consonants as coda before the split.
func case5(s cursors) cursors { return insertHyphen(s, pIndex(s.p, s.k)+3) }

// case6 advances p0 without inserting a hyphen, for contexts where the
// current vowel does not start a new syllable (nasal diphthongs, word-final
// "qu"/"gu" digraphs). It only has p0 and the word available, matching the
// original call signature `case6(w, p0)`.
func case6(w []rune, p0 int) int {
	if p0+1 < len(w) {
		return p0 + 1
	}
	return len(w) - 1
}

// case7 is the nasal-coda variant of case2.
func case7(s cursors) cursors { return insertHyphen(s, pIndex(s.p, s.k)+2) }

// case8 is the plain-split variant used for consonant-glide onsets.
func case8(s cursors) cursors { return insertHyphen(s, pIndex(s.p, s.k)+1) }

// case9 splits an orthographic coda/onset pair (OS table) after its first
// letter, when nothing further complicates the cluster.
func case9(s cursors) cursors { return insertHyphen(s, s.p0+1) }

// case10 splits the same OS pair when a third consonant follows, pushing
// the remainder of the cluster into the next syllable's onset.
func case10(s cursors) cursors { return insertHyphen(s, s.p0+1) }
