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

// ceciAlphabet is the column/row order of the CECI action table. It has no
// "ñ" entry and no separate "à" column: a leading crasis "à" is folded to
// "a" before any lookup (see CECI.Separate), matching the original table
// exactly (see DESIGN.md for how this was recovered).
const ceciAlphabet = " aáãâbcçdeéêfghiíjklmnoóôõpqrstuúüvwxyz"

// ceciTable holds, for each (look-behind, look-ahead) letter pair, the
// action code driving the boundary-retraction scanner in Separate. A blank
// cell means action 0 (no boundary). Rows and columns both follow
// ceciAlphabet.
var ceciTable = [...]string{
	"11113311011111111111101101111101 1 101",
	"    11110  11 0 111110   111111  1 101",
	"        0            0      0       0 ",
	"    11110     11111110   11111 1 1 101",
	"000022 200022 002 0220000220220002  0 ",
	"0000 22 000  000  0240000  002000   0 ",
	"0000    000   0      0000     000   0 ",
	"0000222200022200222220000220220002  00",
	"1  1111111 11 0111111111 111110101 101",
	"0   1111   11 0 1 1110   111110  1 101",
	"0   1111   11   1 1110   111110  1 101",
	"0000    000   00  0 20000  0 2000   0 ",
	"0000    000  000  0240000  0  000   0 ",
	"0000    000   00     0000     000   0 ",
	"1111111111111 111 11111111111111 1 101",
	"1   11111  11 1 111111   11111   1 101",
	"0000    000   00     0000     000   0 ",
	"0000    000   00  0 40000  0  000   0 ",
	"0000222200022000220220000222220002 202",
	"00002   000   00   2400002    000   0 ",
	"0000 22200022000222220000 22220002 202",
	"0111311101111 011111111111111101 11101",
	"0   1111   11 0 111111   11111   1 101",
	"0   1111   11   1 111    11111   1 101",
	"        0                           0 ",
	"0000 22 000  000  0 40000  044000   0 ",
	"0000    000   00  0  0000  0  000   0 ",
	"0000222200022000222220000222220002 202",
	"00002222000220002222200002222200022202",
	"0000    000  000  0020000  020000   0 ",
	"0111111101111 011111101101111111 1 101",
	"1   11111  11 1 111111   11101   1 101",
	"        000   00     0000           0 ",
	"0000    000  000  0  0000  0  000   0 ",
	"0000    000  000  0  0000  0  000   0 ",
	"0000222200022 002222200002222200022202",
	"00001111000110001111100001111100011111",
	"00002222000220002222200002222200022222",
}

// CECI splits a word into syllables using the table-driven finite-state
// scanner described by Cunha & Bokan, ported from ceci.py.
type CECI struct {
	word string
}

// NewCECI builds a separator for word, folded to lower case.
func NewCECI(word string) *CECI {
	return &CECI{word: strings.ToLower(word)}
}

func ceciLookup(la, le rune) string {
	row, col := -1, -1
	for i, r := range []rune(ceciAlphabet) {
		if r == la {
			row = i
		}
		if r == le {
			col = i
		}
	}
	if row <= 0 || col <= 0 {
		return " "
	}
	// ceciTable rows have their column-0 cell (always a dead copy of the
	// row's own letter label, since le==' ' never reaches this lookup)
	// stripped off, so column i of ceciAlphabet lives at index i-1.
	line := ceciTable[row-1]
	idx := col - 1
	if idx >= len(line) {
		return " "
	}
	return string(line[idx])
}

func ceciAction(la, le rune) (int, error) {
	if !isLetter(la) {
		return 2, nil
	}
	if !isLetter(le) {
		return 3, nil
	}
	cell := ceciLookup(la, le)
	if cell == " " || cell == "" {
		return 0, nil
	}
	switch cell {
	case "0", "1", "2", "3", "4":
		return int(cell[0] - '0'), nil
	default:
		return 0, ErrUnknownCECIAction
	}
}

func isLetter(r rune) bool {
	return strings.ContainsRune(ceciAlphabet[1:], r)
}

// Separate splits the word into syllables.
func (c *CECI) Separate() ([]string, error) {
	word := []rune(c.word)
	if len(word) == 0 {
		return nil, nil
	}

	hasCrasis := word[0] == 'à'
	if hasCrasis {
		word[0] = 'a'
	}
	word = append(word, ' ')

	noSyllables := 1
	startSyllable := true
	result := []rune{word[0]}

	isVowel := func(r rune) bool { return strings.ContainsRune("aáãâeéêiíoóôõuúü", r) }
	isConsonant := func(r rune) bool { return !isVowel(r) }

	for le := 1; le < len(word); le++ {
		la := le - 1
		action, err := ceciAction(word[la], word[le])
		if err != nil {
			return nil, err
		}

		switch action {
		case 0:
			result = append(result, word[le])
			startSyllable = false
		case 1:
			result = append(result, ' ', word[le])
			noSyllables++
			startSyllable = true
		case 2:
			if startSyllable && noSyllables > 1 {
				result = dropLastSyllableSeparator(result)
				noSyllables--
			}
			result = append(result, ' ', word[le])
			noSyllables++
			startSyllable = true
		case 3:
			if startSyllable && isConsonant(word[la]) && noSyllables != 1 {
				if len(result) > 2 {
					result = dropLastSyllableSeparator(result)
				}
				noSyllables--
			}
			result = append(result, ' ', word[le])
			noSyllables++
			startSyllable = true
		case 4:
			if startSyllable && noSyllables == 1 {
				result = append(result, word[le])
				startSyllable = false
			} else {
				if startSyllable && noSyllables > 1 {
					result = dropLastSyllableSeparator(result)
					noSyllables--
				}
				result = append(result, ' ', word[le])
				noSyllables++
				startSyllable = true
			}
		default:
			return nil, ErrUnknownCECIAction
		}
	}

	if hasCrasis && len(result) > 0 {
		result[0] = 'à'
	}

	return strings.Fields(string(result)), nil
}

// dropLastSyllableSeparator mirrors the original's `result[:-2] + result[-1]`:
// it removes the second-to-last rune (a space that just opened a syllable
// the scanner is about to retract).
func dropLastSyllableSeparator(result []rune) []rune {
	if len(result) < 2 {
		return result
	}
	return append(result[:len(result)-2], result[len(result)-1])
}
