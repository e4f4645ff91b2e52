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

// Package petrus transcribes Brazilian Portuguese orthographic words into
// their IPA phonetic representation, gluing together a stress detector, a
// syllabifier (Silva2011 or CECI), and a grapheme-to-phoneme transcriber.
package petrus

import (
	"fmt"

	"github.com/alessandrobokan/PETRUS/transcribe"
)

// Algorithm selects which syllabifier backs a transcription.
type Algorithm = transcribe.Algorithm

const (
	// Silva selects the Silva2011 context-sensitive rule cascade (default).
	Silva = transcribe.Silva
	// CECI selects the table-driven finite-state scanner.
	CECI = transcribe.CECI
)

// ParseAlgorithm maps a CLI-style selector ("silva", "ceci", or "" for the
// default) onto an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "silva":
		return Silva, nil
	case "ceci":
		return CECI, nil
	default:
		return Silva, fmt.Errorf("petrus: unknown algorithm %q, want \"silva\" or \"ceci\"", s)
	}
}

// Result is the triple produced by one transcription: the hyphenated
// syllabification, the same spelling with its stressed syllable bracketed,
// and the IPA transcription.
type Result struct {
	Syllables string
	Annotated string
	IPA       string
}

// Pipeline holds the prefix and homograph-heterophone tables loaded once at
// startup. Both tables are read-only after Load, so a Pipeline may be shared
// across goroutines: concurrent calls to Transcribe neither block nor race,
// matching the core's per-call purity.
type Pipeline struct {
	prefixes transcribe.PrefixTable
	hhs      transcribe.HHTable
}

// Load builds a Pipeline from the prefix and homograph-heterophone resource
// files. An empty path falls back to the table embedded in the binary. A
// missing or malformed file is a fatal ResourceLoadError: startup should not
// proceed with a half-loaded Pipeline.
func Load(prefixesPath, hhPath string) (*Pipeline, error) {
	prefixes, err := transcribe.LoadPrefixes(prefixesPath)
	if err != nil {
		return nil, err
	}
	hhs, err := transcribe.LoadHomographsHeterophones(hhPath)
	if err != nil {
		return nil, err
	}
	return &Pipeline{prefixes: prefixes, hhs: hhs}, nil
}

// Transcribe runs word through the stress detector, the chosen syllabifier,
// and the transcriber, returning the syllabified/annotated/IPA triple.
func (p *Pipeline) Transcribe(word string, algo Algorithm) Result {
	tr := transcribe.New(word, algo, p.prefixes, p.hhs)
	return Result{
		Syllables: tr.SyllablesWithHyphen(),
		Annotated: tr.SyllablesWithStressBoundaries(),
		IPA:       tr.Transcribe(),
	}
}
