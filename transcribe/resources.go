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

package transcribe

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed data_prefixes.txt
var defaultPrefixesData []byte

//go:embed data_homographs_heterophones.txt
var defaultHHData []byte

// ResourceLoadError wraps a failure to read or parse a resource file.
type ResourceLoadError struct {
	Path string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("transcribe: loading resource %q: %v", e.Path, e.Err)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }

// Prefix is one entry of the prefix table: a hyphenated orthographic prefix
// and its pre-computed phonetic rendering, e.g. "crip-to" -> "kɾipɪ-to".
type Prefix struct {
	Syllables string
	Phonemes  string
}

// PrefixTable is an ordered list of prefixes, checked in file order against
// the start of a word's syllables by Transcriber.preTranscribe.
type PrefixTable []Prefix

// LoadPrefixes reads a tab-separated "syllables\tphonemes" file, one prefix
// per line, in the format produced by the original PETRUS resources. An
// empty path loads the table embedded in the binary.
func LoadPrefixes(path string) (PrefixTable, error) {
	data, err := readResource(path, defaultPrefixesData)
	if err != nil {
		return nil, &ResourceLoadError{Path: path, Err: err}
	}

	var table PrefixTable
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, &ResourceLoadError{Path: path, Err: fmt.Errorf("malformed prefix line %q", line)}
		}
		table = append(table, Prefix{Syllables: parts[0], Phonemes: parts[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ResourceLoadError{Path: path, Err: err}
	}
	return table, nil
}

// HHTable maps a Homograph Heterophone's plain word to its pipe-separated
// alternative phonetic readings, e.g. "molho" -> "ˈmo.ʎʊ|ˈmɔ.ʎʊ".
type HHTable map[string]string

// LoadHomographsHeterophones reads a "word|pos|phonemes" file, merging
// repeated words into a single pipe-joined alternatives string exactly as
// load_homographs_heterophones did: a later line for a word already seen
// appends its phonemes only if not already present. An empty path loads the
// table embedded in the binary.
func LoadHomographsHeterophones(path string) (HHTable, error) {
	data, err := readResource(path, defaultHHData)
	if err != nil {
		return nil, &ResourceLoadError{Path: path, Err: err}
	}

	dct := HHTable{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		spl := strings.Split(line, "|")
		if len(spl) < 3 {
			return nil, &ResourceLoadError{Path: path, Err: fmt.Errorf("malformed HH line %q", line)}
		}
		word, phones := spl[0], spl[2]
		if existing, ok := dct[word]; ok && !strings.Contains(existing, phones) {
			dct[word] = existing + "|" + phones
		} else if !ok {
			dct[word] = phones
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ResourceLoadError{Path: path, Err: err}
	}
	return dct, nil
}

func readResource(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	return os.ReadFile(path)
}
