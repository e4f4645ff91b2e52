package transcribe

import "testing"

func TestPrefixTrieFirstFileOrderWins(t *testing.T) {
	table := PrefixTable{
		{Syllables: "e-co-lo-gic", Phonemes: "e-ko-lo-gic"},
		{Syllables: "e-co", Phonemes: "ɛ-ko"},
	}
	trie := newPrefixTrie(table)

	got, ok := trie.match("e-co-lo-gic-a")
	if !ok {
		t.Fatalf("match returned no hit")
	}
	if got.Syllables != "e-co-lo-gic" {
		t.Errorf("match = %+v, want the earlier table entry e-co-lo-gic to win over the shorter e-co", got)
	}
}

func TestPrefixTrieNoMatch(t *testing.T) {
	table := PrefixTable{{Syllables: "crip-to", Phonemes: "kɾipɪ-to"}}
	trie := newPrefixTrie(table)

	if _, ok := trie.match("mo-lho"); ok {
		t.Errorf("match should fail when no table entry prefixes the input")
	}
}

func TestPrefixTrieMatchesRealTable(t *testing.T) {
	table, err := LoadPrefixes("")
	if err != nil {
		t.Fatalf("LoadPrefixes: %v", err)
	}
	trie := newPrefixTrie(table)

	got, ok := trie.match("te-le-fo-ne")
	if !ok || got.Syllables != "te-le-fo-ne" {
		t.Errorf("match(%q) = %+v, %v, want te-le-fo-ne entry", "te-le-fo-ne", got, ok)
	}
}
