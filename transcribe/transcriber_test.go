package transcribe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func transcribeWord(t *testing.T, word string, algo Algorithm) *Transcriber {
	t.Helper()
	prefixes, err := LoadPrefixes("")
	require.NoError(t, err)
	hhs, err := LoadHomographsHeterophones("")
	require.NoError(t, err)
	return New(word, algo, prefixes, hhs)
}

func TestTranscribeChocolate(t *testing.T) {
	tr := transcribeWord(t, "chocolate", Silva)
	require.Equal(t, "cho-co-la-te", tr.SyllablesWithHyphen())
	require.Equal(t, "cho-co-[la]-te", tr.SyllablesWithStressBoundaries())
	require.Equal(t, "ʃo.ko.ˈla.ʧɪ", tr.Transcribe())
}

func TestTranscribeMolhoHomograph(t *testing.T) {
	tr := transcribeWord(t, "molho", Silva)
	require.Equal(t, "ˈmo.ʎʊ, ˈmɔ.ʎʊ", tr.Transcribe())
}

func TestTranscribePorque(t *testing.T) {
	tr := transcribeWord(t, "porque", Silva)
	require.Equal(t, "por-que", tr.SyllablesWithHyphen())
	require.Equal(t, "por-[que]", tr.SyllablesWithStressBoundaries())
}

func TestTranscribeQuem(t *testing.T) {
	tr := transcribeWord(t, "quem", Silva)
	require.Equal(t, "qu-em", tr.SyllablesWithHyphen())
	require.Containsf(t, tr.Transcribe(), "ˈ", "quem transcription must mark its stressed syllable")
}

func TestTranscribeMuitoNasalizesI(t *testing.T) {
	tr := transcribeWord(t, "muito", Silva)
	require.Equal(t, "mui-to", tr.SyllablesWithHyphen())
	require.Containsf(t, tr.Transcribe(), "ĩ", "muito's first syllable nasalizes its i")
}

func TestTranscribeArrozCollapsesDoubleR(t *testing.T) {
	tr := transcribeWord(t, "arroz", Silva)
	require.Equal(t, "ar-roz", tr.SyllablesWithHyphen())
	ipa := tr.Transcribe()
	require.NotContains(t, ipa, "rr", "the rr cluster collapses to a single fricative")
	require.Truef(t, strings.HasSuffix(ipa, "s"), "word-final z devoices to s, got %q", ipa)
}

func TestTranscribePassthroughUnknownGrapheme(t *testing.T) {
	tr := transcribeWord(t, "kraken", Silva)
	ipa := tr.Transcribe()
	require.Containsf(t, ipa, "k", "a grapheme with no matching rule passes through unchanged")
}

func TestTranscribeCountsMatchHyphensAndDots(t *testing.T) {
	words := []string{"chocolate", "porque", "arroz", "muito"}
	for _, w := range words {
		tr := transcribeWord(t, w, Silva)
		hyphens := strings.Count(tr.SyllablesWithHyphen(), "-")
		dots := strings.Count(tr.Transcribe(), ".")
		require.Equalf(t, hyphens, dots, "dot count in ipa must equal hyphen count in syllables for %q", w)
	}
}

func TestTranscribeCECIBackedAlgorithm(t *testing.T) {
	tr := transcribeWord(t, "chocolate", CECI)
	require.Equal(t, "cho-co-la-te", tr.SyllablesWithHyphen())
	require.Containsf(t, tr.Transcribe(), "ˈ", "CECI-backed transcription must still mark stress")
}

func TestPreTranscribePrefixOverride(t *testing.T) {
	tr := transcribeWord(t, "telefone", Silva)
	ipa := tr.Transcribe()
	require.Truef(t, strings.HasPrefix(ipa, "te.le"), "telefone should start with the te-le prefix override, got %q", ipa)
}
