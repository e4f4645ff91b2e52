package petrus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscribeScenarios(t *testing.T) {
	p, err := Load("", "")
	require.NoError(t, err)

	cases := []struct {
		word      string
		syllables string
		annotated string
		ipa       string
	}{
		{"chocolate", "cho-co-la-te", "cho-co-[la]-te", "ʃo.ko.ˈla.ʧɪ"},
		{"porque", "por-que", "por-[que]", ""},
		{"arroz", "ar-roz", "ar-[roz]", ""},
	}

	for _, c := range cases {
		got := p.Transcribe(c.word, Silva)
		require.Equal(t, c.syllables, got.Syllables, "syllables for %q", c.word)
		require.Equal(t, c.annotated, got.Annotated, "annotated for %q", c.word)
		if c.ipa != "" {
			require.Equal(t, c.ipa, got.IPA, "ipa for %q", c.word)
		}
		require.Containsf(t, got.IPA, "ˈ", "ipa for %q must mark primary stress", c.word)
	}
}

func TestTranscribeHomographHeterophone(t *testing.T) {
	p, err := Load("", "")
	require.NoError(t, err)

	got := p.Transcribe("molho", Silva)
	require.Equal(t, "ˈmo.ʎʊ, ˈmɔ.ʎʊ", got.IPA)
}

func TestTranscribeCECIAlgorithm(t *testing.T) {
	p, err := Load("", "")
	require.NoError(t, err)

	got := p.Transcribe("chocolate", CECI)
	require.Equal(t, "cho-co-la-te", got.Syllables)
	require.Containsf(t, got.IPA, "ˈ", "CECI-backed transcription must still mark stress")
}

func TestParseAlgorithm(t *testing.T) {
	algo, err := ParseAlgorithm("")
	require.NoError(t, err)
	require.Equal(t, Silva, algo)

	algo, err = ParseAlgorithm("ceci")
	require.NoError(t, err)
	require.Equal(t, CECI, algo)

	_, err = ParseAlgorithm("bogus")
	require.Error(t, err)
}

func TestLoadRejectsMissingResource(t *testing.T) {
	_, err := Load("testdata/does-not-exist.txt", "")
	require.Error(t, err)
}
