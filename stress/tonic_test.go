package stress

import "testing"

func TestStressVowel(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"chocolate", 6},
		{"molho", 1},
		{"porque", 5},
		{"quem", 2},
		{"muito", 1},
		{"arroz", 3},
		{"café", 3},
		{"saída", 2},
	}

	for _, c := range cases {
		got := New(c.word).StressVowel()
		if got != c.want {
			t.Errorf("StressVowel(%q) = %d, want %d", c.word, got, c.want)
		}
	}
}

func TestStressVowelWithHyphen(t *testing.T) {
	d := New("chocolate")
	got := d.StressVowelWithHyphen("cho-co-la-te")
	want := 8
	if got != want {
		t.Errorf("StressVowelWithHyphen() = %d, want %d", got, want)
	}
}

func TestSyllableWithHyphen(t *testing.T) {
	d := New("chocolate")
	a, b := d.SyllableWithHyphen("cho-co-la-te")
	if a != 7 || b != 9 {
		t.Errorf("SyllableWithHyphen() = (%d, %d), want (7, 9)", a, b)
	}
}

func TestPhoneticSyllableFallback(t *testing.T) {
	d := New("x")
	a, b := d.PhoneticSyllable("a-b", "c")
	if a != 0 || b != 1 {
		t.Errorf("PhoneticSyllable() = (%d, %d), want (0, 1) on syllable-count mismatch", a, b)
	}
}
