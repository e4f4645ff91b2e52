package syllable

import (
	"strings"
	"testing"
)

func TestCECISeparate(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"chocolate", "cho co la te"},
		{"molho", "mo lho"},
		{"arroz", "ar roz"},
	}

	for _, c := range cases {
		got, err := NewCECI(c.word).Separate()
		if err != nil {
			t.Errorf("Separate(%q) returned error: %v", c.word, err)
			continue
		}
		joined := strings.Join(got, " ")
		if joined != c.want {
			t.Errorf("Separate(%q) = %q, want %q", c.word, joined, c.want)
		}
	}
}

func TestCECILookupTableAlignment(t *testing.T) {
	// "a" immediately followed by "a" is a plain hiatus: action 1 (start a
	// new syllable) per the first row/column of the decoded table.
	action, err := ceciAction('a', 'a')
	if err != nil {
		t.Fatalf("ceciAction('a','a') returned error: %v", err)
	}
	if action != 1 {
		t.Errorf("ceciAction('a','a') = %d, want 1", action)
	}
}

func TestCECICrasis(t *testing.T) {
	got, err := NewCECI("àgua").Separate()
	if err != nil {
		t.Fatalf("Separate(%q) returned error: %v", "àgua", err)
	}
	if len(got) == 0 || !strings.HasPrefix(got[0], "à") {
		t.Errorf("Separate(%q) = %v, want leading syllable to keep the crasis", "àgua", got)
	}
}
