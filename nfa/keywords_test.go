package nfa

import (
	"errors"
	"testing"

	"github.com/coregx/ahocorasick"
)

// allStrings returns every string over alphabet of length at most maxLen.
func allStrings(alphabet []Symbol, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, prefix := range layer {
			for _, a := range alphabet {
				next = append(next, prefix+a.String())
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// TestKeywords_AgreesWithAhoCorasick cross-checks the keyword NFA against
// an Aho-Corasick matcher over every short string.
func TestKeywords_AgreesWithAhoCorasick(t *testing.T) {
	alphabet := []Symbol{'a', 'b', 'c'}
	tests := []struct {
		name  string
		words []string
	}{
		{"disjoint", []string{"ab", "bca", "cc"}},
		{"overlapping", []string{"aba", "bab"}},
		{"single symbol", []string{"c"}},
		{"prefix of another", []string{"ab", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Keywords(alphabet, tt.words...)
			if err != nil {
				t.Fatalf("Keywords failed: %v", err)
			}

			builder := ahocorasick.NewBuilder()
			for _, w := range tt.words {
				builder.AddPattern([]byte(w))
			}
			ac, err := builder.Build()
			if err != nil {
				t.Fatalf("ahocorasick Build failed: %v", err)
			}

			for _, s := range allStrings(alphabet, 6) {
				want := ac.IsMatch([]byte(s))
				if got := n.InLanguage(s); got != want {
					t.Errorf("InLanguage(%q) = %v, Aho-Corasick says %v", s, got, want)
				}
			}
		})
	}
}

func TestKeywords_EmptyWord(t *testing.T) {
	n, err := Keywords([]Symbol{'x'}, "")
	if err != nil {
		t.Fatalf("Keywords failed: %v", err)
	}
	for _, s := range []string{"", "x", "xxx"} {
		if !n.InLanguage(s) {
			t.Errorf("empty keyword should accept %q", s)
		}
	}
}

func TestKeywords_Errors(t *testing.T) {
	if _, err := Keywords(nil, "a"); !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
	if _, err := Keywords([]Symbol{'a'}); err == nil {
		t.Error("expected error for no keywords")
	}
	if _, err := Keywords([]Symbol{'a'}, "ab"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}
