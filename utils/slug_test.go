package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello", "hello"},
		{"Hello World", "hello-world"},
		{"  Spaces  Around  ", "spaces-around"},
		{"Already-Slugged", "already-slugged"},
		{"Symbols & Punctuation!?", "symbols-punctuation"},
		{"Go 1.24 Released", "go-1-24-released"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
