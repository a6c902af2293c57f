package phonology

import "testing"

func TestExpectedSuffix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		word string
		want Suffix
	}{
		// Vowel-initial: -n kept.
		{"Abrëll", SuffixKept},
		{"August", SuffixKept},
		{"Oktober", SuffixKept},
		{"éischten", SuffixKept},
		{"Iessen", SuffixKept},

		// h, n, d, z, t, r: -n kept.
		{"Hond", SuffixKept},
		{"November", SuffixKept},
		{"Dezember", SuffixKept},
		{"Zuch", SuffixKept},
		{"Tour", SuffixKept},
		{"Rees", SuffixKept},

		// Other consonants: -n dropped.
		{"Februar", SuffixDropped},
		{"Mäerz", SuffixDropped},
		{"Juni", SuffixDropped},
		{"September", SuffixDropped},
		{"Kaz", SuffixDropped},
		{"Schoul", SuffixDropped},

		// Case-insensitive.
		{"abrëll", SuffixKept},
		{"FEBRUAR", SuffixDropped},

		// Degenerate input.
		{"", SuffixDropped},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			if got := ExpectedSuffix(tt.word); got != tt.want {
				t.Errorf("ExpectedSuffix(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}
