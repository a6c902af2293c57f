// Package phonology implements the Luxembourgish n-rule: whether a
// word-final -n is kept or dropped depending on the initial sound of the
// following word.
//
// The -n is kept when the next word starts with a vowel or with one of the
// consonants h, n, d, z, t, r; it is dropped before any other consonant.
// The rule governs orthography, not meaning: "éischten Abrëll" keeps the -n
// before the vowel, "éischte Februar" drops it before the f.
//
// Classification is case-insensitive and stateless; all functions are safe
// for concurrent use by multiple goroutines.
package phonology

import (
	"unicode"
	"unicode/utf8"
)

// Suffix is the n-rule verdict for a word-final -n.
type Suffix int

const (
	SuffixDropped Suffix = iota // -n is dropped before this word
	SuffixKept                  // -n is kept before this word
)

// String returns the name of the verdict.
func (s Suffix) String() string {
	if s == SuffixKept {
		return "Kept"
	}
	return "Dropped"
}

// vowels contains the Luxembourgish vowel letters, including the
// diacritic forms. Lowercase only; input is lowercased before the check.
var vowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'ä': true, 'ë': true, 'é': true, 'è': true, 'ê': true,
	'ö': true, 'ü': true, 'â': true, 'î': true, 'û': true,
}

// keptConsonants contains the consonants before which the -n survives.
var keptConsonants = map[rune]bool{
	'h': true, 'n': true, 'd': true, 'z': true, 't': true, 'r': true,
}

// ExpectedSuffix classifies the first letter of the following word and
// reports whether a preceding word-final -n is kept or dropped.
// The empty string classifies as dropped (phrase-final position).
func ExpectedSuffix(following string) Suffix {
	r, _ := utf8.DecodeRuneInString(following)
	if r == utf8.RuneError {
		return SuffixDropped
	}
	r = unicode.ToLower(r)
	if vowels[r] || keptConsonants[r] {
		return SuffixKept
	}
	return SuffixDropped
}
