// Package lexicon holds the static Luxembourgish word tables shared by the
// number and date parsers.
//
// The package provides three lookup surfaces:
//
//   - Lookup resolves number words: units, teens, tens, scale words, the
//     "a"/"an" connector particle, and the decimal marks komma/punkt.
//   - LookupMonth resolves month names and their standard abbreviations.
//   - LookupOrdinalStem resolves the irregular ordinal stems for 1st–19th.
//
// Segment decomposes fused compounds ("dräihonnert", "véierafoffzeg") into
// their component entries by greedy longest-match, so spoken one-word
// compounds need not be enumerated exhaustively.
//
// Lookups are case-insensitive but diacritic-exact: é and ë are semantically
// distinct letters in Luxembourgish and are never folded to ASCII. Input is
// NFC-composed before matching so decomposed transcripts still hit the
// composed table keys.
//
// All tables are built at package init and never mutated afterwards; every
// function is safe for concurrent use by multiple goroutines.
package lexicon

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Role classifies a lexicon entry.
type Role int

const (
	Unknown     Role = iota // Word not found in any table
	Unit                    // 0–9
	Teen                    // 10–19, irregular stems
	Ten                     // 20–90 by decade word
	Scale                   // honnert, dausend, millioun, milliard, billioun
	Connector               // the "a"/"an" joining particle
	DecimalMark             // komma, punkt
	OrdinalStem             // éischt, zweet, ... (1st–19th)
	Month                   // month names and abbreviations
)

// String returns the name of the role.
func (r Role) String() string {
	switch r {
	case Unknown:
		return "Unknown"
	case Unit:
		return "Unit"
	case Teen:
		return "Teen"
	case Ten:
		return "Ten"
	case Scale:
		return "Scale"
	case Connector:
		return "Connector"
	case DecimalMark:
		return "DecimalMark"
	case OrdinalStem:
		return "OrdinalStem"
	case Month:
		return "Month"
	default:
		return "Role(?)"
	}
}

// Entry is one surface form with its role and numeric value.
// Connector and DecimalMark entries carry a zero value.
type Entry struct {
	Surface string
	Role    Role
	Value   int64
}

// Normalize lowercases s and NFC-composes any decomposed diacritics so
// surface forms match the table keys. Diacritics themselves are preserved.
func Normalize(s string) string {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return strings.ToLower(s)
}

// Lookup returns the number-word entry for word.
// Covers units, teens, tens, scale words, connectors, and decimal marks;
// months and ordinal stems have their own lookups.
// A miss is not an error: callers decide whether an unknown word aborts
// the parse or ends the phrase.
func Lookup(word string) (Entry, bool) {
	e, ok := words[Normalize(word)]
	return e, ok
}

// LookupMonth returns the month number (1–12) for a Luxembourgish month
// name or abbreviation.
func LookupMonth(word string) (int, bool) {
	m, ok := months[Normalize(word)]
	return m, ok
}

// LookupOrdinalStem returns the base cardinal value for an irregular
// ordinal stem (1st–19th), e.g. "éischt" → 1, "drëtt" → 3.
func LookupOrdinalStem(word string) (int64, bool) {
	v, ok := ordinalStems[Normalize(word)]
	return v, ok
}
